package cli

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/flyndre/trainlog/internal/goal"
	"github.com/flyndre/trainlog/internal/progress"
	"github.com/flyndre/trainlog/internal/stringutil"
	"github.com/flyndre/trainlog/internal/workout"
	"github.com/spf13/cobra"
)

var addCmd = LeafCommand{
	Use:   "add <exercise>",
	Short: "Log an exercise entry",
	Args:  cobra.ExactArgs(1),
	BoolFlags: []BoolFlag{
		{Name: "custom", Shorthand: "c", Usage: "register the exercise as a new custom type"},
	},
	StrFlags: []StringFlag{
		{Name: "date", Shorthand: "d", Usage: "date to log for (YYYY-MM-DD, default: today)"},
	},
	IntFlags: []IntFlag{
		{Name: "reps", Usage: "repetitions performed (for rep-based exercises)"},
		{Name: "time", Usage: "duration in seconds (for time-based exercises)"},
		{Name: "sets", Shorthand: "s", Usage: "number of sets performed", Default: 1},
	},
	FloatFlags: []FloatFlag{
		{Name: "distance", Usage: "distance in km (for distance-based exercises)"},
		{Name: "weight", Shorthand: "w", Usage: "weight in kg"},
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return err
		}

		dateFlag, _ := cmd.Flags().GetString("date")
		repsFlag, _ := cmd.Flags().GetInt("reps")
		timeFlag, _ := cmd.Flags().GetInt("time")
		distanceFlag, _ := cmd.Flags().GetFloat64("distance")
		weightFlag, _ := cmd.Flags().GetFloat64("weight")
		setsFlag, _ := cmd.Flags().GetInt("sets")
		customFlag, _ := cmd.Flags().GetBool("custom")

		return runAdd(cmd, homeDir, args[0], dateFlag, repsFlag, timeFlag, distanceFlag, weightFlag, setsFlag, customFlag, NewPromptKit(), time.Now)
	},
}.Build()

func runAdd(
	cmd *cobra.Command,
	homeDir, name, dateFlag string,
	repsFlag, timeFlag int,
	distanceFlag, weightFlag float64,
	setsFlag int,
	customFlag bool,
	pk PromptKit,
	nowFn func() time.Time,
) error {
	now := nowFn()

	// 1. Resolve the target date
	day := workout.Day(now)
	if dateFlag != "" {
		if _, err := workout.ParseDay(dateFlag); err != nil {
			return err
		}
		day = dateFlag
	}

	// 2. Validate sets and weight before touching the dataset
	if setsFlag < 1 {
		return fmt.Errorf("invalid --sets value %d (expected at least 1)", setsFlag)
	}
	if weightFlag < 0 {
		return fmt.Errorf("invalid --weight value %s (expected a non-negative number)", workout.FormatNumber(weightFlag))
	}

	ds, err := workout.ReadDataset(homeDir, now)
	if err != nil {
		return err
	}

	// 3. Resolve the exercise type, registering a custom one on demand
	canonical, typ, ok := ds.ResolveType(name)
	if !ok {
		if !customFlag {
			return fmt.Errorf("unknown exercise %q (available: %s; use --custom to register a new one)",
				name, strings.Join(ds.TypeNames(), ", "))
		}
		canonical, typ, err = registerCustomType(ds, name, pk)
		if err != nil {
			return err
		}
	}

	// 4. Resolve the amount from the flag matching the type's unit, prompting otherwise
	var amount float64
	switch typ.Unit {
	case workout.UnitSeconds:
		amount = float64(timeFlag)
	case workout.UnitKm:
		amount = distanceFlag
	default:
		amount = float64(repsFlag)
	}
	if amount == 0 {
		amount, err = pk.PromptFloat(fmt.Sprintf("How many %s?", typ.Unit))
		if err != nil {
			return err
		}
	}
	if amount < 0 {
		return fmt.Errorf("invalid amount %s (expected a non-negative number)", workout.FormatNumber(amount))
	}

	// 5. Append the entry and save
	ds.AddEntry(day, workout.Entry{
		ExerciseType: canonical,
		Amount:       amount,
		Unit:         typ.Unit,
		Weight:       weightFlag,
		Sets:         setsFlag,
		Timestamp:    now.Format("15:04:05"),
	})
	if err := workout.WriteDataset(homeDir, ds); err != nil {
		return err
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Added %s: %s for %s\n",
		Primary(canonical),
		Primary(workout.FormatAmount(amount, typ.Unit)),
		Silent(day),
	)

	// 6. Show goal progress for the logged type and date
	settings, err := workout.ReadSettings(homeDir)
	if err != nil {
		return err
	}
	return printEntryProgress(cmd, ds, settings.Bar, canonical, typ.Unit, day)
}

// registerCustomType prompts for the unit and muscle groups of a new
// exercise type and installs it in the dataset.
func registerCustomType(ds *workout.Dataset, name string, pk PromptKit) (string, workout.ExerciseType, error) {
	canonical := stringutil.Normalize(name)
	if canonical == "" {
		return "", workout.ExerciseType{}, fmt.Errorf("invalid exercise name %q", name)
	}

	unitIdx, err := pk.Select(fmt.Sprintf("Unit for %s", canonical), workout.Units())
	if err != nil {
		return "", workout.ExerciseType{}, err
	}
	muscles, err := pk.Prompt("Muscle groups (comma-separated, default: general)")
	if err != nil {
		return "", workout.ExerciseType{}, err
	}

	typ := workout.ExerciseType{
		Unit:         workout.Units()[unitIdx],
		MuscleGroups: stringutil.SplitList(muscles, "general"),
	}
	ds.ExerciseTypes[canonical] = typ
	return canonical, typ, nil
}

// printEntryProgress shows the goal bar for the logged exercise, using
// week-to-date totals for weekly-only goals.
func printEntryProgress(cmd *cobra.Command, ds *workout.Dataset, bar workout.BarSettings, name, unit, day string) error {
	g, ok := goal.ResolveFor(ds, name, day)
	if !ok {
		return nil
	}

	dayT, err := workout.ParseDay(day)
	if err != nil {
		return err
	}

	row := progress.TodayRow{Name: name, Unit: unit, Goal: g}
	if g.Daily == 0 && g.Weekly > 0 {
		days, err := progress.WeekDays(dayT)
		if err != nil {
			return err
		}
		row.Totals = progress.AggregateDays(ds, days)[name]
		row.WeekToDate = true
		row.FinalWeekDay = goal.IsFinalWeekDay(dayT)
	} else {
		row.Totals = progress.AggregateDays(ds, []string{day})[name]
	}
	row.Result = progress.ComputeOne(row.Totals, g)

	_, _ = fmt.Fprintln(cmd.OutOrStdout(), progressLine(row, bar))
	if g.Weight > 0 {
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), weightLine(row, bar))
	}
	return nil
}
