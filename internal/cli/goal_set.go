package cli

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/flyndre/trainlog/internal/workout"
	"github.com/spf13/cobra"
)

var goalSetCmd = LeafCommand{
	Use:   "set <exercise>",
	Short: "Set or replace the goal for an exercise",
	Args:  cobra.ExactArgs(1),
	StrFlags: []StringFlag{
		{Name: "effective", Usage: "date the goal takes effect (YYYY-MM-DD, default: today)"},
	},
	IntFlags: []IntFlag{
		{Name: "sets", Usage: "number of sets the targets assume", Default: 3},
	},
	FloatFlags: []FloatFlag{
		{Name: "daily", Usage: "daily target amount"},
		{Name: "weekly", Usage: "weekly target amount"},
		{Name: "weight", Usage: "weight in kg the targets assume"},
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return err
		}

		dailyFlag, _ := cmd.Flags().GetFloat64("daily")
		weeklyFlag, _ := cmd.Flags().GetFloat64("weekly")
		setsFlag, _ := cmd.Flags().GetInt("sets")
		weightFlag, _ := cmd.Flags().GetFloat64("weight")
		effectiveFlag, _ := cmd.Flags().GetString("effective")

		return runGoalSet(cmd, homeDir, args[0], dailyFlag, weeklyFlag, weightFlag, setsFlag, effectiveFlag, time.Now)
	},
}.Build()

func runGoalSet(
	cmd *cobra.Command,
	homeDir, name string,
	dailyFlag, weeklyFlag, weightFlag float64,
	setsFlag int,
	effectiveFlag string,
	nowFn func() time.Time,
) error {
	now := nowFn()

	// 1. Validate targets
	if dailyFlag < 0 || weeklyFlag < 0 {
		return fmt.Errorf("targets must not be negative")
	}
	if dailyFlag == 0 && weeklyFlag == 0 {
		return fmt.Errorf("specify --daily and/or --weekly")
	}
	if setsFlag < 1 {
		return fmt.Errorf("invalid --sets value %d (expected at least 1)", setsFlag)
	}
	if weightFlag < 0 {
		return fmt.Errorf("invalid --weight value %s (expected a non-negative number)", workout.FormatNumber(weightFlag))
	}

	// 2. Resolve the effective date
	effective := workout.Day(now)
	if effectiveFlag != "" {
		if _, err := workout.ParseDay(effectiveFlag); err != nil {
			return err
		}
		effective = effectiveFlag
	}

	ds, err := workout.ReadDataset(homeDir, now)
	if err != nil {
		return err
	}

	// 3. Resolve the exercise type
	canonical, _, ok := ds.ResolveType(name)
	if !ok {
		return fmt.Errorf("unknown exercise %q (available: %s)", name, strings.Join(ds.TypeNames(), ", "))
	}

	// 4. Install the new snapshot, archiving any current one
	snap := workout.GoalSnapshot{
		Daily:         dailyFlag,
		Weekly:        weeklyFlag,
		Sets:          setsFlag,
		Weight:        weightFlag,
		EffectiveDate: effective,
	}
	ds.SetGoal(canonical, snap)

	if err := workout.WriteDataset(homeDir, ds); err != nil {
		return err
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Goal set for %s: %s (effective %s)\n",
		Primary(canonical),
		describeSnapshot(snap, goalUnit(ds, canonical)),
		Silent(effective),
	)
	return nil
}
