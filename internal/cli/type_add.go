package cli

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/flyndre/trainlog/internal/stringutil"
	"github.com/flyndre/trainlog/internal/workout"
	"github.com/spf13/cobra"
)

var typeAddCmd = LeafCommand{
	Use:   "add <name>",
	Short: "Register a new exercise type",
	Args:  cobra.ExactArgs(1),
	StrFlags: []StringFlag{
		{Name: "unit", Shorthand: "u", Usage: "measurement unit: reps, seconds or km"},
		{Name: "muscles", Usage: "comma-separated muscle groups (default: general)"},
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return err
		}

		unitFlag, _ := cmd.Flags().GetString("unit")
		musclesFlag, _ := cmd.Flags().GetString("muscles")

		return runTypeAdd(cmd, homeDir, args[0], unitFlag, musclesFlag, NewPromptKit(), time.Now)
	},
}.Build()

func runTypeAdd(
	cmd *cobra.Command,
	homeDir, name, unitFlag, musclesFlag string,
	pk PromptKit,
	nowFn func() time.Time,
) error {
	ds, err := workout.ReadDataset(homeDir, nowFn())
	if err != nil {
		return err
	}

	// 1. Normalize the name and reject duplicates
	canonical := stringutil.Normalize(name)
	if canonical == "" {
		return fmt.Errorf("invalid exercise name %q", name)
	}
	if existing, _, ok := ds.ResolveType(canonical); ok {
		return fmt.Errorf("exercise type %q already exists", existing)
	}

	// 2. Resolve the unit from the flag or a prompt
	unit := unitFlag
	if unit == "" {
		idx, err := pk.Select(fmt.Sprintf("Unit for %s", canonical), workout.Units())
		if err != nil {
			return err
		}
		unit = workout.Units()[idx]
	}
	if !workout.ValidUnit(unit) {
		return fmt.Errorf("invalid --unit value %q (expected %s)", unitFlag, strings.Join(workout.Units(), ", "))
	}

	// 3. Muscle groups from the flag or a prompt
	muscles := musclesFlag
	if muscles == "" {
		muscles, err = pk.Prompt("Muscle groups (comma-separated, default: general)")
		if err != nil {
			return err
		}
	}

	typ := workout.ExerciseType{
		Unit:         unit,
		MuscleGroups: stringutil.SplitList(muscles, "general"),
	}
	ds.ExerciseTypes[canonical] = typ
	if err := workout.WriteDataset(homeDir, ds); err != nil {
		return err
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Registered %s (unit %s, muscles %s)\n",
		Primary(canonical), unit, strings.Join(typ.MuscleGroups, ", "))
	return nil
}
