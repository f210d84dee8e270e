package cli

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/flyndre/trainlog/internal/workout"
	"github.com/spf13/cobra"
)

var goalHistoryCmd = LeafCommand{
	Use:   "history <exercise>",
	Short: "Show how an exercise goal changed over time",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return err
		}
		return runGoalHistory(cmd, homeDir, args[0], time.Now)
	},
}.Build()

func runGoalHistory(cmd *cobra.Command, homeDir, name string, nowFn func() time.Time) error {
	ds, err := workout.ReadDataset(homeDir, nowFn())
	if err != nil {
		return err
	}

	canonical, _, ok := ds.ResolveType(name)
	if !ok {
		return fmt.Errorf("unknown exercise %q (available: %s)", name, strings.Join(ds.TypeNames(), ", "))
	}

	type versioned struct {
		snap    workout.GoalSnapshot
		current bool
	}

	var versions []versioned
	for _, snap := range ds.GoalHistory[canonical] {
		versions = append(versions, versioned{snap: snap})
	}
	if current, ok := ds.Goals[canonical]; ok {
		versions = append(versions, versioned{snap: current, current: true})
	}

	if len(versions) == 0 {
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\n", Silent(fmt.Sprintf("No goals recorded for %s.", canonical)))
		return nil
	}

	sort.SliceStable(versions, func(i, j int) bool {
		return versions[i].snap.EffectiveDate < versions[j].snap.EffectiveDate
	})

	unit := goalUnit(ds, canonical)
	w := cmd.OutOrStdout()
	for _, v := range versions {
		effective := v.snap.EffectiveDate
		if effective == "" {
			effective = "(always)"
		}
		line := fmt.Sprintf("%s  %s", Silent(effective), describeSnapshot(v.snap, unit))
		if v.current {
			line += " " + Primary("(current)")
		}
		_, _ = fmt.Fprintln(w, line)
	}
	return nil
}
