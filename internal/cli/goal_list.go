package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/flyndre/trainlog/internal/workout"
	"github.com/spf13/cobra"
)

var goalListCmd = LeafCommand{
	Use:   "list",
	Short: "List current goals",
	RunE: func(cmd *cobra.Command, args []string) error {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return err
		}
		return runGoalList(cmd, homeDir, time.Now)
	},
}.Build()

func runGoalList(cmd *cobra.Command, homeDir string, nowFn func() time.Time) error {
	ds, err := workout.ReadDataset(homeDir, nowFn())
	if err != nil {
		return err
	}

	names := ds.GoalNames()
	if len(names) == 0 {
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), Silent("No goals set."))
		return nil
	}

	rows := make([][]string, 0, len(names))
	for _, name := range names {
		g := ds.Goals[name]
		unit := goalUnit(ds, name)
		rows = append(rows, []string{
			name,
			formatTarget(g.Daily, unit),
			formatTarget(g.Weekly, unit),
			fmt.Sprintf("%d", g.Sets),
			formatWeight(g.Weight),
			g.EffectiveDate,
		})
	}

	_, _ = fmt.Fprint(cmd.OutOrStdout(), renderTable(
		[]tableCol{
			{"Exercise", nameColWidth},
			{"Daily", 12},
			{"Weekly", 12},
			{"Sets", 4},
			{"Weight", 8},
			{"Effective", 10},
		},
		rows,
	))
	return nil
}

func formatTarget(target float64, unit string) string {
	if target <= 0 {
		return "-"
	}
	return workout.FormatAmount(target, unit)
}

func formatWeight(weight float64) string {
	if weight <= 0 {
		return "-"
	}
	return workout.FormatNumber(weight) + " kg"
}
