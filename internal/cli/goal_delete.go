package cli

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/flyndre/trainlog/internal/workout"
	"github.com/spf13/cobra"
)

var goalDeleteCmd = LeafCommand{
	Use:   "delete <exercise>",
	Short: "Delete the current goal for an exercise",
	Args:  cobra.ExactArgs(1),
	BoolFlags: []BoolFlag{
		{Name: "force", Shorthand: "f", Usage: "skip confirmation prompt"},
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return err
		}

		forceFlag, _ := cmd.Flags().GetBool("force")
		confirm := NewConfirmFunc()
		if forceFlag {
			confirm = AlwaysYes()
		}

		return runGoalDelete(cmd, homeDir, args[0], confirm, time.Now)
	},
}.Build()

func runGoalDelete(cmd *cobra.Command, homeDir, name string, confirm ConfirmFunc, nowFn func() time.Time) error {
	ds, err := workout.ReadDataset(homeDir, nowFn())
	if err != nil {
		return err
	}

	canonical, _, ok := ds.ResolveType(name)
	if !ok {
		return fmt.Errorf("unknown exercise %q (available: %s)", name, strings.Join(ds.TypeNames(), ", "))
	}

	w := cmd.OutOrStdout()
	if _, ok := ds.Goals[canonical]; !ok {
		_, _ = fmt.Fprintf(w, "%s\n", Silent(fmt.Sprintf("No goal set for %s.", canonical)))
		return nil
	}

	ok, err = confirm(fmt.Sprintf("Delete the goal for %s?", canonical))
	if err != nil {
		return err
	}
	if !ok {
		_, _ = fmt.Fprintln(w, "cancelled")
		return nil
	}

	ds.DeleteGoal(canonical)
	if err := workout.WriteDataset(homeDir, ds); err != nil {
		return err
	}

	_, _ = fmt.Fprintf(w, "Goal for %s deleted (history retained).\n", Primary(canonical))
	return nil
}
