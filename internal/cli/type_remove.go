package cli

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/flyndre/trainlog/internal/workout"
	"github.com/spf13/cobra"
)

var typeRemoveCmd = LeafCommand{
	Use:   "remove <name>",
	Short: "Remove an unused exercise type",
	Args:  cobra.ExactArgs(1),
	BoolFlags: []BoolFlag{
		{Name: "force", Shorthand: "f", Usage: "skip the confirmation prompt"},
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

		return runTypeRemove(cmd, homeDir, args[0], confirm, time.Now)
	},
}.Build()

func runTypeRemove(
	cmd *cobra.Command,
	homeDir, name string,
	confirm ConfirmFunc,
	nowFn func() time.Time,
) error {
	w := cmd.OutOrStdout()

	ds, err := workout.ReadDataset(homeDir, nowFn())
	if err != nil {
		return err
	}

	canonical, _, ok := ds.ResolveType(name)
	if !ok {
		return fmt.Errorf("unknown exercise %q (available: %s)", name, strings.Join(ds.TypeNames(), ", "))
	}

	// Entries, goals or history still referencing the type block removal.
	if ds.TypeInUse(canonical) {
		return fmt.Errorf("%s is still referenced by entries or goals; run 'trainlog clear --exercise %s' first", canonical, canonical)
	}

	confirmed, err := confirm(fmt.Sprintf("Remove exercise type %s?", canonical))
	if err != nil {
		return err
	}
	if !confirmed {
		_, _ = fmt.Fprintln(w, "cancelled")
		return nil
	}

	delete(ds.ExerciseTypes, canonical)
	if err := workout.WriteDataset(homeDir, ds); err != nil {
		return err
	}

	_, _ = fmt.Fprintf(w, "Removed exercise type %s.\n", canonical)
	return nil
}
