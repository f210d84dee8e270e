package cli

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/flyndre/trainlog/internal/workout"
	"github.com/spf13/cobra"
)

var clearCmd = LeafCommand{
	Use:   "clear",
	Short: "Remove logged data",
	BoolFlags: []BoolFlag{
		{Name: "all", Usage: "delete the entire dataset"},
		{Name: "goals", Usage: "remove all current goals (history is kept)"},
		{Name: "force", Shorthand: "f", Usage: "skip confirmation prompts"},
	},
	StrFlags: []StringFlag{
		{Name: "date", Shorthand: "d", Usage: "only remove entries on this date (YYYY-MM-DD)"},
		{Name: "exercise", Shorthand: "e", Usage: "only remove entries for this exercise"},
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return err
		}

		allFlag, _ := cmd.Flags().GetBool("all")
		goalsFlag, _ := cmd.Flags().GetBool("goals")
		dateFlag, _ := cmd.Flags().GetString("date")
		exerciseFlag, _ := cmd.Flags().GetString("exercise")
		forceFlag, _ := cmd.Flags().GetBool("force")

		confirm := NewConfirmFunc()
		if forceFlag {
			confirm = AlwaysYes()
		}

		return runClear(cmd, homeDir, allFlag, goalsFlag, dateFlag, exerciseFlag, confirm, time.Now)
	},
}.Build()

func runClear(
	cmd *cobra.Command,
	homeDir string,
	allFlag, goalsFlag bool,
	dateFlag, exerciseFlag string,
	confirm ConfirmFunc,
	nowFn func() time.Time,
) error {
	w := cmd.OutOrStdout()

	// 1. --all deletes the data file; the next load starts from the seeds
	if allFlag {
		ok, err := confirm("Delete all trainlog data?")
		if err != nil {
			return err
		}
		if !ok {
			_, _ = fmt.Fprintln(w, "cancelled")
			return nil
		}
		if err := workout.DeleteDataset(homeDir); err != nil {
			return err
		}
		_, _ = fmt.Fprintln(w, "All data deleted.")
		return nil
	}

	if dateFlag != "" {
		if _, err := workout.ParseDay(dateFlag); err != nil {
			return err
		}
	}

	ds, err := workout.ReadDataset(homeDir, nowFn())
	if err != nil {
		return err
	}

	// 2. --goals empties the current goals, archiving each into the history
	if goalsFlag {
		ok, err := confirm("Remove all goals?")
		if err != nil {
			return err
		}
		if !ok {
			_, _ = fmt.Fprintln(w, "cancelled")
			return nil
		}
		for _, name := range ds.GoalNames() {
			ds.DeleteGoal(name)
		}
		if err := workout.WriteDataset(homeDir, ds); err != nil {
			return err
		}
		_, _ = fmt.Fprintln(w, "All goals removed (history retained).")
		return nil
	}

	// 3. Scoped entry removal by date and/or exercise
	if dateFlag != "" || exerciseFlag != "" {
		filter := ""
		if exerciseFlag != "" {
			canonical, _, ok := ds.ResolveType(exerciseFlag)
			if !ok {
				return fmt.Errorf("unknown exercise %q (available: %s)", exerciseFlag, strings.Join(ds.TypeNames(), ", "))
			}
			filter = canonical
		}

		if countEntries(ds, dateFlag, filter) == 0 {
			_, _ = fmt.Fprintln(w, Silent("No entries matched."))
			return nil
		}

		ok, err := confirm(clearPrompt(dateFlag, filter))
		if err != nil {
			return err
		}
		if !ok {
			_, _ = fmt.Fprintln(w, "cancelled")
			return nil
		}

		removed := ds.RemoveEntries(dateFlag, filter)
		if err := workout.WriteDataset(homeDir, ds); err != nil {
			return err
		}
		noun := "entries"
		if removed == 1 {
			noun = "entry"
		}
		_, _ = fmt.Fprintf(w, "Removed %d %s.\n", removed, noun)
		return nil
	}

	// 4. No flags: empty every entry, keeping goals and types
	ok, err := confirm("Remove all logged entries?")
	if err != nil {
		return err
	}
	if !ok {
		_, _ = fmt.Fprintln(w, "cancelled")
		return nil
	}
	ds.Entries = map[string][]workout.Entry{}
	if err := workout.WriteDataset(homeDir, ds); err != nil {
		return err
	}
	_, _ = fmt.Fprintln(w, "All entries removed.")
	return nil
}

func countEntries(ds *workout.Dataset, day, typeName string) int {
	n := 0
	for key, entries := range ds.Entries {
		if day != "" && key != day {
			continue
		}
		for _, e := range entries {
			if typeName == "" || strings.EqualFold(e.ExerciseType, typeName) {
				n++
			}
		}
	}
	return n
}

func clearPrompt(day, typeName string) string {
	switch {
	case day != "" && typeName != "":
		return fmt.Sprintf("Remove %s entries for %s?", typeName, day)
	case day != "":
		return fmt.Sprintf("Remove all entries for %s?", day)
	default:
		return fmt.Sprintf("Remove all %s entries?", typeName)
	}
}
