package cli

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/flyndre/trainlog/internal/workout"
	"github.com/spf13/cobra"
)

var typeListCmd = LeafCommand{
	Use:   "list",
	Short: "Show the known exercise types",
	RunE: func(cmd *cobra.Command, args []string) error {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return err
		}
		return runTypeList(cmd, homeDir, time.Now)
	},
}.Build()

func runTypeList(cmd *cobra.Command, homeDir string, nowFn func() time.Time) error {
	ds, err := workout.ReadDataset(homeDir, nowFn())
	if err != nil {
		return err
	}

	names := ds.TypeNames()
	if len(names) == 0 {
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), Silent("No exercise types defined."))
		return nil
	}

	rows := make([][]string, 0, len(names))
	for _, name := range names {
		typ := ds.ExerciseTypes[name]
		rows = append(rows, []string{name, typ.Unit, strings.Join(typ.MuscleGroups, ", ")})
	}

	_, _ = fmt.Fprint(cmd.OutOrStdout(), renderTable(
		[]tableCol{{"Name", nameColWidth}, {"Unit", 7}, {"Muscle groups", 40}},
		rows,
	))
	return nil
}
