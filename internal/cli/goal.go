package cli

import (
	"fmt"
	"strings"

	"github.com/flyndre/trainlog/internal/workout"
	"github.com/spf13/cobra"
)

var goalCmd = GroupCommand{
	Use:   "goal",
	Short: "Manage exercise goals",
	Subcommands: []*cobra.Command{
		goalSetCmd,
		goalListCmd,
		goalHistoryCmd,
		goalDeleteCmd,
	},
}.Build()

// describeSnapshot renders a goal snapshot as a one-line summary, e.g.
// "daily 50 reps, 3 sets, at 5 kg".
func describeSnapshot(g workout.GoalSnapshot, unit string) string {
	var parts []string
	if g.Daily > 0 {
		parts = append(parts, fmt.Sprintf("daily %s", workout.FormatAmount(g.Daily, unit)))
	}
	if g.Weekly > 0 {
		parts = append(parts, fmt.Sprintf("weekly %s", workout.FormatAmount(g.Weekly, unit)))
	}
	if g.Sets > 0 {
		parts = append(parts, fmt.Sprintf("%d sets", g.Sets))
	}
	if g.Weight > 0 {
		parts = append(parts, fmt.Sprintf("at %s kg", workout.FormatNumber(g.Weight)))
	}
	return strings.Join(parts, ", ")
}

// goalUnit returns the display unit for a goal's exercise type.
func goalUnit(ds *workout.Dataset, name string) string {
	if _, typ, ok := ds.ResolveType(name); ok && typ.Unit != "" {
		return typ.Unit
	}
	return workout.UnitReps
}
