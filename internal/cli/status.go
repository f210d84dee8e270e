package cli

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/flyndre/trainlog/internal/progress"
	"github.com/flyndre/trainlog/internal/workout"
	"github.com/spf13/cobra"
)

var statusCmd = LeafCommand{
	Use:   "status",
	Short: "Show today's goal progress",
	RunE: func(cmd *cobra.Command, args []string) error {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return err
		}
		return runStatus(cmd, homeDir, time.Now)
	},
}.Build()

func runStatus(cmd *cobra.Command, homeDir string, nowFn func() time.Time) error {
	now := nowFn()

	ds, err := workout.ReadDataset(homeDir, now)
	if err != nil {
		return err
	}
	settings, err := workout.ReadSettings(homeDir)
	if err != nil {
		return err
	}

	rows, err := progress.TodayView(ds, now)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	_, _ = fmt.Fprintln(w, headerStyle.Render(fmt.Sprintf("--- %s ---", workout.Day(now))))

	if len(rows) == 0 {
		_, _ = fmt.Fprintln(w, Silent("No goals set."))
	}
	for _, row := range rows {
		_, _ = fmt.Fprintln(w, progressLine(row, settings.Bar))
		if row.Goal.Weight > 0 {
			_, _ = fmt.Fprintln(w, weightLine(row, settings.Bar))
		}
	}

	_, _ = fmt.Fprintln(w)
	_, _ = fmt.Fprintf(w, "%s %d\n", Silent("Entries today:"), len(ds.Entries[workout.Day(now)]))

	// Current streaks over the statistics window
	days, err := progress.LastDays(now, settings.Stats.Days)
	if err != nil {
		return err
	}
	var streaks []string
	for _, s := range progress.BuildStats(ds, days, "", "").Streaks {
		if s.Current > 0 {
			streaks = append(streaks, fmt.Sprintf("%s %dd", s.Name, s.Current))
		}
	}
	if len(streaks) > 0 {
		_, _ = fmt.Fprintf(w, "%s %s\n", Silent("Streaks:"), strings.Join(streaks, ", "))
	}

	return nil
}
