package cli

import (
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/flyndre/trainlog/internal/progress"
	"github.com/flyndre/trainlog/internal/workout"
	"github.com/spf13/cobra"
)

var statsCmd = LeafCommand{
	Use:   "stats",
	Short: "Summarize training over a period",
	BoolFlags: []BoolFlag{
		{Name: "month", Shorthand: "m", Usage: "cover the current month"},
	},
	StrFlags: []StringFlag{
		{Name: "exercise", Shorthand: "e", Usage: "narrow the report to one exercise"},
		{Name: "muscle", Shorthand: "g", Usage: "narrow the report to one muscle group"},
		{Name: "output", Shorthand: "o", Usage: "write the report to a text file"},
		{Name: "export", Usage: "export the report to a PDF file"},
	},
	IntFlags: []IntFlag{
		{Name: "days", Shorthand: "n", Usage: "number of days to cover (default from config)"},
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return err
		}

		daysFlag, _ := cmd.Flags().GetInt("days")
		monthFlag, _ := cmd.Flags().GetBool("month")
		exerciseFlag, _ := cmd.Flags().GetString("exercise")
		muscleFlag, _ := cmd.Flags().GetString("muscle")
		outputFlag, _ := cmd.Flags().GetString("output")
		exportFlag, _ := cmd.Flags().GetString("export")

		return runStats(cmd, homeDir, daysFlag, monthFlag, exerciseFlag, muscleFlag, outputFlag, exportFlag, time.Now)
	},
}.Build()

func runStats(
	cmd *cobra.Command,
	homeDir string,
	daysFlag int,
	monthFlag bool,
	exerciseFlag, muscleFlag, outputFlag, exportFlag string,
	nowFn func() time.Time,
) error {
	w := cmd.OutOrStdout()
	now := nowFn()

	// 1. Resolve the day range
	if monthFlag && daysFlag > 0 {
		return fmt.Errorf("--days and --month are mutually exclusive")
	}

	settings, err := workout.ReadSettings(homeDir)
	if err != nil {
		return err
	}

	var days []string
	var rangeLabel string
	if monthFlag {
		days, err = progress.MonthDays(now)
		rangeLabel = now.Format("January 2006")
	} else {
		n := daysFlag
		if n <= 0 {
			n = settings.Stats.Days
		}
		days, err = progress.LastDays(now, n)
		rangeLabel = fmt.Sprintf("last %d days", n)
	}
	if err != nil {
		return err
	}

	ds, err := workout.ReadDataset(homeDir, now)
	if err != nil {
		return err
	}

	// 2. Resolve the filters
	exerciseFilter := ""
	if exerciseFlag != "" {
		canonical, _, ok := ds.ResolveType(exerciseFlag)
		if !ok {
			return fmt.Errorf("unknown exercise %q (available: %s)", exerciseFlag, strings.Join(ds.TypeNames(), ", "))
		}
		exerciseFilter = canonical
	}
	muscleFilter := strings.ToLower(muscleFlag)

	// 3. Compute; an empty scope names the active filters
	stats := progress.BuildStats(ds, days, exerciseFilter, muscleFilter)
	scope := rangeLabel
	if exerciseFilter != "" {
		scope += ", exercise " + exerciseFilter
	}
	if muscleFilter != "" {
		scope += ", muscle " + muscleFilter
	}
	if stats.Empty() {
		_, _ = fmt.Fprintln(w, Silent(fmt.Sprintf("No entries found (%s).", scope)))
		return nil
	}

	// 4. Render to the requested destinations
	text := renderStats(ds, stats, scope)

	if exportFlag != "" {
		if err := renderStatsPDF(ds, stats, scope, exportFlag); err != nil {
			return err
		}
		_, _ = fmt.Fprintf(w, "Exported report to %s\n", exportFlag)
	}
	if outputFlag != "" {
		if err := os.WriteFile(outputFlag, []byte(text), 0o644); err != nil {
			return fmt.Errorf("writing report: %w", err)
		}
		_, _ = fmt.Fprintf(w, "Report written to %s\n", outputFlag)
	}
	if exportFlag == "" && outputFlag == "" {
		_, _ = fmt.Fprint(w, text)
	}
	return nil
}

// renderStats lays out the five report sections as fixed-width tables,
// skipping sections with nothing to show.
func renderStats(ds *workout.Dataset, stats progress.Stats, scope string) string {
	var b strings.Builder
	b.WriteString(headerStyle.Render(fmt.Sprintf("--- Statistics (%s) ---", scope)))
	b.WriteString("\n\n")

	b.WriteString(headerStyle.Render("Exercises"))
	b.WriteString("\n")
	b.WriteString(renderTable(
		[]tableCol{{"Exercise", nameColWidth}, {"Total", 12}, {"Sets", 5}, {"Weight", 10}, {"Days", 5}, {"Avg/day", 12}, {"Max", 8}},
		exerciseStatRows(stats.Exercises),
	))

	if len(stats.Muscles) > 0 {
		b.WriteString("\n")
		b.WriteString(headerStyle.Render("Muscle groups"))
		b.WriteString("\n")
		b.WriteString(renderTable(
			[]tableCol{{"Muscle", 15}, {"Amount", 10}, {"Weight", 10}, {"Exercises", 30}},
			muscleStatRows(stats.Muscles),
		))
	}

	if len(stats.Progressions) > 0 {
		b.WriteString("\n")
		b.WriteString(headerStyle.Render("Weight progression"))
		b.WriteString("\n")
		b.WriteString(renderTable(
			[]tableCol{{"Exercise", nameColWidth}, {"First", 22}, {"Last", 22}, {"Change", 7}},
			progressionRows(stats.Progressions),
		))
	}

	if len(stats.Achievements) > 0 {
		b.WriteString("\n")
		b.WriteString(headerStyle.Render("Goal achievement"))
		b.WriteString("\n")
		b.WriteString(renderTable(
			[]tableCol{{"Exercise", nameColWidth}, {"Target", 12}, {"Days", 7}, {"Rate", 5}},
			achievementRows(ds, stats.Achievements),
		))
	}

	if len(stats.Streaks) > 0 {
		b.WriteString("\n")
		b.WriteString(headerStyle.Render("Streaks"))
		b.WriteString("\n")
		b.WriteString(renderTable(
			[]tableCol{{"Exercise", nameColWidth}, {"Current", 8}, {"Longest", 8}},
			streakRows(stats.Streaks),
		))
	}

	return b.String()
}

func exerciseStatRows(list []progress.ExerciseStats) [][]string {
	rows := make([][]string, 0, len(list))
	for _, es := range list {
		avg := math.Round(es.AvgPerDay*10) / 10
		rows = append(rows, []string{
			es.Name,
			workout.FormatAmount(es.Total, es.Unit),
			strconv.Itoa(es.Sets),
			formatWeight(es.WeightTotal),
			strconv.Itoa(es.ActiveDays),
			workout.FormatAmount(avg, es.Unit),
			formatWeight(es.MaxWeight),
		})
	}
	return rows
}

func muscleStatRows(list []progress.MuscleStats) [][]string {
	rows := make([][]string, 0, len(list))
	for _, ms := range list {
		rows = append(rows, []string{
			ms.Name,
			workout.FormatNumber(ms.Total),
			formatWeight(ms.WeightTotal),
			strings.Join(ms.Exercises, ", "),
		})
	}
	return rows
}

func progressionRows(list []progress.WeightProgression) [][]string {
	rows := make([][]string, 0, len(list))
	for _, wp := range list {
		first := wp.Points[0]
		last := wp.Points[len(wp.Points)-1]
		rows = append(rows, []string{
			wp.Name,
			fmt.Sprintf("%s kg (%s)", workout.FormatNumber(first.Weight), first.Day),
			fmt.Sprintf("%s kg (%s)", workout.FormatNumber(last.Weight), last.Day),
			fmt.Sprintf("%+.0f%%", wp.Change),
		})
	}
	return rows
}

func achievementRows(ds *workout.Dataset, list []progress.GoalAchievement) [][]string {
	rows := make([][]string, 0, len(list))
	for _, ga := range list {
		rows = append(rows, []string{
			ga.Name,
			workout.FormatAmount(ga.Target, goalUnit(ds, ga.Name)),
			fmt.Sprintf("%d/%d", ga.DaysAchieved, ga.DaysCounted),
			fmt.Sprintf("%d%%", ga.Rate),
		})
	}
	return rows
}

func streakRows(list []progress.Streak) [][]string {
	rows := make([][]string, 0, len(list))
	for _, s := range list {
		rows = append(rows, []string{
			s.Name,
			fmt.Sprintf("%dd", s.Current),
			fmt.Sprintf("%dd", s.Longest),
		})
	}
	return rows
}
