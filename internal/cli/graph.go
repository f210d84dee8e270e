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

var graphCmd = LeafCommand{
	Use:   "graph",
	Short: "Chart exercise progress over time",
	BoolFlags: []BoolFlag{
		{Name: "month", Shorthand: "m", Usage: "chart the current month"},
		{Name: "compare", Shorthand: "c", Usage: "chart several exercises on a shared scale"},
	},
	StrFlags: []StringFlag{
		{Name: "exercise", Shorthand: "e", Usage: "exercise to chart (substring filter with --compare)"},
		{Name: "metric", Usage: "value to chart: reps, weight or weight_per_rep"},
		{Name: "output", Shorthand: "o", Usage: "write the chart to a file instead of the terminal"},
	},
	IntFlags: []IntFlag{
		{Name: "days", Shorthand: "n", Usage: "number of days to chart (default from config)"},
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return err
		}

		exerciseFlag, _ := cmd.Flags().GetString("exercise")
		daysFlag, _ := cmd.Flags().GetInt("days")
		monthFlag, _ := cmd.Flags().GetBool("month")
		metricFlag, _ := cmd.Flags().GetString("metric")
		compareFlag, _ := cmd.Flags().GetBool("compare")
		outputFlag, _ := cmd.Flags().GetString("output")

		return runGraph(cmd, homeDir, exerciseFlag, daysFlag, monthFlag, metricFlag, compareFlag, outputFlag, NewPromptKit(), time.Now)
	},
}.Build()

func runGraph(
	cmd *cobra.Command,
	homeDir, exerciseFlag string,
	daysFlag int,
	monthFlag bool,
	metricFlag string,
	compareFlag bool,
	outputFlag string,
	pk PromptKit,
	nowFn func() time.Time,
) error {
	w := cmd.OutOrStdout()
	now := nowFn()

	// 1. Validate the metric and resolve the day range
	metric := metricFlag
	if metric == "" {
		metric = progress.MetricReps
	}
	if !progress.ValidMetric(metric) {
		return fmt.Errorf("invalid --metric value %q (expected %s)", metricFlag, strings.Join(progress.Metrics(), ", "))
	}
	if monthFlag && daysFlag > 0 {
		return fmt.Errorf("--days and --month are mutually exclusive")
	}

	settings, err := workout.ReadSettings(homeDir)
	if err != nil {
		return err
	}

	var days []string
	if monthFlag {
		days, err = progress.MonthDays(now)
	} else {
		n := daysFlag
		if n <= 0 {
			n = settings.Graph.Days
		}
		days, err = progress.LastDays(now, n)
	}
	if err != nil {
		return err
	}

	ds, err := workout.ReadDataset(homeDir, now)
	if err != nil {
		return err
	}

	// 2. Decide which exercises to chart
	names, err := chartTargets(ds, days, exerciseFlag, compareFlag, pk)
	if err != nil {
		return err
	}
	if len(names) == 0 {
		_, _ = fmt.Fprintln(w, Silent("No exercises with data in this range."))
		return nil
	}

	// 3. Build the series, dropping exercises without data
	var list []progress.Series
	for _, name := range names {
		s := progress.BuildSeries(ds, name, metric, days)
		if s.HasData() {
			list = append(list, s)
		}
	}
	if len(list) == 0 {
		_, _ = fmt.Fprintln(w, Silent("No data in this range."))
		return nil
	}

	// 4. Render: to a file, a static comparison, or the interactive browser
	if outputFlag != "" {
		text := renderCharts(ds, list, settings.Graph)
		if err := os.WriteFile(outputFlag, []byte(text), 0o644); err != nil {
			return fmt.Errorf("writing chart: %w", err)
		}
		_, _ = fmt.Fprintf(w, "Chart written to %s\n", outputFlag)
		return nil
	}
	if len(list) > 1 {
		_, _ = fmt.Fprint(w, renderCharts(ds, list, settings.Graph))
		return nil
	}
	return runGraphBrowser(cmd, ds, days, list[0].Name, metric, settings.Graph)
}

// chartTargets resolves the exercises to chart. Without --exercise the user
// picks from the types with data in range; --compare selects several, either
// interactively or by substring when --exercise is given.
func chartTargets(ds *workout.Dataset, days []string, exerciseFlag string, compareFlag bool, pk PromptKit) ([]string, error) {
	active := progress.ActiveTypes(ds, days)

	switch {
	case compareFlag && exerciseFlag != "":
		var names []string
		for _, name := range active {
			if strings.Contains(strings.ToLower(name), strings.ToLower(exerciseFlag)) {
				names = append(names, name)
			}
		}
		return names, nil

	case compareFlag:
		if len(active) == 0 {
			return nil, nil
		}
		picked, err := pk.MultiSelect("Compare which exercises?", active)
		if err != nil {
			return nil, err
		}
		names := make([]string, 0, len(picked))
		for _, i := range picked {
			names = append(names, active[i])
		}
		return names, nil

	case exerciseFlag != "":
		canonical, _, ok := ds.ResolveType(exerciseFlag)
		if !ok {
			return nil, fmt.Errorf("unknown exercise %q (available: %s)", exerciseFlag, strings.Join(ds.TypeNames(), ", "))
		}
		return []string{canonical}, nil

	default:
		if len(active) == 0 {
			return nil, nil
		}
		idx, err := pk.Select("Which exercise?", active)
		if err != nil {
			return nil, err
		}
		return []string{active[idx]}, nil
	}
}
