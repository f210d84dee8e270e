package cli

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/flyndre/trainlog/internal/goal"
	"github.com/flyndre/trainlog/internal/progress"
	"github.com/flyndre/trainlog/internal/workout"
	"github.com/spf13/cobra"
)

type listScope int

const (
	scopeDay listScope = iota
	scopeWeek
	scopeMonth
)

var listCmd = LeafCommand{
	Use:   "list",
	Short: "Show logged entries",
	BoolFlags: []BoolFlag{
		{Name: "week", Shorthand: "w", Usage: "show the week containing the reference date"},
		{Name: "month", Shorthand: "m", Usage: "show the month up to the reference date"},
		{Name: "summary", Shorthand: "s", Usage: "condense the scope into per-exercise totals"},
	},
	StrFlags: []StringFlag{
		{Name: "date", Shorthand: "d", Usage: "reference date (YYYY-MM-DD, default: today)"},
		{Name: "exercise", Shorthand: "e", Usage: "only show entries for this exercise"},
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return err
		}

		dateFlag, _ := cmd.Flags().GetString("date")
		weekFlag, _ := cmd.Flags().GetBool("week")
		monthFlag, _ := cmd.Flags().GetBool("month")
		exerciseFlag, _ := cmd.Flags().GetString("exercise")
		summaryFlag, _ := cmd.Flags().GetBool("summary")

		return runList(cmd, homeDir, dateFlag, weekFlag, monthFlag, exerciseFlag, summaryFlag, time.Now)
	},
}.Build()

func runList(
	cmd *cobra.Command,
	homeDir, dateFlag string,
	weekFlag, monthFlag bool,
	exerciseFlag string,
	summaryFlag bool,
	nowFn func() time.Time,
) error {
	now := nowFn()

	// 1. Resolve the scope
	if weekFlag && monthFlag {
		return fmt.Errorf("--week and --month are mutually exclusive")
	}
	refDay := workout.Day(now)
	if dateFlag != "" {
		if _, err := workout.ParseDay(dateFlag); err != nil {
			return err
		}
		refDay = dateFlag
	}
	refT, err := workout.ParseDay(refDay)
	if err != nil {
		return err
	}

	days := []string{refDay}
	scope := scopeDay
	switch {
	case weekFlag:
		scope = scopeWeek
		days, err = progress.WeekDays(refT)
	case monthFlag:
		scope = scopeMonth
		days, err = progress.MonthDays(refT)
	}
	if err != nil {
		return err
	}

	ds, err := workout.ReadDataset(homeDir, now)
	if err != nil {
		return err
	}

	// 2. Resolve the exercise filter
	filter := ""
	if exerciseFlag != "" {
		canonical, _, ok := ds.ResolveType(exerciseFlag)
		if !ok {
			return fmt.Errorf("unknown exercise %q (available: %s)", exerciseFlag, strings.Join(ds.TypeNames(), ", "))
		}
		filter = canonical
	}

	if summaryFlag {
		settings, err := workout.ReadSettings(homeDir)
		if err != nil {
			return err
		}
		return listSummary(cmd, ds, settings.Bar, days, scope, filter, refDay, now)
	}
	return listDetail(cmd, ds, days, scope, filter, refDay)
}

func listDetail(cmd *cobra.Command, ds *workout.Dataset, days []string, scope listScope, filter, refDay string) error {
	w := cmd.OutOrStdout()

	var shown []string
	for _, day := range days {
		if len(filterEntries(ds.Entries[day], filter)) > 0 {
			shown = append(shown, day)
		}
	}
	if len(shown) == 0 {
		_, _ = fmt.Fprintln(w, Silent(fmt.Sprintf("No entries %s.", scopeLabel(scope, refDay))))
		return nil
	}

	for i, day := range shown {
		entries := filterEntries(ds.Entries[day], filter)

		_, _ = fmt.Fprintln(w, headerStyle.Render(fmt.Sprintf("--- %s ---", day)))

		rows := make([][]string, 0, len(entries))
		for _, e := range entries {
			rows = append(rows, []string{e.Timestamp, e.ExerciseType, describeEntry(e)})
		}
		_, _ = fmt.Fprint(w, renderTable(
			[]tableCol{{"Time", 8}, {"Exercise", nameColWidth}, {"Amount", 22}},
			rows,
		))

		dayTotals := progress.Aggregate(entries)
		for _, name := range sortedTotalNames(dayTotals) {
			_, _ = fmt.Fprintf(w, "%s %s\n", Silent(name+":"), describeTotals(dayTotals[name], goalUnit(ds, name)))
		}

		if i < len(shown)-1 {
			_, _ = fmt.Fprintln(w)
		}
	}

	// 3. Overall totals for multi-day scopes, annotated against the goals
	//    in effect on the reference date
	if scope != scopeDay {
		totals := filterTotals(progress.AggregateDays(ds, days), filter)

		_, _ = fmt.Fprintln(w)
		_, _ = fmt.Fprintln(w, headerStyle.Render("--- Totals ---"))
		for _, name := range sortedTotalNames(totals) {
			t := totals[name]
			line := fmt.Sprintf("%s %s", Silent(name+":"), describeTotals(t, goalUnit(ds, name)))
			if g, ok := goal.ResolveFor(ds, name, refDay); ok {
				if target := scopeTarget(g, scope, len(days)); target > 0 {
					line += fmt.Sprintf(" (%d%% of goal)", progress.Percent(t.Amount, target))
				}
			}
			_, _ = fmt.Fprintln(w, line)
		}
	}

	return nil
}

func listSummary(cmd *cobra.Command, ds *workout.Dataset, bar workout.BarSettings, days []string, scope listScope, filter, refDay string, now time.Time) error {
	w := cmd.OutOrStdout()

	type summaryRow struct {
		name     string
		total    string
		goalCell string
		progress string
		lastDay  bool
	}
	var rows []summaryRow

	if scope == scopeDay && refDay == workout.Day(now) {
		// The today view carries zero-total daily goals and week-to-date
		// weekly goals even when nothing was logged today.
		todayRows, err := progress.TodayView(ds, now)
		if err != nil {
			return err
		}

		covered := map[string]bool{}
		for _, r := range todayRows {
			if filter != "" && r.Name != filter {
				continue
			}
			covered[r.Name] = true

			total := workout.FormatAmount(r.Totals.Amount, r.Unit)
			if r.WeekToDate {
				total += " (week)"
			}
			lastDay := r.WeekToDate && r.FinalWeekDay && !r.Result.WeeklyMet
			rows = append(rows, summaryRow{
				name:     r.Name,
				total:    total,
				goalCell: workout.FormatAmount(goalTarget(r.Goal), r.Unit),
				progress: fmt.Sprintf("%s %3d%%", renderBar(r.Result.RepsPercent, bar), r.Result.RepsPercent),
				lastDay:  lastDay,
			})
		}

		// Types logged today without a goal still show their totals.
		totals := filterTotals(progress.AggregateDays(ds, days), filter)
		for _, name := range sortedTotalNames(totals) {
			if covered[name] {
				continue
			}
			rows = append(rows, summaryRow{
				name:     name,
				total:    workout.FormatAmount(totals[name].Amount, goalUnit(ds, name)),
				goalCell: "-",
				progress: "-",
			})
		}
	} else {
		totals := filterTotals(progress.AggregateDays(ds, days), filter)
		for _, name := range sortedTotalNames(totals) {
			t := totals[name]
			row := summaryRow{
				name:     name,
				total:    workout.FormatAmount(t.Amount, goalUnit(ds, name)),
				goalCell: "-",
				progress: "-",
			}
			if g, ok := goal.ResolveFor(ds, name, refDay); ok {
				if target := scopeTarget(g, scope, len(days)); target > 0 {
					pct := progress.Percent(t.Amount, target)
					row.goalCell = workout.FormatAmount(target, goalUnit(ds, name))
					row.progress = fmt.Sprintf("%s %3d%%", renderBar(pct, bar), pct)
				}
			}
			rows = append(rows, row)
		}
	}

	if len(rows) == 0 {
		_, _ = fmt.Fprintln(w, Silent(fmt.Sprintf("No entries %s.", scopeLabel(scope, refDay))))
		return nil
	}

	sort.Slice(rows, func(i, j int) bool { return rows[i].name < rows[j].name })

	tableRows := make([][]string, 0, len(rows))
	anyLastDay := false
	for _, r := range rows {
		progressCell := r.progress
		if r.lastDay {
			progressCell += " !"
			anyLastDay = true
		}
		tableRows = append(tableRows, []string{r.name, r.total, r.goalCell, progressCell})
	}

	_, _ = fmt.Fprint(w, renderTable(
		[]tableCol{
			{"Exercise", nameColWidth},
			{"Total", 18},
			{"Goal", 14},
			{"Progress", bar.Width + 9},
		},
		tableRows,
	))
	if anyLastDay {
		_, _ = fmt.Fprintln(w, Warning("! weekly goal still open, last day of the week"))
	}
	return nil
}

// scopeTarget returns the goal amount a scope is measured against: the weekly
// target for week scopes when present, otherwise the appropriate per-day
// target scaled across the scope.
func scopeTarget(g workout.GoalSnapshot, scope listScope, numDays int) float64 {
	sets := g.Sets
	if sets < 1 {
		sets = 1
	}
	if scope == scopeWeek && g.Weekly > 0 {
		return g.Weekly * float64(sets)
	}
	if g.Daily > 0 {
		target := g.Daily * float64(sets)
		if scope != scopeDay {
			target *= float64(numDays)
		}
		return target
	}
	if g.Weekly > 0 && scope != scopeDay {
		return g.Weekly * float64(sets) * float64(numDays) / 7
	}
	return g.Weekly * float64(sets)
}

func scopeLabel(scope listScope, refDay string) string {
	switch scope {
	case scopeWeek:
		return "in the week of " + refDay
	case scopeMonth:
		return "in the month of " + refDay
	}
	return "for " + refDay
}

func filterEntries(entries []workout.Entry, filter string) []workout.Entry {
	if filter == "" {
		return entries
	}
	var kept []workout.Entry
	for _, e := range entries {
		if strings.EqualFold(e.ExerciseType, filter) {
			kept = append(kept, e)
		}
	}
	return kept
}

func filterTotals(totals map[string]progress.Totals, filter string) map[string]progress.Totals {
	if filter == "" {
		return totals
	}
	for name := range totals {
		if !strings.EqualFold(name, filter) {
			delete(totals, name)
		}
	}
	return totals
}

func sortedTotalNames(totals map[string]progress.Totals) []string {
	names := make([]string, 0, len(totals))
	for name := range totals {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// describeEntry renders one entry's amount with its sets and weight.
func describeEntry(e workout.Entry) string {
	s := workout.FormatAmount(e.Amount, e.Unit)
	if e.Sets > 1 {
		s += fmt.Sprintf(" x %d", e.Sets)
	}
	if e.Weight > 0 {
		s += fmt.Sprintf(" @ %s kg", workout.FormatNumber(e.Weight))
	}
	return s
}

// describeTotals renders aggregated totals: amount, set count, weight moved.
func describeTotals(t progress.Totals, unit string) string {
	s := workout.FormatAmount(t.Amount, unit)
	if t.Sets > 0 {
		s += fmt.Sprintf(" in %d sets", t.Sets)
	}
	if t.WeightTotal > 0 {
		s += fmt.Sprintf(", %s kg moved", workout.FormatNumber(t.WeightTotal))
	}
	return s
}
