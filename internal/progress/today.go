package progress

import (
	"time"

	"github.com/flyndre/trainlog/internal/goal"
	"github.com/flyndre/trainlog/internal/workout"
)

// TodayRow is one line of the daily goal dashboard.
type TodayRow struct {
	Name   string
	Unit   string
	Totals Totals
	Goal   workout.GoalSnapshot
	Result Result

	// WeekToDate marks rows whose totals cover the goal week so far
	// instead of just today. FinalWeekDay flags that today closes that
	// week.
	WeekToDate   bool
	FinalWeekDay bool
}

// TodayView builds one row per configured goal for the day containing now,
// sorted by exercise name. Daily goals report today's totals, zero when
// nothing was logged; weekly-only goals report week-to-date totals.
// Exercises whose goal is not yet in effect are skipped.
func TodayView(ds *workout.Dataset, now time.Time) ([]TodayRow, error) {
	day := workout.Day(now)
	todayTotals := Aggregate(ds.Entries[day])

	// Week-to-date totals are only aggregated when a weekly-only goal
	// needs them.
	var weekTotals map[string]Totals

	var rows []TodayRow
	for _, name := range ds.GoalNames() {
		g, ok := goal.ResolveFor(ds, name, day)
		if !ok {
			continue
		}

		row := TodayRow{Name: name, Unit: workout.UnitReps, Goal: g}
		if _, def, found := ds.ResolveType(name); found {
			row.Unit = def.Unit
		}

		if g.Daily == 0 && g.Weekly > 0 {
			if weekTotals == nil {
				days, err := WeekDays(now)
				if err != nil {
					return nil, err
				}
				weekTotals = AggregateDays(ds, days)
			}
			row.Totals = weekTotals[name]
			row.WeekToDate = true
			row.FinalWeekDay = goal.IsFinalWeekDay(now)
		} else {
			row.Totals = todayTotals[name]
		}

		row.Result = ComputeOne(row.Totals, g)
		rows = append(rows, row)
	}

	return rows, nil
}
