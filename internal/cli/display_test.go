package cli

import (
	"testing"

	"github.com/flyndre/trainlog/internal/progress"
	"github.com/flyndre/trainlog/internal/workout"
	"github.com/stretchr/testify/assert"
)

func TestRenderBar(t *testing.T) {
	bar := workout.BarSettings{Width: 20, Filled: "█", Empty: "░"}

	tests := []struct {
		percent int
		want    string
	}{
		{0, "[░░░░░░░░░░░░░░░░░░░░]"},
		{40, "[████████░░░░░░░░░░░░]"},
		{100, "[████████████████████]"},
		{150, "[████████████████████]"}, // clamped
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, renderBar(tt.percent, bar))
	}
}

func TestRenderBarTruncatesPartialCells(t *testing.T) {
	bar := workout.BarSettings{Width: 10, Filled: "#", Empty: "-"}

	// 55% of 10 cells is 5.5; partial cells never round up.
	assert.Equal(t, "[#####-----]", renderBar(55, bar))
}

func TestGoalTarget(t *testing.T) {
	assert.Equal(t, 150.0, goalTarget(workout.GoalSnapshot{Daily: 50, Sets: 3}))
	assert.Equal(t, 100.0, goalTarget(workout.GoalSnapshot{Weekly: 100}))
	assert.Equal(t, 60.0, goalTarget(workout.GoalSnapshot{Weekly: 30, Sets: 2}))
}

func TestProgressLine(t *testing.T) {
	bar := workout.DefaultSettings().Bar
	row := progress.TodayRow{
		Name:   "pushup",
		Unit:   workout.UnitReps,
		Totals: progress.Totals{Amount: 60},
		Goal:   workout.GoalSnapshot{Daily: 50, Sets: 3},
		Result: progress.Result{RepsPercent: 40},
	}

	line := progressLine(row, bar)
	assert.Contains(t, line, "pushup")
	assert.Contains(t, line, "[████████░░░░░░░░░░░░]")
	assert.Contains(t, line, "40%")
	assert.Contains(t, line, "60 reps / 150 reps")
	assert.NotContains(t, line, "this week")
}

func TestProgressLineWeeklyFinalDay(t *testing.T) {
	bar := workout.DefaultSettings().Bar
	row := progress.TodayRow{
		Name:         "run",
		Unit:         workout.UnitKm,
		Totals:       progress.Totals{Amount: 12},
		Goal:         workout.GoalSnapshot{Weekly: 20, Sets: 1},
		Result:       progress.Result{RepsPercent: 60, WeeklyOnly: true},
		WeekToDate:   true,
		FinalWeekDay: true,
	}

	line := progressLine(row, bar)
	assert.Contains(t, line, "this week")
	assert.Contains(t, line, "(last day)")
}

func TestWeightLine(t *testing.T) {
	bar := workout.DefaultSettings().Bar
	row := progress.TodayRow{
		Name:   "curl",
		Unit:   workout.UnitReps,
		Totals: progress.Totals{Amount: 30, WeightTotal: 150},
		Goal:   workout.GoalSnapshot{Daily: 20, Sets: 3, Weight: 5},
		Result: progress.Result{RepsPercent: 50, WeightPercent: 50},
	}

	line := weightLine(row, bar)
	assert.Contains(t, line, "weight")
	assert.Contains(t, line, "50%")
	assert.Contains(t, line, "150 / 300 kg")
}

func TestRenderTable(t *testing.T) {
	out := renderTable(
		[]tableCol{{"Exercise", 10}, {"Total", 8}},
		[][]string{
			{"pushup", "60 reps"},
			{"plank", "2m 0s"},
		},
	)

	assert.Contains(t, out, "Exercise")
	assert.Contains(t, out, "-+-")
	assert.Contains(t, out, "pushup")
	assert.Contains(t, out, "2m 0s")
}

func TestPadRight(t *testing.T) {
	assert.Equal(t, "abc  ", padRight("abc", 5))
	assert.Equal(t, "abcde", padRight("abcdefg", 5))
}

func TestPadCenter(t *testing.T) {
	assert.Equal(t, " ab  ", padCenter("ab", 5))
	assert.Equal(t, "abcde", padCenter("abcdefg", 5))
}
