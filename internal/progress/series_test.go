package progress

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flyndre/trainlog/internal/workout"
)

func seriesDataset() *workout.Dataset {
	ds := &workout.Dataset{
		Entries: map[string][]workout.Entry{},
		Goals: map[string]workout.GoalSnapshot{
			"curl": {Daily: 20, Sets: 3, Weight: 5, EffectiveDate: "2023-01-01"},
		},
		GoalHistory: map[string][]workout.GoalSnapshot{},
		ExerciseTypes: map[string]workout.ExerciseType{
			"curl": {Unit: workout.UnitReps, MuscleGroups: []string{"biceps"}},
		},
	}
	ds.AddEntry("2025-06-13", workout.Entry{ExerciseType: "curl", Amount: 20, Unit: workout.UnitReps, Weight: 5, Sets: 2, Timestamp: "09:00:00"})
	ds.AddEntry("2025-06-15", workout.Entry{ExerciseType: "curl", Amount: 10, Unit: workout.UnitReps, Weight: 10, Sets: 1, Timestamp: "09:00:00"})
	return ds
}

func TestBuildSeries_Reps(t *testing.T) {
	days := []string{"2025-06-13", "2025-06-14", "2025-06-15"}

	s := BuildSeries(seriesDataset(), "curl", MetricReps, days)

	assert.Equal(t, []float64{40, 0, 10}, s.Values)
	assert.Equal(t, float64(60), s.Goal) // 20 * 3 sets
	assert.True(t, s.HasData())
	assert.Equal(t, float64(60), s.Max())
}

func TestBuildSeries_Weight(t *testing.T) {
	days := []string{"2025-06-13", "2025-06-14", "2025-06-15"}

	s := BuildSeries(seriesDataset(), "curl", MetricWeight, days)

	assert.Equal(t, []float64{200, 0, 100}, s.Values) // 20*5*2, 0, 10*10*1
	assert.Equal(t, float64(300), s.Goal)             // 20 * 3 * 5
}

func TestBuildSeries_WeightPerRep(t *testing.T) {
	days := []string{"2025-06-13", "2025-06-14", "2025-06-15"}

	s := BuildSeries(seriesDataset(), "curl", MetricWeightPerRep, days)

	assert.Equal(t, []float64{5, 0, 10}, s.Values)
	assert.Equal(t, float64(5), s.Goal) // the goal's assumed weight
}

func TestBuildSeries_NoGoalLineWithoutWeight(t *testing.T) {
	ds := seriesDataset()
	ds.Goals["curl"] = workout.GoalSnapshot{Daily: 20, Sets: 3, EffectiveDate: "2023-01-01"}

	s := BuildSeries(ds, "curl", MetricWeight, []string{"2025-06-13"})
	assert.Equal(t, float64(0), s.Goal)
}

func TestBuildSeries_GoalResolvedAtRangeStart(t *testing.T) {
	ds := seriesDataset()
	ds.GoalHistory["curl"] = []workout.GoalSnapshot{
		{Daily: 10, Sets: 1, EffectiveDate: "2022-01-01"},
	}
	ds.Goals["curl"] = workout.GoalSnapshot{Daily: 20, Sets: 3, Weight: 5, EffectiveDate: "2025-06-14"}

	// The range starts before the current goal took effect.
	s := BuildSeries(ds, "curl", MetricReps, []string{"2025-06-13", "2025-06-14"})
	assert.Equal(t, float64(10), s.Goal)
}

func TestBuildSeries_NoData(t *testing.T) {
	s := BuildSeries(seriesDataset(), "curl", MetricReps, []string{"2025-01-01", "2025-01-02"})

	assert.False(t, s.HasData())
	assert.Equal(t, float64(60), s.Goal) // target line survives empty data
}

func TestValidMetric(t *testing.T) {
	for _, m := range Metrics() {
		assert.True(t, ValidMetric(m), m)
	}
	assert.False(t, ValidMetric("pace"))
}

func TestActiveTypes(t *testing.T) {
	ds := seriesDataset()
	ds.AddEntry("2025-06-14", workout.Entry{ExerciseType: "plank", Amount: 60, Unit: workout.UnitSeconds, Sets: 1, Timestamp: "08:00:00"})

	require.Equal(t,
		[]string{"curl", "plank"},
		ActiveTypes(ds, []string{"2025-06-13", "2025-06-14", "2025-06-15"}),
	)
	assert.Empty(t, ActiveTypes(ds, []string{"2025-01-01"}))
}
