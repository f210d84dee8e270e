package progress

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flyndre/trainlog/internal/workout"
)

func statsDataset() *workout.Dataset {
	ds := &workout.Dataset{
		Entries: map[string][]workout.Entry{},
		Goals: map[string]workout.GoalSnapshot{
			"curl": {Daily: 20, Sets: 1, Weight: 5, EffectiveDate: "2023-01-01"},
		},
		GoalHistory: map[string][]workout.GoalSnapshot{},
		ExerciseTypes: map[string]workout.ExerciseType{
			"curl":  {Unit: workout.UnitReps, MuscleGroups: []string{"biceps", "forearms"}},
			"plank": {Unit: workout.UnitSeconds, MuscleGroups: []string{"core"}},
		},
	}
	ds.AddEntry("2025-06-13", workout.Entry{ExerciseType: "curl", Amount: 20, Unit: workout.UnitReps, Weight: 5, Sets: 1, Timestamp: "09:00:00"})
	ds.AddEntry("2025-06-14", workout.Entry{ExerciseType: "curl", Amount: 25, Unit: workout.UnitReps, Weight: 7.5, Sets: 1, Timestamp: "09:00:00"})
	ds.AddEntry("2025-06-14", workout.Entry{ExerciseType: "plank", Amount: 60, Unit: workout.UnitSeconds, Sets: 1, Timestamp: "10:00:00"})
	return ds
}

func statsDays() []string {
	return []string{"2025-06-13", "2025-06-14", "2025-06-15"}
}

func TestBuildStats_ExerciseSummary(t *testing.T) {
	stats := BuildStats(statsDataset(), statsDays(), "", "")

	require.Len(t, stats.Exercises, 2)
	curl := stats.Exercises[0]
	assert.Equal(t, "curl", curl.Name)
	assert.Equal(t, workout.UnitReps, curl.Unit)
	assert.Equal(t, float64(45), curl.Total)
	assert.Equal(t, 2, curl.Sets)
	assert.Equal(t, float64(287.5), curl.WeightTotal) // 20*5 + 25*7.5
	assert.Equal(t, 2, curl.ActiveDays)
	assert.Equal(t, 22.5, curl.AvgPerDay)
	assert.Equal(t, 7.5, curl.MaxWeight)

	plank := stats.Exercises[1]
	assert.Equal(t, "plank", plank.Name)
	assert.Equal(t, workout.UnitSeconds, plank.Unit)
	assert.Equal(t, 1, plank.ActiveDays)
}

func TestBuildStats_MuscleSummary(t *testing.T) {
	stats := BuildStats(statsDataset(), statsDays(), "", "")

	require.Len(t, stats.Muscles, 3)
	assert.Equal(t, "biceps", stats.Muscles[0].Name)
	assert.Equal(t, float64(45), stats.Muscles[0].Total)
	assert.Equal(t, []string{"curl"}, stats.Muscles[0].Exercises)
	assert.Equal(t, "core", stats.Muscles[1].Name)
	assert.Equal(t, "forearms", stats.Muscles[2].Name)
}

func TestBuildStats_ExerciseFilterDropsMuscleSummary(t *testing.T) {
	stats := BuildStats(statsDataset(), statsDays(), "curl", "")

	require.Len(t, stats.Exercises, 1)
	assert.Equal(t, "curl", stats.Exercises[0].Name)
	assert.Empty(t, stats.Muscles)
	require.Len(t, stats.Streaks, 1)
	assert.Equal(t, "curl", stats.Streaks[0].Name)
}

func TestBuildStats_MuscleFilterNarrowsScope(t *testing.T) {
	stats := BuildStats(statsDataset(), statsDays(), "", "core")

	require.Len(t, stats.Exercises, 1)
	assert.Equal(t, "plank", stats.Exercises[0].Name)
	require.Len(t, stats.Muscles, 1)
	assert.Equal(t, "core", stats.Muscles[0].Name)
}

func TestBuildStats_WeightProgression(t *testing.T) {
	stats := BuildStats(statsDataset(), statsDays(), "", "")

	require.Len(t, stats.Progressions, 1)
	wp := stats.Progressions[0]
	assert.Equal(t, "curl", wp.Name)
	require.Len(t, wp.Points, 2)
	assert.Equal(t, WeightPoint{Day: "2025-06-13", Weight: 5}, wp.Points[0])
	assert.Equal(t, WeightPoint{Day: "2025-06-14", Weight: 7.5}, wp.Points[1])
	assert.InDelta(t, 50, wp.Change, 0.001)
}

func TestBuildStats_ProgressionNeedsTwoWeightedDays(t *testing.T) {
	ds := statsDataset()
	ds.RemoveEntries("2025-06-13", "curl")

	stats := BuildStats(ds, statsDays(), "", "")
	assert.Empty(t, stats.Progressions)
}

func TestBuildStats_GoalAchievement(t *testing.T) {
	stats := BuildStats(statsDataset(), statsDays(), "", "")

	require.Len(t, stats.Achievements, 1)
	ga := stats.Achievements[0]
	assert.Equal(t, "curl", ga.Name)
	assert.Equal(t, float64(20), ga.Target)
	assert.Equal(t, 3, ga.DaysCounted)
	assert.Equal(t, 2, ga.DaysAchieved) // 20 and 25, nothing on the 15th
	assert.Equal(t, 66, ga.Rate)        // floor(100*2/3)
}

func TestBuildStats_AchievementCountsDaysUnderEffectiveGoal(t *testing.T) {
	ds := statsDataset()
	// No goal existed before the 14th.
	ds.Goals["curl"] = workout.GoalSnapshot{Daily: 20, Sets: 1, EffectiveDate: "2025-06-14"}

	stats := BuildStats(ds, statsDays(), "", "")

	require.Len(t, stats.Achievements, 1)
	ga := stats.Achievements[0]
	assert.Equal(t, 2, ga.DaysCounted)
	assert.Equal(t, 1, ga.DaysAchieved)
	assert.Equal(t, 50, ga.Rate)
}

func TestBuildStats_AchievementSkipsWeeklyOnlyGoals(t *testing.T) {
	ds := statsDataset()
	ds.Goals["plank"] = workout.GoalSnapshot{Weekly: 600, Sets: 1, EffectiveDate: "2023-01-01"}

	stats := BuildStats(ds, statsDays(), "", "")

	require.Len(t, stats.Achievements, 1)
	assert.Equal(t, "curl", stats.Achievements[0].Name)
}

func TestBuildStats_Streaks(t *testing.T) {
	ds := statsDataset()
	ds.AddEntry("2025-06-15", workout.Entry{ExerciseType: "curl", Amount: 10, Unit: workout.UnitReps, Sets: 1, Timestamp: "09:00:00"})

	stats := BuildStats(ds, statsDays(), "", "")

	byName := map[string]Streak{}
	for _, s := range stats.Streaks {
		byName[s.Name] = s
	}

	assert.Equal(t, Streak{Name: "curl", Current: 3, Longest: 3}, byName["curl"])
	// plank logged only on the 14th: streak broken by the 15th.
	assert.Equal(t, Streak{Name: "plank", Current: 0, Longest: 1}, byName["plank"])
}

func TestBuildStats_Empty(t *testing.T) {
	ds := &workout.Dataset{Entries: map[string][]workout.Entry{}}

	stats := BuildStats(ds, statsDays(), "", "")
	assert.True(t, stats.Empty())
}
