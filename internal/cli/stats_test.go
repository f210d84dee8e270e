package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/flyndre/trainlog/internal/workout"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execStats(homeDir string, days int, month bool, exercise, muscle, output, export string) (string, error) {
	stdout := new(bytes.Buffer)
	cmd := statsCmd
	cmd.SetOut(stdout)
	err := runStats(cmd, homeDir, days, month, exercise, muscle, output, export, fixedNow)
	return stdout.String(), err
}

func seedStatsData(t *testing.T, homeDir string) {
	t.Helper()
	writeEntries(t, homeDir, "2025-06-13",
		workout.Entry{ExerciseType: "curl", Amount: 10, Unit: workout.UnitReps, Weight: 5, Sets: 2, Timestamp: "08:00:00"},
	)
	writeEntries(t, homeDir, "2025-06-14", repsEntry("pushup", 50, 3))
	writeEntries(t, homeDir, "2025-06-15",
		repsEntry("pushup", 60, 1),
		workout.Entry{ExerciseType: "curl", Amount: 10, Unit: workout.UnitReps, Weight: 6, Sets: 1, Timestamp: "09:00:00"},
	)
}

func TestStatsSections(t *testing.T) {
	homeDir := t.TempDir()
	seedStatsData(t, homeDir)

	stdout, err := execStats(homeDir, 0, false, "", "", "", "")

	require.NoError(t, err)
	assert.Contains(t, stdout, "--- Statistics (last 30 days) ---")

	// Exercise summary: pushup logged 50x3 + 60x1 across two days.
	assert.Contains(t, stdout, "Exercises")
	assert.Contains(t, stdout, "210 reps")
	assert.Contains(t, stdout, "105 reps") // average per active day

	// Muscle groups from the type definitions.
	assert.Contains(t, stdout, "Muscle groups")
	assert.Contains(t, stdout, "chest")
	assert.Contains(t, stdout, "biceps")

	// Curl max weight went from 5 kg to 6 kg.
	assert.Contains(t, stdout, "Weight progression")
	assert.Contains(t, stdout, "5 kg (2025-06-13)")
	assert.Contains(t, stdout, "6 kg (2025-06-15)")
	assert.Contains(t, stdout, "+20%")

	// Pushup target 150 hit on one of thirty days.
	assert.Contains(t, stdout, "Goal achievement")
	assert.Contains(t, stdout, "1/30")
	assert.Contains(t, stdout, "3%")

	assert.Contains(t, stdout, "Streaks")
	assert.Contains(t, stdout, "2d")
}

func TestStatsExerciseFilterDropsMuscles(t *testing.T) {
	homeDir := t.TempDir()
	seedStatsData(t, homeDir)

	stdout, err := execStats(homeDir, 0, false, "pushup", "", "", "")

	require.NoError(t, err)
	assert.Contains(t, stdout, "exercise pushup")
	assert.Contains(t, stdout, "210 reps")
	assert.NotContains(t, stdout, "Muscle groups")
	assert.NotContains(t, stdout, "curl")
}

func TestStatsMuscleFilter(t *testing.T) {
	homeDir := t.TempDir()
	seedStatsData(t, homeDir)

	stdout, err := execStats(homeDir, 0, false, "", "chest", "", "")

	require.NoError(t, err)
	assert.Contains(t, stdout, "muscle chest")
	assert.Contains(t, stdout, "pushup")
	assert.NotContains(t, stdout, "biceps")
}

func TestStatsMonthScope(t *testing.T) {
	homeDir := t.TempDir()
	seedStatsData(t, homeDir)

	stdout, err := execStats(homeDir, 0, true, "", "", "", "")

	require.NoError(t, err)
	assert.Contains(t, stdout, "--- Statistics (June 2025) ---")
	// The month scope counts 15 days so far.
	assert.Contains(t, stdout, "1/15")
}

func TestStatsEmptyScope(t *testing.T) {
	homeDir := t.TempDir()

	stdout, err := execStats(homeDir, 0, false, "", "", "", "")

	require.NoError(t, err)
	assert.Contains(t, stdout, "No entries found (last 30 days).")
}

func TestStatsEmptyScopeNamesFilters(t *testing.T) {
	homeDir := t.TempDir()

	stdout, err := execStats(homeDir, 0, false, "pushup", "chest", "", "")

	require.NoError(t, err)
	assert.Contains(t, stdout, "No entries found (last 30 days, exercise pushup, muscle chest).")
}

func TestStatsUnknownExercise(t *testing.T) {
	homeDir := t.TempDir()

	_, err := execStats(homeDir, 0, false, "deadlift", "", "", "")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown exercise")
}

func TestStatsDaysMonthExclusive(t *testing.T) {
	homeDir := t.TempDir()

	_, err := execStats(homeDir, 14, true, "", "", "", "")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "mutually exclusive")
}

func TestStatsOutputFile(t *testing.T) {
	homeDir := t.TempDir()
	seedStatsData(t, homeDir)
	path := filepath.Join(t.TempDir(), "report.txt")

	stdout, err := execStats(homeDir, 0, false, "", "", path, "")

	require.NoError(t, err)
	assert.Contains(t, stdout, "Report written to "+path)
	assert.NotContains(t, stdout, "Exercises")

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "--- Statistics (last 30 days) ---")
	assert.Contains(t, string(content), "210 reps")
}

func TestStatsExportPDF(t *testing.T) {
	homeDir := t.TempDir()
	seedStatsData(t, homeDir)
	path := filepath.Join(t.TempDir(), "report.pdf")

	stdout, err := execStats(homeDir, 0, false, "", "", "", path)

	require.NoError(t, err)
	assert.Contains(t, stdout, "Exported report to "+path)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.True(t, info.Size() > 0)
}
