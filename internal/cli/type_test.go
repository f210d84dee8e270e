package cli

import (
	"bytes"
	"testing"

	"github.com/flyndre/trainlog/internal/workout"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execTypeList(homeDir string) (string, error) {
	stdout := new(bytes.Buffer)
	cmd := typeListCmd
	cmd.SetOut(stdout)
	err := runTypeList(cmd, homeDir, fixedNow)
	return stdout.String(), err
}

func execTypeAdd(homeDir, name, unit, muscles string, pk PromptKit) (string, error) {
	stdout := new(bytes.Buffer)
	cmd := typeAddCmd
	cmd.SetOut(stdout)
	err := runTypeAdd(cmd, homeDir, name, unit, muscles, pk, fixedNow)
	return stdout.String(), err
}

func execTypeRemove(homeDir, name string, confirm ConfirmFunc) (string, error) {
	stdout := new(bytes.Buffer)
	cmd := typeRemoveCmd
	cmd.SetOut(stdout)
	err := runTypeRemove(cmd, homeDir, name, confirm, fixedNow)
	return stdout.String(), err
}

func TestTypeListShowsSeededTypes(t *testing.T) {
	homeDir := t.TempDir()

	stdout, err := execTypeList(homeDir)

	require.NoError(t, err)
	assert.Contains(t, stdout, "Name")
	assert.Contains(t, stdout, "Unit")
	assert.Contains(t, stdout, "pushup")
	assert.Contains(t, stdout, "chest, triceps, shoulders")
	assert.Contains(t, stdout, "seconds")
	assert.Contains(t, stdout, "km")
}

func TestTypeAddWithFlags(t *testing.T) {
	homeDir := t.TempDir()

	stdout, err := execTypeAdd(homeDir, "Bench Press", "reps", "chest,shoulders", PromptKit{})

	require.NoError(t, err)
	assert.Contains(t, stdout, "Registered bench_press (unit reps, muscles chest, shoulders)")

	ds, err := workout.ReadDataset(homeDir, fixedNow())
	require.NoError(t, err)
	typ, ok := ds.ExerciseTypes["bench_press"]
	require.True(t, ok)
	assert.Equal(t, workout.UnitReps, typ.Unit)
	assert.Equal(t, []string{"chest", "shoulders"}, typ.MuscleGroups)
}

func TestTypeAddPrompts(t *testing.T) {
	homeDir := t.TempDir()

	var selectTitle, promptTitle string
	pk := PromptKit{
		Select: func(title string, options []string) (int, error) {
			selectTitle = title
			return 2, nil // km
		},
		Prompt: func(title string) (string, error) {
			promptTitle = title
			return "", nil
		},
	}
	_, err := execTypeAdd(homeDir, "trail run", "", "", pk)

	require.NoError(t, err)
	assert.Equal(t, "Unit for trail_run", selectTitle)
	assert.Equal(t, "Muscle groups (comma-separated, default: general)", promptTitle)

	ds, err := workout.ReadDataset(homeDir, fixedNow())
	require.NoError(t, err)
	typ, ok := ds.ExerciseTypes["trail_run"]
	require.True(t, ok)
	assert.Equal(t, workout.UnitKm, typ.Unit)
	assert.Equal(t, []string{"general"}, typ.MuscleGroups)
}

func TestTypeAddDuplicate(t *testing.T) {
	homeDir := t.TempDir()

	_, err := execTypeAdd(homeDir, "Pushup", "reps", "chest", PromptKit{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
}

func TestTypeAddInvalidUnit(t *testing.T) {
	homeDir := t.TempDir()

	_, err := execTypeAdd(homeDir, "rowing", "laps", "back", PromptKit{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid --unit")
}

func TestTypeAddInvalidName(t *testing.T) {
	homeDir := t.TempDir()

	_, err := execTypeAdd(homeDir, "!!!", "reps", "", PromptKit{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid exercise name")
}

func TestTypeRemoveUnused(t *testing.T) {
	homeDir := t.TempDir()

	stdout, err := execTypeRemove(homeDir, "run", AlwaysYes())

	require.NoError(t, err)
	assert.Contains(t, stdout, "Removed exercise type run.")

	ds, err := workout.ReadDataset(homeDir, fixedNow())
	require.NoError(t, err)
	_, ok := ds.ExerciseTypes["run"]
	assert.False(t, ok)
}

func TestTypeRemoveInUse(t *testing.T) {
	homeDir := t.TempDir()

	// The seeded pushup goal keeps the type referenced.
	_, err := execTypeRemove(homeDir, "pushup", AlwaysYes())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "still referenced")
	assert.Contains(t, err.Error(), "clear --exercise pushup")
}

func TestTypeRemoveCancelled(t *testing.T) {
	homeDir := t.TempDir()

	declined := func(prompt string) (bool, error) { return false, nil }
	stdout, err := execTypeRemove(homeDir, "run", declined)

	require.NoError(t, err)
	assert.Contains(t, stdout, "cancelled")

	ds, err := workout.ReadDataset(homeDir, fixedNow())
	require.NoError(t, err)
	_, ok := ds.ExerciseTypes["run"]
	assert.True(t, ok)
}

func TestTypeRemoveUnknown(t *testing.T) {
	homeDir := t.TempDir()

	_, err := execTypeRemove(homeDir, "deadlift", AlwaysYes())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown exercise")
}

func TestTypeSubcommandsRegistered(t *testing.T) {
	commands := typeCmd.Commands()
	names := make([]string, len(commands))
	for i, cmd := range commands {
		names[i] = cmd.Name()
	}
	assert.Contains(t, names, "list")
	assert.Contains(t, names, "add")
	assert.Contains(t, names, "remove")
}
