package workout

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// DataDir returns the trainlog state directory.
func DataDir(homeDir string) string {
	return filepath.Join(homeDir, ".trainlog")
}

// DataPath returns the path to the dataset file.
func DataPath(homeDir string) string {
	return filepath.Join(DataDir(homeDir), "data.json")
}

// ReadDataset reads the dataset file, upgrading older layouts in memory.
// A missing file yields the seeded default dataset without creating it.
// now keys legacy un-dated entries during the upgrade.
func ReadDataset(homeDir string, now time.Time) (*Dataset, error) {
	data, err := os.ReadFile(DataPath(homeDir))
	if errors.Is(err, os.ErrNotExist) {
		return DefaultDataset(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading dataset: %w", err)
	}

	ds, err := decodeDataset(data, now)
	if err != nil {
		return nil, fmt.Errorf("reading dataset: %w", err)
	}
	return ds, nil
}

func decodeDataset(data []byte, now time.Time) (*Dataset, error) {
	var raw struct {
		Entries       json.RawMessage           `json:"entries"`
		Goals         map[string]GoalSnapshot   `json:"goals"`
		GoalHistory   map[string][]GoalSnapshot `json:"goal_history"`
		ExerciseTypes map[string]ExerciseType   `json:"exercise_types"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}

	ds := &Dataset{
		Entries:       map[string][]Entry{},
		Goals:         raw.Goals,
		GoalHistory:   raw.GoalHistory,
		ExerciseTypes: raw.ExerciseTypes,
	}

	// The first file layout stored entries as one flat array; those all
	// belong to the day the upgrade runs.
	entries := bytes.TrimSpace(raw.Entries)
	switch {
	case len(entries) > 0 && entries[0] == '[':
		var flat []Entry
		if err := json.Unmarshal(entries, &flat); err != nil {
			return nil, err
		}
		ds.Entries[Day(now)] = flat
	case len(entries) > 0 && entries[0] == '{':
		if err := json.Unmarshal(entries, &ds.Entries); err != nil {
			return nil, err
		}
	}

	defaults := DefaultDataset()
	if ds.Goals == nil {
		ds.Goals = defaults.Goals
	}
	if ds.GoalHistory == nil {
		ds.GoalHistory = map[string][]GoalSnapshot{}
	}
	if ds.ExerciseTypes == nil {
		ds.ExerciseTypes = defaults.ExerciseTypes
	}

	// Goals written before goal versioning carry neither sets nor an
	// effective date.
	for name, g := range ds.Goals {
		if g.Sets == 0 {
			g.Sets = 3
		}
		if g.EffectiveDate == "" {
			g.EffectiveDate = "2023-01-01"
		}
		ds.Goals[name] = g
	}

	// Entries written before sets tracking count as a single set.
	for day, dayEntries := range ds.Entries {
		for i := range dayEntries {
			if dayEntries[i].Sets == 0 {
				dayEntries[i].Sets = 1
			}
		}
		ds.Entries[day] = dayEntries
	}

	return ds, nil
}

// WriteDataset writes the dataset file, creating the state directory if
// needed.
func WriteDataset(homeDir string, ds *Dataset) error {
	if err := os.MkdirAll(DataDir(homeDir), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(ds, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')

	return os.WriteFile(DataPath(homeDir), data, 0644)
}

// DeleteDataset removes the dataset file. A missing file is not an error;
// the next read starts over from the seeded defaults.
func DeleteDataset(homeDir string) error {
	err := os.Remove(DataPath(homeDir))
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}
