package workout

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// Units an exercise type can be measured in.
const (
	UnitReps    = "reps"
	UnitSeconds = "seconds"
	UnitKm      = "km"
)

// Units lists the valid measurement units in display order.
func Units() []string {
	return []string{UnitReps, UnitSeconds, UnitKm}
}

// ValidUnit reports whether unit is one of the supported measurement units.
func ValidUnit(unit string) bool {
	return unit == UnitReps || unit == UnitSeconds || unit == UnitKm
}

// Entry represents a single logged exercise on a given day.
type Entry struct {
	ExerciseType string  `json:"exercise_type"`
	Amount       float64 `json:"amount"`
	Unit         string  `json:"unit"`
	Weight       float64 `json:"weight,omitempty"`
	Sets         int     `json:"sets,omitempty"`
	Timestamp    string  `json:"timestamp"`
}

// GoalSnapshot is one version of a goal for an exercise, tagged with the day
// it took effect. A zero Daily or Weekly means that target is not set.
type GoalSnapshot struct {
	Daily         float64 `json:"daily,omitempty"`
	Weekly        float64 `json:"weekly,omitempty"`
	Sets          int     `json:"sets"`
	Weight        float64 `json:"weight"`
	EffectiveDate string  `json:"effective_date,omitempty"`
}

// ExerciseType describes how an exercise is measured and the muscle groups
// it trains.
type ExerciseType struct {
	Unit         string   `json:"unit"`
	MuscleGroups []string `json:"muscle_groups"`
}

// Dataset is the complete persisted state: entries keyed by day, the current
// goal per exercise, archived goal versions, and the exercise type registry.
type Dataset struct {
	Entries       map[string][]Entry        `json:"entries"`
	Goals         map[string]GoalSnapshot   `json:"goals"`
	GoalHistory   map[string][]GoalSnapshot `json:"goal_history"`
	ExerciseTypes map[string]ExerciseType   `json:"exercise_types"`
}

// DefaultDataset returns a fresh dataset seeded with the starter goals and
// exercise types. Each call returns an independent value.
func DefaultDataset() *Dataset {
	return &Dataset{
		Entries: map[string][]Entry{},
		Goals: map[string]GoalSnapshot{
			"pushup": {Daily: 50, Sets: 3, Weight: 0, EffectiveDate: "2023-01-01"},
			"squat":  {Daily: 30, Sets: 3, Weight: 0, EffectiveDate: "2023-01-01"},
			"curl":   {Daily: 20, Sets: 3, Weight: 5, EffectiveDate: "2023-01-01"},
		},
		GoalHistory: map[string][]GoalSnapshot{},
		ExerciseTypes: map[string]ExerciseType{
			"pushup": {Unit: UnitReps, MuscleGroups: []string{"chest", "triceps", "shoulders"}},
			"squat":  {Unit: UnitReps, MuscleGroups: []string{"quadriceps", "hamstrings", "glutes"}},
			"curl":   {Unit: UnitReps, MuscleGroups: []string{"biceps", "forearms"}},
			"plank":  {Unit: UnitSeconds, MuscleGroups: []string{"core", "shoulders"}},
			"run":    {Unit: UnitKm, MuscleGroups: []string{"cardiovascular", "legs"}},
		},
	}
}

// DayFormat is the key format for entry days and effective dates.
const DayFormat = "2006-01-02"

// Day returns the dataset day key for a point in time.
func Day(t time.Time) string {
	return t.Format(DayFormat)
}

// ParseDay parses a YYYY-MM-DD day key.
func ParseDay(s string) (time.Time, error) {
	t, err := time.Parse(DayFormat, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (expected YYYY-MM-DD)", s)
	}
	return t, nil
}

// ResolveType finds an exercise type by name, case-insensitively.
// Returns the canonical name and definition.
func (d *Dataset) ResolveType(name string) (string, ExerciseType, bool) {
	if t, ok := d.ExerciseTypes[name]; ok {
		return name, t, true
	}
	for n, t := range d.ExerciseTypes {
		if strings.EqualFold(n, name) {
			return n, t, true
		}
	}
	return "", ExerciseType{}, false
}

// TypeNames returns the registered exercise type names, sorted.
func (d *Dataset) TypeNames() []string {
	names := make([]string, 0, len(d.ExerciseTypes))
	for n := range d.ExerciseTypes {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// GoalNames returns the exercises with a current goal, sorted.
func (d *Dataset) GoalNames() []string {
	names := make([]string, 0, len(d.Goals))
	for n := range d.Goals {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// EntryDays returns the days with at least one entry, sorted ascending.
func (d *Dataset) EntryDays() []string {
	days := make([]string, 0, len(d.Entries))
	for day := range d.Entries {
		days = append(days, day)
	}
	sort.Strings(days)
	return days
}

// AddEntry appends an entry under the given day key.
func (d *Dataset) AddEntry(day string, e Entry) {
	if d.Entries == nil {
		d.Entries = map[string][]Entry{}
	}
	d.Entries[day] = append(d.Entries[day], e)
}

// RemoveEntries drops entries matching the given day and exercise type.
// An empty day matches every day; an empty typeName matches every type.
// Day keys left without entries are removed. Returns the number dropped.
func (d *Dataset) RemoveEntries(day, typeName string) int {
	removed := 0
	for key, entries := range d.Entries {
		if day != "" && key != day {
			continue
		}
		kept := entries[:0]
		for _, e := range entries {
			if typeName == "" || strings.EqualFold(e.ExerciseType, typeName) {
				removed++
				continue
			}
			kept = append(kept, e)
		}
		if len(kept) == 0 {
			delete(d.Entries, key)
		} else {
			d.Entries[key] = kept
		}
	}
	return removed
}

// SetGoal installs snap as the current goal for the exercise. An existing
// current snapshot is archived into the history first.
func (d *Dataset) SetGoal(name string, snap GoalSnapshot) {
	d.archiveGoal(name)
	if d.Goals == nil {
		d.Goals = map[string]GoalSnapshot{}
	}
	d.Goals[name] = snap
}

// DeleteGoal moves the current goal for the exercise into the history.
// Reports whether a current goal existed.
func (d *Dataset) DeleteGoal(name string) bool {
	if _, ok := d.Goals[name]; !ok {
		return false
	}
	d.archiveGoal(name)
	delete(d.Goals, name)
	return true
}

// archiveGoal appends the current snapshot to the history, keeping the
// history sorted ascending by effective date. Snapshots without an effective
// date sort first; equal dates preserve insertion order.
func (d *Dataset) archiveGoal(name string) {
	current, ok := d.Goals[name]
	if !ok {
		return
	}
	if d.GoalHistory == nil {
		d.GoalHistory = map[string][]GoalSnapshot{}
	}
	history := append(d.GoalHistory[name], current)
	sort.SliceStable(history, func(i, j int) bool {
		return history[i].EffectiveDate < history[j].EffectiveDate
	})
	d.GoalHistory[name] = history
}

// TypeInUse reports whether any entry or goal still references the exercise
// type.
func (d *Dataset) TypeInUse(name string) bool {
	for _, entries := range d.Entries {
		for _, e := range entries {
			if strings.EqualFold(e.ExerciseType, name) {
				return true
			}
		}
	}
	if _, ok := d.Goals[name]; ok {
		return true
	}
	if len(d.GoalHistory[name]) > 0 {
		return true
	}
	return false
}
