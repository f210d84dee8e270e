// Package goal decides which goal version applies on a given day and
// provides the week arithmetic behind weekly targets.
package goal

import (
	"sort"

	"github.com/flyndre/trainlog/internal/workout"
)

// Resolve returns the goal snapshot in effect on day for one exercise.
// Candidates are the archived history plus the current snapshot; the newest
// snapshot whose effective date is on or before day wins. A snapshot without
// an effective date applies from the beginning of time. ok is false when no
// snapshot was effective yet.
func Resolve(history []workout.GoalSnapshot, current *workout.GoalSnapshot, day string) (workout.GoalSnapshot, bool) {
	candidates := make([]workout.GoalSnapshot, 0, len(history)+1)
	candidates = append(candidates, history...)
	if current != nil {
		candidates = append(candidates, *current)
	}

	// Stable: equal effective dates keep candidate order, so the current
	// snapshot beats an archived one from the same day.
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].EffectiveDate < candidates[j].EffectiveDate
	})

	var resolved workout.GoalSnapshot
	ok := false
	for _, c := range candidates {
		if c.EffectiveDate <= day {
			resolved = c
			ok = true
		}
	}
	return resolved, ok
}

// ResolveFor resolves the goal for an exercise out of the dataset.
func ResolveFor(ds *workout.Dataset, name, day string) (workout.GoalSnapshot, bool) {
	var current *workout.GoalSnapshot
	if g, ok := ds.Goals[name]; ok {
		current = &g
	}
	return Resolve(ds.GoalHistory[name], current, day)
}
