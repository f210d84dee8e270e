package progress

import (
	"github.com/flyndre/trainlog/internal/workout"
)

// Totals is the per-exercise aggregate over a day scope.
type Totals struct {
	Amount      float64
	WeightTotal float64
	Sets        int
}

// Add returns the pointwise sum of two totals.
func (t Totals) Add(o Totals) Totals {
	return Totals{
		Amount:      t.Amount + o.Amount,
		WeightTotal: t.WeightTotal + o.WeightTotal,
		Sets:        t.Sets + o.Sets,
	}
}

// Aggregate sums one day's entries by exercise type. Each entry contributes
// amount*sets to the amount, amount*weight*sets to the weight total, and its
// sets to the set count. Iteration order never affects the result.
func Aggregate(entries []workout.Entry) map[string]Totals {
	totals := make(map[string]Totals)
	for _, e := range entries {
		sets := e.Sets
		if sets < 1 {
			sets = 1
		}
		t := totals[e.ExerciseType]
		t.Amount += e.Amount * float64(sets)
		t.WeightTotal += e.Amount * e.Weight * float64(sets)
		t.Sets += sets
		totals[e.ExerciseType] = t
	}
	return totals
}

// AggregateDays sums entries across the given day keys, pointwise by
// exercise type.
func AggregateDays(ds *workout.Dataset, days []string) map[string]Totals {
	totals := make(map[string]Totals)
	for _, day := range days {
		for name, t := range Aggregate(ds.Entries[day]) {
			totals[name] = totals[name].Add(t)
		}
	}
	return totals
}

// Result is the computed progress for one exercise against one goal
// snapshot.
type Result struct {
	RepsPercent   int
	WeightPercent int
	WeeklyOnly    bool
	WeeklyMet     bool
}

// Compute evaluates totals against goals for every exercise with a goal.
func Compute(totals map[string]Totals, goals map[string]workout.GoalSnapshot) map[string]Result {
	results := make(map[string]Result, len(goals))
	for name, g := range goals {
		results[name] = ComputeOne(totals[name], g)
	}
	return results
}

// ComputeOne evaluates one exercise's totals against its goal snapshot.
// Daily targets take precedence over weekly ones; WeeklyMet stays an exact
// comparison, separate from the truncated percent.
func ComputeOne(t Totals, g workout.GoalSnapshot) Result {
	goalSets := g.Sets
	if goalSets < 1 {
		goalSets = 1
	}

	r := Result{WeeklyOnly: g.Daily == 0 && g.Weekly > 0}

	switch {
	case g.Daily > 0:
		r.RepsPercent = Percent(t.Amount, g.Daily*float64(goalSets))
	case g.Weekly > 0:
		denom := g.Weekly * float64(goalSets)
		r.RepsPercent = Percent(t.Amount, denom)
		r.WeeklyMet = t.Amount >= denom
	}

	if g.Weight > 0 {
		target := g.Daily
		if target == 0 {
			target = g.Weekly
		}
		r.WeightPercent = Percent(t.WeightTotal, target*float64(goalSets)*g.Weight)
	}

	return r
}

// Percent returns value as a truncated percentage of denom, clamped to
// [0, 100]. A non-positive denom yields 0.
func Percent(value, denom float64) int {
	if denom <= 0 {
		return 0
	}
	p := int(value / denom * 100)
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}
