package progress

import (
	"sort"

	"github.com/flyndre/trainlog/internal/goal"
	"github.com/flyndre/trainlog/internal/workout"
)

// Chart metrics.
const (
	MetricReps         = "reps"
	MetricWeight       = "weight"
	MetricWeightPerRep = "weight_per_rep"
)

// Metrics lists the chart metrics in cycle order.
func Metrics() []string {
	return []string{MetricReps, MetricWeight, MetricWeightPerRep}
}

// ValidMetric reports whether m names a chart metric.
func ValidMetric(m string) bool {
	return m == MetricReps || m == MetricWeight || m == MetricWeightPerRep
}

// Series is one exercise's per-day metric line.
type Series struct {
	Name   string
	Metric string
	Days   []string
	Values []float64
	Goal   float64 // target line, 0 when none applies
}

// HasData reports whether any point is non-zero.
func (s Series) HasData() bool {
	for _, v := range s.Values {
		if v != 0 {
			return true
		}
	}
	return false
}

// Max returns the largest value in the series, considering the target line.
func (s Series) Max() float64 {
	max := s.Goal
	for _, v := range s.Values {
		if v > max {
			max = v
		}
	}
	return max
}

// BuildSeries computes one exercise's metric values across days. The target
// line comes from the goal in effect on the first day of the range:
// the daily amount for reps, daily weight moved when the goal assumes a
// weight, the assumed weight itself for weight-per-rep.
func BuildSeries(ds *workout.Dataset, name, metric string, days []string) Series {
	s := Series{Name: name, Metric: metric, Days: days, Values: make([]float64, len(days))}
	for i, day := range days {
		t := Aggregate(ds.Entries[day])[name]
		switch metric {
		case MetricWeight:
			s.Values[i] = t.WeightTotal
		case MetricWeightPerRep:
			if t.Amount > 0 {
				s.Values[i] = t.WeightTotal / t.Amount
			}
		default:
			s.Values[i] = t.Amount
		}
	}

	if len(days) == 0 {
		return s
	}
	g, ok := goal.ResolveFor(ds, name, days[0])
	if !ok {
		return s
	}

	goalSets := g.Sets
	if goalSets < 1 {
		goalSets = 1
	}
	switch metric {
	case MetricWeight:
		if g.Weight > 0 {
			s.Goal = g.Daily * float64(goalSets) * g.Weight
		}
	case MetricWeightPerRep:
		s.Goal = g.Weight
	default:
		s.Goal = g.Daily * float64(goalSets)
	}

	return s
}

// ActiveTypes returns the exercises with at least one entry in the range,
// sorted.
func ActiveTypes(ds *workout.Dataset, days []string) []string {
	seen := make(map[string]bool)
	for _, day := range days {
		for _, e := range ds.Entries[day] {
			seen[e.ExerciseType] = true
		}
	}

	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
