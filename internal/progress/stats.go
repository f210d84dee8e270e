package progress

import (
	"sort"
	"strings"

	"github.com/flyndre/trainlog/internal/goal"
	"github.com/flyndre/trainlog/internal/workout"
)

// Stats bundles the derived statistics over a contiguous day range.
type Stats struct {
	Days         []string
	Exercises    []ExerciseStats
	Muscles      []MuscleStats
	Progressions []WeightProgression
	Achievements []GoalAchievement
	Streaks      []Streak
}

// Empty reports whether nothing in the range matched the scope.
func (s Stats) Empty() bool {
	return len(s.Exercises) == 0
}

// ExerciseStats summarizes one exercise over the range.
type ExerciseStats struct {
	Name        string
	Unit        string
	Total       float64
	Sets        int
	WeightTotal float64
	ActiveDays  int
	AvgPerDay   float64
	MaxWeight   float64
}

// MuscleStats sums activity across the exercises training one muscle group.
type MuscleStats struct {
	Name        string
	Total       float64
	WeightTotal float64
	Exercises   []string
}

// WeightPoint is the heaviest single entry for a day.
type WeightPoint struct {
	Day    string
	Weight float64
}

// WeightProgression tracks the per-day maximum entry weight for one
// exercise. Change is the percent difference between the first and last
// point.
type WeightProgression struct {
	Name   string
	Points []WeightPoint
	Change float64
}

// GoalAchievement reports how often a daily target was hit. DaysCounted
// covers the days a daily target was in effect; Target is the one in effect
// at the end of the range.
type GoalAchievement struct {
	Name         string
	Target       float64
	DaysAchieved int
	DaysCounted  int
	Rate         int
}

// Streak reports consecutive-day activity for one exercise. Current is the
// run ending on the final day of the range.
type Streak struct {
	Name    string
	Current int
	Longest int
}

// BuildStats derives the statistics for a contiguous day range.
// A non-empty exerciseFilter narrows every section to that exercise and
// drops the muscle summary; a muscleFilter narrows the scope to the
// exercises training that group. Filters are canonical names.
func BuildStats(ds *workout.Dataset, days []string, exerciseFilter, muscleFilter string) Stats {
	stats := Stats{Days: days}

	perDay := make(map[string]map[string]Totals, len(days))
	for _, day := range days {
		perDay[day] = Aggregate(ds.Entries[day])
	}

	inScope := func(name string) bool {
		if exerciseFilter != "" && !strings.EqualFold(name, exerciseFilter) {
			return false
		}
		if muscleFilter != "" && !trainsMuscle(ds, name, muscleFilter) {
			return false
		}
		return true
	}

	overall := make(map[string]Totals)
	for _, day := range days {
		for name, t := range perDay[day] {
			if inScope(name) {
				overall[name] = overall[name].Add(t)
			}
		}
	}

	names := make([]string, 0, len(overall))
	for name := range overall {
		names = append(names, name)
	}
	sort.Strings(names)

	stats.Exercises = buildExerciseStats(ds, days, perDay, names, overall)
	if exerciseFilter == "" {
		stats.Muscles = buildMuscleStats(ds, overall, muscleFilter)
	}
	stats.Progressions = buildProgressions(ds, days, names)
	stats.Achievements = buildAchievements(ds, days, perDay, inScope)
	stats.Streaks = buildStreaks(days, perDay, names)

	return stats
}

func trainsMuscle(ds *workout.Dataset, name, muscle string) bool {
	_, def, ok := ds.ResolveType(name)
	if !ok {
		return false
	}
	for _, m := range def.MuscleGroups {
		if strings.EqualFold(m, muscle) {
			return true
		}
	}
	return false
}

func buildExerciseStats(
	ds *workout.Dataset,
	days []string,
	perDay map[string]map[string]Totals,
	names []string,
	overall map[string]Totals,
) []ExerciseStats {
	result := make([]ExerciseStats, 0, len(names))
	for _, name := range names {
		t := overall[name]
		es := ExerciseStats{
			Name:        name,
			Unit:        workout.UnitReps,
			Total:       t.Amount,
			Sets:        t.Sets,
			WeightTotal: t.WeightTotal,
		}
		if _, def, ok := ds.ResolveType(name); ok {
			es.Unit = def.Unit
		}

		for _, day := range days {
			if _, active := perDay[day][name]; active {
				es.ActiveDays++
			}
			for _, e := range ds.Entries[day] {
				if e.ExerciseType == name && e.Weight > es.MaxWeight {
					es.MaxWeight = e.Weight
				}
			}
		}
		if es.ActiveDays > 0 {
			es.AvgPerDay = es.Total / float64(es.ActiveDays)
		}
		result = append(result, es)
	}
	return result
}

func buildMuscleStats(ds *workout.Dataset, overall map[string]Totals, muscleFilter string) []MuscleStats {
	byMuscle := make(map[string]*MuscleStats)
	for name, t := range overall {
		_, def, ok := ds.ResolveType(name)
		if !ok {
			continue
		}
		for _, muscle := range def.MuscleGroups {
			if muscleFilter != "" && !strings.EqualFold(muscle, muscleFilter) {
				continue
			}
			ms := byMuscle[muscle]
			if ms == nil {
				ms = &MuscleStats{Name: muscle}
				byMuscle[muscle] = ms
			}
			ms.Total += t.Amount
			ms.WeightTotal += t.WeightTotal
			ms.Exercises = append(ms.Exercises, name)
		}
	}

	result := make([]MuscleStats, 0, len(byMuscle))
	for _, ms := range byMuscle {
		sort.Strings(ms.Exercises)
		result = append(result, *ms)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result
}

func buildProgressions(ds *workout.Dataset, days []string, names []string) []WeightProgression {
	var result []WeightProgression
	for _, name := range names {
		var points []WeightPoint
		for _, day := range days {
			max := 0.0
			for _, e := range ds.Entries[day] {
				if e.ExerciseType == name && e.Weight > max {
					max = e.Weight
				}
			}
			if max > 0 {
				points = append(points, WeightPoint{Day: day, Weight: max})
			}
		}
		// A trend needs at least two weighted days.
		if len(points) < 2 {
			continue
		}

		wp := WeightProgression{Name: name, Points: points}
		first := points[0].Weight
		last := points[len(points)-1].Weight
		if first > 0 {
			wp.Change = (last - first) / first * 100
		}
		result = append(result, wp)
	}
	return result
}

func buildAchievements(
	ds *workout.Dataset,
	days []string,
	perDay map[string]map[string]Totals,
	inScope func(string) bool,
) []GoalAchievement {
	var result []GoalAchievement
	for _, name := range ds.GoalNames() {
		if !inScope(name) {
			continue
		}

		ga := GoalAchievement{Name: name}
		for _, day := range days {
			g, ok := goal.ResolveFor(ds, name, day)
			if !ok || g.Daily <= 0 {
				continue
			}
			goalSets := g.Sets
			if goalSets < 1 {
				goalSets = 1
			}
			target := g.Daily * float64(goalSets)

			ga.DaysCounted++
			ga.Target = target
			if perDay[day][name].Amount >= target {
				ga.DaysAchieved++
			}
		}
		if ga.DaysCounted == 0 {
			continue
		}
		ga.Rate = int(float64(ga.DaysAchieved) / float64(ga.DaysCounted) * 100)
		result = append(result, ga)
	}
	return result
}

func buildStreaks(days []string, perDay map[string]map[string]Totals, names []string) []Streak {
	result := make([]Streak, 0, len(names))
	for _, name := range names {
		s := Streak{Name: name}
		run := 0
		for _, day := range days {
			if _, active := perDay[day][name]; active {
				run++
				if run > s.Longest {
					s.Longest = run
				}
			} else {
				run = 0
			}
		}
		s.Current = run
		result = append(result, s)
	}
	return result
}
