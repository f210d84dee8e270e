package progress

import (
	"time"

	"github.com/teambition/rrule-go"

	"github.com/flyndre/trainlog/internal/goal"
	"github.com/flyndre/trainlog/internal/workout"
)

// Days expands the inclusive range from..to into dataset day keys, one per
// calendar day. An empty slice is returned when to precedes from.
func Days(from, to time.Time) ([]string, error) {
	start := truncateToDay(from)
	end := truncateToDay(to)

	r, err := rrule.NewRRule(rrule.ROption{
		Freq:    rrule.DAILY,
		Dtstart: start,
	})
	if err != nil {
		return nil, err
	}

	dates := r.Between(start, end, true)
	days := make([]string, len(dates))
	for i, d := range dates {
		days[i] = workout.Day(d)
	}
	return days, nil
}

// LastDays returns the day keys for the n days ending at now.
func LastDays(now time.Time, n int) ([]string, error) {
	if n < 1 {
		n = 1
	}
	return Days(now.AddDate(0, 0, -(n-1)), now)
}

// MonthDays returns the day keys from the first of now's month through now.
func MonthDays(now time.Time) ([]string, error) {
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	return Days(first, now)
}

// WeekDays returns the day keys from the Monday of now's week through now.
func WeekDays(now time.Time) ([]string, error) {
	return Days(goal.WeekStart(now), now)
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
