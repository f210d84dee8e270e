package goal

import "time"

// Goal weeks run Monday through Sunday.

// WeekStart returns the Monday beginning the week containing t.
func WeekStart(t time.Time) time.Time {
	back := int(t.Weekday()) - int(time.Monday)
	if back < 0 {
		back += 7 // Sunday belongs to the week that started six days earlier
	}
	return truncateToDay(t).AddDate(0, 0, -back)
}

// IsFinalWeekDay reports whether t falls on the last day of its goal week.
func IsFinalWeekDay(t time.Time) bool {
	return t.Weekday() == time.Sunday
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
