// Package timeweek provides interval and business-week helpers shared by the
// scheduling engine. Shifts are half-open intervals [start, end); the business
// week starts on Saturday, but every function takes the week start as a
// parameter because a few call sites still operate on Monday weeks.
package timeweek

import "time"

// DefaultWeekStart is the business convention: the scheduling week runs
// Saturday through Friday.
const DefaultWeekStart = time.Saturday

// Overlaps reports whether two half-open intervals intersect. Back-to-back
// shifts (aEnd == bStart) do not overlap.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}

// WeekBounds returns the 7-day window containing t. The start is the most
// recent occurrence of weekStart at or before t, truncated to midnight; the
// end is start plus seven days.
func WeekBounds(t time.Time, weekStart time.Weekday) (time.Time, time.Time) {
	day := StartOfDay(t)
	offset := (int(day.Weekday()) - int(weekStart) + 7) % 7
	start := day.AddDate(0, 0, -offset)
	return start, start.AddDate(0, 0, 7)
}

// DayBounds returns the calendar day containing t as a half-open interval.
func DayBounds(t time.Time) (time.Time, time.Time) {
	start := StartOfDay(t)
	return start, start.AddDate(0, 0, 1)
}

// StartOfDay truncates t to midnight in its own location.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// BusinessDay maps t's weekday to its 0-6 offset from weekStart. With the
// Saturday convention, Saturday is 0 and Friday is 6.
func BusinessDay(t time.Time, weekStart time.Weekday) int {
	return (int(t.Weekday()) - int(weekStart) + 7) % 7
}

// WeekdayOf is the inverse of BusinessDay: it maps a 0-6 business-day index
// back to a time.Weekday for the given week start.
func WeekdayOf(businessDay int, weekStart time.Weekday) time.Weekday {
	return time.Weekday((int(weekStart) + businessDay) % 7)
}
