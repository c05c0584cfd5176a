// Package dates implements calendar-date arithmetic for stay intervals.
// All dates are anchored to UTC midnight so that day counts never depend
// on the wall clock or the local timezone.
package dates

import (
	"time"
)

const Layout = "2006-01-02"

// Parse parses a YYYY-MM-DD string into a UTC-midnight date.
func Parse(value string) (time.Time, error) {
	return time.ParseInLocation(Layout, value, time.UTC)
}

// Truncate drops the time-of-day component, keeping the calendar date in UTC.
func Truncate(t time.Time) time.Time {
	y, m, d := t.UTC().Date()

	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DaysBetween returns the number of whole days from start to end.
// Both bounds are truncated to calendar dates first, so the result is an
// exact integer day count rather than a rounded elapsed duration.
func DaysBetween(start, end time.Time) int {
	return int(Truncate(end).Sub(Truncate(start)) / (24 * time.Hour))
}

// StayDuration returns the duration in days of a stay over the inclusive
// interval [start, end]. A 2024-01-10..2024-01-15 stay lasts 5 days; a
// same-day stay still occupies the room, so it counts as one day.
func StayDuration(start, end time.Time) int {
	days := DaysBetween(start, end)
	if days < 1 {
		return 1
	}

	return days
}

// AddDays returns the date n days after t.
func AddDays(t time.Time, n int) time.Time {
	return Truncate(t).AddDate(0, 0, n)
}

// Overlaps reports whether the closed intervals [aStart, aEnd] and
// [bStart, bEnd] share at least one day.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	aStart, aEnd = Truncate(aStart), Truncate(aEnd)
	bStart, bEnd = Truncate(bStart), Truncate(bEnd)

	return !aStart.After(bEnd) && !aEnd.Before(bStart)
}

// Format renders a date as YYYY-MM-DD.
func Format(t time.Time) string {
	return Truncate(t).Format(Layout)
}
