// Package dates holds the calendar-day arithmetic shared by both trackers.
// All functions work in the location passed in, never in UTC implicitly.
package dates

import (
	"math"
	"time"

	"github.com/jinzhu/now"
)

// DayMillis is the length of a nominal day used by report averaging
const DayMillis = 24 * 60 * 60 * 1000

// StartOfDay returns 00:00:00.000 of t's calendar day in loc
func StartOfDay(t time.Time, loc *time.Location) time.Time {
	return now.With(t.In(loc)).BeginningOfDay()
}

// EndOfDay returns 23:59:59.999 of t's calendar day in loc.
// Millisecond precision matches the persisted timestamps.
func EndOfDay(t time.Time, loc *time.Location) time.Time {
	start := StartOfDay(t, loc)
	return time.Date(start.Year(), start.Month(), start.Day(), 23, 59, 59, int(999*time.Millisecond), loc)
}

// DaysBefore returns 00:00:00.000 of the calendar day n days before t
func DaysBefore(t time.Time, n int, loc *time.Location) time.Time {
	local := t.In(loc)
	return time.Date(local.Year(), local.Month(), local.Day()-n, 0, 0, 0, 0, loc)
}

// InDay reports whether t falls inside [StartOfDay(day), EndOfDay(day)]
func InDay(t, day time.Time, loc *time.Location) bool {
	return InRange(t, StartOfDay(day, loc), EndOfDay(day, loc))
}

// InRange reports whether start <= t <= end
func InRange(t, start, end time.Time) bool {
	return !t.Before(start) && !t.After(end)
}

// DayKey identifies the calendar day of t in loc, e.g. "2026-01-21"
func DayKey(t time.Time, loc *time.Location) string {
	return t.In(loc).Format("2006-01-02")
}

// SpanDays counts the nominal days covered by [start, end], rounded up and
// never less than one
func SpanDays(start, end time.Time) int {
	days := int(math.Ceil(float64(end.Sub(start).Milliseconds()) / DayMillis))
	if days < 1 {
		return 1
	}
	return days
}
