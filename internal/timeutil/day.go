// Package timeutil provides calendar-day helpers. All calendar dates are
// computed in the location of the time value passed in, which is the local
// time zone everywhere in the application.
package timeutil

import "time"

// DateLayout is the layout of calendar date keys, e.g. "2024-01-15".
const DateLayout = "2006-01-02"

// DateKey returns the calendar date of t as a "2006-01-02" string.
func DateKey(t time.Time) string {
	return t.Format(DateLayout)
}

// ParseDateKey parses a "2006-01-02" key into midnight of that date in loc.
func ParseDateKey(key string, loc *time.Location) (time.Time, error) {
	return time.ParseInLocation(DateLayout, key, loc)
}

// StartOfDay returns midnight (00:00:00) of the given day in the same timezone
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// EndOfDay returns the last nanosecond of the given day (23:59:59.999999999)
func EndOfDay(t time.Time) time.Time {
	return StartOfDay(t).AddDate(0, 0, 1).Add(-time.Nanosecond)
}

// StartOfWeek returns Monday 00:00:00 of the week containing t (ISO weeks).
func StartOfWeek(t time.Time) time.Time {
	weekday := int(t.Weekday())
	if weekday == 0 { // Sunday
		weekday = 7
	}
	return StartOfDay(t).AddDate(0, 0, -(weekday - 1))
}

// StartOfMonth returns the first day of the month at 00:00:00 in the same timezone
func StartOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// IsInRange checks if the given time t falls within the range [start, end] (inclusive)
func IsInRange(t, start, end time.Time) bool {
	return !t.Before(start) && !t.After(end)
}

// LastNDays returns the date keys of the n days ending with now's date,
// oldest first.
func LastNDays(now time.Time, n int) []string {
	if n <= 0 {
		return nil
	}
	keys := make([]string, n)
	day := StartOfDay(now)
	for i := 0; i < n; i++ {
		keys[n-1-i] = DateKey(day.AddDate(0, 0, -i))
	}
	return keys
}

// PreviousDateKey returns the key of the calendar day before key.
func PreviousDateKey(key string) (string, error) {
	t, err := ParseDateKey(key, time.UTC)
	if err != nil {
		return "", err
	}
	return DateKey(t.AddDate(0, 0, -1)), nil
}
