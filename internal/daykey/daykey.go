// Package daykey renders and manipulates calendar-day keys. A day key is a
// YYYY-MM-DD string in a single configured location; it is the join key for
// every per-day aggregation, and its lexicographic order matches calendar
// order.
package daykey

import "time"

const Layout = "2006-01-02"

// Of returns the day key for t in loc.
func Of(t time.Time, loc *time.Location) string {
	return t.In(loc).Format(Layout)
}

// Parse returns the midnight instant of a day key, or the zero time when the
// key is malformed.
func Parse(key string) (time.Time, bool) {
	t, err := time.Parse(Layout, key)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// Prev returns the day key one calendar day before key, or "" when key is
// malformed.
func Prev(key string) string {
	t, ok := Parse(key)
	if !ok {
		return ""
	}
	return t.AddDate(0, 0, -1).Format(Layout)
}

// Next returns the day key one calendar day after key, or "" when key is
// malformed.
func Next(key string) string {
	t, ok := Parse(key)
	if !ok {
		return ""
	}
	return t.AddDate(0, 0, 1).Format(Layout)
}

// InMonth reports whether key falls in the given year and month.
func InMonth(key string, year int, month time.Month) bool {
	t, ok := Parse(key)
	if !ok {
		return false
	}
	return t.Year() == year && t.Month() == month
}

// DayOfMonth returns the day-of-month component of key, or 0 when malformed.
func DayOfMonth(key string) int {
	t, ok := Parse(key)
	if !ok {
		return 0
	}
	return t.Day()
}
