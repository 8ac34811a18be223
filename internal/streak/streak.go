// Package streak provides the single consecutive-day-presence computation
// shared by the XP validator, journal stats and timer stats.
package streak

import "wakescroll/backend/internal/daykey"

// Count walks backward from anchor and counts consecutive days for which
// present returns true, stopping at the first absent day. An anchor with no
// qualifying event therefore yields 0, even when the day before has one.
func Count(anchor string, present func(day string) bool) int {
	count := 0
	for day := anchor; day != "" && present(day); day = daykey.Prev(day) {
		count++
	}
	return count
}

// CountDays is Count over a set of day keys.
func CountDays(anchor string, days map[string]bool) int {
	return Count(anchor, func(day string) bool { return days[day] })
}
