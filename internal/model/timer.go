package model

import "time"

// TimerPresetMinutes are the selectable focus-session lengths.
var TimerPresetMinutes = []int{10, 15, 25, 40}

func IsTimerPreset(minutes int) bool {
	for _, preset := range TimerPresetMinutes {
		if preset == minutes {
			return true
		}
	}
	return false
}

// TimerSession records a finished focus session. Only sessions that ran to
// natural completion are persisted, so Completed is always true for stored
// records; cancelled sessions leave no trace.
type TimerSession struct {
	ID              string    `json:"id"`
	DurationMinutes int       `json:"durationMinutes"`
	Date            time.Time `json:"date"`
	DateString      string    `json:"dateString"`
	Completed       bool      `json:"completed"`
}
