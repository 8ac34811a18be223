package model

import "time"

// FocusGoal is a user-defined target; goals are listed as-is and feed no
// aggregation.
type FocusGoal struct {
	ID                  string    `json:"id"`
	Title               string    `json:"title"`
	TargetMinutesPerDay int       `json:"targetMinutesPerDay"`
	CreatedAt           time.Time `json:"createdAt"`
}
