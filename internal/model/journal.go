package model

import (
	"strings"
	"time"
)

const MaxJournalTextLength = 500

const (
	MoodGreat = "😄"
	MoodGood  = "🙂"
	MoodOkay  = "😐"
	MoodLow   = "😕"
	MoodSad   = "😢"
)

var Moods = []string{MoodGreat, MoodGood, MoodOkay, MoodLow, MoodSad}

func IsValidMood(mood string) bool {
	for _, m := range Moods {
		if m == mood {
			return true
		}
	}
	return false
}

// JournalEntry is immutable once saved; it leaves the log only through an
// explicit delete or by falling off the retention cap.
type JournalEntry struct {
	ID         string    `json:"id"`
	Text       string    `json:"text"`
	Mood       string    `json:"mood"`
	Date       time.Time `json:"date"`
	DateString string    `json:"dateString"`
}

func (e JournalEntry) WordCount() int {
	return len(strings.Fields(e.Text))
}
