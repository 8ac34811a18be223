package service

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"wakescroll/backend/internal/daykey"
	apperrors "wakescroll/backend/internal/errors"
	"wakescroll/backend/internal/model"
	"wakescroll/backend/internal/repository"
	"wakescroll/backend/internal/streak"
	"wakescroll/backend/internal/store"
)

type JournalService struct {
	repo  *repository.JournalRepository
	loc   *time.Location
	nowFn func() time.Time
}

type JournalStats struct {
	TotalEntries  int                 `json:"totalEntries"`
	UniqueDays    int                 `json:"uniqueDays"`
	CurrentStreak int                 `json:"currentStreak"`
	MoodCounts    map[string]int      `json:"moodCounts"`
	LastEntry     *model.JournalEntry `json:"lastEntry,omitempty"`
}

type JournalMonthlyStats struct {
	TotalEntries    int            `json:"totalEntries"`
	DaysWithEntries int            `json:"daysWithEntries"`
	AveragePerDay   float64        `json:"averagePerDay"`
	AverageWords    float64        `json:"averageWords"`
	MoodCounts      map[string]int `json:"moodCounts"`
}

// JournalDayBucket is one day of a weekly summary. A week is always exactly
// seven buckets, zero-valued days included.
type JournalDayBucket struct {
	DateString string `json:"dateString"`
	Entries    int    `json:"entries"`
	Words      int    `json:"words"`
}

func NewJournalService(repo *repository.JournalRepository, loc *time.Location) *JournalService {
	return &JournalService{repo: repo, loc: loc, nowFn: time.Now}
}

func (s *JournalService) Save(ctx context.Context, userID, text, mood string) (*model.JournalEntry, *apperrors.APIError) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, apperrors.Validation("text", "text is required")
	}
	if utf8.RuneCountInString(text) > model.MaxJournalTextLength {
		return nil, apperrors.Validation("text", "text must be at most 500 characters")
	}
	if !model.IsValidMood(mood) {
		return nil, apperrors.Validation("mood", "unknown mood")
	}

	now := s.nowFn().In(s.loc)
	entry := model.JournalEntry{
		ID:         uuid.NewString(),
		Text:       text,
		Mood:       mood,
		Date:       now,
		DateString: daykey.Of(now, s.loc),
	}

	err := s.repo.Update(ctx, func(txn store.Txn) error {
		entries, err := s.repo.EntriesTx(txn, userID)
		if err != nil {
			return err
		}
		entries = append([]model.JournalEntry{entry}, entries...)
		return s.repo.SaveEntriesTx(txn, userID, entries)
	})
	if err != nil {
		return nil, apperrors.Internal("failed to save journal entry")
	}
	return &entry, nil
}

func (s *JournalService) Entries(ctx context.Context, userID string) ([]model.JournalEntry, *apperrors.APIError) {
	entries, err := s.loadEntries(ctx, userID)
	if err != nil {
		return nil, err
	}
	return entries, nil
}

func (s *JournalService) EntriesByDate(ctx context.Context, userID, day string) ([]model.JournalEntry, *apperrors.APIError) {
	if _, ok := daykey.Parse(day); !ok {
		return nil, apperrors.Validation("date", "date must be YYYY-MM-DD")
	}
	entries, apiErr := s.loadEntries(ctx, userID)
	if apiErr != nil {
		return nil, apiErr
	}
	return filterEntriesByDay(entries, day), nil
}

func (s *JournalService) TodaysEntries(ctx context.Context, userID string) ([]model.JournalEntry, *apperrors.APIError) {
	entries, apiErr := s.loadEntries(ctx, userID)
	if apiErr != nil {
		return nil, apiErr
	}
	return filterEntriesByDay(entries, daykey.Of(s.nowFn(), s.loc)), nil
}

func (s *JournalService) Stats(ctx context.Context, userID string) (*JournalStats, *apperrors.APIError) {
	entries, apiErr := s.loadEntries(ctx, userID)
	if apiErr != nil {
		return nil, apiErr
	}

	stats := JournalStats{
		TotalEntries: len(entries),
		MoodCounts:   map[string]int{},
	}
	days := make(map[string]bool, len(entries))
	for _, entry := range entries {
		days[entry.DateString] = true
		stats.MoodCounts[entry.Mood]++
	}
	stats.UniqueDays = len(days)
	stats.CurrentStreak = streak.CountDays(daykey.Of(s.nowFn(), s.loc), days)
	if len(entries) > 0 {
		// Entries are newest first.
		last := entries[0]
		stats.LastEntry = &last
	}
	return &stats, nil
}

func (s *JournalService) CalendarData(ctx context.Context, userID string, year int, month time.Month) (map[int][]model.JournalEntry, *apperrors.APIError) {
	entries, apiErr := s.loadEntries(ctx, userID)
	if apiErr != nil {
		return nil, apiErr
	}

	days := map[int][]model.JournalEntry{}
	for _, entry := range entries {
		if daykey.InMonth(entry.DateString, year, month) {
			day := daykey.DayOfMonth(entry.DateString)
			days[day] = append(days[day], entry)
		}
	}
	return days, nil
}

func (s *JournalService) MonthlyStats(ctx context.Context, userID string, year int, month time.Month) (*JournalMonthlyStats, *apperrors.APIError) {
	entries, apiErr := s.loadEntries(ctx, userID)
	if apiErr != nil {
		return nil, apiErr
	}

	stats := JournalMonthlyStats{MoodCounts: map[string]int{}}
	days := map[string]bool{}
	totalWords := 0
	for _, entry := range entries {
		if !daykey.InMonth(entry.DateString, year, month) {
			continue
		}
		stats.TotalEntries++
		stats.MoodCounts[entry.Mood]++
		days[entry.DateString] = true
		totalWords += entry.WordCount()
	}
	stats.DaysWithEntries = len(days)
	if stats.DaysWithEntries > 0 {
		stats.AveragePerDay = float64(stats.TotalEntries) / float64(stats.DaysWithEntries)
	}
	if stats.TotalEntries > 0 {
		stats.AverageWords = float64(totalWords) / float64(stats.TotalEntries)
	}
	return &stats, nil
}

// WeeklyData summarizes the seven consecutive days starting at weekStart.
func (s *JournalService) WeeklyData(ctx context.Context, userID, weekStart string) ([]JournalDayBucket, *apperrors.APIError) {
	if _, ok := daykey.Parse(weekStart); !ok {
		return nil, apperrors.Validation("start", "start must be YYYY-MM-DD")
	}
	entries, apiErr := s.loadEntries(ctx, userID)
	if apiErr != nil {
		return nil, apiErr
	}

	buckets := make([]JournalDayBucket, 0, 7)
	day := weekStart
	for i := 0; i < 7; i++ {
		bucket := JournalDayBucket{DateString: day}
		for _, entry := range entries {
			if entry.DateString == day {
				bucket.Entries++
				bucket.Words += entry.WordCount()
			}
		}
		buckets = append(buckets, bucket)
		day = daykey.Next(day)
	}
	return buckets, nil
}

// Delete removes exactly the matching entry and reports whether one matched.
func (s *JournalService) Delete(ctx context.Context, userID, id string) (bool, *apperrors.APIError) {
	deleted := false
	err := s.repo.Update(ctx, func(txn store.Txn) error {
		entries, err := s.repo.EntriesTx(txn, userID)
		if err != nil {
			return err
		}
		kept := entries[:0]
		for _, entry := range entries {
			if entry.ID == id {
				deleted = true
				continue
			}
			kept = append(kept, entry)
		}
		if !deleted {
			return nil
		}
		return s.repo.SaveEntriesTx(txn, userID, kept)
	})
	if err != nil {
		return false, apperrors.Internal("failed to delete journal entry")
	}
	return deleted, nil
}

func (s *JournalService) loadEntries(ctx context.Context, userID string) ([]model.JournalEntry, *apperrors.APIError) {
	var entries []model.JournalEntry
	err := s.repo.View(ctx, func(txn store.Txn) error {
		var err error
		entries, err = s.repo.EntriesTx(txn, userID)
		return err
	})
	if err != nil {
		return nil, apperrors.Internal("failed to read journal entries")
	}
	return entries, nil
}

func filterEntriesByDay(entries []model.JournalEntry, day string) []model.JournalEntry {
	matched := make([]model.JournalEntry, 0)
	for _, entry := range entries {
		if entry.DateString == day {
			matched = append(matched, entry)
		}
	}
	return matched
}
