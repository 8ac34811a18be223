package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"wakescroll/backend/internal/daykey"
	apperrors "wakescroll/backend/internal/errors"
	"wakescroll/backend/internal/model"
	"wakescroll/backend/internal/repository"
	"wakescroll/backend/internal/streak"
	"wakescroll/backend/internal/store"
)

type TimerService struct {
	repo  *repository.TimerRepository
	loc   *time.Location
	nowFn func() time.Time
}

type TimerStats struct {
	TotalSessions      int                 `json:"totalSessions"`
	TotalMinutes       int                 `json:"totalMinutes"`
	CurrentStreak      int                 `json:"currentStreak"`
	SessionsByDuration map[int]int         `json:"sessionsByDuration"`
	LastSession        *model.TimerSession `json:"lastSession,omitempty"`
}

type MonthlyTimerStats struct {
	TotalSessions    int     `json:"totalSessions"`
	TotalMinutes     int     `json:"totalMinutes"`
	DaysWithSessions int     `json:"daysWithSessions"`
	AverageMinutes   float64 `json:"averageMinutes"`
}

// TimerDayBucket is one day of a weekly summary; a week is always seven
// buckets.
type TimerDayBucket struct {
	DateString string `json:"dateString"`
	Sessions   int    `json:"sessions"`
	Minutes    int    `json:"minutes"`
}

func NewTimerService(repo *repository.TimerRepository, loc *time.Location) *TimerService {
	return &TimerService{repo: repo, loc: loc, nowFn: time.Now}
}

// Save records a naturally completed session. Cancelled sessions never reach
// this path; the screen discards them.
func (s *TimerService) Save(ctx context.Context, userID string, durationMinutes int) (*model.TimerSession, *apperrors.APIError) {
	if !model.IsTimerPreset(durationMinutes) {
		return nil, apperrors.Validation("durationMinutes", "duration must be one of 10, 15, 25, 40")
	}

	now := s.nowFn().In(s.loc)
	session := model.TimerSession{
		ID:              uuid.NewString(),
		DurationMinutes: durationMinutes,
		Date:            now,
		DateString:      daykey.Of(now, s.loc),
		Completed:       true,
	}

	err := s.repo.Update(ctx, func(txn store.Txn) error {
		sessions, err := s.repo.SessionsTx(txn, userID)
		if err != nil {
			return err
		}
		sessions = append([]model.TimerSession{session}, sessions...)
		return s.repo.SaveSessionsTx(txn, userID, sessions)
	})
	if err != nil {
		return nil, apperrors.Internal("failed to save timer session")
	}
	return &session, nil
}

func (s *TimerService) Sessions(ctx context.Context, userID string) ([]model.TimerSession, *apperrors.APIError) {
	return s.loadSessions(ctx, userID)
}

func (s *TimerService) SessionsByDate(ctx context.Context, userID, day string) ([]model.TimerSession, *apperrors.APIError) {
	if _, ok := daykey.Parse(day); !ok {
		return nil, apperrors.Validation("date", "date must be YYYY-MM-DD")
	}
	sessions, apiErr := s.loadSessions(ctx, userID)
	if apiErr != nil {
		return nil, apiErr
	}
	return filterSessionsByDay(sessions, day), nil
}

func (s *TimerService) TodaysSessions(ctx context.Context, userID string) ([]model.TimerSession, *apperrors.APIError) {
	sessions, apiErr := s.loadSessions(ctx, userID)
	if apiErr != nil {
		return nil, apiErr
	}
	return filterSessionsByDay(sessions, daykey.Of(s.nowFn(), s.loc)), nil
}

func (s *TimerService) Stats(ctx context.Context, userID string) (*TimerStats, *apperrors.APIError) {
	sessions, apiErr := s.loadSessions(ctx, userID)
	if apiErr != nil {
		return nil, apiErr
	}

	stats := TimerStats{
		TotalSessions:      len(sessions),
		SessionsByDuration: map[int]int{},
	}
	days := make(map[string]bool, len(sessions))
	for _, session := range sessions {
		stats.TotalMinutes += session.DurationMinutes
		stats.SessionsByDuration[session.DurationMinutes]++
		days[session.DateString] = true
	}
	stats.CurrentStreak = streak.CountDays(daykey.Of(s.nowFn(), s.loc), days)
	if len(sessions) > 0 {
		last := sessions[0]
		stats.LastSession = &last
	}
	return &stats, nil
}

func (s *TimerService) CalendarData(ctx context.Context, userID string, year int, month time.Month) (map[int][]model.TimerSession, *apperrors.APIError) {
	sessions, apiErr := s.loadSessions(ctx, userID)
	if apiErr != nil {
		return nil, apiErr
	}

	days := map[int][]model.TimerSession{}
	for _, session := range sessions {
		if daykey.InMonth(session.DateString, year, month) {
			day := daykey.DayOfMonth(session.DateString)
			days[day] = append(days[day], session)
		}
	}
	return days, nil
}

func (s *TimerService) MonthlyStats(ctx context.Context, userID string, year int, month time.Month) (*MonthlyTimerStats, *apperrors.APIError) {
	sessions, apiErr := s.loadSessions(ctx, userID)
	if apiErr != nil {
		return nil, apiErr
	}

	stats := MonthlyTimerStats{}
	days := map[string]bool{}
	for _, session := range sessions {
		if !daykey.InMonth(session.DateString, year, month) {
			continue
		}
		stats.TotalSessions++
		stats.TotalMinutes += session.DurationMinutes
		days[session.DateString] = true
	}
	stats.DaysWithSessions = len(days)
	if stats.DaysWithSessions > 0 {
		stats.AverageMinutes = float64(stats.TotalMinutes) / float64(stats.DaysWithSessions)
	}
	return &stats, nil
}

func (s *TimerService) WeeklyData(ctx context.Context, userID, weekStart string) ([]TimerDayBucket, *apperrors.APIError) {
	if _, ok := daykey.Parse(weekStart); !ok {
		return nil, apperrors.Validation("start", "start must be YYYY-MM-DD")
	}
	sessions, apiErr := s.loadSessions(ctx, userID)
	if apiErr != nil {
		return nil, apiErr
	}

	buckets := make([]TimerDayBucket, 0, 7)
	day := weekStart
	for i := 0; i < 7; i++ {
		bucket := TimerDayBucket{DateString: day}
		for _, session := range sessions {
			if session.DateString == day {
				bucket.Sessions++
				bucket.Minutes += session.DurationMinutes
			}
		}
		buckets = append(buckets, bucket)
		day = daykey.Next(day)
	}
	return buckets, nil
}

func (s *TimerService) Delete(ctx context.Context, userID, id string) (bool, *apperrors.APIError) {
	deleted := false
	err := s.repo.Update(ctx, func(txn store.Txn) error {
		sessions, err := s.repo.SessionsTx(txn, userID)
		if err != nil {
			return err
		}
		kept := sessions[:0]
		for _, session := range sessions {
			if session.ID == id {
				deleted = true
				continue
			}
			kept = append(kept, session)
		}
		if !deleted {
			return nil
		}
		return s.repo.SaveSessionsTx(txn, userID, kept)
	})
	if err != nil {
		return false, apperrors.Internal("failed to delete timer session")
	}
	return deleted, nil
}

func (s *TimerService) loadSessions(ctx context.Context, userID string) ([]model.TimerSession, *apperrors.APIError) {
	var sessions []model.TimerSession
	err := s.repo.View(ctx, func(txn store.Txn) error {
		var err error
		sessions, err = s.repo.SessionsTx(txn, userID)
		return err
	})
	if err != nil {
		return nil, apperrors.Internal("failed to read timer sessions")
	}
	return sessions, nil
}

func filterSessionsByDay(sessions []model.TimerSession, day string) []model.TimerSession {
	matched := make([]model.TimerSession, 0)
	for _, session := range sessions {
		if session.DateString == day {
			matched = append(matched, session)
		}
	}
	return matched
}
