package service

import (
	"context"
	"sort"
	"time"

	"wakescroll/backend/internal/daykey"
	apperrors "wakescroll/backend/internal/errors"
	"wakescroll/backend/internal/model"
	"wakescroll/backend/internal/repository"
	"wakescroll/backend/internal/streak"
	"wakescroll/backend/internal/store"
)

// XPService owns the reward ledger semantics. The stored streak scalar is a
// cache; the per-day history log is the source of truth and
// ValidateAndFixStreak reconciles the two.
type XPService struct {
	repo  *repository.XPRepository
	loc   *time.Location
	nowFn func() time.Time
}

func NewXPService(repo *repository.XPRepository, loc *time.Location) *XPService {
	return &XPService{repo: repo, loc: loc, nowFn: time.Now}
}

func (s *XPService) GetXP(ctx context.Context, userID string) (int, *apperrors.APIError) {
	var total int
	err := s.repo.View(ctx, func(txn store.Txn) error {
		var err error
		total, err = s.repo.TotalTx(txn, userID)
		return err
	})
	if err != nil {
		return 0, apperrors.Internal("failed to read xp")
	}
	return total, nil
}

// AddXP credits amount to the user's total and maintains the streak scalar,
// the last-interaction day and today's history record, all in one
// transaction. Returns the new running total.
func (s *XPService) AddXP(ctx context.Context, userID string, amount int) (int, *apperrors.APIError) {
	if amount <= 0 {
		return 0, apperrors.Validation("amount", "amount must be a positive integer")
	}

	var total int
	err := s.repo.Update(ctx, func(txn store.Txn) error {
		var err error
		total, err = s.applyXPTx(txn, userID, amount, s.nowFn())
		return err
	})
	if err != nil {
		return 0, apperrors.Internal("failed to record xp")
	}
	return total, nil
}

// applyXPTx is the shared credit path for AddXP and AddCatchScrollTap.
func (s *XPService) applyXPTx(txn store.Txn, userID string, amount int, now time.Time) (int, error) {
	today := daykey.Of(now, s.loc)

	total, err := s.repo.TotalTx(txn, userID)
	if err != nil {
		return 0, err
	}
	total += amount
	if err := s.repo.SetTotalTx(txn, userID, total); err != nil {
		return 0, err
	}

	last, err := s.repo.LastInteractionTx(txn, userID)
	if err != nil {
		return 0, err
	}
	if last != today {
		current, err := s.repo.StreakTx(txn, userID)
		if err != nil {
			return 0, err
		}
		if last == daykey.Prev(today) {
			current++
		} else {
			// First event ever, or a gap of two days or more.
			current = 1
		}
		if err := s.repo.SetStreakTx(txn, userID, current); err != nil {
			return 0, err
		}
		if err := s.repo.SetLastInteractionTx(txn, userID, today); err != nil {
			return 0, err
		}
	}

	history, err := s.repo.HistoryTx(txn, userID)
	if err != nil {
		return 0, err
	}
	found := false
	for i := range history {
		if history[i].Date == today {
			history[i].XP += amount
			found = true
			break
		}
	}
	if !found {
		history = append(history, model.XPEvent{Date: today, XP: amount})
	}
	sort.Slice(history, func(i, j int) bool { return history[i].Date < history[j].Date })
	if err := s.repo.SaveHistoryTx(txn, userID, history); err != nil {
		return 0, err
	}

	return total, nil
}

func (s *XPService) GetTodaysXP(ctx context.Context, userID string) (model.XPEvent, *apperrors.APIError) {
	today := daykey.Of(s.nowFn(), s.loc)
	event := model.XPEvent{Date: today}
	err := s.repo.View(ctx, func(txn store.Txn) error {
		history, err := s.repo.HistoryTx(txn, userID)
		if err != nil {
			return err
		}
		for _, record := range history {
			if record.Date == today {
				event.XP = record.XP
				break
			}
		}
		return nil
	})
	if err != nil {
		return model.XPEvent{}, apperrors.Internal("failed to read xp history")
	}
	return event, nil
}

func (s *XPService) GetHistory(ctx context.Context, userID string) ([]model.XPEvent, *apperrors.APIError) {
	var history []model.XPEvent
	err := s.repo.View(ctx, func(txn store.Txn) error {
		var err error
		history, err = s.repo.HistoryTx(txn, userID)
		return err
	})
	if err != nil {
		return nil, apperrors.Internal("failed to read xp history")
	}
	return history, nil
}

func (s *XPService) GetStreak(ctx context.Context, userID string) (int, *apperrors.APIError) {
	var current int
	err := s.repo.View(ctx, func(txn store.Txn) error {
		var err error
		current, err = s.repo.StreakTx(txn, userID)
		return err
	})
	if err != nil {
		return 0, apperrors.Internal("failed to read streak")
	}
	return current, nil
}

// ValidateAndFixStreak recomputes the streak from the history log, walking
// backward from today over days with positive XP, and overwrites the stored
// scalar when it drifted.
func (s *XPService) ValidateAndFixStreak(ctx context.Context, userID string) (int, *apperrors.APIError) {
	today := daykey.Of(s.nowFn(), s.loc)

	var computed int
	err := s.repo.Update(ctx, func(txn store.Txn) error {
		history, err := s.repo.HistoryTx(txn, userID)
		if err != nil {
			return err
		}

		days := make(map[string]bool, len(history))
		for _, record := range history {
			if record.XP > 0 {
				days[record.Date] = true
			}
		}
		computed = streak.CountDays(today, days)

		stored, err := s.repo.StreakTx(txn, userID)
		if err != nil {
			return err
		}
		if stored != computed {
			return s.repo.SetStreakTx(txn, userID, computed)
		}
		return nil
	})
	if err != nil {
		return 0, apperrors.Internal("failed to validate streak")
	}
	return computed, nil
}

// AddCatchScrollTap records one catch-scroll tap in the per-day sub-ledger
// and credits the fixed tap reward through the regular XP path.
func (s *XPService) AddCatchScrollTap(ctx context.Context, userID string) (int, model.CatchScrollDay, *apperrors.APIError) {
	now := s.nowFn()
	today := daykey.Of(now, s.loc)

	var total int
	var day model.CatchScrollDay
	err := s.repo.Update(ctx, func(txn store.Txn) error {
		days, err := s.repo.CatchScrollTx(txn, userID)
		if err != nil {
			return err
		}

		idx := -1
		for i := range days {
			if days[i].Date == today {
				idx = i
				break
			}
		}
		if idx < 0 {
			days = append(days, model.CatchScrollDay{Date: today, Times: []string{}})
			idx = len(days) - 1
		}
		days[idx].Taps++
		days[idx].Times = append(days[idx].Times, now.In(s.loc).Format(time.RFC3339))
		days[idx].XPEarned += model.CatchScrollTapXP
		day = days[idx]

		if err := s.repo.SaveCatchScrollTx(txn, userID, days); err != nil {
			return err
		}

		total, err = s.applyXPTx(txn, userID, model.CatchScrollTapXP, now)
		return err
	})
	if err != nil {
		return 0, model.CatchScrollDay{}, apperrors.Internal("failed to record tap")
	}
	return total, day, nil
}

func (s *XPService) GetTodaysCatchScroll(ctx context.Context, userID string) (model.CatchScrollDay, *apperrors.APIError) {
	today := daykey.Of(s.nowFn(), s.loc)
	day := model.CatchScrollDay{Date: today, Times: []string{}}
	err := s.repo.View(ctx, func(txn store.Txn) error {
		days, err := s.repo.CatchScrollTx(txn, userID)
		if err != nil {
			return err
		}
		for _, record := range days {
			if record.Date == today {
				day = record
				break
			}
		}
		return nil
	})
	if err != nil {
		return model.CatchScrollDay{}, apperrors.Internal("failed to read taps")
	}
	return day, nil
}
