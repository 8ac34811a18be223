package repository

import (
	"context"

	"wakescroll/backend/internal/model"
	"wakescroll/backend/internal/store"
)

const (
	keyXPTotal         = "mindful_xp"
	keyStreak          = "mindful_streak"
	keyLastInteraction = "last_interaction_date"

	// XPHistoryCap bounds the per-day XP history; the oldest day is dropped
	// on overflow.
	XPHistoryCap = 30
)

// XPRepository persists the reward ledger: the running total and streak
// scalars, the last-interaction day, the per-day XP history and the
// catch-scroll sub-ledger. Both logs are kept in date order, oldest first.
type XPRepository struct {
	kv      store.Store
	history store.Log[model.XPEvent]
	catch   store.Log[model.CatchScrollDay]
}

func NewXPRepository(kv store.Store) *XPRepository {
	return &XPRepository{
		kv:      kv,
		history: store.Log[model.XPEvent]{Name: "xp_history", Cap: XPHistoryCap},
		catch:   store.Log[model.CatchScrollDay]{Name: "catch_scroll_taps", Cap: XPHistoryCap},
	}
}

func (r *XPRepository) View(ctx context.Context, fn func(txn store.Txn) error) error {
	return r.kv.View(ctx, fn)
}

func (r *XPRepository) Update(ctx context.Context, fn func(txn store.Txn) error) error {
	return r.kv.Update(ctx, fn)
}

func (r *XPRepository) TotalTx(txn store.Txn, userID string) (int, error) {
	return store.GetInt(txn, store.UserKey(userID, keyXPTotal))
}

func (r *XPRepository) SetTotalTx(txn store.Txn, userID string, total int) error {
	return store.SetInt(txn, store.UserKey(userID, keyXPTotal), total)
}

func (r *XPRepository) StreakTx(txn store.Txn, userID string) (int, error) {
	return store.GetInt(txn, store.UserKey(userID, keyStreak))
}

func (r *XPRepository) SetStreakTx(txn store.Txn, userID string, streak int) error {
	return store.SetInt(txn, store.UserKey(userID, keyStreak), streak)
}

func (r *XPRepository) LastInteractionTx(txn store.Txn, userID string) (string, error) {
	return store.GetString(txn, store.UserKey(userID, keyLastInteraction))
}

func (r *XPRepository) SetLastInteractionTx(txn store.Txn, userID, day string) error {
	return store.SetString(txn, store.UserKey(userID, keyLastInteraction), day)
}

func (r *XPRepository) HistoryTx(txn store.Txn, userID string) ([]model.XPEvent, error) {
	return r.history.Load(txn, userID)
}

func (r *XPRepository) SaveHistoryTx(txn store.Txn, userID string, events []model.XPEvent) error {
	return r.history.Save(txn, userID, events)
}

func (r *XPRepository) CatchScrollTx(txn store.Txn, userID string) ([]model.CatchScrollDay, error) {
	return r.catch.Load(txn, userID)
}

func (r *XPRepository) SaveCatchScrollTx(txn store.Txn, userID string, days []model.CatchScrollDay) error {
	return r.catch.Save(txn, userID, days)
}
