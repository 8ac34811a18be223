package repository

import (
	"context"

	"wakescroll/backend/internal/model"
	"wakescroll/backend/internal/store"
)

// TimerSessionCap bounds the session log; the oldest session is dropped on
// overflow.
const TimerSessionCap = 200

// TimerRepository persists completed focus sessions newest first.
type TimerRepository struct {
	kv       store.Store
	sessions store.Log[model.TimerSession]
}

func NewTimerRepository(kv store.Store) *TimerRepository {
	return &TimerRepository{
		kv:       kv,
		sessions: store.Log[model.TimerSession]{Name: "mindful_timer_sessions", Cap: TimerSessionCap, NewestFirst: true},
	}
}

func (r *TimerRepository) View(ctx context.Context, fn func(txn store.Txn) error) error {
	return r.kv.View(ctx, fn)
}

func (r *TimerRepository) Update(ctx context.Context, fn func(txn store.Txn) error) error {
	return r.kv.Update(ctx, fn)
}

func (r *TimerRepository) SessionsTx(txn store.Txn, userID string) ([]model.TimerSession, error) {
	return r.sessions.Load(txn, userID)
}

func (r *TimerRepository) SaveSessionsTx(txn store.Txn, userID string, sessions []model.TimerSession) error {
	return r.sessions.Save(txn, userID, sessions)
}
