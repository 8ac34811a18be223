package repository

import (
	"context"

	"wakescroll/backend/internal/model"
	"wakescroll/backend/internal/store"
)

// GoalRepository persists personal focus goals. The log is unbounded; no
// reader aggregates it.
type GoalRepository struct {
	kv    store.Store
	goals store.Log[model.FocusGoal]
}

func NewGoalRepository(kv store.Store) *GoalRepository {
	return &GoalRepository{
		kv:    kv,
		goals: store.Log[model.FocusGoal]{Name: "personal_focus_goals", NewestFirst: true},
	}
}

func (r *GoalRepository) View(ctx context.Context, fn func(txn store.Txn) error) error {
	return r.kv.View(ctx, fn)
}

func (r *GoalRepository) Update(ctx context.Context, fn func(txn store.Txn) error) error {
	return r.kv.Update(ctx, fn)
}

func (r *GoalRepository) GoalsTx(txn store.Txn, userID string) ([]model.FocusGoal, error) {
	return r.goals.Load(txn, userID)
}

func (r *GoalRepository) SaveGoalsTx(txn store.Txn, userID string, goals []model.FocusGoal) error {
	return r.goals.Save(txn, userID, goals)
}
