package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	apperrors "wakescroll/backend/internal/errors"
	"wakescroll/backend/internal/model"
	"wakescroll/backend/internal/repository"
	"wakescroll/backend/internal/store"
)

type GoalService struct {
	repo  *repository.GoalRepository
	nowFn func() time.Time
}

func NewGoalService(repo *repository.GoalRepository) *GoalService {
	return &GoalService{repo: repo, nowFn: time.Now}
}

func (s *GoalService) Create(ctx context.Context, userID, title string, targetMinutesPerDay int) (*model.FocusGoal, *apperrors.APIError) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, apperrors.Validation("title", "title is required")
	}
	if targetMinutesPerDay <= 0 {
		return nil, apperrors.Validation("targetMinutesPerDay", "target must be a positive number of minutes")
	}

	goal := model.FocusGoal{
		ID:                  uuid.NewString(),
		Title:               title,
		TargetMinutesPerDay: targetMinutesPerDay,
		CreatedAt:           s.nowFn().UTC(),
	}

	err := s.repo.Update(ctx, func(txn store.Txn) error {
		goals, err := s.repo.GoalsTx(txn, userID)
		if err != nil {
			return err
		}
		goals = append([]model.FocusGoal{goal}, goals...)
		return s.repo.SaveGoalsTx(txn, userID, goals)
	})
	if err != nil {
		return nil, apperrors.Internal("failed to save goal")
	}
	return &goal, nil
}

func (s *GoalService) List(ctx context.Context, userID string) ([]model.FocusGoal, *apperrors.APIError) {
	var goals []model.FocusGoal
	err := s.repo.View(ctx, func(txn store.Txn) error {
		var err error
		goals, err = s.repo.GoalsTx(txn, userID)
		return err
	})
	if err != nil {
		return nil, apperrors.Internal("failed to read goals")
	}
	return goals, nil
}

func (s *GoalService) Delete(ctx context.Context, userID, id string) (bool, *apperrors.APIError) {
	deleted := false
	err := s.repo.Update(ctx, func(txn store.Txn) error {
		goals, err := s.repo.GoalsTx(txn, userID)
		if err != nil {
			return err
		}
		kept := goals[:0]
		for _, goal := range goals {
			if goal.ID == id {
				deleted = true
				continue
			}
			kept = append(kept, goal)
		}
		if !deleted {
			return nil
		}
		return s.repo.SaveGoalsTx(txn, userID, kept)
	})
	if err != nil {
		return false, apperrors.Internal("failed to delete goal")
	}
	return deleted, nil
}
