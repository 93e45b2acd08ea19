package app

import (
	"context"

	"wiring-inspector/internal/domain/entity"
	"wiring-inspector/internal/domain/port"
)

type UserService struct {
	repo port.UserRepository
}

func NewUserService(repo port.UserRepository) *UserService {
	return &UserService{repo: repo}
}

func (s *UserService) Get(ctx context.Context, userID, chatID int64) (*entity.User, error) {
	return s.repo.Get(ctx, userID, chatID)
}

func (s *UserService) SetState(ctx context.Context, userID, chatID int64, state entity.UserState) (*entity.User, error) {
	user, err := s.repo.Get(ctx, userID, chatID)
	if err != nil {
		return nil, err
	}

	user.SetState(state)
	if err := s.repo.Save(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// BeginCheck waits for a connector photo from the operator.
func (s *UserService) BeginCheck(ctx context.Context, userID, chatID int64) (*entity.User, error) {
	return s.SetState(ctx, userID, chatID, entity.StateAwaitingPhoto)
}

func (s *UserService) Cancel(ctx context.Context, userID, chatID int64) (*entity.User, error) {
	return s.SetState(ctx, userID, chatID, entity.StateMainMenu)
}

// Finish records the verdict and returns the operator to the main menu.
func (s *UserService) Finish(ctx context.Context, userID, chatID int64, verdict entity.WiringVerdict) (*entity.User, error) {
	if err := s.repo.RecordInspection(ctx, userID, verdict); err != nil {
		return nil, err
	}
	return s.repo.Get(ctx, userID, chatID)
}
