package storage

import (
	"context"
	"sync"

	"wiring-inspector/internal/domain/entity"
	"wiring-inspector/internal/domain/port"
)

// MemoryUserRepository keeps operators in memory. State is lost on restart.
type MemoryUserRepository struct {
	mu    sync.RWMutex
	users map[int64]*entity.User
}

// NewMemoryUserRepository creates an empty repository.
func NewMemoryUserRepository() *MemoryUserRepository {
	return &MemoryUserRepository{
		users: make(map[int64]*entity.User),
	}
}

// Get returns a copy of the operator, creating one on first contact.
func (r *MemoryUserRepository) Get(ctx context.Context, userID, chatID int64) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, exists := r.users[userID]
	if !exists {
		user = entity.NewUser(userID, chatID)
		r.users[userID] = user
	}

	u := *user
	return &u, nil
}

// Save stores a copy of the operator.
func (r *MemoryUserRepository) Save(ctx context.Context, user *entity.User) error {
	u := *user

	r.mu.Lock()
	r.users[user.ID] = &u
	r.mu.Unlock()

	return nil
}

// RecordInspection updates the operator's last verdict and resets the conversation.
func (r *MemoryUserRepository) RecordInspection(ctx context.Context, userID int64, verdict entity.WiringVerdict) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if user, exists := r.users[userID]; exists {
		user.RecordInspection(verdict)
		user.SetState(entity.StateMainMenu)
	}

	return nil
}

var _ port.UserRepository = (*MemoryUserRepository)(nil)
