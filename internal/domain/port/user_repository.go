package port

import (
	"context"

	"wiring-inspector/internal/domain/entity"
)

// UserRepository stores bot operators and their conversation state.
type UserRepository interface {
	// Get returns the operator, creating one on first contact.
	Get(ctx context.Context, userID, chatID int64) (*entity.User, error)

	// Save stores the operator.
	Save(ctx context.Context, user *entity.User) error

	// RecordInspection stores a finished inspection and returns the operator to the main menu.
	RecordInspection(ctx context.Context, userID int64, verdict entity.WiringVerdict) error
}
