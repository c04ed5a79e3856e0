package output

import (
	"context"

	"hackbot/internal/domain/entities"
)

type UserRepository interface {
	// FindByEmail looks up a registered participant by normalized email
	// (lowercase, trimmed). Returns domain.ErrUserNotFound when absent.
	FindByEmail(ctx context.Context, email string) (*entities.User, error)
}
