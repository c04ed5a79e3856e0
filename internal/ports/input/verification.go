package input

import (
	"context"

	"hackbot/internal/domain"
)

type VerificationUseCase interface {
	// Submit feeds one email candidate into a user's verification dialogue
	// and, on success, grants the verified role plus the member's role.
	// A non-nil error wrapping domain.ErrRoleOperation or
	// domain.ErrConfigNotFound is terminal for the dialogue; any other error
	// is transient (store unavailable) and the dialogue may retry.
	Submit(ctx context.Context, guildID, userID, candidate string) (domain.VerificationOutcome, error)
}
