package output

import (
	"context"

	"hackbot/internal/domain/entities"
)

// Notifier delivers an event reminder to a channel. Delivery is
// at-most-once-attempt: a failure is reported, never retried.
type Notifier interface {
	EventStarting(ctx context.Context, event entities.Event, channelID string) error
}

// Messenger sends direct messages to users.
type Messenger interface {
	SendDM(userID, content string) error
}

// RoleManager mutates a guild's role set.
type RoleManager interface {
	// AddRole grants an existing role to a member.
	AddRole(guildID, userID, roleID string) error
	// FindRoleByName returns the ID of the guild role with the given name,
	// or domain.ErrRoleNotFound.
	FindRoleByName(guildID, name string) (string, error)
	// CreateRole creates a role and returns its ID. Callers must use the
	// returned ID directly; a lookup by name right after creation may miss it.
	CreateRole(guildID, name string) (string, error)
}
