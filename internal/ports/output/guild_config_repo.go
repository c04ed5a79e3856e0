package output

import (
	"context"

	"hackbot/internal/domain/entities"
)

type GuildConfigRepository interface {
	// FindLatest returns the most recently created config row, or
	// domain.ErrConfigNotFound when the setup command has never run.
	FindLatest(ctx context.Context) (*entities.GuildConfig, error)
	Create(ctx context.Context, cfg *entities.GuildConfig) error
}
