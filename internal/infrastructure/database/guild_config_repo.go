package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"hackbot/internal/domain"
	"hackbot/internal/domain/entities"
	"hackbot/internal/ports/output"
)

var _ output.GuildConfigRepository = (*GuildConfigRepository)(nil)

// GuildConfigRepository implements output.GuildConfigRepository using pgx.
type GuildConfigRepository struct {
	pool *pgxpool.Pool
}

// NewGuildConfigRepository creates a GuildConfigRepository.
func NewGuildConfigRepository(pool *pgxpool.Pool) *GuildConfigRepository {
	return &GuildConfigRepository{pool: pool}
}

const findLatestGuildConfig = `
SELECT id, schedule_channel_id, announcement_channel_id, verification_channel_id, verified_role_id, created_at
FROM guild_configs
ORDER BY id DESC
LIMIT 1`

// FindLatest sélectionne la configuration la plus récente: plusieurs setups
// successifs peuvent coexister, seule la dernière ligne fait foi.
func (r *GuildConfigRepository) FindLatest(ctx context.Context) (*entities.GuildConfig, error) {
	var (
		cfg       entities.GuildConfig
		createdAt pgtype.Timestamptz
	)
	err := r.pool.QueryRow(ctx, findLatestGuildConfig).Scan(
		&cfg.ID,
		&cfg.ScheduleChannelID,
		&cfg.AnnouncementChannelID,
		&cfg.VerificationChannelID,
		&cfg.VerifiedRoleID,
		&createdAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrConfigNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find latest guild config: %w", err)
	}
	cfg.CreatedAt = pgtypeTimestamptzToTime(createdAt)
	return &cfg, nil
}

const createGuildConfig = `
INSERT INTO guild_configs (schedule_channel_id, announcement_channel_id, verification_channel_id, verified_role_id)
VALUES ($1, $2, $3, $4)
RETURNING id, created_at`

func (r *GuildConfigRepository) Create(ctx context.Context, cfg *entities.GuildConfig) error {
	var createdAt pgtype.Timestamptz
	err := r.pool.QueryRow(ctx, createGuildConfig,
		cfg.ScheduleChannelID,
		cfg.AnnouncementChannelID,
		cfg.VerificationChannelID,
		cfg.VerifiedRoleID,
	).Scan(&cfg.ID, &createdAt)
	if err != nil {
		return fmt.Errorf("create guild config: %w", err)
	}
	cfg.CreatedAt = pgtypeTimestamptzToTime(createdAt)
	return nil
}
