package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"hackbot/internal/domain"
	"hackbot/internal/domain/entities"
	"hackbot/internal/ports/output"
)

var _ output.UserRepository = (*UserRepository)(nil)

// UserRepository implements output.UserRepository using pgx.
type UserRepository struct {
	pool *pgxpool.Pool
}

// NewUserRepository creates a UserRepository.
func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

const findUserByEmail = `
SELECT id, email, role, status
FROM users
WHERE lower(email) = $1`

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*entities.User, error) {
	var u entities.User
	err := r.pool.QueryRow(ctx, findUserByEmail, email).
		Scan(&u.ID, &u.Email, &u.Role, &u.Status)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find user by email: %w", err)
	}
	return &u, nil
}
