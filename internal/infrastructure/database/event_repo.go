package database

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"hackbot/internal/domain/entities"
	"hackbot/internal/ports/output"
)

var _ output.EventRepository = (*EventRepository)(nil)

// EventRepository implements output.EventRepository using pgx.
type EventRepository struct {
	pool *pgxpool.Pool
}

// NewEventRepository creates an EventRepository.
func NewEventRepository(pool *pgxpool.Pool) *EventRepository {
	return &EventRepository{pool: pool}
}

const findEventsStartingBetween = `
SELECT id, name, description, location, type, start_at, end_at
FROM events
WHERE start_at >= $1 AND start_at <= $2
ORDER BY start_at`

func (r *EventRepository) FindStartingBetween(ctx context.Context, from, to time.Time) ([]entities.Event, error) {
	rows, err := r.pool.Query(ctx, findEventsStartingBetween,
		timeToPgtypeTimestamptz(from), timeToPgtypeTimestamptz(to))
	if err != nil {
		return nil, fmt.Errorf("find events starting between: %w", err)
	}
	defer rows.Close()

	var out []entities.Event
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("find events starting between: %w", err)
	}
	return out, nil
}

func scanEvent(row pgx.Row) (entities.Event, error) {
	var (
		e     entities.Event
		start pgtype.Timestamptz
		end   pgtype.Timestamptz
	)
	if err := row.Scan(&e.ID, &e.Name, &e.Description, &e.Location, &e.Type, &start, &end); err != nil {
		return entities.Event{}, err
	}
	e.Start = pgtypeTimestamptzToTime(start)
	e.End = pgtypeTimestamptzToTime(end)
	return e, nil
}
