package output

import (
	"context"
	"time"

	"hackbot/internal/domain/entities"
)

type EventRepository interface {
	// FindStartingBetween returns events whose start time falls in [from, to],
	// ordered by start time. The bounded window keeps the reminder scan from
	// walking the whole schedule history.
	FindStartingBetween(ctx context.Context, from, to time.Time) ([]entities.Event, error)
}
