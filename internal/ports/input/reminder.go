package input

import (
	"context"
	"time"
)

type ReminderUseCase interface {
	// Run polls for upcoming events until ctx is cancelled.
	Run(ctx context.Context)
	// Tick performs a single poll pass at the given instant.
	Tick(ctx context.Context, now time.Time)
}
