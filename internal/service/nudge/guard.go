package nudge

import (
	"context"

	"github.com/google/uuid"
)

//go:generate mockgen -source=guard.go -destination=mock.go -package=nudge

// Guard is a fast pre-check that suppresses repeat nudge attempts for a
// task across closely spaced sweeps. The notification repository remains
// the authority; a guard failure never blocks a sweep.
type Guard interface {
	// Acquire returns false when a nudge for the task was attempted
	// recently by this or another instance.
	Acquire(ctx context.Context, taskID uuid.UUID) (bool, error)
}
