package learning

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/protektiq/lifeflow/internal/domain"
)

// Analyzer aggregates a user's snooze history into a per-hour profile.
// Learning is best-effort: a read failure yields the same zero-value
// profile as an empty history, never an error.
type Analyzer struct {
	feedbackRepo domain.FeedbackRepository
}

func NewAnalyzer(feedbackRepo domain.FeedbackRepository) *Analyzer {
	return &Analyzer{feedbackRepo: feedbackRepo}
}

// Analyze builds the snooze profile for a user. The histogram is keyed by
// the hour of the original task start time, not the instant the snooze
// was recorded.
func (a *Analyzer) Analyze(ctx context.Context, userID uuid.UUID) domain.SnoozeProfile {
	profile := domain.EmptySnoozeProfile()

	if a.feedbackRepo == nil {
		return profile
	}

	snoozes, err := a.feedbackRepo.ListSnoozes(ctx, userID)
	if err != nil {
		slog.WarnContext(ctx, "failed to read snooze history, using empty profile",
			slog.String("user_id", userID.String()),
			slog.String("error", err.Error()),
		)
		return profile
	}

	if len(snoozes) == 0 {
		return profile
	}

	durationSum := 0
	durationCount := 0
	for _, snooze := range snoozes {
		hour := snooze.TaskStart.UTC().Hour()
		profile.ByHour[hour]++

		if snooze.DurationMinutes != nil {
			durationSum += *snooze.DurationMinutes
			durationCount++
		}
	}
	profile.Total = len(snoozes)

	if durationCount > 0 {
		profile.AverageDurationMinutes = float64(durationSum) / float64(durationCount)
	}

	slog.DebugContext(ctx, "analyzed snooze patterns",
		slog.String("user_id", userID.String()),
		slog.Int("total_snoozes", profile.Total),
		slog.Float64("average_duration_minutes", profile.AverageDurationMinutes),
	)

	return profile
}
