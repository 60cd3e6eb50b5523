package learning

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/protektiq/lifeflow/internal/domain"
)

const (
	// snoozeRateThreshold is the hour-of-day share of total snoozes above
	// which a task scheduled at that hour is shifted earlier.
	snoozeRateThreshold = 0.3

	// earlierShift is how far a frequently snoozed hour moves a task.
	earlierShift = 30 * time.Minute

	// avoidedTaskThreshold is the per-task snooze count above which the
	// task's priority multiplier is reduced.
	avoidedTaskThreshold = 2

	avoidedTaskMultiplier = 0.9
)

// Adjuster derives per-task scheduling adjustments from a snooze profile.
// Any lookup failure degrades to a neutral adjustment; learning must
// never block planning.
type Adjuster struct {
	feedbackRepo domain.FeedbackRepository
	analyzer     *Analyzer
}

func NewAdjuster(feedbackRepo domain.FeedbackRepository, analyzer *Analyzer) *Adjuster {
	return &Adjuster{feedbackRepo: feedbackRepo, analyzer: analyzer}
}

// Adjust proposes a time shift and priority multiplier for the task.
// profile may be a pre-computed snooze profile; when zero-valued and an
// analyzer is available, the profile is computed on demand.
func (a *Adjuster) Adjust(ctx context.Context, userID uuid.UUID, task *domain.RawTask, profile domain.SnoozeProfile) domain.Adjustment {
	adjustment := domain.NeutralAdjustment()
	if task == nil {
		return adjustment
	}

	if profile.Total == 0 && a.analyzer != nil {
		profile = a.analyzer.Analyze(ctx, userID)
	}

	if shifted, reason, ok := a.hourShift(task, profile); ok {
		adjustment.ShiftedStart = &shifted
		end := shifted.Add(task.Duration())
		adjustment.ShiftedEnd = &end
		adjustment.Reasons = append(adjustment.Reasons, reason)

		slog.DebugContext(ctx, "shifted task start from snooze pattern",
			slog.String("user_id", userID.String()),
			slog.String("task_id", task.ID.String()),
			slog.Time("original_start", task.StartTime),
			slog.Time("shifted_start", shifted),
		)
	}

	if a.feedbackRepo != nil {
		count, err := a.feedbackRepo.CountTaskSnoozes(ctx, userID, task.ID)
		if err != nil {
			slog.WarnContext(ctx, "failed to count task snoozes, skipping priority adjustment",
				slog.String("task_id", task.ID.String()),
				slog.String("error", err.Error()),
			)
		} else if count > avoidedTaskThreshold {
			adjustment.Multiplier = avoidedTaskMultiplier
			adjustment.Reasons = append(adjustment.Reasons,
				fmt.Sprintf("task snoozed %d times, reducing priority slightly", count))
		}
	}

	return adjustment
}

// hourShift proposes moving the task 30 minutes earlier when its
// scheduled hour accounts for more than 30% of the user's snoozes. The
// shift never crosses to an earlier calendar date.
func (a *Adjuster) hourShift(task *domain.RawTask, profile domain.SnoozeProfile) (time.Time, string, bool) {
	if profile.Total == 0 {
		return time.Time{}, "", false
	}

	start := task.StartTime.UTC()
	hour := start.Hour()
	rate := profile.HourShare(hour)
	if rate <= snoozeRateThreshold {
		return time.Time{}, "", false
	}

	shifted := start.Add(-earlierShift)
	if shifted.Day() != start.Day() || shifted.Month() != start.Month() || shifted.Year() != start.Year() {
		// Clamp at midnight so the task stays on its own calendar date.
		shifted = time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)
	}
	if shifted.Equal(start) {
		return time.Time{}, "", false
	}

	reason := fmt.Sprintf("task hour %02d:00 accounts for %.0f%% of snoozes, moving earlier", hour, rate*100)
	return shifted, reason, true
}
