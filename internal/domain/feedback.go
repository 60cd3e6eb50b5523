package domain

import (
	"time"

	"github.com/google/uuid"
)

type FeedbackAction string

const (
	FeedbackDone      FeedbackAction = "done"
	FeedbackSnoozed   FeedbackAction = "snoozed"
	FeedbackDismissed FeedbackAction = "dismissed"
)

// TaskFeedback is one user reaction to a planned task.
type TaskFeedback struct {
	ID                    uuid.UUID
	UserID                uuid.UUID
	TaskID                uuid.UUID
	PlanID                *uuid.UUID
	Action                FeedbackAction
	SnoozeDurationMinutes *int
	FeedbackAt            time.Time
}

// SnoozeEvent is a snooze joined to the snoozed task's original start
// time. The analyzer histograms by the hour of TaskStart, not by the
// instant the snooze was recorded.
type SnoozeEvent struct {
	TaskStart       time.Time
	DurationMinutes *int
}

// SnoozeProfile is the per-user snooze histogram derived from feedback
// history. A zero-value profile means "no learning signal", which callers
// must treat identically to an analyzer read failure.
type SnoozeProfile struct {
	ByHour                 map[int]int
	AverageDurationMinutes float64
	Total                  int
}

func EmptySnoozeProfile() SnoozeProfile {
	return SnoozeProfile{ByHour: make(map[int]int)}
}

// HourShare returns the fraction of all snoozes that fell on the given
// hour of day.
func (p SnoozeProfile) HourShare(hour int) float64 {
	if p.Total == 0 {
		return 0
	}
	return float64(p.ByHour[hour]) / float64(p.Total)
}
