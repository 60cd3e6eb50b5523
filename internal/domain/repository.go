package domain

//go:generate mockgen -source=repository.go -destination=repository_mock.go -package=domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// TaskRepository stores ingested raw tasks. Upserts are keyed by natural
// key so re-running ingestion with identical input never creates
// duplicate rows.
type TaskRepository interface {
	// UpsertCalendarTask inserts the task unless a row with the same
	// (user, source, title, start time) exists. Returns whether a row was
	// created.
	UpsertCalendarTask(ctx context.Context, task *RawTask) (bool, error)
	// UpsertEmailTask inserts or updates in place by provider message id,
	// so re-ingestion can fix an earlier spam classification.
	UpsertEmailTask(ctx context.Context, task *RawTask) (bool, error)
	// ListInWindow returns a user's tasks with start time in [start, end).
	ListInWindow(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]RawTask, error)
	Get(ctx context.Context, id uuid.UUID) (*RawTask, error)
	MarkCompleted(ctx context.Context, id uuid.UUID, at time.Time) error
	// ListUserIDs returns the distinct owners of stored tasks.
	ListUserIDs(ctx context.Context) ([]uuid.UUID, error)
}

// PlanRepository stores daily plans. Replace is the only write path for
// plan content: it must swap the task list atomically, never exposing a
// deleted-but-not-reinserted state.
type PlanRepository interface {
	Replace(ctx context.Context, plan *DailyPlan) error
	GetActive(ctx context.Context, userID uuid.UUID, planDate Date) (*DailyPlan, error)
	ListActive(ctx context.Context) ([]DailyPlan, error)
	Archive(ctx context.Context, id uuid.UUID) error
}

// FeedbackRepository stores user reactions and serves the learning reads.
type FeedbackRepository interface {
	Create(ctx context.Context, feedback *TaskFeedback) error
	// ListSnoozes returns every snooze for the user joined to the original
	// task start time, oldest first.
	ListSnoozes(ctx context.Context, userID uuid.UUID) ([]SnoozeEvent, error)
	CountTaskSnoozes(ctx context.Context, userID, taskID uuid.UUID) (int, error)
}

// NotificationRepository stores nudge records. CreateIfAbsent is the
// atomic guard behind the at-most-one-active-nudge-per-task invariant.
type NotificationRepository interface {
	// CreateIfAbsent inserts the notification unless a pending or sent one
	// already exists for the same task. Returns whether a row was created.
	CreateIfAbsent(ctx context.Context, notification *Notification) (bool, error)
	MarkSent(ctx context.Context, id uuid.UUID, at time.Time) error
	Dismiss(ctx context.Context, id uuid.UUID) error
	ListForTask(ctx context.Context, taskID uuid.UUID) ([]Notification, error)
}

// EnergyRepository stores the per-day energy level a user reported.
type EnergyRepository interface {
	// Get returns 0 when no level was recorded for the date.
	Get(ctx context.Context, userID uuid.UUID, date Date) (int, error)
	Set(ctx context.Context, userID uuid.UUID, date Date, level int) error
}
