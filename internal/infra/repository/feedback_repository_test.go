package repository

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/protektiq/lifeflow/internal/domain"
)

func storeTask(t *testing.T, db *gorm.DB, userID uuid.UUID, start time.Time) uuid.UUID {
	t.Helper()
	repo := NewTaskRepository(db)
	task := sampleCalendarTask(userID)
	task.Title = "task " + start.String()
	task.StartTime = start
	task.EndTime = start.Add(time.Hour)
	if _, err := repo.UpsertCalendarTask(context.Background(), task); err != nil {
		t.Fatalf("failed to store task: %v", err)
	}
	return task.ID
}

func snooze(userID, taskID uuid.UUID, minutes *int, at time.Time) *domain.TaskFeedback {
	return &domain.TaskFeedback{
		UserID:                userID,
		TaskID:                taskID,
		Action:                domain.FeedbackSnoozed,
		SnoozeDurationMinutes: minutes,
		FeedbackAt:            at,
	}
}

func TestListSnoozesJoinsOriginalTaskStart(t *testing.T) {
	ctx := context.Background()
	db := setupDB(t)
	repo := NewFeedbackRepository(db)
	userID := uuid.New()

	nineAM := time.Date(2026, time.March, 9, 9, 0, 0, 0, time.UTC)
	twoPM := time.Date(2026, time.March, 9, 14, 0, 0, 0, time.UTC)
	morning := storeTask(t, db, userID, nineAM)
	afternoon := storeTask(t, db, userID, twoPM)

	ten := 10
	feedbackAt := time.Date(2026, time.March, 9, 20, 0, 0, 0, time.UTC)
	for i, f := range []*domain.TaskFeedback{
		snooze(userID, morning, &ten, feedbackAt),
		snooze(userID, afternoon, nil, feedbackAt.Add(time.Minute)),
		{UserID: userID, TaskID: morning, Action: domain.FeedbackDone, FeedbackAt: feedbackAt.Add(2 * time.Minute)},
	} {
		if err := repo.Create(ctx, f); err != nil {
			t.Fatalf("failed to create feedback %d: %v", i, err)
		}
	}

	events, err := repo.ListSnoozes(ctx, userID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("snoozes = %d, want 2 (done feedback excluded)", len(events))
	}

	// Events arrive oldest first, each joined to the task's start time.
	if !events[0].TaskStart.Equal(nineAM) {
		t.Errorf("first snooze task start = %v, want %v", events[0].TaskStart, nineAM)
	}
	if events[0].DurationMinutes == nil || *events[0].DurationMinutes != 10 {
		t.Errorf("first snooze duration = %v, want 10", events[0].DurationMinutes)
	}
	if events[1].DurationMinutes != nil {
		t.Error("second snooze has no recorded duration")
	}
}

func TestListSnoozesScopedToUser(t *testing.T) {
	ctx := context.Background()
	db := setupDB(t)
	repo := NewFeedbackRepository(db)
	userID, otherID := uuid.New(), uuid.New()

	start := time.Date(2026, time.March, 9, 9, 0, 0, 0, time.UTC)
	mine := storeTask(t, db, userID, start)
	theirs := storeTask(t, db, otherID, start)

	now := time.Now().UTC()
	if err := repo.Create(ctx, snooze(userID, mine, nil, now)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := repo.Create(ctx, snooze(otherID, theirs, nil, now)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	events, err := repo.ListSnoozes(ctx, userID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(events) != 1 {
		t.Errorf("snoozes = %d, want 1", len(events))
	}
}

func TestCountTaskSnoozes(t *testing.T) {
	ctx := context.Background()
	db := setupDB(t)
	repo := NewFeedbackRepository(db)
	userID := uuid.New()

	start := time.Date(2026, time.March, 9, 9, 0, 0, 0, time.UTC)
	taskID := storeTask(t, db, userID, start)

	now := time.Now().UTC()
	for i := 0; i < 3; i++ {
		if err := repo.Create(ctx, snooze(userID, taskID, nil, now.Add(time.Duration(i)*time.Minute))); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	count, err := repo.CountTaskSnoozes(ctx, userID, taskID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if count != 3 {
		t.Errorf("count = %d, want 3", count)
	}

	count, err = repo.CountTaskSnoozes(ctx, userID, uuid.New())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if count != 0 {
		t.Errorf("count = %d, want 0", count)
	}
}
