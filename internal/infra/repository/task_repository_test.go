package repository

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/protektiq/lifeflow/internal/domain"
	"github.com/protektiq/lifeflow/internal/testutil"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	db := testutil.SetupSQLiteDB(t)
	if err := Migrate(db); err != nil {
		t.Fatalf("failed to migrate schema: %v", err)
	}
	return db
}

func sampleCalendarTask(userID uuid.UUID) *domain.RawTask {
	return &domain.RawTask{
		UserID:    userID,
		Source:    domain.SourceCalendar,
		Title:     "standup",
		StartTime: time.Date(2026, time.March, 10, 9, 0, 0, 0, time.UTC),
		EndTime:   time.Date(2026, time.March, 10, 9, 30, 0, 0, time.UTC),
		Attendees: []string{"peer@example.com"},
		Priority:  domain.PriorityMedium,
		RawData:   []byte(`{"start":{"dateTime":"2026-03-10T09:00:00Z"}}`),
	}
}

func TestUpsertCalendarTaskDeduplicates(t *testing.T) {
	ctx := context.Background()
	repo := NewTaskRepository(setupDB(t))
	userID := uuid.New()

	created, err := repo.UpsertCalendarTask(ctx, sampleCalendarTask(userID))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !created {
		t.Fatal("first upsert must create a row")
	}

	// Identical natural key: same user, source, title, start time.
	created, err = repo.UpsertCalendarTask(ctx, sampleCalendarTask(userID))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created {
		t.Error("second upsert must not create a duplicate")
	}

	// A different start time is a different occurrence.
	moved := sampleCalendarTask(userID)
	moved.StartTime = moved.StartTime.Add(time.Hour)
	created, err = repo.UpsertCalendarTask(ctx, moved)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !created {
		t.Error("moved occurrence must create a new row")
	}
}

func TestUpsertEmailTaskUpdatesByMessageID(t *testing.T) {
	ctx := context.Background()
	repo := NewTaskRepository(setupDB(t))
	userID := uuid.New()

	email := &domain.RawTask{
		UserID:    userID,
		Source:    domain.SourceEmail,
		SourceRef: "msg-42",
		Title:     "invoice follow-up",
		StartTime: time.Date(2026, time.March, 10, 15, 0, 0, 0, time.UTC),
		EndTime:   time.Date(2026, time.March, 10, 15, 30, 0, 0, time.UTC),
		IsSpam:    true,
		SpamScore: 0.9,
	}

	created, err := repo.UpsertEmailTask(ctx, email)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !created {
		t.Fatal("first upsert must create a row")
	}
	firstID := email.ID

	// Re-ingestion revises the spam classification in place.
	revised := &domain.RawTask{
		UserID:    userID,
		Source:    domain.SourceEmail,
		SourceRef: "msg-42",
		Title:     "invoice follow-up",
		StartTime: email.StartTime,
		EndTime:   email.EndTime,
		IsSpam:    false,
	}
	created, err = repo.UpsertEmailTask(ctx, revised)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created {
		t.Error("re-ingestion must update, not create")
	}
	if revised.ID != firstID {
		t.Errorf("updated task id = %s, want %s", revised.ID, firstID)
	}

	got, err := repo.Get(ctx, firstID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.IsSpam {
		t.Error("spam flag must be cleared after re-ingestion")
	}
}

func TestListInWindow(t *testing.T) {
	ctx := context.Background()
	repo := NewTaskRepository(setupDB(t))
	userID := uuid.New()

	inside := sampleCalendarTask(userID)
	before := sampleCalendarTask(userID)
	before.Title = "yesterday"
	before.StartTime = time.Date(2026, time.March, 9, 9, 0, 0, 0, time.UTC)
	other := sampleCalendarTask(uuid.New())
	other.Title = "someone else"

	for _, task := range []*domain.RawTask{inside, before, other} {
		if _, err := repo.UpsertCalendarTask(ctx, task); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	start := time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, 1)
	tasks, err := repo.ListInWindow(ctx, userID, start, end)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tasks) != 1 {
		t.Fatalf("tasks = %d, want 1", len(tasks))
	}
	if tasks[0].Title != "standup" {
		t.Errorf("title = %q, want %q", tasks[0].Title, "standup")
	}
	if len(tasks[0].Attendees) != 1 {
		t.Errorf("attendees must round-trip, got %v", tasks[0].Attendees)
	}
}

func TestMarkCompleted(t *testing.T) {
	ctx := context.Background()
	repo := NewTaskRepository(setupDB(t))
	userID := uuid.New()

	task := sampleCalendarTask(userID)
	if _, err := repo.UpsertCalendarTask(ctx, task); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	at := time.Date(2026, time.March, 10, 9, 25, 0, 0, time.UTC)
	if err := repo.MarkCompleted(ctx, task.ID, at); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := repo.Get(ctx, task.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.Completed || got.CompletedAt == nil {
		t.Error("task must be marked completed with a timestamp")
	}

	if err := repo.MarkCompleted(ctx, uuid.New(), at); err != domain.ErrTaskNotFound {
		t.Errorf("error = %v, want ErrTaskNotFound", err)
	}
}

func TestGetMissingTask(t *testing.T) {
	ctx := context.Background()
	repo := NewTaskRepository(setupDB(t))

	if _, err := repo.Get(ctx, uuid.New()); err != domain.ErrTaskNotFound {
		t.Errorf("error = %v, want ErrTaskNotFound", err)
	}
}

func TestListUserIDs(t *testing.T) {
	ctx := context.Background()
	repo := NewTaskRepository(setupDB(t))

	first, second := uuid.New(), uuid.New()
	for _, userID := range []uuid.UUID{first, first, second} {
		task := sampleCalendarTask(userID)
		task.StartTime = task.StartTime.Add(time.Duration(len(task.Title)) * time.Minute)
		if _, err := repo.UpsertCalendarTask(ctx, task); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	ids, err := repo.ListUserIDs(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(ids) != 2 {
		t.Errorf("distinct users = %d, want 2", len(ids))
	}
}
