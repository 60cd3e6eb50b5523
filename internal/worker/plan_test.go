package worker

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/protektiq/lifeflow/internal/domain"
	"github.com/protektiq/lifeflow/internal/service/pipeline"
)

type fakeUserLister struct {
	userIDs []uuid.UUID
	err     error
}

func (f *fakeUserLister) ListUserIDs(_ context.Context) ([]uuid.UUID, error) {
	return f.userIDs, f.err
}

type fakeRunner struct {
	mu     sync.Mutex
	ran    []uuid.UUID
	failID uuid.UUID
}

func (f *fakeRunner) Run(_ context.Context, userID uuid.UUID, _ domain.Date) (*pipeline.Run, error) {
	f.mu.Lock()
	f.ran = append(f.ran, userID)
	f.mu.Unlock()

	if userID == f.failID {
		return nil, errors.New("pipeline failed")
	}
	return &pipeline.Run{UserID: userID, Status: pipeline.StatusPlanned}, nil
}

func TestPlanWorkerRunAllCoversEveryUser(t *testing.T) {
	users := []uuid.UUID{uuid.New(), uuid.New(), uuid.New()}
	runner := &fakeRunner{}
	w := NewPlanWorker(runner, &fakeUserLister{userIDs: users}, 5, 2)

	if err := w.RunAll(context.Background(), domain.NewDate(2026, time.March, 10)); err != nil {
		t.Fatalf("RunAll() error = %v", err)
	}

	if len(runner.ran) != len(users) {
		t.Errorf("ran %d users, want %d", len(runner.ran), len(users))
	}
}

func TestPlanWorkerRunAllToleratesUserFailure(t *testing.T) {
	users := []uuid.UUID{uuid.New(), uuid.New(), uuid.New()}
	runner := &fakeRunner{failID: users[1]}
	w := NewPlanWorker(runner, &fakeUserLister{userIDs: users}, 5, 1)

	if err := w.RunAll(context.Background(), domain.NewDate(2026, time.March, 10)); err != nil {
		t.Fatalf("RunAll() error = %v", err)
	}

	if len(runner.ran) != len(users) {
		t.Errorf("ran %d users, want %d: one failure must not stop the fan-out", len(runner.ran), len(users))
	}
}

func TestPlanWorkerRunAllListFailure(t *testing.T) {
	w := NewPlanWorker(&fakeRunner{}, &fakeUserLister{err: errors.New("db down")}, 5, 1)

	if err := w.RunAll(context.Background(), domain.NewDate(2026, time.March, 10)); err == nil {
		t.Fatal("RunAll() expected error when user listing fails")
	}
}

func TestPlanWorkerUntilNextRun(t *testing.T) {
	tests := []struct {
		name string
		now  time.Time
		hour int
		want time.Duration
	}{
		{
			name: "before the hour, same day",
			now:  time.Date(2026, 3, 10, 3, 0, 0, 0, time.UTC),
			hour: 5,
			want: 2 * time.Hour,
		},
		{
			name: "past the hour, next day",
			now:  time.Date(2026, 3, 10, 10, 30, 0, 0, time.UTC),
			hour: 5,
			want: 18*time.Hour + 30*time.Minute,
		},
		{
			name: "exactly on the hour, next day",
			now:  time.Date(2026, 3, 10, 5, 0, 0, 0, time.UTC),
			hour: 5,
			want: 24 * time.Hour,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := NewPlanWorker(&fakeRunner{}, &fakeUserLister{}, tt.hour, 1).
				WithClock(func() time.Time { return tt.now })

			if got := w.untilNextRun(); got != tt.want {
				t.Errorf("untilNextRun() = %v, want %v", got, tt.want)
			}
		})
	}
}
