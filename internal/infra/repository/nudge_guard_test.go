package repository

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/protektiq/lifeflow/internal/testutil"
)

func TestRedisNudgeGuardAcquire(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	ctx := context.Background()
	client, cleanup := testutil.SetupRedisContainer(ctx, t)
	defer cleanup()

	guard := NewRedisNudgeGuard(client)
	taskID := uuid.New()

	acquired, err := guard.Acquire(ctx, taskID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !acquired {
		t.Fatal("first acquire must succeed")
	}

	acquired, err = guard.Acquire(ctx, taskID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if acquired {
		t.Error("second acquire for the same task must fail while the guard holds")
	}

	acquired, err = guard.Acquire(ctx, uuid.New())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !acquired {
		t.Error("another task must acquire independently")
	}
}
