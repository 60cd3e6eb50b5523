package repository

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/protektiq/lifeflow/internal/domain"
)

func TestEnergyGetUnsetReturnsZero(t *testing.T) {
	ctx := context.Background()
	repo := NewEnergyRepository(setupDB(t))

	level, err := repo.Get(ctx, uuid.New(), domain.NewDate(2026, time.March, 10))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if level != 0 {
		t.Errorf("level = %d, want 0", level)
	}
}

func TestEnergySetAndOverwrite(t *testing.T) {
	ctx := context.Background()
	repo := NewEnergyRepository(setupDB(t))
	userID := uuid.New()
	date := domain.NewDate(2026, time.March, 10)

	if err := repo.Set(ctx, userID, date, 4); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := repo.Set(ctx, userID, date, 2); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	level, err := repo.Get(ctx, userID, date)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if level != 2 {
		t.Errorf("level = %d, want 2", level)
	}

	// Another date is independent.
	level, err = repo.Get(ctx, userID, date.AddDays(1))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if level != 0 {
		t.Errorf("level = %d, want 0", level)
	}
}

func TestEnergySetValidatesRange(t *testing.T) {
	ctx := context.Background()
	repo := NewEnergyRepository(setupDB(t))
	date := domain.NewDate(2026, time.March, 10)

	for _, level := range []int{0, -1, 6} {
		if err := repo.Set(ctx, uuid.New(), date, level); err != domain.ErrInvalidEnergyLevel {
			t.Errorf("Set(%d) error = %v, want ErrInvalidEnergyLevel", level, err)
		}
	}
}
