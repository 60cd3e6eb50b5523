package learning

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"go.uber.org/mock/gomock"

	"github.com/protektiq/lifeflow/internal/domain"
)

func profileWith(hourCounts map[int]int) domain.SnoozeProfile {
	profile := domain.EmptySnoozeProfile()
	for hour, count := range hourCounts {
		profile.ByHour[hour] = count
		profile.Total += count
	}
	return profile
}

func taskStartingAt(start time.Time) *domain.RawTask {
	return &domain.RawTask{
		ID:        uuid.New(),
		StartTime: start,
		EndTime:   start.Add(time.Hour),
	}
}

func TestAdjustShiftsHighSnoozeHour(t *testing.T) {
	ctrl := gomock.NewController(t)
	userID := uuid.New()

	// Histogram {14: 5} of 10 total snoozes: 50% > 30% threshold.
	profile := profileWith(map[int]int{14: 5, 9: 5})

	start := time.Date(2026, 8, 30, 14, 0, 0, 0, time.UTC)
	task := taskStartingAt(start)

	mockRepo := domain.NewMockFeedbackRepository(ctrl)
	mockRepo.EXPECT().
		CountTaskSnoozes(gomock.Any(), userID, task.ID).
		Return(0, nil)

	adjustment := NewAdjuster(mockRepo, nil).Adjust(context.Background(), userID, task, profile)

	if adjustment.ShiftedStart == nil {
		t.Fatal("expected a shifted start")
	}
	wantStart := start.Add(-30 * time.Minute)
	if !adjustment.ShiftedStart.Equal(wantStart) {
		t.Errorf("ShiftedStart = %v, want %v", adjustment.ShiftedStart, wantStart)
	}
	// End shifts by the same delta to preserve duration.
	wantEnd := wantStart.Add(time.Hour)
	if adjustment.ShiftedEnd == nil || !adjustment.ShiftedEnd.Equal(wantEnd) {
		t.Errorf("ShiftedEnd = %v, want %v", adjustment.ShiftedEnd, wantEnd)
	}
	if adjustment.Multiplier != 1.0 {
		t.Errorf("Multiplier = %v, want 1.0", adjustment.Multiplier)
	}
	if len(adjustment.Reasons) != 1 {
		t.Errorf("Reasons = %v, want exactly one", adjustment.Reasons)
	}
}

func TestAdjustBelowThresholdIsNoop(t *testing.T) {
	ctrl := gomock.NewController(t)
	userID := uuid.New()

	profile := profileWith(map[int]int{14: 3, 9: 7})

	task := taskStartingAt(time.Date(2026, 8, 30, 14, 0, 0, 0, time.UTC))

	mockRepo := domain.NewMockFeedbackRepository(ctrl)
	mockRepo.EXPECT().
		CountTaskSnoozes(gomock.Any(), userID, task.ID).
		Return(0, nil)

	adjustment := NewAdjuster(mockRepo, nil).Adjust(context.Background(), userID, task, profile)

	if !adjustment.IsNoop() {
		t.Errorf("expected noop adjustment at 30%% rate, got %+v", adjustment)
	}
}

func TestAdjustNeverCrossesCalendarDate(t *testing.T) {
	ctrl := gomock.NewController(t)
	userID := uuid.New()

	profile := profileWith(map[int]int{0: 9, 9: 1})

	// Starting 00:10, a full 30 minute shift would land on the previous day.
	start := time.Date(2026, 8, 30, 0, 10, 0, 0, time.UTC)
	task := taskStartingAt(start)

	mockRepo := domain.NewMockFeedbackRepository(ctrl)
	mockRepo.EXPECT().
		CountTaskSnoozes(gomock.Any(), userID, task.ID).
		Return(0, nil)

	adjustment := NewAdjuster(mockRepo, nil).Adjust(context.Background(), userID, task, profile)

	if adjustment.ShiftedStart == nil {
		t.Fatal("expected a clamped shift")
	}
	if got := *adjustment.ShiftedStart; domain.DateOf(got.UTC()) != domain.DateOf(start) {
		t.Errorf("shift crossed calendar date: %v", got)
	}
	wantStart := time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC)
	if !adjustment.ShiftedStart.Equal(wantStart) {
		t.Errorf("ShiftedStart = %v, want %v", adjustment.ShiftedStart, wantStart)
	}
}

func TestAdjustAvoidedTaskMultiplier(t *testing.T) {
	ctrl := gomock.NewController(t)
	userID := uuid.New()

	task := taskStartingAt(time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC))

	mockRepo := domain.NewMockFeedbackRepository(ctrl)
	mockRepo.EXPECT().
		CountTaskSnoozes(gomock.Any(), userID, task.ID).
		Return(3, nil)

	adjustment := NewAdjuster(mockRepo, nil).Adjust(context.Background(), userID, task, domain.EmptySnoozeProfile())

	if adjustment.Multiplier != 0.9 {
		t.Errorf("Multiplier = %v, want 0.9", adjustment.Multiplier)
	}
	if adjustment.ShiftedStart != nil {
		t.Errorf("expected no shift without a profile, got %v", adjustment.ShiftedStart)
	}
}

func TestAdjustAccumulatesReasons(t *testing.T) {
	ctrl := gomock.NewController(t)
	userID := uuid.New()

	profile := profileWith(map[int]int{14: 5, 9: 5})
	task := taskStartingAt(time.Date(2026, 8, 30, 14, 0, 0, 0, time.UTC))

	mockRepo := domain.NewMockFeedbackRepository(ctrl)
	mockRepo.EXPECT().
		CountTaskSnoozes(gomock.Any(), userID, task.ID).
		Return(4, nil)

	adjustment := NewAdjuster(mockRepo, nil).Adjust(context.Background(), userID, task, profile)

	if adjustment.ShiftedStart == nil || adjustment.Multiplier != 0.9 {
		t.Fatalf("expected both adjustments, got %+v", adjustment)
	}
	if len(adjustment.Reasons) != 2 {
		t.Errorf("Reasons = %v, want two accumulated rationales", adjustment.Reasons)
	}
}

func TestAdjustLookupFailureDegradesToNoop(t *testing.T) {
	ctrl := gomock.NewController(t)
	userID := uuid.New()

	task := taskStartingAt(time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC))

	mockRepo := domain.NewMockFeedbackRepository(ctrl)
	mockRepo.EXPECT().
		CountTaskSnoozes(gomock.Any(), userID, task.ID).
		Return(0, errors.New("timeout"))

	adjustment := NewAdjuster(mockRepo, nil).Adjust(context.Background(), userID, task, domain.EmptySnoozeProfile())

	if !adjustment.IsNoop() {
		t.Errorf("expected noop on lookup failure, got %+v", adjustment)
	}
}
