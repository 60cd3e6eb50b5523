package domain

import (
	"context"
	"time"
)

// PipelineRunRecord captures one pipeline run for offline analysis.
type PipelineRunRecord struct {
	RunID        string
	UserID       string
	PlanDate     string
	FinalStatus  string
	EventCount   int
	StoredCount  int
	PlannedCount int
	ErrorCount   int
	Duration     time.Duration
}

// NudgeSweepRecord captures one nudge sweep.
type NudgeSweepRecord struct {
	RunID   string
	SweptAt time.Time
	Checked int
	Sent    int
	Skipped int
}

// RunRecorder persists run statistics. Recording is best-effort; callers
// log and continue on error.
type RunRecorder interface {
	RecordPipelineRun(ctx context.Context, record PipelineRunRecord) error
	RecordNudgeSweep(ctx context.Context, record NudgeSweepRecord) error
	Close() error
}
