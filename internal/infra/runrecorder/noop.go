package runrecorder

import (
	"context"

	"github.com/protektiq/lifeflow/internal/domain"
)

type noopRecorder struct{}

func NewNoopRecorder() domain.RunRecorder {
	return &noopRecorder{}
}

func (n *noopRecorder) RecordPipelineRun(_ context.Context, _ domain.PipelineRunRecord) error {
	return nil
}

func (n *noopRecorder) RecordNudgeSweep(_ context.Context, _ domain.NudgeSweepRecord) error {
	return nil
}

func (n *noopRecorder) Close() error {
	return nil
}
