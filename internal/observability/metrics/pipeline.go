package metrics

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const (
	pipelineMeterName = "pipeline.service"
)

type PipelineMetrics struct {
	runsTotal        metric.Int64Counter
	stageDuration    metric.Float64Histogram
	tasksPlanned     metric.Int64Counter
	plannerCalls     metric.Int64Counter
	plannerDuration  metric.Float64Histogram
	fallbackEntries  metric.Int64Counter
	normalizeSkipped metric.Int64Counter
}

func NewPipelineMetrics() (*PipelineMetrics, error) {
	meter := otel.Meter(pipelineMeterName)

	runsTotal, err := meter.Int64Counter(
		"pipeline_runs_total",
		metric.WithDescription("Total number of pipeline runs"),
		metric.WithUnit("{run}"),
	)
	if err != nil {
		return nil, err
	}

	stageDuration, err := meter.Float64Histogram(
		"pipeline_stage_duration_seconds",
		metric.WithDescription("Duration of individual pipeline stages"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(
			0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30, 60,
		),
	)
	if err != nil {
		return nil, err
	}

	tasksPlanned, err := meter.Int64Counter(
		"pipeline_tasks_planned_total",
		metric.WithDescription("Total number of tasks written into daily plans"),
		metric.WithUnit("{task}"),
	)
	if err != nil {
		return nil, err
	}

	plannerCalls, err := meter.Int64Counter(
		"planner_calls_total",
		metric.WithDescription("Total number of generative planner calls"),
		metric.WithUnit("{call}"),
	)
	if err != nil {
		return nil, err
	}

	plannerDuration, err := meter.Float64Histogram(
		"planner_call_duration_seconds",
		metric.WithDescription("Generative planner call duration"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(
			0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30, 60,
		),
	)
	if err != nil {
		return nil, err
	}

	fallbackEntries, err := meter.Int64Counter(
		"plan_fallback_entries_total",
		metric.WithDescription("Plan entries synthesized during reconciliation"),
		metric.WithUnit("{task}"),
	)
	if err != nil {
		return nil, err
	}

	normalizeSkipped, err := meter.Int64Counter(
		"normalize_skipped_total",
		metric.WithDescription("Tasks skipped during normalization"),
		metric.WithUnit("{task}"),
	)
	if err != nil {
		return nil, err
	}

	return &PipelineMetrics{
		runsTotal:        runsTotal,
		stageDuration:    stageDuration,
		tasksPlanned:     tasksPlanned,
		plannerCalls:     plannerCalls,
		plannerDuration:  plannerDuration,
		fallbackEntries:  fallbackEntries,
		normalizeSkipped: normalizeSkipped,
	}, nil
}

func (m *PipelineMetrics) RecordRun(ctx context.Context, status string) {
	m.runsTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String("status", status),
	))
}

func (m *PipelineMetrics) RecordStageDuration(ctx context.Context, stage string, duration time.Duration) {
	m.stageDuration.Record(ctx, duration.Seconds(), metric.WithAttributes(
		attribute.String("stage", stage),
	))
}

func (m *PipelineMetrics) RecordTasksPlanned(ctx context.Context, count int) {
	m.tasksPlanned.Add(ctx, int64(count))
}

func (m *PipelineMetrics) RecordPlannerCall(ctx context.Context, profile, outcome string, duration time.Duration) {
	m.plannerCalls.Add(ctx, 1, metric.WithAttributes(
		attribute.String("profile", profile),
		attribute.String("outcome", outcome),
	))
	m.plannerDuration.Record(ctx, duration.Seconds(), metric.WithAttributes(
		attribute.String("profile", profile),
	))
}

func (m *PipelineMetrics) RecordFallbackEntries(ctx context.Context, count int) {
	if count == 0 {
		return
	}
	m.fallbackEntries.Add(ctx, int64(count))
}

func (m *PipelineMetrics) RecordNormalizeSkipped(ctx context.Context, count int) {
	if count == 0 {
		return
	}
	m.normalizeSkipped.Add(ctx, int64(count))
}
