package metrics

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const nudgeMeterName = "nudge.service"

type NudgeMetrics struct {
	sweepsTotal   metric.Int64Counter
	nudgesSent    metric.Int64Counter
	nudgesSkipped metric.Int64Counter
	sweepDuration metric.Float64Histogram
}

func NewNudgeMetrics() (*NudgeMetrics, error) {
	meter := otel.Meter(nudgeMeterName)

	sweepsTotal, err := meter.Int64Counter(
		"nudge_sweeps_total",
		metric.WithDescription("Total number of nudge sweeps"),
		metric.WithUnit("{sweep}"),
	)
	if err != nil {
		return nil, err
	}

	nudgesSent, err := meter.Int64Counter(
		"nudges_sent_total",
		metric.WithDescription("Total number of nudges created and dispatched"),
		metric.WithUnit("{nudge}"),
	)
	if err != nil {
		return nil, err
	}

	nudgesSkipped, err := meter.Int64Counter(
		"nudges_skipped_total",
		metric.WithDescription("Total number of due tasks skipped during sweeps"),
		metric.WithUnit("{task}"),
	)
	if err != nil {
		return nil, err
	}

	sweepDuration, err := meter.Float64Histogram(
		"nudge_sweep_duration_seconds",
		metric.WithDescription("Nudge sweep duration"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(
			0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10,
		),
	)
	if err != nil {
		return nil, err
	}

	return &NudgeMetrics{
		sweepsTotal:   sweepsTotal,
		nudgesSent:    nudgesSent,
		nudgesSkipped: nudgesSkipped,
		sweepDuration: sweepDuration,
	}, nil
}

func (m *NudgeMetrics) RecordSweep(ctx context.Context, outcome string, duration time.Duration) {
	m.sweepsTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String("outcome", outcome),
	))
	m.sweepDuration.Record(ctx, duration.Seconds())
}

func (m *NudgeMetrics) RecordSent(ctx context.Context, tone string) {
	m.nudgesSent.Add(ctx, 1, metric.WithAttributes(
		attribute.String("tone", tone),
	))
}

func (m *NudgeMetrics) RecordSkipped(ctx context.Context, reason string) {
	m.nudgesSkipped.Add(ctx, 1, metric.WithAttributes(
		attribute.String("reason", reason),
	))
}
