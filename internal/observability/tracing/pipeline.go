package tracing

import (
	"context"
	"net/http"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
)

const pipelineTracerName = "github.com/protektiq/lifeflow/internal/service/pipeline"

func PipelineTracer() trace.Tracer {
	return otel.Tracer(pipelineTracerName)
}

func StartPipelineRunSpan(ctx context.Context, userID, planDate string) (context.Context, trace.Span) {
	return PipelineTracer().Start(ctx, "pipeline.run",
		trace.WithAttributes(
			attribute.String("user_id", userID),
			attribute.String("plan_date", planDate),
		),
	)
}

func StartStageSpan(ctx context.Context, stage string) (context.Context, trace.Span) {
	return PipelineTracer().Start(ctx, "pipeline.stage."+stage)
}

func StartPlannerCallSpan(ctx context.Context, profile string, taskCount int) (context.Context, trace.Span) {
	return PipelineTracer().Start(ctx, "planner.propose",
		trace.WithAttributes(
			attribute.String("planner.profile", profile),
			attribute.Int("planner.task_count", taskCount),
		),
		trace.WithSpanKind(trace.SpanKindClient),
	)
}

func StartNudgeSweepSpan(ctx context.Context, windowStart, windowEnd time.Time) (context.Context, trace.Span) {
	return PipelineTracer().Start(ctx, "nudge.sweep",
		trace.WithAttributes(
			attribute.String("window.start", windowStart.Format(time.RFC3339)),
			attribute.String("window.end", windowEnd.Format(time.RFC3339)),
		),
	)
}

func StartExternalAPISpan(ctx context.Context, operation, url string) (context.Context, trace.Span) {
	return PipelineTracer().Start(ctx, "external_api."+operation,
		trace.WithAttributes(
			attribute.String("url", url),
		),
		trace.WithSpanKind(trace.SpanKindClient),
	)
}

func StartRedisOperationSpan(ctx context.Context, operation, key string) (context.Context, trace.Span) {
	return PipelineTracer().Start(ctx, "redis."+operation,
		trace.WithAttributes(
			attribute.String("db.system", "redis"),
			attribute.String("db.operation", operation),
			attribute.String("db.key", key),
		),
		trace.WithSpanKind(trace.SpanKindClient),
	)
}

func RecordStageResult(span trace.Span, status string, err error) {
	span.SetAttributes(attribute.String("pipeline.status", status))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetStatus(codes.Ok, "")
	}
}

func RecordSweepResult(span trace.Span, checked, sent, skipped int, err error) {
	span.SetAttributes(
		attribute.Int("sweep.checked", checked),
		attribute.Int("sweep.sent", sent),
		attribute.Int("sweep.skipped", skipped),
	)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetStatus(codes.Ok, "")
	}
}

// InjectToHTTPRequest propagates the current trace context onto an
// outbound request.
func InjectToHTTPRequest(ctx context.Context, req *http.Request) {
	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(req.Header))
}
