package nudge

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/protektiq/lifeflow/internal/domain"
	"github.com/protektiq/lifeflow/internal/infra/dispatch"
	"github.com/protektiq/lifeflow/internal/infra/gentext"
	"github.com/protektiq/lifeflow/internal/observability/metrics"
	"github.com/protektiq/lifeflow/internal/observability/tracing"
)

// DefaultWindow is how far ahead a sweep looks for due tasks. Sweeps are
// expected to run at least this often; the repository guard absorbs
// overlap between consecutive sweeps.
const DefaultWindow = 5 * time.Minute

type tone string

const (
	toneCritical tone = "critical"
	toneUrgent   tone = "urgent"
	toneGentle   tone = "gentle"
)

// SweepResult summarizes one sweep.
type SweepResult struct {
	Checked int
	Sent    int
	Skipped int
}

// Trigger scans active plans for tasks about to start and creates and
// delivers at most one nudge per task.
type Trigger struct {
	planRepo   domain.PlanRepository
	taskRepo   domain.TaskRepository
	notifRepo  domain.NotificationRepository
	guard      Guard
	dispatcher dispatch.Dispatcher
	generator  gentext.Generator
	recorder   domain.RunRecorder
	metrics    *metrics.NudgeMetrics

	window time.Duration
	now    func() time.Time
}

// NewTrigger wires the trigger. guard, generator, recorder and
// nudgeMetrics may be nil.
func NewTrigger(
	planRepo domain.PlanRepository,
	taskRepo domain.TaskRepository,
	notifRepo domain.NotificationRepository,
	guard Guard,
	dispatcher dispatch.Dispatcher,
	generator gentext.Generator,
	recorder domain.RunRecorder,
	nudgeMetrics *metrics.NudgeMetrics,
) *Trigger {
	return &Trigger{
		planRepo:   planRepo,
		taskRepo:   taskRepo,
		notifRepo:  notifRepo,
		guard:      guard,
		dispatcher: dispatcher,
		generator:  generator,
		recorder:   recorder,
		metrics:    nudgeMetrics,
		window:     DefaultWindow,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// WithWindow overrides the lookahead window. Zero or negative values
// are ignored.
func (t *Trigger) WithWindow(window time.Duration) *Trigger {
	if window > 0 {
		t.window = window
	}
	return t
}

// WithClock overrides the time source. Test hook.
func (t *Trigger) WithClock(now func() time.Time) *Trigger {
	t.now = now
	return t
}

// Sweep finds plan entries starting within [now, now+window) and nudges
// each at most once. Per-task failures are counted as skipped and never
// abort the sweep.
func (t *Trigger) Sweep(ctx context.Context) (SweepResult, error) {
	startedAt := t.now()
	windowEnd := startedAt.Add(t.window)

	ctx, span := tracing.StartNudgeSweepSpan(ctx, startedAt, windowEnd)
	defer span.End()

	var result SweepResult

	plans, err := t.planRepo.ListActive(ctx)
	if err != nil {
		tracing.RecordSweepResult(span, 0, 0, 0, err)
		if t.metrics != nil {
			t.metrics.RecordSweep(ctx, "error", time.Since(startedAt))
		}
		return result, fmt.Errorf("failed to list active plans: %w", err)
	}

	for i := range plans {
		plan := &plans[i]
		for _, entry := range plan.Tasks {
			if entry.PredictedStart.Before(startedAt) || !entry.PredictedStart.Before(windowEnd) {
				continue
			}
			result.Checked++
			if t.nudge(ctx, plan, entry, startedAt) {
				result.Sent++
			} else {
				result.Skipped++
			}
		}
	}

	tracing.RecordSweepResult(span, result.Checked, result.Sent, result.Skipped, nil)
	if t.metrics != nil {
		t.metrics.RecordSweep(ctx, "ok", time.Since(startedAt))
	}
	t.record(ctx, startedAt, result)

	slog.InfoContext(ctx, "nudge sweep finished",
		slog.Time("window_start", startedAt),
		slog.Time("window_end", windowEnd),
		slog.Int("checked", result.Checked),
		slog.Int("sent", result.Sent),
		slog.Int("skipped", result.Skipped),
	)

	return result, nil
}

// nudge attempts one notification for a due entry; false means skipped.
func (t *Trigger) nudge(ctx context.Context, plan *domain.DailyPlan, entry domain.DailyPlanTask, sweepAt time.Time) bool {
	task, err := t.taskRepo.Get(ctx, entry.TaskID)
	if err != nil {
		t.skip(ctx, entry.TaskID, "task_lookup_failed", err)
		return false
	}
	if task.Completed {
		t.skip(ctx, entry.TaskID, "task_completed", nil)
		return false
	}

	if t.guard != nil {
		acquired, err := t.guard.Acquire(ctx, entry.TaskID)
		if err != nil {
			// The repository check below stays authoritative.
			slog.WarnContext(ctx, "nudge guard unavailable, continuing",
				slog.String("task_id", entry.TaskID.String()),
				slog.String("error", err.Error()),
			)
		} else if !acquired {
			t.skip(ctx, entry.TaskID, "recently_nudged", nil)
			return false
		}
	}

	entryTone := toneFor(entry)
	message := t.message(ctx, entry, entryTone)

	notification := domain.NewNudge(plan.UserID, entry.TaskID, &plan.ID, message, entry.PredictedStart)
	created, err := t.notifRepo.CreateIfAbsent(ctx, notification)
	if err != nil {
		t.skip(ctx, entry.TaskID, "create_failed", err)
		return false
	}
	if !created {
		t.skip(ctx, entry.TaskID, "already_nudged", nil)
		return false
	}

	if err := t.dispatcher.Deliver(ctx, notification); err != nil {
		// The notification row stays; the user can still see it in-app.
		t.skip(ctx, entry.TaskID, "delivery_failed", err)
		return false
	}

	if err := t.notifRepo.MarkSent(ctx, notification.ID, sweepAt); err != nil {
		slog.WarnContext(ctx, "failed to mark nudge sent",
			slog.String("notification_id", notification.ID.String()),
			slog.String("error", err.Error()),
		)
	}

	if t.metrics != nil {
		t.metrics.RecordSent(ctx, string(entryTone))
	}

	slog.DebugContext(ctx, "nudge sent",
		slog.String("task_id", entry.TaskID.String()),
		slog.String("tone", string(entryTone)),
	)
	return true
}

func (t *Trigger) skip(ctx context.Context, taskID uuid.UUID, reason string, err error) {
	if t.metrics != nil {
		t.metrics.RecordSkipped(ctx, reason)
	}
	attrs := []any{
		slog.String("task_id", taskID.String()),
		slog.String("reason", reason),
	}
	if err != nil {
		attrs = append(attrs, slog.String("error", err.Error()))
		slog.WarnContext(ctx, "skipping nudge", attrs...)
		return
	}
	slog.DebugContext(ctx, "skipping nudge", attrs...)
}

// message builds the nudge text: a generated personalization when
// available, the tone template otherwise.
func (t *Trigger) message(ctx context.Context, entry domain.DailyPlanTask, entryTone tone) string {
	fallback := templateMessage(entry, entryTone)

	if t.generator == nil {
		return fallback
	}

	prompt := fmt.Sprintf(
		"Write one short %s reminder sentence for the task %q starting at %s.",
		entryTone, entry.Title, entry.PredictedStart.Format("15:04"),
	)
	text, err := t.generator.Generate(ctx, prompt)
	if err != nil || strings.TrimSpace(text) == "" {
		if err != nil {
			slog.WarnContext(ctx, "nudge personalization failed, using template",
				slog.String("task_id", entry.TaskID.String()),
				slog.String("error", err.Error()),
			)
		}
		return fallback
	}
	return strings.TrimSpace(text)
}

func toneFor(entry domain.DailyPlanTask) tone {
	switch {
	case entry.IsCritical:
		return toneCritical
	case entry.IsUrgent:
		return toneUrgent
	default:
		return toneGentle
	}
}

func templateMessage(entry domain.DailyPlanTask, entryTone tone) string {
	at := entry.PredictedStart.Format("15:04")
	switch entryTone {
	case toneCritical:
		return fmt.Sprintf("Critical: %q starts at %s. Do not let this one slip.", entry.Title, at)
	case toneUrgent:
		return fmt.Sprintf("Heads up: %q starts at %s. Time to get moving.", entry.Title, at)
	default:
		return fmt.Sprintf("Gentle nudge: %q starts at %s.", entry.Title, at)
	}
}

func (t *Trigger) record(ctx context.Context, sweepAt time.Time, result SweepResult) {
	if t.recorder == nil {
		return
	}
	record := domain.NudgeSweepRecord{
		RunID:   uuid.NewString(),
		SweptAt: sweepAt,
		Checked: result.Checked,
		Sent:    result.Sent,
		Skipped: result.Skipped,
	}
	if err := t.recorder.RecordNudgeSweep(ctx, record); err != nil {
		slog.WarnContext(ctx, "failed to record nudge sweep",
			slog.String("error", err.Error()),
		)
	}
}
