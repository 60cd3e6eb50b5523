package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/protektiq/lifeflow/internal/domain"
	"github.com/protektiq/lifeflow/internal/infra/embedding"
	"github.com/protektiq/lifeflow/internal/infra/ingestion"
	"github.com/protektiq/lifeflow/internal/observability/metrics"
	"github.com/protektiq/lifeflow/internal/observability/tracing"
	"github.com/protektiq/lifeflow/internal/service/normalize"
	"github.com/protektiq/lifeflow/internal/service/synthesis"
)

// listWindowMargin widens the raw-task read window around the plan date
// so timezone-shifted rows stay reachable for normalization.
const listWindowMargin = 24 * time.Hour

// Run is the mutable state of one pipeline execution.
type Run struct {
	ID       uuid.UUID
	UserID   uuid.UUID
	PlanDate domain.Date
	Status   Status
	Messages []string

	CalendarCreated int
	CalendarSkipped int
	EmailStored     int
	StoreFailed     int
	Encoded         int
	EncodeFailed    int
	PlannedTasks    int

	StartedAt time.Time

	tasks []domain.RawTask
}

// advance moves the run to next, guarding against illegal edges. An
// illegal edge is a programming error and degrades the run to error
// state instead of corrupting it.
func (r *Run) advance(ctx context.Context, next Status) {
	if !r.Status.CanTransition(next) {
		slog.ErrorContext(ctx, "illegal pipeline transition",
			slog.String("from", r.Status.String()),
			slog.String("to", next.String()),
		)
		r.Messages = append(r.Messages, fmt.Sprintf("illegal transition %s -> %s", r.Status, next))
		r.Status = StatusError
		return
	}
	r.Status = next
}

func (r *Run) fail(ctx context.Context, message string) {
	r.Messages = append(r.Messages, message)
	r.advance(ctx, StatusError)
}

// Runner executes the daily sync pipeline for one user: ingest, extract,
// store, encode, plan.
type Runner struct {
	source      ingestion.Source
	taskRepo    domain.TaskRepository
	embedder    embedding.Store
	normalizer  *normalize.Normalizer
	synthesizer *synthesis.Synthesizer
	recorder    domain.RunRecorder
	metrics     *metrics.PipelineMetrics

	emailEnabled bool
}

// NewRunner wires the pipeline. embedder, recorder and pipelineMetrics
// may be nil.
func NewRunner(
	source ingestion.Source,
	taskRepo domain.TaskRepository,
	embedder embedding.Store,
	normalizer *normalize.Normalizer,
	synthesizer *synthesis.Synthesizer,
	recorder domain.RunRecorder,
	pipelineMetrics *metrics.PipelineMetrics,
	emailEnabled bool,
) *Runner {
	return &Runner{
		source:       source,
		taskRepo:     taskRepo,
		embedder:     embedder,
		normalizer:   normalizer,
		synthesizer:  synthesizer,
		recorder:     recorder,
		metrics:      pipelineMetrics,
		emailEnabled: emailEnabled,
	}
}

type stage struct {
	name string
	fn   func(ctx context.Context, run *Run) error
}

// Run executes the pipeline to a terminal state. The returned Run always
// carries the final status and accumulated messages; the error mirrors
// the failure that stopped the pipeline, if any.
func (p *Runner) Run(ctx context.Context, userID uuid.UUID, planDate domain.Date) (*Run, error) {
	ctx, span := tracing.StartPipelineRunSpan(ctx, userID.String(), planDate.String())
	defer span.End()

	run := &Run{
		ID:        uuid.New(),
		UserID:    userID,
		PlanDate:  planDate,
		Status:    StatusStarted,
		StartedAt: time.Now().UTC(),
	}

	slog.InfoContext(ctx, "pipeline run started",
		slog.String("run_id", run.ID.String()),
		slog.String("user_id", userID.String()),
		slog.String("plan_date", planDate.String()),
	)

	stages := []stage{
		{name: "authenticate", fn: p.authenticate},
		{name: "ingest_calendar", fn: p.ingestCalendar},
	}
	if p.emailEnabled {
		stages = append(stages,
			stage{name: "ingest_email", fn: p.ingestEmail},
			stage{name: "extract_email", fn: p.extractEmail},
		)
	}
	stages = append(stages,
		stage{name: "extract", fn: p.extract},
		stage{name: "store", fn: p.store},
		stage{name: "encode", fn: p.encode},
		stage{name: "plan", fn: p.plan},
	)

	var runErr error
	for _, st := range stages {
		if err := p.executeStage(ctx, st, run); err != nil {
			run.fail(ctx, fmt.Sprintf("%s: %v", st.name, err))
			runErr = fmt.Errorf("stage %s failed: %w", st.name, err)
			break
		}
		if run.Status == StatusError {
			runErr = fmt.Errorf("stage %s degraded the run", st.name)
			break
		}
	}

	tracing.RecordStageResult(span, run.Status.String(), runErr)
	p.record(ctx, run)

	slog.InfoContext(ctx, "pipeline run finished",
		slog.String("run_id", run.ID.String()),
		slog.String("status", run.Status.String()),
		slog.Int("planned_tasks", run.PlannedTasks),
		slog.Int("messages", len(run.Messages)),
	)

	return run, runErr
}

// executeStage runs one stage with a panic boundary; a panicking stage
// fails the run, never the process.
func (p *Runner) executeStage(ctx context.Context, st stage, run *Run) (err error) {
	defer func() {
		if r := recover(); r != nil {
			slog.ErrorContext(ctx, "pipeline stage panicked",
				slog.String("stage", st.name),
				slog.Any("panic", r),
			)
			err = fmt.Errorf("panic: %v", r)
		}
	}()

	stageCtx, span := tracing.StartStageSpan(ctx, st.name)
	defer span.End()

	startedAt := time.Now()
	err = st.fn(stageCtx, run)
	if p.metrics != nil {
		p.metrics.RecordStageDuration(ctx, st.name, time.Since(startedAt))
	}
	tracing.RecordStageResult(span, run.Status.String(), err)
	return err
}

func (p *Runner) authenticate(ctx context.Context, run *Run) error {
	if run.UserID == uuid.Nil {
		return fmt.Errorf("missing user id")
	}
	if p.source == nil {
		return fmt.Errorf("no ingestion source configured")
	}
	run.advance(ctx, StatusAuthenticated)
	return nil
}

func (p *Runner) ingestCalendar(ctx context.Context, run *Run) error {
	tasks, err := p.source.CalendarTasks(ctx, run.UserID, run.PlanDate)
	if err != nil {
		return fmt.Errorf("failed to fetch calendar tasks: %w", err)
	}
	run.tasks = append(run.tasks, tasks...)
	run.advance(ctx, StatusIngested)
	return nil
}

func (p *Runner) ingestEmail(ctx context.Context, run *Run) error {
	tasks, err := p.source.EmailTasks(ctx, run.UserID, run.PlanDate)
	if err != nil {
		return fmt.Errorf("failed to fetch email tasks: %w", err)
	}
	run.tasks = append(run.tasks, tasks...)
	run.advance(ctx, StatusEmailIngested)
	return nil
}

// extractEmail acknowledges the pre-annotated email classification. Spam
// flags and urgency arrive from the ingestion service; this stage only
// records the split for diagnostics.
func (p *Runner) extractEmail(ctx context.Context, run *Run) error {
	spam := 0
	for i := range run.tasks {
		if run.tasks[i].Source == domain.SourceEmail && run.tasks[i].IsSpam {
			spam++
		}
	}
	if spam > 0 {
		run.Messages = append(run.Messages, fmt.Sprintf("flagged %d email tasks as spam", spam))
	}
	run.advance(ctx, StatusEmailExtracted)
	return nil
}

func (p *Runner) extract(ctx context.Context, run *Run) error {
	run.advance(ctx, StatusExtracted)
	return nil
}

// store writes the ingested tasks through the idempotent upserts. Row
// failures degrade to partial success as long as at least one row landed.
func (p *Runner) store(ctx context.Context, run *Run) error {
	stored := 0
	for i := range run.tasks {
		task := &run.tasks[i]

		var err error
		var created bool
		switch task.Source {
		case domain.SourceEmail:
			created, err = p.taskRepo.UpsertEmailTask(ctx, task)
		default:
			created, err = p.taskRepo.UpsertCalendarTask(ctx, task)
		}
		if err != nil {
			run.StoreFailed++
			run.Messages = append(run.Messages, fmt.Sprintf("failed to store task %q: %v", task.Title, err))
			slog.WarnContext(ctx, "failed to store ingested task",
				slog.String("title", task.Title),
				slog.String("error", err.Error()),
			)
			continue
		}

		stored++
		switch {
		case task.Source == domain.SourceEmail:
			run.EmailStored++
		case created:
			run.CalendarCreated++
		default:
			run.CalendarSkipped++
		}
	}

	if run.StoreFailed > 0 && stored == 0 && len(run.tasks) > 0 {
		return fmt.Errorf("all %d task writes failed", run.StoreFailed)
	}
	if run.StoreFailed > 0 {
		run.advance(ctx, StatusPartialSuccess)
	} else {
		run.advance(ctx, StatusCompleted)
	}
	return nil
}

// encode stores task context embeddings, best-effort per task.
func (p *Runner) encode(ctx context.Context, run *Run) error {
	if p.embedder != nil {
		for i := range run.tasks {
			task := &run.tasks[i]
			if task.IsSpam {
				continue
			}
			if err := p.embedder.StoreTaskContext(ctx, task); err != nil {
				run.EncodeFailed++
				slog.WarnContext(ctx, "failed to store task embedding",
					slog.String("title", task.Title),
					slog.String("error", err.Error()),
				)
				continue
			}
			run.Encoded++
		}
	}
	run.advance(ctx, StatusEncoded)
	return nil
}

func (p *Runner) plan(ctx context.Context, run *Run) error {
	start := run.PlanDate.StartUTC().Add(-listWindowMargin)
	end := run.PlanDate.NextUTC().Add(listWindowMargin)

	stored, err := p.taskRepo.ListInWindow(ctx, run.UserID, start, end)
	if err != nil {
		return fmt.Errorf("failed to list tasks for planning: %w", err)
	}

	result := p.normalizer.Normalize(ctx, stored, run.PlanDate)
	if p.metrics != nil {
		p.metrics.RecordNormalizeSkipped(ctx, result.Skipped)
	}

	plan, err := p.synthesizer.Synthesize(ctx, run.UserID, run.PlanDate, result.Eligible)
	if err != nil {
		return fmt.Errorf("failed to synthesize plan: %w", err)
	}

	run.PlannedTasks = len(plan.Tasks)
	run.advance(ctx, StatusPlanned)
	return nil
}

func (p *Runner) record(ctx context.Context, run *Run) {
	if p.metrics != nil {
		p.metrics.RecordRun(ctx, run.Status.String())
	}
	if p.recorder == nil {
		return
	}
	record := domain.PipelineRunRecord{
		RunID:        run.ID.String(),
		UserID:       run.UserID.String(),
		PlanDate:     run.PlanDate.String(),
		FinalStatus:  run.Status.String(),
		EventCount:   len(run.tasks),
		StoredCount:  run.CalendarCreated + run.CalendarSkipped + run.EmailStored,
		PlannedCount: run.PlannedTasks,
		ErrorCount:   run.StoreFailed + run.EncodeFailed,
		Duration:     time.Since(run.StartedAt),
	}
	if err := p.recorder.RecordPipelineRun(ctx, record); err != nil {
		slog.WarnContext(ctx, "failed to record pipeline run",
			slog.String("run_id", run.ID.String()),
			slog.String("error", err.Error()),
		)
	}
}
