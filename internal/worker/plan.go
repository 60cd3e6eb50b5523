package worker

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/protektiq/lifeflow/internal/domain"
	"github.com/protektiq/lifeflow/internal/service/pipeline"
)

// PipelineRunner runs the planning pipeline for one user and date.
type PipelineRunner interface {
	Run(ctx context.Context, userID uuid.UUID, planDate domain.Date) (*pipeline.Run, error)
}

// UserLister returns the users to plan for.
type UserLister interface {
	ListUserIDs(ctx context.Context) ([]uuid.UUID, error)
}

// PlanWorker fans the daily planning pipeline out across all known
// users once per day at the configured hour. One user's failure never
// stops the others.
type PlanWorker struct {
	runner      PipelineRunner
	users       UserLister
	hour        int
	concurrency int

	now func() time.Time
}

func NewPlanWorker(runner PipelineRunner, users UserLister, hour, concurrency int) *PlanWorker {
	if concurrency <= 0 {
		concurrency = 1
	}
	return &PlanWorker{
		runner:      runner,
		users:       users,
		hour:        hour,
		concurrency: concurrency,
		now:         time.Now,
	}
}

// WithClock overrides the time source. Test hook.
func (w *PlanWorker) WithClock(now func() time.Time) *PlanWorker {
	w.now = now
	return w
}

func (w *PlanWorker) Run(ctx context.Context) {
	slog.InfoContext(ctx, "plan worker started",
		slog.Int("hour", w.hour),
		slog.Int("concurrency", w.concurrency),
	)

	for {
		wait := w.untilNextRun()
		timer := time.NewTimer(wait)

		select {
		case <-ctx.Done():
			timer.Stop()
			slog.InfoContext(ctx, "plan worker stopped")
			return
		case <-timer.C:
			planDate := domain.DateOf(w.now().UTC())
			if err := w.RunAll(ctx, planDate); err != nil {
				slog.ErrorContext(ctx, "daily planning fan-out failed",
					slog.String("plan_date", planDate.String()),
					slog.String("error", err.Error()),
				)
			}
		}
	}
}

// RunAll plans for every known user. Per-user errors are logged inside
// the group; only the user listing itself can fail the call.
func (w *PlanWorker) RunAll(ctx context.Context, planDate domain.Date) error {
	userIDs, err := w.users.ListUserIDs(ctx)
	if err != nil {
		return err
	}

	slog.InfoContext(ctx, "daily planning fan-out started",
		slog.String("plan_date", planDate.String()),
		slog.Int("users", len(userIDs)),
	)

	g, groupCtx := errgroup.WithContext(ctx)
	g.SetLimit(w.concurrency)

	for _, userID := range userIDs {
		g.Go(func() error {
			run, err := w.runner.Run(groupCtx, userID, planDate)
			if err != nil {
				slog.WarnContext(groupCtx, "user planning failed",
					slog.String("user_id", userID.String()),
					slog.String("plan_date", planDate.String()),
					slog.String("error", err.Error()),
				)
				return nil
			}
			slog.InfoContext(groupCtx, "user planning completed",
				slog.String("user_id", userID.String()),
				slog.String("status", string(run.Status)),
				slog.Int("planned_tasks", run.PlannedTasks),
			)
			return nil
		})
	}

	return g.Wait()
}

// untilNextRun returns the time until the next occurrence of the
// configured hour, UTC.
func (w *PlanWorker) untilNextRun() time.Duration {
	now := w.now().UTC()
	next := time.Date(now.Year(), now.Month(), now.Day(), w.hour, 0, 0, 0, time.UTC)
	if !next.After(now) {
		next = next.AddDate(0, 0, 1)
	}
	return next.Sub(now)
}
