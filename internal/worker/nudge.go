package worker

import (
	"context"
	"log/slog"
	"time"

	"github.com/protektiq/lifeflow/internal/service/nudge"
)

// Sweeper runs one nudge sweep.
type Sweeper interface {
	Sweep(ctx context.Context) (nudge.SweepResult, error)
}

// NudgeWorker runs sweeps on a fixed interval until the context is
// cancelled. A failed sweep is logged and the ticker keeps going; the
// notification guard makes overlapping or repeated sweeps safe.
type NudgeWorker struct {
	sweeper  Sweeper
	interval time.Duration
}

func NewNudgeWorker(sweeper Sweeper, interval time.Duration) *NudgeWorker {
	if interval <= 0 {
		interval = nudge.DefaultWindow
	}
	return &NudgeWorker{
		sweeper:  sweeper,
		interval: interval,
	}
}

func (w *NudgeWorker) Run(ctx context.Context) {
	slog.InfoContext(ctx, "nudge worker started",
		slog.Duration("interval", w.interval),
	)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			slog.InfoContext(ctx, "nudge worker stopped")
			return
		case <-ticker.C:
			result, err := w.sweeper.Sweep(ctx)
			if err != nil {
				slog.ErrorContext(ctx, "nudge sweep failed",
					slog.String("error", err.Error()),
				)
				continue
			}
			slog.InfoContext(ctx, "nudge sweep completed",
				slog.Int("checked", result.Checked),
				slog.Int("sent", result.Sent),
				slog.Int("skipped", result.Skipped),
			)
		}
	}
}
