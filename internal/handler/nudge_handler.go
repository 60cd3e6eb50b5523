package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/protektiq/lifeflow/internal/service/nudge"
)

// Sweeper runs one nudge sweep.
type Sweeper interface {
	Sweep(ctx context.Context) (nudge.SweepResult, error)
}

type NudgeHandler struct {
	sweeper Sweeper
}

func NewNudgeHandler(sweeper Sweeper) *NudgeHandler {
	return &NudgeHandler{sweeper: sweeper}
}

// HandleSweep runs one nudge sweep on demand. The interval worker runs
// the same sweep on a ticker; this endpoint exists for operations and
// backfill after downtime.
func (h *NudgeHandler) HandleSweep(c *gin.Context) {
	ctx := c.Request.Context()

	result, err := h.sweeper.Sweep(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "nudge sweep failed",
			slog.String("error", err.Error()),
		)
		respondError(c, http.StatusInternalServerError, "sweep_error", err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"checked": result.Checked,
		"sent":    result.Sent,
		"skipped": result.Skipped,
	})
}
