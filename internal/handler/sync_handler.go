package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/protektiq/lifeflow/internal/domain"
	"github.com/protektiq/lifeflow/internal/service/pipeline"
)

// PipelineRunner runs the planning pipeline for one user and date.
type PipelineRunner interface {
	Run(ctx context.Context, userID uuid.UUID, planDate domain.Date) (*pipeline.Run, error)
}

type SyncHandler struct {
	runner PipelineRunner
}

func NewSyncHandler(runner PipelineRunner) *SyncHandler {
	return &SyncHandler{runner: runner}
}

type syncRequest struct {
	UserID   string `json:"user_id" binding:"required"`
	PlanDate string `json:"plan_date" binding:"required"`
}

type syncResponse struct {
	RunID           string   `json:"run_id"`
	Status          string   `json:"status"`
	CalendarCreated int      `json:"calendar_created"`
	CalendarSkipped int      `json:"calendar_skipped"`
	EmailStored     int      `json:"email_stored"`
	StoreFailed     int      `json:"store_failed"`
	PlannedTasks    int      `json:"planned_tasks"`
	Messages        []string `json:"messages,omitempty"`
}

// HandleSync runs the full planning pipeline for one user and date.
func (h *SyncHandler) HandleSync(c *gin.Context) {
	ctx := c.Request.Context()

	var req syncRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}

	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid_request", "user_id must be a valid UUID")
		return
	}

	planDate, err := domain.ParseDate(req.PlanDate)
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid_request", "plan_date must be YYYY-MM-DD")
		return
	}

	run, err := h.runner.Run(ctx, userID, planDate)
	if err != nil {
		slog.ErrorContext(ctx, "pipeline run failed",
			slog.String("user_id", userID.String()),
			slog.String("plan_date", planDate.String()),
			slog.String("error", err.Error()),
		)

		resp := errorResponse{Error: "pipeline_error", Message: err.Error()}
		if run != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"error":   resp.Error,
				"message": resp.Message,
				"run":     runToResponse(run),
			})
			return
		}
		c.JSON(http.StatusInternalServerError, resp)
		return
	}

	c.JSON(http.StatusOK, runToResponse(run))
}

func runToResponse(run *pipeline.Run) syncResponse {
	return syncResponse{
		RunID:           run.ID.String(),
		Status:          string(run.Status),
		CalendarCreated: run.CalendarCreated,
		CalendarSkipped: run.CalendarSkipped,
		EmailStored:     run.EmailStored,
		StoreFailed:     run.StoreFailed,
		PlannedTasks:    run.PlannedTasks,
		Messages:        run.Messages,
	}
}
