package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/protektiq/lifeflow/internal/domain"
)

type TaskHandler struct {
	taskRepo     domain.TaskRepository
	feedbackRepo domain.FeedbackRepository
}

func NewTaskHandler(taskRepo domain.TaskRepository, feedbackRepo domain.FeedbackRepository) *TaskHandler {
	return &TaskHandler{
		taskRepo:     taskRepo,
		feedbackRepo: feedbackRepo,
	}
}

type taskFeedbackRequest struct {
	UserID string  `json:"user_id" binding:"required"`
	PlanID *string `json:"plan_id"`
}

type snoozeRequest struct {
	taskFeedbackRequest
	DurationMinutes int `json:"duration_minutes" binding:"required,min=1"`
}

// HandleDone marks the task completed and records done feedback. The
// completion is the authoritative write; a feedback failure is logged
// but does not undo it.
func (h *TaskHandler) HandleDone(c *gin.Context) {
	ctx := c.Request.Context()

	taskID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid_request", "task id must be a valid UUID")
		return
	}

	var req taskFeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}

	userID, planID, err := parseFeedbackIDs(req)
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}

	now := time.Now().UTC()
	if err := h.taskRepo.MarkCompleted(ctx, taskID, now); err != nil {
		if errors.Is(err, domain.ErrTaskNotFound) {
			respondError(c, http.StatusNotFound, "task_not_found", "no task with that id")
			return
		}
		respondError(c, http.StatusInternalServerError, "storage_error", err.Error())
		return
	}

	feedback := &domain.TaskFeedback{
		ID:         uuid.New(),
		UserID:     userID,
		TaskID:     taskID,
		PlanID:     planID,
		Action:     domain.FeedbackDone,
		FeedbackAt: now,
	}
	if err := h.feedbackRepo.Create(ctx, feedback); err != nil {
		slog.WarnContext(ctx, "failed to record done feedback",
			slog.String("task_id", taskID.String()),
			slog.String("error", err.Error()),
		)
	}

	c.JSON(http.StatusOK, gin.H{"status": "completed", "completed_at": now.Format(time.RFC3339)})
}

// HandleSnooze records snooze feedback. The snooze hour histogram and
// the per-task demotion both read from these rows.
func (h *TaskHandler) HandleSnooze(c *gin.Context) {
	ctx := c.Request.Context()

	taskID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid_request", "task id must be a valid UUID")
		return
	}

	var req snoozeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}

	userID, planID, err := parseFeedbackIDs(req.taskFeedbackRequest)
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}

	if _, err := h.taskRepo.Get(ctx, taskID); err != nil {
		if errors.Is(err, domain.ErrTaskNotFound) {
			respondError(c, http.StatusNotFound, "task_not_found", "no task with that id")
			return
		}
		respondError(c, http.StatusInternalServerError, "storage_error", err.Error())
		return
	}

	duration := req.DurationMinutes
	feedback := &domain.TaskFeedback{
		ID:                    uuid.New(),
		UserID:                userID,
		TaskID:                taskID,
		PlanID:                planID,
		Action:                domain.FeedbackSnoozed,
		SnoozeDurationMinutes: &duration,
		FeedbackAt:            time.Now().UTC(),
	}
	if err := h.feedbackRepo.Create(ctx, feedback); err != nil {
		respondError(c, http.StatusInternalServerError, "storage_error", err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "snoozed", "duration_minutes": duration})
}

func parseFeedbackIDs(req taskFeedbackRequest) (uuid.UUID, *uuid.UUID, error) {
	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		return uuid.Nil, nil, errors.New("user_id must be a valid UUID")
	}

	var planID *uuid.UUID
	if req.PlanID != nil && *req.PlanID != "" {
		parsed, err := uuid.Parse(*req.PlanID)
		if err != nil {
			return uuid.Nil, nil, errors.New("plan_id must be a valid UUID")
		}
		planID = &parsed
	}

	return userID, planID, nil
}
