package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/protektiq/lifeflow/internal/domain"
	"github.com/protektiq/lifeflow/internal/service/normalize"
)

type ReminderHandler struct {
	taskRepo   domain.TaskRepository
	normalizer *normalize.Normalizer
}

func NewReminderHandler(taskRepo domain.TaskRepository, normalizer *normalize.Normalizer) *ReminderHandler {
	return &ReminderHandler{
		taskRepo:   taskRepo,
		normalizer: normalizer,
	}
}

type reminderResponse struct {
	TaskID    string `json:"task_id"`
	Title     string `json:"title"`
	StartTime string `json:"start_time"`
	AllDay    bool   `json:"all_day"`
	Source    string `json:"source"`
	Completed bool   `json:"completed"`
}

// HandleGetReminders returns the reminder-class tasks for the date.
// Reminders are excluded from plan synthesis, so this is the only read
// path that surfaces them.
func (h *ReminderHandler) HandleGetReminders(c *gin.Context) {
	ctx := c.Request.Context()

	userID, err := uuid.Parse(c.Query("user_id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid_request", "user_id must be a valid UUID")
		return
	}

	planDate, err := domain.ParseDate(c.Param("date"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid_request", "date must be YYYY-MM-DD")
		return
	}

	windowStart := planDate.StartUTC().Add(-listWindowMargin)
	windowEnd := planDate.NextUTC().Add(listWindowMargin)

	tasks, err := h.taskRepo.ListInWindow(ctx, userID, windowStart, windowEnd)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "storage_error", err.Error())
		return
	}

	result := h.normalizer.Normalize(ctx, tasks, planDate)

	reminders := make([]reminderResponse, 0, len(result.Reminders))
	for _, r := range result.Reminders {
		reminders = append(reminders, reminderResponse{
			TaskID:    r.Task.ID.String(),
			Title:     r.Task.Title,
			StartTime: r.Task.StartTime.UTC().Format(time.RFC3339),
			AllDay:    r.AllDay,
			Source:    string(r.Task.Source),
			Completed: r.Task.Completed,
		})
	}

	c.JSON(http.StatusOK, gin.H{"reminders": reminders})
}
