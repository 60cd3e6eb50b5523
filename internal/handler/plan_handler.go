package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/protektiq/lifeflow/internal/domain"
	"github.com/protektiq/lifeflow/internal/service/normalize"
	"github.com/protektiq/lifeflow/internal/service/synthesis"
)

// listWindowMargin widens the stored-task query around the plan date so
// tasks recorded in UTC on a neighboring calendar day are still
// considered for normalization.
const listWindowMargin = 24 * time.Hour

type PlanHandler struct {
	taskRepo    domain.TaskRepository
	planRepo    domain.PlanRepository
	normalizer  *normalize.Normalizer
	synthesizer *synthesis.Synthesizer
}

func NewPlanHandler(
	taskRepo domain.TaskRepository,
	planRepo domain.PlanRepository,
	normalizer *normalize.Normalizer,
	synthesizer *synthesis.Synthesizer,
) *PlanHandler {
	return &PlanHandler{
		taskRepo:    taskRepo,
		planRepo:    planRepo,
		normalizer:  normalizer,
		synthesizer: synthesizer,
	}
}

type generatePlanRequest struct {
	UserID   string `json:"user_id" binding:"required"`
	PlanDate string `json:"plan_date" binding:"required"`
}

type planTaskResponse struct {
	TaskID         string   `json:"task_id"`
	Title          string   `json:"title"`
	PredictedStart string   `json:"predicted_start"`
	PredictedEnd   string   `json:"predicted_end"`
	PriorityScore  float64  `json:"priority_score"`
	IsCritical     bool     `json:"is_critical"`
	IsUrgent       bool     `json:"is_urgent"`
	ActionPlan     []string `json:"action_plan,omitempty"`
	Description    string   `json:"description,omitempty"`
}

type planResponse struct {
	ID          string             `json:"id"`
	UserID      string             `json:"user_id"`
	PlanDate    string             `json:"plan_date"`
	EnergyLevel int                `json:"energy_level"`
	Status      string             `json:"status"`
	GeneratedAt string             `json:"generated_at"`
	Tasks       []planTaskResponse `json:"tasks"`
}

// HandleGeneratePlan regenerates the plan from already-stored tasks,
// without re-ingesting. The full pipeline lives behind /sync.
func (h *PlanHandler) HandleGeneratePlan(c *gin.Context) {
	ctx := c.Request.Context()

	var req generatePlanRequest
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

	windowStart := planDate.StartUTC().Add(-listWindowMargin)
	windowEnd := planDate.NextUTC().Add(listWindowMargin)

	tasks, err := h.taskRepo.ListInWindow(ctx, userID, windowStart, windowEnd)
	if err != nil {
		slog.ErrorContext(ctx, "failed to list stored tasks",
			slog.String("user_id", userID.String()),
			slog.String("error", err.Error()),
		)
		respondError(c, http.StatusInternalServerError, "storage_error", err.Error())
		return
	}

	result := h.normalizer.Normalize(ctx, tasks, planDate)

	plan, err := h.synthesizer.Synthesize(ctx, userID, planDate, result.Eligible)
	if err != nil {
		slog.ErrorContext(ctx, "plan synthesis failed",
			slog.String("user_id", userID.String()),
			slog.String("plan_date", planDate.String()),
			slog.String("error", err.Error()),
		)
		respondError(c, http.StatusInternalServerError, "synthesis_error", err.Error())
		return
	}

	c.JSON(http.StatusOK, planToResponse(plan))
}

// HandleGetPlan returns the active plan for the date, or 404.
func (h *PlanHandler) HandleGetPlan(c *gin.Context) {
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

	plan, err := h.planRepo.GetActive(ctx, userID, planDate)
	if err != nil {
		if errors.Is(err, domain.ErrPlanNotFound) {
			respondError(c, http.StatusNotFound, "plan_not_found", "no active plan for date")
			return
		}
		respondError(c, http.StatusInternalServerError, "storage_error", err.Error())
		return
	}

	c.JSON(http.StatusOK, planToResponse(plan))
}

func planToResponse(plan *domain.DailyPlan) planResponse {
	tasks := make([]planTaskResponse, 0, len(plan.Tasks))
	for _, t := range plan.Tasks {
		tasks = append(tasks, planTaskResponse{
			TaskID:         t.TaskID.String(),
			Title:          t.Title,
			PredictedStart: t.PredictedStart.UTC().Format(time.RFC3339),
			PredictedEnd:   t.PredictedEnd.UTC().Format(time.RFC3339),
			PriorityScore:  t.PriorityScore,
			IsCritical:     t.IsCritical,
			IsUrgent:       t.IsUrgent,
			ActionPlan:     t.ActionPlan,
			Description:    t.Description,
		})
	}

	return planResponse{
		ID:          plan.ID.String(),
		UserID:      plan.UserID.String(),
		PlanDate:    plan.PlanDate.String(),
		EnergyLevel: plan.EnergyLevel,
		Status:      string(plan.Status),
		GeneratedAt: plan.GeneratedAt.UTC().Format(time.RFC3339),
		Tasks:       tasks,
	}
}
