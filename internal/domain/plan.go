package domain

import (
	"time"

	"github.com/google/uuid"
)

type PlanStatus string

const (
	PlanStatusActive   PlanStatus = "active"
	PlanStatusArchived PlanStatus = "archived"
)

// DailyPlanTask is a single task placement within a plan.
type DailyPlanTask struct {
	TaskID         uuid.UUID `json:"task_id"`
	Title          string    `json:"title"`
	PredictedStart time.Time `json:"predicted_start"`
	PredictedEnd   time.Time `json:"predicted_end"`
	PriorityScore  float64   `json:"priority_score"`
	IsCritical     bool      `json:"is_critical"`
	IsUrgent       bool      `json:"is_urgent"`
	ActionPlan     []string  `json:"action_plan,omitempty"`
	Description    string    `json:"description,omitempty"`
}

// DailyPlan is one generated plan per (user, plan date). At most one
// non-archived plan exists per key; regeneration replaces the task list
// atomically.
type DailyPlan struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	PlanDate    Date
	Tasks       []DailyPlanTask
	EnergyLevel int
	Status      PlanStatus
	GeneratedAt time.Time
}

func NewDailyPlan(userID uuid.UUID, planDate Date, energyLevel int) *DailyPlan {
	return &DailyPlan{
		ID:          uuid.New(),
		UserID:      userID,
		PlanDate:    planDate,
		Tasks:       make([]DailyPlanTask, 0),
		EnergyLevel: energyLevel,
		Status:      PlanStatusActive,
		GeneratedAt: time.Now().UTC(),
	}
}

func (p *DailyPlan) AddTask(task DailyPlanTask) {
	p.Tasks = append(p.Tasks, task)
}

// TaskIDs returns the ids present in the plan, in order.
func (p *DailyPlan) TaskIDs() []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(p.Tasks))
	for _, t := range p.Tasks {
		ids = append(ids, t.TaskID)
	}
	return ids
}
