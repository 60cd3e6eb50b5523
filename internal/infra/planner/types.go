package planner

import "time"

// TaskInput is one candidate task presented to the planning service, in
// the order the tasks should be considered.
type TaskInput struct {
	TaskID          string    `json:"task_id"`
	Title           string    `json:"title"`
	Description     string    `json:"description,omitempty"`
	StartTime       time.Time `json:"start_time"`
	EndTime         time.Time `json:"end_time"`
	PriorityScore   float64   `json:"priority_score"`
	IsCritical      bool      `json:"is_critical"`
	IsUrgent        bool      `json:"is_urgent"`
	AllDay          bool      `json:"all_day"`
	AdjustmentNotes []string  `json:"adjustment_notes,omitempty"`
}

type Request struct {
	UserID        string      `json:"user_id"`
	PlanDate      string      `json:"plan_date"`
	EnergyLevel   int         `json:"energy_level,omitempty"`
	SnoozeSummary string      `json:"snooze_summary,omitempty"`
	Tasks         []TaskInput `json:"tasks"`
}

type ProposedTask struct {
	TaskID         string    `json:"task_id"`
	Title          string    `json:"title"`
	PredictedStart time.Time `json:"predicted_start"`
	PredictedEnd   time.Time `json:"predicted_end"`
	Description    string    `json:"description,omitempty"`
	ActionPlan     []string  `json:"action_plan,omitempty"`
}

// Proposal carries either a structured task list or the raw text the
// planning service produced when it did not honor the structured format.
type Proposal struct {
	Tasks []ProposedTask `json:"tasks,omitempty"`
	Text  string         `json:"text,omitempty"`
}

// Structured reports whether the proposal can be consumed without text
// extraction. A present-but-empty task list is still structured; only a
// missing list falls through to extraction.
func (p *Proposal) Structured() bool {
	return p.Tasks != nil
}
