package score

import (
	"time"

	"github.com/protektiq/lifeflow/internal/domain"
)

// Weights for combining the sub-scores.
const (
	priorityWeight = 0.3
	energyWeight   = 0.4
	timeWeight     = 0.3

	criticalMultiplier = 2.0
	urgentMultiplier   = 1.5

	partialFitPenalty = 0.3
)

// Window is an optional global time constraint for a planning pass.
type Window struct {
	Start time.Time
	End   time.Time
}

// Engine computes the deterministic fit score of a task for a given
// energy level. It has no dependencies and no side effects.
type Engine struct{}

func NewEngine() *Engine {
	return &Engine{}
}

// Score returns a fit score in [0, 1]. energyLevel is the user's reported
// level on the 1..5 scale; window, when non-nil, is a hard global
// constraint tasks are expected to fit inside.
func (e *Engine) Score(task *domain.RawTask, energyLevel int, window *Window) float64 {
	priority := task.Priority.Score()
	energyFit := energyFitScore(task, energyLevel)
	timeScore := timeConstraintScore(task, window)

	base := priority*priorityWeight + energyFit*energyWeight + timeScore*timeWeight
	final := base * overrideMultiplier(task)

	return clamp01(final)
}

// energyFitScore estimates task complexity from duration, description,
// and attendees, then measures how closely it matches the normalized
// energy level.
func energyFitScore(task *domain.RawTask, energyLevel int) float64 {
	minutes := task.Duration().Minutes()

	complexity := 0.5
	switch {
	case minutes > 60:
		complexity = 0.8
	case minutes > 30:
		complexity = 0.6
	case minutes < 15:
		complexity = 0.3
	}

	if len(task.Description) > 200 {
		complexity = min(1.0, complexity+0.2)
	}
	if task.HasAttendees() {
		complexity = min(1.0, complexity+0.1)
	}

	// 1 -> 0.0, 3 -> 0.5, 5 -> 1.0
	normalizedEnergy := float64(energyLevel-1) / 4.0

	fit := 1.0 - abs(complexity-normalizedEnergy)
	return max(0.0, fit)
}

func timeConstraintScore(task *domain.RawTask, window *Window) float64 {
	if window == nil || window.Start.IsZero() || window.End.IsZero() {
		return 1.0
	}
	if task.StartTime.Before(window.Start) || task.EndTime.After(window.End) {
		return partialFitPenalty
	}
	return 1.0
}

// overrideMultiplier boosts critical and urgent tasks; critical takes
// precedence when both flags are set.
func overrideMultiplier(task *domain.RawTask) float64 {
	if task.IsCritical {
		return criticalMultiplier
	}
	if task.IsUrgent {
		return urgentMultiplier
	}
	return 1.0
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
