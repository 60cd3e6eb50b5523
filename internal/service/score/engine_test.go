package score

import (
	"math"
	"testing"
	"time"

	"github.com/protektiq/lifeflow/internal/domain"
)

func taskWithDuration(minutes int) *domain.RawTask {
	start := time.Date(2026, 8, 30, 9, 0, 0, 0, time.UTC)
	return &domain.RawTask{
		StartTime: start,
		EndTime:   start.Add(time.Duration(minutes) * time.Minute),
	}
}

func TestScoreWorkedExample(t *testing.T) {
	// 90 minute task, no attendees, 50 char description, normal priority,
	// energy level 3, no window:
	// complexity=0.8, normalized energy=0.5, energy fit=0.7
	// base = 0.5*0.3 + 0.7*0.4 + 1.0*0.3 = 0.73
	task := taskWithDuration(90)
	task.Description = "a task description of about fifty characters text"

	engine := NewEngine()
	got := engine.Score(task, 3, nil)

	if math.Abs(got-0.73) > 1e-9 {
		t.Errorf("Score() = %v, want 0.73", got)
	}
}

func TestScorePriorityMapping(t *testing.T) {
	tests := []struct {
		name     string
		priority domain.Priority
		want     float64
	}{
		{"high", domain.PriorityHigh, 1.0},
		{"medium", domain.PriorityMedium, 0.7},
		{"low", domain.PriorityLow, 0.4},
		{"normal", domain.PriorityNormal, 0.5},
		{"unset", domain.Priority(""), 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.priority.Score(); got != tt.want {
				t.Errorf("Priority(%q).Score() = %v, want %v", tt.priority, got, tt.want)
			}
		})
	}
}

func TestScoreAlwaysInUnitRange(t *testing.T) {
	engine := NewEngine()

	priorities := []domain.Priority{domain.PriorityHigh, domain.PriorityMedium, domain.PriorityLow, domain.PriorityNormal, ""}
	durations := []int{1, 10, 14, 15, 30, 31, 45, 60, 61, 90, 480}
	descriptions := []int{0, 50, 201, 1000}
	flags := []struct{ critical, urgent bool }{
		{false, false}, {true, false}, {false, true}, {true, true},
	}

	for _, p := range priorities {
		for _, d := range durations {
			for _, descLen := range descriptions {
				for _, f := range flags {
					for level := 1; level <= 5; level++ {
						task := taskWithDuration(d)
						task.Priority = p
						task.Description = string(make([]byte, descLen))
						task.IsCritical = f.critical
						task.IsUrgent = f.urgent
						if d%2 == 0 {
							task.Attendees = []string{"a@example.com"}
						}

						got := engine.Score(task, level, nil)
						if got < 0 || got > 1 {
							t.Fatalf("Score out of range: %v (priority=%q duration=%dm desc=%d flags=%+v level=%d)",
								got, p, d, descLen, f, level)
						}
					}
				}
			}
		}
	}
}

func TestScoreCriticalPrecedesUrgent(t *testing.T) {
	engine := NewEngine()

	task := taskWithDuration(30)
	task.IsCritical = true
	task.IsUrgent = true
	both := engine.Score(task, 3, nil)

	task.IsUrgent = false
	criticalOnly := engine.Score(task, 3, nil)

	if both != criticalOnly {
		t.Errorf("critical+urgent score %v differs from critical-only %v; critical must take precedence", both, criticalOnly)
	}
}

func TestScoreTimeWindow(t *testing.T) {
	engine := NewEngine()
	task := taskWithDuration(30)

	window := &Window{
		Start: task.StartTime.Add(-time.Hour),
		End:   task.EndTime.Add(time.Hour),
	}
	inside := engine.Score(task, 3, window)

	tight := &Window{
		Start: task.StartTime.Add(10 * time.Minute),
		End:   task.EndTime,
	}
	outside := engine.Score(task, 3, tight)

	if outside >= inside {
		t.Errorf("expected window violation to lower score: inside=%v outside=%v", inside, outside)
	}
}

func TestEnergyFitBoosts(t *testing.T) {
	// Long meeting with a detailed description caps complexity at 1.0.
	task := taskWithDuration(120)
	task.Description = string(make([]byte, 300))
	task.Attendees = []string{"a@example.com", "b@example.com"}

	// At energy 5 the normalized energy is 1.0, matching max complexity.
	got := energyFitScore(task, 5)
	if math.Abs(got-1.0) > 1e-9 {
		t.Errorf("energyFitScore = %v, want 1.0", got)
	}

	// At energy 1 the mismatch is maximal.
	got = energyFitScore(task, 1)
	if math.Abs(got-0.2) > 1e-9 {
		t.Errorf("energyFitScore = %v, want 0.2", got)
	}
}
