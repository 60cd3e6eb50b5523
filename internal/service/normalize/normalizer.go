package normalize

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/protektiq/lifeflow/internal/domain"
)

const (
	// reminderMaxDuration is the duration under which a bare event with a
	// "reminder" title is treated as informational rather than schedulable.
	reminderMaxDuration = 5 * time.Minute

	// earlyNextDayHour: a next-day-UTC task before this hour is heuristically
	// still "yesterday evening" in common western timezones.
	earlyNextDayHour = 8

	// nominalDuration replaces a degenerate window where end <= start.
	nominalDuration = 30 * time.Minute
)

// Task is an eligible task annotated with how its local date was
// resolved. LocalDateApprox marks rows resolved via the lossy UTC
// heuristic so downstream surfaces can flag them for review.
type Task struct {
	domain.RawTask
	AllDay          bool
	LocalDateApprox bool
}

// Reminder is an informational item collected for the plan date but
// excluded from scheduling.
type Reminder struct {
	Task   domain.RawTask
	AllDay bool
}

// Result is the output of one normalization pass.
type Result struct {
	Eligible  []Task
	Reminders []Reminder
	Skipped   int
}

// Normalizer resolves each ingested task's true local calendar date,
// classifies all-day/reminder/timed rows, and discards rows outside the
// target plan date. It never mutates stored UTC instants; corrections
// apply to the in-memory copy used for that day's planning pass.
type Normalizer struct{}

func NewNormalizer() *Normalizer {
	return &Normalizer{}
}

func (n *Normalizer) Normalize(ctx context.Context, tasks []domain.RawTask, planDate domain.Date) Result {
	result := Result{
		Eligible:  make([]Task, 0, len(tasks)),
		Reminders: make([]Reminder, 0),
	}

	for _, task := range tasks {
		if task.IsSpam {
			result.Skipped++
			slog.DebugContext(ctx, "excluding spam task from planning",
				slog.String("task_id", task.ID.String()),
				slog.String("spam_reason", task.SpamReason),
			)
			continue
		}

		provider := task.Provider()
		allDay := provider.Start.Date != ""

		if isReminder(&task, provider, allDay) {
			if reminderMatchesDate(&task, provider, allDay, planDate) {
				result.Reminders = append(result.Reminders, Reminder{Task: task, AllDay: allDay})
				slog.DebugContext(ctx, "collected reminder for plan date",
					slog.String("task_id", task.ID.String()),
					slog.String("title", task.Title),
				)
			} else {
				result.Skipped++
			}
			continue
		}

		if allDay {
			if provider.Start.Date != planDate.String() {
				result.Skipped++
				continue
			}
			result.Eligible = append(result.Eligible, Task{RawTask: normalizeWindow(task), AllDay: true})
			continue
		}

		localDate, ok := localDateOf(provider)
		if ok {
			if !localDate.Equal(planDate) {
				result.Skipped++
				continue
			}
			result.Eligible = append(result.Eligible, Task{RawTask: normalizeWindow(task)})
			continue
		}

		// No provider local-time string: fall back to the conservative UTC
		// heuristic. This path is lossy near day boundaries in non-western
		// timezones, so the task is flagged as approximately resolved.
		if !utcHeuristicMatches(&task, planDate) {
			result.Skipped++
			continue
		}
		slog.DebugContext(ctx, "resolved task date via UTC heuristic",
			slog.String("task_id", task.ID.String()),
			slog.Time("start_time", task.StartTime),
			slog.String("plan_date", planDate.String()),
		)
		result.Eligible = append(result.Eligible, Task{RawTask: normalizeWindow(task), LocalDateApprox: true})
	}

	slog.InfoContext(ctx, "normalized tasks for plan date",
		slog.String("plan_date", planDate.String()),
		slog.Int("eligible", len(result.Eligible)),
		slog.Int("reminders", len(result.Reminders)),
		slog.Int("skipped", result.Skipped),
	)

	return result
}

// isReminder applies the priority-ordered reminder heuristics. A task the
// user explicitly converted from a reminder is sticky and never
// reclassified.
func isReminder(task *domain.RawTask, provider domain.ProviderData, allDay bool) bool {
	if provider.ConvertedFromReminder {
		return false
	}

	if provider.EventType == "reminder" {
		return true
	}

	bare := !task.HasAttendees() && task.Location == ""
	if allDay && bare {
		return true
	}

	return task.Duration() < reminderMaxDuration && bare &&
		strings.Contains(strings.ToLower(task.Title), "reminder")
}

func reminderMatchesDate(task *domain.RawTask, provider domain.ProviderData, allDay bool, planDate domain.Date) bool {
	if allDay {
		return provider.Start.Date == planDate.String()
	}
	if localDate, ok := localDateOf(provider); ok {
		return localDate.Equal(planDate)
	}
	utcDate := domain.DateOf(task.StartTime.UTC())
	return utcDate.Equal(planDate) || utcDate.Equal(planDate.AddDays(1))
}

// localDateOf extracts the calendar date from the provider's original
// local-time string, before any UTC conversion. A UTC instant alone
// cannot disambiguate which calendar day a task belongs to across
// timezones, so the provider string is authoritative when present.
func localDateOf(provider domain.ProviderData) (domain.Date, bool) {
	raw := provider.Start.DateTime
	if raw == "" {
		return domain.Date{}, false
	}
	idx := strings.IndexByte(raw, 'T')
	if idx != 10 {
		return domain.Date{}, false
	}
	date, err := domain.ParseDate(raw[:idx])
	if err != nil {
		return domain.Date{}, false
	}
	return date, true
}

// utcHeuristicMatches is the fallback date check for rows missing a
// provider local-time string: keep same-day-UTC rows and next-day-UTC
// rows late enough to plausibly be the plan date's evening.
func utcHeuristicMatches(task *domain.RawTask, planDate domain.Date) bool {
	start := task.StartTime.UTC()
	utcDate := domain.DateOf(start)

	if utcDate.Before(planDate) {
		return false
	}
	if !utcDate.Before(planDate.AddDays(2)) {
		return false
	}
	if utcDate.Equal(planDate.AddDays(1)) && start.Hour() < earlyNextDayHour {
		return false
	}
	return true
}

// normalizeWindow enforces end >= start on the working copy without
// touching the stored instants.
func normalizeWindow(task domain.RawTask) domain.RawTask {
	if !task.EndTime.After(task.StartTime) {
		task.EndTime = task.StartTime.Add(nominalDuration)
	}
	return task
}
