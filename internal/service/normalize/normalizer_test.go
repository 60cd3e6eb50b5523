package normalize

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/protektiq/lifeflow/internal/domain"
)

func rawData(t *testing.T, provider domain.ProviderData) json.RawMessage {
	t.Helper()

	data, err := json.Marshal(provider)
	if err != nil {
		t.Fatalf("marshal provider data: %v", err)
	}
	return data
}

func timedTask(t *testing.T, title string, start time.Time, dur time.Duration, provider domain.ProviderData) domain.RawTask {
	t.Helper()

	return domain.RawTask{
		ID:        uuid.New(),
		UserID:    uuid.New(),
		Source:    domain.SourceCalendar,
		Title:     title,
		StartTime: start.UTC(),
		EndTime:   start.UTC().Add(dur),
		RawData:   rawData(t, provider),
	}
}

func TestNormalizeTimedTaskByProviderLocalDate(t *testing.T) {
	planDate := domain.NewDate(2026, time.March, 10)

	// 23:30 local on March 10 in UTC+9 is 14:30 UTC the same day, but the
	// symmetric case below crosses the UTC boundary. The provider string,
	// not the UTC instant, decides eligibility.
	tests := []struct {
		name     string
		dateTime string
		startUTC time.Time
		want     bool
	}{
		{
			name:     "local date matches despite late UTC instant",
			dateTime: "2026-03-10T23:30:00+09:00",
			startUTC: time.Date(2026, time.March, 10, 14, 30, 0, 0, time.UTC),
			want:     true,
		},
		{
			name:     "early local morning lands on previous UTC date",
			dateTime: "2026-03-10T01:00:00+09:00",
			startUTC: time.Date(2026, time.March, 9, 16, 0, 0, 0, time.UTC),
			want:     true,
		},
		{
			name:     "local date is the previous day",
			dateTime: "2026-03-09T23:30:00+09:00",
			startUTC: time.Date(2026, time.March, 9, 14, 30, 0, 0, time.UTC),
			want:     false,
		},
		{
			name:     "local date is the next day",
			dateTime: "2026-03-11T08:00:00-05:00",
			startUTC: time.Date(2026, time.March, 11, 13, 0, 0, 0, time.UTC),
			want:     false,
		},
	}

	n := NewNormalizer()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			task := timedTask(t, "standup", tt.startUTC, time.Hour, domain.ProviderData{
				Start: domain.ProviderTime{DateTime: tt.dateTime},
			})
			task.Attendees = []string{"a@example.com"}

			result := n.Normalize(context.Background(), []domain.RawTask{task}, planDate)

			if got := len(result.Eligible) == 1; got != tt.want {
				t.Errorf("eligible = %v, want %v", got, tt.want)
			}
			if tt.want && result.Eligible[0].LocalDateApprox {
				t.Error("provider-resolved task must not be flagged LocalDateApprox")
			}
		})
	}
}

func TestNormalizeUTCFallbackHeuristic(t *testing.T) {
	planDate := domain.NewDate(2026, time.March, 10)

	tests := []struct {
		name     string
		startUTC time.Time
		want     bool
	}{
		{
			name:     "same UTC date kept",
			startUTC: time.Date(2026, time.March, 10, 9, 0, 0, 0, time.UTC),
			want:     true,
		},
		{
			name:     "previous UTC date dropped",
			startUTC: time.Date(2026, time.March, 9, 23, 0, 0, 0, time.UTC),
			want:     false,
		},
		{
			name:     "next day late UTC kept as plan date evening",
			startUTC: time.Date(2026, time.March, 11, 13, 0, 0, 0, time.UTC),
			want:     true,
		},
		{
			name:     "next day before 08 UTC dropped",
			startUTC: time.Date(2026, time.March, 11, 7, 59, 0, 0, time.UTC),
			want:     false,
		},
		{
			name:     "two days ahead dropped",
			startUTC: time.Date(2026, time.March, 12, 9, 0, 0, 0, time.UTC),
			want:     false,
		},
	}

	n := NewNormalizer()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			task := timedTask(t, "deep work", tt.startUTC, time.Hour, domain.ProviderData{})
			task.Attendees = []string{"a@example.com"}

			result := n.Normalize(context.Background(), []domain.RawTask{task}, planDate)

			if got := len(result.Eligible) == 1; got != tt.want {
				t.Errorf("eligible = %v, want %v", got, tt.want)
			}
			if tt.want && !result.Eligible[0].LocalDateApprox {
				t.Error("heuristic-resolved task must be flagged LocalDateApprox")
			}
		})
	}
}

func TestNormalizeReminderClassification(t *testing.T) {
	planDate := domain.NewDate(2026, time.March, 10)
	start := time.Date(2026, time.March, 10, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		task     func(t *testing.T) domain.RawTask
		reminder bool
	}{
		{
			name: "explicit provider reminder type",
			task: func(t *testing.T) domain.RawTask {
				task := timedTask(t, "take medication", start, time.Hour, domain.ProviderData{
					EventType: "reminder",
					Start:     domain.ProviderTime{DateTime: "2026-03-10T09:00:00Z"},
				})
				task.Attendees = []string{"a@example.com"}
				return task
			},
			reminder: true,
		},
		{
			name: "all-day without attendees or location",
			task: func(t *testing.T) domain.RawTask {
				return timedTask(t, "pay rent", planDate.StartUTC(), 24*time.Hour, domain.ProviderData{
					Start: domain.ProviderTime{Date: "2026-03-10"},
				})
			},
			reminder: true,
		},
		{
			name: "short bare event titled reminder",
			task: func(t *testing.T) domain.RawTask {
				return timedTask(t, "Reminder: submit timesheet", start, 2*time.Minute, domain.ProviderData{
					Start: domain.ProviderTime{DateTime: "2026-03-10T09:00:00Z"},
				})
			},
			reminder: true,
		},
		{
			name: "converted_from_reminder overrides all heuristics",
			task: func(t *testing.T) domain.RawTask {
				return timedTask(t, "pay rent", planDate.StartUTC(), 24*time.Hour, domain.ProviderData{
					Start:                 domain.ProviderTime{Date: "2026-03-10"},
					ConvertedFromReminder: true,
				})
			},
			reminder: false,
		},
		{
			name: "short titled reminder with attendees stays a task",
			task: func(t *testing.T) domain.RawTask {
				task := timedTask(t, "reminder sync", start, 2*time.Minute, domain.ProviderData{
					Start: domain.ProviderTime{DateTime: "2026-03-10T09:00:00Z"},
				})
				task.Attendees = []string{"a@example.com"}
				return task
			},
			reminder: false,
		},
	}

	n := NewNormalizer()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := n.Normalize(context.Background(), []domain.RawTask{tt.task(t)}, planDate)

			if got := len(result.Reminders) == 1; got != tt.reminder {
				t.Errorf("reminder = %v, want %v", got, tt.reminder)
			}
			if !tt.reminder && len(result.Eligible) != 1 {
				t.Errorf("eligible = %d, want 1", len(result.Eligible))
			}
		})
	}
}

func TestNormalizeAllDayRequiresLiteralDateMatch(t *testing.T) {
	planDate := domain.NewDate(2026, time.March, 10)

	task := timedTask(t, "company offsite", planDate.AddDays(1).StartUTC(), 24*time.Hour, domain.ProviderData{
		Start: domain.ProviderTime{Date: "2026-03-11"},
	})
	task.Location = "HQ"

	result := NewNormalizer().Normalize(context.Background(), []domain.RawTask{task}, planDate)

	if len(result.Eligible) != 0 {
		t.Fatalf("eligible = %d, want 0", len(result.Eligible))
	}
	if result.Skipped != 1 {
		t.Errorf("skipped = %d, want 1", result.Skipped)
	}
}

func TestNormalizeExcludesSpam(t *testing.T) {
	planDate := domain.NewDate(2026, time.March, 10)

	task := timedTask(t, "urgent wire transfer", time.Date(2026, time.March, 10, 9, 0, 0, 0, time.UTC), time.Hour, domain.ProviderData{
		Start: domain.ProviderTime{DateTime: "2026-03-10T09:00:00Z"},
	})
	task.IsSpam = true
	task.SpamReason = "phishing pattern"
	task.IsCritical = true

	result := NewNormalizer().Normalize(context.Background(), []domain.RawTask{task}, planDate)

	if len(result.Eligible) != 0 || len(result.Reminders) != 0 {
		t.Fatalf("spam task must be excluded, got eligible=%d reminders=%d", len(result.Eligible), len(result.Reminders))
	}
	if result.Skipped != 1 {
		t.Errorf("skipped = %d, want 1", result.Skipped)
	}
}

func TestNormalizeRepairsDegenerateWindow(t *testing.T) {
	planDate := domain.NewDate(2026, time.March, 10)
	start := time.Date(2026, time.March, 10, 9, 0, 0, 0, time.UTC)

	task := timedTask(t, "quick check-in", start, 0, domain.ProviderData{
		Start: domain.ProviderTime{DateTime: "2026-03-10T09:00:00Z"},
	})
	task.Attendees = []string{"a@example.com"}

	result := NewNormalizer().Normalize(context.Background(), []domain.RawTask{task}, planDate)

	if len(result.Eligible) != 1 {
		t.Fatalf("eligible = %d, want 1", len(result.Eligible))
	}
	got := result.Eligible[0]
	if !got.EndTime.After(got.StartTime) {
		t.Errorf("end %v must be after start %v", got.EndTime, got.StartTime)
	}
}
