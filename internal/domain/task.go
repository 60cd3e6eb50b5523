package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Source identifies where a raw task was ingested from.
type Source string

const (
	SourceCalendar    Source = "calendar"
	SourceEmail       Source = "email"
	SourceTaskManager Source = "external-task-manager"
)

func (s Source) String() string {
	return string(s)
}

// Priority is the label extracted for a task during ingestion. An empty
// value is treated as PriorityNormal everywhere it is scored.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
	PriorityNormal Priority = "normal"
)

// Score maps the priority label to its scoring weight.
func (p Priority) Score() float64 {
	switch p {
	case PriorityHigh:
		return 1.0
	case PriorityMedium:
		return 0.7
	case PriorityLow:
		return 0.4
	default:
		return 0.5
	}
}

// RawTask is the normalized representation of an ingested calendar, email,
// or task-manager item. Start/End are always absolute UTC instants; the
// provider's original local-time strings survive in RawData and are the
// authority for local-date resolution.
type RawTask struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Source      Source
	SourceRef   string // provider message id for email tasks
	Title       string
	Description string
	StartTime   time.Time
	EndTime     time.Time
	Attendees   []string
	Location    string
	Priority    Priority
	IsCritical  bool
	IsUrgent    bool
	IsSpam      bool
	SpamReason  string
	SpamScore   float64
	RawData     json.RawMessage
	Completed   bool
	CompletedAt *time.Time
	CreatedAt   time.Time
}

func (t *RawTask) Duration() time.Duration {
	return t.EndTime.Sub(t.StartTime)
}

func (t *RawTask) HasAttendees() bool {
	return len(t.Attendees) > 0
}

// ProviderTime mirrors the start/end shape of calendar provider payloads:
// all-day items carry a date-only field, timed items carry a local
// date-time string.
type ProviderTime struct {
	Date     string `json:"date,omitempty"`
	DateTime string `json:"dateTime,omitempty"`
}

// ProviderData is the subset of the opaque provider payload the planner
// depends on.
type ProviderData struct {
	EventType             string       `json:"eventType,omitempty"`
	Start                 ProviderTime `json:"start,omitempty"`
	End                   ProviderTime `json:"end,omitempty"`
	ConvertedFromReminder bool         `json:"converted_from_reminder,omitempty"`
	MessageID             string       `json:"message_id,omitempty"`
}

// Provider decodes the raw provider payload. An absent or malformed payload
// yields the zero value; the caller falls back to UTC heuristics.
func (t *RawTask) Provider() ProviderData {
	var data ProviderData
	if len(t.RawData) == 0 {
		return data
	}
	if err := json.Unmarshal(t.RawData, &data); err != nil {
		return ProviderData{}
	}
	return data
}

// IsAllDay reports whether the provider marked the task with a date-only
// start.
func (t *RawTask) IsAllDay() bool {
	return t.Provider().Start.Date != ""
}
