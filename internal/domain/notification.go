package domain

import (
	"time"

	"github.com/google/uuid"
)

type NotificationStatus string

const (
	NotificationPending   NotificationStatus = "pending"
	NotificationSent      NotificationStatus = "sent"
	NotificationDismissed NotificationStatus = "dismissed"
)

type NotificationType string

const NotificationNudge NotificationType = "nudge"

// Notification is one nudge record per (task, trigger instant). At most
// one pending or sent notification may exist per task at a time; the
// repository enforces this with a compare-and-insert.
type Notification struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	TaskID      uuid.UUID
	PlanID      *uuid.UUID
	Type        NotificationType
	Message     string
	ScheduledAt time.Time
	SentAt      *time.Time
	Status      NotificationStatus
	CreatedAt   time.Time
}

func NewNudge(userID, taskID uuid.UUID, planID *uuid.UUID, message string, scheduledAt time.Time) *Notification {
	return &Notification{
		ID:          uuid.New(),
		UserID:      userID,
		TaskID:      taskID,
		PlanID:      planID,
		Type:        NotificationNudge,
		Message:     message,
		ScheduledAt: scheduledAt,
		Status:      NotificationPending,
		CreatedAt:   time.Now().UTC(),
	}
}
