package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/protektiq/lifeflow/internal/domain"
)

type notificationRepository struct {
	db *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) domain.NotificationRepository {
	return &notificationRepository{db: db}
}

// CreateIfAbsent inserts the notification unless a pending or sent one
// already exists for the task. Check and insert share one transaction so
// concurrent sweeps cannot both create a row.
func (r *notificationRepository) CreateIfAbsent(ctx context.Context, notification *domain.Notification) (bool, error) {
	created := false
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&notificationModel{}).
			Where("task_id = ? AND status IN ?", notification.TaskID,
				[]string{string(domain.NotificationPending), string(domain.NotificationSent)}).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return nil
		}

		model := notificationModel{
			ID:          notification.ID,
			UserID:      notification.UserID,
			TaskID:      notification.TaskID,
			PlanID:      notification.PlanID,
			Type:        string(notification.Type),
			Message:     notification.Message,
			ScheduledAt: notification.ScheduledAt.UTC(),
			SentAt:      notification.SentAt,
			Status:      string(notification.Status),
			CreatedAt:   notification.CreatedAt,
		}
		if err := tx.Create(&model).Error; err != nil {
			return err
		}
		created = true
		return nil
	})
	if err != nil {
		return false, err
	}
	return created, nil
}

func (r *notificationRepository) MarkSent(ctx context.Context, id uuid.UUID, at time.Time) error {
	at = at.UTC()
	result := r.db.WithContext(ctx).Model(&notificationModel{}).
		Where("id = ?", id).
		Updates(map[string]any{"status": string(domain.NotificationSent), "sent_at": at})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotificationNotFound
	}
	return nil
}

func (r *notificationRepository) Dismiss(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Model(&notificationModel{}).
		Where("id = ?", id).
		Update("status", string(domain.NotificationDismissed))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotificationNotFound
	}
	return nil
}

func (r *notificationRepository) ListForTask(ctx context.Context, taskID uuid.UUID) ([]domain.Notification, error) {
	var models []notificationModel
	err := r.db.WithContext(ctx).
		Where("task_id = ?", taskID).
		Order("created_at ASC").
		Find(&models).Error
	if err != nil {
		return nil, err
	}

	notifications := make([]domain.Notification, 0, len(models))
	for _, model := range models {
		notifications = append(notifications, domain.Notification{
			ID:          model.ID,
			UserID:      model.UserID,
			TaskID:      model.TaskID,
			PlanID:      model.PlanID,
			Type:        domain.NotificationType(model.Type),
			Message:     model.Message,
			ScheduledAt: model.ScheduledAt.UTC(),
			SentAt:      model.SentAt,
			Status:      domain.NotificationStatus(model.Status),
			CreatedAt:   model.CreatedAt,
		})
	}
	return notifications, nil
}
