package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/protektiq/lifeflow/internal/domain"
)

type feedbackRepository struct {
	db *gorm.DB
}

func NewFeedbackRepository(db *gorm.DB) domain.FeedbackRepository {
	return &feedbackRepository{db: db}
}

func (r *feedbackRepository) Create(ctx context.Context, feedback *domain.TaskFeedback) error {
	id := feedback.ID
	if id == uuid.Nil {
		id = uuid.New()
	}
	feedbackAt := feedback.FeedbackAt
	if feedbackAt.IsZero() {
		feedbackAt = time.Now().UTC()
	}

	model := feedbackModel{
		ID:                    id,
		UserID:                feedback.UserID,
		TaskID:                feedback.TaskID,
		PlanID:                feedback.PlanID,
		Action:                string(feedback.Action),
		SnoozeDurationMinutes: feedback.SnoozeDurationMinutes,
		FeedbackAt:            feedbackAt,
	}
	if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
		return err
	}
	feedback.ID = model.ID
	feedback.FeedbackAt = model.FeedbackAt
	return nil
}

func (r *feedbackRepository) ListSnoozes(ctx context.Context, userID uuid.UUID) ([]domain.SnoozeEvent, error) {
	var rows []struct {
		StartTime             time.Time
		SnoozeDurationMinutes *int
	}

	err := r.db.WithContext(ctx).
		Table("task_feedback").
		Select("raw_tasks.start_time, task_feedback.snooze_duration_minutes").
		Joins("JOIN raw_tasks ON raw_tasks.id = task_feedback.task_id").
		Where("task_feedback.user_id = ? AND task_feedback.action = ?", userID, string(domain.FeedbackSnoozed)).
		Order("task_feedback.feedback_at ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	events := make([]domain.SnoozeEvent, 0, len(rows))
	for _, row := range rows {
		events = append(events, domain.SnoozeEvent{
			TaskStart:       row.StartTime.UTC(),
			DurationMinutes: row.SnoozeDurationMinutes,
		})
	}
	return events, nil
}

func (r *feedbackRepository) CountTaskSnoozes(ctx context.Context, userID, taskID uuid.UUID) (int, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&feedbackModel{}).
		Where("user_id = ? AND task_id = ? AND action = ?", userID, taskID, string(domain.FeedbackSnoozed)).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return int(count), nil
}
