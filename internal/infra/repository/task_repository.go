package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/protektiq/lifeflow/internal/domain"
)

type taskRepository struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) domain.TaskRepository {
	return &taskRepository{db: db}
}

func (r *taskRepository) UpsertCalendarTask(ctx context.Context, task *domain.RawTask) (bool, error) {
	if task == nil {
		return false, ErrInvalidTaskData
	}

	model, err := taskToModel(task)
	if err != nil {
		return false, err
	}

	created := false
	err = r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&taskModel{}).
			Where("user_id = ? AND source = ? AND title = ? AND start_time = ?",
				model.UserID, model.Source, model.Title, model.StartTime).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return nil
		}
		if err := tx.Create(model).Error; err != nil {
			return err
		}
		created = true
		return nil
	})
	if err != nil {
		return false, err
	}
	if created {
		task.ID = model.ID
		task.CreatedAt = model.CreatedAt
	}
	return created, nil
}

func (r *taskRepository) UpsertEmailTask(ctx context.Context, task *domain.RawTask) (bool, error) {
	if task == nil {
		return false, ErrInvalidTaskData
	}

	model, err := taskToModel(task)
	if err != nil {
		return false, err
	}

	created := false
	err = r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing taskModel
		err := tx.Where("user_id = ? AND source = ? AND source_ref = ?",
			model.UserID, model.Source, model.SourceRef).
			First(&existing).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			if err := tx.Create(model).Error; err != nil {
				return err
			}
			created = true
			return nil
		}
		if err != nil {
			return err
		}

		// Re-ingestion may revise the classification of a known message.
		model.ID = existing.ID
		model.CreatedAt = existing.CreatedAt
		model.Completed = existing.Completed
		model.CompletedAt = existing.CompletedAt
		return tx.Save(model).Error
	})
	if err != nil {
		return false, err
	}
	task.ID = model.ID
	task.CreatedAt = model.CreatedAt
	return created, nil
}

func (r *taskRepository) ListInWindow(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]domain.RawTask, error) {
	var models []taskModel
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND start_time >= ? AND start_time < ?", userID, start.UTC(), end.UTC()).
		Order("start_time ASC, created_at ASC").
		Find(&models).Error
	if err != nil {
		return nil, err
	}

	tasks := make([]domain.RawTask, 0, len(models))
	for i := range models {
		task, err := taskToDomain(&models[i])
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, *task)
	}
	return tasks, nil
}

func (r *taskRepository) Get(ctx context.Context, id uuid.UUID) (*domain.RawTask, error) {
	var model taskModel
	err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrTaskNotFound
	}
	if err != nil {
		return nil, err
	}
	return taskToDomain(&model)
}

func (r *taskRepository) MarkCompleted(ctx context.Context, id uuid.UUID, at time.Time) error {
	at = at.UTC()
	result := r.db.WithContext(ctx).Model(&taskModel{}).
		Where("id = ?", id).
		Updates(map[string]any{"completed": true, "completed_at": at})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrTaskNotFound
	}
	return nil
}

func (r *taskRepository) ListUserIDs(ctx context.Context) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := r.db.WithContext(ctx).Model(&taskModel{}).
		Distinct("user_id").
		Pluck("user_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}
