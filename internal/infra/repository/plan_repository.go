package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/protektiq/lifeflow/internal/domain"
)

type planRepository struct {
	db *gorm.DB
}

func NewPlanRepository(db *gorm.DB) domain.PlanRepository {
	return &planRepository{db: db}
}

// Replace atomically makes plan the only active plan for its (user, plan
// date): earlier active plans are archived and the new row inserted in
// one transaction, so readers never observe a planless gap.
func (r *planRepository) Replace(ctx context.Context, plan *domain.DailyPlan) error {
	if plan == nil {
		return ErrInvalidPlanData
	}

	model, err := planToModel(plan)
	if err != nil {
		return err
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&planModel{}).
			Where("user_id = ? AND plan_date = ? AND status = ? AND id <> ?",
				model.UserID, model.PlanDate, string(domain.PlanStatusActive), model.ID).
			Update("status", string(domain.PlanStatusArchived)).Error; err != nil {
			return err
		}
		return tx.Save(model).Error
	})
}

func (r *planRepository) GetActive(ctx context.Context, userID uuid.UUID, planDate domain.Date) (*domain.DailyPlan, error) {
	var model planModel
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND plan_date = ? AND status = ?",
			userID, planDate.String(), string(domain.PlanStatusActive)).
		Order("generated_at DESC").
		First(&model).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrPlanNotFound
	}
	if err != nil {
		return nil, err
	}
	return planToDomain(&model)
}

func (r *planRepository) ListActive(ctx context.Context) ([]domain.DailyPlan, error) {
	var models []planModel
	err := r.db.WithContext(ctx).
		Where("status = ?", string(domain.PlanStatusActive)).
		Find(&models).Error
	if err != nil {
		return nil, err
	}

	plans := make([]domain.DailyPlan, 0, len(models))
	for i := range models {
		plan, err := planToDomain(&models[i])
		if err != nil {
			return nil, err
		}
		plans = append(plans, *plan)
	}
	return plans, nil
}

func (r *planRepository) Archive(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Model(&planModel{}).
		Where("id = ?", id).
		Update("status", string(domain.PlanStatusArchived))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrPlanNotFound
	}
	return nil
}
