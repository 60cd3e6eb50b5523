package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/protektiq/lifeflow/internal/domain"
)

type energyRepository struct {
	db *gorm.DB
}

func NewEnergyRepository(db *gorm.DB) domain.EnergyRepository {
	return &energyRepository{db: db}
}

func (r *energyRepository) Get(ctx context.Context, userID uuid.UUID, date domain.Date) (int, error) {
	var model energyModel
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND date = ?", userID, date.String()).
		First(&model).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return model.Level, nil
}

func (r *energyRepository) Set(ctx context.Context, userID uuid.UUID, date domain.Date, level int) error {
	if level < 1 || level > 5 {
		return domain.ErrInvalidEnergyLevel
	}

	model := energyModel{UserID: userID, Date: date.String(), Level: level}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "date"}},
			DoUpdates: clause.AssignmentColumns([]string{"level"}),
		}).
		Create(&model).Error
}
