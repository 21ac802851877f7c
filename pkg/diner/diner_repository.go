package diner

import (
	"context"

	"github.com/davidvct/healthy-meal-planner/entities"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type (
	DinerRepository interface {
		GetDinerByID(ctx context.Context, id string) (*entities.Diner, error)
		UpsertDiner(ctx context.Context, diner *entities.Diner) error
	}

	dinerRepository struct {
		db *gorm.DB
	}
)

func NewDinerRepository(db *gorm.DB) DinerRepository {
	return &dinerRepository{db: db}
}

func (r *dinerRepository) GetDinerByID(ctx context.Context, id string) (*entities.Diner, error) {
	var diner entities.Diner
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&diner).Error; err != nil {
		return nil, err
	}
	return &diner, nil
}

func (r *dinerRepository) UpsertDiner(ctx context.Context, diner *entities.Diner) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"name", "age", "sex", "weight_kg", "caretaker_id",
			"conditions", "diet", "allergies", "updated_at",
		}),
	}).Create(diner).Error
}
