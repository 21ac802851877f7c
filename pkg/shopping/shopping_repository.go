package shopping

import (
	"context"
	"errors"
	"time"

	"github.com/davidvct/healthy-meal-planner/domain"
	"github.com/davidvct/healthy-meal-planner/entities"
	"gorm.io/gorm"
)

type (
	ShoppingRepository interface {
		GetSelections(ctx context.Context, dinerID string, weekStart time.Time) ([]entities.ShoppingSelection, error)
		ToggleSelection(ctx context.Context, selection *entities.ShoppingSelection) (bool, error)
		DeleteSelections(ctx context.Context, dinerID string, weekStart time.Time, slots []domain.SlotKey) error
	}

	shoppingRepository struct {
		db *gorm.DB
	}
)

func NewShoppingRepository(db *gorm.DB) ShoppingRepository {
	return &shoppingRepository{db: db}
}

func (r *shoppingRepository) GetSelections(ctx context.Context, dinerID string, weekStart time.Time) ([]entities.ShoppingSelection, error) {
	var selections []entities.ShoppingSelection
	if err := r.db.WithContext(ctx).
		Where("diner_id = ? AND week_start = ?", dinerID, weekStart.Format(domain.DateLayout)).
		Order("day_index asc").
		Order("id asc").
		Find(&selections).Error; err != nil {
		return nil, err
	}
	return selections, nil
}

// ToggleSelection removes the selection if it exists and creates it
// otherwise. It reports whether the slot is selected afterwards.
func (r *shoppingRepository) ToggleSelection(ctx context.Context, selection *entities.ShoppingSelection) (bool, error) {
	selected := false
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing entities.ShoppingSelection
		err := tx.Where("diner_id = ? AND week_start = ? AND day_index = ? AND meal_type = ?",
			selection.DinerID, selection.WeekStart.Format(domain.DateLayout), selection.DayIndex, selection.MealType).
			First(&existing).Error
		if err == nil {
			return tx.Delete(&existing).Error
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		selected = true
		return tx.Create(selection).Error
	})
	if err != nil {
		return false, err
	}
	return selected, nil
}

// DeleteSelections removes all the given slots or none of them. Slots that
// are already gone are ignored.
func (r *shoppingRepository) DeleteSelections(ctx context.Context, dinerID string, weekStart time.Time, slots []domain.SlotKey) error {
	if len(slots) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, slot := range slots {
			if err := tx.Where("diner_id = ? AND week_start = ? AND day_index = ? AND meal_type = ?",
				dinerID, weekStart.Format(domain.DateLayout), slot.DayIndex, slot.MealType).
				Delete(&entities.ShoppingSelection{}).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
