package mealplan

import (
	"context"
	"time"

	"github.com/davidvct/healthy-meal-planner/domain"
	"github.com/davidvct/healthy-meal-planner/entities"
	"gorm.io/gorm"
)

type (
	MealPlanRepository interface {
		GetWeekEntries(ctx context.Context, dinerID string, weekStart time.Time) ([]entities.MealPlanEntry, error)
		GetEntryByID(ctx context.Context, id uint, dinerID string) (*entities.MealPlanEntry, error)
		AppendEntry(ctx context.Context, entry *entities.MealPlanEntry) error
		DeleteEntry(ctx context.Context, id uint, dinerID string) error
	}

	mealPlanRepository struct {
		db *gorm.DB
	}
)

func NewMealPlanRepository(db *gorm.DB) MealPlanRepository {
	return &mealPlanRepository{db: db}
}

func (r *mealPlanRepository) GetWeekEntries(ctx context.Context, dinerID string, weekStart time.Time) ([]entities.MealPlanEntry, error) {
	var entries []entities.MealPlanEntry
	if err := r.db.WithContext(ctx).
		Preload("Dish").
		Where("diner_id = ? AND week_start = ?", dinerID, weekStart.Format(domain.DateLayout)).
		Order("day_index asc").
		Order("meal_type asc").
		Order("entry_order asc").
		Order("id asc").
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *mealPlanRepository) GetEntryByID(ctx context.Context, id uint, dinerID string) (*entities.MealPlanEntry, error) {
	var entry entities.MealPlanEntry
	if err := r.db.WithContext(ctx).
		Where("id = ? AND diner_id = ?", id, dinerID).
		First(&entry).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

// AppendEntry places the entry after the last one in its slot.
func (r *mealPlanRepository) AppendEntry(ctx context.Context, entry *entities.MealPlanEntry) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var maxOrder int
		if err := tx.Model(&entities.MealPlanEntry{}).
			Select("COALESCE(MAX(entry_order), -1)").
			Where("diner_id = ? AND week_start = ? AND day_index = ? AND meal_type = ?",
				entry.DinerID, entry.WeekStart.Format(domain.DateLayout), entry.DayIndex, entry.MealType).
			Scan(&maxOrder).Error; err != nil {
			return err
		}
		entry.EntryOrder = maxOrder + 1
		return tx.Create(entry).Error
	})
}

func (r *mealPlanRepository) DeleteEntry(ctx context.Context, id uint, dinerID string) error {
	res := r.db.WithContext(ctx).
		Where("id = ? AND diner_id = ?", id, dinerID).
		Delete(&entities.MealPlanEntry{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
