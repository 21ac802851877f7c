package entities

import (
	"encoding/json"
	"time"

	"github.com/davidvct/healthy-meal-planner/domain"
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type MealPlanEntry struct {
	ID                uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	DinerID           uuid.UUID      `gorm:"type:uuid;not null;index:idx_meal_plan_week" json:"diner_id"`
	WeekStart         time.Time      `gorm:"type:date;not null;index:idx_meal_plan_week" json:"week_start"`
	DayIndex          int            `gorm:"not null" json:"day_index"`
	MealType          string         `gorm:"type:varchar(16);not null" json:"meal_type"`
	DishID            string         `gorm:"type:varchar(32);not null" json:"dish_id"`
	Servings          float64        `gorm:"not null;default:1" json:"servings"`
	CustomIngredients datatypes.JSON `gorm:"type:jsonb" json:"custom_ingredients,omitempty"`
	EntryOrder        int            `gorm:"not null;default:0" json:"entry_order"`

	Diner *Diner `gorm:"foreignKey:DinerID;constraint:OnDelete:CASCADE"`
	Dish  *Dish  `gorm:"foreignKey:DishID"`
	Timestamp
}

// ToDomain decodes the entry. An undecodable custom ingredient column is
// treated as absent.
func (e MealPlanEntry) ToDomain() domain.PlanEntry {
	entry := domain.PlanEntry{
		ID:         e.ID,
		DinerID:    e.DinerID.String(),
		DayIndex:   e.DayIndex,
		MealType:   e.MealType,
		DishID:     e.DishID,
		Servings:   e.Servings,
		EntryOrder: e.EntryOrder,
	}
	if e.Dish != nil {
		dish := e.Dish.ToDomain()
		entry.Dish = &dish
	}
	if len(e.CustomIngredients) > 0 && string(e.CustomIngredients) != "null" {
		var custom map[string]float64
		if err := json.Unmarshal(e.CustomIngredients, &custom); err == nil {
			entry.CustomIngredients = custom
		}
	}
	return entry
}

// EncodeCustomIngredients returns nil for a nil map so the column stays NULL.
func EncodeCustomIngredients(custom map[string]float64) (datatypes.JSON, error) {
	if custom == nil {
		return nil, nil
	}
	raw, err := json.Marshal(custom)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(raw), nil
}
