package entities

import (
	"time"

	"github.com/davidvct/healthy-meal-planner/domain"
	"github.com/google/uuid"
)

type ShoppingSelection struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	DinerID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_selection_slot" json:"diner_id"`
	WeekStart time.Time `gorm:"type:date;not null;uniqueIndex:idx_selection_slot" json:"week_start"`
	DayIndex  int       `gorm:"not null;uniqueIndex:idx_selection_slot" json:"day_index"`
	MealType  string    `gorm:"type:varchar(16);not null;uniqueIndex:idx_selection_slot" json:"meal_type"`

	Diner *Diner `gorm:"foreignKey:DinerID;constraint:OnDelete:CASCADE"`
	Timestamp
}

func (s ShoppingSelection) Slot() domain.SlotKey {
	return domain.SlotKey{DayIndex: s.DayIndex, MealType: s.MealType}
}
