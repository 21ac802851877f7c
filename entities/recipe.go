package entities

import (
	"github.com/davidvct/healthy-meal-planner/domain"
	"gorm.io/datatypes"
)

type Recipe struct {
	ID              string                       `gorm:"primaryKey;type:varchar(32)" json:"id"`
	Name            string                       `json:"name"`
	PrepTimeMinutes int                          `json:"prep_time_minutes"`
	CookTimeMinutes int                          `json:"cook_time_minutes"`
	Steps           datatypes.JSONType[[]string] `gorm:"type:jsonb" json:"steps"`

	Timestamp
}

func (r Recipe) ToDomain() domain.Recipe {
	return domain.Recipe{
		ID:              r.ID,
		Name:            r.Name,
		PrepTimeMinutes: r.PrepTimeMinutes,
		CookTimeMinutes: r.CookTimeMinutes,
		Steps:           r.Steps.Data(),
	}
}

func NewRecipe(r domain.Recipe) Recipe {
	return Recipe{
		ID:              r.ID,
		Name:            r.Name,
		PrepTimeMinutes: r.PrepTimeMinutes,
		CookTimeMinutes: r.CookTimeMinutes,
		Steps:           datatypes.NewJSONType(r.Steps),
	}
}
