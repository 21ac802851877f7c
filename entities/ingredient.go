package entities

import (
	"github.com/davidvct/healthy-meal-planner/domain"
)

// Ingredient stores nutrients per 100 g.
type Ingredient struct {
	Name        string  `gorm:"primaryKey;type:varchar(100)" json:"name"`
	Calories    float64 `json:"calories"`
	Protein     float64 `json:"protein"`
	Carbs       float64 `json:"carbs"`
	Fat         float64 `json:"fat"`
	Fiber       float64 `json:"fiber"`
	Sodium      float64 `json:"sodium"`
	Cholesterol float64 `json:"cholesterol"`
	Sugar       float64 `json:"sugar"`

	Timestamp
}

func (i Ingredient) Nutrients() domain.NutrientVector {
	return domain.NutrientVector{
		Calories:    i.Calories,
		Protein:     i.Protein,
		Carbs:       i.Carbs,
		Fat:         i.Fat,
		Fiber:       i.Fiber,
		Sodium:      i.Sodium,
		Cholesterol: i.Cholesterol,
		Sugar:       i.Sugar,
	}
}

func NewIngredient(name string, n domain.NutrientVector) Ingredient {
	return Ingredient{
		Name:        name,
		Calories:    n.Calories,
		Protein:     n.Protein,
		Carbs:       n.Carbs,
		Fat:         n.Fat,
		Fiber:       n.Fiber,
		Sodium:      n.Sodium,
		Cholesterol: n.Cholesterol,
		Sugar:       n.Sugar,
	}
}
