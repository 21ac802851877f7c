package entities

import (
	"github.com/davidvct/healthy-meal-planner/domain"
	"gorm.io/datatypes"
)

type Dish struct {
	ID           string                                 `gorm:"primaryKey;type:varchar(32)" json:"id"`
	Position     int                                    `gorm:"index" json:"position"`
	Name         string                                 `gorm:"not null" json:"name"`
	MealTypes    datatypes.JSONType[[]string]           `gorm:"type:jsonb" json:"meal_types"`
	Tags         datatypes.JSONType[[]string]           `gorm:"type:jsonb" json:"tags"`
	Ingredients  datatypes.JSONType[map[string]float64] `gorm:"type:jsonb" json:"ingredients"`
	RecipeID     *string                                `gorm:"type:varchar(32)" json:"recipe_id,omitempty"`
	BaseServings int                                    `gorm:"default:1" json:"base_servings"`

	Recipe *Recipe `gorm:"foreignKey:RecipeID"`
	Timestamp
}

func (d Dish) ToDomain() domain.Dish {
	dish := domain.Dish{
		ID:           d.ID,
		Name:         d.Name,
		MealTypes:    d.MealTypes.Data(),
		Tags:         d.Tags.Data(),
		Ingredients:  d.Ingredients.Data(),
		BaseServings: d.BaseServings,
	}
	if d.RecipeID != nil {
		dish.RecipeID = *d.RecipeID
	}
	return dish
}

func NewDish(d domain.Dish, position int) Dish {
	dish := Dish{
		ID:           d.ID,
		Position:     position,
		Name:         d.Name,
		MealTypes:    datatypes.NewJSONType(d.MealTypes),
		Tags:         datatypes.NewJSONType(d.Tags),
		Ingredients:  datatypes.NewJSONType(d.Ingredients),
		BaseServings: d.BaseServings,
	}
	if d.RecipeID != "" {
		recipeID := d.RecipeID
		dish.RecipeID = &recipeID
	}
	return dish
}
