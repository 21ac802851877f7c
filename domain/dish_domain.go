package domain

import (
	"errors"
)

var (
	MessageSuccessGetDishes       = "success get dishes"
	MessageSuccessGetDishDetail   = "success get dish detail"
	MessageSuccessRecommendDishes = "success get dish recommendations"

	MessageFailedGetDishes       = "failed to get dishes"
	MessageFailedGetDishDetail   = "failed to get dish detail"
	MessageFailedRecommendDishes = "failed to get dish recommendations"

	ErrDishNotFound   = errors.New("dish not found")
	ErrRecipeNotFound = errors.New("recipe not found")
)

type (
	// Dish is the decoded catalog entry. Ingredients map an ingredient name
	// to grams per base serving.
	Dish struct {
		ID           string             `json:"id"`
		Name         string             `json:"name"`
		MealTypes    []string           `json:"mealTypes"`
		Tags         []string           `json:"tags"`
		Ingredients  map[string]float64 `json:"ingredients"`
		RecipeID     string             `json:"recipeId,omitempty"`
		BaseServings int                `json:"baseServings"`
	}

	Recipe struct {
		ID              string   `json:"id"`
		Name            string   `json:"name"`
		PrepTimeMinutes int      `json:"prepTime"`
		CookTimeMinutes int      `json:"cookTime"`
		Steps           []string `json:"steps"`
	}

	DishScore struct {
		Total      int `json:"total"`
		Health     int `json:"healthScore"`
		Nutrient   int `json:"nutrientScore"`
		Preference int `json:"prefScore"`
	}

	ScoredDish struct {
		Dish      Dish           `json:"dish"`
		Score     DishScore      `json:"score"`
		Warnings  []string       `json:"warnings"`
		Nutrients NutrientVector `json:"nutrients"`
	}

	DishDetail struct {
		Dish
		Nutrients          NutrientVector `json:"nutrients"`
		Recipe             *Recipe        `json:"recipe"`
		UnknownIngredients []string       `json:"unknownIngredients,omitempty"`
	}

	RecommendRequest struct {
		WeekStart        string `query:"weekStart" validate:"omitempty,datetime=2006-01-02"`
		DayIndex         int    `query:"day" validate:"min=0,max=6"`
		MealType         string `query:"mealType" validate:"required,oneof=breakfast lunch dinner snack"`
		Search           string `query:"search"`
		FilterMealType   bool   `query:"-"`
		FilterDiet       bool   `query:"-"`
		FilterAllergies  bool   `query:"-"`
		FilterConditions bool   `query:"-"`
	}

	RecommendResponse struct {
		Scored       []ScoredDish   `json:"scored"`
		DayNutrients NutrientVector `json:"dayNutrients"`
	}
)

func (d Dish) HasMealType(mealType string) bool {
	for _, mt := range d.MealTypes {
		if mt == mealType {
			return true
		}
	}
	return false
}

func (d Dish) HasTag(tag string) bool {
	for _, t := range d.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// HasIngredient reports whether name is listed, even at zero grams.
func (d Dish) HasIngredient(name string) bool {
	_, ok := d.Ingredients[name]
	return ok
}

// UsesAny reports whether any of names is used in a non-zero amount.
func (d Dish) UsesAny(names ...string) bool {
	for _, name := range names {
		if d.Ingredients[name] != 0 {
			return true
		}
	}
	return false
}
