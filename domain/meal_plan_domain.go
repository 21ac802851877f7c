package domain

import (
	"errors"
)

var (
	MessageSuccessGetMealPlan       = "success get meal plan"
	MessageSuccessAddMealPlanEntry  = "dish added to meal slot"
	MessageSuccessRemoveEntry       = "dish removed from meal slot"
	MessageSuccessGetDayNutrients   = "success get day nutrients"
	MessageSuccessGetWeekNutrients  = "success get week nutrients"
	MessageFailedGetMealPlan        = "failed to get meal plan"
	MessageFailedAddMealPlanEntry   = "failed to add dish to meal slot"
	MessageFailedRemoveEntry        = "failed to remove dish from meal slot"
	MessageFailedGetDayNutrients    = "failed to get day nutrients"
	MessageFailedGetWeekNutrients   = "failed to get week nutrients"
	MessageFailedInvalidMealPlanDay = "invalid day index"

	ErrEntryNotFound = errors.New("meal plan entry not found")
)

type (
	// PlanEntry is one dish placed in a meal slot. When CustomIngredients is
	// non-nil it holds final gram amounts and Servings is display only.
	PlanEntry struct {
		ID                uint               `json:"id"`
		DinerID           string             `json:"dinerId"`
		DayIndex          int                `json:"dayIndex"`
		MealType          string             `json:"mealType"`
		DishID            string             `json:"dishId"`
		Dish              *Dish              `json:"-"`
		Servings          float64            `json:"servings"`
		CustomIngredients map[string]float64 `json:"customIngredients"`
		EntryOrder        int                `json:"entryOrder"`
	}

	AddMealPlanRequest struct {
		WeekStart         string             `json:"weekStart" validate:"omitempty,datetime=2006-01-02"`
		DayIndex          int                `json:"dayIndex" validate:"min=0,max=6"`
		MealType          string             `json:"mealType" validate:"required,oneof=breakfast lunch dinner snack"`
		DishID            string             `json:"dishId" validate:"required"`
		Servings          float64            `json:"servings" validate:"omitempty,gt=0"`
		CustomIngredients map[string]float64 `json:"customIngredients" validate:"omitempty,dive,keys,required,endkeys,gte=0"`
	}

	PlanEntryResponse struct {
		ID                uint               `json:"id"`
		DishID            string             `json:"dishId"`
		DishName          string             `json:"dishName"`
		Servings          float64            `json:"servings"`
		CustomIngredients map[string]float64 `json:"customIngredients"`
		DishIngredients   map[string]float64 `json:"dishIngredients"`
		Tags              []string           `json:"tags"`
		MealTypes         []string           `json:"mealTypes"`
		RecipeID          string             `json:"recipeId,omitempty"`
		Nutrients         NutrientVector     `json:"nutrients"`
		Warnings          []string           `json:"warnings"`
	}

	MealSlotResponse struct {
		MealType string              `json:"mealType"`
		Locked   bool                `json:"locked"`
		Entries  []PlanEntryResponse `json:"entries"`
	}

	DayPlanResponse struct {
		DayIndex int                `json:"dayIndex"`
		Date     string             `json:"date"`
		Meals    []MealSlotResponse `json:"meals"`
	}

	WeekPlanResponse struct {
		WeekStart string            `json:"weekStart"`
		Days      []DayPlanResponse `json:"days"`
	}

	DayNutrientsResponse struct {
		DayIndex  int            `json:"dayIndex"`
		Nutrients NutrientVector `json:"nutrients"`
		RDA       NutrientVector `json:"rda"`
	}

	DailyBreakdown struct {
		DayIndex  int            `json:"dayIndex"`
		Nutrients NutrientVector `json:"nutrients"`
		HasMeals  bool           `json:"hasMeals"`
		Warnings  []string       `json:"warnings"`
	}

	WeekNutrientsResponse struct {
		WeekStart     string           `json:"weekStart"`
		WeekNutrients NutrientVector   `json:"weekNutrients"`
		WeekRDA       NutrientVector   `json:"weekRDA"`
		Daily         []DailyBreakdown `json:"daily"`
	}
)

func (e PlanEntry) Slot() SlotKey {
	return SlotKey{DayIndex: e.DayIndex, MealType: e.MealType}
}
