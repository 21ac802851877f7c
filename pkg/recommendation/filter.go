package recommendation

import (
	"github.com/davidvct/healthy-meal-planner/domain"
)

var (
	meatAndSeafood = []string{"chicken breast", "fish", "shrimp", "anchovies"}
	animalProducts = []string{"chicken breast", "fish", "shrimp", "anchovies", "egg", "butter"}
	meat           = []string{"chicken breast"}
)

// FilterOptions toggles each hard filter independently.
type FilterOptions struct {
	MealType   bool
	Diet       bool
	Allergies  bool
	Conditions bool
}

func DefaultFilterOptions() FilterOptions {
	return FilterOptions{MealType: true, Diet: true, Allergies: true, Conditions: true}
}

// Filter returns the dishes admissible for the profile and meal type, in
// catalog order.
func (e *Engine) Filter(dishes []domain.Dish, profile domain.DinerProfile, mealType string, opts FilterOptions) []domain.Dish {
	result := make([]domain.Dish, 0, len(dishes))
	for _, dish := range dishes {
		if opts.Allergies && hasAllergen(dish, profile.Allergies) {
			continue
		}
		if opts.Diet && !fitsDiet(dish, profile.Diet) {
			continue
		}
		if opts.MealType && !dish.HasMealType(mealType) {
			continue
		}
		// Evaluated at one serving regardless of what the diner will plan.
		if opts.Conditions && len(profile.Conditions) > 0 {
			if len(e.Warnings(e.calc.Base(dish), profile.Conditions)) > 0 {
				continue
			}
		}
		result = append(result, dish)
	}
	return result
}

func hasAllergen(dish domain.Dish, allergies []string) bool {
	for _, allergy := range allergies {
		if dish.HasIngredient(allergy) {
			return true
		}
	}
	return false
}

// fitsDiet has no ingredient check for halal or unrecognised diets.
func fitsDiet(dish domain.Dish, diet string) bool {
	switch diet {
	case domain.DietVegetarian:
		return dish.HasTag(domain.DietVegetarian) || !dish.UsesAny(meatAndSeafood...)
	case domain.DietVegan:
		return !dish.UsesAny(animalProducts...)
	case domain.DietPescatarian:
		return !dish.UsesAny(meat...)
	default:
		return true
	}
}
