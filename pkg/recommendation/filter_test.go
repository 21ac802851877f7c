package recommendation

import (
	"testing"

	"github.com/davidvct/healthy-meal-planner/domain"
	"github.com/davidvct/healthy-meal-planner/internal/seed"
	"github.com/stretchr/testify/assert"
)

func TestEngine_Filter(t *testing.T) {
	engine := newTestEngine()

	tests := []struct {
		name     string
		profile  domain.DinerProfile
		mealType string
		opts     FilterOptions
		expected []string
	}{
		{
			name:     "meal type only",
			profile:  domain.DinerProfile{Diet: domain.DietNone},
			mealType: domain.MealLunch,
			opts:     DefaultFilterOptions(),
			expected: []string{"d1", "d2", "d4", "d5", "d6", "d7", "d8"},
		},
		{
			name:     "vegan",
			profile:  domain.DinerProfile{Diet: domain.DietVegan},
			mealType: domain.MealLunch,
			opts:     DefaultFilterOptions(),
			expected: []string{"d4", "d7"},
		},
		{
			name:     "vegetarian allows egg",
			profile:  domain.DinerProfile{Diet: domain.DietVegetarian},
			mealType: domain.MealLunch,
			opts:     DefaultFilterOptions(),
			expected: []string{"d4", "d6", "d7"},
		},
		{
			name:     "pescatarian drops chicken only",
			profile:  domain.DinerProfile{Diet: domain.DietPescatarian},
			mealType: domain.MealLunch,
			opts:     DefaultFilterOptions(),
			expected: []string{"d2", "d4", "d5", "d6", "d7", "d8"},
		},
		{
			name:     "halal has no ingredient check",
			profile:  domain.DinerProfile{Diet: domain.DietHalal},
			mealType: domain.MealLunch,
			opts:     DefaultFilterOptions(),
			expected: []string{"d1", "d2", "d4", "d5", "d6", "d7", "d8"},
		},
		{
			name:     "peanut allergy",
			profile:  domain.DinerProfile{Allergies: []string{"peanut"}},
			mealType: domain.MealLunch,
			opts:     DefaultFilterOptions(),
			expected: []string{"d1", "d4", "d5", "d6", "d7", "d8"},
		},
		{
			name:     "hypertension drops salty dishes",
			profile:  domain.DinerProfile{Conditions: []string{domain.ConditionHypertension}},
			mealType: domain.MealLunch,
			opts:     DefaultFilterOptions(),
			expected: []string{"d4", "d7"},
		},
		{
			name:     "high blood sugar at snack",
			profile:  domain.DinerProfile{Conditions: []string{domain.ConditionHighBloodSugar}},
			mealType: domain.MealSnack,
			opts:     DefaultFilterOptions(),
			expected: []string{"d9"},
		},
		{
			name:     "all filters off",
			profile:  domain.DinerProfile{Diet: domain.DietVegan, Allergies: []string{"egg"}, Conditions: []string{domain.ConditionHypertension}},
			mealType: domain.MealSnack,
			opts:     FilterOptions{},
			expected: []string{"d1", "d2", "d3", "d4", "d5", "d6", "d7", "d8", "d9", "d10"},
		},
		{
			name:     "meal type off keeps diet",
			profile:  domain.DinerProfile{Diet: domain.DietVegan},
			mealType: domain.MealBreakfast,
			opts:     FilterOptions{Diet: true},
			expected: []string{"d4", "d7", "d10"},
		},
		{
			name:     "nothing left",
			profile:  domain.DinerProfile{Diet: domain.DietVegan},
			mealType: domain.MealBreakfast,
			opts:     DefaultFilterOptions(),
			expected: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := engine.Filter(seed.Dishes(), tt.profile, tt.mealType, tt.opts)
			assert.Equal(t, tt.expected, dishIDs(got))
		})
	}
}

func TestEngine_Filter_Idempotent(t *testing.T) {
	engine := newTestEngine()
	profile := domain.DinerProfile{
		Diet:       domain.DietVegetarian,
		Allergies:  []string{"peanut"},
		Conditions: []string{domain.ConditionHighCholesterol},
	}

	once := engine.Filter(seed.Dishes(), profile, domain.MealDinner, DefaultFilterOptions())
	twice := engine.Filter(once, profile, domain.MealDinner, DefaultFilterOptions())

	assert.Equal(t, once, twice)
}

func TestEngine_Filter_AllergyMatchesZeroGrams(t *testing.T) {
	engine := newTestEngine()
	dish := domain.Dish{
		ID:          "x1",
		Name:        "Plain Rice",
		MealTypes:   []string{domain.MealLunch},
		Ingredients: map[string]float64{"rice": 200, "peanut": 0},
	}
	profile := domain.DinerProfile{Allergies: []string{"peanut"}}

	assert.Empty(t, engine.Filter([]domain.Dish{dish}, profile, domain.MealLunch, DefaultFilterOptions()))
}

func TestEngine_Filter_DietIgnoresZeroGrams(t *testing.T) {
	engine := newTestEngine()
	dish := domain.Dish{
		ID:          "x2",
		Name:        "Vegetable Rice",
		MealTypes:   []string{domain.MealLunch},
		Ingredients: map[string]float64{"rice": 200, "egg": 0, "chicken breast": 0},
	}

	for _, diet := range []string{domain.DietVegan, domain.DietVegetarian, domain.DietPescatarian} {
		got := engine.Filter([]domain.Dish{dish}, domain.DinerProfile{Diet: diet}, domain.MealLunch, DefaultFilterOptions())
		assert.Len(t, got, 1, diet)
	}
}

func TestEngine_Filter_VegetarianTagOverridesIngredients(t *testing.T) {
	engine := newTestEngine()
	dish := domain.Dish{
		ID:          "x3",
		Name:        "Mock Chicken",
		MealTypes:   []string{domain.MealDinner},
		Tags:        []string{"vegetarian"},
		Ingredients: map[string]float64{"chicken breast": 100},
	}

	vegetarian := engine.Filter([]domain.Dish{dish}, domain.DinerProfile{Diet: domain.DietVegetarian}, domain.MealDinner, DefaultFilterOptions())
	vegan := engine.Filter([]domain.Dish{dish}, domain.DinerProfile{Diet: domain.DietVegan}, domain.MealDinner, DefaultFilterOptions())

	assert.Len(t, vegetarian, 1)
	assert.Empty(t, vegan)
}
