package shopping

import (
	"testing"

	"github.com/davidvct/healthy-meal-planner/domain"
	"github.com/davidvct/healthy-meal-planner/internal/seed"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seededDish(t *testing.T, id string) *domain.Dish {
	t.Helper()
	for _, d := range seed.Dishes() {
		if d.ID == id {
			d := d
			return &d
		}
	}
	require.FailNow(t, "dish not seeded", id)
	return nil
}

func grams(items []domain.ShoppingItem) map[string]int {
	out := make(map[string]int, len(items))
	for _, item := range items {
		out[item.Name] = item.Grams
	}
	return out
}

func TestAggregate_SumsAcrossServings(t *testing.T) {
	kangkong := seededDish(t, "d4")
	entries := []domain.PlanEntry{
		{ID: 1, DayIndex: 0, MealType: domain.MealLunch, DishID: "d4", Dish: kangkong, Servings: 1},
		{ID: 2, DayIndex: 2, MealType: domain.MealDinner, DishID: "d4", Dish: kangkong, Servings: 2},
	}

	items := Aggregate(entries, nil)

	assert.Equal(t, []domain.ShoppingItem{
		{Name: "chili", Grams: 15},
		{Name: "cooking oil", Grams: 30},
		{Name: "garlic", Grams: 45},
		{Name: "kangkong", Grams: 600},
		{Name: "soy sauce", Grams: 15},
	}, items)
}

func TestAggregate_SelectedSlotsOnly(t *testing.T) {
	rice := seededDish(t, "d1")
	kangkong := seededDish(t, "d4")
	entries := []domain.PlanEntry{
		{ID: 1, DayIndex: 0, MealType: domain.MealLunch, DishID: "d1", Dish: rice, Servings: 1},
		{ID: 2, DayIndex: 0, MealType: domain.MealDinner, DishID: "d4", Dish: kangkong, Servings: 1},
	}

	items := Aggregate(entries, domain.NewSlotSet(domain.SlotKey{DayIndex: 0, MealType: domain.MealDinner}))

	got := grams(items)
	assert.Equal(t, 15, got["garlic"])
	assert.NotContains(t, got, "rice")
	assert.Empty(t, Aggregate(entries, domain.NewSlotSet()))
}

func TestAggregate_CustomIngredientsReplaceScaledOnes(t *testing.T) {
	kangkong := seededDish(t, "d4")
	entries := []domain.PlanEntry{
		{ID: 1, DishID: "d4", Dish: kangkong, Servings: 3, CustomIngredients: map[string]float64{"kangkong": 150.4, "garlic": 0}},
	}

	items := Aggregate(entries, nil)

	assert.Equal(t, []domain.ShoppingItem{{Name: "garlic", Grams: 0}, {Name: "kangkong", Grams: 150}}, items)
}

func TestAggregate_RoundsOnceAfterSumming(t *testing.T) {
	d := &domain.Dish{ID: "x", Ingredients: map[string]float64{"garlic": 0.3}}
	entries := []domain.PlanEntry{
		{ID: 1, DishID: "x", Dish: d, Servings: 1},
		{ID: 2, DishID: "x", Dish: d, Servings: 1},
	}

	assert.Equal(t, []domain.ShoppingItem{{Name: "garlic", Grams: 1}}, Aggregate(entries, nil))
}

func TestAggregate_SkipsMissingDish(t *testing.T) {
	entries := []domain.PlanEntry{
		{ID: 1, DishID: "gone", Servings: 1, CustomIngredients: map[string]float64{"rice": 100}},
	}

	items := Aggregate(entries, nil)

	assert.NotNil(t, items)
	assert.Empty(t, items)
}

func TestAggregate_SelectionMonotonic(t *testing.T) {
	rice := seededDish(t, "d1")
	congee := seededDish(t, "d3")
	entries := []domain.PlanEntry{
		{ID: 1, DayIndex: 1, MealType: domain.MealBreakfast, DishID: "d3", Dish: congee, Servings: 1},
		{ID: 2, DayIndex: 1, MealType: domain.MealLunch, DishID: "d1", Dish: rice, Servings: 1},
	}
	small := domain.NewSlotSet(domain.SlotKey{DayIndex: 1, MealType: domain.MealBreakfast})
	large := domain.NewSlotSet(domain.SlotKey{DayIndex: 1, MealType: domain.MealBreakfast}, domain.SlotKey{DayIndex: 1, MealType: domain.MealLunch})

	before := grams(Aggregate(entries, small))
	after := grams(Aggregate(entries, large))

	for name, g := range before {
		assert.GreaterOrEqual(t, after[name], g, name)
	}
	assert.Equal(t, 350, after["rice"])
}

func TestCountSelected(t *testing.T) {
	entries := []domain.PlanEntry{
		{DayIndex: 0, MealType: domain.MealLunch},
		{DayIndex: 0, MealType: domain.MealLunch},
		{DayIndex: 1, MealType: domain.MealDinner},
	}

	assert.Equal(t, 3, CountSelected(entries, nil))
	assert.Equal(t, 2, CountSelected(entries, domain.NewSlotSet(domain.SlotKey{DayIndex: 0, MealType: domain.MealLunch})))
}
