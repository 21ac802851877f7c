package shopping

import (
	"math"
	"sort"

	"github.com/davidvct/healthy-meal-planner/domain"
	"github.com/davidvct/healthy-meal-planner/pkg/nutrient"
)

// Aggregate sums ingredient grams over the entries whose slot is selected.
// A nil selection includes every entry. Custom ingredients replace the dish's
// scaled ingredients entirely. Items are sorted by name and rounded to whole
// grams.
func Aggregate(entries []domain.PlanEntry, selected domain.SlotSet) []domain.ShoppingItem {
	totals := make(map[string]float64)
	for _, entry := range entries {
		if entry.Dish == nil {
			continue
		}
		if selected != nil && !selected.Has(entry.Slot()) {
			continue
		}

		ingredients := entry.CustomIngredients
		if ingredients == nil {
			ingredients = nutrient.ScaleIngredients(entry.Dish.Ingredients, entry.Servings)
		}
		for name, grams := range ingredients {
			totals[name] += grams
		}
	}

	names := make([]string, 0, len(totals))
	for name := range totals {
		names = append(names, name)
	}
	sort.Strings(names)

	items := make([]domain.ShoppingItem, 0, len(names))
	for _, name := range names {
		items = append(items, domain.ShoppingItem{Name: name, Grams: int(math.Round(totals[name]))})
	}
	return items
}

// CountSelected returns how many entries fall in the selected slots.
func CountSelected(entries []domain.PlanEntry, selected domain.SlotSet) int {
	count := 0
	for _, entry := range entries {
		if selected == nil || selected.Has(entry.Slot()) {
			count++
		}
	}
	return count
}
