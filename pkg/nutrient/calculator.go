package nutrient

import (
	"sort"

	"github.com/davidvct/healthy-meal-planner/domain"
	"github.com/gofiber/fiber/v2/log"
)

// Calculator turns gram-weighted ingredient lists into nutrient vectors.
// It only reads the ingredient table it was built with.
type Calculator struct {
	table domain.IngredientTable
}

func NewCalculator(table domain.IngredientTable) *Calculator {
	if table == nil {
		table = domain.IngredientTable{}
	}
	return &Calculator{table: table}
}

// FromIngredients sums per-100g vectors scaled by grams/100 and rounds the
// total once at the end. Unknown ingredients contribute nothing.
func (c *Calculator) FromIngredients(ingredients map[string]float64) domain.NutrientVector {
	var total domain.NutrientVector
	for _, name := range sortedKeys(ingredients) {
		per100g, ok := c.table.Lookup(name)
		if !ok {
			log.Warnw("unknown ingredient, nutrients will be zero", "ingredient", name)
			continue
		}
		total = total.Add(per100g.Scale(ingredients[name] / 100))
	}
	return total.Round()
}

// Dish computes nutrients for a dish at the given servings. A non-nil custom
// map already holds final gram amounts, so servings is not applied to it.
func (c *Calculator) Dish(dish domain.Dish, servings float64, custom map[string]float64) domain.NutrientVector {
	if custom != nil {
		return c.FromIngredients(custom)
	}
	return c.FromIngredients(ScaleIngredients(dish.Ingredients, servings))
}

// Base is the dish at one serving, the quantity used for filtering and scoring.
func (c *Calculator) Base(dish domain.Dish) domain.NutrientVector {
	return c.Dish(dish, 1, nil)
}

// Entry computes the nutrients of one planned entry. ok is false when the
// entry's dish could not be resolved.
func (c *Calculator) Entry(entry domain.PlanEntry) (n domain.NutrientVector, ok bool) {
	if entry.Dish == nil {
		return domain.NutrientVector{}, false
	}
	return c.Dish(*entry.Dish, entry.Servings, entry.CustomIngredients), true
}

// Day sums the nutrients of all entries planned for one day.
func (c *Calculator) Day(entries []domain.PlanEntry) domain.NutrientVector {
	var total domain.NutrientVector
	for _, entry := range entries {
		n, ok := c.Entry(entry)
		if !ok {
			log.Warnw("skipping meal plan entry without dish", "entry_id", entry.ID, "dish_id", entry.DishID)
			continue
		}
		total = total.Add(n)
	}
	return total.Round()
}

// Week is the same reduction as Day over a week's flattened entries.
func (c *Calculator) Week(entries []domain.PlanEntry) domain.NutrientVector {
	return c.Day(entries)
}

// UnknownIngredients lists the names that have no row in the table.
func (c *Calculator) UnknownIngredients(ingredients map[string]float64) []string {
	var unknown []string
	for _, name := range sortedKeys(ingredients) {
		if _, ok := c.table.Lookup(name); !ok {
			unknown = append(unknown, name)
		}
	}
	return unknown
}

// ScaleIngredients multiplies every base amount by servings.
func ScaleIngredients(ingredients map[string]float64, servings float64) map[string]float64 {
	scaled := make(map[string]float64, len(ingredients))
	for name, grams := range ingredients {
		scaled[name] = grams * servings
	}
	return scaled
}

func sortedKeys(m map[string]float64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
