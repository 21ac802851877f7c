package dish

import (
	"context"

	"github.com/davidvct/healthy-meal-planner/domain"
	"github.com/gofiber/fiber/v2/log"
)

// Catalog is a read-only snapshot of the reference data. It is built once at
// start-up and shared by every request. Values going in or out are copied,
// so callers can never mutate the snapshot.
type Catalog struct {
	dishes      []domain.Dish
	byID        map[string]int
	ingredients domain.IngredientTable
	recipes     map[string]domain.Recipe
}

func NewCatalog(dishes []domain.Dish, ingredients domain.IngredientTable, recipes []domain.Recipe) *Catalog {
	c := &Catalog{
		dishes:      make([]domain.Dish, len(dishes)),
		byID:        make(map[string]int, len(dishes)),
		ingredients: make(domain.IngredientTable, len(ingredients)),
		recipes:     make(map[string]domain.Recipe, len(recipes)),
	}
	for i, d := range dishes {
		c.dishes[i] = cloneDish(d)
		c.byID[d.ID] = i
	}
	for name, n := range ingredients {
		c.ingredients[name] = n
	}
	for _, r := range recipes {
		c.recipes[r.ID] = cloneRecipe(r)
	}
	return c
}

func LoadCatalog(ctx context.Context, repo DishRepository) (*Catalog, error) {
	dishRows, err := repo.GetDishes(ctx)
	if err != nil {
		return nil, err
	}
	ingredientRows, err := repo.GetIngredients(ctx)
	if err != nil {
		return nil, err
	}
	recipeRows, err := repo.GetRecipes(ctx)
	if err != nil {
		return nil, err
	}

	dishes := make([]domain.Dish, 0, len(dishRows))
	for _, row := range dishRows {
		dishes = append(dishes, row.ToDomain())
	}
	table := make(domain.IngredientTable, len(ingredientRows))
	for _, row := range ingredientRows {
		table[row.Name] = row.Nutrients()
	}
	recipes := make([]domain.Recipe, 0, len(recipeRows))
	for _, row := range recipeRows {
		recipes = append(recipes, row.ToDomain())
	}

	log.Infof("catalog loaded: %d dishes, %d ingredients, %d recipes", len(dishes), len(table), len(recipes))
	return NewCatalog(dishes, table, recipes), nil
}

// Dishes returns deep copies of the dishes in catalog order.
func (c *Catalog) Dishes() []domain.Dish {
	out := make([]domain.Dish, len(c.dishes))
	for i, d := range c.dishes {
		out[i] = cloneDish(d)
	}
	return out
}

func (c *Catalog) Dish(id string) (domain.Dish, bool) {
	i, ok := c.byID[id]
	if !ok {
		return domain.Dish{}, false
	}
	return cloneDish(c.dishes[i]), true
}

func (c *Catalog) Ingredients() domain.IngredientTable {
	out := make(domain.IngredientTable, len(c.ingredients))
	for name, n := range c.ingredients {
		out[name] = n
	}
	return out
}

func (c *Catalog) Recipe(id string) (domain.Recipe, bool) {
	r, ok := c.recipes[id]
	if !ok {
		return domain.Recipe{}, false
	}
	return cloneRecipe(r), true
}

func cloneDish(d domain.Dish) domain.Dish {
	d.MealTypes = cloneStrings(d.MealTypes)
	d.Tags = cloneStrings(d.Tags)
	if d.Ingredients != nil {
		ingredients := make(map[string]float64, len(d.Ingredients))
		for name, grams := range d.Ingredients {
			ingredients[name] = grams
		}
		d.Ingredients = ingredients
	}
	return d
}

func cloneRecipe(r domain.Recipe) domain.Recipe {
	r.Steps = cloneStrings(r.Steps)
	return r
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}
