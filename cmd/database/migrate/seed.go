package migration

import (
	"fmt"
	"sort"

	"github.com/davidvct/healthy-meal-planner/entities"
	"github.com/davidvct/healthy-meal-planner/internal/seed"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Seed upserts the reference catalog. Running it twice leaves the tables
// unchanged.
func Seed(db *gorm.DB) error {
	return db.Transaction(func(tx *gorm.DB) error {
		table := seed.Ingredients()
		names := make([]string, 0, len(table))
		for name := range table {
			names = append(names, name)
		}
		sort.Strings(names)

		ingredients := make([]entities.Ingredient, 0, len(names))
		for _, name := range names {
			ingredients = append(ingredients, entities.NewIngredient(name, table[name]))
		}
		if err := upsert(tx, "name", &ingredients); err != nil {
			return fmt.Errorf("seeding ingredients: %w", err)
		}

		recipes := make([]entities.Recipe, 0)
		for _, r := range seed.Recipes() {
			recipes = append(recipes, entities.NewRecipe(r))
		}
		if err := upsert(tx, "id", &recipes); err != nil {
			return fmt.Errorf("seeding recipes: %w", err)
		}

		dishes := make([]entities.Dish, 0)
		for i, d := range seed.Dishes() {
			dishes = append(dishes, entities.NewDish(d, i))
		}
		if err := upsert(tx, "id", &dishes); err != nil {
			return fmt.Errorf("seeding dishes: %w", err)
		}

		fmt.Printf("Seeded %d ingredients, %d recipes, %d dishes\n", len(ingredients), len(recipes), len(dishes))
		return nil
	})
}

func upsert(tx *gorm.DB, key string, rows any) error {
	return tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: key}},
		UpdateAll: true,
	}).Create(rows).Error
}
