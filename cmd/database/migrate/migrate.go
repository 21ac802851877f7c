package migration

import (
	"fmt"
	"log"

	"github.com/davidvct/healthy-meal-planner/entities"
	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")

	if err := db.AutoMigrate(&entities.Ingredient{}); err != nil {
		log.Fatalf("Error migrating ingredient database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Recipe{}); err != nil {
		log.Fatalf("Error migrating recipe database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Dish{}); err != nil {
		log.Fatalf("Error migrating dish database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Diner{}); err != nil {
		log.Fatalf("Error migrating diner database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.MealPlanEntry{}); err != nil {
		log.Fatalf("Error migrating meal plan database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.ShoppingSelection{}); err != nil {
		log.Fatalf("Error migrating shopping selection database: %v", err)
		return err
	}

	fmt.Println("Database migration complete")
	return nil
}
