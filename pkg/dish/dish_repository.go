package dish

import (
	"context"

	"github.com/davidvct/healthy-meal-planner/entities"
	"gorm.io/gorm"
)

type (
	DishRepository interface {
		GetDishes(ctx context.Context) ([]entities.Dish, error)
		GetDishByID(ctx context.Context, id string) (*entities.Dish, error)
		GetIngredients(ctx context.Context) ([]entities.Ingredient, error)
		GetRecipes(ctx context.Context) ([]entities.Recipe, error)
	}

	dishRepository struct {
		db *gorm.DB
	}
)

func NewDishRepository(db *gorm.DB) DishRepository {
	return &dishRepository{db: db}
}

func (r *dishRepository) GetDishes(ctx context.Context) ([]entities.Dish, error) {
	var dishes []entities.Dish
	if err := r.db.WithContext(ctx).Order("position asc").Order("id asc").Find(&dishes).Error; err != nil {
		return nil, err
	}
	return dishes, nil
}

func (r *dishRepository) GetDishByID(ctx context.Context, id string) (*entities.Dish, error) {
	var dish entities.Dish
	if err := r.db.WithContext(ctx).Preload("Recipe").Where("id = ?", id).First(&dish).Error; err != nil {
		return nil, err
	}
	return &dish, nil
}

func (r *dishRepository) GetIngredients(ctx context.Context) ([]entities.Ingredient, error) {
	var ingredients []entities.Ingredient
	if err := r.db.WithContext(ctx).Find(&ingredients).Error; err != nil {
		return nil, err
	}
	return ingredients, nil
}

func (r *dishRepository) GetRecipes(ctx context.Context) ([]entities.Recipe, error) {
	var recipes []entities.Recipe
	if err := r.db.WithContext(ctx).Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}
