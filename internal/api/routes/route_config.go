package routes

import (
	"github.com/davidvct/healthy-meal-planner/internal/api/handlers"
	"github.com/davidvct/healthy-meal-planner/internal/middleware"
	"github.com/davidvct/healthy-meal-planner/pkg/diner"
	"github.com/davidvct/healthy-meal-planner/pkg/jwt"
	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App                 *fiber.App
	DishHandler         handlers.DishHandler
	DinerHandler        handlers.DinerHandler
	MealPlanHandler     handlers.MealPlanHandler
	ShoppingListHandler handlers.ShoppingListHandler
	Middleware          middleware.Middleware
	JWTService          jwt.JWTService
	DinerService        diner.DinerService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.GuestRoute()
	c.Dishes()
	c.Diners()
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
}

func (c *Config) Dishes() {
	dishes := c.App.Group("/api/v1/dishes", c.Middleware.AuthMiddleware(c.JWTService))
	dishes.Get("", c.DishHandler.GetDishes)
	dishes.Get("/:id", c.DishHandler.GetDishDetail)
}

func (c *Config) Diners() {
	diners := c.App.Group("/api/v1/diners", c.Middleware.AuthMiddleware(c.JWTService))
	diners.Put("", c.DinerHandler.UpsertDiner)

	diner := diners.Group("/:dinerId", c.Middleware.DinerAccess(c.DinerService))
	diner.Get("", c.DinerHandler.GetDiner)
	diner.Get("/recommendations", c.DishHandler.Recommend)

	// Meal plan
	plan := diner.Group("/meal-plan")
	plan.Get("", c.MealPlanHandler.GetWeekPlan)
	plan.Post("", c.MealPlanHandler.AddEntry)
	plan.Delete("/:entryId", c.MealPlanHandler.RemoveEntry)
	plan.Get("/nutrients/day", c.MealPlanHandler.GetDayNutrients)
	plan.Get("/nutrients/week", c.MealPlanHandler.GetWeekNutrients)

	// Shopping list
	list := diner.Group("/shopping-list")
	list.Get("", c.ShoppingListHandler.GetShoppingList)
	list.Post("/selections", c.ShoppingListHandler.ToggleSelection)
	list.Post("/email", c.ShoppingListHandler.EmailShoppingList)
	list.Post("/export", c.ShoppingListHandler.ExportShoppingList)
}
