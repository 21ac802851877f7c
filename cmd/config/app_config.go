package config

import (
	"context"
	"os"
	"time"

	"github.com/davidvct/healthy-meal-planner/domain"
	"github.com/davidvct/healthy-meal-planner/internal/api/handlers"
	"github.com/davidvct/healthy-meal-planner/internal/api/routes"
	"github.com/davidvct/healthy-meal-planner/internal/middleware"
	"github.com/davidvct/healthy-meal-planner/internal/utils"
	"github.com/davidvct/healthy-meal-planner/internal/utils/mailing"
	"github.com/davidvct/healthy-meal-planner/internal/utils/storage"
	"github.com/davidvct/healthy-meal-planner/pkg/diner"
	"github.com/davidvct/healthy-meal-planner/pkg/dish"
	"github.com/davidvct/healthy-meal-planner/pkg/jwt"
	"github.com/davidvct/healthy-meal-planner/pkg/mealplan"
	"github.com/davidvct/healthy-meal-planner/pkg/nutrient"
	"github.com/davidvct/healthy-meal-planner/pkg/recommendation"
	"github.com/davidvct/healthy-meal-planner/pkg/schedule"
	"github.com/davidvct/healthy-meal-planner/pkg/shopping"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"
)

func NewApp(db *gorm.DB) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	timezone := utils.GetConfig("APP_TIMEZONE")
	location, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, err
	}

	// setting up logging and limiter
	err = os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   timezone,
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// utils
	s3 := storage.NewAwsS3()
	mailer := mailing.NewMailer(mailing.LoadMailConfig())
	clock := schedule.SystemClock{Location: location}
	policy := schedule.NewPolicy(clock)

	// Repository
	dishRepository := dish.NewDishRepository(db)
	dinerRepository := diner.NewDinerRepository(db)
	mealPlanRepository := mealplan.NewMealPlanRepository(db)
	shoppingRepository := shopping.NewShoppingRepository(db)

	// Reference data
	catalog, err := dish.LoadCatalog(context.Background(), dishRepository)
	if err != nil {
		return nil, err
	}
	calc := nutrient.NewCalculator(catalog.Ingredients())
	engine := recommendation.NewEngine(calc, domain.DefaultConditionRules)

	// Service
	jwtService := jwt.NewJWTService()
	dinerService := diner.NewDinerService(dinerRepository)
	mealPlanService := mealplan.NewMealPlanService(mealPlanRepository, catalog, calc, engine, dinerService, policy)
	dishService := dish.NewDishService(catalog, calc, engine, dinerService, mealPlanService, clock)
	shoppingService := shopping.NewShoppingService(shoppingRepository, mealPlanService, policy, mailer, s3)

	// Handler
	dishHandler := handlers.NewDishHandler(dishService, validator)
	dinerHandler := handlers.NewDinerHandler(dinerService, validator)
	mealPlanHandler := handlers.NewMealPlanHandler(mealPlanService, validator)
	shoppingListHandler := handlers.NewShoppingListHandler(shoppingService, validator)

	// routes
	routesConfig := routes.Config{
		App:                 app,
		DishHandler:         dishHandler,
		DinerHandler:        dinerHandler,
		MealPlanHandler:     mealPlanHandler,
		ShoppingListHandler: shoppingListHandler,
		Middleware:          middlewares,
		JWTService:          jwtService,
		DinerService:        dinerService,
	}
	routesConfig.Setup()
	return app, nil
}
