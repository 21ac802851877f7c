package handlers

import (
	"strconv"

	"github.com/davidvct/healthy-meal-planner/domain"
	"github.com/davidvct/healthy-meal-planner/internal/api/presenters"
	"github.com/davidvct/healthy-meal-planner/pkg/dish"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	DishHandler interface {
		GetDishes(c *fiber.Ctx) error
		GetDishDetail(c *fiber.Ctx) error
		Recommend(c *fiber.Ctx) error
	}

	dishHandler struct {
		dishService dish.DishService
		validator   *validator.Validate
	}
)

func NewDishHandler(dishService dish.DishService, validator *validator.Validate) DishHandler {
	return &dishHandler{
		dishService: dishService,
		validator:   validator,
	}
}

func (h *dishHandler) GetDishes(c *fiber.Ctx) error {
	res, err := h.dishService.ListDishes(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetDishes, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetDishes)
}

func (h *dishHandler) GetDishDetail(c *fiber.Ctx) error {
	res, err := h.dishService.GetDishDetail(c.Context(), c.Params("id"))
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFor(err, fiber.StatusInternalServerError), domain.MessageFailedGetDishDetail, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetDishDetail)
}

// Recommend ranks dishes for one meal slot. Each filter toggle stays on
// unless its query parameter is literally "false".
func (h *dishHandler) Recommend(c *fiber.Ctx) error {
	dinerID := c.Locals("diner_id").(string)

	day, err := strconv.Atoi(c.Query("day"))
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedRecommendDishes, domain.ErrInvalidDayIndex)
	}

	req := domain.RecommendRequest{
		WeekStart:        c.Query("weekStart"),
		DayIndex:         day,
		MealType:         c.Query("mealType"),
		Search:           c.Query("search"),
		FilterMealType:   c.Query("filterMealType") != "false",
		FilterDiet:       c.Query("filterDiet") != "false",
		FilterAllergies:  c.Query("filterAllergies") != "false",
		FilterConditions: c.Query("filterConditions") != "false",
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedRecommendDishes, err)
	}

	res, err := h.dishService.Recommend(c.Context(), dinerID, req)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFor(err, fiber.StatusInternalServerError), domain.MessageFailedRecommendDishes, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessRecommendDishes)
}
