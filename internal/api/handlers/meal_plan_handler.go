package handlers

import (
	"strconv"

	"github.com/davidvct/healthy-meal-planner/domain"
	"github.com/davidvct/healthy-meal-planner/internal/api/presenters"
	"github.com/davidvct/healthy-meal-planner/pkg/mealplan"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	MealPlanHandler interface {
		GetWeekPlan(c *fiber.Ctx) error
		AddEntry(c *fiber.Ctx) error
		RemoveEntry(c *fiber.Ctx) error
		GetDayNutrients(c *fiber.Ctx) error
		GetWeekNutrients(c *fiber.Ctx) error
	}

	mealPlanHandler struct {
		mealPlanService mealplan.MealPlanService
		validator       *validator.Validate
	}
)

func NewMealPlanHandler(mealPlanService mealplan.MealPlanService, validator *validator.Validate) MealPlanHandler {
	return &mealPlanHandler{
		mealPlanService: mealPlanService,
		validator:       validator,
	}
}

func (h *mealPlanHandler) GetWeekPlan(c *fiber.Ctx) error {
	dinerID := c.Locals("diner_id").(string)

	res, err := h.mealPlanService.GetWeekPlan(c.Context(), dinerID, c.Query("weekStart"))
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFor(err, fiber.StatusInternalServerError), domain.MessageFailedGetMealPlan, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetMealPlan)
}

func (h *mealPlanHandler) AddEntry(c *fiber.Ctx) error {
	dinerID := c.Locals("diner_id").(string)
	req := new(domain.AddMealPlanRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddMealPlanEntry, err)
	}

	res, err := h.mealPlanService.AddEntry(c.Context(), dinerID, *req)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFor(err, fiber.StatusInternalServerError), domain.MessageFailedAddMealPlanEntry, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessAddMealPlanEntry)
}

func (h *mealPlanHandler) RemoveEntry(c *fiber.Ctx) error {
	dinerID := c.Locals("diner_id").(string)

	entryID, err := strconv.ParseUint(c.Params("entryId"), 10, 64)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedRemoveEntry, domain.ErrEntryNotFound)
	}

	if err := h.mealPlanService.RemoveEntry(c.Context(), dinerID, uint(entryID)); err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFor(err, fiber.StatusInternalServerError), domain.MessageFailedRemoveEntry, err)
	}
	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessRemoveEntry)
}

func (h *mealPlanHandler) GetDayNutrients(c *fiber.Ctx) error {
	dinerID := c.Locals("diner_id").(string)

	day, err := strconv.Atoi(c.Query("day"))
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedInvalidMealPlanDay, domain.ErrInvalidDayIndex)
	}

	res, err := h.mealPlanService.DayNutrients(c.Context(), dinerID, c.Query("weekStart"), day)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFor(err, fiber.StatusInternalServerError), domain.MessageFailedGetDayNutrients, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetDayNutrients)
}

func (h *mealPlanHandler) GetWeekNutrients(c *fiber.Ctx) error {
	dinerID := c.Locals("diner_id").(string)

	res, err := h.mealPlanService.WeekNutrients(c.Context(), dinerID, c.Query("weekStart"))
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFor(err, fiber.StatusInternalServerError), domain.MessageFailedGetWeekNutrients, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetWeekNutrients)
}
