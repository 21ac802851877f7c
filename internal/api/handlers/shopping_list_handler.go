package handlers

import (
	"github.com/davidvct/healthy-meal-planner/domain"
	"github.com/davidvct/healthy-meal-planner/internal/api/presenters"
	"github.com/davidvct/healthy-meal-planner/pkg/shopping"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	ShoppingListHandler interface {
		GetShoppingList(c *fiber.Ctx) error
		ToggleSelection(c *fiber.Ctx) error
		EmailShoppingList(c *fiber.Ctx) error
		ExportShoppingList(c *fiber.Ctx) error
	}

	shoppingListHandler struct {
		shoppingService shopping.ShoppingService
		validator       *validator.Validate
	}
)

func NewShoppingListHandler(shoppingService shopping.ShoppingService, validator *validator.Validate) ShoppingListHandler {
	return &shoppingListHandler{
		shoppingService: shoppingService,
		validator:       validator,
	}
}

func (h *shoppingListHandler) GetShoppingList(c *fiber.Ctx) error {
	dinerID := c.Locals("diner_id").(string)

	res, err := h.shoppingService.GetShoppingList(c.Context(), dinerID, c.Query("weekStart"))
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFor(err, fiber.StatusInternalServerError), domain.MessageFailedGetShoppingList, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetShoppingList)
}

func (h *shoppingListHandler) ToggleSelection(c *fiber.Ctx) error {
	dinerID := c.Locals("diner_id").(string)
	req := new(domain.ToggleSelectionRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedToggleSelection, err)
	}

	res, err := h.shoppingService.ToggleSelection(c.Context(), dinerID, *req)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFor(err, fiber.StatusInternalServerError), domain.MessageFailedToggleSelection, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessToggleSelection)
}

func (h *shoppingListHandler) EmailShoppingList(c *fiber.Ctx) error {
	dinerID := c.Locals("diner_id").(string)
	req := new(domain.EmailShoppingListRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedEmailShoppingList, err)
	}

	if err := h.shoppingService.EmailShoppingList(c.Context(), dinerID, *req); err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFor(err, fiber.StatusBadGateway), domain.MessageFailedEmailShoppingList, err)
	}
	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessEmailShoppingList)
}

func (h *shoppingListHandler) ExportShoppingList(c *fiber.Ctx) error {
	dinerID := c.Locals("diner_id").(string)

	res, err := h.shoppingService.ExportShoppingList(c.Context(), dinerID, c.Query("weekStart"))
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFor(err, fiber.StatusBadGateway), domain.MessageFailedExportShoppingList, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessExportShoppingList)
}
