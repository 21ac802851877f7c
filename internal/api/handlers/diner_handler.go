package handlers

import (
	"github.com/davidvct/healthy-meal-planner/domain"
	"github.com/davidvct/healthy-meal-planner/internal/api/presenters"
	"github.com/davidvct/healthy-meal-planner/pkg/diner"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	DinerHandler interface {
		GetDiner(c *fiber.Ctx) error
		UpsertDiner(c *fiber.Ctx) error
	}

	dinerHandler struct {
		dinerService diner.DinerService
		validator    *validator.Validate
	}
)

func NewDinerHandler(dinerService diner.DinerService, validator *validator.Validate) DinerHandler {
	return &dinerHandler{
		dinerService: dinerService,
		validator:    validator,
	}
}

func (h *dinerHandler) GetDiner(c *fiber.Ctx) error {
	dinerID := c.Locals("diner_id").(string)

	res, err := h.dinerService.GetDiner(c.Context(), dinerID)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFor(err, fiber.StatusInternalServerError), domain.MessageFailedGetDiner, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetDiner)
}

func (h *dinerHandler) UpsertDiner(c *fiber.Ctx) error {
	caretakerID := c.Locals("user_id").(string)
	req := new(domain.UpsertDinerRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpsertDiner, err)
	}

	res, err := h.dinerService.UpsertDiner(c.Context(), caretakerID, *req)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFor(err, fiber.StatusInternalServerError), domain.MessageFailedUpsertDiner, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUpsertDiner)
}
