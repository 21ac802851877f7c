package presenters

import (
	"errors"

	"github.com/davidvct/healthy-meal-planner/domain"
	"github.com/gofiber/fiber/v2"
)

type Response struct {
	Status  bool   `json:"status"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

func SuccessResponse(c *fiber.Ctx, data any, statusCode int, message string) error {
	return c.Status(statusCode).JSON(Response{
		Status:  true,
		Message: message,
		Data:    data,
	})
}

func ErrorResponse(c *fiber.Ctx, statusCode int, message string, err error) error {
	res := Response{
		Status:  false,
		Message: message,
	}
	if err != nil {
		res.Error = err.Error()
	}
	return c.Status(statusCode).JSON(res)
}

var statusByError = []struct {
	err    error
	status int
}{
	{domain.ErrDinerNotFound, fiber.StatusNotFound},
	{domain.ErrDishNotFound, fiber.StatusNotFound},
	{domain.ErrRecipeNotFound, fiber.StatusNotFound},
	{domain.ErrEntryNotFound, fiber.StatusNotFound},
	{domain.ErrSlotLocked, fiber.StatusConflict},
	{domain.ErrUnauthorizedDinerAccess, fiber.StatusForbidden},
	{domain.ErrUserNotAllowed, fiber.StatusForbidden},
	{domain.ErrTokenNotFound, fiber.StatusUnauthorized},
	{domain.ErrTokenExpired, fiber.StatusUnauthorized},
	{domain.ErrTokenInvalid, fiber.StatusUnauthorized},
	{domain.ErrInvalidWeekStart, fiber.StatusBadRequest},
	{domain.ErrInvalidDayIndex, fiber.StatusBadRequest},
	{domain.ErrInvalidMealType, fiber.StatusBadRequest},
	{domain.ErrInvalidServings, fiber.StatusBadRequest},
	{domain.ErrInvalidIngredient, fiber.StatusBadRequest},
	{domain.ErrInvalidDiet, fiber.StatusBadRequest},
	{domain.ErrParseUUID, fiber.StatusBadRequest},
	{domain.ErrEmptyShoppingList, fiber.StatusBadRequest},
}

// StatusFor maps a domain error to its HTTP status, falling back to fallback
// for anything unrecognised.
func StatusFor(err error, fallback int) int {
	for _, m := range statusByError {
		if errors.Is(err, m.err) {
			return m.status
		}
	}
	return fallback
}
