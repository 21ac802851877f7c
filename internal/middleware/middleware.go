package middleware

import (
	"strings"

	"github.com/davidvct/healthy-meal-planner/domain"
	"github.com/davidvct/healthy-meal-planner/internal/api/presenters"
	"github.com/davidvct/healthy-meal-planner/pkg/diner"
	"github.com/davidvct/healthy-meal-planner/pkg/jwt"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

const (
	LocalUserID  = "user_id"
	LocalRole    = "role"
	LocalDinerID = "diner_id"
)

type (
	Middleware interface {
		CORSMiddleware() fiber.Handler
		AuthMiddleware(jwtService jwt.JWTService) fiber.Handler
		DinerAccess(dinerService diner.DinerService) fiber.Handler
	}

	middleware struct{}
)

func NewMiddleware() Middleware {
	return &middleware{}
}

func (m *middleware) CORSMiddleware() fiber.Handler {
	return cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,PATCH,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	})
}

// AuthMiddleware requires a caretaker bearer token and stores the caretaker
// id in locals.
func (m *middleware) AuthMiddleware(jwtService jwt.JWTService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.MessageFailedGetToken, domain.ErrTokenNotFound)
		}

		caretakerID, role, err := jwtService.GetCaretakerIDByToken(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.MessageFailedTokenInvalid, err)
		}
		if role != domain.RoleCaretaker {
			return presenters.ErrorResponse(c, fiber.StatusForbidden, domain.MessageUserNotAllowed, domain.ErrUserNotAllowed)
		}

		c.Locals(LocalUserID, caretakerID)
		c.Locals(LocalRole, role)
		return c.Next()
	}
}

// DinerAccess resolves the :dinerId route param and rejects diners that do
// not belong to the authenticated caretaker.
func (m *middleware) DinerAccess(dinerService diner.DinerService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		caretakerID, _ := c.Locals(LocalUserID).(string)
		dinerID := c.Params("dinerId")

		if err := dinerService.Authorize(c.Context(), caretakerID, dinerID); err != nil {
			return presenters.ErrorResponse(c, presenters.StatusFor(err, fiber.StatusInternalServerError), domain.MessageUserNotAllowed, err)
		}

		c.Locals(LocalDinerID, dinerID)
		return c.Next()
	}
}
