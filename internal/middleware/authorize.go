package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/ppandov/trail-service/internal/claims"
	"github.com/ppandov/trail-service/internal/dto"
	"github.com/ppandov/trail-service/internal/policy"
)

// RequireOperation gates a route on the access policy. It runs after
// JWTProtected, so a missing or invalid token never reaches this check.
func RequireOperation(op policy.Operation) fiber.Handler {
	return func(c *fiber.Ctx) error {
		cl, err := claims.FromContext(c)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error: true, Message: "Unauthorized",
			})
		}

		if !policy.Authorize(cl, op) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Error: true, Message: "Admin privileges required",
			})
		}

		return c.Next()
	}
}
