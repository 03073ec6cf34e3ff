package handlers

import (
	"betterfit-api/app"
	"betterfit-api/middleware"
	"context"

	"github.com/gofiber/fiber/v2"
)

// genericDetails replaces raw database messages when details are not exposed
const genericDetails = "Database query failed"

func success(c *fiber.Ctx, data interface{}) error {
	return c.JSON(data)
}

func badRequest(c *fiber.Ctx, message string, err error) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"error":   message,
		"details": err.Error(),
	})
}

// serverErrorWithDetails logs err in full, then writes the {error, details}
// envelope. details carries err's message unless the app hides it.
func serverErrorWithDetails(c *fiber.Ctx, a *app.App, message string, err error) error {
	a.Logger.Error("server error",
		"request_id", middleware.GetRequestID(c),
		"method", c.Method(),
		"path", c.Path(),
		"message", message,
		"error", err,
	)

	details := genericDetails
	if a.Options.ExposeErrorDetails {
		details = err.Error()
	}

	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error":   message,
		"details": details,
	})
}

// queryContext derives the context for a request's database work, bounded by
// the configured query timeout when one is set.
func queryContext(c *fiber.Ctx, a *app.App) (context.Context, context.CancelFunc) {
	if a.Options.QueryTimeout > 0 {
		return context.WithTimeout(c.UserContext(), a.Options.QueryTimeout)
	}
	return context.WithCancel(c.UserContext())
}
