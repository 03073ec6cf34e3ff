package handlers

import (
	"betterfit-api/app"
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
)

// Health reports whether the database is reachable
func Health(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
		defer cancel()

		if err := a.Repo.Ping(ctx); err != nil {
			a.Logger.Warn("health check failed", "error", err)
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "unavailable"})
		}

		return c.JSON(fiber.Map{"status": "ok"})
	}
}
