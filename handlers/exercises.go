package handlers

import (
	"betterfit-api/app"
	"betterfit-api/models"
	"betterfit-api/services"

	"github.com/gofiber/fiber/v2"
)

// ListExercises returns one page of exercises matching the query filters.
// target and search are case-insensitive substring filters; the rest are exact.
func ListExercises(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var filters models.ExerciseFilters
		if err := c.QueryParser(&filters); err != nil {
			return badRequest(c, "Invalid query parameters", err)
		}
		if err := a.Validator.Validate(&filters); err != nil {
			return badRequest(c, "Invalid query parameters", err)
		}

		// Non-numeric values fall back to the defaults
		limit := c.QueryInt("limit", services.DefaultPageSize)
		offset := c.QueryInt("offset", services.DefaultOffset)

		ctx, cancel := queryContext(c, a)
		defer cancel()

		result, err := a.Exercises.List(ctx, filters, limit, offset)
		if err != nil {
			return serverErrorWithDetails(c, a, "Failed to fetch exercises", err)
		}

		return success(c, result)
	}
}
