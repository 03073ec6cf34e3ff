package handlers

import (
	"betterfit-api/app"
	"betterfit-api/services"
	"errors"

	"github.com/gofiber/fiber/v2"
)

var stageMessages = map[string]string{
	services.StageCategories:   "Failed to fetch category statistics",
	services.StageDifficulties: "Failed to fetch difficulty statistics",
	services.StageColumns:      "Failed to fetch exercise statistics",
}

// GetStatistics returns aggregate counts and the average calories burned
// across the whole catalog
func GetStatistics(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := queryContext(c, a)
		defer cancel()

		report, err := a.Statistics.Generate(ctx)
		if err != nil {
			message := "Internal server error"
			var stageErr *services.StageError
			if errors.As(err, &stageErr) {
				if m, ok := stageMessages[stageErr.Stage]; ok {
					message = m
				}
				err = stageErr.Err
			}
			return serverErrorWithDetails(c, a, message, err)
		}

		return success(c, report)
	}
}
