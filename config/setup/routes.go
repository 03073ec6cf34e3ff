package setup

import (
	"betterfit-api/app"
	"betterfit-api/handlers"
	"betterfit-api/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// RegisterRoutes registers all application routes
func RegisterRoutes(fiberApp *fiber.App, application *app.App) {
	origin := application.Options.CORSOrigin
	if origin == "" {
		origin = "*"
	}

	// Operational routes
	fiberApp.Get("/health", handlers.Health(application))
	fiberApp.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	// Exercise API. Every method is routed so GetOnly answers OPTIONS and 405.
	api := fiberApp.Group("/api")
	api.All("/exercises/statistics",
		middleware.CORS(origin, fiber.MethodGet, fiber.MethodOptions),
		middleware.GetOnly(),
		handlers.GetStatistics(application),
	)
	api.All("/exercises",
		middleware.CORS(origin, fiber.MethodGet, fiber.MethodPost, fiber.MethodPut, fiber.MethodDelete, fiber.MethodOptions),
		middleware.GetOnly(),
		handlers.ListExercises(application),
	)
}
