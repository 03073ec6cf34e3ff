package handlers_test

import (
	"betterfit-api/app"
	"betterfit-api/config"
	"betterfit-api/config/setup"
	"betterfit-api/database"
	"betterfit-api/models"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
)

// testEnv bundles the app under test with its raw database handle so tests
// can break the schema on purpose.
type testEnv struct {
	app   *app.App
	db    *database.DB
	fiber *fiber.App
}

func defaultOptions() app.Options {
	return app.Options{
		MaxPageSize:        100,
		QueryTimeout:       5 * time.Second,
		ExposeErrorDetails: true,
		DataSource:         "BetterFit Exercise Database",
		CORSOrigin:         "*",
	}
}

// setupTestEnv creates a temporary database and a Fiber app built by the
// same setup functions the server uses. Rate limiting is off.
func setupTestEnv(t *testing.T, opts app.Options, migrate bool) *testEnv {
	t.Helper()

	tmpDir, err := os.MkdirTemp("", "betterfit-handlers-test-*")
	require.NoError(t, err, "Failed to create temp directory")

	db, err := database.New(database.DriverSQLite, filepath.Join(tmpDir, "test.db"))
	require.NoError(t, err, "Failed to initialize test database")

	if migrate {
		require.NoError(t, db.Migrate(), "Failed to run migrations")
	}

	t.Cleanup(func() {
		db.Close()
		os.RemoveAll(tmpDir)
	})

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	application := app.New(database.NewRepository(db), opts, logger)

	fiberApp := setup.NewFiberApp(logger, true)
	setup.ApplyMiddleware(fiberApp, &config.Config{}, logger)
	setup.RegisterRoutes(fiberApp, application)

	return &testEnv{app: application, db: db, fiber: fiberApp}
}

func (e *testEnv) seed(t *testing.T, exercises []models.Exercise) {
	t.Helper()
	require.NoError(t, e.app.Repo.InsertExercises(context.Background(), exercises))
}

func kcal(v float64) *float64 { return &v }

func catalog() []models.Exercise {
	return []models.Exercise{
		{Name: "Rowing", MuscleGroup: "Back", Equipment: "rower", Category: "cardio", Difficulty: "beginner", CaloriesBurned: kcal(300)},
		{Name: "Burpees", MuscleGroup: "Full Body", Equipment: "none", Category: "cardio", Difficulty: "intermediate", CaloriesBurned: kcal(250)},
		{Name: "Jump Rope", MuscleGroup: "Calves", Equipment: "rope", Category: "cardio", Difficulty: "beginner", CaloriesBurned: kcal(280)},
		{Name: "Cycling", MuscleGroup: "Quadriceps", Equipment: "bike", Category: "cardio", Difficulty: "beginner", CaloriesBurned: kcal(400)},
		{Name: "Assault Bike Sprint", MuscleGroup: "Full Body", Equipment: "bike", Category: "cardio", Difficulty: "advanced", CaloriesBurned: kcal(500)},
		{Name: "Bench Press", MuscleGroup: "Chest", Equipment: "barbell", Category: "strength", Difficulty: "intermediate", CaloriesBurned: kcal(150)},
		{Name: "Deadlift", MuscleGroup: "Lower Back", Equipment: "barbell", Category: "strength", Difficulty: "advanced", CaloriesBurned: kcal(200)},
		{Name: "Pull-up", MuscleGroup: "Upper Back", Equipment: "pullup_bar", Category: "strength", Difficulty: "intermediate", CaloriesBurned: kcal(120)},
	}
}

func decodeBody(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}
