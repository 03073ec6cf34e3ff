package app

import (
	"betterfit-api/database"
	"betterfit-api/services"
	"betterfit-api/validator"
	"log/slog"
	"time"
)

// Options are the request-handling knobs taken from configuration
type Options struct {
	MaxPageSize        int
	QueryTimeout       time.Duration
	ExposeErrorDetails bool
	DataSource         string
	CORSOrigin         string
}

// App holds all application dependencies
// This struct is the central point for dependency injection
type App struct {
	Repo       *database.Repository
	Exercises  *services.ExerciseService
	Statistics *services.StatisticsService
	Validator  *validator.Validator
	Logger     *slog.Logger
	Options    Options
}

// New creates a new App instance with all dependencies
func New(repo *database.Repository, opts Options, logger *slog.Logger) *App {
	return &App{
		Repo:       repo,
		Exercises:  services.NewExerciseService(repo, opts.MaxPageSize),
		Statistics: services.NewStatisticsService(repo, opts.DataSource),
		Validator:  validator.New(),
		Logger:     logger,
		Options:    opts,
	}
}
