package setup

import (
	"betterfit-api/app"
	"betterfit-api/config"
	"betterfit-api/database"
	"log/slog"
)

// InitDatabase opens the configured database and runs migrations
func InitDatabase(cfg *config.Config, logger *slog.Logger) (*database.DB, error) {
	db, err := database.New(cfg.DBDriver, cfg.DBDSN)
	if err != nil {
		return nil, err
	}

	if err := db.Migrate(); err != nil {
		db.Close()
		return nil, err
	}

	logger.Info("database initialized", "driver", cfg.DBDriver)
	return db, nil
}

// InitApp initializes the application with all dependencies
func InitApp(db *database.DB, cfg *config.Config, logger *slog.Logger) *app.App {
	repo := database.NewRepository(db)

	application := app.New(repo, app.Options{
		MaxPageSize:        cfg.MaxPageSize,
		QueryTimeout:       cfg.QueryTimeout,
		ExposeErrorDetails: cfg.ExposeErrorDetails,
		DataSource:         cfg.DataSource,
		CORSOrigin:         cfg.CORSOrigin,
	}, logger)
	logger.Info("application initialized",
		"max_page_size", cfg.MaxPageSize,
		"query_timeout", cfg.QueryTimeout,
		"expose_error_details", cfg.ExposeErrorDetails,
	)

	return application
}

// Shutdown closes the resources opened by InitDatabase
func Shutdown(db *database.DB, logger *slog.Logger) {
	logger.Info("shutting down services...")

	if db != nil {
		db.Close()
		logger.Info("database closed")
	}
}
