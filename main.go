package main

import (
	"betterfit-api/config"
	"betterfit-api/config/setup"
	"betterfit-api/database"
	"betterfit-api/models"
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/goccy/go-json"
)

func main() {
	config.Load()

	logger := setupLogger()
	slog.SetDefault(logger)

	db, err := setup.InitDatabase(config.AppConfig, logger)
	if err != nil {
		logger.Error("failed to initialize database", "error", err)
		os.Exit(1)
	}
	defer setup.Shutdown(db, logger)

	if len(os.Args) > 1 {
		if err := runCommand(db, os.Args[1:], logger); err != nil {
			logger.Error("command failed", "command", os.Args[1], "error", err)
			setup.Shutdown(db, logger)
			os.Exit(1)
		}
		return
	}

	application := setup.InitApp(db, config.AppConfig, logger)

	app := setup.NewFiberApp(logger, config.AppConfig.Env == "production")
	setup.ApplyMiddleware(app, config.AppConfig, logger)
	setup.RegisterRoutes(app, application)

	logger.Info("starting server", "port", config.AppConfig.Port, "env", config.AppConfig.Env)

	go func() {
		if err := app.Listen(":" + config.AppConfig.Port); err != nil {
			logger.Error("server failed", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server gracefully")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
	}

	logger.Info("server stopped")
}

// runCommand dispatches the non-server subcommands
func runCommand(db *database.DB, args []string, logger *slog.Logger) error {
	switch args[0] {
	case "seed":
		if len(args) != 2 {
			return fmt.Errorf("usage: betterfit-api seed <file.json>")
		}
		return seed(db, args[1], logger)
	default:
		return fmt.Errorf("unknown command %q", args[0])
	}
}

// seed loads a JSON array of exercises into the catalog
func seed(db *database.DB, path string, logger *slog.Logger) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read seed file: %w", err)
	}

	var exercises []models.Exercise
	if err := json.Unmarshal(data, &exercises); err != nil {
		return fmt.Errorf("decode seed file: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	if err := database.NewRepository(db).InsertExercises(ctx, exercises); err != nil {
		return err
	}

	logger.Info("seed complete", "file", path, "exercises", len(exercises))
	return nil
}

func setupLogger() *slog.Logger {
	var handler slog.Handler

	opts := &slog.HandlerOptions{
		Level:     getLogLevel(),
		AddSource: config.AppConfig.Env == "development",
	}

	if config.AppConfig.Env == "production" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	return slog.New(handler)
}

func getLogLevel() slog.Level {
	level := config.GetEnv("LOG_LEVEL", "info")
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
