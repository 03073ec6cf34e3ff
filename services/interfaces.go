package services

import (
	"betterfit-api/models"
	"context"
	"database/sql"
)

// ExerciseRepository defines the read access the listing service needs.
// Production uses *database.Repository; tests substitute a mock.
type ExerciseRepository interface {
	ListExercises(ctx context.Context, q models.ListQuery) ([]models.Exercise, error)
}

// StatisticsRepository defines the queries behind the statistics report
type StatisticsRepository interface {
	CategoryCounts(ctx context.Context) ([]models.CategoryCount, error)
	DifficultyCounts(ctx context.Context) ([]models.DifficultyCount, error)
	EquipmentValues(ctx context.Context) ([]sql.NullString, error)
	MuscleGroupValues(ctx context.Context) ([]sql.NullString, error)
	CaloriesValues(ctx context.Context) ([]sql.NullFloat64, error)
}
