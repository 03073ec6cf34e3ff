package services

import (
	"betterfit-api/metrics"
	"betterfit-api/models"
	"context"
	"database/sql"
	"errors"
	"math"
	"time"

	"golang.org/x/sync/errgroup"
)

// nullKey is the tally key for rows whose column is NULL
const nullKey = "null"

// StatisticsService builds the aggregate report over the whole catalog
type StatisticsService struct {
	repo   StatisticsRepository
	source string
	now    func() time.Time
}

// NewStatisticsService creates a statistics service. source is reported as meta.source.
func NewStatisticsService(repo StatisticsRepository, source string) *StatisticsService {
	return &StatisticsService{
		repo:   repo,
		source: source,
		now:    time.Now,
	}
}

// Generate runs the five catalog queries concurrently and aggregates them.
// The first failing query cancels the others. The returned error is a
// *StageError; when several stages fail, the earliest stage in report order
// wins (categories, then difficulties, then columns). No partial report is
// ever returned.
func (s *StatisticsService) Generate(ctx context.Context) (*models.StatisticsReport, error) {
	var (
		categories   []models.CategoryCount
		difficulties []models.DifficultyCount
		equipment    []sql.NullString
		muscleGroups []sql.NullString
		calories     []sql.NullFloat64
	)

	// One slot per query, in the order stages are reported
	stageErrs := make([]error, 5)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() (err error) {
		if categories, err = s.repo.CategoryCounts(gctx); err != nil {
			stageErrs[0] = &StageError{Stage: StageCategories, Err: err}
		}
		return stageErrs[0]
	})
	g.Go(func() (err error) {
		if difficulties, err = s.repo.DifficultyCounts(gctx); err != nil {
			stageErrs[1] = &StageError{Stage: StageDifficulties, Err: err}
		}
		return stageErrs[1]
	})
	g.Go(func() (err error) {
		if equipment, err = s.repo.EquipmentValues(gctx); err != nil {
			stageErrs[2] = &StageError{Stage: StageColumns, Err: err}
		}
		return stageErrs[2]
	})
	g.Go(func() (err error) {
		if muscleGroups, err = s.repo.MuscleGroupValues(gctx); err != nil {
			stageErrs[3] = &StageError{Stage: StageColumns, Err: err}
		}
		return stageErrs[3]
	})
	g.Go(func() (err error) {
		if calories, err = s.repo.CaloriesValues(gctx); err != nil {
			stageErrs[4] = &StageError{Stage: StageColumns, Err: err}
		}
		return stageErrs[4]
	})

	if err := g.Wait(); err != nil {
		return nil, firstStageError(ctx, err, stageErrs)
	}

	stats := Aggregate(categories, difficulties, equipment, muscleGroups, calories)
	metrics.StatisticsExercises.Set(float64(stats.TotalExercises))

	return &models.StatisticsReport{
		Data: stats,
		Meta: models.StatisticsMeta{
			GeneratedAt: s.now().UTC().Format("2006-01-02T15:04:05.000Z07:00"),
			Source:      s.source,
		},
	}, nil
}

// Aggregate turns already-fetched query results into the report body.
// totalExercises is the number of calorie rows, i.e. the row count of the table.
func Aggregate(
	categories []models.CategoryCount,
	difficulties []models.DifficultyCount,
	equipment, muscleGroups []sql.NullString,
	calories []sql.NullFloat64,
) models.Statistics {
	byCategory := make(map[string]int, len(categories))
	for _, c := range categories {
		byCategory[c.Category] = c.ExerciseCount
	}

	byDifficulty := make(map[string]int, len(difficulties))
	for _, d := range difficulties {
		byDifficulty[d.Difficulty] = d.ExerciseCount
	}

	byEquipment := tally(equipment)
	byMuscleGroup := tally(muscleGroups)

	return models.Statistics{
		TotalExercises:         len(calories),
		ExercisesByCategory:    byCategory,
		ExercisesByDifficulty:  byDifficulty,
		ExercisesByMuscleGroup: byMuscleGroup,
		ExercisesByEquipment:   byEquipment,
		AverageCaloriesBurned:  averageCalories(calories),
		Summary: models.StatisticsSummary{
			TotalCategories:     len(byCategory),
			TotalDifficulties:   len(byDifficulty),
			TotalMuscleGroups:   len(byMuscleGroup),
			TotalEquipmentTypes: len(byEquipment),
		},
	}
}

// firstStageError picks the earliest stage that failed on its own. Stages that
// only failed because a sibling's failure canceled them are skipped unless the
// caller's context was canceled too.
func firstStageError(ctx context.Context, fallback error, stageErrs []error) error {
	for _, err := range stageErrs {
		if err == nil {
			continue
		}
		if ctx.Err() == nil && errors.Is(err, context.Canceled) {
			continue
		}
		return err
	}
	return fallback
}

func tally(values []sql.NullString) map[string]int {
	counts := make(map[string]int)
	for _, v := range values {
		key := nullKey
		if v.Valid {
			key = v.String
		}
		counts[key]++
	}
	return counts
}

// averageCalories returns nil for an empty catalog. NULL values add nothing
// to the sum but still count as rows.
func averageCalories(values []sql.NullFloat64) *float64 {
	if len(values) == 0 {
		return nil
	}

	var sum float64
	for _, v := range values {
		if v.Valid {
			sum += v.Float64
		}
	}

	avg := roundTo2(sum / float64(len(values)))
	return &avg
}

func roundTo2(v float64) float64 {
	return math.Round(v*100) / 100
}
