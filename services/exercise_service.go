package services

import (
	"betterfit-api/models"
	"context"
	"fmt"
)

const (
	DefaultPageSize = 50
	DefaultOffset   = 0
)

// ExerciseService handles the exercise listing
type ExerciseService struct {
	repo        ExerciseRepository
	maxPageSize int
}

// NewExerciseService creates a listing service. maxPageSize caps the limit a
// caller may request.
func NewExerciseService(repo ExerciseRepository, maxPageSize int) *ExerciseService {
	if maxPageSize < 1 {
		maxPageSize = DefaultPageSize
	}
	return &ExerciseService{
		repo:        repo,
		maxPageSize: maxPageSize,
	}
}

// NormalizeQuery applies paging defaults and the server-side cap.
// A non-positive limit falls back to the default; a negative offset becomes 0.
func (s *ExerciseService) NormalizeQuery(filters models.ExerciseFilters, limit, offset int) models.ListQuery {
	if limit < 1 {
		limit = DefaultPageSize
	}
	if limit > s.maxPageSize {
		limit = s.maxPageSize
	}
	if offset < 0 {
		offset = DefaultOffset
	}

	return models.ListQuery{
		ExerciseFilters: filters,
		Limit:           limit,
		Offset:          offset,
	}
}

// List returns one page of exercises matching every supplied filter, ordered by name
func (s *ExerciseService) List(ctx context.Context, filters models.ExerciseFilters, limit, offset int) (*models.ExerciseList, error) {
	q := s.NormalizeQuery(filters, limit, offset)

	exercises, err := s.repo.ListExercises(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("list exercises: %w", err)
	}
	if exercises == nil {
		exercises = []models.Exercise{}
	}

	return &models.ExerciseList{
		Data: exercises,
		Meta: models.ListMeta{
			Count:   len(exercises),
			Limit:   q.Limit,
			Offset:  q.Offset,
			Filters: filters,
		},
	}, nil
}
