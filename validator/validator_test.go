package validator

import (
	"betterfit-api/models"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type TestPageRequest struct {
	Limit  int    `query:"limit" validate:"gte=1,lte=100"`
	Order  string `json:"order" validate:"required,oneof=asc desc"`
	Hidden string `json:"-" validate:"max=3"`
}

func TestValidator_ExerciseFilters(t *testing.T) {
	v := New()

	tests := []struct {
		name      string
		filters   models.ExerciseFilters
		wantError bool
		errorMsg  string
		field     string
	}{
		{
			name:      "No filters",
			filters:   models.ExerciseFilters{},
			wantError: false,
		},
		{
			name: "All filters set",
			filters: models.ExerciseFilters{
				Target:      "back",
				Equipment:   "barbell",
				Category:    "strength",
				Difficulty:  "advanced",
				MuscleGroup: "Lower Back",
				Search:      "dead",
			},
			wantError: false,
		},
		{
			name:      "Unicode and symbols allowed",
			filters:   models.ExerciseFilters{Search: "Übung 100% (ä)"},
			wantError: false,
		},
		{
			name:      "Exactly the maximum length",
			filters:   models.ExerciseFilters{Category: strings.Repeat("a", MaxFilterLength)},
			wantError: false,
		},
		{
			name:      "Too long",
			filters:   models.ExerciseFilters{Search: strings.Repeat("a", MaxFilterLength+1)},
			wantError: true,
			errorMsg:  "search must be at most 100 characters of printable text",
			field:     "search",
		},
		{
			name:      "Control characters rejected",
			filters:   models.ExerciseFilters{MuscleGroup: "chest\x00"},
			wantError: true,
			errorMsg:  "muscle_group must be at most 100 characters of printable text",
			field:     "muscle_group",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(&tt.filters)

			if !tt.wantError {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errorMsg)

			validationErrs, ok := err.(ValidationErrors)
			require.True(t, ok)
			require.Len(t, validationErrs, 1)
			assert.Equal(t, tt.field, validationErrs[0].Field)
			assert.Equal(t, "filtervalue", validationErrs[0].Tag)
		})
	}
}

func TestValidator_StandardTags(t *testing.T) {
	v := New()

	err := v.Validate(&TestPageRequest{Limit: 0, Order: "sideways", Hidden: "abcd"})
	require.Error(t, err)

	validationErrs, ok := err.(ValidationErrors)
	require.True(t, ok)
	require.Len(t, validationErrs, 3)

	assert.Equal(t, "limit", validationErrs[0].Field)
	assert.Equal(t, "limit must be greater than or equal to 1", validationErrs[0].Message)
	assert.Equal(t, "order", validationErrs[1].Field)
	assert.Equal(t, "order must be one of: asc desc", validationErrs[1].Message)
	assert.Equal(t, "max", validationErrs[2].Tag)
}

func TestValidationErrors_Error(t *testing.T) {
	errs := ValidationErrors{
		{Field: "search", Message: "search is too long"},
		{Field: "target", Message: "target is too long"},
	}
	assert.Equal(t, "search is too long; target is too long", errs.Error())
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "abc...", truncate("abcdef", 3))
}
