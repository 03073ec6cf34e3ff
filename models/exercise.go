package models

import "time"

type Exercise struct {
	ID             int64     `json:"id"`
	Name           string    `json:"name"`
	Description    string    `json:"description"`
	MuscleGroup    string    `json:"muscle_group"`
	Equipment      string    `json:"equipment"`
	Category       string    `json:"category"`
	Difficulty     string    `json:"difficulty"`
	CaloriesBurned *float64  `json:"calories_burned"`
	CreatedAt      time.Time `json:"created_at"`
}

// ExerciseFilters echoes the filters a listing request supplied. Unset
// filters are omitted from the JSON output.
type ExerciseFilters struct {
	Target      string `json:"target,omitempty" query:"target" validate:"omitempty,filtervalue"`
	Equipment   string `json:"equipment,omitempty" query:"equipment" validate:"omitempty,filtervalue"`
	Category    string `json:"category,omitempty" query:"category" validate:"omitempty,filtervalue"`
	Difficulty  string `json:"difficulty,omitempty" query:"difficulty" validate:"omitempty,filtervalue"`
	MuscleGroup string `json:"muscle_group,omitempty" query:"muscle_group" validate:"omitempty,filtervalue"`
	Search      string `json:"search,omitempty" query:"search" validate:"omitempty,filtervalue"`
}

// ListQuery is a normalized listing request: filters plus the effective page window.
type ListQuery struct {
	ExerciseFilters
	Limit  int
	Offset int
}

type ListMeta struct {
	Count   int             `json:"count"`
	Limit   int             `json:"limit"`
	Offset  int             `json:"offset"`
	Filters ExerciseFilters `json:"filters"`
}

type ExerciseList struct {
	Data []Exercise `json:"data"`
	Meta ListMeta   `json:"meta"`
}

// CategoryCount is a row of the exercises_by_category view.
type CategoryCount struct {
	Category      string `json:"category"`
	ExerciseCount int    `json:"exercise_count"`
}

// DifficultyCount is a row of the exercises_by_difficulty view.
type DifficultyCount struct {
	Difficulty    string `json:"difficulty"`
	ExerciseCount int    `json:"exercise_count"`
}

type StatisticsSummary struct {
	TotalCategories     int `json:"totalCategories"`
	TotalDifficulties   int `json:"totalDifficulties"`
	TotalMuscleGroups   int `json:"totalMuscleGroups"`
	TotalEquipmentTypes int `json:"totalEquipmentTypes"`
}

type Statistics struct {
	TotalExercises         int               `json:"totalExercises"`
	ExercisesByCategory    map[string]int    `json:"exercisesByCategory"`
	ExercisesByDifficulty  map[string]int    `json:"exercisesByDifficulty"`
	ExercisesByMuscleGroup map[string]int    `json:"exercisesByMuscleGroup"`
	ExercisesByEquipment   map[string]int    `json:"exercisesByEquipment"`
	AverageCaloriesBurned  *float64          `json:"averageCaloriesBurned"`
	Summary                StatisticsSummary `json:"summary"`
}

type StatisticsMeta struct {
	GeneratedAt string `json:"generatedAt"`
	Source      string `json:"source"`
}

type StatisticsReport struct {
	Data Statistics     `json:"data"`
	Meta StatisticsMeta `json:"meta"`
}
