package services

import "fmt"

// Statistics stages. Each maps to its own client-facing error message.
const (
	StageCategories   = "categories"
	StageDifficulties = "difficulties"
	StageColumns      = "columns"
)

// StageError records which statistics query failed.
type StageError struct {
	Stage string
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("%s query failed: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}
