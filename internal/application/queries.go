package application

import "github.com/marquito38/meow-macros/internal/domain"

type CatalogItem struct {
	Entry         domain.CatalogEntry
	PrefillAmount float64
}

type ExerciseRow struct {
	Exercise domain.RoutineExercise
	Sets     []domain.Set
	// Last is the previous performance, or domain.NoPriorRecord.
	Last       string
	HasHistory bool
}

// WorkoutSheet is one routine with the draft's sets and the last recorded
// performance for every exercise.
type WorkoutSheet struct {
	Routine domain.Routine
	Rows    []ExerciseRow
	Volume  float64
}

type TrendReport struct {
	Series domain.Series
	Recent []domain.SessionSummary
}
