package application

import "github.com/marquito38/meow-macros/internal/domain"

// LogFoodCommand logs Amount of Name. An empty Day means today. Nutrients are
// only read for names the catalog does not know yet.
type LogFoodCommand struct {
	Day       domain.DayKey
	Name      string
	Amount    float64
	Unit      domain.ReferenceUnit
	Category  string
	Nutrients domain.Nutrients
}

type UpsertCatalogCommand struct {
	Name      string
	Unit      domain.ReferenceUnit
	Nutrients domain.Nutrients
}

// EditCatalogCommand re-normalizes a catalog entry from values asserted for
// ServingSize (nil means the reference amount of the resulting unit).
type EditCatalogCommand struct {
	Name        string
	NewName     string
	Unit        domain.ReferenceUnit
	ServingSize *float64
	Nutrients   domain.Nutrients
}

type RecordSetCommand struct {
	Exercise string
	SetIndex int
	Field    domain.SetField
	Value    string
}

// FinishWorkoutCommand finalizes the current draft. An empty RoutineID uses the
// draft's routine; an empty Day means today.
type FinishWorkoutCommand struct {
	Day             domain.DayKey
	RoutineID       string
	DurationMinutes float64
}
