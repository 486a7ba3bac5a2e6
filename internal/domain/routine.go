package domain

import "strings"

type RoutineExercise struct {
	Name   string
	Sets   int
	Target string
}

type Routine struct {
	ID        string
	Name      string
	Exercises []RoutineExercise
}

// FindRoutine matches id case-insensitively.
func FindRoutine(routines []Routine, id string) (Routine, error) {
	want := strings.TrimSpace(id)
	for _, r := range routines {
		if strings.EqualFold(r.ID, want) {
			return r, nil
		}
	}
	return Routine{}, ErrRoutineNotFound
}

// UnknownRoutineName labels sessions whose routine is no longer configured.
const UnknownRoutineName = "Unknown routine"

func RoutineName(routines []Routine, id string) string {
	if r, err := FindRoutine(routines, id); err == nil {
		return r.Name
	}
	return UnknownRoutineName
}
