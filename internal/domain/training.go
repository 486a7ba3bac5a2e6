package domain

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

type Difficulty string

const (
	DifficultyEasy   Difficulty = "😺"
	DifficultyNormal Difficulty = "😼"
	DifficultyHard   Difficulty = "🙀"
)

// ParseDifficulty accepts the tag itself or its name.
func ParseDifficulty(raw string) (Difficulty, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case string(DifficultyEasy), "easy":
		return DifficultyEasy, nil
	case string(DifficultyNormal), "normal", "ok":
		return DifficultyNormal, nil
	case string(DifficultyHard), "hard":
		return DifficultyHard, nil
	default:
		return "", invalid("difficulty", "unsupported tag %q (use easy, normal or hard)", raw)
	}
}

type Set struct {
	Weight     float64
	Reps       int
	Difficulty Difficulty
}

func (s Set) Volume() float64 {
	return s.Weight * float64(s.Reps)
}

type SetField string

const (
	SetFieldWeight     SetField = "weight"
	SetFieldReps       SetField = "reps"
	SetFieldDifficulty SetField = "difficulty"
)

// Draft is the in-progress session being recorded. It is never part of the ledger.
type Draft struct {
	RoutineID string
	Exercises map[string][]Set
}

func (d Draft) Empty() bool {
	for _, sets := range d.Exercises {
		if len(sets) > 0 {
			return false
		}
	}
	return true
}

// RecordSet writes one field of set setIndex for exercise. Missing sets up to
// setIndex are filled with zero weight and reps and defaultTag.
func RecordSet(d Draft, exercise string, setIndex int, field SetField, value string, defaultTag Difficulty) (Draft, error) {
	exercise = strings.TrimSpace(exercise)
	if exercise == "" {
		return d, invalid("exercise", "is required")
	}
	if setIndex < 0 {
		return d, invalid("set", "must not be negative, got %d", setIndex)
	}

	next := Draft{RoutineID: d.RoutineID, Exercises: make(map[string][]Set, len(d.Exercises)+1)}
	for name, sets := range d.Exercises {
		next.Exercises[name] = sets
	}

	sets := make([]Set, len(d.Exercises[exercise]), max(len(d.Exercises[exercise]), setIndex+1))
	copy(sets, d.Exercises[exercise])
	for len(sets) <= setIndex {
		sets = append(sets, Set{Difficulty: defaultTag})
	}

	switch field {
	case SetFieldWeight:
		weight, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
		if err != nil || !isFinite(weight) || weight < 0 {
			return d, invalid("weight", "must be a non-negative number, got %q", value)
		}
		sets[setIndex].Weight = weight
	case SetFieldReps:
		reps, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil || reps < 0 {
			return d, invalid("reps", "must be a non-negative whole number, got %q", value)
		}
		sets[setIndex].Reps = reps
	case SetFieldDifficulty:
		tag, err := ParseDifficulty(value)
		if err != nil {
			return d, err
		}
		sets[setIndex].Difficulty = tag
	default:
		return d, invalid("field", "unsupported field %q (use weight, reps or difficulty)", field)
	}

	next.Exercises[exercise] = sets
	return next, nil
}

type WorkoutSession struct {
	ID              string
	RoutineID       string
	DurationMinutes float64
	CaloriesBurned  int
	Exercises       map[string][]Set
}

// Volume is the sum of weight times reps over every set of the session.
func (s WorkoutSession) Volume() float64 {
	return SessionVolume(s.Exercises)
}

func SessionVolume(exercises map[string][]Set) float64 {
	total := 0.0
	for _, sets := range exercises {
		for _, set := range sets {
			total += set.Volume()
		}
	}
	return total
}

type FinishSessionCommand struct {
	Day             DayKey
	SessionID       string
	RoutineID       string
	DurationMinutes float64
	BurnRate        float64
	Exercises       map[string][]Set
}

func (c FinishSessionCommand) validate() error {
	if c.Day == "" {
		return invalid("date", "is required")
	}
	if strings.TrimSpace(c.RoutineID) == "" {
		return invalid("routine", "is required")
	}
	if !isFinite(c.DurationMinutes) || c.DurationMinutes < 0 {
		return invalid("duration", "must be a non-negative number of minutes, got %v", c.DurationMinutes)
	}
	if !isFinite(c.BurnRate) || c.BurnRate < 0 {
		return invalid("burn rate", "must not be negative, got %v", c.BurnRate)
	}
	return nil
}

// FinishSession appends a completed session to cmd.Day. The recorded sets are
// copied so later edits to a draft never reach the ledger.
func FinishSession(s State, cmd FinishSessionCommand) (State, WorkoutSession, error) {
	if err := cmd.validate(); err != nil {
		return s, WorkoutSession{}, err
	}

	session := WorkoutSession{
		ID:              cmd.SessionID,
		RoutineID:       strings.TrimSpace(cmd.RoutineID),
		DurationMinutes: cmd.DurationMinutes,
		CaloriesBurned:  int(math.Round(cmd.DurationMinutes * cmd.BurnRate)),
		Exercises:       copyExercises(cmd.Exercises),
	}

	next := s.clone()
	next.FitnessHistory[cmd.Day] = prepend(s.FitnessHistory[cmd.Day], session)
	return next, session, nil
}

// DeleteSession removes the session with id from day. A missing id is a no-op.
func DeleteSession(s State, day DayKey, id string) (State, bool) {
	sessions := s.FitnessHistory[day]
	kept := make([]WorkoutSession, 0, len(sessions))
	for _, session := range sessions {
		if session.ID != id {
			kept = append(kept, session)
		}
	}
	if len(kept) == len(sessions) {
		return s, false
	}

	next := s.clone()
	next.FitnessHistory[day] = kept
	return next, true
}

func copyExercises(exercises map[string][]Set) map[string][]Set {
	copied := make(map[string][]Set, len(exercises))
	for name, sets := range exercises {
		copied[name] = append([]Set(nil), sets...)
	}
	return copied
}

func formatWeight(w float64) string {
	return strconv.FormatFloat(w, 'f', -1, 64)
}

func (s Set) String() string {
	return fmt.Sprintf("%sx%d", formatWeight(s.Weight), s.Reps)
}
