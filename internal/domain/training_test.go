package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordSetDenseFill(t *testing.T) {
	d, err := RecordSet(Draft{RoutineID: "A"}, "DB Incline Bench", 2, SetFieldWeight, "22.5", DifficultyNormal)
	require.NoError(t, err)

	sets := d.Exercises["DB Incline Bench"]
	require.Len(t, sets, 3)
	assert.Equal(t, Set{Difficulty: DifficultyNormal}, sets[0])
	assert.Equal(t, Set{Difficulty: DifficultyNormal}, sets[1])
	assert.Equal(t, Set{Weight: 22.5, Difficulty: DifficultyNormal}, sets[2])
	assert.Equal(t, "A", d.RoutineID)
}

func TestRecordSetFields(t *testing.T) {
	d := Draft{}
	var err error

	d, err = RecordSet(d, "Bicep Curls", 0, SetFieldWeight, "12", DifficultyNormal)
	require.NoError(t, err)
	d, err = RecordSet(d, "Bicep Curls", 0, SetFieldReps, "10", DifficultyNormal)
	require.NoError(t, err)
	d, err = RecordSet(d, "Bicep Curls", 0, SetFieldDifficulty, "hard", DifficultyNormal)
	require.NoError(t, err)

	assert.Equal(t, []Set{{Weight: 12, Reps: 10, Difficulty: DifficultyHard}}, d.Exercises["Bicep Curls"])
}

func TestRecordSetDoesNotMutateInput(t *testing.T) {
	before, err := RecordSet(Draft{}, "Row/Pulldown", 0, SetFieldReps, "8", DifficultyNormal)
	require.NoError(t, err)

	after, err := RecordSet(before, "Row/Pulldown", 0, SetFieldReps, "10", DifficultyNormal)
	require.NoError(t, err)

	assert.Equal(t, 8, before.Exercises["Row/Pulldown"][0].Reps)
	assert.Equal(t, 10, after.Exercises["Row/Pulldown"][0].Reps)
}

func TestRecordSetRejectsBadValues(t *testing.T) {
	tests := []struct {
		name  string
		field SetField
		value string
		index int
	}{
		{name: "weight not a number", field: SetFieldWeight, value: "heavy"},
		{name: "negative weight", field: SetFieldWeight, value: "-5"},
		{name: "fractional reps", field: SetFieldReps, value: "8.5"},
		{name: "unknown tag", field: SetFieldDifficulty, value: "meh"},
		{name: "unknown field", field: SetField("tempo"), value: "3"},
		{name: "negative index", field: SetFieldReps, value: "3", index: -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := Draft{}
			next, err := RecordSet(d, "Lateral Raises", tt.index, tt.field, tt.value, DifficultyNormal)
			require.ErrorIs(t, err, ErrInvalidInput)
			assert.Equal(t, d, next)
		})
	}
}

func TestFinishSessionCaloriesAndVolume(t *testing.T) {
	sets := map[string][]Set{
		"DB Incline Bench": {
			{Weight: 100, Reps: 8, Difficulty: DifficultyNormal},
			{Weight: 100, Reps: 8, Difficulty: DifficultyNormal},
			{Weight: 90, Reps: 10, Difficulty: DifficultyHard},
		},
	}

	s, session, err := FinishSession(NewState(nil), FinishSessionCommand{
		Day: testDay, SessionID: "s1", RoutineID: "A", DurationMinutes: 45, BurnRate: DefaultBurnRate, Exercises: sets,
	})
	require.NoError(t, err)

	assert.Equal(t, 270, session.CaloriesBurned)
	assert.Equal(t, 2500.0, session.Volume())
	require.Len(t, s.FitnessHistory[testDay], 1)

	sets["DB Incline Bench"][0].Weight = 1
	assert.Equal(t, 100.0, s.FitnessHistory[testDay][0].Exercises["DB Incline Bench"][0].Weight, "session keeps its own copy")
}

func TestFinishSessionPrependsAndValidates(t *testing.T) {
	s := NewState(nil)
	var err error

	s, _, err = FinishSession(s, FinishSessionCommand{Day: testDay, SessionID: "s1", RoutineID: "A", DurationMinutes: 30, BurnRate: 6})
	require.NoError(t, err)
	s, _, err = FinishSession(s, FinishSessionCommand{Day: testDay, SessionID: "s2", RoutineID: "B", DurationMinutes: 30, BurnRate: 6})
	require.NoError(t, err)

	assert.Equal(t, "s2", s.FitnessHistory[testDay][0].ID)

	_, _, err = FinishSession(s, FinishSessionCommand{Day: testDay, RoutineID: "A", DurationMinutes: -1, BurnRate: 6})
	require.ErrorIs(t, err, ErrInvalidInput)

	_, _, err = FinishSession(s, FinishSessionCommand{Day: testDay, DurationMinutes: 10, BurnRate: 6})
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestDeleteSession(t *testing.T) {
	s, _, err := FinishSession(NewState(nil), FinishSessionCommand{Day: testDay, SessionID: "s1", RoutineID: "A", DurationMinutes: 30, BurnRate: 6})
	require.NoError(t, err)

	same, removed := DeleteSession(s, testDay, "nope")
	assert.False(t, removed)
	assert.Equal(t, s, same)

	next, removed := DeleteSession(s, testDay, "s1")
	assert.True(t, removed)
	assert.Empty(t, next.FitnessHistory[testDay])
	assert.Len(t, s.FitnessHistory[testDay], 1)
}

func TestLastPerformance(t *testing.T) {
	s := NewState(nil)
	s.FitnessHistory["2026-03-10"] = []WorkoutSession{
		{ID: "old", Exercises: map[string][]Set{"Bicep Curls": {{Weight: 10, Reps: 12}}}},
	}
	s.FitnessHistory["2026-03-12"] = []WorkoutSession{
		{ID: "newer-other", Exercises: map[string][]Set{"Row/Pulldown": {{Weight: 50, Reps: 8}}}},
		{ID: "newer", Exercises: map[string][]Set{"Bicep Curls": {
			{Weight: 100, Reps: 8}, {Weight: 100, Reps: 8}, {Weight: 90, Reps: 10},
		}}},
	}

	perf, ok := LastPerformance(s, "Bicep Curls")
	require.True(t, ok)
	assert.Equal(t, DayKey("2026-03-12"), perf.Day)
	assert.Equal(t, "newer", perf.SessionID)
	assert.Equal(t, "100x8, 100x8, 90x10", perf.String())

	_, ok = LastPerformance(s, "Tricep Ext.")
	assert.False(t, ok)
}

func TestLastPerformanceMatchesExerciseWithoutSets(t *testing.T) {
	s := NewState(nil)
	s.FitnessHistory["2026-03-10"] = []WorkoutSession{
		{ID: "old", Exercises: map[string][]Set{"Bicep Curls": {{Weight: 10, Reps: 12}}}},
	}
	s.FitnessHistory["2026-03-12"] = []WorkoutSession{
		{ID: "imported", Exercises: map[string][]Set{"Bicep Curls": {}}},
	}

	perf, ok := LastPerformance(s, "Bicep Curls")
	require.True(t, ok)
	assert.Equal(t, "imported", perf.SessionID)
	assert.Equal(t, DayKey("2026-03-12"), perf.Day)
	assert.Empty(t, perf.String())
}

func TestSetStringFormatsFractionalWeight(t *testing.T) {
	assert.Equal(t, "22.5x6", Set{Weight: 22.5, Reps: 6}.String())
	assert.Equal(t, "0x0", Set{}.String())
}

func TestFindRoutine(t *testing.T) {
	r, err := FindRoutine(DefaultRoutines(), "b")
	require.NoError(t, err)
	assert.Equal(t, "Workout B (Pull Focus)", r.Name)
	assert.Len(t, r.Exercises, 4)

	_, err = FindRoutine(DefaultRoutines(), "C")
	require.ErrorIs(t, err, ErrRoutineNotFound)
	require.ErrorIs(t, err, ErrNotFound)

	assert.Equal(t, UnknownRoutineName, RoutineName(DefaultRoutines(), "C"))
	assert.Equal(t, "Workout A (Push Focus)", RoutineName(DefaultRoutines(), "a"))
}
