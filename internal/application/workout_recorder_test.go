package application

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/marquito38/meow-macros/internal/domain"
	"github.com/marquito38/meow-macros/internal/ports/mocks"
)

func newMemoryRecorder(t *testing.T) (*WorkoutRecorder, *TrackerService) {
	t.Helper()

	tracker, repo := newMemoryTracker(t)
	return NewWorkoutRecorder(tracker, repo), tracker
}

func recordSets(t *testing.T, recorder *WorkoutRecorder, exercise string, sets ...domain.Set) {
	t.Helper()

	ctx := context.Background()
	for i, set := range sets {
		_, err := recorder.RecordSet(ctx, RecordSetCommand{Exercise: exercise, SetIndex: i, Field: domain.SetFieldWeight, Value: strconv.FormatFloat(set.Weight, 'f', -1, 64)})
		require.NoError(t, err)
		_, err = recorder.RecordSet(ctx, RecordSetCommand{Exercise: exercise, SetIndex: i, Field: domain.SetFieldReps, Value: strconv.Itoa(set.Reps)})
		require.NoError(t, err)
	}
}

func TestWorkoutRecorderDraftSurvivesReload(t *testing.T) {
	recorder, tracker := newMemoryRecorder(t)
	ctx := context.Background()

	_, err := recorder.Start(ctx, "a")
	require.NoError(t, err)
	_, err = recorder.RecordSet(ctx, RecordSetCommand{Exercise: "Lateral Raises", SetIndex: 2, Field: domain.SetFieldDifficulty, Value: "hard"})
	require.NoError(t, err)

	reopened := NewWorkoutRecorder(tracker, recorder.drafts)
	draft, err := reopened.Draft(ctx)
	require.NoError(t, err)

	assert.Equal(t, "A", draft.RoutineID)
	assert.Equal(t, []domain.Set{
		{Difficulty: domain.DifficultyNormal},
		{Difficulty: domain.DifficultyNormal},
		{Difficulty: domain.DifficultyHard},
	}, draft.Exercises["Lateral Raises"])
}

func TestWorkoutRecorderFinishAppendsSessionAndClearsDraft(t *testing.T) {
	recorder, tracker := newMemoryRecorder(t)
	ctx := context.Background()

	_, err := recorder.Start(ctx, "A")
	require.NoError(t, err)
	recordSets(t, recorder, "DB Incline Bench", domain.Set{Weight: 25, Reps: 10}, domain.Set{Weight: 25, Reps: 10})
	recordSets(t, recorder, "DB Goblet Squats", domain.Set{Weight: 25, Reps: 80})

	session, err := recorder.Finish(ctx, FinishWorkoutCommand{DurationMinutes: 45})
	require.NoError(t, err)
	assert.Equal(t, "A", session.RoutineID)
	assert.Equal(t, 270, session.CaloriesBurned)
	assert.InDelta(t, 2500, session.Volume(), 1e-9)

	sessions := tracker.State().FitnessHistory[testDay]
	require.Len(t, sessions, 1)
	assert.Equal(t, session, sessions[0])

	draft, err := recorder.Draft(ctx)
	require.NoError(t, err)
	assert.True(t, draft.Empty())
	assert.Empty(t, draft.RoutineID)

	perf, ok := tracker.LastPerformance("DB Incline Bench")
	require.True(t, ok)
	assert.Equal(t, "25x10, 25x10", perf.String())
}

func TestWorkoutRecorderFinishRequiresRoutine(t *testing.T) {
	recorder, _ := newMemoryRecorder(t)

	_, err := recorder.Finish(context.Background(), FinishWorkoutCommand{DurationMinutes: 10})
	require.ErrorIs(t, err, ErrNoRoutineSelected)
}

func TestWorkoutRecorderRejectsBadSetValue(t *testing.T) {
	recorder, _ := newMemoryRecorder(t)

	_, err := recorder.RecordSet(context.Background(), RecordSetCommand{Exercise: "Row/Pulldown", Field: domain.SetFieldReps, Value: "many"})
	require.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = recorder.Start(context.Background(), "Z")
	require.ErrorIs(t, err, domain.ErrRoutineNotFound)
}

func TestWorkoutRecorderSheetShowsHistory(t *testing.T) {
	recorder, tracker := newMemoryRecorder(t)
	ctx := context.Background()

	_, err := tracker.FinishSession(ctx, testDay.AddDays(-3), "B", 40, map[string][]domain.Set{
		"Row/Pulldown": {{Weight: 50, Reps: 10}, {Weight: 52.5, Reps: 8}},
	})
	require.NoError(t, err)
	recordSets(t, recorder, "Row/Pulldown", domain.Set{Weight: 55, Reps: 6})

	sheet, err := recorder.Sheet(ctx, "B")
	require.NoError(t, err)
	assert.Equal(t, "B", sheet.Routine.ID)
	require.Len(t, sheet.Rows, len(sheet.Routine.Exercises))

	var row ExerciseRow
	for _, candidate := range sheet.Rows {
		if candidate.Exercise.Name == "Row/Pulldown" {
			row = candidate
		}
		if candidate.Exercise.Name == "DB Romanian DL" {
			assert.Equal(t, domain.NoPriorRecord, candidate.Last)
			assert.False(t, candidate.HasHistory)
			assert.Len(t, candidate.Sets, 3)
		}
	}
	assert.True(t, row.HasHistory)
	assert.Equal(t, "50x10, 52.5x8", row.Last)
	require.Len(t, row.Sets, 3)
	assert.Equal(t, 55.0, row.Sets[0].Weight)
	assert.InDelta(t, 330, sheet.Volume, 1e-9)

	_, err = recorder.Sheet(ctx, "")
	require.ErrorIs(t, err, ErrNoRoutineSelected)
}

func TestWorkoutRecorderFinishKeepsSessionWhenDraftDeleteFails(t *testing.T) {
	tracker, _ := newMemoryTracker(t)
	drafts := mocks.NewMockDraftRepository(t)
	recorder := NewWorkoutRecorder(tracker, drafts)

	drafts.EXPECT().LoadDraft(mockAnyContext()).Return(domain.Draft{
		RoutineID: "B",
		Exercises: map[string][]domain.Set{"Hammer Curls": {{Weight: 12, Reps: 10}}},
	}, nil).Once()
	drafts.EXPECT().DeleteDraft(mockAnyContext()).Return(errors.New("store offline")).Once()

	session, err := recorder.Finish(context.Background(), FinishWorkoutCommand{DurationMinutes: 20})
	require.NoError(t, err)
	assert.Equal(t, "B", session.RoutineID)
	assert.Len(t, tracker.State().FitnessHistory[testDay], 1)
}

func TestWorkoutRecorderDropsCorruptDraft(t *testing.T) {
	tracker, _ := newMemoryTracker(t)
	drafts := mocks.NewMockDraftRepository(t)
	recorder := NewWorkoutRecorder(tracker, drafts)

	drafts.EXPECT().LoadDraft(mockAnyContext()).Return(domain.Draft{}, domain.ErrCorruptState).Once()
	drafts.EXPECT().SaveDraft(mockAnyContext(), mock.MatchedBy(func(d domain.Draft) bool {
		return len(d.Exercises["Tricep Ext."]) == 1
	})).Return(nil).Once()

	_, err := recorder.RecordSet(context.Background(), RecordSetCommand{Exercise: "Tricep Ext.", Field: domain.SetFieldWeight, Value: "15"})
	require.NoError(t, err)
}

func TestWorkoutRecorderDiscard(t *testing.T) {
	tracker, _ := newMemoryTracker(t)
	drafts := mocks.NewMockDraftRepository(t)
	recorder := NewWorkoutRecorder(tracker, drafts)

	storeErr := errors.New("store offline")
	drafts.EXPECT().DeleteDraft(mockAnyContext()).Return(nil).Once()
	drafts.EXPECT().DeleteDraft(mockAnyContext()).Return(storeErr).Once()

	require.NoError(t, recorder.Discard(context.Background()))
	require.ErrorIs(t, recorder.Discard(context.Background()), storeErr)
}
