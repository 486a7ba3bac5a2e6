package application

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/marquito38/meow-macros/internal/domain"
	"github.com/marquito38/meow-macros/internal/ports"
)

var ErrNoRoutineSelected = errors.New("no routine selected")

// WorkoutRecorder keeps the in-progress workout draft and turns it into a
// ledger session on finish.
type WorkoutRecorder struct {
	tracker *TrackerService
	drafts  ports.DraftRepository
	mu      sync.Mutex
}

func NewWorkoutRecorder(tracker *TrackerService, drafts ports.DraftRepository) *WorkoutRecorder {
	return &WorkoutRecorder{tracker: tracker, drafts: drafts}
}

func (r *WorkoutRecorder) Draft(ctx context.Context) (domain.Draft, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.load(ctx)
}

func (r *WorkoutRecorder) load(ctx context.Context) (domain.Draft, error) {
	draft, err := r.drafts.LoadDraft(ctx)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return domain.Draft{}, ctxErr
		}
		if !errors.Is(err, domain.ErrCorruptState) {
			return domain.Draft{}, fmt.Errorf("load workout draft: %w", err)
		}
		logrus.WithError(err).Warn("discarding unreadable workout draft")
		draft = domain.Draft{}
	}
	if draft.Exercises == nil {
		draft.Exercises = map[string][]domain.Set{}
	}
	return draft, nil
}

// Start selects the routine being recorded. Sets already entered are kept.
func (r *WorkoutRecorder) Start(ctx context.Context, routineID string) (domain.Draft, error) {
	routine, err := r.tracker.Routine(routineID)
	if err != nil {
		return domain.Draft{}, fmt.Errorf("start workout: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	draft, err := r.load(ctx)
	if err != nil {
		return domain.Draft{}, err
	}
	draft.RoutineID = routine.ID

	if err := r.drafts.SaveDraft(ctx, draft); err != nil {
		return domain.Draft{}, fmt.Errorf("save workout draft: %w", err)
	}
	return draft, nil
}

func (r *WorkoutRecorder) RecordSet(ctx context.Context, cmd RecordSetCommand) (domain.Draft, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	draft, err := r.load(ctx)
	if err != nil {
		return domain.Draft{}, err
	}

	next, err := domain.RecordSet(draft, cmd.Exercise, cmd.SetIndex, domain.SetField(strings.ToLower(string(cmd.Field))), cmd.Value, r.tracker.Settings().DefaultDifficulty)
	if err != nil {
		return domain.Draft{}, fmt.Errorf("record set: %w", err)
	}

	if err := r.drafts.SaveDraft(ctx, next); err != nil {
		return domain.Draft{}, fmt.Errorf("save workout draft: %w", err)
	}
	return next, nil
}

// Finish appends the draft as a session and clears the draft. A draft that
// cannot be cleared afterwards is logged; the session is already saved.
func (r *WorkoutRecorder) Finish(ctx context.Context, cmd FinishWorkoutCommand) (domain.WorkoutSession, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	draft, err := r.load(ctx)
	if err != nil {
		return domain.WorkoutSession{}, err
	}

	routineID := strings.TrimSpace(cmd.RoutineID)
	if routineID == "" {
		routineID = draft.RoutineID
	}
	if routineID == "" {
		return domain.WorkoutSession{}, fmt.Errorf("finish workout: %w", ErrNoRoutineSelected)
	}
	if routine, err := r.tracker.Routine(routineID); err == nil {
		routineID = routine.ID
	}

	session, err := r.tracker.FinishSession(ctx, cmd.Day, routineID, cmd.DurationMinutes, draft.Exercises)
	if err != nil {
		return domain.WorkoutSession{}, err
	}

	if err := r.drafts.DeleteDraft(ctx); err != nil {
		logrus.WithError(err).Warn("workout saved but draft could not be cleared")
	}
	return session, nil
}

func (r *WorkoutRecorder) Discard(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.drafts.DeleteDraft(ctx); err != nil {
		return fmt.Errorf("discard workout draft: %w", err)
	}
	return nil
}

// Sheet lays out routineID (or the draft's routine) with the draft's sets and
// each exercise's previous performance. Exercises without entered sets show the
// routine's set count with default values.
func (r *WorkoutRecorder) Sheet(ctx context.Context, routineID string) (WorkoutSheet, error) {
	draft, err := r.Draft(ctx)
	if err != nil {
		return WorkoutSheet{}, err
	}

	if strings.TrimSpace(routineID) == "" {
		routineID = draft.RoutineID
	}
	if routineID == "" {
		return WorkoutSheet{}, ErrNoRoutineSelected
	}
	routine, err := r.tracker.Routine(routineID)
	if err != nil {
		return WorkoutSheet{}, err
	}

	defaultTag := r.tracker.Settings().DefaultDifficulty
	sheet := WorkoutSheet{Routine: routine}
	for _, exercise := range routine.Exercises {
		row := ExerciseRow{Exercise: exercise, Last: domain.NoPriorRecord}

		sets := append([]domain.Set(nil), draft.Exercises[exercise.Name]...)
		for len(sets) < exercise.Sets {
			sets = append(sets, domain.Set{Difficulty: defaultTag})
		}
		row.Sets = sets

		if perf, ok := r.tracker.LastPerformance(exercise.Name); ok {
			row.Last = perf.String()
			row.HasHistory = true
		}

		sheet.Rows = append(sheet.Rows, row)
	}
	sheet.Volume = domain.SessionVolume(draft.Exercises)

	return sheet, nil
}
