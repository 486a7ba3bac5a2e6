package application

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/marquito38/meow-macros/internal/domain"
	"github.com/marquito38/meow-macros/internal/ports"
)

// TrackerService owns the application state. Every mutation computes the next
// state, persists it, and only then makes it current and notifies subscribers.
type TrackerService struct {
	repo     ports.StateRepository
	clock    ports.Clock
	ids      ports.IDGenerator
	settings Settings

	mu    sync.RWMutex
	state domain.State
	today domain.DayKey

	subMu       sync.Mutex
	subscribers map[int]func(domain.State)
	nextSubID   int
}

func NewTrackerService(repo ports.StateRepository, clock ports.Clock, ids ports.IDGenerator, settings Settings) *TrackerService {
	if clock == nil {
		clock = ports.SystemClock{}
	}
	if ids == nil {
		ids = ports.UUIDGenerator{}
	}
	settings = settings.withDefaults()

	return &TrackerService{
		repo:        repo,
		clock:       clock,
		ids:         ids,
		settings:    settings,
		state:       domain.NewState(settings.Seed),
		today:       domain.DayKeyOf(clock.Now()),
		subscribers: map[int]func(domain.State){},
	}
}

// Load replaces the in-memory state with the persisted one. A failed or corrupt
// read is logged and leaves the default state in place; only a cancelled
// context is reported.
func (s *TrackerService) Load(ctx context.Context) error {
	loaded, err := s.repo.Load(ctx)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		logrus.WithError(err).Warn("could not load saved data; starting from defaults")
		loaded = domain.NewState(s.settings.Seed)
	}

	s.mu.Lock()
	s.state = loaded.WithDefaults(s.settings.Seed)
	s.today = domain.DayKeyOf(s.clock.Now())
	current := s.state
	s.mu.Unlock()

	s.notify(current)
	return nil
}

func (s *TrackerService) State() domain.State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

func (s *TrackerService) Settings() Settings {
	return s.settings
}

func (s *TrackerService) Today() domain.DayKey {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.today
}

// RefreshDay recomputes today's key from the clock and reports whether the
// calendar day changed since the last check.
func (s *TrackerService) RefreshDay() bool {
	day := domain.DayKeyOf(s.clock.Now())

	s.mu.Lock()
	changed := day != s.today
	s.today = day
	current := s.state
	s.mu.Unlock()

	if changed {
		logrus.WithField("day", day).Debug("calendar day changed")
		s.notify(current)
	}
	return changed
}

// Subscribe registers fn to receive every committed state. The returned func
// removes the subscription.
func (s *TrackerService) Subscribe(fn func(domain.State)) func() {
	s.subMu.Lock()
	defer s.subMu.Unlock()

	id := s.nextSubID
	s.nextSubID++
	s.subscribers[id] = fn

	return func() {
		s.subMu.Lock()
		defer s.subMu.Unlock()
		delete(s.subscribers, id)
	}
}

func (s *TrackerService) notify(state domain.State) {
	s.subMu.Lock()
	fns := make([]func(domain.State), 0, len(s.subscribers))
	for _, fn := range s.subscribers {
		fns = append(fns, fn)
	}
	s.subMu.Unlock()

	for _, fn := range fns {
		fn(state)
	}
}

// mutate serializes f against the current state and commits its result once it
// has been persisted. Nothing changes when f or the save fails.
func (s *TrackerService) mutate(ctx context.Context, action string, f func(domain.State) (domain.State, bool, error)) error {
	s.mu.Lock()
	next, changed, err := f(s.state)
	if err != nil {
		s.mu.Unlock()
		return err
	}
	if !changed {
		s.mu.Unlock()
		return nil
	}
	if err := s.repo.Save(ctx, next); err != nil {
		s.mu.Unlock()
		return fmt.Errorf("save %s: %w", action, err)
	}
	s.state = next
	s.mu.Unlock()

	logrus.WithField("action", action).Debug("state committed")
	s.notify(next)
	return nil
}

func (s *TrackerService) dayOrToday(day domain.DayKey) domain.DayKey {
	if day != "" {
		return day
	}
	return s.Today()
}

func (s *TrackerService) LogFood(ctx context.Context, cmd LogFoodCommand) (domain.LogEntry, error) {
	day := s.dayOrToday(cmd.Day)

	var logged domain.LogEntry
	err := s.mutate(ctx, "food log", func(state domain.State) (domain.State, bool, error) {
		_, known := state.Library.Lookup(strings.TrimSpace(cmd.Name))
		catalogID := ""
		if !known {
			catalogID = s.ids.NewID()
		}

		next, entry, err := domain.LogFood(state, domain.LogFoodCommand{
			Day:            day,
			EntryID:        s.ids.NewID(),
			Name:           cmd.Name,
			Amount:         cmd.Amount,
			Unit:           cmd.Unit,
			Category:       cmd.Category,
			Nutrients:      cmd.Nutrients,
			CatalogID:      catalogID,
			RebaseNewEntry: s.settings.RebaseNewEntries,
			At:             s.clock.Now(),
		})
		if err != nil {
			return state, false, err
		}
		if !known && !s.settings.RebaseNewEntries {
			logrus.WithFields(logrus.Fields{"name": entry.Name, "amount": entry.Amount}).
				Warn("new catalog entry stores the entered values per reference amount as-is")
		}

		logged = entry
		return next, true, nil
	})
	if err != nil {
		return domain.LogEntry{}, fmt.Errorf("log food: %w", err)
	}

	return logged, nil
}

func (s *TrackerService) DeleteFood(ctx context.Context, day domain.DayKey, id string) (bool, error) {
	day = s.dayOrToday(day)

	var removed bool
	err := s.mutate(ctx, "food delete", func(state domain.State) (domain.State, bool, error) {
		ids := make([]string, 0, len(state.History[day]))
		for _, entry := range state.History[day] {
			ids = append(ids, entry.ID)
		}
		next, ok := domain.DeleteFood(state, day, resolveID(ids, id))
		removed = ok
		return next, ok, nil
	})
	if err != nil {
		return false, fmt.Errorf("delete food: %w", err)
	}

	return removed, nil
}

// resolveID maps ref to one of ids. ref is the full id or, as printed in
// listings, a "#"-prefixed tail of it. An ambiguous tail resolves to nothing.
func resolveID(ids []string, ref string) string {
	ref = strings.TrimPrefix(strings.TrimSpace(ref), "#")
	if ref == "" {
		return ""
	}

	match := ""
	for _, id := range ids {
		if id == ref {
			return id
		}
		if strings.HasSuffix(id, ref) {
			if match != "" {
				return ""
			}
			match = id
		}
	}
	return match
}

func (s *TrackerService) UpsertCatalogEntry(ctx context.Context, cmd UpsertCatalogCommand) (domain.CatalogEntry, error) {
	var saved domain.CatalogEntry
	err := s.mutate(ctx, "catalog upsert", func(state domain.State) (domain.State, bool, error) {
		next, entry, err := domain.UpsertCatalogEntry(state, domain.UpsertCatalogCommand{
			ID:        s.ids.NewID(),
			Name:      cmd.Name,
			Unit:      cmd.Unit,
			Nutrients: cmd.Nutrients,
		})
		saved = entry
		return next, err == nil, err
	})
	if err != nil {
		return domain.CatalogEntry{}, fmt.Errorf("upsert catalog entry: %w", err)
	}

	return saved, nil
}

func (s *TrackerService) EditCatalogEntry(ctx context.Context, cmd EditCatalogCommand) (domain.CatalogEntry, error) {
	var edited domain.CatalogEntry
	err := s.mutate(ctx, "catalog edit", func(state domain.State) (domain.State, bool, error) {
		next, entry, err := domain.EditCatalogEntry(state, domain.EditCatalogCommand{
			Name:        cmd.Name,
			NewName:     cmd.NewName,
			Unit:        cmd.Unit,
			ServingSize: cmd.ServingSize,
			Nutrients:   cmd.Nutrients,
		})
		edited = entry
		return next, err == nil, err
	})
	if err != nil {
		return domain.CatalogEntry{}, fmt.Errorf("edit catalog entry: %w", err)
	}

	return edited, nil
}

// FinishSession appends a completed session for day with calories derived from
// the configured burn rate.
func (s *TrackerService) FinishSession(ctx context.Context, day domain.DayKey, routineID string, durationMinutes float64, exercises map[string][]domain.Set) (domain.WorkoutSession, error) {
	day = s.dayOrToday(day)

	var finished domain.WorkoutSession
	err := s.mutate(ctx, "workout finish", func(state domain.State) (domain.State, bool, error) {
		next, session, err := domain.FinishSession(state, domain.FinishSessionCommand{
			Day:             day,
			SessionID:       s.ids.NewID(),
			RoutineID:       routineID,
			DurationMinutes: durationMinutes,
			BurnRate:        s.settings.BurnRatePerMinute,
			Exercises:       exercises,
		})
		finished = session
		return next, err == nil, err
	})
	if err != nil {
		return domain.WorkoutSession{}, fmt.Errorf("finish workout: %w", err)
	}

	return finished, nil
}

func (s *TrackerService) DeleteSession(ctx context.Context, day domain.DayKey, id string) (bool, error) {
	day = s.dayOrToday(day)

	var removed bool
	err := s.mutate(ctx, "workout delete", func(state domain.State) (domain.State, bool, error) {
		ids := make([]string, 0, len(state.FitnessHistory[day]))
		for _, session := range state.FitnessHistory[day] {
			ids = append(ids, session.ID)
		}
		next, ok := domain.DeleteSession(state, day, resolveID(ids, id))
		removed = ok
		return next, ok, nil
	})
	if err != nil {
		return false, fmt.Errorf("delete workout: %w", err)
	}

	return removed, nil
}

func (s *TrackerService) SetSetting(ctx context.Context, key, value string) error {
	err := s.mutate(ctx, "setting", func(state domain.State) (domain.State, bool, error) {
		next, err := domain.WithSetting(state, key, value)
		return next, err == nil, err
	})
	if err != nil {
		return fmt.Errorf("set setting: %w", err)
	}

	return nil
}

// Replace swaps the whole state, as when importing an export.
func (s *TrackerService) Replace(ctx context.Context, state domain.State) error {
	err := s.mutate(ctx, "import", func(domain.State) (domain.State, bool, error) {
		return state.WithDefaults(s.settings.Seed), true, nil
	})
	if err != nil {
		return fmt.Errorf("replace state: %w", err)
	}

	return nil
}

func (s *TrackerService) Summary(day domain.DayKey) domain.DailySummary {
	return domain.SummarizeDay(s.State(), s.dayOrToday(day), s.settings.Goals)
}

// Catalog lists entries matching query (all when empty), most recently used first.
func (s *TrackerService) Catalog(query string) []CatalogItem {
	matches := s.State().Library.Search(query)

	items := make([]CatalogItem, 0, len(matches))
	for _, entry := range matches {
		items = append(items, CatalogItem{Entry: entry, PrefillAmount: entry.PrefillAmount()})
	}
	return items
}

func (s *TrackerService) CatalogEntry(name string) (domain.CatalogEntry, error) {
	entry, ok := s.State().Library.Lookup(name)
	if !ok {
		return domain.CatalogEntry{}, fmt.Errorf("%w: %q", domain.ErrCatalogEntryNotFound, name)
	}
	return entry, nil
}

func (s *TrackerService) LastPerformance(exercise string) (domain.Performance, bool) {
	return domain.LastPerformance(s.State(), exercise)
}

func (s *TrackerService) RecentSessions(limit int) []domain.SessionSummary {
	if limit <= 0 {
		limit = s.settings.RecentLimit
	}
	return domain.RecentSessions(s.State(), limit, s.settings.Routines)
}

func (s *TrackerService) Trends(windowDays int) domain.Series {
	if windowDays <= 0 {
		windowDays = s.settings.TrendWindowDays
	}
	return domain.BuildSeries(s.State(), s.Today(), windowDays, s.settings.BMR)
}

func (s *TrackerService) Routine(id string) (domain.Routine, error) {
	return domain.FindRoutine(s.settings.Routines, id)
}
