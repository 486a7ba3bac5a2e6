package domain

// State is the whole persisted application state. Mutations never modify a State
// in place; they return a new value sharing unchanged day lists.
type State struct {
	History        map[DayKey][]LogEntry
	FitnessHistory map[DayKey][]WorkoutSession
	Library        Catalog
	Settings       map[string]string
}

func NewState(seed Catalog) State {
	library := make(Catalog, len(seed))
	copy(library, seed)

	return State{
		History:        map[DayKey][]LogEntry{},
		FitnessHistory: map[DayKey][]WorkoutSession{},
		Library:        library,
		Settings:       map[string]string{},
	}
}

// WithDefaults fills every missing collection. A missing library falls back to seed.
func (s State) WithDefaults(seed Catalog) State {
	if s.History == nil {
		s.History = map[DayKey][]LogEntry{}
	}
	if s.FitnessHistory == nil {
		s.FitnessHistory = map[DayKey][]WorkoutSession{}
	}
	if s.Library == nil {
		s.Library = make(Catalog, len(seed))
		copy(s.Library, seed)
	}
	if s.Settings == nil {
		s.Settings = map[string]string{}
	}
	return s
}

func (s State) clone() State {
	next := State{
		History:        make(map[DayKey][]LogEntry, len(s.History)),
		FitnessHistory: make(map[DayKey][]WorkoutSession, len(s.FitnessHistory)),
		Library:        make(Catalog, len(s.Library)),
		Settings:       make(map[string]string, len(s.Settings)),
	}
	for day, entries := range s.History {
		next.History[day] = entries
	}
	for day, sessions := range s.FitnessHistory {
		next.FitnessHistory[day] = sessions
	}
	copy(next.Library, s.Library)
	for k, v := range s.Settings {
		next.Settings[k] = v
	}
	return next
}

// WithSetting stores a free-form setting.
func WithSetting(s State, key, value string) (State, error) {
	if key == "" {
		return s, invalid("setting key", "is required")
	}
	next := s.clone()
	next.Settings[key] = value
	return next, nil
}
