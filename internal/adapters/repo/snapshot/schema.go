package snapshot

import "fmt"

const currentSchemaVersion = 1

type snapshotSchema struct {
	Version        int                         `toml:"version"`
	Library        []catalogEntrySchema        `toml:"library"`
	Settings       map[string]string           `toml:"settings,omitempty"`
	History        map[string][]logEntrySchema `toml:"history,omitempty"`
	FitnessHistory map[string][]sessionSchema  `toml:"fitness_history,omitempty"`
}

func (s *snapshotSchema) applyDefaults() {
	if s.Version == 0 {
		s.Version = currentSchemaVersion
	}
}

func validateVersion(version int) error {
	if version > currentSchemaVersion {
		return fmt.Errorf("unsupported snapshot schema version %d (current %d)", version, currentSchemaVersion)
	}

	return nil
}

type catalogEntrySchema struct {
	ID               string  `toml:"id"`
	Name             string  `toml:"name"`
	Unit             string  `toml:"unit"`
	Carbs            float64 `toml:"carbs"`
	Protein          float64 `toml:"protein"`
	Fat              float64 `toml:"fat"`
	Fiber            float64 `toml:"fiber"`
	LastUsedAt       string  `toml:"last_used_at,omitempty"`
	LastLoggedAmount float64 `toml:"last_logged_amount,omitempty"`
}

type logEntrySchema struct {
	ID       string  `toml:"id"`
	Name     string  `toml:"name"`
	Amount   float64 `toml:"amount"`
	Unit     string  `toml:"unit"`
	Category string  `toml:"category,omitempty"`
	Carbs    float64 `toml:"carbs"`
	Protein  float64 `toml:"protein"`
	Fat      float64 `toml:"fat"`
	Fiber    float64 `toml:"fiber"`
}

type sessionSchema struct {
	ID              string                 `toml:"id"`
	RoutineID       string                 `toml:"routine"`
	DurationMinutes float64                `toml:"duration_minutes"`
	CaloriesBurned  int                    `toml:"calories_burned"`
	Exercises       map[string][]setSchema `toml:"exercises,omitempty"`
}

type setSchema struct {
	Weight     float64 `toml:"weight"`
	Reps       int     `toml:"reps"`
	Difficulty string  `toml:"difficulty"`
}

type draftSchema struct {
	Version   int                    `toml:"version"`
	RoutineID string                 `toml:"routine,omitempty"`
	Exercises map[string][]setSchema `toml:"exercises,omitempty"`
}
