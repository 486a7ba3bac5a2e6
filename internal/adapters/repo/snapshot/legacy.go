package snapshot

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/marquito38/meow-macros/internal/domain"
)

// Legacy browser exports are JSON with short macro keys on log entries,
// millisecond timestamps and numeric ids. Values typed into forms may arrive as
// strings.
type legacySnapshot struct {
	History        map[string][]legacyLogEntry `json:"history"`
	FitnessHistory map[string][]legacySession  `json:"fitnessHistory"`
	Library        []legacyCatalogEntry        `json:"library"`
	Settings       map[string]flexString       `json:"settings,omitempty"`
}

type legacyLogEntry struct {
	ID       flexString `json:"id"`
	Name     string     `json:"name"`
	Weight   flexNumber `json:"weight"`
	Measure  string     `json:"measure"`
	C        flexNumber `json:"c"`
	P        flexNumber `json:"p"`
	F        flexNumber `json:"f"`
	Fib      flexNumber `json:"fib"`
	Category string     `json:"category,omitempty"`
}

type legacySession struct {
	ID        flexString             `json:"id"`
	Routine   string                 `json:"routine"`
	Duration  flexNumber             `json:"duration"`
	Calories  flexNumber             `json:"calories"`
	Exercises map[string][]legacySet `json:"exercises"`
}

type legacySet struct {
	Weight     flexNumber `json:"weight"`
	Reps       flexNumber `json:"reps"`
	Difficulty string     `json:"difficulty"`
}

type legacyCatalogEntry struct {
	ID         flexString `json:"id"`
	Name       string     `json:"name"`
	Carbs      flexNumber `json:"carbs"`
	Protein    flexNumber `json:"protein"`
	Fat        flexNumber `json:"fat"`
	Fiber      flexNumber `json:"fiber"`
	Measure    string     `json:"measure"`
	LastUsed   flexNumber `json:"lastUsed,omitempty"`
	LastAmount flexNumber `json:"lastAmount,omitempty"`
}

type flexNumber float64

func (n *flexNumber) UnmarshalJSON(data []byte) error {
	var f float64
	if err := json.Unmarshal(data, &f); err == nil {
		*n = flexNumber(f)
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("expected number, got %s", data)
	}
	s = strings.TrimSpace(s)
	if s == "" {
		*n = 0
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("expected number, got %q", s)
	}
	*n = flexNumber(f)
	return nil
}

type flexString string

func (s *flexString) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err == nil {
		*s = flexString(str)
		return nil
	}

	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("expected string or number, got %s", data)
	}
	*s = flexString(strconv.FormatFloat(f, 'f', -1, 64))
	return nil
}

func decodeLegacy(data []byte) (snapshotSchema, error) {
	var legacy legacySnapshot
	dec := json.NewDecoder(bytes.NewReader(data))
	if err := dec.Decode(&legacy); err != nil {
		return snapshotSchema{}, fmt.Errorf("decode legacy snapshot: %w", err)
	}

	file := snapshotSchema{
		Version:        currentSchemaVersion,
		History:        make(map[string][]logEntrySchema, len(legacy.History)),
		FitnessHistory: make(map[string][]sessionSchema, len(legacy.FitnessHistory)),
	}

	if legacy.Settings != nil {
		file.Settings = make(map[string]string, len(legacy.Settings))
		for k, v := range legacy.Settings {
			file.Settings[k] = string(v)
		}
	}

	if legacy.Library != nil {
		file.Library = make([]catalogEntrySchema, 0, len(legacy.Library))
		for _, entry := range legacy.Library {
			converted := catalogEntrySchema{
				ID:               string(entry.ID),
				Name:             entry.Name,
				Unit:             entry.Measure,
				Carbs:            float64(entry.Carbs),
				Protein:          float64(entry.Protein),
				Fat:              float64(entry.Fat),
				Fiber:            float64(entry.Fiber),
				LastLoggedAmount: float64(entry.LastAmount),
			}
			if entry.LastUsed > 0 {
				converted.LastUsedAt = time.UnixMilli(int64(entry.LastUsed)).UTC().Format(time.RFC3339Nano)
			}
			file.Library = append(file.Library, converted)
		}
	}

	for day, entries := range legacy.History {
		converted := make([]logEntrySchema, 0, len(entries))
		for _, entry := range entries {
			converted = append(converted, logEntrySchema{
				ID:       string(entry.ID),
				Name:     entry.Name,
				Amount:   float64(entry.Weight),
				Unit:     entry.Measure,
				Category: entry.Category,
				Carbs:    float64(entry.C),
				Protein:  float64(entry.P),
				Fat:      float64(entry.F),
				Fiber:    float64(entry.Fib),
			})
		}
		file.History[day] = converted
	}

	for day, sessions := range legacy.FitnessHistory {
		converted := make([]sessionSchema, 0, len(sessions))
		for _, session := range sessions {
			exercises := make(map[string][]setSchema, len(session.Exercises))
			for name, sets := range session.Exercises {
				rows := make([]setSchema, 0, len(sets))
				for _, set := range sets {
					rows = append(rows, setSchema{
						Weight:     float64(set.Weight),
						Reps:       int(set.Reps),
						Difficulty: set.Difficulty,
					})
				}
				exercises[name] = rows
			}
			converted = append(converted, sessionSchema{
				ID:              string(session.ID),
				RoutineID:       session.Routine,
				DurationMinutes: float64(session.Duration),
				CaloriesBurned:  int(session.Calories),
				Exercises:       exercises,
			})
		}
		file.FitnessHistory[day] = converted
	}

	return file, nil
}

// EncodeLegacy renders state in the legacy JSON export layout.
func EncodeLegacy(state domain.State) ([]byte, error) {
	legacy := legacySnapshot{
		History:        make(map[string][]legacyLogEntry, len(state.History)),
		FitnessHistory: make(map[string][]legacySession, len(state.FitnessHistory)),
		Library:        make([]legacyCatalogEntry, 0, len(state.Library)),
	}

	if len(state.Settings) > 0 {
		legacy.Settings = make(map[string]flexString, len(state.Settings))
		for k, v := range state.Settings {
			legacy.Settings[k] = flexString(v)
		}
	}

	for _, entry := range state.Library {
		converted := legacyCatalogEntry{
			ID:         flexString(entry.ID),
			Name:       entry.Name,
			Carbs:      flexNumber(entry.Nutrients.Carbs),
			Protein:    flexNumber(entry.Nutrients.Protein),
			Fat:        flexNumber(entry.Nutrients.Fat),
			Fiber:      flexNumber(entry.Nutrients.Fiber),
			Measure:    string(entry.Unit),
			LastAmount: flexNumber(entry.LastLoggedAmount),
		}
		if !entry.LastUsedAt.IsZero() {
			converted.LastUsed = flexNumber(entry.LastUsedAt.UnixMilli())
		}
		legacy.Library = append(legacy.Library, converted)
	}

	for day, entries := range state.History {
		converted := make([]legacyLogEntry, 0, len(entries))
		for _, entry := range entries {
			converted = append(converted, legacyLogEntry{
				ID:       flexString(entry.ID),
				Name:     entry.Name,
				Weight:   flexNumber(entry.Amount),
				Measure:  string(entry.Unit),
				C:        flexNumber(entry.Nutrients.Carbs),
				P:        flexNumber(entry.Nutrients.Protein),
				F:        flexNumber(entry.Nutrients.Fat),
				Fib:      flexNumber(entry.Nutrients.Fiber),
				Category: entry.Category,
			})
		}
		legacy.History[string(day)] = converted
	}

	for day, sessions := range state.FitnessHistory {
		converted := make([]legacySession, 0, len(sessions))
		for _, session := range sessions {
			exercises := make(map[string][]legacySet, len(session.Exercises))
			for name, sets := range session.Exercises {
				rows := make([]legacySet, 0, len(sets))
				for _, set := range sets {
					rows = append(rows, legacySet{
						Weight:     flexNumber(set.Weight),
						Reps:       flexNumber(set.Reps),
						Difficulty: string(set.Difficulty),
					})
				}
				exercises[name] = rows
			}
			converted = append(converted, legacySession{
				ID:        flexString(session.ID),
				Routine:   session.RoutineID,
				Duration:  flexNumber(session.DurationMinutes),
				Calories:  flexNumber(session.CaloriesBurned),
				Exercises: exercises,
			})
		}
		legacy.FitnessHistory[string(day)] = converted
	}

	data, err := json.MarshalIndent(legacy, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode legacy snapshot: %w", err)
	}

	return data, nil
}
