package snapshot

import (
	"bytes"
	"fmt"
	"math"
	"time"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/sirupsen/logrus"

	"github.com/marquito38/meow-macros/internal/domain"
)

// Encode renders state as a versioned TOML document.
func Encode(state domain.State) ([]byte, error) {
	file := toSchema(state)
	file.applyDefaults()

	data, err := toml.Marshal(file)
	if err != nil {
		return nil, fmt.Errorf("encode snapshot: %w", err)
	}

	return data, nil
}

// Decode accepts either the TOML snapshot or a legacy JSON export. Missing
// collections are filled from seed; malformed records are repaired in place.
func Decode(data []byte, seed domain.Catalog) (domain.State, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return domain.NewState(seed), nil
	}

	var (
		file snapshotSchema
		err  error
	)
	if trimmed[0] == '{' {
		file, err = decodeLegacy(trimmed)
	} else {
		err = toml.Unmarshal(trimmed, &file)
	}
	if err != nil {
		return domain.State{}, fmt.Errorf("%w: %w", domain.ErrCorruptState, err)
	}
	if err := validateVersion(file.Version); err != nil {
		return domain.State{}, fmt.Errorf("%w: %w", domain.ErrCorruptState, err)
	}

	var r repairs
	state := fromSchema(file, &r).WithDefaults(seed)
	if r.count > 0 {
		logrus.WithField("repaired", r.count).Warn("snapshot contained malformed records; defaults applied")
	}

	return state, nil
}

func EncodeDraft(draft domain.Draft) ([]byte, error) {
	file := draftSchema{
		Version:   currentSchemaVersion,
		RoutineID: draft.RoutineID,
		Exercises: toSetsSchema(draft.Exercises),
	}

	data, err := toml.Marshal(file)
	if err != nil {
		return nil, fmt.Errorf("encode draft: %w", err)
	}

	return data, nil
}

func DecodeDraft(data []byte) (domain.Draft, error) {
	var file draftSchema
	if err := toml.Unmarshal(data, &file); err != nil {
		return domain.Draft{}, fmt.Errorf("%w: decode draft: %w", domain.ErrCorruptState, err)
	}
	if err := validateVersion(file.Version); err != nil {
		return domain.Draft{}, fmt.Errorf("%w: %w", domain.ErrCorruptState, err)
	}

	var r repairs
	return domain.Draft{RoutineID: file.RoutineID, Exercises: fromSetsSchema(file.Exercises, &r)}, nil
}

type repairs struct {
	count int
}

func (r *repairs) amount(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		r.count++
		return 0
	}
	return v
}

func (r *repairs) unit(raw string) domain.ReferenceUnit {
	unit, err := domain.ParseReferenceUnit(raw)
	if err != nil {
		r.count++
		return domain.UnitMass
	}
	return unit
}

func (r *repairs) difficulty(raw string) domain.Difficulty {
	tag, err := domain.ParseDifficulty(raw)
	if err != nil {
		r.count++
		return domain.DifficultyNormal
	}
	return tag
}

func (r *repairs) nutrients(carbs, protein, fat, fiber float64) domain.Nutrients {
	return domain.Nutrients{
		Carbs:   r.amount(carbs),
		Protein: r.amount(protein),
		Fat:     r.amount(fat),
		Fiber:   r.amount(fiber),
	}
}

func toSchema(state domain.State) snapshotSchema {
	file := snapshotSchema{
		Version:        currentSchemaVersion,
		Library:        make([]catalogEntrySchema, 0, len(state.Library)),
		Settings:       state.Settings,
		History:        make(map[string][]logEntrySchema, len(state.History)),
		FitnessHistory: make(map[string][]sessionSchema, len(state.FitnessHistory)),
	}

	for _, entry := range state.Library {
		encoded := catalogEntrySchema{
			ID:               entry.ID,
			Name:             entry.Name,
			Unit:             string(entry.Unit),
			Carbs:            entry.Nutrients.Carbs,
			Protein:          entry.Nutrients.Protein,
			Fat:              entry.Nutrients.Fat,
			Fiber:            entry.Nutrients.Fiber,
			LastLoggedAmount: entry.LastLoggedAmount,
		}
		if !entry.LastUsedAt.IsZero() {
			encoded.LastUsedAt = entry.LastUsedAt.Format(time.RFC3339Nano)
		}
		file.Library = append(file.Library, encoded)
	}

	for day, entries := range state.History {
		if len(entries) == 0 {
			continue
		}
		encoded := make([]logEntrySchema, 0, len(entries))
		for _, entry := range entries {
			encoded = append(encoded, logEntrySchema{
				ID:       entry.ID,
				Name:     entry.Name,
				Amount:   entry.Amount,
				Unit:     string(entry.Unit),
				Category: entry.Category,
				Carbs:    entry.Nutrients.Carbs,
				Protein:  entry.Nutrients.Protein,
				Fat:      entry.Nutrients.Fat,
				Fiber:    entry.Nutrients.Fiber,
			})
		}
		file.History[string(day)] = encoded
	}

	for day, sessions := range state.FitnessHistory {
		if len(sessions) == 0 {
			continue
		}
		encoded := make([]sessionSchema, 0, len(sessions))
		for _, session := range sessions {
			encoded = append(encoded, sessionSchema{
				ID:              session.ID,
				RoutineID:       session.RoutineID,
				DurationMinutes: session.DurationMinutes,
				CaloriesBurned:  session.CaloriesBurned,
				Exercises:       toSetsSchema(session.Exercises),
			})
		}
		file.FitnessHistory[string(day)] = encoded
	}

	return file
}

func fromSchema(file snapshotSchema, r *repairs) domain.State {
	state := domain.State{
		History:        make(map[domain.DayKey][]domain.LogEntry, len(file.History)),
		FitnessHistory: make(map[domain.DayKey][]domain.WorkoutSession, len(file.FitnessHistory)),
		Settings:       file.Settings,
	}

	if file.Library != nil {
		state.Library = make(domain.Catalog, 0, len(file.Library))
		for _, entry := range file.Library {
			decoded := domain.CatalogEntry{
				ID:               entry.ID,
				Name:             entry.Name,
				Unit:             r.unit(entry.Unit),
				Nutrients:        r.nutrients(entry.Carbs, entry.Protein, entry.Fat, entry.Fiber),
				LastLoggedAmount: r.amount(entry.LastLoggedAmount),
			}
			if entry.LastUsedAt != "" {
				usedAt, err := time.Parse(time.RFC3339Nano, entry.LastUsedAt)
				if err != nil {
					r.count++
				} else {
					decoded.LastUsedAt = usedAt
				}
			}
			state.Library = append(state.Library, decoded)
		}
	}

	for day, entries := range file.History {
		key, err := domain.ParseDayKey(day)
		if err != nil {
			r.count++
			continue
		}
		decoded := make([]domain.LogEntry, 0, len(entries))
		for _, entry := range entries {
			decoded = append(decoded, domain.LogEntry{
				ID:        entry.ID,
				Name:      entry.Name,
				Amount:    r.amount(entry.Amount),
				Unit:      r.unit(entry.Unit),
				Category:  entry.Category,
				Nutrients: r.nutrients(entry.Carbs, entry.Protein, entry.Fat, entry.Fiber),
			})
		}
		state.History[key] = decoded
	}

	for day, sessions := range file.FitnessHistory {
		key, err := domain.ParseDayKey(day)
		if err != nil {
			r.count++
			continue
		}
		decoded := make([]domain.WorkoutSession, 0, len(sessions))
		for _, session := range sessions {
			calories := session.CaloriesBurned
			if calories < 0 {
				r.count++
				calories = 0
			}
			decoded = append(decoded, domain.WorkoutSession{
				ID:              session.ID,
				RoutineID:       session.RoutineID,
				DurationMinutes: r.amount(session.DurationMinutes),
				CaloriesBurned:  calories,
				Exercises:       fromSetsSchema(session.Exercises, r),
			})
		}
		state.FitnessHistory[key] = decoded
	}

	return state
}

func toSetsSchema(exercises map[string][]domain.Set) map[string][]setSchema {
	if len(exercises) == 0 {
		return nil
	}

	encoded := make(map[string][]setSchema, len(exercises))
	for name, sets := range exercises {
		rows := make([]setSchema, 0, len(sets))
		for _, set := range sets {
			rows = append(rows, setSchema{Weight: set.Weight, Reps: set.Reps, Difficulty: string(set.Difficulty)})
		}
		encoded[name] = rows
	}
	return encoded
}

func fromSetsSchema(exercises map[string][]setSchema, r *repairs) map[string][]domain.Set {
	decoded := make(map[string][]domain.Set, len(exercises))
	for name, rows := range exercises {
		sets := make([]domain.Set, 0, len(rows))
		for _, row := range rows {
			reps := row.Reps
			if reps < 0 {
				r.count++
				reps = 0
			}
			sets = append(sets, domain.Set{
				Weight:     r.amount(row.Weight),
				Reps:       reps,
				Difficulty: r.difficulty(row.Difficulty),
			})
		}
		decoded[name] = sets
	}
	return decoded
}
