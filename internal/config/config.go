package config

import (
	"strings"

	"github.com/marquito38/meow-macros/internal/domain"
)

type Config struct {
	Store       StoreConfig       `mapstructure:"store"`
	Goals       GoalsConfig       `mapstructure:"goals"`
	Metabolism  MetabolismConfig  `mapstructure:"metabolism"`
	Training    TrainingConfig    `mapstructure:"training"`
	Catalog     CatalogConfig     `mapstructure:"catalog"`
	Log         LogConfig         `mapstructure:"log"`
	Routines    []RoutineConfig   `mapstructure:"routines" validate:"dive"`
	CatalogSeed []SeedEntryConfig `mapstructure:"catalog_seed" validate:"dive"`
}

type StoreConfig struct {
	Backend      string      `mapstructure:"backend" validate:"oneof=file redis memory"`
	Path         string      `mapstructure:"path" validate:"required_if=Backend file,required_if=Backend redis"`
	Key          string      `mapstructure:"key" validate:"required"`
	LegacyKey    string      `mapstructure:"legacy_key"`
	MemorySizeMB int         `mapstructure:"memory_size_mb" validate:"gte=0"`
	Redis        RedisConfig `mapstructure:"redis"`
}

type RedisConfig struct {
	Addr      string `mapstructure:"addr" validate:"omitempty,hostname_port"`
	Password  string `mapstructure:"password"`
	DB        int    `mapstructure:"db" validate:"gte=0,lte=15"`
	KeyPrefix string `mapstructure:"key_prefix"`
}

type GoalsConfig struct {
	Calories int     `mapstructure:"calories" validate:"gt=0"`
	Carbs    float64 `mapstructure:"carbs" validate:"gte=0"`
	Protein  float64 `mapstructure:"protein" validate:"gte=0"`
	Fat      float64 `mapstructure:"fat" validate:"gte=0"`
	Fiber    float64 `mapstructure:"fiber" validate:"gte=0"`
}

func (g GoalsConfig) Domain() domain.Goals {
	return domain.Goals{Calories: g.Calories, Carbs: g.Carbs, Protein: g.Protein, Fat: g.Fat, Fiber: g.Fiber}
}

type MetabolismConfig struct {
	BMR int `mapstructure:"bmr" validate:"gt=0"`
}

type TrainingConfig struct {
	BurnRatePerMinute float64 `mapstructure:"burn_rate_per_minute" validate:"gt=0"`
	RestSeconds       int     `mapstructure:"rest_seconds" validate:"gt=0"`
	DefaultDifficulty string  `mapstructure:"default_difficulty" validate:"difficulty"`
	RecentLimit       int     `mapstructure:"recent_limit" validate:"gt=0"`
}

func (t TrainingConfig) Difficulty() domain.Difficulty {
	tag, err := domain.ParseDifficulty(t.DefaultDifficulty)
	if err != nil {
		return domain.DifficultyNormal
	}
	return tag
}

type CatalogConfig struct {
	// RebaseNewEntries stores a food logged for the first time per reference
	// amount instead of keeping the entered values as-is.
	RebaseNewEntries bool `mapstructure:"rebase_new_entries"`
}

type LogConfig struct {
	Level string `mapstructure:"level" validate:"oneof=trace debug info warn warning error fatal panic"`
	File  string `mapstructure:"file"`
	JSON  bool   `mapstructure:"json"`
}

type RoutineConfig struct {
	ID        string                  `mapstructure:"id" validate:"required"`
	Name      string                  `mapstructure:"name" validate:"required"`
	Exercises []RoutineExerciseConfig `mapstructure:"exercises" validate:"required,min=1,dive"`
}

type RoutineExerciseConfig struct {
	Name   string `mapstructure:"name" validate:"required"`
	Sets   int    `mapstructure:"sets" validate:"gt=0"`
	Target string `mapstructure:"target"`
}

type SeedEntryConfig struct {
	ID      string  `mapstructure:"id"`
	Name    string  `mapstructure:"name" validate:"required"`
	Unit    string  `mapstructure:"unit" validate:"reference_unit"`
	Carbs   float64 `mapstructure:"carbs" validate:"gte=0"`
	Protein float64 `mapstructure:"protein" validate:"gte=0"`
	Fat     float64 `mapstructure:"fat" validate:"gte=0"`
	Fiber   float64 `mapstructure:"fiber" validate:"gte=0"`
}

// RoutineDefinitions returns the configured routines, or the built-in A/B split.
func (c Config) RoutineDefinitions() []domain.Routine {
	if len(c.Routines) == 0 {
		return domain.DefaultRoutines()
	}

	routines := make([]domain.Routine, 0, len(c.Routines))
	for _, r := range c.Routines {
		routine := domain.Routine{ID: strings.TrimSpace(r.ID), Name: r.Name}
		for _, ex := range r.Exercises {
			routine.Exercises = append(routine.Exercises, domain.RoutineExercise{Name: ex.Name, Sets: ex.Sets, Target: ex.Target})
		}
		routines = append(routines, routine)
	}
	return routines
}

// SeedCatalog returns the configured starter library, or the built-in one.
func (c Config) SeedCatalog() domain.Catalog {
	if len(c.CatalogSeed) == 0 {
		return domain.StarterCatalog()
	}

	seed := make(domain.Catalog, 0, len(c.CatalogSeed))
	for _, e := range c.CatalogSeed {
		unit, _ := domain.ParseReferenceUnit(e.Unit)
		seed = append(seed, domain.CatalogEntry{
			ID:        e.ID,
			Name:      strings.TrimSpace(e.Name),
			Unit:      unit,
			Nutrients: domain.Nutrients{Carbs: e.Carbs, Protein: e.Protein, Fat: e.Fat, Fiber: e.Fiber},
		})
	}
	return seed
}
