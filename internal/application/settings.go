package application

import (
	"time"

	"github.com/marquito38/meow-macros/internal/domain"
)

// Settings are the tunable constants the tracker computes with.
type Settings struct {
	Goals             domain.Goals
	BMR               int
	BurnRatePerMinute float64
	RestDuration      time.Duration
	DefaultDifficulty domain.Difficulty
	RebaseNewEntries  bool
	RecentLimit       int
	TrendWindowDays   int
	Routines          []domain.Routine
	Seed              domain.Catalog
}

func DefaultSettings() Settings {
	return Settings{
		Goals:             domain.DefaultGoals(),
		BMR:               domain.DefaultBMR,
		BurnRatePerMinute: domain.DefaultBurnRate,
		RestDuration:      domain.DefaultRestSeconds * time.Second,
		DefaultDifficulty: domain.DifficultyNormal,
		RecentLimit:       domain.DefaultRecentSessions,
		TrendWindowDays:   domain.DefaultTrendWindow,
		Routines:          domain.DefaultRoutines(),
		Seed:              domain.StarterCatalog(),
	}
}

func (s Settings) withDefaults() Settings {
	defaults := DefaultSettings()
	if s.Goals == (domain.Goals{}) {
		s.Goals = defaults.Goals
	}
	if s.BMR <= 0 {
		s.BMR = defaults.BMR
	}
	if s.BurnRatePerMinute <= 0 {
		s.BurnRatePerMinute = defaults.BurnRatePerMinute
	}
	if s.RestDuration <= 0 {
		s.RestDuration = defaults.RestDuration
	}
	if s.DefaultDifficulty == "" {
		s.DefaultDifficulty = defaults.DefaultDifficulty
	}
	if s.RecentLimit <= 0 {
		s.RecentLimit = defaults.RecentLimit
	}
	if s.TrendWindowDays <= 0 {
		s.TrendWindowDays = defaults.TrendWindowDays
	}
	if s.Routines == nil {
		s.Routines = defaults.Routines
	}
	if s.Seed == nil {
		s.Seed = defaults.Seed
	}
	return s
}
