package cmd

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	summaryrender "github.com/marquito38/meow-macros/internal/adapters/render/summary"
	trendsrender "github.com/marquito38/meow-macros/internal/adapters/render/trends"
	workoutrender "github.com/marquito38/meow-macros/internal/adapters/render/workout"
	"github.com/marquito38/meow-macros/internal/adapters/repo/snapshot"
	chainstore "github.com/marquito38/meow-macros/internal/adapters/store/chain"
	filestore "github.com/marquito38/meow-macros/internal/adapters/store/file"
	memorystore "github.com/marquito38/meow-macros/internal/adapters/store/memory"
	redisstore "github.com/marquito38/meow-macros/internal/adapters/store/redis"
	"github.com/marquito38/meow-macros/internal/application"
	"github.com/marquito38/meow-macros/internal/config"
	"github.com/marquito38/meow-macros/internal/domain"
	"github.com/marquito38/meow-macros/internal/logging"
	"github.com/marquito38/meow-macros/internal/ports"
)

const redisDialTimeout = 2 * time.Second

type app struct {
	cfg      *config.Config
	tracker  *application.TrackerService
	recorder *application.WorkoutRecorder
	closers  []func() error

	summaryRenderer func(domain.DailySummary, summaryrender.RenderOptions) (string, error)
	trendsRenderer  func(application.TrendReport) (string, error)
	sheetRenderer   func(application.WorkoutSheet) (string, error)
}

func wireApp(stderr io.Writer) (*app, error) {
	cfg, err := config.Load(viper.New())
	if err != nil {
		return nil, err
	}

	logging.Setup(logging.LoggerSetupParams{
		LogFileName:   cfg.Log.File,
		LogLevel:      cfg.Log.Level,
		LogFormatJSON: cfg.Log.JSON,
		Stderr:        stderr,
	})

	ctx := context.Background()
	store, closeStore, err := wireStore(ctx, cfg.Store)
	if err != nil {
		return nil, fmt.Errorf("wire store: %w", err)
	}

	var legacyKeys []string
	if cfg.Store.LegacyKey != "" && cfg.Store.LegacyKey != cfg.Store.Key {
		legacyKeys = append(legacyKeys, cfg.Store.LegacyKey)
	}
	seed := cfg.SeedCatalog()
	repo, err := snapshot.NewRepository(store, cfg.Store.Key, seed, legacyKeys...)
	if err != nil {
		return nil, fmt.Errorf("wire snapshot repository: %w", err)
	}

	tracker := application.NewTrackerService(repo, ports.SystemClock{}, ports.UUIDGenerator{}, settingsFromConfig(cfg))
	if err := tracker.Load(ctx); err != nil {
		return nil, fmt.Errorf("load tracker state: %w", err)
	}

	a := &app{
		cfg:             cfg,
		tracker:         tracker,
		recorder:        application.NewWorkoutRecorder(tracker, repo),
		summaryRenderer: summaryrender.Render,
		trendsRenderer:  trendsrender.Render,
		sheetRenderer:   workoutrender.Render,
	}
	if closeStore != nil {
		a.closers = append(a.closers, closeStore)
	}
	return a, nil
}

func settingsFromConfig(cfg *config.Config) application.Settings {
	return application.Settings{
		Goals:             cfg.Goals.Domain(),
		BMR:               cfg.Metabolism.BMR,
		BurnRatePerMinute: cfg.Training.BurnRatePerMinute,
		RestDuration:      time.Duration(cfg.Training.RestSeconds) * time.Second,
		DefaultDifficulty: cfg.Training.Difficulty(),
		RebaseNewEntries:  cfg.Catalog.RebaseNewEntries,
		RecentLimit:       cfg.Training.RecentLimit,
		TrendWindowDays:   domain.DefaultTrendWindow,
		Routines:          cfg.RoutineDefinitions(),
		Seed:              cfg.SeedCatalog(),
	}
}

// wireStore builds the configured backend. The redis backend mirrors every
// write into the file store and degrades to it when redis cannot be reached.
func wireStore(ctx context.Context, cfg config.StoreConfig) (ports.KVStore, func() error, error) {
	switch cfg.Backend {
	case "memory":
		return memorystore.NewStore(cfg.MemorySizeMB), nil, nil
	case "redis":
		fileStore := filestore.NewStore(cfg.Path)

		dialCtx, cancel := context.WithTimeout(ctx, redisDialTimeout)
		defer cancel()

		rdb, err := redisstore.Dial(dialCtx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			logrus.WithError(err).Warn("redis unavailable; using the file store only")
			_ = rdb.Close()
			return fileStore, nil, nil
		}

		prefix := cfg.Redis.KeyPrefix
		if prefix == "" {
			prefix = redisstore.DefaultKeyPrefix
		}
		store, err := chainstore.NewStoreChecked(redisstore.NewStore(rdb, prefix), fileStore)
		if err != nil {
			_ = rdb.Close()
			return nil, nil, err
		}
		return store, rdb.Close, nil
	default:
		return filestore.NewStore(cfg.Path), nil, nil
	}
}

func (a *app) close() {
	for _, closeFn := range a.closers {
		if err := closeFn(); err != nil {
			logrus.WithError(err).Debug("close resource")
		}
	}
	a.closers = nil
}

func (a *app) dayLabel(day domain.DayKey) string {
	if day == "" {
		return a.tracker.Today().String()
	}
	return day.String()
}
