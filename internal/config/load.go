package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"github.com/marquito38/meow-macros/internal/domain"
)

const (
	configName = "config"
	configType = "toml"
	configDir  = ".meow"
	envPrefix  = "MEOW"

	// ConfigFileEnv points at an explicit config file instead of ~/.meow/config.toml.
	ConfigFileEnv = "MEOW_CONFIG"
)

// Load reads ~/.meow/config.toml when present, applies MEOW_* environment
// overrides on top of the defaults and validates the result.
func Load(v *viper.Viper) (*Config, error) {
	if v == nil {
		v = viper.New()
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("resolve home directory: %w", err)
	}

	setDefaults(v, filepath.Join(homeDir, configDir))

	if explicit := os.Getenv(ConfigFileEnv); explicit != "" {
		v.SetConfigFile(explicit)
	} else {
		v.SetConfigName(configName)
		v.SetConfigType(configType)
		v.AddConfigPath(filepath.Join(homeDir, configDir))
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configNotFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	cfg.Store.Path, err = normalizePath(cfg.Store.Path, homeDir)
	if err != nil {
		return nil, err
	}
	cfg.Log.File, err = normalizePath(cfg.Log.File, homeDir)
	if err != nil {
		return nil, err
	}

	if err := newValidator().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper, dir string) {
	goals := domain.DefaultGoals()

	v.SetDefault("store.backend", "file")
	v.SetDefault("store.path", filepath.Join(dir, "data"))
	v.SetDefault("store.key", "meow_data_v10")
	v.SetDefault("store.legacy_key", "meow_data_v9")
	v.SetDefault("store.memory_size_mb", 128)
	v.SetDefault("store.redis.addr", "127.0.0.1:6379")
	v.SetDefault("store.redis.password", "")
	v.SetDefault("store.redis.db", 0)
	v.SetDefault("store.redis.key_prefix", "meow:")

	v.SetDefault("goals.calories", goals.Calories)
	v.SetDefault("goals.carbs", goals.Carbs)
	v.SetDefault("goals.protein", goals.Protein)
	v.SetDefault("goals.fat", goals.Fat)
	v.SetDefault("goals.fiber", goals.Fiber)

	v.SetDefault("metabolism.bmr", domain.DefaultBMR)

	v.SetDefault("training.burn_rate_per_minute", domain.DefaultBurnRate)
	v.SetDefault("training.rest_seconds", domain.DefaultRestSeconds)
	v.SetDefault("training.default_difficulty", string(domain.DifficultyNormal))
	v.SetDefault("training.recent_limit", domain.DefaultRecentSessions)

	v.SetDefault("catalog.rebase_new_entries", false)

	v.SetDefault("log.level", "warn")
	v.SetDefault("log.file", "")
	v.SetDefault("log.json", false)
}

func newValidator() *validator.Validate {
	validate := validator.New()

	_ = validate.RegisterValidation("difficulty", func(fl validator.FieldLevel) bool {
		_, err := domain.ParseDifficulty(fl.Field().String())
		return err == nil
	})
	_ = validate.RegisterValidation("reference_unit", func(fl validator.FieldLevel) bool {
		_, err := domain.ParseReferenceUnit(fl.Field().String())
		return err == nil
	})

	return validate
}

func normalizePath(path, homeDir string) (string, error) {
	if path == "" {
		return "", nil
	}
	if path == "~" || strings.HasPrefix(path, "~/") {
		path = filepath.Join(homeDir, strings.TrimPrefix(path, "~"))
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve path %q: %w", path, err)
	}

	return filepath.Clean(absPath), nil
}
