package main

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// SearchConfig holds search tuning parameters.
type SearchConfig struct {
	// TopK is how many candidates per core survive into the combination search.
	// Larger values trade speed for a wider search.
	TopK int `mapstructure:"top_k"`
	// ParallelGroups solves the order and chaos groups concurrently.
	ParallelGroups bool `mapstructure:"parallel_groups"`
}

// LoggingConfig holds structured logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: "debug", "info", "warn", "error".
	Level string `mapstructure:"level"`
	// Format is the log output format: "json" or "console".
	Format string `mapstructure:"format"`
}

// Config is the top-level application configuration.
type Config struct {
	Search  SearchConfig  `mapstructure:"search"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() Config {
	return Config{
		Search:  SearchConfig{TopK: 500},
		Logging: LoggingConfig{Level: "info", Format: "console"},
	}
}

// Validate checks all configuration invariants and reports every violation.
func (c Config) Validate() error {
	var errs []string
	if c.Search.TopK < 1 {
		errs = append(errs, fmt.Sprintf("search.top_k must be >= 1, got %d", c.Search.TopK))
	}
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[c.Logging.Level] {
		errs = append(errs, fmt.Sprintf("logging.level must be one of [debug, info, warn, error], got %q", c.Logging.Level))
	}
	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[c.Logging.Format] {
		errs = append(errs, fmt.Sprintf("logging.format must be one of [json, console], got %q", c.Logging.Format))
	}
	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}

// LoadConfig reads an optional config file, applies ARKGRID_* environment
// overrides and validates the result. An empty path uses defaults and
// environment only.
func LoadConfig(path string) (Config, error) {
	v := viper.New()
	v.SetEnvPrefix("ARKGRID")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshalling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	d := DefaultConfig()
	v.SetDefault("search.top_k", d.Search.TopK)
	v.SetDefault("search.parallel_groups", d.Search.ParallelGroups)
	v.SetDefault("logging.level", d.Logging.Level)
	v.SetDefault("logging.format", d.Logging.Format)
}
