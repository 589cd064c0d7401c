package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds environment-driven settings. Flags take precedence over
// the environment; the environment takes precedence over defaults.
type Config struct {
	// DBPath overrides the default database location.
	DBPath string `env:"GYANGURU_DB"`

	// Theme forces the initial theme ("light" or "dark"). When empty the
	// persisted theme, then the terminal's reported background, decide.
	Theme string `env:"GYANGURU_THEME"`
}

// Load parses configuration from the environment.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse environment: %w", err)
	}
	return cfg, nil
}
