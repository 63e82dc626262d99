package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds the runtime settings read from the environment. Command line
// flags override them in main.
type Config struct {
	LogLevel     string `env:"BONECOLLECTOR_LOG_LEVEL"     envDefault:"info"`
	TPS          int    `env:"BONECOLLECTOR_TPS"           envDefault:"60"`
	Debug        bool   `env:"BONECOLLECTOR_DEBUG"`
	WatchPrefabs bool   `env:"BONECOLLECTOR_WATCH_PREFABS"`
	StartForm    string `env:"BONECOLLECTOR_START_FORM"`
}

// Load parses the environment into a Config.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects settings the game loop cannot run with.
func (c Config) Validate() error {
	if c.TPS <= 0 {
		return fmt.Errorf("config: tps must be positive, got %d", c.TPS)
	}
	return nil
}
