package config

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/aretw0/derelict/internal/logging"
	"github.com/caarlos0/env/v11"
)

// Config is the process configuration read from the environment.
// Command-line flags override these values.
type Config struct {
	LogLevel  string `env:"DERELICT_LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"DERELICT_LOG_FORMAT" envDefault:"text"`

	// Story is a YAML story document; empty plays the built-in story.
	Story string `env:"DERELICT_STORY"`

	Addr string `env:"DERELICT_ADDR" envDefault:"127.0.0.1:8080"`

	MaxInputSize      int           `env:"DERELICT_MAX_INPUT_SIZE" envDefault:"4096"`
	AnimationInterval time.Duration `env:"DERELICT_ANIMATION_INTERVAL" envDefault:"50ms"`
}

// Load reads the configuration from the environment and validates it.
func Load() (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Validate rejects values no host can work with.
func (c Config) Validate() error {
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	switch c.LogFormat {
	case logging.FormatText, logging.FormatJSON:
	default:
		return fmt.Errorf("invalid log format %q (expected text or json)", c.LogFormat)
	}
	if c.MaxInputSize <= 0 {
		return fmt.Errorf("max input size must be positive, got %d", c.MaxInputSize)
	}
	if c.AnimationInterval <= 0 {
		return fmt.Errorf("animation interval must be positive, got %s", c.AnimationInterval)
	}
	return nil
}

// Level returns the parsed log level. Validate must have succeeded.
func (c Config) Level() slog.Level {
	level, _ := logging.ParseLevel(c.LogLevel)
	return level
}
