// Package config provides environment-based configuration for the service.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds the runtime settings. All fields come from the environment;
// a .env file loaded by the entry point can supply them during development.
type Config struct {
	Addr           string        `env:"ADDR" envDefault:":8080"`
	SessionTTL     time.Duration `env:"SESSION_TTL" envDefault:"2h"`
	MaxUploadBytes int64         `env:"MAX_UPLOAD_BYTES" envDefault:"16777216"`
	LogFile        string        `env:"LOG_FILE" envDefault:"logs/itinerary-studio.log"`
	Production     bool          `env:"PRODUCTION" envDefault:"false"`
}

// Load parses and validates the configuration from the environment.
func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks that the configuration has usable values.
func (c *Config) Validate() error {
	if c.SessionTTL <= 0 {
		return fmt.Errorf("config error: SESSION_TTL must be positive, got %s", c.SessionTTL)
	}
	if c.MaxUploadBytes <= 0 {
		return fmt.Errorf("config error: MAX_UPLOAD_BYTES must be positive, got %d", c.MaxUploadBytes)
	}
	return nil
}
