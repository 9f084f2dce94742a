package config

import (
	"fmt"

	"github.com/caarlos0/env/v6"
)

// Config holds the process configuration, read from the environment.
type Config struct {
	// Port is the HTTP listen port.
	Port int `env:"PORT" envDefault:"3000"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
}

// Load reads configuration from the environment, applying defaults.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse environment: %w", err)
	}
	return cfg, nil
}
