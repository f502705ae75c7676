// Package config centralises configuration parsing for the training CLI.
package config

import (
	"github.com/kelseyhightower/envconfig"
)

// Config captures runtime configuration values for the training CLI.
type Config struct {
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
	Locale   string `envconfig:"LOCALE" default:"en"`
	Metrics  bool   `envconfig:"METRICS" default:"false"` // dump collected metrics to stderr after a run
}

// Load reads TRAINING_* environment variables into Config, applying defaults.
func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process("training", &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
