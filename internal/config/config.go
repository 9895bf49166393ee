// Package config reads ethwallet defaults from the environment.
package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// Prefix is prepended to every variable name, e.g. ETHWALLET_COUNT.
const Prefix = "ETHWALLET"

// Config holds defaults for the command line flags. Flags given on the
// command line always win.
type Config struct {
	Count     int    `envconfig:"COUNT" default:"1"`
	JSON      bool   `envconfig:"JSON" default:"false"`
	Language  string `envconfig:"LANGUAGE" default:"english"`
	WordCount int    `envconfig:"WORD_COUNT" default:"12"`
	LogLevel  string `envconfig:"LOG_LEVEL" default:"warn"`
	LogJSON   bool   `envconfig:"LOG_JSON" default:"false"`
}

// Load reads the configuration from the environment.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := envconfig.Process(Prefix, cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}
	if cfg.Count < 1 {
		return nil, fmt.Errorf("%s_COUNT must be at least 1, got %d", Prefix, cfg.Count)
	}
	return cfg, nil
}

// Usage writes the recognized variables to stdout.
func Usage() error {
	return envconfig.Usage(Prefix, &Config{})
}
