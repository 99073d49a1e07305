// Package config provides environment configuration for the landsat-search
// command.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
)

// Config holds the complete configuration loaded from environment
// variables.
type Config struct {
	Search  SearchConfig  `envPrefix:"LANDSAT_"`
	Logging LoggingConfig `envPrefix:"LOG_"`
}

// SearchConfig contains search endpoint configuration.
type SearchConfig struct {
	URL          string        `env:"SEARCH_URL" envDefault:"https://landsatlook.usgs.gov/sat-api/stac/search"`
	Timeout      time.Duration `env:"TIMEOUT" envDefault:"30s"`
	DefaultLimit int           `env:"DEFAULT_LIMIT" envDefault:"10"`
}

// LoggingConfig contains logging configuration.
type LoggingConfig struct {
	Level  string `env:"LEVEL" envDefault:"info"`
	Format string `env:"FORMAT" envDefault:"text"`
}

// Load parses configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	if c.Search.URL == "" {
		return fmt.Errorf("search URL is required")
	}

	if c.Search.Timeout <= 0 {
		return fmt.Errorf("search timeout must be positive, got %s", c.Search.Timeout)
	}

	if c.Search.DefaultLimit < 1 {
		return fmt.Errorf("default limit must be at least 1, got %d", c.Search.DefaultLimit)
	}

	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[c.Logging.Level] {
		return fmt.Errorf("invalid log level %q, must be one of: debug, info, warn, error", c.Logging.Level)
	}

	validLogFormats := map[string]bool{
		"json": true,
		"text": true,
	}
	if !validLogFormats[c.Logging.Format] {
		return fmt.Errorf("invalid log format %q, must be one of: json, text", c.Logging.Format)
	}

	return nil
}
