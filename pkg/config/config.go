// Package config loads the engine configuration from YAML.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the settings shared by the CLI and the supernetwork builder.
type Config struct {
	// Store settings.
	StorePath     string `yaml:"storePath"`
	StoreInMemory bool   `yaml:"storeInMemory"`
	CacheLookups  bool   `yaml:"cacheLookups"`

	// Builder settings.
	NumWorkers          int     `yaml:"numWorkers"`
	SimilarityThreshold float64 `yaml:"similarityThreshold"`

	// Significance settings.
	NumTrials int `yaml:"numTrials"`

	// Logging: "debug", "info", "warn", or "error".
	LogLevel string `yaml:"logLevel"`
}

// DefaultConfig returns the standard settings.
func DefaultConfig() *Config {
	return &Config{
		StorePath:           "insight-store",
		CacheLookups:        true,
		NumWorkers:          4,
		SimilarityThreshold: 0.5,
		NumTrials:           100,
		LogLevel:            "info",
	}
}

// Load reads a YAML config file over the defaults. A missing filename
// returns the defaults unchanged.
func Load(filename string) (*Config, error) {
	cfg := DefaultConfig()
	if filename == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", filename, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", filename, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", filename, err)
	}
	return cfg, nil
}

// Validate checks the configuration for usable values.
func (c *Config) Validate() error {
	if c.NumWorkers < 1 {
		return fmt.Errorf("numWorkers must be positive, got %d", c.NumWorkers)
	}
	if c.SimilarityThreshold < 0 || c.SimilarityThreshold > 1 {
		return fmt.Errorf("similarityThreshold must be in [0, 1], got %f", c.SimilarityThreshold)
	}
	if c.NumTrials < 1 {
		return fmt.Errorf("numTrials must be positive, got %d", c.NumTrials)
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log level %q", c.LogLevel)
	}
	if !c.StoreInMemory && c.StorePath == "" {
		return fmt.Errorf("storePath is required unless storeInMemory is set")
	}
	return nil
}
