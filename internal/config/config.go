// Package config loads dayplan settings from ~/.dayplan/config.yaml.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds all dayplan configuration.
type Config struct {
	// AvailableHours is the free time the day is planned against.
	AvailableHours float64 `yaml:"available_hours"`

	// Logging controls the mutation audit log.
	Logging LoggingConfig `yaml:"logging"`
}

// LoggingConfig configures the event log.
type LoggingConfig struct {
	Debug bool   `yaml:"debug"`
	File  string `yaml:"file"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		AvailableHours: 8,
	}
}

// DefaultPath returns ~/.dayplan/config.yaml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}
	return filepath.Join(home, ".dayplan", "config.yaml"), nil
}

// Load reads the config file at path. A missing file yields the
// defaults; a malformed file or non-positive available_hours is an
// error, so a zero realism point can never be caused silently by a bad
// config.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}

	if cfg.AvailableHours <= 0 {
		return Config{}, fmt.Errorf("available_hours must be positive, got %v", cfg.AvailableHours)
	}

	return cfg, nil
}
