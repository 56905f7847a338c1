package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"
)

// fileConfig is the schema of the optional config.toml. Only a subset of
// the configuration is file-settable; the rest comes from env and flags.
type fileConfig struct {
	Storage struct {
		Dir      string `toml:"dir"`
		Filename string `toml:"filename"`
	} `toml:"storage"`
	Defaults struct {
		Priority string `toml:"priority"`
	} `toml:"defaults"`
	Display struct {
		Color      *bool  `toml:"color"`
		TimeFormat string `toml:"time_format"`
	} `toml:"display"`
	Application struct {
		Timeout string `toml:"timeout"`
		Verbose *bool  `toml:"verbose"`
	} `toml:"application"`
}

// Loader handles loading configuration from multiple sources
type Loader struct {
	config *Config
}

// NewLoader creates a new configuration loader
func NewLoader() *Loader {
	return &Loader{
		config: NewConfig(),
	}
}

// Load loads configuration using the cascading strategy:
// 1. Start with defaults
// 2. Override with the config file, if present
// 3. Override with environment variables
// 4. Override with command line flags (handled by cobra)
func (l *Loader) Load() (*Config, error) {
	if err := l.applyConfigFile(l.config.GetConfigFilePath()); err != nil {
		return nil, err
	}

	if err := l.config.LoadFromEnvironment(); err != nil {
		return nil, err
	}

	if err := l.config.Validate(); err != nil {
		return nil, err
	}

	return l.config, nil
}

// LoadFromFile loads configuration from an explicit config file path,
// skipping the default file discovery. Used by tests.
func (l *Loader) LoadFromFile(path string) (*Config, error) {
	if err := l.applyConfigFile(path); err != nil {
		return nil, err
	}
	if err := l.config.Validate(); err != nil {
		return nil, err
	}
	return l.config, nil
}

// applyConfigFile merges values from a TOML config file onto the current
// configuration. A missing file is not an error.
func (l *Loader) applyConfigFile(path string) error {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("reading config file %s: %w", path, err)
	}

	var fc fileConfig
	if _, err := toml.DecodeFile(path, &fc); err != nil {
		return fmt.Errorf("parsing config file %s: %w", path, err)
	}

	if fc.Storage.Dir != "" {
		l.config.Storage.Dir = fc.Storage.Dir
	}
	if fc.Storage.Filename != "" {
		l.config.Storage.Filename = fc.Storage.Filename
	}
	if fc.Defaults.Priority != "" {
		l.config.Defaults.Priority = fc.Defaults.Priority
	}
	if fc.Display.Color != nil {
		l.config.Display.Color = *fc.Display.Color
	}
	if fc.Display.TimeFormat != "" {
		l.config.Display.TimeFormat = fc.Display.TimeFormat
	}
	if fc.Application.Timeout != "" {
		l.config.Application.Timeout = ParseDurationWithFallback(fc.Application.Timeout, l.config.Application.Timeout)
	}
	if fc.Application.Verbose != nil {
		l.config.Application.Verbose = *fc.Application.Verbose
	}

	return nil
}

// ParseDurationWithFallback parses a duration string with a fallback value
func ParseDurationWithFallback(s string, fallback time.Duration) time.Duration {
	if d, err := time.ParseDuration(s); err == nil {
		return d
	}
	return fallback
}

// ParseBoolWithFallback parses a boolean string with a fallback value
func ParseBoolWithFallback(s string, fallback bool) bool {
	if b, err := strconv.ParseBool(s); err == nil {
		return b
	}
	return fallback
}
