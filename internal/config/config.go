package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"

	"task-tracker/internal/domain"
)

// Config holds all configuration options for the task tracker application
type Config struct {
	Storage     StorageConfig
	Defaults    DefaultsConfig
	Display     DisplayConfig
	Application ApplicationConfig
}

// StorageConfig holds storage-related configuration
type StorageConfig struct {
	Dir             string
	Filename        string
	DirPermissions  uint32
	FilePermissions uint32
}

// DefaultsConfig holds defaults applied when flags are omitted
type DefaultsConfig struct {
	Priority string
}

// DisplayConfig holds display formatting configuration
type DisplayConfig struct {
	Color      bool
	TimeFormat string
}

// ApplicationConfig holds application-level configuration
type ApplicationConfig struct {
	Timeout time.Duration
	Verbose bool
}

// NewConfig creates a new configuration with sensible defaults
func NewConfig() *Config {
	homeDir, _ := os.UserHomeDir()
	defaultDir := filepath.Join(homeDir, ".task-tracker")

	return &Config{
		Storage: StorageConfig{
			Dir:             defaultDir,
			Filename:        "tasks.json",
			DirPermissions:  0755,
			FilePermissions: 0644,
		},
		Defaults: DefaultsConfig{
			Priority: string(domain.DefaultPriority),
		},
		Display: DisplayConfig{
			Color:      true,
			TimeFormat: "2006-01-02 15:04",
		},
		Application: ApplicationConfig{
			Timeout: 10 * time.Second,
			Verbose: false,
		},
	}
}

// GetStorePath returns the full path to the task store file
func (c *Config) GetStorePath() string {
	return filepath.Join(c.Storage.Dir, c.Storage.Filename)
}

// GetConfigFilePath returns the path of the optional TOML config file
func (c *Config) GetConfigFilePath() string {
	return filepath.Join(c.Storage.Dir, "config.toml")
}

// LoadFromEnvironment loads configuration from environment variables
func (c *Config) LoadFromEnvironment() error {
	if dir := os.Getenv("TASKS_DIR"); dir != "" {
		c.Storage.Dir = dir
	}
	if filename := os.Getenv("TASKS_FILENAME"); filename != "" {
		c.Storage.Filename = filename
	}
	if perms := os.Getenv("TASKS_DIR_PERMISSIONS"); perms != "" {
		if p, err := strconv.ParseUint(perms, 8, 32); err == nil {
			c.Storage.DirPermissions = uint32(p)
		}
	}
	if perms := os.Getenv("TASKS_FILE_PERMISSIONS"); perms != "" {
		if p, err := strconv.ParseUint(perms, 8, 32); err == nil {
			c.Storage.FilePermissions = uint32(p)
		}
	}

	if priority := os.Getenv("TASKS_DEFAULT_PRIORITY"); priority != "" {
		c.Defaults.Priority = priority
	}

	if color := os.Getenv("TASKS_COLOR"); color != "" {
		if b, err := strconv.ParseBool(color); err == nil {
			c.Display.Color = b
		}
	}
	if format := os.Getenv("TASKS_TIME_FORMAT"); format != "" {
		c.Display.TimeFormat = format
	}

	if timeout := os.Getenv("TASKS_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil {
			c.Application.Timeout = d
		}
	}
	if verbose := os.Getenv("TASKS_VERBOSE"); verbose != "" {
		if b, err := strconv.ParseBool(verbose); err == nil {
			c.Application.Verbose = b
		}
	}

	return nil
}

// Validate validates the configuration and returns any errors
func (c *Config) Validate() error {
	if c.Storage.Dir == "" {
		return &ConfigError{Field: "storage.dir", Message: "storage directory cannot be empty"}
	}
	if c.Storage.Filename == "" {
		return &ConfigError{Field: "storage.filename", Message: "storage filename cannot be empty"}
	}

	if _, err := domain.ParsePriority(c.Defaults.Priority); err != nil {
		return &ConfigError{Field: "defaults.priority", Message: "default priority must be high, medium or low"}
	}

	if c.Display.TimeFormat == "" {
		return &ConfigError{Field: "display.time_format", Message: "time format cannot be empty"}
	}

	if c.Application.Timeout <= 0 {
		return &ConfigError{Field: "application.timeout", Message: "application timeout must be positive"}
	}

	return nil
}

// DefaultPriority returns the configured default priority as a domain value.
// Validate must have accepted the configuration first.
func (c *Config) DefaultPriority() domain.Priority {
	p, err := domain.ParsePriority(c.Defaults.Priority)
	if err != nil {
		return domain.DefaultPriority
	}
	return p
}

// ConfigError represents a configuration validation error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Field + ": " + e.Message
}
