package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoader_LoadFromFile(t *testing.T) {
	path := writeConfigFile(t, `
[storage]
dir = "/srv/tasks"
filename = "team.json"

[defaults]
priority = "low"

[display]
color = false
time_format = "Jan 2 15:04"

[application]
timeout = "45s"
verbose = true
`)

	cfg, err := NewLoader().LoadFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, "/srv/tasks", cfg.Storage.Dir)
	assert.Equal(t, "team.json", cfg.Storage.Filename)
	assert.Equal(t, "low", cfg.Defaults.Priority)
	assert.False(t, cfg.Display.Color)
	assert.Equal(t, "Jan 2 15:04", cfg.Display.TimeFormat)
	assert.Equal(t, 45*time.Second, cfg.Application.Timeout)
	assert.True(t, cfg.Application.Verbose)
}

func TestLoader_LoadFromFile_PartialFileKeepsDefaults(t *testing.T) {
	path := writeConfigFile(t, `
[defaults]
priority = "high"
`)

	cfg, err := NewLoader().LoadFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, "high", cfg.Defaults.Priority)
	assert.Equal(t, "tasks.json", cfg.Storage.Filename)
	assert.True(t, cfg.Display.Color)
	assert.Equal(t, 10*time.Second, cfg.Application.Timeout)
}

func TestLoader_LoadFromFile_MissingFileIsNotAnError(t *testing.T) {
	cfg, err := NewLoader().LoadFromFile(filepath.Join(t.TempDir(), "config.toml"))

	require.NoError(t, err)
	assert.Equal(t, "tasks.json", cfg.Storage.Filename)
}

func TestLoader_LoadFromFile_MalformedTOML(t *testing.T) {
	path := writeConfigFile(t, "[storage\ndir =")

	_, err := NewLoader().LoadFromFile(path)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing config file")
}

func TestLoader_LoadFromFile_InvalidPriorityFailsValidation(t *testing.T) {
	path := writeConfigFile(t, `
[defaults]
priority = "urgent"
`)

	_, err := NewLoader().LoadFromFile(path)

	require.Error(t, err)
	var cfgErr *ConfigError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, "defaults.priority", cfgErr.Field)
}

func TestLoader_Load_EnvironmentOverridesFile(t *testing.T) {
	home := t.TempDir()
	trackerDir := filepath.Join(home, ".task-tracker")
	require.NoError(t, os.MkdirAll(trackerDir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(trackerDir, "config.toml"), []byte(`
[defaults]
priority = "low"

[display]
color = false
`), 0644))

	t.Setenv("HOME", home)
	t.Setenv("TASKS_DEFAULT_PRIORITY", "high")

	cfg, err := NewLoader().Load()
	require.NoError(t, err)

	// Env wins over the file; file wins over defaults
	assert.Equal(t, "high", cfg.Defaults.Priority)
	assert.False(t, cfg.Display.Color)
}

func TestParseDurationWithFallback(t *testing.T) {
	assert.Equal(t, 5*time.Second, ParseDurationWithFallback("5s", time.Minute))
	assert.Equal(t, time.Minute, ParseDurationWithFallback("bogus", time.Minute))
}

func TestParseBoolWithFallback(t *testing.T) {
	assert.True(t, ParseBoolWithFallback("true", false))
	assert.False(t, ParseBoolWithFallback("bogus", false))
}
