package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDefaultConfig verifies default configuration values
func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, ".", cfg.Find.Where)
	assert.Empty(t, cfg.Find.Excludes)
	assert.Equal(t, "slice", cfg.Sort.Container)
	assert.False(t, cfg.Sort.Check)
	assert.NoError(t, cfg.Validate())
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

// TestLoadConfigValidFile tests loading a valid YAML config file
func TestLoadConfigValidFile(t *testing.T) {
	path := writeConfig(t, `log_level: debug
find:
  where: /srv
  excludes:
    - /srv/cache
    - /srv/tmp
sort:
  container: list
  check: true
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "/srv", cfg.Find.Where)
	assert.Equal(t, []string{"/srv/cache", "/srv/tmp"}, cfg.Find.Excludes)
	assert.Equal(t, "list", cfg.Sort.Container)
	assert.True(t, cfg.Sort.Check)
}

// TestLoadConfigPartialFile tests that missing keys keep their defaults
func TestLoadConfigPartialFile(t *testing.T) {
	path := writeConfig(t, "sort:\n  check: true\n")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, ".", cfg.Find.Where)
	assert.Equal(t, "slice", cfg.Sort.Container)
	assert.True(t, cfg.Sort.Check)
}

// TestLoadConfigFileNotExists tests fallback to defaults when file doesn't exist
func TestLoadConfigFileNotExists(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/path/config.yaml")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)

	cfg, err = LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfigMalformed(t *testing.T) {
	path := writeConfig(t, "log_level: [unclosed\n")

	_, err := LoadConfig(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config file")
}

func TestLoadConfigInvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{name: "bad level", content: "log_level: loud\n", wantErr: "invalid log_level"},
		{name: "bad container", content: "sort:\n  container: deque\n", wantErr: "invalid sort.container"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadConfig(writeConfig(t, tt.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestMergeWithFlags(t *testing.T) {
	cfg := DefaultConfig()
	level := "trace"
	check := true

	cfg.MergeWithFlags(&level, nil, &check)

	assert.Equal(t, "trace", cfg.LogLevel)
	assert.Equal(t, "slice", cfg.Sort.Container, "nil flag must not override")
	assert.True(t, cfg.Sort.Check)
}

func TestPath_EnvOverride(t *testing.T) {
	t.Setenv(EnvConfigPath, "/etc/systools.yaml")

	path, err := Path()
	require.NoError(t, err)
	assert.Equal(t, "/etc/systools.yaml", path)
}

func TestPath_HomeDefault(t *testing.T) {
	home := t.TempDir()
	t.Setenv(EnvConfigPath, "")
	t.Setenv("HOME", home)

	path, err := Path()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".systools", "config.yaml"), path)
}

func TestLoad_UsesEnvPath(t *testing.T) {
	path := writeConfig(t, "log_level: error\n")
	t.Setenv(EnvConfigPath, path)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "error", cfg.LogLevel)
}
