package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigMissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "config.toml"))
	require.NoError(t, err)

	assert.Equal(t, "https://search.nixos.org/backend", cfg.BaseURL)
	assert.Equal(t, "unstable", cfg.Channel)
	assert.Equal(t, 30*time.Second, cfg.Timeout.Duration)
	assert.Equal(t, PagerAuto, cfg.Pager)
	assert.Empty(t, cfg.Username)
}

func TestLoadConfigOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
base_url = "https://search.example.org/backend"
channel = "24.11"
timeout = "5s"
pager = "never"
username = "me"
password = "hunter2"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "https://search.example.org/backend", cfg.BaseURL)
	assert.Equal(t, "24.11", cfg.Channel)
	assert.Equal(t, 5*time.Second, cfg.Timeout.Duration)
	assert.Equal(t, PagerNever, cfg.Pager)
	assert.Equal(t, "me", cfg.Username)
	assert.Equal(t, "hunter2", cfg.Password)
}

func TestLoadConfigPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`channel = "25.05"`), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "25.05", cfg.Channel)
	assert.Equal(t, "https://search.nixos.org/backend", cfg.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.Timeout.Duration)
}

func TestLoadConfigInvalidPagerMode(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`pager = "sometimes"`), 0644))

	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestLoadConfigInvalidTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`channel = `), 0644))

	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestSaveTemplateConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	require.NoError(t, GetDefaultConfig().SaveTemplateConfig(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "snix configuration")

	// The template is fully commented out, so loading it yields defaults.
	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "unstable", cfg.Channel)
}
