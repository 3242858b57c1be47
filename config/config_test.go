package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "", cfg.Fetch.CacheDir)
	assert.Equal(t, 24, cfg.Fetch.CacheValidityHours)
	assert.Equal(t, 300, cfg.Fetch.TimeoutSeconds)
	assert.Equal(t, 30, cfg.Fetch.MaxRequestsPerMinute)
	assert.False(t, cfg.Log.JSON)
}

func TestLoadIsCached(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	first, err := Load()
	require.NoError(t, err)
	second, err := Load()
	require.NoError(t, err)
	assert.Same(t, first, second)
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "swissdata.toml")
	content := `
[fetch]
cache_dir = "/tmp/swissdata-test-cache"
cache_validity_hours = 1

[log]
json = true
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, "/tmp/swissdata-test-cache", cfg.Fetch.CacheDir)
	assert.Equal(t, 1, cfg.Fetch.CacheValidityHours)
	// Unset keys fall back to defaults
	assert.Equal(t, 300, cfg.Fetch.TimeoutSeconds)
	assert.True(t, cfg.Log.JSON)
}

func TestLoadFromFileMissing(t *testing.T) {
	_, err := LoadFromFile(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}
