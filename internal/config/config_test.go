package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadOverridesAndBackfills(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(
		"api:\n  base_url: https://maps.example.com\nsearch:\n  debounce_ms: 150\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "https://maps.example.com", cfg.API.BaseURL)
	assert.Equal(t, 150*time.Millisecond, cfg.Search.Debounce())
	// Absent fields keep their defaults.
	assert.Equal(t, 5*time.Minute, cfg.Search.CacheTTL())
	assert.Equal(t, 10*time.Second, cfg.Search.Timeout())
}

func TestLoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("api: [not: valid"), 0o644))

	cfg, err := Load(path)
	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, Default(), cfg, "invalid files fall back to defaults")
}
