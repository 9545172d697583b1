package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := load()
	require.NoError(t, err)

	assert.Equal(t, DefaultBackendURL, cfg.BackendURL)
	assert.Equal(t, time.Duration(0), cfg.RequestTimeout)
	assert.Equal(t, DefaultOutputDir, cfg.OutputDir)
	assert.Equal(t, DefaultLogsLevel, cfg.LogsLevel)
	assert.Empty(t, cfg.LogsFile)
}

func TestLoadEnvironment(t *testing.T) {
	t.Run("bare BACKEND_URL is honored", func(t *testing.T) {
		t.Setenv("BACKEND_URL", "http://stonkie.internal:9000")

		cfg, err := load()
		require.NoError(t, err)
		assert.Equal(t, "http://stonkie.internal:9000", cfg.BackendURL)
	})

	t.Run("prefixed variable wins over bare", func(t *testing.T) {
		t.Setenv("BACKEND_URL", "http://bare:8080")
		t.Setenv("STONKIE_BACKEND_URL", "http://prefixed:8080")

		cfg, err := load()
		require.NoError(t, err)
		assert.Equal(t, "http://prefixed:8080", cfg.BackendURL)
	})

	t.Run("trailing slash is trimmed", func(t *testing.T) {
		t.Setenv("BACKEND_URL", "http://localhost:8080/")

		cfg, err := load()
		require.NoError(t, err)
		assert.Equal(t, "http://localhost:8080", cfg.BackendURL)
	})

	t.Run("request timeout parses durations", func(t *testing.T) {
		t.Setenv("STONKIE_REQUEST_TIMEOUT", "45s")

		cfg, err := load()
		require.NoError(t, err)
		assert.Equal(t, 45*time.Second, cfg.RequestTimeout)
	})

	t.Run("logs settings come from environment", func(t *testing.T) {
		t.Setenv("STONKIE_LOGS_LEVEL", "debug")
		t.Setenv("STONKIE_LOGS_FILE", "/tmp/stonkie.log")

		cfg, err := load()
		require.NoError(t, err)
		assert.Equal(t, "debug", cfg.LogsLevel)
		assert.Equal(t, "/tmp/stonkie.log", cfg.LogsFile)
	})
}

func TestLoadIsCached(t *testing.T) {
	first, err := Load()
	require.NoError(t, err)

	t.Setenv("STONKIE_BACKEND_URL", "http://changed-after-load:1")

	second, err := Load()
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
