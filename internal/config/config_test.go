package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFromDefaults(t *testing.T) {
	cfg, err := LoadFrom(map[string]string{})
	require.NoError(t, err)

	assert.Equal(t, "prod", cfg.Env)
	assert.Equal(t, 10*time.Second, cfg.HTTP.ReadHeaderTimeout)
	assert.Equal(t, 5*time.Second, cfg.HTTP.ShutdownTimeout)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
}

func TestLoadFromOverrides(t *testing.T) {
	cfg, err := LoadFrom(map[string]string{
		"ENV":                   "dev",
		"HTTP_SHUTDOWN_TIMEOUT": "1s",
		"LOG_LEVEL":             "trace",
		"LOG_FORMAT":            "json",
	})
	require.NoError(t, err)

	assert.Equal(t, "dev", cfg.Env)
	assert.Equal(t, time.Second, cfg.HTTP.ShutdownTimeout)
	assert.Equal(t, "trace", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoadFromInvalidDuration(t *testing.T) {
	_, err := LoadFrom(map[string]string{"HTTP_READ_HEADER_TIMEOUT": "soon"})
	require.Error(t, err)
}
