package config

import (
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "data/ecowatch.db", cfg.DBPath)
	assert.Equal(t, "http://localhost:8000", cfg.BackendURL)
	assert.Equal(t, 30*time.Second, cfg.BackendTimeout)
	assert.Equal(t, 3, cfg.BackendRetries)
	assert.Equal(t, "https://nominatim.openstreetmap.org/search", cfg.NominatimURL)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "data/ecowatch.log", cfg.LogFile)
	assert.Zero(t, cfg.Seed)
}

func TestLoad_CustomEnv(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("ECOWATCH_DB_PATH", "/tmp/eco.db")
	t.Setenv("ECOWATCH_BACKEND_URL", "http://analysis:9000")
	t.Setenv("ECOWATCH_BACKEND_TIMEOUT", "5s")
	t.Setenv("ECOWATCH_BACKEND_RETRIES", "0")
	t.Setenv("ECOWATCH_LOG_LEVEL", "debug")
	t.Setenv("ECOWATCH_SEED", "42")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "/tmp/eco.db", cfg.DBPath)
	assert.Equal(t, "http://analysis:9000", cfg.BackendURL)
	assert.Equal(t, 5*time.Second, cfg.BackendTimeout)
	assert.Equal(t, 0, cfg.BackendRetries)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, uint64(42), cfg.Seed)
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{"timeout not a duration", "ECOWATCH_BACKEND_TIMEOUT", "soon"},
		{"negative timeout", "ECOWATCH_BACKEND_TIMEOUT", "-1s"},
		{"retries not a number", "ECOWATCH_BACKEND_RETRIES", "many"},
		{"negative retries", "ECOWATCH_BACKEND_RETRIES", "-2"},
		{"seed not a number", "ECOWATCH_SEED", "abc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Chdir(t.TempDir())
			t.Setenv(tt.key, tt.val)

			_, err := Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.key)
		})
	}
}

func TestLoad_WrapsParseErrors(t *testing.T) {
	t.Chdir(t.TempDir())

	t.Setenv("ECOWATCH_BACKEND_RETRIES", "many")
	_, err := Load()
	var numErr *strconv.NumError
	require.ErrorAs(t, err, &numErr)
	assert.Equal(t, "many", numErr.Num)

	t.Setenv("ECOWATCH_BACKEND_RETRIES", "3")
	t.Setenv("ECOWATCH_BACKEND_TIMEOUT", "soon")
	_, err = Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), `time: invalid duration "soon"`)
}
