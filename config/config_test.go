package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"ENVIRONMENT", "SERVER_PORT", "SERVER_HOST",
		"DB_HOST", "DB_PORT", "DB_USERNAME", "DB_PASSWORD", "DB_NAME", "DB_TIMEOUT",
		"LOG_LEVEL", "LOG_PREFIX", "LOG_JSON", "LOG_COLOR",
		"CURRENT_SEASON", "WEEKS_PER_SEASON",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "development", cfg.Server.Environment)
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, "pickem_league", cfg.Database.Database)
	assert.Equal(t, 10*time.Second, cfg.Database.Timeout)
	assert.Equal(t, 2025, cfg.League.CurrentSeason)
	assert.Equal(t, 18, cfg.League.WeeksPerSeason)
	assert.True(t, cfg.League.IsDevelopment)
	assert.False(t, cfg.Logging.JSON, "console logs in development")
}

func TestLoadOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("CURRENT_SEASON", "2026")
	t.Setenv("WEEKS_PER_SEASON", "17")
	t.Setenv("DB_TIMEOUT", "30s")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, 2026, cfg.League.CurrentSeason)
	assert.Equal(t, 17, cfg.League.WeeksPerSeason)
	assert.Equal(t, 30*time.Second, cfg.Database.Timeout)
	assert.False(t, cfg.League.IsDevelopment)
	assert.True(t, cfg.Logging.JSON, "JSON logs outside development")
}

func TestLoadRejectsBadValues(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"season too old", "CURRENT_SEASON", "2010"},
		{"season too far out", "CURRENT_SEASON", "2050"},
		{"zero weeks", "WEEKS_PER_SEASON", "0"},
		{"too many weeks", "WEEKS_PER_SEASON", "30"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.key, tt.value)

			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestGetServerAddress(t *testing.T) {
	cfg := &Config{Server: ServerConfig{Host: "0.0.0.0", Port: "8080"}}
	assert.Equal(t, "0.0.0.0:8080", cfg.GetServerAddress())
}

func TestMalformedIntFallsBackToDefault(t *testing.T) {
	clearEnv(t)
	t.Setenv("CURRENT_SEASON", "not-a-number")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 2025, cfg.League.CurrentSeason)
}
