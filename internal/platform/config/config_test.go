package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("CONTENT_API_URL", "https://cms.example.com/")
	t.Setenv("CONTENT_API_TOKEN", "token-123")
	t.Setenv("SESSION_SECRET", "secret")
}

// TestFromEnv_MissingRequired checks that every missing key is reported at once.
func TestFromEnv_MissingRequired(t *testing.T) {
	t.Setenv("CONTENT_API_URL", "")
	t.Setenv("CONTENT_API_TOKEN", "")
	t.Setenv("SESSION_SECRET", "")

	_, err := FromEnv()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "CONTENT_API_URL")
	assert.Contains(t, err.Error(), "CONTENT_API_TOKEN")
	assert.Contains(t, err.Error(), "SESSION_SECRET")
}

func TestFromEnv_Defaults(t *testing.T) {
	setRequired(t)
	for _, k := range []string{"APP_ENV", "LOG_LEVEL", "HTTP_PORT", "SESSION_COOKIE", "SESSION_TTL",
		"CONTENT_API_TIMEOUT", "DB_DRIVER", "REDIS_HOST", "CORS_ORIGINS", "SYNC_RATE_PER_MINUTE"} {
		t.Setenv(k, "")
	}

	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, "dev", cfg.AppEnv)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 8080, cfg.HTTPPort)
	assert.Equal(t, "https://cms.example.com", cfg.Content.BaseURL, "trailing slash is trimmed")
	assert.Equal(t, 10*time.Second, cfg.Content.Timeout)
	assert.Equal(t, "mil_sabores_session", cfg.Session.CookieName)
	assert.Equal(t, 7*24*time.Hour, cfg.Session.TTL)
	assert.False(t, cfg.Session.Secure)
	assert.Equal(t, "postgres", cfg.DB.Driver)
	assert.False(t, cfg.Redis.Enabled())
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.CORSOrigins)
	assert.Equal(t, 60, cfg.SyncRatePerMinute)
}

func TestFromEnv_Overrides(t *testing.T) {
	setRequired(t)
	t.Setenv("APP_ENV", "production")
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("SESSION_TTL", "24h")
	t.Setenv("CONTENT_API_TIMEOUT", "not-a-duration")
	t.Setenv("REDIS_HOST", "cache")
	t.Setenv("REDIS_PORT", "6380")
	t.Setenv("CORS_ORIGINS", "https://milsabores.cl, https://www.milsabores.cl ,")
	t.Setenv("RUN_MIGRATIONS", "true")

	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.HTTPPort)
	assert.Equal(t, 24*time.Hour, cfg.Session.TTL)
	assert.True(t, cfg.Session.Secure)
	assert.Equal(t, 10*time.Second, cfg.Content.Timeout, "invalid duration falls back to default")
	assert.Equal(t, "cache:6380", cfg.Redis.Addr())
	assert.True(t, cfg.Redis.Enabled())
	assert.Equal(t, []string{"https://milsabores.cl", "https://www.milsabores.cl"}, cfg.CORSOrigins)
	assert.True(t, cfg.DB.RunMigrations)
}
