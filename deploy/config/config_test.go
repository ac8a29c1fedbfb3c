package config

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"log/slog"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8082", cfg.HTTPServer.Port)
	assert.Equal(t, "http://localhost:8081/api", cfg.RateService.URL)
	assert.Equal(t, "USD", cfg.Dashboard.DefaultFrom)
	assert.Equal(t, "EUR", cfg.Dashboard.DefaultTo)
	assert.InDelta(t, 1.0, cfg.Dashboard.DefaultAmount, 1e-9)
	assert.Equal(t, "1M", cfg.Dashboard.DefaultRange)
	assert.Equal(t, 30*time.Minute, cfg.Dashboard.SessionIdleTTL)
	assert.Equal(t, "redis", cfg.Preferences.Backend)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("HTTP_PORT", "9000")
	t.Setenv("RATE_SERVICE_URL", "http://rates.internal/api")
	t.Setenv("PREFERENCES_BACKEND", "postgres")
	t.Setenv("DASHBOARD_DEFAULT_AMOUNT", "250")
	t.Setenv("LOG_LEVEL", "warn")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.HTTPServer.Port)
	assert.Equal(t, "http://rates.internal/api", cfg.RateService.URL)
	assert.Equal(t, "postgres", cfg.Preferences.Backend)
	assert.InDelta(t, 250.0, cfg.Dashboard.DefaultAmount, 1e-9)
	assert.Equal(t, slog.LevelWarn, cfg.Log.SlogLevel())
}

func TestStorageDSN(t *testing.T) {
	s := Storage{Host: "db", Port: 5433, User: "fx", Password: "secret", DBName: "fxdash", SSLMode: "disable", Schema: "dev"}
	assert.Equal(t, "host=db port=5433 user=fx password=secret dbname=fxdash sslmode=disable search_path=dev", s.DSN())
}

func TestSlogLevelFallback(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, Log{Level: "loud"}.SlogLevel())
	assert.Equal(t, slog.LevelError, Log{Level: "ERROR"}.SlogLevel())
}
