package config

import (
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var envKeys = []string{
	"ENVIRONMENT", "LOG_LEVEL", "LOG_FILE", "STORAGE_BACKEND", "SAVE_PATH",
	"REDIS_URL", "REDIS_KEY", "GEMINI_API_KEY", "GEMINI_MODEL", "SESSION_ID",
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range envKeys {
		t.Setenv(k, "")
	}
	t.Setenv("HOME", t.TempDir())
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
	assert.Equal(t, BackendFile, cfg.StorageBackend)
	assert.Equal(t, "save.json", filepath.Base(cfg.SavePath))
	assert.Equal(t, "resentcalc.log", filepath.Base(cfg.LogFile))
	assert.Equal(t, "resentcalc_v1", cfg.RedisKey)
	assert.Equal(t, "gemini-2.5-flash", cfg.GeminiModel)
	assert.True(t, cfg.Offline())
	assert.NotEqual(t, [16]byte{}, [16]byte(cfg.SessionID))
}

func TestLoad_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("LOG_LEVEL", "DEBUG")
	t.Setenv("STORAGE_BACKEND", "Redis")
	t.Setenv("REDIS_URL", "redis://localhost:6379/0")
	t.Setenv("GEMINI_API_KEY", "key")
	t.Setenv("SESSION_ID", "7d444840-9dc0-11d1-b245-5ffdce74fad2")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "production", cfg.Environment)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
	assert.Equal(t, BackendRedis, cfg.StorageBackend)
	assert.False(t, cfg.Offline())
	assert.Equal(t, "7d444840-9dc0-11d1-b245-5ffdce74fad2", cfg.SessionID.String())
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want string
	}{
		{"redis without url", map[string]string{"STORAGE_BACKEND": "redis"}, "REDIS_URL is required"},
		{"unknown backend", map[string]string{"STORAGE_BACKEND": "floppy"}, "unknown STORAGE_BACKEND"},
		{"bad session", map[string]string{"SESSION_ID": "nope"}, "invalid SESSION_ID"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Load()
			assert.ErrorContains(t, err, tt.want)
		})
	}

	clearEnv(t)
	t.Setenv("STORAGE_BACKEND", "redis")
	_, err := Load()
	assert.ErrorIs(t, err, ErrMissingRedisURL)
}

func TestParseLogLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"warning": slog.LevelWarn,
		"warn":    slog.LevelWarn,
		"error":   slog.LevelError,
		"loud":    slog.LevelInfo,
	}
	for in, want := range tests {
		assert.Equal(t, want, parseLogLevel(in), in)
	}
}
