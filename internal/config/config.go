package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// Storage backends
const (
	BackendFile   = "file"
	BackendRedis  = "redis"
	BackendMemory = "memory"
)

var ErrMissingRedisURL = errors.New("REDIS_URL is required when STORAGE_BACKEND=redis")

type Config struct {
	Environment string
	LogLevel    slog.Level
	LogFile     string

	StorageBackend string
	SavePath       string
	RedisURL       string
	RedisKey       string

	GeminiAPIKey string
	GeminiModel  string

	SessionID uuid.UUID
}

func Load() (*Config, error) {
	saveDir := filepath.Join(homeDir(), ".resentcalc")

	cfg := &Config{
		Environment:    getEnv("ENVIRONMENT", "development"),
		LogLevel:       parseLogLevel(getEnv("LOG_LEVEL", "info")),
		LogFile:        getEnv("LOG_FILE", filepath.Join(saveDir, "resentcalc.log")),
		StorageBackend: strings.ToLower(getEnv("STORAGE_BACKEND", BackendFile)),
		SavePath:       getEnv("SAVE_PATH", filepath.Join(saveDir, "save.json")),
		RedisURL:       getEnv("REDIS_URL", ""),
		RedisKey:       getEnv("REDIS_KEY", "resentcalc_v1"),
		GeminiAPIKey:   getEnv("GEMINI_API_KEY", ""),
		GeminiModel:    getEnv("GEMINI_MODEL", "gemini-2.5-flash"),
	}

	switch cfg.StorageBackend {
	case BackendFile, BackendMemory:
	case BackendRedis:
		if cfg.RedisURL == "" {
			return nil, ErrMissingRedisURL
		}
	default:
		return nil, fmt.Errorf("unknown STORAGE_BACKEND %q", cfg.StorageBackend)
	}

	cfg.SessionID = uuid.New()
	if raw := getEnv("SESSION_ID", ""); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid SESSION_ID: %w", err)
		}
		cfg.SessionID = id
	}

	return cfg, nil
}

// Offline reports whether answers come from the local personality.
func (c *Config) Offline() bool {
	return c.GeminiAPIKey == ""
}

func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func homeDir() string {
	if home, err := os.UserHomeDir(); err == nil {
		return home
	}
	return "."
}
