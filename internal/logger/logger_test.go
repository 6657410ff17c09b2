package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwebster45206/resentcalc/internal/config"
)

func TestNew_Format(t *testing.T) {
	var buf bytes.Buffer
	log := New(&config.Config{Environment: "production", LogLevel: slog.LevelInfo}, &buf)
	WithSession(log, "abc").Info("hello")

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "hello", rec["msg"])
	assert.Equal(t, "abc", rec["session_id"])

	buf.Reset()
	log = New(&config.Config{Environment: "development", LogLevel: slog.LevelWarn}, &buf)
	log.Info("quiet")
	assert.Empty(t, buf.String())
	WithError(log, errors.New("boom")).Warn("loud")
	assert.Contains(t, buf.String(), "error=boom")
}

func TestSetup_WritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "game.log")
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	log, closer, err := Setup(&config.Config{LogFile: path, LogLevel: slog.LevelDebug})
	require.NoError(t, err)
	log.Debug("written")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "written")
}
