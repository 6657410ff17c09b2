package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jwebster45206/resentcalc/internal/config"
	"github.com/jwebster45206/resentcalc/internal/engine"
	"github.com/jwebster45206/resentcalc/internal/events"
	"github.com/jwebster45206/resentcalc/internal/logger"
	"github.com/jwebster45206/resentcalc/internal/oracle"
	"github.com/jwebster45206/resentcalc/internal/storage"
	"github.com/jwebster45206/resentcalc/pkg/sound"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
		os.Exit(1)
	}

	log, logFile, err := logger.Setup(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to set up logging: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = logFile.Close() // Ignore error in defer
	}()
	log = logger.WithSession(log, cfg.SessionID.String())

	if err := run(cfg, log); err != nil {
		logger.WithError(log, err).Error("resentcalc exited with error")
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, log *slog.Logger) error {
	ctx := context.Background()

	store, broadcaster, err := openStore(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer func() {
		_ = store.Close() // Ignore error in defer
	}()

	calc, closeOracle, err := openOracle(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer closeOracle()

	persist := storage.NewPersistence(store, log)
	model := engine.NewModel(persist.Load(ctx))

	log.Info("Starting resentcalc",
		"environment", cfg.Environment,
		"storage", cfg.StorageBackend,
		"offline", cfg.Offline(),
		"day", model.State.Day.String(),
	)

	app := NewApp(AppDeps{
		Engine:      engine.New(engine.RealClock{}, log),
		Model:       model,
		Oracle:      calc,
		Persistence: persist,
		Broadcaster: broadcaster,
		Player:      sound.NewBellPlayer(os.Stderr),
		Logger:      log,
	})

	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running program: %w", err)
	}
	return nil
}

// openStore picks the snapshot backend. Milestones are only broadcast when
// Redis is in use.
func openStore(ctx context.Context, cfg *config.Config, log *slog.Logger) (storage.SnapshotStore, *events.Broadcaster, error) {
	switch cfg.StorageBackend {
	case config.BackendRedis:
		rs, err := storage.NewRedisStore(cfg.RedisURL, cfg.RedisKey, log)
		if err != nil {
			return nil, nil, err
		}
		if err := rs.WaitForConnection(ctx, 5, time.Second); err != nil {
			_ = rs.Close()
			return nil, nil, fmt.Errorf("failed to connect to redis: %w", err)
		}
		return rs, events.NewBroadcaster(rs.Client(), cfg.SessionID, log), nil

	case config.BackendMemory:
		return storage.NewMemoryStore(), nil, nil

	default:
		fs := storage.NewFileStore(cfg.SavePath)
		if err := fs.Ping(ctx); err != nil {
			return nil, nil, err
		}
		log.Info("Using save file", "path", fs.Path())
		return fs, nil, nil
	}
}

func openOracle(ctx context.Context, cfg *config.Config, log *slog.Logger) (oracle.Oracle, func(), error) {
	if cfg.Offline() {
		log.Info("No GEMINI_API_KEY set, using the offline personality")
		return oracle.NewLocalOracle(), func() {}, nil
	}
	g, err := oracle.NewGeminiOracle(ctx, cfg.GeminiAPIKey, cfg.GeminiModel, log)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create gemini oracle: %w", err)
	}
	return g, func() { _ = g.Close() }, nil
}
