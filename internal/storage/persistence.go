package storage

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/jwebster45206/resentcalc/pkg/state"
)

// Persistence is the engine's view of storage. Loading never fails: anything
// unreadable is logged and treated as a first launch. Saves carry the epoch
// they were produced in, and a Clear fences off every older epoch so a save
// racing a wipe cannot bring the wiped state back.
type Persistence struct {
	store  SnapshotStore
	logger *slog.Logger

	mu    sync.Mutex
	epoch uint64
}

func NewPersistence(store SnapshotStore, logger *slog.Logger) *Persistence {
	return &Persistence{store: store, logger: logger}
}

// Load returns the stored snapshot, or nil when there is none or it is unusable.
func (p *Persistence) Load(ctx context.Context) *state.Snapshot {
	p.mu.Lock()
	defer p.mu.Unlock()

	data, err := p.store.Get(ctx)
	if errors.Is(err, ErrNotFound) {
		p.logger.Info("No saved snapshot, starting fresh")
		return nil
	}
	if err != nil {
		p.logger.Warn("Failed to read snapshot, starting fresh", "error", err)
		return nil
	}
	snap, err := state.DecodeSnapshot(data)
	if err != nil {
		p.logger.Warn("Discarding corrupt snapshot", "error", err, "bytes", len(data))
		return nil
	}
	return snap
}

// Save writes snap unless a Clear with a newer epoch already ran. It reports
// whether the write happened.
func (p *Persistence) Save(ctx context.Context, snap state.Snapshot, epoch uint64) (bool, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if epoch < p.epoch {
		p.logger.Debug("Dropping save from before a wipe", "epoch", epoch, "current", p.epoch)
		return false, nil
	}
	data, err := snap.Encode()
	if err != nil {
		return false, err
	}
	if err := p.store.Put(ctx, data); err != nil {
		return false, fmt.Errorf("failed to save snapshot: %w", err)
	}
	return true, nil
}

// Clear deletes the stored snapshot and rejects saves from earlier epochs.
func (p *Persistence) Clear(ctx context.Context, epoch uint64) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if epoch > p.epoch {
		p.epoch = epoch
	}
	if err := p.store.Delete(ctx); err != nil {
		return fmt.Errorf("failed to clear snapshot: %w", err)
	}
	return nil
}
