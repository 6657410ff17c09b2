// Package storage persists the narrative snapshot under a single key.
package storage

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Get when nothing has been saved.
var ErrNotFound = errors.New("snapshot not found")

// SnapshotStore holds one encoded snapshot.
type SnapshotStore interface {
	// Health and lifecycle
	Ping(ctx context.Context) error
	Close() error

	Get(ctx context.Context) ([]byte, error)
	Put(ctx context.Context, data []byte) error
	Delete(ctx context.Context) error
}
