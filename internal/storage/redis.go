package storage

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// DefaultKey is the key the snapshot lives under.
const DefaultKey = "resentcalc_v1"

// RedisStore keeps the snapshot in a Redis string.
type RedisStore struct {
	client *redis.Client
	key    string
	logger *slog.Logger
}

// Ensure RedisStore implements SnapshotStore interface
var _ SnapshotStore = (*RedisStore)(nil)

// NewRedisStore connects to redisURL, which may be a redis:// URL or a bare
// host:port address.
func NewRedisStore(redisURL, key string, logger *slog.Logger) (*RedisStore, error) {
	opts := &redis.Options{Addr: redisURL}
	if strings.Contains(redisURL, "://") {
		parsed, err := redis.ParseURL(redisURL)
		if err != nil {
			return nil, fmt.Errorf("invalid redis url: %w", err)
		}
		opts = parsed
	}
	if key == "" {
		key = DefaultKey
	}
	return &RedisStore{
		client: redis.NewClient(opts),
		key:    key,
		logger: logger,
	}, nil
}

// Client exposes the connection for pub/sub.
func (r *RedisStore) Client() *redis.Client {
	return r.client
}

func (r *RedisStore) Ping(ctx context.Context) error {
	if err := r.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping failed: %w", err)
	}
	return nil
}

func (r *RedisStore) Close() error {
	if err := r.client.Close(); err != nil {
		r.logger.Error("Failed to close Redis connection", "error", err)
		return err
	}
	r.logger.Info("Redis connection closed")
	return nil
}

// WaitForConnection waits for Redis to become available (used during startup)
func (r *RedisStore) WaitForConnection(ctx context.Context, maxRetries int, retryDelay time.Duration) error {
	for i := 0; i < maxRetries; i++ {
		if err := r.Ping(ctx); err != nil {
			r.logger.Debug("Redis not ready yet", "error", err, "attempt", i+1)

			select {
			case <-ctx.Done():
				return fmt.Errorf("context cancelled while waiting for redis: %w", ctx.Err())
			case <-time.After(retryDelay):
				continue
			}
		}

		r.logger.Info("Redis connection established")
		return nil
	}

	return fmt.Errorf("redis did not become available after %d attempts", maxRetries)
}

func (r *RedisStore) Get(ctx context.Context) ([]byte, error) {
	data, err := r.client.Get(ctx, r.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		r.logger.Error("Failed to load snapshot", "key", r.key, "error", err)
		return nil, fmt.Errorf("failed to load snapshot: %w", err)
	}
	return data, nil
}

// Put stores data without expiry; a save lives until it is wiped.
func (r *RedisStore) Put(ctx context.Context, data []byte) error {
	if err := r.client.Set(ctx, r.key, data, 0).Err(); err != nil {
		r.logger.Error("Failed to save snapshot", "key", r.key, "error", err)
		return fmt.Errorf("failed to save snapshot: %w", err)
	}
	return nil
}

func (r *RedisStore) Delete(ctx context.Context) error {
	if err := r.client.Del(ctx, r.key).Err(); err != nil {
		r.logger.Error("Failed to delete snapshot", "key", r.key, "error", err)
		return fmt.Errorf("failed to delete snapshot: %w", err)
	}
	return nil
}
