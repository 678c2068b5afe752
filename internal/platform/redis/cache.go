package redis

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// ViewCache is a generic JSON-backed Redis cache for entity snapshots.
// Keys are namespaced by prefix; a zero TTL keeps keys until deleted.
type ViewCache[T any] struct {
	client goredis.Cmdable
	prefix string
	ttl    time.Duration
	logger *slog.Logger
}

// NewViewCache creates a ViewCache backed by the provided Redis client.
func NewViewCache[T any](client goredis.Cmdable, prefix string, ttl time.Duration, logger *slog.Logger) *ViewCache[T] {
	return &ViewCache[T]{client: client, prefix: prefix, ttl: ttl, logger: logger}
}

func (c *ViewCache[T]) key(k string) string {
	return c.prefix + ":" + k
}

// Get retrieves and unmarshals a value. Misses and decode errors both report false.
func (c *ViewCache[T]) Get(ctx context.Context, key string) (*T, bool) {
	data, err := c.client.Get(ctx, c.key(key)).Bytes()
	if err != nil {
		if !errors.Is(err, goredis.Nil) {
			c.logger.WarnContext(ctx, "view cache read failed", "key", c.key(key), "error", err)
		}
		return nil, false
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		c.logger.WarnContext(ctx, "view cache decode failed", "key", c.key(key), "error", err)
		return nil, false
	}
	return &v, true
}

// Set stores value under key. Write failures are logged, not returned.
func (c *ViewCache[T]) Set(ctx context.Context, key string, value *T) {
	data, err := json.Marshal(value)
	if err != nil {
		c.logger.WarnContext(ctx, "view cache encode failed", "key", c.key(key), "error", err)
		return
	}
	if err := c.client.Set(ctx, c.key(key), data, c.ttl).Err(); err != nil {
		c.logger.WarnContext(ctx, "view cache write failed", "key", c.key(key), "error", err)
	}
}

// Delete removes key.
func (c *ViewCache[T]) Delete(ctx context.Context, key string) {
	if err := c.client.Del(ctx, c.key(key)).Err(); err != nil {
		c.logger.WarnContext(ctx, "view cache delete failed", "key", c.key(key), "error", err)
	}
}
