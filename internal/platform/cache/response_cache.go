// Package cache provides a Redis-backed cache for content-service responses.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// ResponseCache stores raw response bodies under a key derived from the request
// path and query. A nil Redis client turns every operation into a no-op, so
// callers never need to special-case a missing cache.
type ResponseCache struct {
	rdb       *redis.Client
	namespace string
}

// NewResponseCache returns a cache writing under namespace (default "content").
func NewResponseCache(rdb *redis.Client, namespace string) *ResponseCache {
	if namespace == "" {
		namespace = "content"
	}
	return &ResponseCache{rdb: rdb, namespace: namespace}
}

// Get returns the cached body for path+query, if any.
func (c *ResponseCache) Get(ctx context.Context, path, query string) ([]byte, bool) {
	if c == nil || c.rdb == nil {
		return nil, false
	}
	b, err := c.rdb.Get(ctx, c.key(path, query)).Bytes()
	if err != nil {
		if err != redis.Nil {
			slog.Warn("response cache read failed", "path", path, "error", err)
		}
		return nil, false
	}
	if len(b) == 0 {
		return nil, false
	}
	return b, true
}

// Set stores body for ttl. Failures are logged and otherwise ignored.
func (c *ResponseCache) Set(ctx context.Context, path, query string, body []byte, ttl time.Duration) {
	if c == nil || c.rdb == nil || ttl <= 0 {
		return
	}
	if err := c.rdb.Set(ctx, c.key(path, query), body, ttl).Err(); err != nil {
		slog.Warn("response cache write failed", "path", path, "error", err)
	}
}

// InvalidatePath drops every cached response for path, whatever its query.
func (c *ResponseCache) InvalidatePath(ctx context.Context, path string) error {
	if c == nil || c.rdb == nil {
		return nil
	}
	return c.deleteByPattern(ctx, c.pathPrefix(path)+"*")
}

// key is namespace:path:sha256(query)[:16].
func (c *ResponseCache) key(path, query string) string {
	sum := sha256.Sum256([]byte(query))
	return fmt.Sprintf("%s%s", c.pathPrefix(path), hex.EncodeToString(sum[:8]))
}

func (c *ResponseCache) pathPrefix(path string) string {
	return fmt.Sprintf("%s:%s:", c.namespace, safe(path))
}

// deleteByPattern deletes all keys matching pattern using SCAN.
func (c *ResponseCache) deleteByPattern(ctx context.Context, pattern string) error {
	var cursor uint64
	for {
		keys, cur, err := c.rdb.Scan(ctx, cursor, pattern, 200).Result()
		if err != nil {
			return err
		}
		if len(keys) > 0 {
			if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
				return err
			}
		}
		cursor = cur
		if cursor == 0 {
			break
		}
	}
	return nil
}

// safe replaces characters that clash with the key layout or SCAN glob syntax.
var safeReplacer = strings.NewReplacer(" ", "_", ":", "_", "*", "_", "?", "_", "[", "_", "]", "_")

func safe(s string) string {
	return safeReplacer.Replace(s)
}
