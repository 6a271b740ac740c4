// Package cache provides an optional Redis-backed response cache for
// processed queries. The concierge runs fine without it; when REDIS_ADDR is
// unset the cache is constructed around a nil client and every lookup is a
// miss.
package cache

import (
	"context"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

const responseCacheTTL = 24 * time.Hour

// ResponseCache stores fully rendered query responses keyed by versioned
// cache keys (see internal/version).
type ResponseCache struct {
	rdb *redis.Client
}

// NewResponseCache wraps a redis client. A nil client disables the cache.
func NewResponseCache(rdb *redis.Client) *ResponseCache {
	return &ResponseCache{rdb: rdb}
}

// Enabled reports whether a backing store is configured.
func (c *ResponseCache) Enabled() bool {
	return c.rdb != nil
}

// Check returns the cached value for key, if present.
func (c *ResponseCache) Check(ctx context.Context, key string) (string, bool) {
	if c.rdb == nil {
		return "", false
	}
	val, err := c.rdb.Get(ctx, key).Result()
	if err != nil {
		if err != redis.Nil {
			log.Printf("WARNING: cache lookup failed: %v", err)
		}
		return "", false
	}
	return val, true
}

// Set stores a value under key with the standard TTL. Failures are logged
// and swallowed; caching is best-effort.
func (c *ResponseCache) Set(ctx context.Context, key, value string) {
	if c.rdb == nil {
		return
	}
	if err := c.rdb.Set(ctx, key, value, responseCacheTTL).Err(); err != nil {
		log.Printf("WARNING: cache set failed: %v", err)
	}
}
