// Package cache holds rendered public views in Redis so catalog and
// banner reads skip the database between writes. Writes invalidate the
// affected paths; a nil *Views disables caching entirely, and reads then
// go straight to the store.
package cache

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "views:"

// Views is a small path-keyed cache for public JSON payloads.
type Views struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewViews connects to Redis and returns a view cache. The connection is
// verified with a ping so a bad address fails at startup, not on the
// first request.
func NewViews(addr, password string, db int, ttl time.Duration) (*Views, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	return &Views{rdb: rdb, ttl: ttl}, nil
}

// Get returns the cached payload for a path, if present.
func (v *Views) Get(ctx context.Context, path string) ([]byte, bool) {
	if v == nil {
		return nil, false
	}
	payload, err := v.rdb.Get(ctx, keyPrefix+path).Bytes()
	if err != nil {
		if err != redis.Nil {
			log.Printf("View cache read for %s failed: %v", path, err)
		}
		return nil, false
	}
	return payload, true
}

// Set stores the payload for a path. Failures are logged and swallowed;
// the cache is never allowed to fail a request.
func (v *Views) Set(ctx context.Context, path string, payload []byte) {
	if v == nil {
		return
	}
	if err := v.rdb.Set(ctx, keyPrefix+path, payload, v.ttl).Err(); err != nil {
		log.Printf("View cache write for %s failed: %v", path, err)
	}
}

// Invalidate drops the cached payloads for the given paths.
func (v *Views) Invalidate(ctx context.Context, paths ...string) {
	if v == nil || len(paths) == 0 {
		return
	}
	keys := make([]string, len(paths))
	for i, p := range paths {
		keys[i] = keyPrefix + p
	}
	if err := v.rdb.Del(ctx, keys...).Err(); err != nil {
		log.Printf("View cache invalidation failed: %v", err)
	}
}

// Close releases the Redis connection.
func (v *Views) Close() error {
	if v == nil {
		return nil
	}
	return v.rdb.Close()
}
