// Social Media App - Graph-Backed Social Content API
// Copyright 2026 Moneeb Shammout (moneebshammout)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/moneebshammout/social-media-app

package cache

import (
	"context"
	"errors"
	"time"

	json "github.com/goccy/go-json"

	"github.com/moneebshammout/social-media-app/internal/logging"
	"github.com/moneebshammout/social-media-app/internal/metrics"
)

// Cache wraps a Store with the advisory semantics the handlers rely on:
// every store error degrades to a miss or a logged no-op and is counted,
// so a broken cache slows requests down but never fails them.
type Cache struct {
	store Store
}

// New wraps a Store.
func New(store Store) *Cache {
	return &Cache{store: store}
}

// Store exposes the underlying store, mainly for health checks.
func (c *Cache) Store() Store {
	return c.store
}

// Get returns the cached payload for key and whether it was a hit.
func (c *Cache) Get(ctx context.Context, key string) (json.RawMessage, bool) {
	value, err := c.store.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, ErrCacheMiss) {
			metrics.CacheErrors.Inc()
			logging.Warn().Err(err).Str("key", key).Msg("cache read failed, treating as miss")
		}
		metrics.CacheMisses.Inc()
		return nil, false
	}
	metrics.CacheHits.Inc()
	return value, true
}

// Set marshals value and stores it durably under key.
func (c *Cache) Set(ctx context.Context, key string, value any) {
	c.write(ctx, key, value, 0)
}

// SetTTL marshals value and stores it under key with the given expiry.
func (c *Cache) SetTTL(ctx context.Context, key string, value any, ttl time.Duration) {
	c.write(ctx, key, value, ttl)
}

func (c *Cache) write(ctx context.Context, key string, value any, ttl time.Duration) {
	raw, err := json.Marshal(value)
	if err != nil {
		logging.Error().Err(err).Str("key", key).Msg("cache value marshal failed")
		return
	}

	if ttl > 0 {
		err = c.store.SetTTL(ctx, key, raw, ttl)
	} else {
		err = c.store.Set(ctx, key, raw)
	}
	if err != nil {
		metrics.CacheErrors.Inc()
		logging.Warn().Err(err).Str("key", key).Msg("cache write failed")
	}
}

// Invalidate deletes every key matching the glob pattern and records the
// invalidation metrics.
func (c *Cache) Invalidate(ctx context.Context, pattern string) {
	deleted, err := c.store.DeletePattern(ctx, pattern)
	if err != nil {
		metrics.CacheErrors.Inc()
		logging.Warn().Err(err).Str("pattern", pattern).Msg("cache invalidation failed")
		return
	}
	metrics.RecordPatternInvalidation(deleted)
	logging.Debug().Str("pattern", pattern).Int("keys", deleted).Msg("cache invalidated")
}

// Close closes the underlying store.
func (c *Cache) Close() error {
	return c.store.Close()
}
