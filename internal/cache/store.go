// Social Media App - Graph-Backed Social Content API
// Copyright 2026 Moneeb Shammout (moneebshammout)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/moneebshammout/social-media-app

// Package cache provides the response cache: a Store abstraction with Redis
// and in-memory implementations, the deterministic key scheme with its TTL
// table, and pattern-based invalidation.
//
// The cache is advisory. Every store error degrades to a miss or a logged
// no-op; a request never fails because the cache is unavailable.
package cache

import (
	"context"
	"errors"
	"time"
)

// ErrCacheMiss is returned by Get when the key is absent or expired.
var ErrCacheMiss = errors.New("cache: miss")

// Store is the key-value contract the response cache runs on.
//
// DeletePattern enumerates keys matching a glob pattern ('*' wildcards) and
// deletes them in one call. The enumerate/delete pair is not atomic against
// concurrent writers: a key written in between survives until its TTL. That
// staleness window is accepted and surfaced through the invalidation metrics.
type Store interface {
	// Get returns the value stored under key, or ErrCacheMiss.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores value under key with no expiry.
	Set(ctx context.Context, key string, value []byte) error

	// SetTTL stores value under key, expiring after ttl.
	SetTTL(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete removes the given keys. Missing keys are not an error.
	Delete(ctx context.Context, keys ...string) error

	// DeletePattern deletes all keys matching the glob pattern and returns
	// how many were removed.
	DeletePattern(ctx context.Context, pattern string) (int, error)

	// Ping verifies the store is reachable.
	Ping(ctx context.Context) error

	// Close releases the store's resources.
	Close() error
}
