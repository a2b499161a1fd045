// Social Media App - Graph-Backed Social Content API
// Copyright 2026 Moneeb Shammout (moneebshammout)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/moneebshammout/social-media-app

package cache

import (
	"context"
	"strings"
	"sync"
	"time"
)

// entry is a cached item. A zero ExpiresAt means no expiry.
type entry struct {
	value     []byte
	expiresAt time.Time
}

// Stats tracks cache performance counters.
type Stats struct {
	Hits      int64
	Misses    int64
	Evictions int64
	TotalKeys int64
}

// MemoryStore is a thread-safe in-process Store. It backs tests and
// cacheless deployments where Redis is disabled.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string]entry
	stats   Stats
	done    chan struct{}
	once    sync.Once
}

// cleanupInterval is how often expired entries are swept.
const cleanupInterval = 5 * time.Minute

// NewMemoryStore creates an in-process store with a background cleanup
// goroutine that sweeps expired entries.
func NewMemoryStore() *MemoryStore {
	s := &MemoryStore{
		entries: make(map[string]entry),
		done:    make(chan struct{}),
	}

	go s.cleanupLoop()

	return s
}

// Get returns the value stored under key, or ErrCacheMiss.
func (s *MemoryStore) Get(_ context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	e, exists := s.entries[key]
	s.mu.RUnlock()

	if !exists {
		s.recordMiss()
		return nil, ErrCacheMiss
	}

	if !e.expiresAt.IsZero() && time.Now().After(e.expiresAt) {
		s.mu.Lock()
		delete(s.entries, key)
		s.mu.Unlock()
		s.recordMiss()
		s.recordEviction()
		return nil, ErrCacheMiss
	}

	s.recordHit()
	return e.value, nil
}

// Set stores value under key with no expiry.
func (s *MemoryStore) Set(_ context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[key] = entry{value: value}
	s.stats.TotalKeys = int64(len(s.entries))
	return nil
}

// SetTTL stores value under key, expiring after ttl.
func (s *MemoryStore) SetTTL(_ context.Context, key string, value []byte, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[key] = entry{value: value, expiresAt: time.Now().Add(ttl)}
	s.stats.TotalKeys = int64(len(s.entries))
	return nil
}

// Delete removes the given keys.
func (s *MemoryStore) Delete(_ context.Context, keys ...string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, key := range keys {
		delete(s.entries, key)
	}
	s.stats.TotalKeys = int64(len(s.entries))
	return nil
}

// DeletePattern deletes all keys matching the glob pattern.
func (s *MemoryStore) DeletePattern(_ context.Context, pattern string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	deleted := 0
	for key := range s.entries {
		if matchGlob(pattern, key) {
			delete(s.entries, key)
			deleted++
		}
	}
	s.stats.TotalKeys = int64(len(s.entries))
	return deleted, nil
}

// Ping always succeeds for the in-process store.
func (s *MemoryStore) Ping(context.Context) error {
	return nil
}

// Close stops the cleanup goroutine.
func (s *MemoryStore) Close() error {
	s.once.Do(func() { close(s.done) })
	return nil
}

// Stats returns a snapshot of the cache counters.
func (s *MemoryStore) Stats() Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.stats
}

// cleanupLoop periodically removes expired entries.
func (s *MemoryStore) cleanupLoop() {
	ticker := time.NewTicker(cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.cleanup()
		case <-s.done:
			return
		}
	}
}

// cleanup removes all expired entries.
func (s *MemoryStore) cleanup() {
	now := time.Now()

	s.mu.Lock()
	defer s.mu.Unlock()

	for key, e := range s.entries {
		if !e.expiresAt.IsZero() && now.After(e.expiresAt) {
			delete(s.entries, key)
			s.stats.Evictions++
		}
	}
	s.stats.TotalKeys = int64(len(s.entries))
}

func (s *MemoryStore) recordHit() {
	s.mu.Lock()
	s.stats.Hits++
	s.mu.Unlock()
}

func (s *MemoryStore) recordMiss() {
	s.mu.Lock()
	s.stats.Misses++
	s.mu.Unlock()
}

func (s *MemoryStore) recordEviction() {
	s.mu.Lock()
	s.stats.Evictions++
	s.mu.Unlock()
}

// matchGlob matches s against a pattern where '*' matches any run of
// characters, including an empty one. The key scheme uses no other
// metacharacters.
func matchGlob(pattern, s string) bool {
	parts := strings.Split(pattern, "*")
	if len(parts) == 1 {
		return pattern == s
	}

	if !strings.HasPrefix(s, parts[0]) {
		return false
	}
	s = s[len(parts[0]):]

	last := len(parts) - 1
	for _, part := range parts[1:last] {
		if part == "" {
			continue
		}
		idx := strings.Index(s, part)
		if idx < 0 {
			return false
		}
		s = s[idx+len(part):]
	}

	return strings.HasSuffix(s, parts[last])
}
