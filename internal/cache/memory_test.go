// Social Media App - Graph-Backed Social Content API
// Copyright 2026 Moneeb Shammout (moneebshammout)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/moneebshammout/social-media-app

package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *MemoryStore {
	t.Helper()
	s := NewMemoryStore()
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestMemoryStoreGetSet(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	_, err := s.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrCacheMiss)

	require.NoError(t, s.Set(ctx, "k", []byte(`{"a":1}`)))
	val, err := s.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"a":1}`), val)

	stats := s.Stats()
	assert.Equal(t, int64(1), stats.Hits)
	assert.Equal(t, int64(1), stats.Misses)
}

func TestMemoryStoreTTLExpiry(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.SetTTL(ctx, "short", []byte("v"), 10*time.Millisecond))

	val, err := s.Get(ctx, "short")
	require.NoError(t, err)
	assert.Equal(t, []byte("v"), val)

	time.Sleep(20 * time.Millisecond)

	_, err = s.Get(ctx, "short")
	assert.ErrorIs(t, err, ErrCacheMiss)
	assert.Equal(t, int64(1), s.Stats().Evictions)
}

func TestMemoryStoreDurableEntriesNeverExpire(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "durable", []byte("v")))
	time.Sleep(10 * time.Millisecond)

	val, err := s.Get(ctx, "durable")
	require.NoError(t, err)
	assert.Equal(t, []byte("v"), val)
}

func TestMemoryStoreDelete(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "a", []byte("1")))
	require.NoError(t, s.Set(ctx, "b", []byte("2")))
	require.NoError(t, s.Delete(ctx, "a", "b", "nonexistent"))

	_, err := s.Get(ctx, "a")
	assert.ErrorIs(t, err, ErrCacheMiss)
	_, err = s.Get(ctx, "b")
	assert.ErrorIs(t, err, ErrCacheMiss)
}

func TestMemoryStoreDeletePattern(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, PollsByMeKey(1, "u1"), []byte("1")))
	require.NoError(t, s.Set(ctx, PollsByMeKey(2, "u1"), []byte("2")))
	require.NoError(t, s.Set(ctx, PollsByMeKey(1, "u2"), []byte("3")))

	deleted, err := s.DeletePattern(ctx, PollsByOwnerPattern("u1"))
	require.NoError(t, err)
	assert.Equal(t, 2, deleted)

	_, err = s.Get(ctx, PollsByMeKey(1, "u1"))
	assert.ErrorIs(t, err, ErrCacheMiss)

	val, err := s.Get(ctx, PollsByMeKey(1, "u2"))
	require.NoError(t, err)
	assert.Equal(t, []byte("3"), val)
}

func TestMatchGlob(t *testing.T) {
	tests := []struct {
		pattern string
		s       string
		want    bool
	}{
		{"exact", "exact", true},
		{"exact", "exactly", false},
		{"mePage*PollsByu1", "mePage1PollsByu1", true},
		{"mePage*PollsByu1", "mePage12PollsByu1", true},
		{"mePage*PollsByu1", "mePage1PollsByu2", false},
		{"Page*PostsByOwneru1viewer*", "Page1PostsByOwneru1vieweru2", true},
		{"Page*PostsByOwneru1viewer*", "Page1PostsByOwneru2vieweru2", false},
		{"*Poll*u1*", "mePage1PollsByu1", true},
		{"*Poll*u1*", "Page1PostsByOwneru1vieweru2", false},
		{"paidByu1Page*", "paidByu1Page3", true},
		{"paidByu1Page*", "paidByu11Page3", true},
		{"*", "anything", true},
		{"a*a", "a", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, matchGlob(tt.pattern, tt.s), "pattern=%s s=%s", tt.pattern, tt.s)
	}
}

func TestCacheAdvisorySemantics(t *testing.T) {
	s := newTestStore(t)
	c := New(s)
	ctx := context.Background()

	_, hit := c.Get(ctx, "nope")
	assert.False(t, hit)

	c.SetTTL(ctx, "k", map[string]any{"n": 1}, time.Minute)
	raw, hit := c.Get(ctx, "k")
	require.True(t, hit)
	assert.JSONEq(t, `{"n":1}`, string(raw))

	c.Set(ctx, PollsByMeKey(1, "u1"), []any{})
	c.Invalidate(ctx, PollsByOwnerPattern("u1"))
	_, hit = c.Get(ctx, PollsByMeKey(1, "u1"))
	assert.False(t, hit)
}
