// Social Media App - Graph-Backed Social Content API
// Copyright 2026 Moneeb Shammout (moneebshammout)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/moneebshammout/social-media-app

package models

import (
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFeedItemActivePoll(t *testing.T) {
	row := map[string]any{
		"entity":       "ActivePoll",
		"id":           "poll-1",
		"createdDate":  "2026-01-02 10:30",
		"description":  "pick one",
		"ownerId":      "u1",
		"ownerName":    "amal",
		"ownerImageId": "img-1",
		"type":         "single",
		"totalLike":    int64(3),
		"totalDislike": int64(1),
		"reacted":      false,
	}

	item, err := NewFeedItem(row)
	require.NoError(t, err)

	assert.Equal(t, FeedActivePoll, item.Entity)
	assert.Equal(t, "poll-1", item.ID)
	assert.Equal(t, "u1", item.OwnerID)
	assert.Equal(t, int64(3), item.Extra["totalLike"])
	assert.NotContains(t, item.Extra, "totalRight")
}

func TestNewFeedItemRejectsUnknownEntity(t *testing.T) {
	_, err := NewFeedItem(map[string]any{"entity": "Story", "id": "x"})
	assert.Error(t, err)
}

func TestFeedItemMarshalFlattensVariant(t *testing.T) {
	item := FeedItem{
		Entity:      FeedPost,
		ID:          "post-1",
		CreatedDate: "2026-01-02 10:30",
		OwnerID:     "u1",
		OwnerName:   "amal",
		OwnerImage:  "img-1",
		Extra: map[string]any{
			"totalUpVotes": int64(4),
			"reactedUP":    true,
		},
	}

	raw, err := json.Marshal(item)
	require.NoError(t, err)

	var out map[string]any
	require.NoError(t, json.Unmarshal(raw, &out))
	assert.Equal(t, "Post", out["entity"])
	assert.Equal(t, "post-1", out["id"])
	assert.Equal(t, float64(4), out["totalUpVotes"])
	assert.Equal(t, true, out["reactedUP"])
	assert.NotContains(t, out, "description")
}
