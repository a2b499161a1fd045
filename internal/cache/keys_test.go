// Social Media App - Graph-Backed Social Content API
// Copyright 2026 Moneeb Shammout (moneebshammout)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/moneebshammout/social-media-app

package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestKeyFormats(t *testing.T) {
	assert.Equal(t, "u1userBy", UserByIDKey("u1"))
	assert.Equal(t, "usersByamalpage2", UsersByNameKey("amal", 2))
	assert.Equal(t, "countsByUseru1", CountsByUserKey("u1"))
	assert.Equal(t, "userRelatedInFOLLOWidu1page1", UserRelatedInKey("FOLLOW", "u1", 1))
	assert.Equal(t, "userRelatedOutFOLLOWidu1page3", UserRelatedOutKey("FOLLOW", "u1", 3))
	assert.Equal(t, "mePage1PollsByu1", PollsByMeKey(1, "u1"))
	assert.Equal(t, "PollsByu1u2page1", PollsByOthersKey("u1", "u2", 1))
	assert.Equal(t, "PollsBysportsu2page1", PollsByGenreKey("sports", "u2", 1))
	assert.Equal(t, "Page1PostsByOwneru1vieweru2", PostsByOwnerKey(1, "u1", "u2"))
	assert.Equal(t, "Page2PostsByDeschellovieweru2", PostsByDescriptionKey(2, "hello", "u2"))
	assert.Equal(t, "Page1ReviewsByOwneru1vieweru2", ReviewsByOwnerKey(1, "u1", "u2"))
	assert.Equal(t, "Page1ReviewsByNameacmevieweru2", ReviewsByNameKey(1, "acme", "u2"))
	assert.Equal(t, "CommentsBypost-1page1", CommentsKey("post-1", 1))
	assert.Equal(t, "paidByu1Page2", PaidByKey("u1", 2))
	assert.Equal(t, "feedFollowingPage1Foru1", FollowingFeedKey(1, "u1"))
	assert.Equal(t, "feedPaidPage1Foru1", PaidFeedKey(1, "u1"))
}

func TestKeyDeterminismAndDistinctness(t *testing.T) {
	// Identical parameters produce identical keys.
	assert.Equal(t, PollsByOthersKey("u1", "u2", 1), PollsByOthersKey("u1", "u2", 1))

	// Changing any one parameter changes the key.
	base := PostsByOwnerKey(1, "u1", "u2")
	assert.NotEqual(t, base, PostsByOwnerKey(2, "u1", "u2"))
	assert.NotEqual(t, base, PostsByOwnerKey(1, "u9", "u2"))
	assert.NotEqual(t, base, PostsByOwnerKey(1, "u1", "u9"))

	// Relation keys embed direction and page.
	assert.NotEqual(t, UserRelatedInKey("FOLLOW", "u1", 1), UserRelatedOutKey("FOLLOW", "u1", 1))
	assert.NotEqual(t, UserRelatedInKey("FOLLOW", "u1", 1), UserRelatedInKey("FOLLOW", "u1", 2))
	assert.NotEqual(t, UserRelatedInKey("FOLLOW", "u1", 1), UserRelatedInKey("SUBSCRIBE", "u1", 1))
}

func TestTTLTable(t *testing.T) {
	assert.Equal(t, 1800*time.Second, TTLUserByID)
	assert.Equal(t, 1800*time.Second, TTLUsersByName)
	assert.Equal(t, 1800*time.Second, TTLCountsByUser)
	assert.Equal(t, 1800*time.Second, TTLUserRelated)
	assert.Equal(t, 300*time.Second, TTLPollsByOthers)
	assert.Equal(t, 300*time.Second, TTLPollsByGenre)
	assert.Equal(t, 60*time.Second, TTLPostsByUser)
	assert.Equal(t, 300*time.Second, TTLPostsByDesc)
	assert.Equal(t, 300*time.Second, TTLReviewsByUser)
	assert.Equal(t, 60*time.Second, TTLReviewsByName)
	assert.Equal(t, 300*time.Second, TTLComments)
	assert.Equal(t, 1800*time.Second, TTLPaidByUser)
	assert.Equal(t, 300*time.Second, TTLFeed)
}

func TestInvalidationPatternsMatchKeys(t *testing.T) {
	// Poll pages for an owner are caught by the owner pattern.
	assert.True(t, matchGlob(PollsByOwnerPattern("u1"), PollsByMeKey(1, "u1")))
	assert.True(t, matchGlob(PollsByOwnerPattern("u1"), PollsByMeKey(7, "u1")))
	assert.False(t, matchGlob(PollsByOwnerPattern("u1"), PollsByMeKey(1, "u2")))

	// Post pages wildcard page and viewer.
	assert.True(t, matchGlob(PostsByOwnerPattern("u1"), PostsByOwnerKey(3, "u1", "u9")))
	assert.False(t, matchGlob(PostsByOwnerPattern("u1"), PostsByOwnerKey(3, "u2", "u9")))

	// Paid content pages wildcard the page only.
	assert.True(t, matchGlob(PaidContentPattern("u1"), PaidByKey("u1", 4)))
	assert.False(t, matchGlob(PaidContentPattern("u1"), PaidByKey("u2", 4)))

	// Review pages wildcard page and viewer.
	assert.True(t, matchGlob(ReviewsByOwnerPattern("u1"), ReviewsByOwnerKey(2, "u1", "u5")))

	// Soft delete sweeps everything mentioning the entity type and owner.
	assert.True(t, matchGlob(SoftDeletePattern("Poll", "u1"), PollsByMeKey(1, "u1")))
	assert.True(t, matchGlob(SoftDeletePattern("Post", "u1"), PostsByOwnerKey(1, "u1", "u2")))
	assert.False(t, matchGlob(SoftDeletePattern("Review", "u1"), PostsByOwnerKey(1, "u1", "u2")))
}
