// Social Media App - Graph-Backed Social Content API
// Copyright 2026 Moneeb Shammout (moneebshammout)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/moneebshammout/social-media-app

package cache

import (
	"fmt"
	"time"
)

// Expiry table in seconds, one value per logical query class. Keys built by
// the constructors below are cached with exactly these TTLs; PollsByMeKey is
// durable and invalidated only by pattern.
const (
	TTLUserByID      = 1800 * time.Second
	TTLUsersByName   = 1800 * time.Second
	TTLCountsByUser  = 1800 * time.Second
	TTLUserRelated   = 1800 * time.Second
	TTLPollsByOthers = 300 * time.Second
	TTLPollsByGenre  = 300 * time.Second
	TTLPostsByUser   = 60 * time.Second
	TTLPostsByDesc   = 300 * time.Second
	TTLReviewsByUser = 300 * time.Second
	TTLReviewsByName = 60 * time.Second
	TTLComments      = 300 * time.Second
	TTLPaidByUser    = 1800 * time.Second
	TTLFeed          = 300 * time.Second
)

// Key constructors. Each key is a deterministic concatenation of a
// query-identifying prefix and every relevant parameter, so identical
// logical queries always hit and distinct ones never collide. The formats
// are load-bearing: the invalidation patterns below glob over them.

// UserByIDKey caches the user+profile lookup.
func UserByIDKey(id string) string {
	return fmt.Sprintf("%suserBy", id)
}

// UsersByNameKey caches one page of the full-text user search.
func UsersByNameKey(name string, page int) string {
	return fmt.Sprintf("usersBy%spage%d", name, page)
}

// CountsByUserKey caches the follower/subscriber/followed counts.
func CountsByUserKey(id string) string {
	return fmt.Sprintf("countsByUser%s", id)
}

// UserRelatedInKey caches one page of inbound relation listings
// (followers, subscribers).
func UserRelatedInKey(relation, id string, page int) string {
	return fmt.Sprintf("userRelatedIn%sid%spage%d", relation, id, page)
}

// UserRelatedOutKey caches one page of outbound relation listings
// (following).
func UserRelatedOutKey(relation, id string, page int) string {
	return fmt.Sprintf("userRelatedOut%sid%spage%d", relation, id, page)
}

// PollsByMeKey caches one page of the owner's own polls. Durable: no
// expiry, removed only by PollsByOwnerPattern.
func PollsByMeKey(page int, id string) string {
	return fmt.Sprintf("mePage%dPollsBy%s", page, id)
}

// PollsByOthersKey caches one page of an owner's polls as seen by a viewer.
func PollsByOthersKey(ownerID, viewerID string, page int) string {
	return fmt.Sprintf("PollsBy%s%spage%d", ownerID, viewerID, page)
}

// PollsByGenreKey caches one page of a genre's polls as seen by a viewer.
func PollsByGenreKey(genre, viewerID string, page int) string {
	return fmt.Sprintf("PollsBy%s%spage%d", genre, viewerID, page)
}

// PostsByOwnerKey caches one page of an owner's posts as seen by a viewer.
func PostsByOwnerKey(page int, ownerID, viewerID string) string {
	return fmt.Sprintf("Page%dPostsByOwner%sviewer%s", page, ownerID, viewerID)
}

// PostsByDescriptionKey caches one page of the description search.
func PostsByDescriptionKey(page int, description, viewerID string) string {
	return fmt.Sprintf("Page%dPostsByDesc%sviewer%s", page, description, viewerID)
}

// ReviewsByOwnerKey caches one page of an owner's reviews as seen by a viewer.
func ReviewsByOwnerKey(page int, ownerID, viewerID string) string {
	return fmt.Sprintf("Page%dReviewsByOwner%sviewer%s", page, ownerID, viewerID)
}

// ReviewsByNameKey caches one page of the review full-text search.
func ReviewsByNameKey(page int, name, viewerID string) string {
	return fmt.Sprintf("Page%dReviewsByName%sviewer%s", page, name, viewerID)
}

// CommentsKey caches one page of comments on one content item.
func CommentsKey(id string, page int) string {
	return fmt.Sprintf("CommentsBy%spage%d", id, page)
}

// PaidByKey caches one page of the user's own paid content.
func PaidByKey(id string, page int) string {
	return fmt.Sprintf("paidBy%sPage%d", id, page)
}

// FollowingFeedKey caches one page of the following feed.
func FollowingFeedKey(page int, id string) string {
	return fmt.Sprintf("feedFollowingPage%dFor%s", page, id)
}

// PaidFeedKey caches one page of the subscription feed.
func PaidFeedKey(page int, id string) string {
	return fmt.Sprintf("feedPaidPage%dFor%s", page, id)
}

// Invalidation patterns. Each mutation deletes every cached page whose key
// embeds the affected owner, wildcarding the varying dimensions.

// PollsByOwnerPattern invalidates the owner's poll pages on poll
// create/end/delete.
func PollsByOwnerPattern(ownerID string) string {
	return fmt.Sprintf("mePage*PollsBy%s", ownerID)
}

// PostsByOwnerPattern invalidates the owner's post pages for every viewer on
// post create and repost.
func PostsByOwnerPattern(ownerID string) string {
	return fmt.Sprintf("Page*PostsByOwner%sviewer*", ownerID)
}

// PaidContentPattern invalidates the owner's paid-content pages on paid
// post/review create.
func PaidContentPattern(ownerID string) string {
	return fmt.Sprintf("paidBy%sPage*", ownerID)
}

// ReviewsByOwnerPattern invalidates the owner's review pages for every
// viewer on review create.
func ReviewsByOwnerPattern(ownerID string) string {
	return fmt.Sprintf("Page*ReviewsByOwner%sviewer*", ownerID)
}

// SoftDeletePattern invalidates everything mentioning the deleted entity's
// type and its owner.
func SoftDeletePattern(entity, ownerID string) string {
	return fmt.Sprintf("*%s*%s*", entity, ownerID)
}
