// Social Media App - Graph-Backed Social Content API
// Copyright 2026 Moneeb Shammout (moneebshammout)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/moneebshammout/social-media-app

package database

import (
	"context"

	"github.com/moneebshammout/social-media-app/internal/models"
)

// contentCase is the entity-polymorphic projection shared by the profile
// feeds: each content row carries an entity discriminant plus the variant
// fields of its kind. repostTail adds the REPOST snapshot for feeds that
// traverse RELATED_TO|REPOST edges.
const contentCaseHead = `
	WITH CASE
		WHEN "Active" IN label THEN {
			entity:'ActivePoll',
			type:content.type,
			totalLike:size( [ ()-[:LIKE]-(content) | content] ),
			totalDislike:size( [ ()-[:DISLIKE]-(content) | content] ),
			totalRight:size( [ ()-[:RIGHT_LIKE]-(content) | content] ),
			totalLeft:size( [ ()-[:LEFT_LIKE]-(content) | content] ),
			reacted:EXISTS((content)<-[:LIKE|DISLIKE|UNCERTAIN|RIGHT_LIKE|LEFT_LIKE]-(user)),
			imageId:content.imageId
		}
		WHEN "Ended" IN label THEN {
			entity:'EndedPoll',
			type:content.type,
			endedDate:content.endedDate,
			totalLike:content.totalLike,
			totalDislike:content.totalDislike,
			totalRight:content.totalRight,
			totalLeft:content.totalLeft,
			imageId:content.imageId
		}
		WHEN "Post" IN label THEN {
			entity:'Post',
			reactedUP:EXISTS((user)-[:UP_VOTE]->(content)),
			reactedDOWN:EXISTS((user)-[:DOWN_VOTE]->(content)),
			totalUpVotes:size( [ ()-[:UP_VOTE]->(content) | content] ),
			totalDownVotes:size( [ ()-[:DOWN_VOTE]->(content) | content] ),
			history:content.history,
			media:content.media
`

const repostTail = `,
			repostData:(CASE WHEN type(related) = "REPOST" THEN {
				allowView: EXISTS((:Post {id:related.id})-[:RELATED_TO]->(:Public)) OR
					EXISTS((user)-[:FOLLOW]->(:User {id:related.ownerId})),
				id:related.id,
				media:related.media,
				createdDate:related.createdDate,
				ownerId:related.ownerId,
				ownerImageId:related.ownerImageId,
				ownerName:related.ownerName,
				description:related.description
			} END)
`

const contentCaseReviewTail = `
		} ELSE {
			entity:'Review',
			productName:content.productName,
			productFirm:content.productFirm,
			rate:content.rate,
			media:content.media,
			imageId:content.imageId,
			reactedUP:EXISTS((user)-[:UP_VOTE]->(content)),
			reactedDOWN:EXISTS((user)-[:DOWN_VOTE]->(content)),
			totalUpVotes:size( [ ()-[:UP_VOTE]->(content) | content] ),
			totalDownVotes:size( [ ()-[:DOWN_VOTE]->(content) | content] )
		} END AS properties, content
`

const contentReturn = `
	RETURN
	content.id AS id,
	content.createdDate AS createdDate,
	content.description AS description,
	content.ownerId AS ownerId,
	content.ownerImageId AS ownerImageId,
	content.ownerName AS ownerName,
	properties
`

// feedItems normalizes rows and lifts them into typed feed items.
func feedItems(rows []map[string]any) ([]models.FeedItem, error) {
	items := make([]models.FeedItem, 0, len(rows))
	for _, row := range rows {
		item, err := models.NewFeedItem(row)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

// FollowingFeed pages content from the profiles of users the given user
// follows, newest first. Rows are polymorphic over polls, posts and reviews.
func (db *DB) FollowingFeed(ctx context.Context, id string, page, limit int) ([]models.FeedItem, error) {
	limit = db.pageLimit(limit)
	query := `
	MATCH (user:User {id:$id})-[:FOLLOW]->()-[:CONTENT_IN]->(:Profile)<-[related:RELATED_TO|REPOST]-(content)
	WITH user, labels(content) AS label, related, content
	ORDER BY content.createdDate DESC SKIP $skip LIMIT $limit
	` + contentCaseHead + repostTail + contentCaseReviewTail + contentReturn

	records, err := db.run(ctx, "followingFeed", query, map[string]any{
		"id":    id,
		"skip":  skip(page, limit),
		"limit": limit,
	})
	if err != nil {
		return nil, err
	}
	return feedItems(NativeRecords(records))
}

// UserContent pages everything in one user's own profile, newest first, for
// the profile grid.
func (db *DB) UserContent(ctx context.Context, id string, page, limit int) ([]models.FeedItem, error) {
	limit = db.contentPageLimit(limit)
	query := `
	MATCH (content)-[related:RELATED_TO|REPOST]->(:Profile {id:$id}), (user:User {id:$id})
	WITH user, labels(content) AS label, related, content
	ORDER BY content.createdDate DESC SKIP $skip LIMIT $limit
	` + contentCaseHead + repostTail + contentCaseReviewTail + contentReturn

	records, err := db.run(ctx, "userContent", query, map[string]any{
		"id":    id,
		"skip":  skip(page, limit),
		"limit": limit,
	})
	if err != nil {
		return nil, err
	}
	return feedItems(NativeRecords(records))
}

// TaggedContent pages content the user is tagged in, newest first.
func (db *DB) TaggedContent(ctx context.Context, id string, page, limit int) ([]models.FeedItem, error) {
	limit = db.contentPageLimit(limit)
	query := `
	MATCH (user:User {id:$id})-[:TAGGED_IN]->(content)
	WITH user, labels(content) AS label, content
	ORDER BY content.createdDate DESC SKIP $skip LIMIT $limit
	` + contentCaseHead + contentCaseReviewTail + contentReturn

	records, err := db.run(ctx, "taggedContent", query, map[string]any{
		"id":    id,
		"skip":  skip(page, limit),
		"limit": limit,
	})
	if err != nil {
		return nil, err
	}
	return feedItems(NativeRecords(records))
}

// paidCase projects the post/review split of the paid feeds; polls never
// live in paid sections.
const paidCase = `
	WITH CASE
		WHEN "Post" IN label THEN {
			entity:'Post',
			history:content.history
		} ELSE {
			entity:'Review',
			productName:content.productName,
			productFirm:content.productFirm,
			rate:content.rate
		} END AS properties, content, user
	RETURN
	content.id AS id,
	content.media AS media,
	content.description AS description,
	content.createdDate AS createdDate,
	content.ownerId AS ownerId,
	content.ownerImageId AS ownerImageId,
	content.ownerName AS ownerName,
	EXISTS((content)<-[:UP_VOTE]-(user)) AS reactedUP,
	EXISTS((content)<-[:DOWN_VOTE]-(user)) AS reactedDOWN,
	size( [ ()-[:UP_VOTE]->(content) | content] ) AS totalUpVotes,
	size( [ ()-[:DOWN_VOTE]->(content) | content] ) AS totalDownVotes,
	properties
`

// PaidFeed pages subscriber-only content from users the given user
// subscribes to, newest first.
func (db *DB) PaidFeed(ctx context.Context, id string, page, limit int) ([]models.FeedItem, error) {
	limit = db.pageLimit(limit)
	query := `
	MATCH (user:User {id:$id})-[:SUBSCRIBE]->()-[:CONTENT_IN]->(:Paid)<-[:RELATED_TO]-(content)
	WITH user, labels(content) AS label, content
	ORDER BY content.createdDate DESC SKIP $skip LIMIT $limit
	` + paidCase

	records, err := db.run(ctx, "paidFeed", query, map[string]any{
		"id":    id,
		"skip":  skip(page, limit),
		"limit": limit,
	})
	if err != nil {
		return nil, err
	}
	return feedItems(NativeRecords(records))
}

// UserPaidFeed pages the user's own subscriber-only content.
func (db *DB) UserPaidFeed(ctx context.Context, id string, page, limit int) ([]models.FeedItem, error) {
	limit = db.pageLimit(limit)
	query := `
	MATCH (:Paid {id:$id})<-[:RELATED_TO]-(content), (user:User {id:$id})
	WITH user, labels(content) AS label, content SKIP $skip LIMIT $limit
	` + paidCase

	records, err := db.run(ctx, "userPaidFeed", query, map[string]any{
		"id":    id,
		"skip":  skip(page, limit),
		"limit": limit,
	})
	if err != nil {
		return nil, err
	}
	return feedItems(NativeRecords(records))
}
