// Social Media App - Graph-Backed Social Content API
// Copyright 2026 Moneeb Shammout (moneebshammout)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/moneebshammout/social-media-app

package database

import (
	"context"
	"fmt"

	json "github.com/goccy/go-json"

	"github.com/moneebshammout/social-media-app/internal/models"
)

// CreatePost creates a post related to the owner's profile, or to the
// owner's paid section for subscriber-only posts. Media is stored as a JSON
// string and parsed back on read.
func (db *DB) CreatePost(ctx context.Context, req models.CreatePostRequest) error {
	container := models.LabelProfile
	if req.Paid != nil && *req.Paid {
		container = models.LabelPaid
	}

	query := fmt.Sprintf(`
	MATCH (user:User {id:$ownerId}), (container:%s {id:$ownerId})
	CREATE (post:Post {id:$id})
	SET post += $data, post.history = [], post.createdDate = $date
	CREATE (user)-[:CREATE]->(post)
	CREATE (post)-[:RELATED_TO]->(container)
	WITH post
	UNWIND $genres AS genreName
	MERGE (genre:Genre {name:genreName})
	MERGE (post)-[:IN_GENRE]->(genre)
	`, container)

	data := map[string]any{
		"ownerId":      req.Data.OwnerID,
		"ownerName":    req.Data.OwnerName,
		"ownerImageId": req.Data.OwnerImageID,
	}
	if req.Data.Description != "" {
		data["description"] = req.Data.Description
	}
	if req.Data.Media != nil {
		media, err := json.Marshal(req.Data.Media)
		if err != nil {
			return fmt.Errorf("encode media: %w", err)
		}
		data["media"] = string(media)
	}

	genres := req.Genres
	if genres == nil {
		genres = []string{}
	}

	_, err := db.run(ctx, "createPost", query, map[string]any{
		"id":      req.ID,
		"ownerId": req.Data.OwnerID,
		"data":    data,
		"date":    currentDate(),
		"genres":  genres,
	})
	return err
}

// UpdatePost replaces the description and prepends the old one to history.
func (db *DB) UpdatePost(ctx context.Context, req models.UpdatePostRequest) error {
	query := `
	MATCH (post:Post {id:$id})
	SET
	post.history = post.description + post.history,
	post.description = $description
	`

	_, err := db.run(ctx, "updatePost", query, map[string]any{
		"id":          req.ID,
		"description": req.Description,
	})
	return err
}

// Repost creates a new post in the user's timeline whose REPOST edge carries
// a snapshot of the original post's properties. The snapshot survives later
// deletion of the original; allowView is recomputed per read instead.
func (db *DB) Repost(ctx context.Context, req models.RepostRequest) error {
	query := `
	MATCH (post:Post {id:$postId}), (profile:Profile {id:$userId}), (user:User {id:$userId})
	MERGE (user)-[:CREATE]->(newPost:Post {id:$repostId})-[repost:REPOST]->(profile)
	SET
	newPost.ownerId = user.id,
	newPost.ownerImageId = profile.imageId,
	newPost.ownerName = user.name,
	newPost.description = $description,
	newPost.createdDate = $date,
	newPost.history = [],
	repost.id = post.id,
	repost.media = post.media,
	repost.createdDate = post.createdDate,
	repost.ownerId = post.ownerId,
	repost.ownerImageId = post.ownerImageId,
	repost.ownerName = post.ownerName,
	repost.description = post.description
	`

	_, err := db.run(ctx, "rePost", query, map[string]any{
		"userId":      req.UserID,
		"postId":      req.PostID,
		"repostId":    req.RepostID,
		"description": req.Description,
		"date":        currentDate(),
	})
	return err
}

// PostsByUser pages posts and reposts in one owner's profile. Repost rows
// carry the snapshot from the REPOST edge plus an allowView flag telling
// whether the viewer may open the original.
func (db *DB) PostsByUser(ctx context.Context, ownerID, viewerID string, page, limit int) ([]map[string]any, error) {
	limit = db.pageLimit(limit)
	query := `
	MATCH (post:Post)-[relation:RELATED_TO|REPOST]->(:Profile {id:$ownerId})
	WITH relation, post SKIP $skip LIMIT $limit
	MATCH (viewer:User {id:$viewerId})
	WITH CASE WHEN type(relation) = "REPOST" THEN {
		allowView: EXISTS((:Post {id:relation.id})-[:RELATED_TO]->(:Public)) OR
			EXISTS((viewer)-[:FOLLOW]->(:User {id:relation.ownerId})),
		id:relation.id,
		media:relation.media,
		createdDate:relation.createdDate,
		ownerId:relation.ownerId,
		ownerImageId:relation.ownerImageId,
		ownerName:relation.ownerName,
		description:relation.description,
		repost:true
	} ELSE {allowView:true, repost:false} END AS properties, post, viewer
	RETURN
	post.id AS id,
	post.description AS description,
	post.media AS media,
	post.createdDate AS createdDate,
	post.history AS history,
	EXISTS((viewer)-[:UP_VOTE]->(post)) AS reactedUP,
	EXISTS((viewer)-[:DOWN_VOTE]->(post)) AS reactedDOWN,
	properties
	`

	records, err := db.run(ctx, "postsByUser", query, map[string]any{
		"ownerId":  ownerID,
		"viewerId": viewerID,
		"skip":     skip(page, limit),
		"limit":    limit,
	})
	if err != nil {
		return nil, err
	}
	return NativeRecords(records), nil
}

// PostsByDescription pages public posts whose description contains the given
// substring, backed by the post description text index.
func (db *DB) PostsByDescription(ctx context.Context, description, viewerID string, page, limit int) ([]map[string]any, error) {
	limit = db.pageLimit(limit)
	query := `
	MATCH (post:Post)-[relation:RELATED_TO|REPOST]->(:Public)
	WHERE post.description CONTAINS $description
	WITH relation, post SKIP $skip LIMIT $limit
	MATCH (viewer:User {id:$id})
	WITH CASE WHEN type(relation) = "REPOST" THEN {
		allowView: EXISTS((post)-[:RELATED_TO]->(:Public)) OR
			EXISTS((viewer)-[:FOLLOW]->(:User {id:post.ownerId})),
		repost:true,
		id:relation.id,
		media:relation.media,
		createdDate:relation.createdDate,
		ownerId:relation.ownerId,
		ownerImageId:relation.ownerImageId,
		ownerName:relation.ownerName,
		description:relation.description
	} ELSE {allowView:true, repost:false} END AS properties, post, viewer
	RETURN
	post.id AS id,
	post.description AS description,
	post.media AS media,
	post.createdDate AS createdDate,
	post.ownerId AS ownerId,
	post.ownerImageId AS ownerImageId,
	post.ownerName AS ownerName,
	post.history AS history,
	EXISTS((viewer)-[:UP_VOTE]->(post)) AS reactedUP,
	EXISTS((viewer)-[:DOWN_VOTE]->(post)) AS reactedDOWN,
	size( [ ()-[:UP_VOTE]->(post) | post] ) AS totalUpVotes,
	size( [ ()-[:DOWN_VOTE]->(post) | post] ) AS totalDownVotes,
	properties
	`

	records, err := db.run(ctx, "postsByDescription", query, map[string]any{
		"id":          viewerID,
		"description": description,
		"skip":        skip(page, limit),
		"limit":       limit,
	})
	if err != nil {
		return nil, err
	}
	return NativeRecords(records), nil
}
