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

// CreateReview creates a review related to the owner's profile, or to the
// paid section for subscriber-only reviews, and links it into its genres.
func (db *DB) CreateReview(ctx context.Context, req models.CreateReviewRequest) error {
	container := models.LabelProfile
	if req.Paid != nil && *req.Paid {
		container = models.LabelPaid
	}

	query := fmt.Sprintf(`
	MATCH (user:User {id:$ownerId}), (container:%s {id:$ownerId})
	CREATE (review:Review {id:$id})
	SET review += $data, review.createdDate = $date
	CREATE (user)-[:CREATE]->(review)
	CREATE (review)-[:RELATED_TO]->(container)
	WITH review
	UNWIND $genres AS genreName
	MERGE (genre:Genre {name:genreName})
	MERGE (review)-[:IN_GENRE]->(genre)
	`, container)

	data := map[string]any{
		"ownerId":      req.Data.OwnerID,
		"ownerName":    req.Data.OwnerName,
		"ownerImageId": req.Data.OwnerImageID,
		"productName":  req.Data.ProductName,
		"productFirm":  req.Data.ProductFirm,
		"rate":         req.Data.Rate,
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

	_, err := db.run(ctx, "createReview", query, map[string]any{
		"id":      req.ID,
		"ownerId": req.Data.OwnerID,
		"data":    data,
		"date":    currentDate(),
		"genres":  genres,
	})
	return err
}

// ReviewsByUser pages one owner's reviews with the viewer's vote flags.
func (db *DB) ReviewsByUser(ctx context.Context, ownerID, viewerID string, page, limit int) ([]map[string]any, error) {
	limit = db.pageLimit(limit)
	query := `
	MATCH (review:Review)-[:RELATED_TO]->(:Profile {id:$ownerId})
	WITH review SKIP $skip LIMIT $limit
	MATCH (viewer:User {id:$viewerId})
	RETURN
	review.id AS id,
	review.productName AS productName,
	review.productFirm AS productFirm,
	review.rate AS rate,
	review.description AS description,
	review.media AS media,
	review.createdDate AS createdDate,
	EXISTS((viewer)-[:UP_VOTE]->(review)) AS reactedUP,
	EXISTS((viewer)-[:DOWN_VOTE]->(review)) AS reactedDOWN
	`

	records, err := db.run(ctx, "reviewsByUser", query, map[string]any{
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

// ReviewsByName searches public reviews by product or firm name through the
// review full-text index.
func (db *DB) ReviewsByName(ctx context.Context, name, viewerID string, page, limit int) ([]map[string]any, error) {
	limit = db.pageLimit(limit)
	query := `
	CALL db.index.fulltext.queryNodes('` + ReviewFullTextIndex + `', $name) YIELD node
	WHERE EXISTS((node)-->(:Public))
	WITH node SKIP $skip LIMIT $limit
	MATCH (viewer:User {id:$id})
	RETURN
	node.id AS id,
	node.productName AS productName,
	node.productFirm AS productFirm,
	node.rate AS rate,
	node.description AS description,
	node.media AS media,
	node.createdDate AS createdDate,
	node.ownerId AS ownerId,
	node.ownerImageId AS ownerImageId,
	node.ownerName AS ownerName,
	EXISTS((viewer)-[:UP_VOTE]->(node)) AS reactedUP,
	EXISTS((viewer)-[:DOWN_VOTE]->(node)) AS reactedDOWN,
	size( [ ()-[:UP_VOTE]->(node) | node] ) AS totalUpVotes,
	size( [ ()-[:DOWN_VOTE]->(node) | node] ) AS totalDownVotes
	`

	records, err := db.run(ctx, "reviewsByName", query, map[string]any{
		"id":    viewerID,
		"name":  name,
		"skip":  skip(page, limit),
		"limit": limit,
	})
	if err != nil {
		return nil, err
	}
	return NativeRecords(records), nil
}
