// Social Media App - Graph-Backed Social Content API
// Copyright 2026 Moneeb Shammout (moneebshammout)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/moneebshammout/social-media-app

package database

import (
	"context"
	"fmt"

	"github.com/moneebshammout/social-media-app/internal/models"
)

// CreateComment attaches a comment to a poll, a post or another comment.
// Replies use the same RELATED_TO shape, so threads nest without a separate
// relationship type.
func (db *DB) CreateComment(ctx context.Context, req models.CreateCommentRequest) error {
	if !models.CommentTarget(req.Entity) {
		return fmt.Errorf("entity %q does not support comments: %w", req.Entity, ErrInvalidEntity)
	}

	query := fmt.Sprintf(`
	MATCH (user:User {id:$ownerId}), (target:%s {id:$entityId})
	CREATE (comment:Comment {id:$id})
	SET comment += $data, comment.history = [], comment.createdDate = $date
	CREATE (user)-[:CREATE]->(comment)
	CREATE (comment)-[:RELATED_TO]->(target)
	`, req.Entity)

	_, err := db.run(ctx, "createComment", query, map[string]any{
		"id":       req.ID,
		"ownerId":  req.Data.OwnerID,
		"entityId": req.EntityID,
		"date":     currentDate(),
		"data": map[string]any{
			"ownerId":      req.Data.OwnerID,
			"ownerName":    req.Data.OwnerName,
			"ownerImageId": req.Data.OwnerImageID,
			"comment":      req.Data.Comment,
		},
	})
	return err
}

// Comments pages the comments attached to one content item, each with its
// reply count.
func (db *DB) Comments(ctx context.Context, entity, id string, page, limit int) ([]map[string]any, error) {
	if !models.CommentTarget(entity) {
		return nil, fmt.Errorf("entity %q does not support comments: %w", entity, ErrInvalidEntity)
	}

	limit = db.pageLimit(limit)
	query := fmt.Sprintf(`
	MATCH (:%s {id:$id})<-[:RELATED_TO]-(c:Comment)
	WITH c SKIP $skip LIMIT $limit
	RETURN
	c.id AS id,
	c.ownerId AS ownerId,
	c.ownerName AS ownerName,
	c.comment AS comment,
	c.ownerImageId AS ownerImageId,
	c.history AS history,
	c.createdDate AS createdDate,
	size( [ (c)<-[:RELATED_TO]-(:Comment) | c] ) AS totalReply
	`, entity)

	records, err := db.run(ctx, "getComments", query, map[string]any{
		"id":    id,
		"skip":  skip(page, limit),
		"limit": limit,
	})
	if err != nil {
		return nil, err
	}
	return NativeRecords(records), nil
}

// UpdateComment replaces the comment text and prepends the old one to
// history.
func (db *DB) UpdateComment(ctx context.Context, req models.UpdateCommentRequest) error {
	query := `
	MATCH (comment:Comment {id:$id})
	SET
	comment.history = comment.comment + comment.history,
	comment.comment = $comment
	`

	_, err := db.run(ctx, "updateComment", query, map[string]any{
		"id":      req.ID,
		"comment": req.Comment,
	})
	return err
}
