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

// SoftDelete tombstones a content node: all labels come off, the inbound
// CREATE edge and the outbound RELATED_TO, REPOST and IN_GENRE edges are
// removed, and the node keeps a Deleted label with its former entity name
// and deletion time. Reaction and comment edges survive for audit. Returns
// the owner id so callers can invalidate the owner's cached pages.
func (db *DB) SoftDelete(ctx context.Context, entity, id string) (string, error) {
	if !models.SoftDeletable(entity) {
		return "", fmt.Errorf("entity %q cannot be deleted: %w", entity, ErrInvalidEntity)
	}

	query := fmt.Sprintf(`
	MATCH ()-[relation1:CREATE]->(entity:%s {id:$id})-[relation2:RELATED_TO|REPOST|IN_GENRE]->()
	CALL apoc.create.removeLabels(entity, labels(entity))
	YIELD node
	DELETE relation1, relation2
	SET entity:Deleted, entity.deletedDate = dateTime(), entity.entity = $entity
	RETURN entity.ownerId AS id
	`, entity)

	records, err := db.run(ctx, "softDelete", query, map[string]any{
		"id":     id,
		"entity": entity,
	})
	if err != nil {
		return "", err
	}
	if len(records) == 0 {
		return "", fmt.Errorf("%s %s: %w", entity, id, ErrNotFound)
	}

	ownerID, _ := records[0].Get("id")
	owner, _ := ownerID.(string)
	return owner, nil
}

// EntityCounts returns the up and down vote totals of a post or review.
func (db *DB) EntityCounts(ctx context.Context, entity, id string) ([]map[string]any, error) {
	if !models.VoteCountEntity(entity) {
		return nil, fmt.Errorf("entity %q has no vote counts: %w", entity, ErrInvalidEntity)
	}

	query := fmt.Sprintf(`
	MATCH (entity:%s {id:$id})
	RETURN
	size( [ ()-[:UP_VOTE]->(entity) | entity] ) AS totalUpVotes,
	size( [ ()-[:DOWN_VOTE]->(entity) | entity] ) AS totalDownVotes
	`, entity)

	records, err := db.run(ctx, "getEntityCounts", query, map[string]any{"id": id})
	if err != nil {
		return nil, err
	}
	return NativeRecords(records), nil
}
