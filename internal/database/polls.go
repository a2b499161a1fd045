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

// CreatePoll creates an Active poll owned by the requesting user, relates it
// to the owner's profile and links it into its genres. Genres must already
// exist; unknown names are skipped.
func (db *DB) CreatePoll(ctx context.Context, req models.CreatePollRequest) error {
	query := `
	MATCH (user:User {id:$ownerId}), (profile:Profile {id:$ownerId})
	CREATE (poll:Poll:Active {id:$id})
	SET poll += $data, poll.createdDate = $date
	CREATE (user)-[:CREATE]->(poll)
	CREATE (poll)-[:RELATED_TO]->(profile)
	WITH poll
	UNWIND $genres AS genreName
	MATCH (genre:Genre {name:genreName})
	MERGE (poll)-[:IN_GENRE]->(genre)
	`

	data := map[string]any{
		"ownerId":      req.Data.OwnerID,
		"ownerName":    req.Data.OwnerName,
		"ownerImageId": req.Data.OwnerImageID,
		"imageId":      req.Data.ImageID,
		"type":         req.Data.Type,
	}
	if req.Data.Description != "" {
		data["description"] = req.Data.Description
	}

	genres := req.Genres
	if genres == nil {
		genres = []string{}
	}

	_, err := db.run(ctx, "createPoll", query, map[string]any{
		"id":      req.ID,
		"ownerId": req.Data.OwnerID,
		"data":    data,
		"date":    currentDate(),
		"genres":  genres,
	})
	return err
}

// EndPoll freezes an Active poll: the reaction counts move from edges into
// node properties, the owner's base totals grow by the poll's single-type
// reactions and the poll flips to Ended. Matching on the Active label makes
// the call idempotent; ending an already ended poll matches nothing.
func (db *DB) EndPoll(ctx context.Context, id string) error {
	query := `
	MATCH (poll:Poll:Active {id:$id})
	MATCH (owner:User {id:poll.ownerId})
	REMOVE poll:Active
	SET
	poll:Ended,
	poll.endedDate = Date(),
	(CASE WHEN poll.type = "single" THEN poll END).totalLike = size( [ ()-[:LIKE]-(poll) | poll] ),
	(CASE WHEN poll.type = "single" THEN poll END).totalDislike = size( [ ()-[:DISLIKE]-(poll) | poll] ),
	(CASE WHEN poll.type = "single" THEN poll END).totalUncertain = size( [ ()-[:UNCERTAIN]-(poll) | poll] ),
	(CASE WHEN poll.type = "double" THEN poll END).totalRight = size( [ ()-[:RIGHT_LIKE]-(poll) | poll] ),
	(CASE WHEN poll.type = "double" THEN poll END).totalLeft = size( [ ()-[:LEFT_LIKE]-(poll) | poll] ),
	(CASE WHEN poll.type = "single" THEN owner END).totalLike = owner.totalLike + size( [ ()-[:LIKE]-(poll) | poll] ),
	(CASE WHEN poll.type = "single" THEN owner END).totalDislike = owner.totalDislike + size( [ ()-[:DISLIKE]-(poll) | poll] )
	`

	_, err := db.run(ctx, "endPoll", query, map[string]any{"id": id})
	return err
}

// RandomPolls picks up to ten random active polls on public profiles that the
// user has not reacted to, unless the user is tagged in them.
func (db *DB) RandomPolls(ctx context.Context, id string) ([]map[string]any, error) {
	query := `
	MATCH (user:User {id:$id}), (:Public)<--(p:Active)
	WHERE NOT (p)<--(user) OR (p)<-[:TAGGED_IN]-(user)
	WITH apoc.coll.randomItems(collect(p), 10) AS random, user
	UNWIND random AS poll
	RETURN
	poll.id AS id,
	poll.type AS type,
	poll.imageId AS imageId,
	poll.description AS description,
	poll.createdDate AS createdDate,
	poll.ownerId AS ownerId,
	poll.ownerName AS ownerName,
	poll.ownerImageId AS ownerImageId,
	EXISTS((user)-[:FOLLOW]->(:User {id:poll.ownerId})) AS followed,
	CASE WHEN poll.type = "single" THEN size( [ ()-[:LIKE]-(poll) | poll] ) END AS totalLike,
	CASE WHEN poll.type = "single" THEN size( [ ()-[:DISLIKE]-(poll) | poll] ) END AS totalDislike,
	CASE WHEN poll.type = "double" THEN size( [ ()-[:RIGHT_LIKE]-(poll) | poll] ) END AS totalRight,
	CASE WHEN poll.type = "double" THEN size( [ ()-[:LEFT_LIKE]-(poll) | poll] ) END AS totalLeft
	`

	records, err := db.run(ctx, "randomPolls", query, map[string]any{"id": id})
	if err != nil {
		return nil, err
	}
	return NativeRecords(records), nil
}

// PollsByMe pages the user's own polls. Ended polls carry their frozen
// totals; viewer reactions are irrelevant on the owner's page.
func (db *DB) PollsByMe(ctx context.Context, id string, page, limit int) ([]map[string]any, error) {
	limit = db.pageLimit(limit)
	query := `
	MATCH (:User {id:$id})-[:CREATE]->(poll:Poll)
	WITH CASE
		WHEN "Active" IN labels(poll) THEN {status:'Active'}
		ELSE {
			endedDate:poll.endedDate,
			totalLike:poll.totalLike,
			totalDislike:poll.totalDislike,
			totalUncertain:poll.totalUncertain,
			totalRight:poll.totalRight,
			totalLeft:poll.totalLeft,
			status:'Ended'
		} END AS properties, poll
	RETURN
	poll.id AS id,
	poll.type AS type,
	poll.description AS description,
	poll.imageId AS imageId,
	poll.createdDate AS createdDate,
	properties
	SKIP $skip LIMIT $limit
	`

	records, err := db.run(ctx, "pollsByMe", query, map[string]any{
		"id":    id,
		"skip":  skip(page, limit),
		"limit": limit,
	})
	if err != nil {
		return nil, err
	}
	return NativeRecords(records), nil
}

// pollStatusCase is the 4-way active/ended x single/double projection shared
// by the viewer-aware poll pages. Active polls count their reaction edges
// live; ended polls read the frozen totals.
const pollStatusCase = `
	WITH CASE
		WHEN "Active" IN label AND poll.type = "single"
			THEN {totalLike:size( [ ()-[:LIKE]-(poll) | poll] ),
			totalDislike:size( [ ()-[:DISLIKE]-(poll) | poll] ), status:'Active'}

		WHEN poll.type = "single"
			THEN {endedDate:poll.endedDate,
			totalLike:poll.totalLike, totalDislike:poll.totalDislike, status:'Ended'}

		WHEN "Active" IN label AND poll.type = "double"
			THEN {totalRight:size( [ ()-[:RIGHT_LIKE]-(poll) | poll] ),
			totalLeft:size( [ ()-[:LEFT_LIKE]-(poll) | poll] ), status:'Active'}

		WHEN poll.type = "double"
			THEN {endedDate:poll.endedDate,
			totalRight:poll.totalRight, totalLeft:poll.totalLeft, status:'Ended'}

	END AS properties, reacted, poll
`

// PollsByOthers pages one owner's polls for a viewer, flagging whether the
// viewer already reacted to each.
func (db *DB) PollsByOthers(ctx context.Context, ownerID, viewerID string, page, limit int) ([]map[string]any, error) {
	limit = db.pageLimit(limit)
	query := `
	MATCH (owner:User {id:$ownerId})-[:CREATE]->(poll:Poll)
	WITH poll SKIP $skip LIMIT $limit
	MATCH (viewer:User {id:$viewerId})
	WITH poll, EXISTS((poll)<-[:LIKE|DISLIKE|UNCERTAIN|RIGHT_LIKE|LEFT_LIKE]-(viewer)) AS reacted, labels(poll) AS label
	` + pollStatusCase + `
	RETURN
	poll.id AS id,
	poll.type AS type,
	poll.description AS description,
	poll.imageId AS imageId,
	poll.createdDate AS createdDate,
	properties,
	reacted
	`

	records, err := db.run(ctx, "pollsByOthers", query, map[string]any{
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

// PollsByGenre pages public-profile polls linked into a genre, flagging
// whether the viewer already reacted to each.
func (db *DB) PollsByGenre(ctx context.Context, genre, viewerID string, page, limit int) ([]map[string]any, error) {
	limit = db.pageLimit(limit)
	query := `
	MATCH (:Public)<--(poll:Poll)-[:IN_GENRE]->(:Genre {name:$genre})
	WITH poll SKIP $skip LIMIT $limit
	MATCH (viewer:User {id:$id})
	WITH poll, EXISTS((poll)<--(viewer)) AS reacted, labels(poll) AS label
	` + pollStatusCase + `
	RETURN
	poll.id AS id,
	poll.type AS type,
	poll.description AS description,
	poll.imageId AS imageId,
	poll.createdDate AS createdDate,
	poll.ownerId AS ownerId,
	poll.ownerImageId AS ownerImageId,
	poll.ownerName AS ownerName,
	properties,
	reacted
	`

	records, err := db.run(ctx, "pollsByGenre", query, map[string]any{
		"id":    viewerID,
		"genre": genre,
		"skip":  skip(page, limit),
		"limit": limit,
	})
	if err != nil {
		return nil, err
	}
	return NativeRecords(records), nil
}

// PollCounts returns the live reaction counts of an Active poll. The
// type-mismatched counters come back null.
func (db *DB) PollCounts(ctx context.Context, id string) ([]map[string]any, error) {
	query := `
	MATCH (poll:Active {id:$id})
	RETURN
	CASE WHEN poll.type = "single" THEN size( [ ()-[:LIKE]-(poll) | poll] ) END AS totalLike,
	CASE WHEN poll.type = "single" THEN size( [ ()-[:UNCERTAIN]-(poll) | poll] ) END AS totalUncertain,
	CASE WHEN poll.type = "single" THEN size( [ ()-[:DISLIKE]-(poll) | poll] ) END AS totalDislike,
	CASE WHEN poll.type = "double" THEN size( [ ()-[:RIGHT_LIKE]-(poll) | poll] ) END AS totalRight,
	CASE WHEN poll.type = "double" THEN size( [ ()-[:LEFT_LIKE]-(poll) | poll] ) END AS totalLeft
	`

	records, err := db.run(ctx, "pollCounts", query, map[string]any{"id": id})
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("active poll %s: %w", id, ErrNotFound)
	}
	return NativeRecords(records), nil
}
