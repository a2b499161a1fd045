// Social Media App - Graph-Backed Social Content API
// Copyright 2026 Moneeb Shammout (moneebshammout)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/moneebshammout/social-media-app

package database

import (
	"context"
	"strings"
	"testing"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moneebshammout/social-media-app/internal/models"
)

// fakeRunner records every executed query and replays canned records.
type fakeRunner struct {
	queries []string
	params  []map[string]any
	records []*neo4j.Record
	err     error
}

func (f *fakeRunner) Run(ctx context.Context, query string, params map[string]any) ([]*neo4j.Record, error) {
	f.queries = append(f.queries, query)
	f.params = append(f.params, params)
	if f.err != nil {
		return nil, f.err
	}
	return f.records, nil
}

func newTestDB(records ...*neo4j.Record) (*DB, *fakeRunner) {
	runner := &fakeRunner{records: records}
	return NewDB(runner), runner
}

func TestSkipCalculation(t *testing.T) {
	assert.Equal(t, 0, skip(1, 10))
	assert.Equal(t, 10, skip(2, 10))
	assert.Equal(t, 24, skip(3, 12))
}

func TestPollsByMePagination(t *testing.T) {
	db, runner := newTestDB()

	_, err := db.PollsByMe(context.Background(), "u1", 3, 0)
	require.NoError(t, err)

	params := runner.params[0]
	assert.Equal(t, 20, params["skip"])
	assert.Equal(t, 10, params["limit"])
}

func TestEndPollMatchesOnlyActivePolls(t *testing.T) {
	db, runner := newTestDB()

	require.NoError(t, db.EndPoll(context.Background(), "p1"))
	assert.Contains(t, runner.queries[0], "MATCH (poll:Poll:Active {id:$id})")
	assert.Contains(t, runner.queries[0], "REMOVE poll:Active")
	assert.Contains(t, runner.queries[0], "SET")
}

func TestSoftDeleteReturnsOwner(t *testing.T) {
	db, runner := newTestDB(record([]string{"id"}, []any{"owner-7"}))

	ownerID, err := db.SoftDelete(context.Background(), models.LabelPost, "p1")
	require.NoError(t, err)
	assert.Equal(t, "owner-7", ownerID)
	assert.Contains(t, runner.queries[0], "(entity:Post {id:$id})")
	assert.Contains(t, runner.queries[0], "SET entity:Deleted")
}

func TestSoftDeleteUnknownEntity(t *testing.T) {
	db, runner := newTestDB()

	_, err := db.SoftDelete(context.Background(), "User", "u1")
	assert.ErrorIs(t, err, ErrInvalidEntity)
	assert.Empty(t, runner.queries)
}

func TestSoftDeleteMissingEntity(t *testing.T) {
	db, _ := newTestDB()

	_, err := db.SoftDelete(context.Background(), models.LabelPoll, "nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCreateRelationUsesAliasSpec(t *testing.T) {
	db, runner := newTestDB()

	err := db.CreateRelation(context.Background(), models.RelationRequest{
		FromID:   "u1",
		ToID:     "p1",
		Relation: "post_up_vote",
	})
	require.NoError(t, err)
	assert.Contains(t, runner.queries[0], "(to:Post {id:$toId})")
	assert.Contains(t, runner.queries[0], "[r:UP_VOTE]")
}

func TestCreateRelationRejectsUnknownAlias(t *testing.T) {
	db, runner := newTestDB()

	err := db.CreateRelation(context.Background(), models.RelationRequest{
		FromID:   "u1",
		ToID:     "u2",
		Relation: "block",
	})
	assert.ErrorIs(t, err, ErrInvalidEntity)
	assert.Empty(t, runner.queries)
}

func TestRelatedUsersRejectsNonListableRelation(t *testing.T) {
	db, runner := newTestDB()

	_, err := db.GetRelationsInUser(context.Background(), models.RelLike, "u1", 1, 10, "")
	require.Error(t, err)
	assert.Empty(t, runner.queries)
}

func TestRelatedUsersDirection(t *testing.T) {
	db, runner := newTestDB()

	_, err := db.GetRelationsInUser(context.Background(), models.RelFollow, "u1", 1, 10, "")
	require.NoError(t, err)
	assert.Contains(t, runner.queries[0], "<-[:FOLLOW]-")

	_, err = db.GetRelationsOutUser(context.Background(), models.RelFollow, "u1", 1, 10, "")
	require.NoError(t, err)
	assert.Contains(t, runner.queries[1], "-[:FOLLOW]->")
	assert.Equal(t, true, runner.params[1]["isFollow"])
}

func TestRelatedUsersSearchUsesFullText(t *testing.T) {
	db, runner := newTestDB()

	_, err := db.GetRelationsInUser(context.Background(), models.RelSubscribe, "u1", 2, 10, "lina")
	require.NoError(t, err)
	assert.Contains(t, runner.queries[0], UserFullTextIndex)
	assert.Equal(t, "*lina*", runner.params[0]["search"])
	assert.Equal(t, 10, runner.params[0]["skip"])
}

func TestTagUsersRejectsComment(t *testing.T) {
	db, runner := newTestDB()

	_, err := db.TagUsers(context.Background(), models.TagUsersRequest{
		UserNames: []string{"lina"},
		Entity:    models.LabelComment,
		EntityID:  "c1",
	})
	require.Error(t, err)
	assert.Empty(t, runner.queries)
}

func TestCreatePostEncodesMedia(t *testing.T) {
	db, runner := newTestDB()
	paid := false

	err := db.CreatePost(context.Background(), models.CreatePostRequest{
		ID:   "p1",
		Paid: &paid,
		Data: models.PostData{
			OwnerID:      "u1",
			OwnerName:    "Lina",
			OwnerImageID: "img1",
			Media:        &models.MediaData{ID: "m1", Type: "video"},
		},
	})
	require.NoError(t, err)

	data := runner.params[0]["data"].(map[string]any)
	assert.JSONEq(t, `{"id":"m1","type":"video"}`, data["media"].(string))
	assert.Contains(t, runner.queries[0], "(container:Profile {id:$ownerId})")
}

func TestCreatePaidPostTargetsPaidSection(t *testing.T) {
	db, runner := newTestDB()
	paid := true

	err := db.CreatePost(context.Background(), models.CreatePostRequest{
		ID:   "p1",
		Paid: &paid,
		Data: models.PostData{
			OwnerID:      "u1",
			OwnerName:    "Lina",
			OwnerImageID: "img1",
			Description:  "subscriber only",
		},
	})
	require.NoError(t, err)
	assert.Contains(t, runner.queries[0], "(container:Paid {id:$ownerId})")
}

func TestCommentsRejectsReviewTarget(t *testing.T) {
	db, runner := newTestDB()

	_, err := db.Comments(context.Background(), models.LabelReview, "r1", 1, 10)
	require.Error(t, err)
	assert.Empty(t, runner.queries)
}

func TestChangeProfileStateReturnsNewState(t *testing.T) {
	db, _ := newTestDB(record([]string{"state"}, []any{"Private"}))

	state, err := db.ChangeProfileState(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, models.ProfilePrivate, state)
}

func TestMigrationsAreIdempotentStatements(t *testing.T) {
	db, runner := newTestDB()

	require.NoError(t, db.Migrate(context.Background()))
	assert.Len(t, runner.queries, len(migrations))
	for _, q := range runner.queries {
		assert.Contains(t, q, "IF NOT EXISTS")
	}
}

func TestFeedItemsFromFollowingFeedRows(t *testing.T) {
	db, _ := newTestDB(
		record(
			[]string{"id", "createdDate", "description", "ownerId", "ownerImageId", "ownerName", "properties"},
			[]any{"p1", "2026-03-14 09:30", "hello", "u1", "img1", "Lina",
				map[string]any{"entity": "Post", "totalUpVotes": int64(2)}},
		),
	)

	items, err := db.FollowingFeed(context.Background(), "u2", 1, 10)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, models.FeedPost, items[0].Entity)
	assert.Equal(t, "p1", items[0].ID)
}

func TestFeedRejectsUnknownEntity(t *testing.T) {
	db, _ := newTestDB(
		record(
			[]string{"id", "properties"},
			[]any{"x1", map[string]any{"entity": "Story"}},
		),
	)

	_, err := db.FollowingFeed(context.Background(), "u2", 1, 10)
	require.Error(t, err)
}

func TestUpdateUserSkipsAbsentSections(t *testing.T) {
	db, runner := newTestDB()

	err := db.UpdateUser(context.Background(), models.UpdateUserRequest{
		ID:   "u1",
		User: &models.UpdateUserData{Name: "New Name"},
	})
	require.NoError(t, err)
	require.Len(t, runner.queries, 1)
	assert.True(t, strings.Contains(runner.queries[0], "MATCH (user:User {id:$id})"))

	props := runner.params[0]["props"].(map[string]any)
	assert.Equal(t, map[string]any{"name": "New Name"}, props)
}
