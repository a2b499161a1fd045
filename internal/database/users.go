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

// CreateUser creates the User node with its Profile and Paid containers,
// wires the CONTENT_IN edges and upserts the INTERESTED_IN genres, all in
// one statement. Profiles start Public.
func (db *DB) CreateUser(ctx context.Context, req models.CreateUserRequest) error {
	query := `
	CREATE (user:User {id:$id})
	SET user += $user, user.totalLike = 0, user.totalDislike = 0
	CREATE (profile:Profile:Public {id:$id})
	SET profile += $profile
	CREATE (paid:Paid {id:$id})
	CREATE (user)-[:CONTENT_IN]->(profile)
	CREATE (user)-[:CONTENT_IN]->(paid)
	WITH user
	FOREACH (genreName IN $interests |
		MERGE (genre:Genre {name:genreName})
		MERGE (user)-[:INTERESTED_IN]->(genre)
	)
	`

	userProps := map[string]any{
		"name":      req.Data.Name,
		"userName":  req.Data.UserName,
		"gender":    req.Data.Gender,
		"location":  req.Data.Location,
		"provider":  req.Data.Provider,
		"birthDate": req.Data.BirthDate,
	}
	if req.Data.Email != "" {
		userProps["email"] = req.Data.Email
	}
	if req.Data.Phone != "" {
		userProps["phone"] = req.Data.Phone
	}

	profileProps := map[string]any{
		"imageId":      req.Profile.ImageID,
		"imageHistory": []string{},
		"coverHistory": []string{},
	}
	if req.Profile.Bio != "" {
		profileProps["bio"] = req.Profile.Bio
	}

	_, err := db.run(ctx, "createUser", query, map[string]any{
		"id":        req.ID,
		"user":      userProps,
		"profile":   profileProps,
		"interests": req.Interests,
	})
	return err
}

// UpdateUser patches user and/or profile properties. Absent sections are
// skipped; within a section only the supplied fields change.
func (db *DB) UpdateUser(ctx context.Context, req models.UpdateUserRequest) error {
	if req.User != nil {
		props := updateUserProps(req.User)
		if len(props) > 0 {
			query := `MATCH (user:User {id:$id}) SET user += $props`
			if _, err := db.run(ctx, "updateUser", query, map[string]any{"id": req.ID, "props": props}); err != nil {
				return err
			}
		}
	}

	if req.Profile != nil {
		props := updateProfileProps(req.Profile)
		if len(props) > 0 {
			query := `MATCH (profile:Profile {id:$id}) SET profile += $props`
			if _, err := db.run(ctx, "updateProfile", query, map[string]any{"id": req.ID, "props": props}); err != nil {
				return err
			}
		}
	}

	return nil
}

func updateUserProps(data *models.UpdateUserData) map[string]any {
	props := map[string]any{}
	setIfPresent(props, "name", data.Name)
	setIfPresent(props, "userName", data.UserName)
	setIfPresent(props, "gender", data.Gender)
	setIfPresent(props, "location", data.Location)
	setIfPresent(props, "phone", data.Phone)
	setIfPresent(props, "email", data.Email)
	setIfPresent(props, "birthDate", data.BirthDate)
	return props
}

func updateProfileProps(data *models.UpdateProfileData) map[string]any {
	props := map[string]any{}
	setIfPresent(props, "bio", data.Bio)
	setIfPresent(props, "imageId", data.ImageID)
	setIfPresent(props, "coverId", data.CoverID)
	if len(data.ImageHistory) > 0 {
		props["imageHistory"] = data.ImageHistory
	}
	if len(data.CoverHistory) > 0 {
		props["coverHistory"] = data.CoverHistory
	}
	return props
}

func setIfPresent(props map[string]any, key, value string) {
	if value != "" {
		props[key] = value
	}
}

// GetUserByID returns the user together with its profile and the profile's
// visibility state.
func (db *DB) GetUserByID(ctx context.Context, id string) ([]map[string]any, error) {
	query := `
	MATCH (user:User {id:$id}), (profile:Profile {id:$id})
	WITH labels(profile) AS profileLabels, user, profile
	RETURN
	user{.*},
	profile{.*, state:CASE WHEN 'Public' IN profileLabels THEN 'Public' ELSE 'Private' END}
	`

	records, err := db.run(ctx, "getUserByID", query, map[string]any{"id": id})
	if err != nil {
		return nil, err
	}
	return NativeRecords(records), nil
}

// GetUserByUserName looks users up by userName. Limit 1 means exact match;
// otherwise a prefix-matched page is returned.
func (db *DB) GetUserByUserName(ctx context.Context, userName string, page, limit int) ([]map[string]any, error) {
	if limit == 1 {
		query := `
		MATCH (user:User {userName:$userName})
		WITH user
		MATCH (profile:Profile {id:user.id})
		RETURN
		user.userName AS userName,
		user.id AS id,
		profile.imageId AS imageId
		`
		records, err := db.run(ctx, "getUserByUserName", query, map[string]any{"userName": userName})
		if err != nil {
			return nil, err
		}
		return NativeRecords(records), nil
	}

	limit = db.pageLimit(limit)
	query := `
	MATCH (user:User)
	WHERE user.userName STARTS WITH $userName
	WITH user SKIP $skip LIMIT $limit
	MATCH (profile:Profile {id:user.id})
	RETURN
	user.userName AS userName,
	user.id AS id,
	profile.imageId AS imageId
	`

	records, err := db.run(ctx, "getUserByUserName", query, map[string]any{
		"userName": userName,
		"skip":     skip(page, limit),
		"limit":    limit,
	})
	if err != nil {
		return nil, err
	}
	return NativeRecords(records), nil
}

// SearchUsersByName searches users by name, userName or id through the
// full-text index.
func (db *DB) SearchUsersByName(ctx context.Context, name string, page, limit int) ([]map[string]any, error) {
	limit = db.pageLimit(limit)
	query := `
	CALL db.index.fulltext.queryNodes('` + UserFullTextIndex + `', $name) YIELD node
	WITH node SKIP $skip LIMIT $limit
	MATCH (node)-[:CONTENT_IN]->(profile:Profile)
	RETURN
	node.id AS id,
	node.name AS name,
	profile.imageId AS imageId
	`

	records, err := db.run(ctx, "searchUsersByName", query, map[string]any{
		"name":  "*" + name + "*",
		"skip":  skip(page, limit),
		"limit": limit,
	})
	if err != nil {
		return nil, err
	}
	return NativeRecords(records), nil
}

// GetUserCounts returns follower, subscriber and followed counts.
func (db *DB) GetUserCounts(ctx context.Context, id string) ([]map[string]any, error) {
	query := `
	MATCH (user:User {id:$id})
	RETURN
	size([ ()-[:FOLLOW]->(user) | user ]) AS followersCount,
	size([ ()-[:SUBSCRIBE]->(user) | user ]) AS subscribersCount,
	size([ (user)-[:FOLLOW]->() | user ]) AS followedCount
	`

	records, err := db.run(ctx, "getUserCounts", query, map[string]any{"id": id})
	if err != nil {
		return nil, err
	}
	return NativeRecords(records), nil
}

// ChangeProfileState toggles the profile between Public and Private and
// returns the new state. The toggle branches on the current label, so the
// pair stays mutually exclusive structurally.
func (db *DB) ChangeProfileState(ctx context.Context, id string) (models.ProfileState, error) {
	query := `
	MATCH (profile:Profile {id:$id})
	WITH profile, profile:Public AS isPublic
	CALL apoc.do.when(isPublic,
		'REMOVE profile:Public SET profile:Private RETURN profile',
		'REMOVE profile:Private SET profile:Public RETURN profile',
		{profile:profile}
	) YIELD value
	RETURN CASE WHEN isPublic THEN 'Private' ELSE 'Public' END AS state
	`

	records, err := db.run(ctx, "changeProfileState", query, map[string]any{"id": id})
	if err != nil {
		return "", err
	}
	if len(records) == 0 {
		return "", fmt.Errorf("profile %s: %w", id, ErrNotFound)
	}

	state, _ := records[0].Get("state")
	s, _ := state.(string)
	return models.ProfileState(s), nil
}

// AuthorizeProfileView reports whether the viewer follows or subscribes to
// the owner and whether the owner's profile is public.
func (db *DB) AuthorizeProfileView(ctx context.Context, viewerID, ownerID string) ([]map[string]any, error) {
	query := `
	MATCH
	(viewer:User {id:$viewerId}),
	(owner:User {id:$ownerId}),
	(profile:Profile {id:$ownerId})
	RETURN
	EXISTS((viewer)-[:FOLLOW]->(owner)) AS followed,
	EXISTS((viewer)-[:SUBSCRIBE]->(owner)) AS subscribed,
	profile:Public AS isPublic
	`

	records, err := db.run(ctx, "authorizeProfileView", query, map[string]any{
		"viewerId": viewerID,
		"ownerId":  ownerID,
	})
	if err != nil {
		return nil, err
	}
	return NativeRecords(records), nil
}

// relationDirections whitelists the relations the listing endpoints accept
// before the relation name reaches query interpolation.
var listableRelations = map[string]bool{
	models.RelFollow:    true,
	models.RelSubscribe: true,
}

// GetRelationsInUser pages users related into the given user:
// (users)-[relation]->(user).
func (db *DB) GetRelationsInUser(ctx context.Context, relation, id string, page, limit int, search string) ([]map[string]any, error) {
	return db.relatedUsers(ctx, relation, id, page, limit, search, false)
}

// GetRelationsOutUser pages users the given user relates out to:
// (user)-[relation]->(users).
func (db *DB) GetRelationsOutUser(ctx context.Context, relation, id string, page, limit int, search string) ([]map[string]any, error) {
	return db.relatedUsers(ctx, relation, id, page, limit, search, true)
}

func (db *DB) relatedUsers(ctx context.Context, relation, id string, page, limit int, search string, outbound bool) ([]map[string]any, error) {
	if !listableRelations[relation] {
		return nil, fmt.Errorf("relation %q is not listable: %w", relation, ErrInvalidEntity)
	}

	pattern := fmt.Sprintf("<-[:%s]-", relation)
	if outbound {
		pattern = fmt.Sprintf("-[:%s]->", relation)
	}

	// A listed outbound FOLLOW trivially implies followed=true per row.
	isFollow := outbound && relation == models.RelFollow
	limit = db.pageLimit(limit)

	params := map[string]any{
		"id":       id,
		"skip":     skip(page, limit),
		"limit":    limit,
		"isFollow": isFollow,
	}

	if search != "" {
		// Full-text search restricted to the candidate set: the related
		// user ids are folded into the lucene query itself.
		query := fmt.Sprintf(`
		MATCH (user:User {id:$id})%s(users:User)
		WITH collect(users.id) AS usersList, user
		WHERE size(usersList) > 0
		WITH '(' + apoc.text.join(usersList, ' OR ') + ')^2' AS queryPart, user
		CALL db.index.fulltext.queryNodes('%s', $search + ' AND id:' + queryPart) YIELD node
		WITH user, node SKIP $skip LIMIT $limit
		MATCH (node)-[:CONTENT_IN]->(profile:Profile)
		RETURN
		node.id AS id,
		node.name AS name,
		node.userName AS userName,
		profile.imageId AS imageId,
		CASE WHEN $isFollow THEN true ELSE EXISTS((user)-[:FOLLOW]->(node)) END AS followed
		`, pattern, UserFullTextIndex)

		params["search"] = "*" + search + "*"

		records, err := db.run(ctx, "getRelatedUsersSearch", query, params)
		if err != nil {
			return nil, err
		}
		return NativeRecords(records), nil
	}

	query := fmt.Sprintf(`
	MATCH (user:User {id:$id})%s(users:User)
	WITH user, users SKIP $skip LIMIT $limit
	MATCH (users)-[:CONTENT_IN]->(profile:Profile)
	RETURN
	users.id AS id,
	users.name AS name,
	profile.imageId AS imageId,
	users.userName AS userName,
	CASE WHEN $isFollow THEN true ELSE EXISTS((user)-[:FOLLOW]->(users)) END AS followed
	`, pattern)

	records, err := db.run(ctx, "getRelatedUsers", query, params)
	if err != nil {
		return nil, err
	}
	return NativeRecords(records), nil
}

// TagUsers tags users by userName in a content item and returns their ids.
func (db *DB) TagUsers(ctx context.Context, req models.TagUsersRequest) ([]map[string]any, error) {
	if !models.TagTarget(req.Entity) {
		return nil, fmt.Errorf("entity %q does not support tagging: %w", req.Entity, ErrInvalidEntity)
	}

	query := fmt.Sprintf(`
	MATCH (content:%s {id:$entityId})
	UNWIND $userNames AS name
	MATCH (user:User {userName:name})
	MERGE (user)-[:TAGGED_IN]->(content)
	RETURN user.id AS id
	`, req.Entity)

	records, err := db.run(ctx, "tagUsers", query, map[string]any{
		"userNames": req.UserNames,
		"entityId":  req.EntityID,
	})
	if err != nil {
		return nil, err
	}
	return NativeRecords(records), nil
}

// CreateRelation creates one aliased relationship from a user.
func (db *DB) CreateRelation(ctx context.Context, req models.RelationRequest) error {
	spec, ok := models.RelationAliases[req.Relation]
	if !ok {
		return fmt.Errorf("unknown relation alias %q: %w", req.Relation, ErrInvalidEntity)
	}

	query := fmt.Sprintf(`
	MATCH (from:User {id:$fromId}), (to:%s {id:$toId})
	MERGE (from)-[r:%s]->(to)
	`, spec.Target, spec.Name)

	_, err := db.run(ctx, "createRelation", query, map[string]any{
		"fromId": req.FromID,
		"toId":   req.ToID,
	})
	return err
}

// DeleteRelation removes one aliased relationship from a user.
func (db *DB) DeleteRelation(ctx context.Context, req models.RelationRequest) error {
	spec, ok := models.RelationAliases[req.Relation]
	if !ok {
		return fmt.Errorf("unknown relation alias %q: %w", req.Relation, ErrInvalidEntity)
	}

	query := fmt.Sprintf(`
	MATCH (from:User {id:$fromId})-[r:%s]->(to:%s {id:$toId})
	DELETE r
	`, spec.Name, spec.Target)

	_, err := db.run(ctx, "deleteRelation", query, map[string]any{
		"fromId": req.FromID,
		"toId":   req.ToID,
	})
	return err
}
