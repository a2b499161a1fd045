// Social Media App - Graph-Backed Social Content API
// Copyright 2026 Moneeb Shammout (moneebshammout)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/moneebshammout/social-media-app

package api

import (
	"fmt"
	"net/http"

	"github.com/moneebshammout/social-media-app/internal/cache"
	"github.com/moneebshammout/social-media-app/internal/models"
)

// CreateUser handles POST /user.
func (h *Handler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req models.CreateUserRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	if err := h.db.CreateUser(r.Context(), req); err != nil {
		respondDBError(w, err, "Failed to create user")
		return
	}

	respond(w, nil, "User Created")
}

// UpdateUser handles PATCH /user.
func (h *Handler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateUserRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	if err := h.db.UpdateUser(r.Context(), req); err != nil {
		respondDBError(w, err, "Failed to update user")
		return
	}

	// The cached user+profile row is stale now.
	h.cache.Invalidate(r.Context(), cache.UserByIDKey(req.ID))

	respond(w, nil, "User Updated")
}

// GetUser handles GET /user.
func (h *Handler) GetUser(w http.ResponseWriter, r *http.Request) {
	q := models.IDQuery{ID: r.URL.Query().Get("id")}
	if !validate(w, &q) {
		return
	}

	key := cache.UserByIDKey(q.ID)
	if raw, hit := h.cache.Get(r.Context(), key); hit {
		respondCached(w, raw, "User from cache")
		return
	}

	result, err := h.db.GetUserByID(r.Context(), q.ID)
	if err != nil {
		respondDBError(w, err, "Failed to get user")
		return
	}

	h.cache.SetTTL(r.Context(), key, result, cache.TTLUserByID)
	respond(w, result, "User Retrieved")
}

// GetUserCounts handles GET /user/counts.
func (h *Handler) GetUserCounts(w http.ResponseWriter, r *http.Request) {
	q := models.IDQuery{ID: r.URL.Query().Get("id")}
	if !validate(w, &q) {
		return
	}

	key := cache.CountsByUserKey(q.ID)
	if raw, hit := h.cache.Get(r.Context(), key); hit {
		respondCached(w, raw, "counts from cache")
		return
	}

	result, err := h.db.GetUserCounts(r.Context(), q.ID)
	if err != nil {
		respondDBError(w, err, "Failed to get user counts")
		return
	}

	h.cache.SetTTL(r.Context(), key, result, cache.TTLCountsByUser)
	respond(w, result, "counts fetched")
}

// GetUsersByName handles GET /user/name, the full-text search over name,
// userName and id.
func (h *Handler) GetUsersByName(w http.ResponseWriter, r *http.Request) {
	q := models.NamePaginationQuery{
		Name:  r.URL.Query().Get("name"),
		Page:  queryInt(r, "page"),
		Limit: queryInt(r, "limit"),
	}
	if !validate(w, &q) {
		return
	}

	key := cache.UsersByNameKey(q.Name, q.Page)
	if raw, hit := h.cache.Get(r.Context(), key); hit {
		respondCached(w, raw, "Users from cache")
		return
	}

	result, err := h.db.SearchUsersByName(r.Context(), q.Name, q.Page, h.pageLimit(q.Limit))
	if err != nil {
		respondDBError(w, err, "Failed to search users")
		return
	}

	h.cache.SetTTL(r.Context(), key, result, cache.TTLUsersByName)
	respond(w, result, "Users fetched")
}

// GetUserByUserName handles GET /user/user_name. Limit 1 is an exact lookup;
// larger limits page a prefix match. Never cached: the exact variant backs
// userName availability checks during signup.
func (h *Handler) GetUserByUserName(w http.ResponseWriter, r *http.Request) {
	q := models.UserNameQuery{
		UserName: r.URL.Query().Get("userName"),
		Page:     queryInt(r, "page"),
		Limit:    queryInt(r, "limit"),
	}
	if !validate(w, &q) {
		return
	}

	result, err := h.db.GetUserByUserName(r.Context(), q.UserName, q.Page, q.Limit)
	if err != nil {
		respondDBError(w, err, "Failed to get user by userName")
		return
	}

	respond(w, result, "By userName")
}

// relatedUsersHandler serves one relation listing endpoint: followers,
// subscribers or following. Pages are cached per relation, user and page
// unless a search narrows the listing.
func (h *Handler) relatedUsersHandler(relation string, outbound bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := models.PaginationQuery{
			ID:     r.URL.Query().Get("id"),
			Page:   queryInt(r, "page"),
			Limit:  queryInt(r, "limit"),
			Search: r.URL.Query().Get("search"),
		}
		if !validate(w, &q) {
			return
		}

		key := cache.UserRelatedInKey(relation, q.ID, q.Page)
		if outbound {
			key = cache.UserRelatedOutKey(relation, q.ID, q.Page)
		}

		// Search results are viewer-specific one-offs; only plain pages cache.
		if q.Search == "" {
			if raw, hit := h.cache.Get(r.Context(), key); hit {
				respondCached(w, raw, "Users from cache")
				return
			}
		}

		var (
			result []map[string]any
			err    error
		)
		if outbound {
			result, err = h.db.GetRelationsOutUser(r.Context(), relation, q.ID, q.Page, h.pageLimit(q.Limit), q.Search)
		} else {
			result, err = h.db.GetRelationsInUser(r.Context(), relation, q.ID, q.Page, h.pageLimit(q.Limit), q.Search)
		}
		if err != nil {
			respondDBError(w, err, "Failed to get related users")
			return
		}

		if q.Search == "" {
			h.cache.SetTTL(r.Context(), key, result, cache.TTLUserRelated)
		}
		respond(w, result, fmt.Sprintf("Users in %s fetched", relation))
	}
}

// ChangeProfileState handles PATCH /user/profile, toggling Public/Private.
func (h *Handler) ChangeProfileState(w http.ResponseWriter, r *http.Request) {
	q := models.IDQuery{ID: r.URL.Query().Get("id")}
	if !validate(w, &q) {
		return
	}

	state, err := h.db.ChangeProfileState(r.Context(), q.ID)
	if err != nil {
		respondDBError(w, err, "Failed to change profile state")
		return
	}

	h.cache.Invalidate(r.Context(), cache.UserByIDKey(q.ID))

	respond(w, map[string]any{"state": state}, "Profile state changed")
}

// AuthorizeProfileView handles GET /user/authorize-view.
func (h *Handler) AuthorizeProfileView(w http.ResponseWriter, r *http.Request) {
	q := models.AuthorizeViewQuery{
		ViewerID: r.URL.Query().Get("viewerId"),
		OwnerID:  r.URL.Query().Get("ownerId"),
	}
	if !validate(w, &q) {
		return
	}

	result, err := h.db.AuthorizeProfileView(r.Context(), q.ViewerID, q.OwnerID)
	if err != nil {
		respondDBError(w, err, "Failed to authorize profile view")
		return
	}

	respond(w, result, "Profile Authorizing fetched")
}

// TagUsers handles POST /user/tag.
func (h *Handler) TagUsers(w http.ResponseWriter, r *http.Request) {
	var req models.TagUsersRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	result, err := h.db.TagUsers(r.Context(), req)
	if err != nil {
		respondDBError(w, err, "Failed to tag users")
		return
	}

	respond(w, result, "Users Tagged")
}

// CreateRelation handles POST /user/relation.
func (h *Handler) CreateRelation(w http.ResponseWriter, r *http.Request) {
	var req models.RelationRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	if err := h.db.CreateRelation(r.Context(), req); err != nil {
		respondDBError(w, err, "Failed to create relationship")
		return
	}

	respond(w, nil, "Relationship Created")
}

// DeleteRelation handles DELETE /user/relation.
func (h *Handler) DeleteRelation(w http.ResponseWriter, r *http.Request) {
	var req models.RelationRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	if err := h.db.DeleteRelation(r.Context(), req); err != nil {
		respondDBError(w, err, "Failed to delete relationship")
		return
	}

	respond(w, nil, "Relationship Deleted")
}
