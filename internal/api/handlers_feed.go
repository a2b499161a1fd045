// Social Media App - Graph-Backed Social Content API
// Copyright 2026 Moneeb Shammout (moneebshammout)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/moneebshammout/social-media-app

package api

import (
	"net/http"

	"github.com/moneebshammout/social-media-app/internal/cache"
	"github.com/moneebshammout/social-media-app/internal/models"
)

// GetFollowingFeed handles GET /feed/following.
func (h *Handler) GetFollowingFeed(w http.ResponseWriter, r *http.Request) {
	q := models.PaginationQuery{
		ID:    r.URL.Query().Get("id"),
		Page:  queryInt(r, "page"),
		Limit: queryInt(r, "limit"),
	}
	if !validate(w, &q) {
		return
	}

	key := cache.FollowingFeedKey(q.Page, q.ID)
	if raw, hit := h.cache.Get(r.Context(), key); hit {
		respondCached(w, raw, "Following Feed from cache")
		return
	}

	result, err := h.db.FollowingFeed(r.Context(), q.ID, q.Page, h.pageLimit(q.Limit))
	if err != nil {
		respondDBError(w, err, "Failed to get following feed")
		return
	}

	h.cache.SetTTL(r.Context(), key, result, cache.TTLFeed)
	respond(w, result, "Following Feed fetched")
}

// GetPaidFeed handles GET /feed/paid, content from subscribed creators.
func (h *Handler) GetPaidFeed(w http.ResponseWriter, r *http.Request) {
	q := models.PaginationQuery{
		ID:    r.URL.Query().Get("id"),
		Page:  queryInt(r, "page"),
		Limit: queryInt(r, "limit"),
	}
	if !validate(w, &q) {
		return
	}

	key := cache.PaidFeedKey(q.Page, q.ID)
	if raw, hit := h.cache.Get(r.Context(), key); hit {
		respondCached(w, raw, "Paid Feed from cache")
		return
	}

	result, err := h.db.PaidFeed(r.Context(), q.ID, q.Page, h.pageLimit(q.Limit))
	if err != nil {
		respondDBError(w, err, "Failed to get paid feed")
		return
	}

	h.cache.SetTTL(r.Context(), key, result, cache.TTLFeed)
	respond(w, result, "Paid Feed fetched")
}

// GetUserPaidFeed handles GET /feed/user-paid, the user's own paid content.
func (h *Handler) GetUserPaidFeed(w http.ResponseWriter, r *http.Request) {
	q := models.PaginationQuery{
		ID:    r.URL.Query().Get("id"),
		Page:  queryInt(r, "page"),
		Limit: queryInt(r, "limit"),
	}
	if !validate(w, &q) {
		return
	}

	key := cache.PaidByKey(q.ID, q.Page)
	if raw, hit := h.cache.Get(r.Context(), key); hit {
		respondCached(w, raw, "User Paid Feed from cache")
		return
	}

	result, err := h.db.UserPaidFeed(r.Context(), q.ID, q.Page, h.pageLimit(q.Limit))
	if err != nil {
		respondDBError(w, err, "Failed to get user paid feed")
		return
	}

	h.cache.SetTTL(r.Context(), key, result, cache.TTLPaidByUser)
	respond(w, result, "User Paid Feed fetched")
}

// GetUserContent handles GET /feed/user-content, the profile grid.
func (h *Handler) GetUserContent(w http.ResponseWriter, r *http.Request) {
	q := models.PaginationQuery{
		ID:    r.URL.Query().Get("id"),
		Page:  queryInt(r, "page"),
		Limit: queryInt(r, "limit"),
	}
	if !validate(w, &q) {
		return
	}

	result, err := h.db.UserContent(r.Context(), q.ID, q.Page, q.Limit)
	if err != nil {
		respondDBError(w, err, "Failed to get user content")
		return
	}

	respond(w, result, "User Content fetched")
}

// GetTaggedContent handles GET /feed/tagged.
func (h *Handler) GetTaggedContent(w http.ResponseWriter, r *http.Request) {
	q := models.PaginationQuery{
		ID:    r.URL.Query().Get("id"),
		Page:  queryInt(r, "page"),
		Limit: queryInt(r, "limit"),
	}
	if !validate(w, &q) {
		return
	}

	result, err := h.db.TaggedContent(r.Context(), q.ID, q.Page, q.Limit)
	if err != nil {
		respondDBError(w, err, "Failed to get tagged content")
		return
	}

	respond(w, result, "User tagged in Content fetched")
}
