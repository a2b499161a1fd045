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

// CreateComment handles POST /comment.
func (h *Handler) CreateComment(w http.ResponseWriter, r *http.Request) {
	var req models.CreateCommentRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	if err := h.db.CreateComment(r.Context(), req); err != nil {
		respondDBError(w, err, "Failed to create comment")
		return
	}

	respond(w, nil, "Comment Created")
}

// UpdateComment handles PATCH /comment.
func (h *Handler) UpdateComment(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateCommentRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	if err := h.db.UpdateComment(r.Context(), req); err != nil {
		respondDBError(w, err, "Failed to update comment")
		return
	}

	respond(w, nil, "Comment Updated")
}

// DeleteComment handles DELETE /comment.
func (h *Handler) DeleteComment(w http.ResponseWriter, r *http.Request) {
	h.softDeleteHandler(models.LabelComment)(w, r)
}

// GetComments handles GET /comment, paging the comments on one content item.
func (h *Handler) GetComments(w http.ResponseWriter, r *http.Request) {
	q := models.CommentsQuery{
		ID:     r.URL.Query().Get("id"),
		Entity: r.URL.Query().Get("entity"),
		Page:   queryInt(r, "page"),
		Limit:  queryInt(r, "limit"),
	}
	if !validate(w, &q) {
		return
	}

	key := cache.CommentsKey(q.ID, q.Page)
	if raw, hit := h.cache.Get(r.Context(), key); hit {
		respondCached(w, raw, "Comments from cache")
		return
	}

	result, err := h.db.Comments(r.Context(), q.Entity, q.ID, q.Page, h.pageLimit(q.Limit))
	if err != nil {
		respondDBError(w, err, "Failed to get comments")
		return
	}

	h.cache.SetTTL(r.Context(), key, result, cache.TTLComments)
	respond(w, result, "Comments fetched")
}
