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

// CreatePost handles POST /post. Paid posts land in the owner's paid
// section and invalidate the paid pages; public ones invalidate the post
// pages.
func (h *Handler) CreatePost(w http.ResponseWriter, r *http.Request) {
	var req models.CreatePostRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	if err := h.db.CreatePost(r.Context(), req); err != nil {
		respondDBError(w, err, "Failed to create post")
		return
	}

	if req.Paid != nil && *req.Paid {
		h.cache.Invalidate(r.Context(), cache.PaidContentPattern(req.Data.OwnerID))
	} else {
		h.cache.Invalidate(r.Context(), cache.PostsByOwnerPattern(req.Data.OwnerID))
	}

	respond(w, nil, "Post Created")
}

// UpdatePost handles PATCH /post.
func (h *Handler) UpdatePost(w http.ResponseWriter, r *http.Request) {
	var req models.UpdatePostRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	if err := h.db.UpdatePost(r.Context(), req); err != nil {
		respondDBError(w, err, "Failed to update post")
		return
	}

	respond(w, nil, "Post Updated")
}

// Repost handles POST /post/repost.
func (h *Handler) Repost(w http.ResponseWriter, r *http.Request) {
	var req models.RepostRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	if err := h.db.Repost(r.Context(), req); err != nil {
		respondDBError(w, err, "Failed to repost")
		return
	}

	h.cache.Invalidate(r.Context(), cache.PostsByOwnerPattern(req.UserID))

	respond(w, nil, "Post Reposted")
}

// DeletePost handles DELETE /post.
func (h *Handler) DeletePost(w http.ResponseWriter, r *http.Request) {
	h.softDeleteHandler(models.LabelPost)(w, r)
}

// GetPostsByUser handles GET /post/user.
func (h *Handler) GetPostsByUser(w http.ResponseWriter, r *http.Request) {
	q := models.ViewerPaginationQuery{
		OwnerID:  r.URL.Query().Get("ownerId"),
		ViewerID: r.URL.Query().Get("viewerId"),
		Page:     queryInt(r, "page"),
		Limit:    queryInt(r, "limit"),
	}
	if !validate(w, &q) {
		return
	}

	key := cache.PostsByOwnerKey(q.Page, q.OwnerID, q.ViewerID)
	if raw, hit := h.cache.Get(r.Context(), key); hit {
		respondCached(w, raw, "Posts from cache")
		return
	}

	result, err := h.db.PostsByUser(r.Context(), q.OwnerID, q.ViewerID, q.Page, h.pageLimit(q.Limit))
	if err != nil {
		respondDBError(w, err, "Failed to get posts")
		return
	}

	h.cache.SetTTL(r.Context(), key, result, cache.TTLPostsByUser)
	respond(w, result, "posts fetched")
}

// GetPostsByDescription handles GET /post/by-description, the substring
// search over public posts.
func (h *Handler) GetPostsByDescription(w http.ResponseWriter, r *http.Request) {
	q := models.PostsByDescriptionQuery{
		Description: r.URL.Query().Get("description"),
		ID:          r.URL.Query().Get("id"),
		Page:        queryInt(r, "page"),
		Limit:       queryInt(r, "limit"),
	}
	if !validate(w, &q) {
		return
	}

	key := cache.PostsByDescriptionKey(q.Page, q.Description, q.ID)
	if raw, hit := h.cache.Get(r.Context(), key); hit {
		respondCached(w, raw, "Posts from cache")
		return
	}

	result, err := h.db.PostsByDescription(r.Context(), q.Description, q.ID, q.Page, h.pageLimit(q.Limit))
	if err != nil {
		respondDBError(w, err, "Failed to search posts")
		return
	}

	h.cache.SetTTL(r.Context(), key, result, cache.TTLPostsByDesc)
	respond(w, result, "Posts fetched")
}

// GetPostCounts handles GET /post/counts.
func (h *Handler) GetPostCounts(w http.ResponseWriter, r *http.Request) {
	h.entityCountsHandler(models.LabelPost)(w, r)
}
