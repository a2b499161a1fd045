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

// CreateReview handles POST /review.
func (h *Handler) CreateReview(w http.ResponseWriter, r *http.Request) {
	var req models.CreateReviewRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	if err := h.db.CreateReview(r.Context(), req); err != nil {
		respondDBError(w, err, "Failed to create review")
		return
	}

	h.cache.Invalidate(r.Context(), cache.ReviewsByOwnerPattern(req.Data.OwnerID))
	if req.Paid != nil && *req.Paid {
		h.cache.Invalidate(r.Context(), cache.PaidContentPattern(req.Data.OwnerID))
	}

	respond(w, nil, "Review Created")
}

// DeleteReview handles DELETE /review.
func (h *Handler) DeleteReview(w http.ResponseWriter, r *http.Request) {
	h.softDeleteHandler(models.LabelReview)(w, r)
}

// GetReviewCounts handles GET /review/counts.
func (h *Handler) GetReviewCounts(w http.ResponseWriter, r *http.Request) {
	h.entityCountsHandler(models.LabelReview)(w, r)
}

// GetReviewsByUser handles GET /review/user.
func (h *Handler) GetReviewsByUser(w http.ResponseWriter, r *http.Request) {
	q := models.ViewerPaginationQuery{
		OwnerID:  r.URL.Query().Get("ownerId"),
		ViewerID: r.URL.Query().Get("viewerId"),
		Page:     queryInt(r, "page"),
		Limit:    queryInt(r, "limit"),
	}
	if !validate(w, &q) {
		return
	}

	key := cache.ReviewsByOwnerKey(q.Page, q.OwnerID, q.ViewerID)
	if raw, hit := h.cache.Get(r.Context(), key); hit {
		respondCached(w, raw, "Reviews from cache")
		return
	}

	result, err := h.db.ReviewsByUser(r.Context(), q.OwnerID, q.ViewerID, q.Page, h.pageLimit(q.Limit))
	if err != nil {
		respondDBError(w, err, "Failed to get reviews")
		return
	}

	h.cache.SetTTL(r.Context(), key, result, cache.TTLReviewsByUser)
	respond(w, result, "Reviews fetched")
}

// GetReviewsByName handles GET /review/name, the full-text search by
// product or firm name.
func (h *Handler) GetReviewsByName(w http.ResponseWriter, r *http.Request) {
	q := models.ReviewsByNameQuery{
		Name:  r.URL.Query().Get("name"),
		ID:    r.URL.Query().Get("id"),
		Page:  queryInt(r, "page"),
		Limit: queryInt(r, "limit"),
	}
	if !validate(w, &q) {
		return
	}

	key := cache.ReviewsByNameKey(q.Page, q.Name, q.ID)
	if raw, hit := h.cache.Get(r.Context(), key); hit {
		respondCached(w, raw, "Reviews from cache")
		return
	}

	result, err := h.db.ReviewsByName(r.Context(), q.Name, q.ID, q.Page, h.pageLimit(q.Limit))
	if err != nil {
		respondDBError(w, err, "Failed to search reviews")
		return
	}

	h.cache.SetTTL(r.Context(), key, result, cache.TTLReviewsByName)
	respond(w, result, "Reviews fetched")
}
