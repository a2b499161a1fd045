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

// softDeleteHandler serves the DELETE endpoint of one content entity. The
// query returns the owner id, which keys the pattern wipe of every cached
// page mentioning the entity type and owner.
func (h *Handler) softDeleteHandler(entity string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := models.IDQuery{ID: r.URL.Query().Get("id")}
		if !validate(w, &q) {
			return
		}

		ownerID, err := h.db.SoftDelete(r.Context(), entity, q.ID)
		if err != nil {
			respondDBError(w, err, fmt.Sprintf("Failed to delete %s", entity))
			return
		}

		h.cache.Invalidate(r.Context(), cache.SoftDeletePattern(entity, ownerID))

		respond(w, nil, fmt.Sprintf("%s Deleted", entity))
	}
}

// entityCountsHandler serves the vote-count endpoint of posts and reviews.
func (h *Handler) entityCountsHandler(entity string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := models.IDQuery{ID: r.URL.Query().Get("id")}
		if !validate(w, &q) {
			return
		}

		result, err := h.db.EntityCounts(r.Context(), entity, q.ID)
		if err != nil {
			respondDBError(w, err, fmt.Sprintf("Failed to get %s counts", entity))
			return
		}

		respond(w, result, fmt.Sprintf("%s count fetched", entity))
	}
}
