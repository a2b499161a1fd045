// Social Media App - Graph-Backed Social Content API
// Copyright 2026 Moneeb Shammout (moneebshammout)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/moneebshammout/social-media-app

package api

import (
	"net/http"

	"github.com/moneebshammout/social-media-app/internal/models"
)

// GetGenresByName handles GET /genre, the prefix search for the genre
// picker.
func (h *Handler) GetGenresByName(w http.ResponseWriter, r *http.Request) {
	q := models.NamePaginationQuery{
		Name:  r.URL.Query().Get("name"),
		Page:  queryInt(r, "page"),
		Limit: queryInt(r, "limit"),
	}
	if !validate(w, &q) {
		return
	}

	result, err := h.db.GenresByName(r.Context(), q.Name, q.Page, h.pageLimit(q.Limit))
	if err != nil {
		respondDBError(w, err, "Failed to get genres")
		return
	}

	respond(w, result, "genres fetched")
}
