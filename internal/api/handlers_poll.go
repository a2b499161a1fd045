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

// CreatePoll handles POST /poll.
func (h *Handler) CreatePoll(w http.ResponseWriter, r *http.Request) {
	var req models.CreatePollRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	if err := h.db.CreatePoll(r.Context(), req); err != nil {
		respondDBError(w, err, "Failed to create poll")
		return
	}

	h.cache.Invalidate(r.Context(), cache.PollsByOwnerPattern(req.Data.OwnerID))

	respond(w, nil, "Poll Created")
}

// EndPoll handles PATCH /poll. Ending an already ended poll matches nothing
// and still reports success, so retries are harmless.
func (h *Handler) EndPoll(w http.ResponseWriter, r *http.Request) {
	q := models.EndPollQuery{
		ID:      r.URL.Query().Get("id"),
		OwnerID: r.URL.Query().Get("ownerId"),
	}
	if !validate(w, &q) {
		return
	}

	if err := h.db.EndPoll(r.Context(), q.ID); err != nil {
		respondDBError(w, err, "Failed to end poll")
		return
	}

	h.cache.Invalidate(r.Context(), cache.PollsByOwnerPattern(q.OwnerID))

	respond(w, nil, "POLL ended")
}

// DeletePoll handles DELETE /poll.
func (h *Handler) DeletePoll(w http.ResponseWriter, r *http.Request) {
	h.softDeleteHandler(models.LabelPoll)(w, r)
}

// GetRandomPolls handles GET /poll, the discovery page.
func (h *Handler) GetRandomPolls(w http.ResponseWriter, r *http.Request) {
	q := models.IDQuery{ID: r.URL.Query().Get("id")}
	if !validate(w, &q) {
		return
	}

	result, err := h.db.RandomPolls(r.Context(), q.ID)
	if err != nil {
		respondDBError(w, err, "Failed to get random polls")
		return
	}

	respond(w, result, "Polls fetched")
}

// GetPollsByMe handles GET /poll/me. Pages cache without expiry and drop
// only when the owner creates, ends or deletes a poll.
func (h *Handler) GetPollsByMe(w http.ResponseWriter, r *http.Request) {
	q := models.PaginationQuery{
		ID:    r.URL.Query().Get("id"),
		Page:  queryInt(r, "page"),
		Limit: queryInt(r, "limit"),
	}
	if !validate(w, &q) {
		return
	}

	key := cache.PollsByMeKey(q.Page, q.ID)
	if raw, hit := h.cache.Get(r.Context(), key); hit {
		respondCached(w, raw, "Polls from cache")
		return
	}

	result, err := h.db.PollsByMe(r.Context(), q.ID, q.Page, h.pageLimit(q.Limit))
	if err != nil {
		respondDBError(w, err, "Failed to get polls")
		return
	}

	h.cache.Set(r.Context(), key, result)
	respond(w, result, "Polls fetched")
}

// GetPollsByOthers handles GET /poll/others.
func (h *Handler) GetPollsByOthers(w http.ResponseWriter, r *http.Request) {
	q := models.ViewerPaginationQuery{
		OwnerID:  r.URL.Query().Get("ownerId"),
		ViewerID: r.URL.Query().Get("viewerId"),
		Page:     queryInt(r, "page"),
		Limit:    queryInt(r, "limit"),
	}
	if !validate(w, &q) {
		return
	}

	key := cache.PollsByOthersKey(q.OwnerID, q.ViewerID, q.Page)
	if raw, hit := h.cache.Get(r.Context(), key); hit {
		respondCached(w, raw, "Polls from cache")
		return
	}

	result, err := h.db.PollsByOthers(r.Context(), q.OwnerID, q.ViewerID, q.Page, h.pageLimit(q.Limit))
	if err != nil {
		respondDBError(w, err, "Failed to get polls")
		return
	}

	h.cache.SetTTL(r.Context(), key, result, cache.TTLPollsByOthers)
	respond(w, result, "Polls fetched")
}

// GetPollsByGenre handles GET /poll/genre.
func (h *Handler) GetPollsByGenre(w http.ResponseWriter, r *http.Request) {
	q := models.GenrePollsQuery{
		Genre: r.URL.Query().Get("genre"),
		ID:    r.URL.Query().Get("id"),
		Page:  queryInt(r, "page"),
		Limit: queryInt(r, "limit"),
	}
	if !validate(w, &q) {
		return
	}

	key := cache.PollsByGenreKey(q.Genre, q.ID, q.Page)
	if raw, hit := h.cache.Get(r.Context(), key); hit {
		respondCached(w, raw, "Polls from cache")
		return
	}

	result, err := h.db.PollsByGenre(r.Context(), q.Genre, q.ID, q.Page, h.pageLimit(q.Limit))
	if err != nil {
		respondDBError(w, err, "Failed to get polls")
		return
	}

	h.cache.SetTTL(r.Context(), key, result, cache.TTLPollsByGenre)
	respond(w, result, "Polls fetched")
}

// GetPollCounts handles GET /poll/counts, the live counts of an Active poll.
func (h *Handler) GetPollCounts(w http.ResponseWriter, r *http.Request) {
	q := models.IDQuery{ID: r.URL.Query().Get("id")}
	if !validate(w, &q) {
		return
	}

	result, err := h.db.PollCounts(r.Context(), q.ID)
	if err != nil {
		respondDBError(w, err, "Failed to get poll counts")
		return
	}

	respond(w, result, "Poll count fetched")
}
