// Social Media App - Graph-Backed Social Content API
// Copyright 2026 Moneeb Shammout (moneebshammout)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/moneebshammout/social-media-app

// Package api exposes the HTTP surface: one handler set per resource, the
// chi router wiring them together and the envelope helpers. Every response
// is the {data, msg, success} envelope; read endpoints consult the response
// cache before the graph and write endpoints invalidate it by pattern.
package api

import (
	"github.com/moneebshammout/social-media-app/internal/cache"
	"github.com/moneebshammout/social-media-app/internal/config"
	"github.com/moneebshammout/social-media-app/internal/database"
)

// Handler carries the dependencies of all route handlers.
type Handler struct {
	db    *database.DB
	cache *cache.Cache
	cfg   *config.Config
}

// NewHandler creates the handler set.
func NewHandler(db *database.DB, c *cache.Cache, cfg *config.Config) *Handler {
	return &Handler{
		db:    db,
		cache: c,
		cfg:   cfg,
	}
}

// pageLimit resolves the limit query parameter against the configured
// default page size.
func (h *Handler) pageLimit(limit int) int {
	if limit <= 0 {
		return h.cfg.API.PageSize
	}
	return limit
}
