// Social Media App - Graph-Backed Social Content API
// Copyright 2026 Moneeb Shammout (moneebshammout)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/moneebshammout/social-media-app

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/moneebshammout/social-media-app/internal/middleware"
	"github.com/moneebshammout/social-media-app/internal/models"
)

// NewRouter wires the full HTTP surface onto a chi router.
func (h *Handler) NewRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: h.cfg.Server.CORSOrigins,
		AllowedMethods: []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
		MaxAge:         300,
	}))
	if !h.cfg.Server.RateLimitDisabled {
		r.Use(httprate.LimitByIP(h.cfg.Server.RateLimitReqs, h.cfg.Server.RateLimitWindow))
	}
	r.Use(middleware.PrometheusMetrics)

	r.Get("/health", h.Health)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/user", func(r chi.Router) {
		r.Post("/", h.CreateUser)
		r.Patch("/", h.UpdateUser)
		r.Get("/", h.GetUser)
		r.Get("/counts", h.GetUserCounts)
		r.Get("/name", h.GetUsersByName)
		r.Get("/user_name", h.GetUserByUserName)
		r.Get("/followers", h.relatedUsersHandler(models.RelFollow, false))
		r.Get("/subscribers", h.relatedUsersHandler(models.RelSubscribe, false))
		r.Get("/following", h.relatedUsersHandler(models.RelFollow, true))
		r.Get("/authorize-view", h.AuthorizeProfileView)
		r.Patch("/profile", h.ChangeProfileState)
		r.Post("/tag", h.TagUsers)
		r.Post("/relation", h.CreateRelation)
		r.Delete("/relation", h.DeleteRelation)
	})

	r.Route("/poll", func(r chi.Router) {
		r.Post("/", h.CreatePoll)
		r.Patch("/", h.EndPoll)
		r.Delete("/", h.DeletePoll)
		r.Get("/", h.GetRandomPolls)
		r.Get("/me", h.GetPollsByMe)
		r.Get("/counts", h.GetPollCounts)
		r.Get("/others", h.GetPollsByOthers)
		r.Get("/genre", h.GetPollsByGenre)
	})

	r.Route("/post", func(r chi.Router) {
		r.Post("/", h.CreatePost)
		r.Patch("/", h.UpdatePost)
		r.Post("/repost", h.Repost)
		r.Delete("/", h.DeletePost)
		r.Get("/user", h.GetPostsByUser)
		r.Get("/by-description", h.GetPostsByDescription)
		r.Get("/counts", h.GetPostCounts)
	})

	r.Route("/review", func(r chi.Router) {
		r.Post("/", h.CreateReview)
		r.Delete("/", h.DeleteReview)
		r.Get("/counts", h.GetReviewCounts)
		r.Get("/user", h.GetReviewsByUser)
		r.Get("/name", h.GetReviewsByName)
	})

	r.Route("/comment", func(r chi.Router) {
		r.Post("/", h.CreateComment)
		r.Patch("/", h.UpdateComment)
		r.Delete("/", h.DeleteComment)
		r.Get("/", h.GetComments)
	})

	r.Route("/feed", func(r chi.Router) {
		r.Get("/following", h.GetFollowingFeed)
		r.Get("/paid", h.GetPaidFeed)
		r.Get("/user-paid", h.GetUserPaidFeed)
		r.Get("/user-content", h.GetUserContent)
		r.Get("/tagged", h.GetTaggedContent)
	})

	r.Route("/genre", func(r chi.Router) {
		r.Get("/", h.GetGenresByName)
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		respondError(w, http.StatusNotFound, map[string]any{}, "Route not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		respondError(w, http.StatusMethodNotAllowed, map[string]any{}, "Method not allowed")
	})

	return r
}

// Health handles GET /health.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	respond(w, map[string]any{"status": "ok"}, "healthy")
}
