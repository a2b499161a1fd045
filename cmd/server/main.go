// Social Media App - Graph-Backed Social Content API
// Copyright 2026 Moneeb Shammout (moneebshammout)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/moneebshammout/social-media-app

// Package main is the entry point for the social media API server.
//
// The server initializes components in the following order:
//
//  1. Configuration: layered load from defaults, config.yaml and environment
//     variables (Koanf v2)
//  2. Logging: zerolog, JSON or console format
//  3. Neo4j: driver connection, connectivity check and schema migrations
//  4. Cache: Redis response cache, or the in-process store when Redis is
//     disabled
//  5. HTTP server: chi router with CORS, rate limiting and Prometheus
//     metrics
//
// Shutdown is graceful on SIGINT and SIGTERM: the listener stops accepting,
// in-flight requests get ten seconds to finish, then the cache and driver
// close.
package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/moneebshammout/social-media-app/internal/api"
	"github.com/moneebshammout/social-media-app/internal/cache"
	"github.com/moneebshammout/social-media-app/internal/config"
	"github.com/moneebshammout/social-media-app/internal/database"
	"github.com/moneebshammout/social-media-app/internal/logging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
	})

	logging.Info().
		Str("environment", cfg.Server.Environment).
		Str("db_uri", cfg.Database.URI).
		Bool("redis_enabled", cfg.Redis.Enabled).
		Msg("Starting social media API")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	runner, err := database.NewRunner(ctx, database.Config{
		URI:          cfg.Database.URI,
		Username:     cfg.Database.Username,
		Password:     cfg.Database.Password,
		DatabaseName: cfg.Database.Name,
		QueryLogging: cfg.Database.QueryLogging,
	})
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to connect to Neo4j")
	}
	defer func() {
		if err := runner.Close(context.Background()); err != nil {
			logging.Error().Err(err).Msg("Error closing Neo4j driver")
		}
	}()

	db := database.NewDB(runner)
	if err := db.Migrate(ctx); err != nil {
		logging.Fatal().Err(err).Msg("Failed to run migrations")
	}
	logging.Info().Msg("Database ready")

	var store cache.Store
	if cfg.Redis.Enabled {
		redisStore, err := cache.NewRedisStore(ctx, cache.RedisConfig{
			Addr:     cfg.Redis.Addr(),
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			logging.Fatal().Err(err).Msg("Failed to connect to Redis")
		}
		store = redisStore
		logging.Info().Str("addr", cfg.Redis.Addr()).Msg("Redis cache connected")
	} else {
		store = cache.NewMemoryStore()
		logging.Info().Msg("Redis disabled, using in-process cache")
	}

	responseCache := cache.New(store)
	defer func() {
		if err := responseCache.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing cache")
		}
	}()

	handler := api.NewHandler(db, responseCache, cfg)

	server := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      handler.NewRouter(),
		ReadTimeout:  cfg.Server.Timeout,
		WriteTimeout: cfg.Server.Timeout,
		IdleTimeout:  2 * cfg.Server.Timeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logging.Info().Str("addr", server.Addr).Msg("HTTP server listening")
		errCh <- server.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		logging.Info().Msg("Shutdown signal received")
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Fatal().Err(err).Msg("HTTP server failed")
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logging.Error().Err(err).Msg("Graceful shutdown failed")
	}
	logging.Info().Msg("Server stopped")
}
