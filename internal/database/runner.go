// Social Media App - Graph-Backed Social Content API
// Copyright 2026 Moneeb Shammout (moneebshammout)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/moneebshammout/social-media-app

// Package database is the Neo4j query layer: a thin Runner abstraction over
// the driver, the hand-written cypher per entity, startup migrations and the
// result normalizer that turns driver records into JSON-safe rows.
package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	"github.com/moneebshammout/social-media-app/internal/logging"
	"github.com/moneebshammout/social-media-app/internal/metrics"
)

// ErrNotFound is returned when a query expected to match a node matched
// nothing.
var ErrNotFound = errors.New("database: not found")

// ErrInvalidEntity is returned when a caller names an entity or relation
// outside the whitelist for the operation. Validation rejects these at the
// edge; this guards the query interpolation itself.
var ErrInvalidEntity = errors.New("database: entity not allowed")

// Runner executes one cypher query and buffers its records. The DB methods
// depend on this interface only, so tests substitute a fake without a
// running Neo4j.
type Runner interface {
	Run(ctx context.Context, query string, params map[string]any) ([]*neo4j.Record, error)
}

// Neo4jRunner is the production Runner on neo4j-go-driver/v5.
type Neo4jRunner struct {
	driver       neo4j.DriverWithContext
	databaseName string
	queryLogging bool
}

// Config holds the Neo4j connection settings.
type Config struct {
	URI      string
	Username string
	Password string

	// DatabaseName selects the target database. Empty uses the server default.
	DatabaseName string

	// QueryLogging logs every query with its parameters at debug level.
	QueryLogging bool
}

// NewRunner connects to Neo4j and verifies connectivity.
func NewRunner(ctx context.Context, cfg Config) (*Neo4jRunner, error) {
	driver, err := neo4j.NewDriverWithContext(cfg.URI, neo4j.BasicAuth(cfg.Username, cfg.Password, ""))
	if err != nil {
		return nil, fmt.Errorf("failed to create neo4j driver: %w", err)
	}

	if err := driver.VerifyConnectivity(ctx); err != nil {
		_ = driver.Close(ctx)
		return nil, fmt.Errorf("failed to connect to neo4j at %s: %w", cfg.URI, err)
	}

	return &Neo4jRunner{
		driver:       driver,
		databaseName: cfg.DatabaseName,
		queryLogging: cfg.QueryLogging,
	}, nil
}

// Run executes a cypher query through neo4j.ExecuteQuery, which manages
// sessions and retryable transactions, and buffers all records.
func (r *Neo4jRunner) Run(ctx context.Context, query string, params map[string]any) ([]*neo4j.Record, error) {
	if r.queryLogging {
		logging.Debug().Str("query", query).Interface("params", params).Msg("running cypher")
	}

	result, err := neo4j.ExecuteQuery(
		ctx,
		r.driver,
		query,
		params,
		neo4j.EagerResultTransformer,
		neo4j.ExecuteQueryWithDatabase(r.databaseName),
	)
	if err != nil {
		return nil, fmt.Errorf("query failed: %w", err)
	}

	return result.Records, nil
}

// VerifyConnectivity checks the connection to the database.
func (r *Neo4jRunner) VerifyConnectivity(ctx context.Context) error {
	return r.driver.VerifyConnectivity(ctx)
}

// Close closes the underlying driver.
func (r *Neo4jRunner) Close(ctx context.Context) error {
	return r.driver.Close(ctx)
}

// DB exposes the query layer. All methods issue parameterized cypher through
// the injected Runner and return normalized rows.
type DB struct {
	runner Runner

	// defaultLimit is the page size applied when a request omits limit.
	// Feed and tagged-content queries use contentLimit instead.
	defaultLimit int
	contentLimit int
}

// NewDB creates the query layer over a Runner.
func NewDB(runner Runner) *DB {
	return &DB{
		runner:       runner,
		defaultLimit: 10,
		contentLimit: 12,
	}
}

// run executes one named operation, recording its duration and outcome.
func (db *DB) run(ctx context.Context, operation, query string, params map[string]any) ([]*neo4j.Record, error) {
	start := time.Now()
	records, err := db.runner.Run(ctx, query, params)
	metrics.RecordDBQuery(operation, time.Since(start), err)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", operation, err)
	}
	return records, nil
}

// skip converts a 1-based page into the cypher SKIP offset.
func skip(page, limit int) int {
	return (page - 1) * limit
}

// pageLimit applies the default page size when limit is unset.
func (db *DB) pageLimit(limit int) int {
	if limit <= 0 {
		return db.defaultLimit
	}
	return limit
}

// contentPageLimit is pageLimit for the wider content/feed pages.
func (db *DB) contentPageLimit(limit int) int {
	if limit <= 0 {
		return db.contentLimit
	}
	return limit
}
