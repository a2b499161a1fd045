// Social Media App - Graph-Backed Social Content API
// Copyright 2026 Moneeb Shammout (moneebshammout)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/moneebshammout/social-media-app

package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moneebshammout/social-media-app/internal/cache"
	"github.com/moneebshammout/social-media-app/internal/config"
	"github.com/moneebshammout/social-media-app/internal/database"
)

// fakeRunner replays canned records and counts queries per operation name
// fragment.
type fakeRunner struct {
	records []*neo4j.Record
	queries []string
}

func (f *fakeRunner) Run(ctx context.Context, query string, params map[string]any) ([]*neo4j.Record, error) {
	f.queries = append(f.queries, query)
	return f.records, nil
}

type envelope struct {
	Data    any    `json:"data"`
	Msg     string `json:"msg"`
	Success bool   `json:"success"`
}

func newTestServer(t *testing.T, records ...*neo4j.Record) (http.Handler, *fakeRunner, *cache.Cache) {
	t.Helper()

	runner := &fakeRunner{records: records}
	store := cache.NewMemoryStore()
	t.Cleanup(func() { _ = store.Close() })
	responseCache := cache.New(store)

	cfg := &config.Config{
		Server: config.ServerConfig{
			CORSOrigins:       []string{"*"},
			RateLimitDisabled: true,
		},
		API: config.APIConfig{PageSize: 10},
	}

	h := NewHandler(database.NewDB(runner), responseCache, cfg)
	return h.NewRouter(), runner, responseCache
}

func doRequest(t *testing.T, router http.Handler, method, target string, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), "body: %s", rec.Body.String())
	return rec, env
}

func TestHealthEndpoint(t *testing.T) {
	router, _, _ := newTestServer(t)

	rec, env := doRequest(t, router, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, env.Success)
	assert.Equal(t, "healthy", env.Msg)
}

func TestUnknownRouteEnvelope(t *testing.T) {
	router, _, _ := newTestServer(t)

	rec, env := doRequest(t, router, http.MethodGet, "/nope", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.False(t, env.Success)
	assert.Equal(t, "Route not found", env.Msg)
}

func TestRequestIDHeader(t *testing.T) {
	router, _, _ := newTestServer(t)

	rec, _ := doRequest(t, router, http.MethodGet, "/health", "")
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}

func TestValidationFailureEnvelope(t *testing.T) {
	router, runner, _ := newTestServer(t)

	rec, env := doRequest(t, router, http.MethodGet, "/poll/me?id=u1", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.False(t, env.Success)
	assert.Equal(t, "Validation Failed", env.Msg)
	assert.Empty(t, runner.queries, "invalid request must not reach the database")

	violations, ok := env.Data.([]any)
	require.True(t, ok, "data should hold the violation list")
	assert.NotEmpty(t, violations)
}

func TestInvalidBodyEnvelope(t *testing.T) {
	router, runner, _ := newTestServer(t)

	rec, env := doRequest(t, router, http.MethodPost, "/poll", "{not json")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid JSON body", env.Msg)
	assert.Empty(t, runner.queries)
}

func TestPollsByMeCachesPages(t *testing.T) {
	router, runner, _ := newTestServer(t)

	_, env := doRequest(t, router, http.MethodGet, "/poll/me?id=u1&page=1", "")
	assert.Equal(t, "Polls fetched", env.Msg)
	assert.Len(t, runner.queries, 1)

	_, env = doRequest(t, router, http.MethodGet, "/poll/me?id=u1&page=1", "")
	assert.Equal(t, "Polls from cache", env.Msg)
	assert.Len(t, runner.queries, 1, "second read must come from cache")

	// A different page is a different key.
	_, env = doRequest(t, router, http.MethodGet, "/poll/me?id=u1&page=2", "")
	assert.Equal(t, "Polls fetched", env.Msg)
	assert.Len(t, runner.queries, 2)
}

func TestCreatePollInvalidatesOwnerPages(t *testing.T) {
	router, runner, _ := newTestServer(t)

	_, _ = doRequest(t, router, http.MethodGet, "/poll/me?id=u1&page=1", "")
	require.Len(t, runner.queries, 1)

	body := `{
		"id":"poll-1",
		"genres":["tech"],
		"data":{"ownerId":"u1","ownerName":"Lina","ownerImageId":"img1","imageId":["a"],"type":"single"}
	}`
	rec, env := doRequest(t, router, http.MethodPost, "/poll", body)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Poll Created", env.Msg)

	// The cached page is gone; the next read hits the database again.
	_, env = doRequest(t, router, http.MethodGet, "/poll/me?id=u1&page=1", "")
	assert.Equal(t, "Polls fetched", env.Msg)
}

func TestEndPollRequiresOwnerID(t *testing.T) {
	router, runner, _ := newTestServer(t)

	rec, _ := doRequest(t, router, http.MethodPatch, "/poll?id=p1", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, runner.queries)

	rec, env := doRequest(t, router, http.MethodPatch, "/poll?id=p1&ownerId=u1", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "POLL ended", env.Msg)
}

func TestRelatedUsersSearchSkipsCache(t *testing.T) {
	router, runner, _ := newTestServer(t)

	_, _ = doRequest(t, router, http.MethodGet, "/user/followers?id=u1&page=1", "")
	_, env := doRequest(t, router, http.MethodGet, "/user/followers?id=u1&page=1", "")
	assert.Equal(t, "Users from cache", env.Msg)
	assert.Len(t, runner.queries, 1)

	// A search variant bypasses the cached plain page.
	_, env = doRequest(t, router, http.MethodGet, "/user/followers?id=u1&page=1&search=lina", "")
	assert.Equal(t, "Users in FOLLOW fetched", env.Msg)
	assert.Len(t, runner.queries, 2)
}

func TestRelationEndpointRejectsUnknownAlias(t *testing.T) {
	router, runner, _ := newTestServer(t)

	rec, env := doRequest(t, router, http.MethodPost, "/user/relation",
		`{"fromId":"u1","toId":"u2","relation":"block"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Validation Failed", env.Msg)
	assert.Empty(t, runner.queries)
}

func TestSoftDeleteWipesEntityKeys(t *testing.T) {
	router, _, responseCache := newTestServer(t,
		&neo4j.Record{Keys: []string{"id"}, Values: []any{"u1"}},
	)

	ctx := context.Background()
	responseCache.Set(ctx, cache.PollsByMeKey(1, "u1"), []any{})

	rec, env := doRequest(t, router, http.MethodDelete, "/poll?id=p1", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Poll Deleted", env.Msg)

	_, hit := responseCache.Get(ctx, cache.PollsByMeKey(1, "u1"))
	assert.False(t, hit, "owner's poll pages must be invalidated")
}

func TestCommentsQueryValidatesEntity(t *testing.T) {
	router, runner, _ := newTestServer(t)

	rec, _ := doRequest(t, router, http.MethodGet, "/comment?id=c1&entity=Review&page=1", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, runner.queries)

	rec, env := doRequest(t, router, http.MethodGet, "/comment?id=c1&entity=Post&page=1", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Comments fetched", env.Msg)
}

func TestFeedEndpointsCacheByPage(t *testing.T) {
	router, runner, _ := newTestServer(t)

	_, env := doRequest(t, router, http.MethodGet, "/feed/following?id=u1&page=1", "")
	assert.Equal(t, "Following Feed fetched", env.Msg)

	_, env = doRequest(t, router, http.MethodGet, "/feed/following?id=u1&page=1", "")
	assert.Equal(t, "Following Feed from cache", env.Msg)
	assert.Len(t, runner.queries, 1)
}

func TestUserByIDCacheRoundTrip(t *testing.T) {
	router, runner, _ := newTestServer(t,
		&neo4j.Record{
			Keys:   []string{"user"},
			Values: []any{map[string]any{"id": "u1", "name": "Lina"}},
		},
	)

	_, env := doRequest(t, router, http.MethodGet, "/user?id=u1", "")
	assert.Equal(t, "User Retrieved", env.Msg)

	_, env = doRequest(t, router, http.MethodGet, "/user?id=u1", "")
	assert.Equal(t, "User from cache", env.Msg)
	assert.Len(t, runner.queries, 1)
}
