// Social Media App - Graph-Backed Social Content API
// Copyright 2026 Moneeb Shammout (moneebshammout)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/moneebshammout/social-media-app

package database

import (
	"testing"
	"time"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"github.com/neo4j/neo4j-go-driver/v5/neo4j/dbtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func record(keys []string, values []any) *neo4j.Record {
	return &neo4j.Record{Keys: keys, Values: values}
}

func TestNativeRecordsTemporalValues(t *testing.T) {
	date := dbtype.Date(time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC))
	rows := NativeRecords([]*neo4j.Record{
		record([]string{"endedDate", "stamp"}, []any{date, time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)}),
	})

	require.Len(t, rows, 1)
	assert.Equal(t, "2026-03-14", rows[0]["endedDate"])
	assert.Equal(t, "2026-03-14T09:30:00Z", rows[0]["stamp"])
}

func TestNativeRecordsNodeFlattening(t *testing.T) {
	node := dbtype.Node{Props: map[string]any{"id": "u1", "name": "Lina"}}
	rows := NativeRecords([]*neo4j.Record{
		record([]string{"user"}, []any{node}),
	})

	assert.Equal(t, map[string]any{"id": "u1", "name": "Lina"}, rows[0]["user"])
}

func TestNativeRecordsMediaParsing(t *testing.T) {
	rows := NativeRecords([]*neo4j.Record{
		record(
			[]string{"media", "description"},
			[]any{`{"id":"m1","type":"video"}`, `{"id":"m1","type":"video"}`},
		),
	})

	// Only the declared JSON field parses; the identical user string survives.
	assert.Equal(t, map[string]any{"id": "m1", "type": "video"}, rows[0]["media"])
	assert.Equal(t, `{"id":"m1","type":"video"}`, rows[0]["description"])
}

func TestNativeRecordsMediaParsingNested(t *testing.T) {
	props := map[string]any{
		"repostData": map[string]any{"media": `{"id":"m2","type":"image"}`},
	}
	rows := NativeRecords([]*neo4j.Record{
		record([]string{"properties", "id"}, []any{props, "p1"}),
	})

	repost := rows[0]["repostData"].(map[string]any)
	assert.Equal(t, map[string]any{"id": "m2", "type": "image"}, repost["media"])
}

func TestNativeRecordsMalformedMediaPassesThrough(t *testing.T) {
	rows := NativeRecords([]*neo4j.Record{
		record([]string{"media"}, []any{"not json {"}),
	})
	assert.Equal(t, "not json {", rows[0]["media"])
}

func TestNativeRecordsPropertiesHoist(t *testing.T) {
	rows := NativeRecords([]*neo4j.Record{
		record(
			[]string{"id", "status", "properties"},
			[]any{"p1", "row", map[string]any{"status": "Active", "totalLike": int64(3)}},
		),
	})

	row := rows[0]
	_, present := row["properties"]
	assert.False(t, present)
	assert.Equal(t, "p1", row["id"])
	// Hoisted sub-keys win over the row's own keys.
	assert.Equal(t, "Active", row["status"])
	assert.Equal(t, int64(3), row["totalLike"])
}

func TestNativeRecordsRecursesArrays(t *testing.T) {
	date := dbtype.Date(time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC))
	rows := NativeRecords([]*neo4j.Record{
		record([]string{"dates"}, []any{[]any{date, date}}),
	})

	assert.Equal(t, []any{"2026-01-02", "2026-01-02"}, rows[0]["dates"])
}
