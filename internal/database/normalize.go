// Social Media App - Graph-Backed Social Content API
// Copyright 2026 Moneeb Shammout (moneebshammout)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/moneebshammout/social-media-app

package database

import (
	"time"

	json "github.com/goccy/go-json"
	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"github.com/neo4j/neo4j-go-driver/v5/neo4j/dbtype"
)

// jsonFields names the fields whose string values are JSON produced by this
// service (posts and reviews store media as a JSON string). Only these
// fields are parsed back into structured values; other strings pass through
// untouched, so a bracketed or numeric-looking user string is never
// mis-parsed.
var jsonFields = map[string]bool{
	"media": true,
}

// NativeRecords converts driver records into JSON-safe rows: temporal types
// become canonical strings, nodes and relationships flatten to their
// property maps, arrays and nested maps normalize recursively, and declared
// JSON-bearing string fields parse into structured values.
//
// After row normalization a field literally named "properties" holding an
// object is hoisted: its keys merge into the row after the row's own keys,
// so "properties" sub-keys win on conflict, and the field itself is removed.
// Feed queries rely on this to return entity-polymorphic rows.
func NativeRecords(records []*neo4j.Record) []map[string]any {
	rows := make([]map[string]any, 0, len(records))
	for _, record := range records {
		row := make(map[string]any, len(record.Keys))
		for i, key := range record.Keys {
			row[key] = nativeValue(key, record.Values[i])
		}

		if props, ok := row["properties"].(map[string]any); ok {
			delete(row, "properties")
			for key, value := range props {
				row[key] = value
			}
		}

		rows = append(rows, row)
	}
	return rows
}

// nativeValue converts one value. The field name travels down so declared
// JSON fields are recognized at any nesting depth.
func nativeValue(field string, value any) any {
	switch v := value.(type) {
	case nil:
		return nil
	case []any:
		out := make([]any, len(v))
		for i, inner := range v {
			out[i] = nativeValue(field, inner)
		}
		return out
	case map[string]any:
		return nativeMap(v)
	case dbtype.Node:
		return nativeMap(v.Props)
	case dbtype.Relationship:
		return nativeMap(v.Props)
	case dbtype.Date:
		return v.String()
	case dbtype.LocalTime:
		return v.String()
	case dbtype.Time:
		return v.String()
	case dbtype.LocalDateTime:
		return v.String()
	case dbtype.Duration:
		return v.String()
	case time.Time:
		return v.Format(time.RFC3339)
	case string:
		if jsonFields[field] {
			var parsed any
			if err := json.Unmarshal([]byte(v), &parsed); err == nil {
				return parsed
			}
		}
		return v
	default:
		return v
	}
}

// nativeMap normalizes a property map key by key.
func nativeMap(props map[string]any) map[string]any {
	out := make(map[string]any, len(props))
	for key, value := range props {
		out[key] = nativeValue(key, value)
	}
	return out
}
