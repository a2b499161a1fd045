// Social Media App - Graph-Backed Social Content API
// Copyright 2026 Moneeb Shammout (moneebshammout)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/moneebshammout/social-media-app

package database

import "context"

// GenresByName pages genres whose name starts with the given prefix.
func (db *DB) GenresByName(ctx context.Context, name string, page, limit int) ([]map[string]any, error) {
	limit = db.pageLimit(limit)
	query := `
	MATCH (genre:Genre)
	WHERE genre.name STARTS WITH $name
	RETURN genre.name AS name
	SKIP $skip LIMIT $limit
	`

	records, err := db.run(ctx, "getGenreByName", query, map[string]any{
		"name":  name,
		"skip":  skip(page, limit),
		"limit": limit,
	})
	if err != nil {
		return nil, err
	}
	return NativeRecords(records), nil
}
