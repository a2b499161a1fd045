// Social Media App - Graph-Backed Social Content API
// Copyright 2026 Moneeb Shammout (moneebshammout)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/moneebshammout/social-media-app

package database

import "time"

// createdDateFormat is the minute-resolution string stored on content nodes.
// Feed ordering compares these lexicographically, which matches chronological
// order for this layout.
const createdDateFormat = "2006-01-02 15:04"

// now is swapped in tests for deterministic createdDate values.
var now = time.Now

func currentDate() string {
	return now().Format(createdDateFormat)
}
