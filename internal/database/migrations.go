// Social Media App - Graph-Backed Social Content API
// Copyright 2026 Moneeb Shammout (moneebshammout)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/moneebshammout/social-media-app

package database

import (
	"context"
	"fmt"
)

// UserFullTextIndex searches users by name, userName and id.
const UserFullTextIndex = "full_text_user_name_username_id"

// ReviewFullTextIndex searches reviews by product and firm name.
const ReviewFullTextIndex = "review_product_firm_name"

// migrations are idempotent schema statements run at every startup: unique
// constraints per label, the full-text indexes behind the search endpoints
// and a text index for the post description substring scan.
var migrations = []string{
	"CREATE CONSTRAINT user_unique_id IF NOT EXISTS FOR (node:User) REQUIRE node.id IS UNIQUE",
	"CREATE CONSTRAINT user_unique_userName IF NOT EXISTS FOR (node:User) REQUIRE node.userName IS UNIQUE",
	"CREATE CONSTRAINT user_unique_email IF NOT EXISTS FOR (node:User) REQUIRE node.email IS UNIQUE",
	"CREATE FULLTEXT INDEX " + UserFullTextIndex + " IF NOT EXISTS FOR (n:User) ON EACH [n.name, n.userName, n.id]",
	"CREATE CONSTRAINT genre_unique_name IF NOT EXISTS FOR (node:Genre) REQUIRE node.name IS UNIQUE",
	"CREATE CONSTRAINT poll_unique_id IF NOT EXISTS FOR (node:Poll) REQUIRE node.id IS UNIQUE",
	"CREATE CONSTRAINT active_poll_unique_id IF NOT EXISTS FOR (node:Active) REQUIRE node.id IS UNIQUE",
	"CREATE CONSTRAINT ended_poll_unique_id IF NOT EXISTS FOR (node:Ended) REQUIRE node.id IS UNIQUE",
	"CREATE CONSTRAINT comment_unique_id IF NOT EXISTS FOR (node:Comment) REQUIRE node.id IS UNIQUE",
	"CREATE CONSTRAINT profile_unique_id IF NOT EXISTS FOR (node:Profile) REQUIRE node.id IS UNIQUE",
	"CREATE CONSTRAINT public_unique_id IF NOT EXISTS FOR (node:Public) REQUIRE node.id IS UNIQUE",
	"CREATE CONSTRAINT private_unique_id IF NOT EXISTS FOR (node:Private) REQUIRE node.id IS UNIQUE",
	"CREATE CONSTRAINT paid_unique_id IF NOT EXISTS FOR (node:Paid) REQUIRE node.id IS UNIQUE",
	"CREATE CONSTRAINT post_unique_id IF NOT EXISTS FOR (node:Post) REQUIRE node.id IS UNIQUE",
	"CREATE TEXT INDEX post_description_index IF NOT EXISTS FOR (node:Post) ON (node.description)",
	"CREATE CONSTRAINT review_unique_id IF NOT EXISTS FOR (node:Review) REQUIRE node.id IS UNIQUE",
	"CREATE FULLTEXT INDEX " + ReviewFullTextIndex + " IF NOT EXISTS FOR (n:Review) ON EACH [n.productName, n.productFirm]",
}

// Migrate applies the schema migrations. Schema statements run in their own
// implicit transactions; each is idempotent so reruns are safe.
func (db *DB) Migrate(ctx context.Context) error {
	for _, statement := range migrations {
		if _, err := db.run(ctx, "migrate", statement, nil); err != nil {
			return fmt.Errorf("migration %q failed: %w", statement, err)
		}
	}
	return nil
}
