// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db opens the database and creates the schema.

# Connecting

Open picks the driver from the configured database type and pings once:

	conn, err := db.Open(ctx, cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer conn.Close()

Supported types are "postgres" (github.com/lib/pq) and "sqlite"
(modernc.org/sqlite, pure Go, used by the tests).

# Schema Creation

	if err := db.CreateSchema(ctx, conn, cfg.DatabaseType); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for the table and index.

# Tables

A single table:

	equb_members(id PK, full_name, has_won boolean, draw_date timestamp null)

has_won is TRUE exactly when draw_date is set. Nothing in the schema enforces
this; the store's mark-winner and reset-cycle statements always write both
columns together.
*/
package db
