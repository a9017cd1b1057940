// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/danielhkuo/equb-registry/cliparse"
)

// Open connects to the database named by cfg and verifies the connection.
// The returned pool is owned by the caller and must be closed at shutdown.
func Open(ctx context.Context, cfg cliparse.Config) (*sql.DB, error) {
	driver, err := driverName(cfg.DatabaseType)
	if err != nil {
		return nil, err
	}

	conn, err := sql.Open(driver, cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := conn.PingContext(ctx); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return conn, nil
}

// CreateSchema creates the equb_members table.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(ctx context.Context, db *sql.DB, databaseType string) error {
	var schema string
	switch databaseType {
	case cliparse.DatabasePostgres:
		schema = postgresSchema
	case cliparse.DatabaseSQLite:
		schema = sqliteSchema
	default:
		return fmt.Errorf("unsupported database type %q", databaseType)
	}

	_, err := db.ExecContext(ctx, schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

func driverName(databaseType string) (string, error) {
	switch databaseType {
	case cliparse.DatabasePostgres:
		return "postgres", nil
	case cliparse.DatabaseSQLite:
		return "sqlite", nil
	}
	return "", fmt.Errorf("unsupported database type %q", databaseType)
}

const postgresSchema = `
CREATE TABLE IF NOT EXISTS equb_members (
    id SERIAL PRIMARY KEY,
    full_name TEXT NOT NULL,
    has_won BOOLEAN NOT NULL DEFAULT FALSE,
    draw_date TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_equb_members_has_won ON equb_members(has_won);
`

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS equb_members (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    full_name TEXT NOT NULL,
    has_won BOOLEAN NOT NULL DEFAULT FALSE,
    draw_date TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_equb_members_has_won ON equb_members(has_won);
`
