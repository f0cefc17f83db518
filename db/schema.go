// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

// Supported DATABASE_TYPE values
const (
	TypeSQLite   = "sqlite"
	TypePostgres = "postgres"
)

// Open connects to the journal database and verifies the connection.
func Open(dbType, url string) (*sql.DB, error) {
	switch dbType {
	case TypeSQLite, TypePostgres:
	default:
		return nil, fmt.Errorf("unsupported database type %q", dbType)
	}

	conn, err := sql.Open(dbType, url)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if dbType == TypeSQLite {
		// sqlite allows one writer; a single connection also keeps
		// :memory: databases shared across the pool
		conn.SetMaxOpenConns(1)
	}
	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	return conn, nil
}

// CreateSchema creates all tables needed for the journal.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

const schema = `
-- Accepted ledger mutations, in application order
CREATE TABLE IF NOT EXISTS ledger_event (
    id TEXT PRIMARY KEY,
    election_id TEXT NOT NULL,
    seq BIGINT NOT NULL,
    kind TEXT NOT NULL CHECK (kind IN ('result_submitted', 'election_ended')),
    region TEXT NOT NULL DEFAULT '',
    winner TEXT NOT NULL CHECK (winner IN ('none', 'a', 'b')),
    seats BIGINT NOT NULL DEFAULT 0,
    recorded_at TIMESTAMP NOT NULL,
    UNIQUE (election_id, seq)
);

CREATE INDEX IF NOT EXISTS idx_ledger_event_election ON ledger_event(election_id);
`
