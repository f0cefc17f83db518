// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db keeps the optional audit journal of accepted ledger mutations.

The journal is write-only from the ledger's point of view: the ledger lives
in memory and is never rebuilt from these rows.

# Connecting

Open accepts DATABASE_TYPE "sqlite" (modernc.org/sqlite, the default) or
"postgres" (lib/pq):

	conn, err := db.Open(cfg.DatabaseType, cfg.DatabaseURL)

# Schema Creation

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.

# Tables

  - ledger_event: one row per accepted submission or end of election,
    unique on (election_id, seq)

# Journal

Journal implements ledger.Recorder:

	journal := db.NewJournal(conn, cfg.ElectionID)
	l := ledger.New(policy, ledger.WithRecorder(journal))

Queries use $n placeholders, which both drivers bind positionally.
*/
package db
