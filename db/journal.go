// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/danielhkuo/election-ledger/ledger"
)

const recordTimeout = 5 * time.Second

// Journal appends accepted ledger events to ledger_event.
// It implements ledger.Recorder.
type Journal struct {
	db         *sql.DB
	electionID string
}

func NewJournal(db *sql.DB, electionID string) *Journal {
	return &Journal{db: db, electionID: electionID}
}

// Record inserts the event. Failures are logged and dropped; the ledger
// has already applied the mutation.
func (j *Journal) Record(ev ledger.Event) {
	ctx, cancel := context.WithTimeout(context.Background(), recordTimeout)
	defer cancel()

	if err := j.Append(ctx, ev); err != nil {
		slog.Error("failed to journal ledger event",
			"election_id", j.electionID,
			"seq", ev.Seq,
			"kind", ev.Kind,
			"error", err,
		)
	}
}

// Append inserts one event and returns any database error.
func (j *Journal) Append(ctx context.Context, ev ledger.Event) error {
	_, err := j.db.ExecContext(ctx, `
		INSERT INTO ledger_event (id, election_id, seq, kind, region, winner, seats, recorded_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`, uuid.NewString(), j.electionID, int64(ev.Seq), ev.Kind, ev.Region, ev.Winner.String(), int64(ev.Seats), ev.At.UTC())
	if err != nil {
		return fmt.Errorf("insert event %d: %w", ev.Seq, err)
	}
	return nil
}

// Events lists this election's events ordered by seq.
func (j *Journal) Events(ctx context.Context) ([]ledger.Event, error) {
	rows, err := j.db.QueryContext(ctx, `
		SELECT seq, kind, region, winner, seats, recorded_at
		FROM ledger_event
		WHERE election_id = $1
		ORDER BY seq
	`, j.electionID)
	if err != nil {
		return nil, fmt.Errorf("query events: %w", err)
	}
	defer rows.Close()

	events := []ledger.Event{}
	for rows.Next() {
		var (
			ev     ledger.Event
			seq    int64
			seats  int64
			winner string
		)
		if err := rows.Scan(&seq, &ev.Kind, &ev.Region, &winner, &seats, &ev.At); err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		if err := ev.Winner.UnmarshalText([]byte(winner)); err != nil {
			return nil, fmt.Errorf("event %d: %w", seq, err)
		}
		ev.Seq = uint64(seq)
		ev.Seats = uint64(seats)
		events = append(events, ev)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate events: %w", err)
	}
	return events, nil
}

var _ ledger.Recorder = (*Journal)(nil)
