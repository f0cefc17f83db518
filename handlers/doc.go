// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the election ledger API.

# Handler Types

  - ElectionHandler: submissions, end of election, and public reads
  - JournalHandler: journaled events

Handlers take their collaborators and the config:

	electionHandler := handlers.NewElectionHandler(l, cfg)
	journalHandler := handlers.NewJournalHandler(journal, cfg)

# Owner Operations

	POST /results       → SubmitResult (body: name, votes_a, votes_b, seats)
	POST /election/end  → EndElection

The X-Admin-Key header is passed to the ledger as the invoker. A non-owner
is turned away with 401 before the body is read. Rejections map to status
codes and carry the ledger code in the body:

	unauthorized        401
	election_closed     409
	duplicate_region    409
	invalid_seat_count  400
	tied_votes          422

# Reads

	GET /leader          → GetLeader
	GET /election        → GetElection
	GET /standings       → GetStandings
	GET /regions/{name}  → GetRegion
	GET /journal         → GetJournal (404 when no journal is configured)
*/
package handlers
