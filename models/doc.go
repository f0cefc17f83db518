// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Domain Types

  - RegionResult: name, votes_a, votes_b, seats
  - Leader: closed enum of LeaderNone, LeaderA, LeaderB
  - Standings: seat totals, region count, leader, ended flag
  - Candidates: display names for the two sides

Leader encodes as text in JSON:

	LeaderNone → "none"
	LeaderA    → "a"
	LeaderB    → "b"

The underlying values are 0, 1 and 2, so LeaderNone is the zero value.

# Request Types

  - SubmitResultRequest: alias of RegionResult

# Response Types

  - SubmitResultResponse: region, winner, seats, leader
  - LeaderResponse: leader, candidate
  - ElectionResponse: election_id, ended, candidates
  - EndElectionResponse: ended_at, leader
  - StandingsResponse: standings plus candidates
  - RegionResponse: name, submitted
  - JournalResponse: election_id, events (seq, kind, region, winner, seats, recorded_at)
  - ErrorResponse: error, message, code
*/
package models
