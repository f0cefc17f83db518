// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import (
	"fmt"
	"time"
)

// Leader identifies which candidate is ahead on seats.
// The zero value is LeaderNone.
type Leader uint8

const (
	LeaderNone Leader = iota
	LeaderA
	LeaderB
)

func (l Leader) String() string {
	switch l {
	case LeaderNone:
		return "none"
	case LeaderA:
		return "a"
	case LeaderB:
		return "b"
	default:
		return fmt.Sprintf("Leader(%d)", uint8(l))
	}
}

// MarshalText encodes the leader as "none", "a" or "b"
func (l Leader) MarshalText() ([]byte, error) {
	switch l {
	case LeaderNone, LeaderA, LeaderB:
		return []byte(l.String()), nil
	}
	return nil, fmt.Errorf("unknown leader %d", uint8(l))
}

// UnmarshalText is the inverse of MarshalText
func (l *Leader) UnmarshalText(text []byte) error {
	switch string(text) {
	case "none":
		*l = LeaderNone
	case "a":
		*l = LeaderA
	case "b":
		*l = LeaderB
	default:
		return fmt.Errorf("unknown leader %q", text)
	}
	return nil
}

// Domain types

// RegionResult is one region's tally as submitted by the owner.
type RegionResult struct {
	Name   string `json:"name"`
	VotesA uint64 `json:"votes_a"`
	VotesB uint64 `json:"votes_b"`
	Seats  uint64 `json:"seats"`
}

// Winner returns the candidate with more votes, or LeaderNone on a tie
func (r RegionResult) Winner() Leader {
	switch {
	case r.VotesA > r.VotesB:
		return LeaderA
	case r.VotesB > r.VotesA:
		return LeaderB
	default:
		return LeaderNone
	}
}

// Standings is a consistent read of the ledger totals
type Standings struct {
	SeatsA  uint64 `json:"seats_a"`
	SeatsB  uint64 `json:"seats_b"`
	Regions int    `json:"regions"`
	Leader  Leader `json:"leader"`
	Ended   bool   `json:"ended"`
}

// Candidates holds the display names of the two sides.
type Candidates struct {
	A string `json:"a"`
	B string `json:"b"`
}

// Name returns the display name for a leader value, empty for LeaderNone
func (c Candidates) Name(l Leader) string {
	switch l {
	case LeaderA:
		return c.A
	case LeaderB:
		return c.B
	}
	return ""
}

// Request types

type SubmitResultRequest = RegionResult

// Response types

type SubmitResultResponse struct {
	Region string `json:"region"`
	Winner Leader `json:"winner"`
	Seats  uint64 `json:"seats"`
	Leader Leader `json:"leader"`
}

type LeaderResponse struct {
	Leader    Leader `json:"leader"`
	Candidate string `json:"candidate,omitempty"`
}

type ElectionResponse struct {
	ElectionID string     `json:"election_id"`
	Ended      bool       `json:"ended"`
	Candidates Candidates `json:"candidates"`
}

type EndElectionResponse struct {
	EndedAt time.Time `json:"ended_at"`
	Leader  Leader    `json:"leader"`
}

type StandingsResponse struct {
	Standings
	Candidates Candidates `json:"candidates"`
}

type RegionResponse struct {
	Name      string `json:"name"`
	Submitted bool   `json:"submitted"`
}

type JournalEntry struct {
	Seq        uint64    `json:"seq"`
	Kind       string    `json:"kind"`
	Region     string    `json:"region,omitempty"`
	Winner     Leader    `json:"winner"`
	Seats      uint64    `json:"seats,omitempty"`
	RecordedAt time.Time `json:"recorded_at"`
}

type JournalResponse struct {
	ElectionID string         `json:"election_id"`
	Events     []JournalEntry `json:"events"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
	Code    string `json:"code,omitempty"`
}
