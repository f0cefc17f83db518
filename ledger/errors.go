// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package ledger

import "errors"

var (
	ErrUnauthorized     = errors.New("not invoked by the owner")
	ErrElectionClosed   = errors.New("the election has ended already")
	ErrDuplicateRegion  = errors.New("region result was already submitted")
	ErrInvalidSeatCount = errors.New("regions must have at least 1 seat")
	ErrTiedVotes        = errors.New("there cannot be a tie")
)

// Error codes returned by Code
const (
	CodeUnauthorized     = "unauthorized"
	CodeElectionClosed   = "election_closed"
	CodeDuplicateRegion  = "duplicate_region"
	CodeInvalidSeatCount = "invalid_seat_count"
	CodeTiedVotes        = "tied_votes"
)

// Code returns a stable identifier for a ledger rejection, or "" if err is
// not one.
func Code(err error) string {
	switch {
	case errors.Is(err, ErrUnauthorized):
		return CodeUnauthorized
	case errors.Is(err, ErrElectionClosed):
		return CodeElectionClosed
	case errors.Is(err, ErrDuplicateRegion):
		return CodeDuplicateRegion
	case errors.Is(err, ErrInvalidSeatCount):
		return CodeInvalidSeatCount
	case errors.Is(err, ErrTiedVotes):
		return CodeTiedVotes
	}
	return ""
}
