// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package ledger holds the election state: per-region results, seat totals,
and the open → ended lifecycle.

# Construction

The caller builds one ledger and passes it to whatever hosts it:

	owner := auth.NewOwnerPolicy(electionID, salt)
	l := ledger.New(owner, ledger.WithRecorder(journal))

# Operations

	SubmitResult(invoker, result) error
	CurrentLeader() models.Leader
	ElectionEnded() bool
	EndElection(invoker) error

Submit and End are the same mutations returning the standings read under the
write lock that applied them. Authorized exposes the ownership check alone,
for hosts that must reject a non-owner before reading its request.

SubmitResult checks, in this order:

 1. invoker is authorized      → ErrUnauthorized
 2. election is still open     → ErrElectionClosed
 3. region not yet submitted   → ErrDuplicateRegion
 4. seats >= 1                 → ErrInvalidSeatCount
 5. votes are not tied         → ErrTiedVotes

EndElection checks 1 and 2. A rejected call leaves the ledger untouched.

# Concurrency

Mutations are serialized under a write lock covering both the checks and the
update. Reads share a read lock and never observe a half-applied result.
*/
package ledger
