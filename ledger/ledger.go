// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package ledger

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/danielhkuo/election-ledger/models"
)

// Authorizer decides whether an invoker may mutate the ledger.
type Authorizer interface {
	IsAuthorized(invoker string) bool
}

// AuthorizerFunc adapts a plain function to Authorizer
type AuthorizerFunc func(invoker string) bool

func (f AuthorizerFunc) IsAuthorized(invoker string) bool { return f(invoker) }

// Event kinds
const (
	EventResultSubmitted = "result_submitted"
	EventElectionEnded   = "election_ended"
)

// Event describes one accepted mutation. Seq starts at 1 and matches the
// order in which mutations were applied.
type Event struct {
	Seq    uint64
	Kind   string
	Region string
	Winner models.Leader
	Seats  uint64
	At     time.Time
}

// Recorder receives an Event after every accepted mutation.
type Recorder interface {
	Record(Event)
}

type Option func(*Ledger)

// WithLogger sets the logger. A nil logger means slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(l *Ledger) {
		if logger != nil {
			l.logger = logger
		}
	}
}

// WithRecorder attaches a Recorder, such as the SQL journal.
func WithRecorder(r Recorder) Option {
	return func(l *Ledger) { l.recorder = r }
}

// WithClock overrides time.Now for event timestamps
func WithClock(now func() time.Time) Option {
	return func(l *Ledger) { l.now = now }
}

// Ledger is the single authoritative record of an election.
// It is safe for concurrent use.
type Ledger struct {
	auth     Authorizer
	logger   *slog.Logger
	recorder Recorder
	now      func() time.Time

	mu      sync.RWMutex
	ended   bool
	seatsA  uint64
	seatsB  uint64
	regions map[string]struct{}
	seq     uint64
}

// New creates an open ledger with zero totals. auth is fixed for the
// lifetime of the ledger. A nil auth rejects every invoker.
func New(auth Authorizer, opts ...Option) *Ledger {
	if auth == nil {
		auth = AuthorizerFunc(func(string) bool { return false })
	}
	l := &Ledger{
		auth:    auth,
		logger:  slog.Default(),
		now:     time.Now,
		regions: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// SubmitResult records a region's result. Checks run in a fixed order and
// the first failure is returned: owner, still open, new region, seats >= 1,
// no tie.
func (l *Ledger) SubmitResult(invoker string, r models.RegionResult) error {
	_, err := l.Submit(invoker, r)
	return err
}

// Submit is SubmitResult returning the standings as of the accepted result,
// read under the same lock that applied it.
func (l *Ledger) Submit(invoker string, r models.RegionResult) (models.Standings, error) {
	ev, st, err := l.submit(invoker, r)
	if err != nil {
		l.logger.Warn("result rejected", "region", r.Name, "code", Code(err))
		return models.Standings{}, err
	}

	l.logger.Info("result submitted",
		"region", r.Name,
		"winner", ev.Winner,
		"seats", r.Seats,
		"seq", ev.Seq,
	)
	l.record(ev)
	return st, nil
}

func (l *Ledger) submit(invoker string, r models.RegionResult) (Event, models.Standings, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if !l.auth.IsAuthorized(invoker) {
		return Event{}, models.Standings{}, ErrUnauthorized
	}
	if l.ended {
		return Event{}, models.Standings{}, ErrElectionClosed
	}
	if _, ok := l.regions[r.Name]; ok {
		return Event{}, models.Standings{}, fmt.Errorf("%q: %w", r.Name, ErrDuplicateRegion)
	}
	if r.Seats < 1 {
		return Event{}, models.Standings{}, fmt.Errorf("%q: %w", r.Name, ErrInvalidSeatCount)
	}

	winner := r.Winner()
	switch winner {
	case models.LeaderA:
		l.seatsA += r.Seats
	case models.LeaderB:
		l.seatsB += r.Seats
	default:
		return Event{}, models.Standings{}, fmt.Errorf("%q: %w", r.Name, ErrTiedVotes)
	}
	l.regions[r.Name] = struct{}{}

	l.seq++
	return Event{
		Seq:    l.seq,
		Kind:   EventResultSubmitted,
		Region: r.Name,
		Winner: winner,
		Seats:  r.Seats,
		At:     l.now(),
	}, l.standings(), nil
}

// CurrentLeader compares the live seat totals.
func (l *Ledger) CurrentLeader() models.Leader {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return leaderOf(l.seatsA, l.seatsB)
}

// ElectionEnded reports whether EndElection has succeeded.
func (l *Ledger) ElectionEnded() bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.ended
}

// EndElection closes the ledger permanently.
func (l *Ledger) EndElection(invoker string) error {
	_, err := l.End(invoker)
	return err
}

// End is EndElection returning the final standings.
func (l *Ledger) End(invoker string) (models.Standings, error) {
	ev, st, err := l.end(invoker)
	if err != nil {
		l.logger.Warn("end election rejected", "code", Code(err))
		return models.Standings{}, err
	}

	l.logger.Info("election ended", "leader", ev.Winner, "seq", ev.Seq)
	l.record(ev)
	return st, nil
}

func (l *Ledger) end(invoker string) (Event, models.Standings, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if !l.auth.IsAuthorized(invoker) {
		return Event{}, models.Standings{}, ErrUnauthorized
	}
	if l.ended {
		return Event{}, models.Standings{}, ErrElectionClosed
	}
	l.ended = true

	l.seq++
	return Event{
		Seq:    l.seq,
		Kind:   EventElectionEnded,
		Winner: leaderOf(l.seatsA, l.seatsB),
		At:     l.now(),
	}, l.standings(), nil
}

// Authorized reports whether invoker passes the ownership check that every
// mutation runs first. The authorizer is fixed, so no lock is taken.
func (l *Ledger) Authorized(invoker string) bool {
	return l.auth.IsAuthorized(invoker)
}

// Standings returns totals, leader and state from a single read.
func (l *Ledger) Standings() models.Standings {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.standings()
}

// standings requires l.mu to be held.
func (l *Ledger) standings() models.Standings {
	return models.Standings{
		SeatsA:  l.seatsA,
		SeatsB:  l.seatsB,
		Regions: len(l.regions),
		Leader:  leaderOf(l.seatsA, l.seatsB),
		Ended:   l.ended,
	}
}

// HasRegion reports whether a result for name has been accepted.
func (l *Ledger) HasRegion(name string) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	_, ok := l.regions[name]
	return ok
}

// record runs outside the lock; recorder failures never reach ledger state.
func (l *Ledger) record(ev Event) {
	if l.recorder != nil {
		l.recorder.Record(ev)
	}
}

func leaderOf(a, b uint64) models.Leader {
	switch {
	case a > b:
		return models.LeaderA
	case b > a:
		return models.LeaderB
	default:
		return models.LeaderNone
	}
}
