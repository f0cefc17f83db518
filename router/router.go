// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/danielhkuo/election-ledger/cliparse"
	"github.com/danielhkuo/election-ledger/db"
	"github.com/danielhkuo/election-ledger/handlers"
	"github.com/danielhkuo/election-ledger/middleware"
)

// NewRouter wires the ledger endpoints. journal may be nil.
func NewRouter(l handlers.Ledger, journal *db.Journal, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	electionHandler := handlers.NewElectionHandler(l, cfg)
	var lister handlers.EventLister
	if journal != nil {
		lister = journal
	}
	journalHandler := handlers.NewJournalHandler(lister, cfg)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Owner operations (require X-Admin-Key)
	mux.HandleFunc("POST /results", middleware.WithLogging(electionHandler.SubmitResult))
	mux.HandleFunc("POST /election/end", middleware.WithLogging(electionHandler.EndElection))

	// Public reads
	mux.HandleFunc("GET /leader", middleware.WithLogging(electionHandler.GetLeader))
	mux.HandleFunc("GET /election", middleware.WithLogging(electionHandler.GetElection))
	mux.HandleFunc("GET /standings", middleware.WithLogging(electionHandler.GetStandings))
	mux.HandleFunc("GET /regions/{name}", middleware.WithLogging(electionHandler.GetRegion))
	mux.HandleFunc("GET /journal", middleware.WithLogging(journalHandler.GetJournal))

	// Root endpoint
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("election-ledger API v1"))
	})

	return mux
}
