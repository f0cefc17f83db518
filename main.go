package main

import (
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/danielhkuo/election-ledger/auth"
	"github.com/danielhkuo/election-ledger/cliparse"
	"github.com/danielhkuo/election-ledger/db"
	"github.com/danielhkuo/election-ledger/ledger"
	"github.com/danielhkuo/election-ledger/middleware"
	"github.com/danielhkuo/election-ledger/router"
)

func main() {
	var err error

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	policy := auth.NewOwnerPolicy(cfg.ElectionID, cfg.AdminKeySalt)
	opts := []ledger.Option{ledger.WithLogger(slog.Default().With("election_id", cfg.ElectionID))}

	// Optional audit journal
	var journal *db.Journal
	if cfg.JournalEnabled() {
		dbConn, err := db.Open(cfg.DatabaseType, cfg.DatabaseURL)
		if err != nil {
			slog.Error("database connection failed", "error", err)
			os.Exit(1)
		}
		defer dbConn.Close()

		if err := db.CreateSchema(dbConn); err != nil {
			slog.Error("schema creation failed", "error", err)
			os.Exit(1)
		}
		slog.Info("Journal ready", "type", cfg.DatabaseType)

		journal = db.NewJournal(dbConn, cfg.ElectionID)
		opts = append(opts, ledger.WithRecorder(journal))
	}

	l := ledger.New(policy, opts...)

	// The owner needs this key for X-Admin-Key
	slog.Info("Election opened",
		"election_id", cfg.ElectionID,
		"candidate_a", cfg.CandidateA,
		"candidate_b", cfg.CandidateB,
		"admin_key", policy.OwnerKey(),
	)

	mux := router.NewRouter(l, journal, cfg)

	// Create server
	server := http.Server{
		Handler: middleware.CORS(mux),
		Addr:    ":" + strconv.Itoa(cfg.Port),
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		// Wait for Ctrl-C signal
		<-ctrlc
		server.Close()
	}()

	// Start server
	slog.Info("Listening", "port", cfg.Port)
	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed", "error", err)
	}
}
