// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/election-ledger/cliparse"
	"github.com/danielhkuo/election-ledger/ledger"
	"github.com/danielhkuo/election-ledger/middleware"
	"github.com/danielhkuo/election-ledger/models"
)

// EventLister reads back journaled ledger events
type EventLister interface {
	Events(ctx context.Context) ([]ledger.Event, error)
}

type JournalHandler struct {
	events EventLister
	cfg    cliparse.Config
}

// NewJournalHandler accepts a nil lister when no journal is configured
func NewJournalHandler(events EventLister, cfg cliparse.Config) *JournalHandler {
	return &JournalHandler{events: events, cfg: cfg}
}

// GetJournal handles GET /journal
func (h *JournalHandler) GetJournal(w http.ResponseWriter, r *http.Request) {
	if h.events == nil {
		middleware.ErrorResponse(w, http.StatusNotFound, "Journal is not enabled")
		return
	}

	events, err := h.events.Events(r.Context())
	if err != nil {
		slog.Error("failed to read journal", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	entries := make([]models.JournalEntry, 0, len(events))
	for _, ev := range events {
		entries = append(entries, models.JournalEntry{
			Seq:        ev.Seq,
			Kind:       ev.Kind,
			Region:     ev.Region,
			Winner:     ev.Winner,
			Seats:      ev.Seats,
			RecordedAt: ev.At,
		})
	}

	middleware.JSONResponse(w, http.StatusOK, models.JournalResponse{
		ElectionID: h.cfg.ElectionID,
		Events:     entries,
	})
}
