// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/danielhkuo/election-ledger/auth"
	"github.com/danielhkuo/election-ledger/cliparse"
	"github.com/danielhkuo/election-ledger/ledger"
	"github.com/danielhkuo/election-ledger/middleware"
	"github.com/danielhkuo/election-ledger/models"
)

// Ledger is the subset of *ledger.Ledger the handlers use
type Ledger interface {
	Authorized(invoker string) bool
	Submit(invoker string, r models.RegionResult) (models.Standings, error)
	End(invoker string) (models.Standings, error)
	CurrentLeader() models.Leader
	ElectionEnded() bool
	Standings() models.Standings
	HasRegion(name string) bool
}

type ElectionHandler struct {
	ledger Ledger
	cfg    cliparse.Config
}

func NewElectionHandler(l Ledger, cfg cliparse.Config) *ElectionHandler {
	return &ElectionHandler{ledger: l, cfg: cfg}
}

func (h *ElectionHandler) candidates() models.Candidates {
	return models.Candidates{A: h.cfg.CandidateA, B: h.cfg.CandidateB}
}

// SubmitResult handles POST /results. The owner check runs before the body
// is read, so a non-owner always gets 401. The name is passed through as sent.
func (h *ElectionHandler) SubmitResult(w http.ResponseWriter, r *http.Request) {
	invoker := r.Header.Get("X-Admin-Key")
	if !h.ledger.Authorized(invoker) {
		h.rejected(w, r, ledger.ErrUnauthorized)
		return
	}

	var req models.SubmitResultRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	st, err := h.ledger.Submit(invoker, req)
	if err != nil {
		h.rejected(w, r, err)
		return
	}

	middleware.JSONResponse(w, http.StatusCreated, models.SubmitResultResponse{
		Region: req.Name,
		Winner: req.Winner(),
		Seats:  req.Seats,
		Leader: st.Leader,
	})
}

// EndElection handles POST /election/end
func (h *ElectionHandler) EndElection(w http.ResponseWriter, r *http.Request) {
	invoker := r.Header.Get("X-Admin-Key")
	st, err := h.ledger.End(invoker)
	if err != nil {
		h.rejected(w, r, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.EndElectionResponse{
		EndedAt: time.Now().UTC(),
		Leader:  st.Leader,
	})
}

// GetLeader handles GET /leader
func (h *ElectionHandler) GetLeader(w http.ResponseWriter, r *http.Request) {
	leader := h.ledger.CurrentLeader()
	middleware.JSONResponse(w, http.StatusOK, models.LeaderResponse{
		Leader:    leader,
		Candidate: h.candidates().Name(leader),
	})
}

// GetElection handles GET /election
func (h *ElectionHandler) GetElection(w http.ResponseWriter, r *http.Request) {
	middleware.JSONResponse(w, http.StatusOK, models.ElectionResponse{
		ElectionID: h.cfg.ElectionID,
		Ended:      h.ledger.ElectionEnded(),
		Candidates: h.candidates(),
	})
}

// GetStandings handles GET /standings
func (h *ElectionHandler) GetStandings(w http.ResponseWriter, r *http.Request) {
	middleware.JSONResponse(w, http.StatusOK, models.StandingsResponse{
		Standings:  h.ledger.Standings(),
		Candidates: h.candidates(),
	})
}

// GetRegion handles GET /regions/{name}
func (h *ElectionHandler) GetRegion(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	if name == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "name is required")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.RegionResponse{
		Name:      name,
		Submitted: h.ledger.HasRegion(name),
	})
}

// rejected writes the response for a ledger rejection
func (h *ElectionHandler) rejected(w http.ResponseWriter, r *http.Request, err error) {
	code := ledger.Code(err)
	if code == "" {
		slog.Error("unexpected ledger error", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Ledger error")
		return
	}

	if errors.Is(err, ledger.ErrUnauthorized) {
		slog.Warn("unauthorized ledger call",
			"path", r.URL.Path,
			"ip_hash", auth.HashIP(middleware.GetClientIP(r), h.cfg.AdminKeySalt),
		)
	}

	middleware.CodedErrorResponse(w, statusFor(err), code, err.Error())
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, ledger.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, ledger.ErrElectionClosed), errors.Is(err, ledger.ErrDuplicateRegion):
		return http.StatusConflict
	case errors.Is(err, ledger.ErrInvalidSeatCount):
		return http.StatusBadRequest
	case errors.Is(err, ledger.ErrTiedVotes):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
