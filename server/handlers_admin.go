package server

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"github.com/duskforge/ladyluck-server/luck"
)

type addTicketsRequest struct {
	PlayerID string `json:"playerId"`
	Amount   int64  `json:"amount"`
}

type addTicketsResponse struct {
	OK         bool   `json:"ok"`
	Reason     string `json:"reason,omitempty"`
	NewBalance int64  `json:"newBalance"`
}

// handleAddTickets grants lottery tickets (admin/reward-system path).
func (s *Server) handleAddTickets(w http.ResponseWriter, r *http.Request) {
	var req addTicketsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid body", "bad_request")
		return
	}
	req.PlayerID = strings.TrimSpace(req.PlayerID)
	if req.PlayerID == "" {
		writeError(w, http.StatusBadRequest, "playerId required", "bad_request")
		return
	}
	balance, err := s.session.AddTickets(r.Context(), req.PlayerID, req.Amount)
	if err != nil {
		if rej := luck.AsRejection(err); rej != nil {
			writeJSON(w, http.StatusOK, addTicketsResponse{OK: false, Reason: rej.Reason})
			return
		}
		log.Printf("luck/tickets/add: %v", err)
		writeError(w, http.StatusInternalServerError, err.Error(), "internal_error")
		return
	}
	writeJSON(w, http.StatusOK, addTicketsResponse{OK: true, NewBalance: balance})
}

type clearPendingRequest struct {
	PlayerID string `json:"playerId"`
}

type clearPendingResponse struct {
	OK      bool `json:"ok"`
	Cleared bool `json:"cleared"`
}

// handleClearPending force-empties a player's pending slot. Remediation for
// corrupt pending payloads that block claims.
func (s *Server) handleClearPending(w http.ResponseWriter, r *http.Request) {
	var req clearPendingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid body", "bad_request")
		return
	}
	req.PlayerID = strings.TrimSpace(req.PlayerID)
	if req.PlayerID == "" {
		writeError(w, http.StatusBadRequest, "playerId required", "bad_request")
		return
	}
	cleared, err := s.session.ClearPending(r.Context(), req.PlayerID)
	if err != nil {
		log.Printf("luck/admin/pending/clear: %v", err)
		writeError(w, http.StatusInternalServerError, err.Error(), "internal_error")
		return
	}
	writeJSON(w, http.StatusOK, clearPendingResponse{OK: true, Cleared: cleared})
}
