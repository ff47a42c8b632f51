package server

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"github.com/duskforge/ladyluck-server/catalog"
	"github.com/duskforge/ladyluck-server/luck"
)

type statusResponse struct {
	OK               bool   `json:"ok"`
	Reason           string `json:"reason,omitempty"`
	FreeRollEligible bool   `json:"freeRollEligible"`
	MsUntilEligible  int64  `json:"msUntilEligible"`
	TicketBalance    int64  `json:"ticketBalance"`
	PointBalance     int64  `json:"pointBalance"`
	HasPendingRoll   bool   `json:"hasPendingRoll"`
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	playerID := strings.TrimSpace(r.URL.Query().Get("playerId"))
	if playerID == "" {
		writeError(w, http.StatusBadRequest, "playerId required", "bad_request")
		return
	}
	report, err := s.session.Status(r.Context(), playerID)
	if err != nil {
		log.Printf("luck/status: %v", err)
		writeError(w, http.StatusBadGateway, err.Error(), "upstream_error")
		return
	}
	writeJSON(w, http.StatusOK, statusResponse{
		OK:               true,
		FreeRollEligible: report.FreeRollEligible,
		MsUntilEligible:  report.MsUntilEligible,
		TicketBalance:    report.TicketBalance,
		PointBalance:     report.PointBalance,
		HasPendingRoll:   report.HasPendingRoll,
	})
}

type rollRequest struct {
	PlayerID string `json:"playerId"`
	Method   string `json:"method"`
}

type rollResponse struct {
	OK               bool   `json:"ok"`
	Reason           string `json:"reason,omitempty"`
	RollID           string `json:"rollId,omitempty"`
	FreeRollEligible bool   `json:"freeRollEligible"`
	MsUntilEligible  int64  `json:"msUntilEligible"`
	TicketBalance    int64  `json:"ticketBalance"`
	PointBalance     int64  `json:"pointBalance"`
}

func (s *Server) handleRoll(w http.ResponseWriter, r *http.Request) {
	var req rollRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid body", "bad_request")
		return
	}
	req.PlayerID = strings.TrimSpace(req.PlayerID)
	if req.PlayerID == "" {
		writeError(w, http.StatusBadRequest, "playerId required", "bad_request")
		return
	}
	receipt, err := s.session.Roll(r.Context(), req.PlayerID, req.Method)
	if err != nil {
		if rej := luck.AsRejection(err); rej != nil {
			// Domain rejection, not a transport failure: 200 with ok:false so
			// game UIs can react without treating it as an outage.
			writeJSON(w, http.StatusOK, rollResponse{OK: false, Reason: rej.Reason})
			return
		}
		log.Printf("luck/roll: %v", err)
		writeError(w, http.StatusBadGateway, err.Error(), "upstream_error")
		return
	}
	writeJSON(w, http.StatusOK, rollResponse{
		OK:               true,
		RollID:           receipt.RollID,
		FreeRollEligible: receipt.FreeRollEligible,
		MsUntilEligible:  receipt.MsUntilEligible,
		TicketBalance:    receipt.TicketBalance,
		PointBalance:     receipt.PointBalance,
	})
}

type claimRequest struct {
	PlayerID    string `json:"playerId"`
	ChosenIndex *int   `json:"chosenIndex"`
}

type claimResponse struct {
	OK               bool                `json:"ok"`
	Reason           string              `json:"reason,omitempty"`
	RollID           string              `json:"rollId,omitempty"`
	Rewards          []catalog.Snapshot  `json:"rewards,omitempty"`
	ChosenIndex      int                 `json:"chosenIndex"`
	ChosenReward     *catalog.Snapshot   `json:"chosenReward,omitempty"`
	SecondaryDrop    *luck.SecondaryDrop `json:"secondaryDrop"`
	FreeRollEligible bool                `json:"freeRollEligible"`
	MsUntilEligible  int64               `json:"msUntilEligible"`
	TicketBalance    int64               `json:"ticketBalance"`
	PointBalance     int64               `json:"pointBalance"`
}

func (s *Server) handleClaim(w http.ResponseWriter, r *http.Request) {
	var req claimRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid body", "bad_request")
		return
	}
	req.PlayerID = strings.TrimSpace(req.PlayerID)
	if req.PlayerID == "" {
		writeError(w, http.StatusBadRequest, "playerId required", "bad_request")
		return
	}
	chosenIndex := -1
	if req.ChosenIndex != nil {
		chosenIndex = *req.ChosenIndex
	}
	result, err := s.session.Claim(r.Context(), req.PlayerID, chosenIndex)
	if err != nil {
		if rej := luck.AsRejection(err); rej != nil {
			writeJSON(w, http.StatusOK, claimResponse{OK: false, Reason: rej.Reason, ChosenIndex: chosenIndex})
			return
		}
		log.Printf("luck/claim: %v", err)
		writeError(w, http.StatusBadGateway, err.Error(), "upstream_error")
		return
	}
	chosen := result.ChosenReward
	writeJSON(w, http.StatusOK, claimResponse{
		OK:               true,
		RollID:           result.RollID,
		Rewards:          result.Rewards,
		ChosenIndex:      result.ChosenIndex,
		ChosenReward:     &chosen,
		SecondaryDrop:    result.SecondaryDrop,
		FreeRollEligible: result.FreeRollEligible,
		MsUntilEligible:  result.MsUntilEligible,
		TicketBalance:    result.TicketBalance,
		PointBalance:     result.PointBalance,
	})
}

type historyResponse struct {
	OK     bool        `json:"ok"`
	Claims interface{} `json:"claims"`
}

func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	playerID := strings.TrimSpace(r.URL.Query().Get("playerId"))
	if playerID == "" {
		writeError(w, http.StatusBadRequest, "playerId required", "bad_request")
		return
	}
	claims, err := s.history.ByPlayer(playerID, 50)
	if err != nil {
		log.Printf("luck/history: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to read history", "internal_error")
		return
	}
	writeJSON(w, http.StatusOK, historyResponse{OK: true, Claims: claims})
}
