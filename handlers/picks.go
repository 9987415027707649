package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"pickem-league-go/interfaces"
	"pickem-league-go/logging"
	"pickem-league-go/models"
	"pickem-league-go/services"
)

// PickHandler serves pick submission and retrieval
type PickHandler struct {
	pickService interfaces.PickServiceInterface
	logger      *logging.Logger
}

// NewPickHandler creates a new pick handler
func NewPickHandler(pickService interfaces.PickServiceInterface) *PickHandler {
	return &PickHandler{
		pickService: pickService,
		logger:      logging.WithPrefix("pick_handler"),
	}
}

// selectionRequest is the body for POST /api/picks
type selectionRequest struct {
	Player string `json:"player"`
	Week   int    `json:"week"`
	GameID int    `json:"game_id"`
	Team   string `json:"team"`
}

// SubmitSelection handles POST /api/picks — one game selection per
// call, merged into the player's week sheet
func (h *PickHandler) SubmitSelection(w http.ResponseWriter, r *http.Request) {
	var req selectionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	req.Player = strings.TrimSpace(req.Player)
	req.Team = strings.TrimSpace(req.Team)

	err := h.pickService.SubmitSelection(r.Context(), req.Player, req.Week, req.GameID, req.Team)
	if err != nil {
		h.logger.Warnf("Rejected selection from %s: %v", req.Player, err)
		switch {
		case errors.Is(err, services.ErrGameNotFound):
			respondError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, services.ErrGameLocked), errors.Is(err, services.ErrInvalidTeam):
			respondError(w, http.StatusConflict, err.Error())
		case errors.Is(err, services.ErrStorage):
			respondError(w, http.StatusInternalServerError, "unable to save pick")
		default:
			respondError(w, http.StatusBadRequest, err.Error())
		}
		return
	}

	respondJSON(w, http.StatusAccepted, map[string]string{"status": "saved"})
}

// tiebreakerRequest is the body for PUT /api/picks/tiebreaker
type tiebreakerRequest struct {
	Player string `json:"player"`
	Week   int    `json:"week"`
	Score  int    `json:"score"`
}

// SubmitTiebreaker handles PUT /api/picks/tiebreaker
func (h *PickHandler) SubmitTiebreaker(w http.ResponseWriter, r *http.Request) {
	var req tiebreakerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	req.Player = strings.TrimSpace(req.Player)

	err := h.pickService.SubmitTiebreakerScore(r.Context(), req.Player, req.Week, req.Score)
	if err != nil {
		h.logger.Warnf("Rejected tiebreaker from %s: %v", req.Player, err)
		switch {
		case errors.Is(err, services.ErrGameLocked):
			respondError(w, http.StatusConflict, err.Error())
		case errors.Is(err, services.ErrStorage):
			respondError(w, http.StatusInternalServerError, "unable to save tiebreaker")
		default:
			respondError(w, http.StatusBadRequest, err.Error())
		}
		return
	}

	respondJSON(w, http.StatusAccepted, map[string]string{"status": "saved"})
}

// GetPicks handles GET /api/picks?week=N[&player=name]
func (h *PickHandler) GetPicks(w http.ResponseWriter, r *http.Request) {
	week, ok := queryInt(r, "week")
	if !ok {
		respondError(w, http.StatusBadRequest, "week query parameter is required")
		return
	}

	if player := strings.TrimSpace(r.URL.Query().Get("player")); player != "" {
		pick, err := h.pickService.GetPlayerPicks(r.Context(), player, week)
		if err != nil {
			h.logger.Errorf("Error fetching picks for %s week %d: %v", player, week, err)
			respondError(w, http.StatusInternalServerError, "unable to fetch picks")
			return
		}
		if pick == nil {
			respondError(w, http.StatusNotFound, "no picks for player")
			return
		}
		respondJSON(w, http.StatusOK, pick)
		return
	}

	picks, err := h.pickService.GetWeekPicks(r.Context(), week)
	if err != nil {
		h.logger.Errorf("Error fetching picks for week %d: %v", week, err)
		respondError(w, http.StatusInternalServerError, "unable to fetch picks")
		return
	}
	if picks == nil {
		picks = []*models.Pick{}
	}

	respondJSON(w, http.StatusOK, picks)
}
