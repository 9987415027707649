package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"pickem-league-go/interfaces"
	"pickem-league-go/logging"
	"pickem-league-go/services"
)

// GameHandler serves the game catalog and the result-ingestion endpoint
type GameHandler struct {
	gameService interfaces.GameServiceInterface
	logger      *logging.Logger
}

// NewGameHandler creates a new game handler
func NewGameHandler(gameService interfaces.GameServiceInterface) *GameHandler {
	return &GameHandler{
		gameService: gameService,
		logger:      logging.WithPrefix("game_handler"),
	}
}

// GetGames handles GET /api/games?week=N
func (h *GameHandler) GetGames(w http.ResponseWriter, r *http.Request) {
	week, ok := queryInt(r, "week")
	if !ok {
		respondError(w, http.StatusBadRequest, "week query parameter is required")
		return
	}

	games, err := h.gameService.GetGamesByWeek(r.Context(), week)
	if err != nil {
		h.logger.Errorf("Error fetching games for week %d: %v", week, err)
		respondError(w, http.StatusInternalServerError, "unable to fetch games")
		return
	}

	respondJSON(w, http.StatusOK, games)
}

// resultRequest is the body for POST /api/games/{id}/result, written by
// the external score feed
type resultRequest struct {
	AwayScore int `json:"awayScore"`
	HomeScore int `json:"homeScore"`
}

// RecordResult handles POST /api/games/{id}/result
func (h *GameHandler) RecordResult(w http.ResponseWriter, r *http.Request) {
	gameID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid game id")
		return
	}

	var req resultRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	game, err := h.gameService.RecordResult(r.Context(), gameID, req.AwayScore, req.HomeScore)
	if err != nil {
		h.logger.Errorf("Error recording result for game %d: %v", gameID, err)
		switch {
		case errors.Is(err, services.ErrGameNotFound):
			respondError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, services.ErrStorage):
			respondError(w, http.StatusInternalServerError, "unable to record result")
		default:
			respondError(w, http.StatusBadRequest, err.Error())
		}
		return
	}

	respondJSON(w, http.StatusOK, game)
}
