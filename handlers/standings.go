package handlers

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"pickem-league-go/interfaces"
	"pickem-league-go/logging"
)

// StandingsHandler serves weekly scores, weekly winners and the season
// leaderboard
type StandingsHandler struct {
	standingsService interfaces.StandingsServiceInterface
	logger           *logging.Logger
}

// NewStandingsHandler creates a new standings handler
func NewStandingsHandler(standingsService interfaces.StandingsServiceInterface) *StandingsHandler {
	return &StandingsHandler{
		standingsService: standingsService,
		logger:           logging.WithPrefix("standings_handler"),
	}
}

// GetWeeklyScores handles GET /api/weeks/{week}/scores
func (h *StandingsHandler) GetWeeklyScores(w http.ResponseWriter, r *http.Request) {
	week, err := strconv.Atoi(mux.Vars(r)["week"])
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid week")
		return
	}

	scores, err := h.standingsService.GetWeeklyScores(r.Context(), week)
	if err != nil {
		h.logger.Errorf("Error computing scores for week %d: %v", week, err)
		respondError(w, http.StatusInternalServerError, "unable to compute weekly scores")
		return
	}

	respondJSON(w, http.StatusOK, scores)
}

// GetWeekResult handles GET /api/weeks/{week}/result
func (h *StandingsHandler) GetWeekResult(w http.ResponseWriter, r *http.Request) {
	week, err := strconv.Atoi(mux.Vars(r)["week"])
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid week")
		return
	}

	result, err := h.standingsService.ResolveWeekByNumber(r.Context(), week)
	if err != nil {
		h.logger.Errorf("Error resolving week %d: %v", week, err)
		respondError(w, http.StatusInternalServerError, "unable to resolve week")
		return
	}

	respondJSON(w, http.StatusOK, result)
}

// GetLeaderboard handles GET /api/standings
func (h *StandingsHandler) GetLeaderboard(w http.ResponseWriter, r *http.Request) {
	standings, err := h.standingsService.GetLeaderboard(r.Context())
	if err != nil {
		h.logger.Errorf("Error fetching leaderboard: %v", err)
		respondError(w, http.StatusInternalServerError, "unable to fetch standings")
		return
	}

	respondJSON(w, http.StatusOK, standings)
}

// Recalculate handles POST /api/standings/recalculate
func (h *StandingsHandler) Recalculate(w http.ResponseWriter, r *http.Request) {
	standings, err := h.standingsService.RecalculateSeason(r.Context())
	if err != nil {
		h.logger.Errorf("Error recalculating standings: %v", err)
		respondError(w, http.StatusInternalServerError, "unable to recalculate standings")
		return
	}

	respondJSON(w, http.StatusOK, standings)
}
