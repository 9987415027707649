package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pickem-league-go/database"
	"pickem-league-go/interfaces"
	"pickem-league-go/models"
	"pickem-league-go/services"
)

// newTestRouter wires the full API against in-memory storage. Open
// games kick off far in the future so submissions are never locked by
// the real clock; locked-game cases get explicit past kickoffs.
func newTestRouter(t *testing.T) *mux.Router {
	t.Helper()
	ctx := context.Background()

	gameRepo := database.NewMemoryGameRepository()
	pickRepo := database.NewMemoryPickRepository()
	standingRepo := database.NewMemoryStandingRepository()

	future := time.Date(2099, 9, 7, 17, 0, 0, 0, time.UTC)
	past := time.Date(2020, 9, 7, 17, 0, 0, 0, time.UTC)

	awayFinal, homeFinal := 27, 20
	require.NoError(t, gameRepo.BulkUpsertGames(ctx, []*models.Game{
		{ID: 1, Season: 2025, Week: 1, Date: future, Away: "DET", Home: "KC"},
		{ID: 2, Season: 2025, Week: 1, Date: future.Add(time.Hour), Away: "BUF", Home: "NYJ", Tiebreaker: true},
		{ID: 3, Season: 2025, Week: 2, Date: past, Away: "DAL", Home: "PHI"},
		{
			ID: 4, Season: 2025, Week: 3, Date: past, Away: "GB", Home: "CHI",
			Completed: true, AwayScore: &awayFinal, HomeScore: &homeFinal,
		},
	}))

	require.NoError(t, pickRepo.UpsertSelection(ctx, "alice", 2025, 2, 3, "PHI"))
	require.NoError(t, pickRepo.UpsertSelection(ctx, "bob", 2025, 2, 3, "DAL"))
	require.NoError(t, pickRepo.UpsertSelection(ctx, "alice", 2025, 3, 4, "GB"))
	require.NoError(t, pickRepo.UpsertSelection(ctx, "bob", 2025, 3, 4, "CHI"))

	standingsService := services.NewStandingsService(gameRepo, pickRepo, standingRepo, 2025, 18)
	gameService := services.NewGameService(gameRepo, standingsService, 2025)
	pickService := services.NewPickService(pickRepo, gameRepo, 2025, 18)

	gameHandler := NewGameHandler(gameService)
	pickHandler := NewPickHandler(pickService)
	standingsHandler := NewStandingsHandler(standingsService)

	r := mux.NewRouter()
	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/games", gameHandler.GetGames).Methods("GET")
	api.HandleFunc("/games/{id:[0-9]+}/result", gameHandler.RecordResult).Methods("POST")
	api.HandleFunc("/picks", pickHandler.SubmitSelection).Methods("POST")
	api.HandleFunc("/picks/tiebreaker", pickHandler.SubmitTiebreaker).Methods("PUT")
	api.HandleFunc("/picks", pickHandler.GetPicks).Methods("GET")
	api.HandleFunc("/weeks/{week:[0-9]+}/scores", standingsHandler.GetWeeklyScores).Methods("GET")
	api.HandleFunc("/weeks/{week:[0-9]+}/result", standingsHandler.GetWeekResult).Methods("GET")
	api.HandleFunc("/standings", standingsHandler.GetLeaderboard).Methods("GET")
	api.HandleFunc("/standings/recalculate", standingsHandler.Recalculate).Methods("POST")
	return r
}

func doJSON(t *testing.T, r *mux.Router, method, target string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestGetGames(t *testing.T) {
	r := newTestRouter(t)

	t.Run("missing week", func(t *testing.T) {
		rec := doJSON(t, r, http.MethodGet, "/api/games", nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("week schedule", func(t *testing.T) {
		rec := doJSON(t, r, http.MethodGet, "/api/games?week=1", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var games []*models.Game
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&games))
		require.Len(t, games, 2)
		assert.Equal(t, "DET", games[0].Away)
	})

	t.Run("empty week", func(t *testing.T) {
		rec := doJSON(t, r, http.MethodGet, "/api/games?week=17", nil)
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestRecordResultEndpoint(t *testing.T) {
	r := newTestRouter(t)

	t.Run("records final", func(t *testing.T) {
		rec := doJSON(t, r, http.MethodPost, "/api/games/3/result", resultRequest{AwayScore: 14, HomeScore: 28})
		require.Equal(t, http.StatusOK, rec.Code)

		var game models.Game
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&game))
		assert.True(t, game.Completed)
		assert.Equal(t, "PHI", game.Winner())
	})

	t.Run("unknown game", func(t *testing.T) {
		rec := doJSON(t, r, http.MethodPost, "/api/games/99/result", resultRequest{AwayScore: 14, HomeScore: 28})
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("invalid body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/games/3/result", bytes.NewBufferString("{"))
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestSubmitSelectionEndpoint(t *testing.T) {
	r := newTestRouter(t)

	t.Run("accepted", func(t *testing.T) {
		rec := doJSON(t, r, http.MethodPost, "/api/picks", selectionRequest{
			Player: "alice", Week: 1, GameID: 1, Team: "DET",
		})
		assert.Equal(t, http.StatusAccepted, rec.Code)
	})

	t.Run("unknown game", func(t *testing.T) {
		rec := doJSON(t, r, http.MethodPost, "/api/picks", selectionRequest{
			Player: "alice", Week: 1, GameID: 99, Team: "DET",
		})
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("wrong team", func(t *testing.T) {
		rec := doJSON(t, r, http.MethodPost, "/api/picks", selectionRequest{
			Player: "alice", Week: 1, GameID: 1, Team: "BUF",
		})
		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("locked game", func(t *testing.T) {
		rec := doJSON(t, r, http.MethodPost, "/api/picks", selectionRequest{
			Player: "alice", Week: 2, GameID: 3, Team: "DAL",
		})
		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("invalid body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/picks", bytes.NewBufferString("not json"))
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestSubmitTiebreakerEndpoint(t *testing.T) {
	r := newTestRouter(t)

	t.Run("accepted", func(t *testing.T) {
		rec := doJSON(t, r, http.MethodPut, "/api/picks/tiebreaker", tiebreakerRequest{
			Player: "alice", Week: 1, Score: 45,
		})
		assert.Equal(t, http.StatusAccepted, rec.Code)
	})

	t.Run("invalid guess", func(t *testing.T) {
		rec := doJSON(t, r, http.MethodPut, "/api/picks/tiebreaker", tiebreakerRequest{
			Player: "alice", Week: 1, Score: -1,
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestGetPicksEndpoint(t *testing.T) {
	r := newTestRouter(t)

	t.Run("missing week", func(t *testing.T) {
		rec := doJSON(t, r, http.MethodGet, "/api/picks", nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("player sheet", func(t *testing.T) {
		rec := doJSON(t, r, http.MethodGet, "/api/picks?week=3&player=alice", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var pick models.Pick
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&pick))
		assert.Equal(t, "alice", pick.Player)
		assert.Equal(t, 1, pick.SelectionCount())
	})

	t.Run("player without picks", func(t *testing.T) {
		rec := doJSON(t, r, http.MethodGet, "/api/picks?week=3&player=nobody", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("week list", func(t *testing.T) {
		rec := doJSON(t, r, http.MethodGet, "/api/picks?week=3", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var picks []*models.Pick
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&picks))
		assert.Len(t, picks, 2)
	})

	t.Run("week without picks is an empty list", func(t *testing.T) {
		rec := doJSON(t, r, http.MethodGet, "/api/picks?week=17", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, "[]", rec.Body.String())
	})
}

func TestWeekScoresAndResultEndpoints(t *testing.T) {
	r := newTestRouter(t)

	t.Run("scores", func(t *testing.T) {
		rec := doJSON(t, r, http.MethodGet, "/api/weeks/3/scores", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var scores []*models.WeeklyScore
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&scores))
		require.Len(t, scores, 2)
		assert.Equal(t, "alice", scores[0].Player)
		assert.Equal(t, 1, scores[0].Correct)
		assert.Equal(t, "bob", scores[1].Player)
		assert.Equal(t, 0, scores[1].Correct)
	})

	t.Run("result", func(t *testing.T) {
		rec := doJSON(t, r, http.MethodGet, "/api/weeks/3/result", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var result models.WeekResult
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&result))
		assert.Equal(t, 3, result.Week)
		assert.Equal(t, []string{"alice"}, result.Winners)
	})
}

func TestStandingsReflectRecordedResult(t *testing.T) {
	r := newTestRouter(t)

	// Warm the leaderboard cache: only week 3 is decided
	rec := doJSON(t, r, http.MethodGet, "/api/standings", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var standings []*models.SeasonStanding
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&standings))
	require.Len(t, standings, 2)
	assert.Equal(t, "alice", standings[0].Player)
	assert.Equal(t, 1, standings[0].WeeklyWins)

	// The week 2 final comes in, deciding that week for alice
	rec = doJSON(t, r, http.MethodPost, "/api/games/3/result", resultRequest{AwayScore: 14, HomeScore: 28})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, r, http.MethodGet, "/api/standings", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	standings = nil
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&standings))
	require.Len(t, standings, 2)
	assert.Equal(t, "alice", standings[0].Player)
	assert.Equal(t, 2, standings[0].WeeklyWins, "a recorded final must show up without a manual recalculation")
	assert.Equal(t, 2, standings[0].Wins)
	assert.Equal(t, 2, standings[0].TotalGames)
}

type failingPickRepo struct {
	interfaces.PickRepository
}

func (failingPickRepo) UpsertSelection(context.Context, string, int, int, int, string) error {
	return errors.New("write timeout")
}

func (failingPickRepo) UpsertTiebreakerScore(context.Context, string, int, int, int) error {
	return errors.New("write timeout")
}

type failingGameRepo struct {
	interfaces.GameRepository
}

func (failingGameRepo) UpdateResult(context.Context, int, int, int, int, bool) error {
	return errors.New("write timeout")
}

func TestStorageFailuresReturn500(t *testing.T) {
	ctx := context.Background()

	gameRepo := database.NewMemoryGameRepository()
	require.NoError(t, gameRepo.BulkUpsertGames(ctx, []*models.Game{
		{ID: 1, Season: 2025, Week: 1, Date: time.Date(2099, 9, 7, 17, 0, 0, 0, time.UTC), Away: "DET", Home: "KC"},
	}))
	pickRepo := database.NewMemoryPickRepository()
	standingRepo := database.NewMemoryStandingRepository()

	standingsService := services.NewStandingsService(gameRepo, pickRepo, standingRepo, 2025, 18)
	gameService := services.NewGameService(failingGameRepo{gameRepo}, standingsService, 2025)
	pickService := services.NewPickService(failingPickRepo{pickRepo}, gameRepo, 2025, 18)

	gameHandler := NewGameHandler(gameService)
	pickHandler := NewPickHandler(pickService)

	r := mux.NewRouter()
	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/games/{id:[0-9]+}/result", gameHandler.RecordResult).Methods("POST")
	api.HandleFunc("/picks", pickHandler.SubmitSelection).Methods("POST")
	api.HandleFunc("/picks/tiebreaker", pickHandler.SubmitTiebreaker).Methods("PUT")

	t.Run("selection write failure", func(t *testing.T) {
		rec := doJSON(t, r, http.MethodPost, "/api/picks", selectionRequest{
			Player: "alice", Week: 1, GameID: 1, Team: "DET",
		})
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})

	t.Run("tiebreaker write failure", func(t *testing.T) {
		rec := doJSON(t, r, http.MethodPut, "/api/picks/tiebreaker", tiebreakerRequest{
			Player: "alice", Week: 1, Score: 45,
		})
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})

	t.Run("result write failure", func(t *testing.T) {
		rec := doJSON(t, r, http.MethodPost, "/api/games/1/result", resultRequest{AwayScore: 27, HomeScore: 20})
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}

func TestStandingsEndpoints(t *testing.T) {
	r := newTestRouter(t)

	t.Run("recalculate", func(t *testing.T) {
		rec := doJSON(t, r, http.MethodPost, "/api/standings/recalculate", nil)
		require.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("leaderboard", func(t *testing.T) {
		rec := doJSON(t, r, http.MethodGet, "/api/standings", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var standings []*models.SeasonStanding
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&standings))
		require.Len(t, standings, 2)
		assert.Equal(t, "alice", standings[0].Player)
		assert.Equal(t, 1, standings[0].WeeklyWins)
	})
}
