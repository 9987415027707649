package database

import (
	"context"
	"sort"
	"sync"

	"github.com/cockroachdb/errors"

	"pickem-league-go/models"
)

// MemoryGameRepository is an in-memory GameRepository used by tests and
// by the no-database fallback mode.
type MemoryGameRepository struct {
	mu    sync.RWMutex
	games map[gameKey]*models.Game
}

type gameKey struct {
	season int
	gameID int
}

// NewMemoryGameRepository creates an empty in-memory game repository
func NewMemoryGameRepository() *MemoryGameRepository {
	return &MemoryGameRepository{
		games: make(map[gameKey]*models.Game),
	}
}

// FindByWeek returns the week's games sorted by kickoff time
func (r *MemoryGameRepository) FindByWeek(ctx context.Context, season, week int) ([]*models.Game, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var games []*models.Game
	for _, game := range r.games {
		if game.Season == season && game.Week == week {
			clone := *game
			games = append(games, &clone)
		}
	}

	sort.Slice(games, func(i, j int) bool {
		if !games[i].Date.Equal(games[j].Date) {
			return games[i].Date.Before(games[j].Date)
		}
		return games[i].Home < games[j].Home
	})

	return games, nil
}

// FindByID returns one game, or nil when absent
func (r *MemoryGameRepository) FindByID(ctx context.Context, season, gameID int) (*models.Game, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	game, ok := r.games[gameKey{season: season, gameID: gameID}]
	if !ok {
		return nil, nil
	}
	clone := *game
	return &clone, nil
}

// UpsertGame inserts or replaces a single game
func (r *MemoryGameRepository) UpsertGame(ctx context.Context, game *models.Game) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	clone := *game
	r.games[gameKey{season: game.Season, gameID: game.ID}] = &clone
	return nil
}

// BulkUpsertGames inserts or replaces a batch of games
func (r *MemoryGameRepository) BulkUpsertGames(ctx context.Context, games []*models.Game) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, game := range games {
		clone := *game
		r.games[gameKey{season: game.Season, gameID: game.ID}] = &clone
	}
	return nil
}

// UpdateResult records a final score for a game
func (r *MemoryGameRepository) UpdateResult(ctx context.Context, season, gameID, awayScore, homeScore int, completed bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	game, ok := r.games[gameKey{season: season, gameID: gameID}]
	if !ok {
		return errors.Newf("game %d not found in season %d", gameID, season)
	}

	away, home := awayScore, homeScore
	game.AwayScore = &away
	game.HomeScore = &home
	game.Completed = completed
	return nil
}
