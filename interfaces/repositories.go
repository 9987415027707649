package interfaces

import (
	"context"

	"pickem-league-go/models"
)

// GameRepository defines game catalog storage operations. The catalog
// is owned by the external result feed; players never mutate it.
type GameRepository interface {
	FindByWeek(ctx context.Context, season, week int) ([]*models.Game, error)
	FindByID(ctx context.Context, season, gameID int) (*models.Game, error)
	UpsertGame(ctx context.Context, game *models.Game) error
	BulkUpsertGames(ctx context.Context, games []*models.Game) error
	UpdateResult(ctx context.Context, season, gameID, awayScore, homeScore int, completed bool) error
}

// PickRepository defines pick sheet storage operations. UpsertSelection
// must merge per game: writing game 3 for a player never discards the
// player's existing selection for game 2.
type PickRepository interface {
	FindByPlayerAndWeek(ctx context.Context, player string, season, week int) (*models.Pick, error)
	FindAllByWeek(ctx context.Context, season, week int) ([]*models.Pick, error)
	UpsertSelection(ctx context.Context, player string, season, week, gameID int, team string) error
	UpsertTiebreakerScore(ctx context.Context, player string, season, week, score int) error
	DeleteByPlayerAndWeek(ctx context.Context, player string, season, week int) error
}

// StandingRepository defines season standings storage. Standings are a
// recomputable cache of the games + picks tables, never a second source
// of truth.
type StandingRepository interface {
	FindBySeason(ctx context.Context, season int) ([]*models.SeasonStanding, error)
	ReplaceSeason(ctx context.Context, season int, standings []*models.SeasonStanding) error
}
