package interfaces

import (
	"context"

	"pickem-league-go/models"
)

// GameServiceInterface defines the game catalog operations used by handlers
type GameServiceInterface interface {
	GetGamesByWeek(ctx context.Context, week int) ([]*models.Game, error)
	RecordResult(ctx context.Context, gameID, awayScore, homeScore int) (*models.Game, error)
}

// PickServiceInterface defines the pick submission operations used by handlers
type PickServiceInterface interface {
	SubmitSelection(ctx context.Context, player string, week, gameID int, team string) error
	SubmitTiebreakerScore(ctx context.Context, player string, week, score int) error
	GetPlayerPicks(ctx context.Context, player string, week int) (*models.Pick, error)
	GetWeekPicks(ctx context.Context, week int) ([]*models.Pick, error)
}

// StandingsServiceInterface defines the scoring and leaderboard
// operations used by handlers
type StandingsServiceInterface interface {
	GetWeeklyScores(ctx context.Context, week int) ([]*models.WeeklyScore, error)
	ResolveWeekByNumber(ctx context.Context, week int) (*models.WeekResult, error)
	GetLeaderboard(ctx context.Context) ([]*models.SeasonStanding, error)
	RecalculateSeason(ctx context.Context) ([]*models.SeasonStanding, error)
}
