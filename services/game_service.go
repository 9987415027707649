package services

import (
	"context"
	"fmt"

	"pickem-league-go/interfaces"
	"pickem-league-go/logging"
	"pickem-league-go/metrics"
	"pickem-league-go/models"
)

// StandingsRefresher is the slice of the standings service the game
// catalog needs: a final score can change a week's winner, so every
// result write refreshes the cached season standings.
type StandingsRefresher interface {
	RecalculateSeason(ctx context.Context) ([]*models.SeasonStanding, error)
}

// GameService owns the game catalog on behalf of the external result
// feed: loading week schedules and recording final scores. Players
// never write through this service.
type GameService struct {
	gameRepo  interfaces.GameRepository
	standings StandingsRefresher
	logger    *logging.Logger
	season    int
}

// NewGameService creates a new game service
func NewGameService(gameRepo interfaces.GameRepository, standings StandingsRefresher, season int) *GameService {
	return &GameService{
		gameRepo:  gameRepo,
		standings: standings,
		logger:    logging.WithPrefix("game_service"),
		season:    season,
	}
}

// GetGamesByWeek returns the week's schedule sorted by kickoff time
func (s *GameService) GetGamesByWeek(ctx context.Context, week int) ([]*models.Game, error) {
	games, err := s.gameRepo.FindByWeek(ctx, s.season, week)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to load games for week %d: %w", ErrStorage, week, err)
	}
	return games, nil
}

// LoadSchedule upserts a batch of games, typically when a week's
// schedule is published
func (s *GameService) LoadSchedule(ctx context.Context, games []*models.Game) error {
	for _, game := range games {
		game.Season = s.season
	}

	if err := s.gameRepo.BulkUpsertGames(ctx, games); err != nil {
		return fmt.Errorf("%w: failed to load schedule: %w", ErrStorage, err)
	}

	s.logger.Infof("Loaded %d games into season %d schedule", len(games), s.season)
	return nil
}

// RecordResult ingests a final score for a game, marks it completed and
// refreshes the season standings. The winner is always derived from the
// scores; a tied final leaves the game with no winner.
func (s *GameService) RecordResult(ctx context.Context, gameID, awayScore, homeScore int) (*models.Game, error) {
	if awayScore < 0 || homeScore < 0 {
		return nil, fmt.Errorf("invalid final score %d-%d for game %d", awayScore, homeScore, gameID)
	}

	game, err := s.gameRepo.FindByID(ctx, s.season, gameID)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to load game %d: %w", ErrStorage, gameID, err)
	}
	if game == nil {
		return nil, fmt.Errorf("%w: game %d", ErrGameNotFound, gameID)
	}

	if err := s.gameRepo.UpdateResult(ctx, s.season, gameID, awayScore, homeScore, true); err != nil {
		return nil, fmt.Errorf("%w: failed to record result for game %d: %w", ErrStorage, gameID, err)
	}

	game.AwayScore = &awayScore
	game.HomeScore = &homeScore
	game.Completed = true

	metrics.ResultsRecorded.Inc()
	if winner := game.Winner(); winner != "" {
		s.logger.Infof("Recorded final for %s: %d-%d, winner %s", game.Matchup(), awayScore, homeScore, winner)
	} else {
		s.logger.Warnf("Recorded tied final for %s: %d-%d, no winner", game.Matchup(), awayScore, homeScore)
	}

	// This final may have decided the week; the cached leaderboard is
	// stale until it is rebuilt
	if _, err := s.standings.RecalculateSeason(ctx); err != nil {
		return nil, fmt.Errorf("failed to refresh standings after game %d: %w", gameID, err)
	}

	return game, nil
}
