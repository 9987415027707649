package services

import (
	"context"
	"fmt"

	"pickem-league-go/interfaces"
	"pickem-league-go/logging"
	"pickem-league-go/metrics"
	"pickem-league-go/models"
)

// StandingsService computes weekly scores, resolves weekly winners and
// maintains the season leaderboard. Persisted standings are only a
// cache: every number here is recomputable from the games and picks
// tables.
type StandingsService struct {
	gameRepo       interfaces.GameRepository
	pickRepo       interfaces.PickRepository
	standingRepo   interfaces.StandingRepository
	logger         *logging.Logger
	season         int
	weeksPerSeason int
}

// NewStandingsService creates a new standings service
func NewStandingsService(gameRepo interfaces.GameRepository, pickRepo interfaces.PickRepository, standingRepo interfaces.StandingRepository, season, weeksPerSeason int) *StandingsService {
	return &StandingsService{
		gameRepo:       gameRepo,
		pickRepo:       pickRepo,
		standingRepo:   standingRepo,
		logger:         logging.WithPrefix("standings_service"),
		season:         season,
		weeksPerSeason: weeksPerSeason,
	}
}

// GetWeeklyScores grades every player's picks for a week
func (s *StandingsService) GetWeeklyScores(ctx context.Context, week int) ([]*models.WeeklyScore, error) {
	games, picks, err := s.loadWeek(ctx, week)
	if err != nil {
		return nil, err
	}

	metrics.ScoringRuns.Inc()
	return ComputeStandingsForWeek(games, picks), nil
}

// ResolveWeekByNumber determines the week's winner(s), applying the
// tiebreaker when the leaderboard is tied and the tiebreaker game has a
// final score
func (s *StandingsService) ResolveWeekByNumber(ctx context.Context, week int) (*models.WeekResult, error) {
	games, picks, err := s.loadWeek(ctx, week)
	if err != nil {
		return nil, err
	}

	scores := ComputeStandingsForWeek(games, picks)
	result := ResolveWeek(scores, models.TiebreakerGame(games))
	result.Season = s.season
	result.Week = week

	metrics.WeeksResolved.Inc()
	return result, nil
}

// RecalculateSeason rebuilds the season standings from scratch, week by
// week, and persists the result. A week credits a WeeklyWin only once
// all of its games have final scores; until then its winner is
// undecided and only the pick counts accumulate.
func (s *StandingsService) RecalculateSeason(ctx context.Context) ([]*models.SeasonStanding, error) {
	s.logger.Infof("Recalculating season %d standings", s.season)

	byPlayer := make(map[string]*models.SeasonStanding)

	for week := 1; week <= s.weeksPerSeason; week++ {
		games, picks, err := s.loadWeek(ctx, week)
		if err != nil {
			return nil, err
		}
		if len(picks) == 0 {
			continue
		}

		scores := ComputeStandingsForWeek(games, picks)

		weekDecided := len(games) > 0
		for _, game := range games {
			if !game.IsCompleted() {
				weekDecided = false
				break
			}
		}

		winners := make(map[string]bool)
		if weekDecided {
			result := ResolveWeek(scores, models.TiebreakerGame(games))
			for _, w := range result.Winners {
				winners[w] = true
			}
		}

		for _, ws := range scores {
			standing, ok := byPlayer[ws.Player]
			if !ok {
				standing = &models.SeasonStanding{Player: ws.Player, Season: s.season}
				byPlayer[ws.Player] = standing
			}
			standing.ApplyWeekScore(ws, winners[ws.Player])
		}
	}

	standings := make([]*models.SeasonStanding, 0, len(byPlayer))
	for _, standing := range byPlayer {
		standings = append(standings, standing)
	}
	models.SortStandings(standings)

	if err := s.standingRepo.ReplaceSeason(ctx, s.season, standings); err != nil {
		return nil, fmt.Errorf("%w: failed to persist season %d standings: %w", ErrStorage, s.season, err)
	}

	metrics.SeasonRecalculations.Inc()
	s.logger.Infof("Season %d standings recalculated for %d players", s.season, len(standings))
	return standings, nil
}

// GetLeaderboard returns the ranked season standings, recomputing them
// when nothing has been cached yet
func (s *StandingsService) GetLeaderboard(ctx context.Context) ([]*models.SeasonStanding, error) {
	standings, err := s.standingRepo.FindBySeason(ctx, s.season)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to load season %d standings: %w", ErrStorage, s.season, err)
	}

	if len(standings) == 0 {
		return s.RecalculateSeason(ctx)
	}

	models.SortStandings(standings)
	return standings, nil
}

// loadWeek fetches the week's games and pick sheets together
func (s *StandingsService) loadWeek(ctx context.Context, week int) ([]*models.Game, []*models.Pick, error) {
	games, err := s.gameRepo.FindByWeek(ctx, s.season, week)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: failed to load games for week %d: %w", ErrStorage, week, err)
	}

	picks, err := s.pickRepo.FindAllByWeek(ctx, s.season, week)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: failed to load picks for week %d: %w", ErrStorage, week, err)
	}

	return games, picks, nil
}
