package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"

	"pickem-league-go/interfaces"
	"pickem-league-go/logging"
	"pickem-league-go/metrics"
	"pickem-league-go/models"
)

// Sentinel errors surfaced to the HTTP layer. Rejections map to 4xx;
// anything wrapping ErrStorage is an infrastructure failure and maps
// to 5xx, never to a client error.
var (
	ErrGameNotFound = errors.New("game not found in week schedule")
	ErrInvalidTeam  = errors.New("team does not play in this game")
	ErrGameLocked   = errors.New("game has already started")
	ErrStorage      = errors.New("storage failure")
)

// PickService validates and stores player pick submissions. All
// validation happens here at the boundary; by the time picks reach the
// scoring engine they are structurally sound, and anything malformed
// that slips through storage simply scores no credit.
type PickService struct {
	pickRepo       interfaces.PickRepository
	gameRepo       interfaces.GameRepository
	validate       *validator.Validate
	logger         *logging.Logger
	season         int
	weeksPerSeason int
	now            func() time.Time
}

// selectionSubmission carries one game selection through validation
type selectionSubmission struct {
	Player string `validate:"required,min=1,max=64"`
	Week   int    `validate:"required,gte=1"`
	GameID int    `validate:"required,gt=0"`
	Team   string `validate:"required,min=1,max=64"`
}

// tiebreakerSubmission carries a tiebreaker guess through validation
type tiebreakerSubmission struct {
	Player string `validate:"required,min=1,max=64"`
	Week   int    `validate:"required,gte=1"`
	Score  int    `validate:"gte=0,lte=200"`
}

// NewPickService creates a new pick service
func NewPickService(pickRepo interfaces.PickRepository, gameRepo interfaces.GameRepository, season, weeksPerSeason int) *PickService {
	return &PickService{
		pickRepo:       pickRepo,
		gameRepo:       gameRepo,
		validate:       validator.New(),
		logger:         logging.WithPrefix("pick_service"),
		season:         season,
		weeksPerSeason: weeksPerSeason,
		now:            time.Now,
	}
}

// SubmitSelection records one game selection for a player. Selections
// merge per game into the player's week sheet: submitting game 3 never
// touches the stored selection for game 2.
func (s *PickService) SubmitSelection(ctx context.Context, player string, week, gameID int, team string) error {
	sub := selectionSubmission{Player: player, Week: week, GameID: gameID, Team: team}
	if err := s.validate.Struct(sub); err != nil {
		metrics.PickRejections.Inc()
		return fmt.Errorf("invalid pick submission: %w", err)
	}
	if week > s.weeksPerSeason {
		metrics.PickRejections.Inc()
		return fmt.Errorf("invalid pick submission: week %d beyond season schedule", week)
	}

	game, err := s.findGameInWeek(ctx, week, gameID)
	if err != nil {
		metrics.PickRejections.Inc()
		return err
	}

	if !game.HasTeam(team) {
		metrics.PickRejections.Inc()
		return fmt.Errorf("%w: %s is not %s", ErrInvalidTeam, team, game.Matchup())
	}

	// Picks lock at kickoff
	if game.HasStarted(s.now()) {
		metrics.PickRejections.Inc()
		return fmt.Errorf("%w: %s kicked off %s", ErrGameLocked, game.Matchup(), game.FormatGameTime())
	}

	if err := s.pickRepo.UpsertSelection(ctx, player, s.season, week, gameID, team); err != nil {
		return fmt.Errorf("%w: failed to save selection: %w", ErrStorage, err)
	}

	metrics.PicksSubmitted.Inc()
	s.logger.Infof("Saved selection: player=%s week=%d game=%d team=%s", player, week, gameID, team)
	return nil
}

// SubmitTiebreakerScore records a player's guess at the combined final
// score of the week's tiebreaker game
func (s *PickService) SubmitTiebreakerScore(ctx context.Context, player string, week, score int) error {
	sub := tiebreakerSubmission{Player: player, Week: week, Score: score}
	if err := s.validate.Struct(sub); err != nil {
		metrics.PickRejections.Inc()
		return fmt.Errorf("invalid tiebreaker submission: %w", err)
	}
	if week > s.weeksPerSeason {
		metrics.PickRejections.Inc()
		return fmt.Errorf("invalid tiebreaker submission: week %d beyond season schedule", week)
	}

	games, err := s.gameRepo.FindByWeek(ctx, s.season, week)
	if err != nil {
		return fmt.Errorf("%w: failed to load week %d schedule: %w", ErrStorage, week, err)
	}

	// The guess locks with the tiebreaker game itself when one is scheduled
	if tb := models.TiebreakerGame(games); tb != nil && tb.HasStarted(s.now()) {
		metrics.PickRejections.Inc()
		return fmt.Errorf("%w: tiebreaker game %s kicked off %s", ErrGameLocked, tb.Matchup(), tb.FormatGameTime())
	}

	if err := s.pickRepo.UpsertTiebreakerScore(ctx, player, s.season, week, score); err != nil {
		return fmt.Errorf("%w: failed to save tiebreaker score: %w", ErrStorage, err)
	}

	metrics.TiebreakerGuesses.Inc()
	s.logger.Infof("Saved tiebreaker guess: player=%s week=%d score=%d", player, week, score)
	return nil
}

// GetPlayerPicks returns a player's pick sheet for a week, or nil if
// the player has not picked anything yet
func (s *PickService) GetPlayerPicks(ctx context.Context, player string, week int) (*models.Pick, error) {
	pick, err := s.pickRepo.FindByPlayerAndWeek(ctx, player, s.season, week)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to load picks for %s week %d: %w", ErrStorage, player, week, err)
	}
	return pick, nil
}

// GetWeekPicks returns every player's pick sheet for a week
func (s *PickService) GetWeekPicks(ctx context.Context, week int) ([]*models.Pick, error) {
	picks, err := s.pickRepo.FindAllByWeek(ctx, s.season, week)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to load picks for week %d: %w", ErrStorage, week, err)
	}
	return picks, nil
}

// findGameInWeek loads the week's schedule and locates the target game
func (s *PickService) findGameInWeek(ctx context.Context, week, gameID int) (*models.Game, error) {
	games, err := s.gameRepo.FindByWeek(ctx, s.season, week)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to load week %d schedule: %w", ErrStorage, week, err)
	}

	for _, game := range games {
		if game.ID == gameID {
			return game, nil
		}
	}
	return nil, fmt.Errorf("%w: game %d, week %d", ErrGameNotFound, gameID, week)
}
