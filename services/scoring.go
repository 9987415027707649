package services

import (
	"sort"

	"pickem-league-go/models"
)

// Pick grading is pure computation: given the week's game catalog and a
// player's pick sheet, produce a graded WeeklyScore. Nothing here
// touches storage and nothing can fail — absent or malformed picks
// simply earn no credit.

// ScorePlayer grades one player's picks against the week's games.
// Every completed game counts toward Total whether or not the player
// picked it; a selection earns Correct only when it matches the game's
// winner. Games still pending count toward neither.
func ScorePlayer(games []*models.Game, pick *models.Pick) *models.WeeklyScore {
	score := &models.WeeklyScore{}
	if pick != nil {
		score.Player = pick.Player
		score.Season = pick.Season
		score.Week = pick.Week
		score.TiebreakerScore = pick.TiebreakerScore
	}

	for _, game := range games {
		if !game.IsCompleted() {
			score.Pending++
			continue
		}

		score.Total++

		winner := game.Winner()
		if winner == "" {
			// Tied final: no winner, nobody earns credit
			continue
		}

		if team, ok := pick.Selection(game.ID); ok && team == winner {
			score.Correct++
		}
	}

	return score
}

// ComputeStandingsForWeek grades every player's pick sheet against the
// same game catalog, ordered by player name for stable output.
func ComputeStandingsForWeek(games []*models.Game, picks []*models.Pick) []*models.WeeklyScore {
	scores := make([]*models.WeeklyScore, 0, len(picks))
	for _, pick := range picks {
		scores = append(scores, ScorePlayer(games, pick))
	}

	sort.Slice(scores, func(i, j int) bool {
		return scores[i].Player < scores[j].Player
	})

	return scores
}
