package services

import (
	"sort"

	"pickem-league-go/models"
)

// missingGuessDistance is the sentinel distance for a tied candidate
// who never submitted a tiebreaker guess. Large enough that any numeric
// guess beats it, so skipping the tiebreaker disqualifies without
// crashing anything.
const missingGuessDistance = int(^uint(0) >> 1)

// ResolveWeek determines the week's winner(s) from everyone's graded
// scores. Primary key: correct picks, descending. Secondary key, only
// when tied and the tiebreaker game has a final: distance between the
// player's guess and the game's combined score, ascending. Ties that
// survive both levels are returned as co-winners; if the tiebreaker
// game has not finished, resolution is deferred and all tied players
// share the week.
func ResolveWeek(scores []*models.WeeklyScore, tiebreakerGame *models.Game) *models.WeekResult {
	result := &models.WeekResult{Winners: []string{}}
	if len(scores) == 0 {
		return result
	}
	result.Season = scores[0].Season
	result.Week = scores[0].Week

	maxCorrect := scores[0].Correct
	for _, s := range scores[1:] {
		if s.Correct > maxCorrect {
			maxCorrect = s.Correct
		}
	}

	var candidates []*models.WeeklyScore
	for _, s := range scores {
		if s.Correct == maxCorrect {
			candidates = append(candidates, s)
		}
	}

	if len(candidates) == 1 {
		result.Winners = []string{candidates[0].Player}
		return result
	}

	target, ok := 0, false
	if tiebreakerGame != nil {
		target, ok = tiebreakerGame.CombinedScore()
	}
	if !ok {
		// Tiebreaker game missing or not final: defer, share the week
		for _, c := range candidates {
			result.Winners = append(result.Winners, c.Player)
		}
		sort.Strings(result.Winners)
		return result
	}

	result.UsedTiebreaker = true
	result.TiebreakerTarget = &target

	minDistance := missingGuessDistance
	for _, c := range candidates {
		if d := guessDistance(c, target); d < minDistance {
			minDistance = d
		}
	}

	for _, c := range candidates {
		if guessDistance(c, target) == minDistance {
			result.Winners = append(result.Winners, c.Player)
		}
	}
	sort.Strings(result.Winners)

	return result
}

// guessDistance is the absolute difference between a player's
// tiebreaker guess and the target combined score
func guessDistance(score *models.WeeklyScore, target int) int {
	if score.TiebreakerScore == nil {
		return missingGuessDistance
	}
	d := *score.TiebreakerScore - target
	if d < 0 {
		d = -d
	}
	return d
}
