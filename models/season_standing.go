package models

import (
	"sort"
	"time"
)

// SeasonStanding is a player's cumulative record across the season.
// Wins counts correct picks; WeeklyWins counts weeks the player topped
// the leaderboard. The two are deliberately separate so "most correct
// picks ever" is never conflated with "most weeks won".
type SeasonStanding struct {
	Player        string    `json:"player" bson:"player"`
	Season        int       `json:"season" bson:"season"`
	Wins          int       `json:"wins" bson:"wins"`
	TotalGames    int       `json:"total_games" bson:"total_games"`
	WeeklyWins    int       `json:"weekly_wins" bson:"weekly_wins"`
	WinPercentage float64   `json:"win_percentage" bson:"win_percentage"`
	UpdatedAt     time.Time `json:"updated_at" bson:"updated_at"`
}

// ApplyWeekScore folds one week's graded score into the standing and
// recomputes the win percentage. weeklyWinner marks whether the player
// won (or shared) that week's leaderboard.
func (s *SeasonStanding) ApplyWeekScore(ws *WeeklyScore, weeklyWinner bool) {
	s.Wins += ws.Correct
	s.TotalGames += ws.Total
	if weeklyWinner {
		s.WeeklyWins++
	}
	s.WinPercentage = s.computeWinPercentage()
	s.UpdatedAt = time.Now()
}

// computeWinPercentage guards the division so an empty standing stays
// at 0 rather than NaN
func (s *SeasonStanding) computeWinPercentage() float64 {
	if s.TotalGames == 0 {
		return 0.0
	}
	return float64(s.Wins) / float64(s.TotalGames)
}

// SortStandings orders a leaderboard: weekly wins first, win percentage
// second, player name last so exact ties keep a stable order.
func SortStandings(standings []*SeasonStanding) {
	sort.SliceStable(standings, func(i, j int) bool {
		a, b := standings[i], standings[j]
		if a.WeeklyWins != b.WeeklyWins {
			return a.WeeklyWins > b.WeeklyWins
		}
		if a.WinPercentage != b.WinPercentage {
			return a.WinPercentage > b.WinPercentage
		}
		return a.Player < b.Player
	})
}
