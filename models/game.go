package models

import (
	"time"
)

// Game represents one matchup on a week's schedule, with final scores
// once the external result feed marks it completed.
type Game struct {
	ID         int       `json:"id" bson:"id"`
	Season     int       `json:"season" bson:"season"`
	Week       int       `json:"week" bson:"week"`
	Date       time.Time `json:"date" bson:"date"`
	Away       string    `json:"away" bson:"away"`
	Home       string    `json:"home" bson:"home"`
	OverUnder  float64   `json:"overUnder,omitempty" bson:"overUnder,omitempty"`
	Tiebreaker bool      `json:"tiebreaker" bson:"tiebreaker"` // the week's designated tiebreaker game
	Completed  bool      `json:"completed" bson:"completed"`
	AwayScore  *int      `json:"awayScore,omitempty" bson:"awayScore,omitempty"`
	HomeScore  *int      `json:"homeScore,omitempty" bson:"homeScore,omitempty"`
}

// IsCompleted returns true if the game is finished
func (g *Game) IsCompleted() bool {
	return g.Completed
}

// HasStarted returns true if the game's kickoff time has passed
func (g *Game) HasStarted(now time.Time) bool {
	return !now.Before(g.Date)
}

// Winner returns the winning team or empty string if the game is not
// completed or ended in a tie. A tied final has no winner; no pick
// scores credit for it.
func (g *Game) Winner() string {
	if !g.Completed || g.AwayScore == nil || g.HomeScore == nil {
		return ""
	}
	if *g.HomeScore > *g.AwayScore {
		return g.Home
	} else if *g.AwayScore > *g.HomeScore {
		return g.Away
	}
	return "" // tie
}

// HasTeam returns true if the given team plays in this game
func (g *Game) HasTeam(team string) bool {
	return team != "" && (team == g.Away || team == g.Home)
}

// CombinedScore returns the total points scored, or false when the
// game has not completed with both scores known.
func (g *Game) CombinedScore() (int, bool) {
	if !g.Completed || g.AwayScore == nil || g.HomeScore == nil {
		return 0, false
	}
	return *g.AwayScore + *g.HomeScore, true
}

// Matchup returns a short "AWAY @ HOME" description
func (g *Game) Matchup() string {
	return g.Away + " @ " + g.Home
}

// PacificTime returns the game date converted to Pacific Time for display
func (g *Game) PacificTime() time.Time {
	loc, err := time.LoadLocation("America/Los_Angeles")
	if err != nil {
		// Fallback to a fixed UTC-8 offset if timezone data is unavailable
		return g.Date.Add(-8 * time.Hour)
	}

	return g.Date.In(loc)
}

// FormatGameTime returns the kickoff formatted for Pacific timezone display
func (g *Game) FormatGameTime() string {
	return g.PacificTime().Format("Mon 3:04 PM")
}

// TiebreakerGame selects the week's single tiebreaker game. When the
// schedule flags more than one, the latest kickoff wins so the choice
// stays deterministic (canonically the Monday night game). Returns nil
// when no game is flagged.
func TiebreakerGame(games []*Game) *Game {
	var chosen *Game
	for _, game := range games {
		if !game.Tiebreaker {
			continue
		}
		if chosen == nil || game.Date.After(chosen.Date) {
			chosen = game
		}
	}
	return chosen
}
