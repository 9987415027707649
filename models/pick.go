package models

import (
	"strconv"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Pick holds one player's selections for a week: one chosen team per
// game plus an optional tiebreaker guess at the combined final score of
// the week's tiebreaker game. One document per (player, season, week);
// individual game selections merge into the same document rather than
// replacing it, so concurrent submissions for sibling games never
// clobber each other.
type Pick struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Player          string             `bson:"player" json:"player"`
	Season          int                `bson:"season" json:"season"`
	Week            int                `bson:"week" json:"week"`
	Selections      map[string]string  `bson:"selections" json:"selections"` // game ID (decimal string, BSON keys) -> team
	TiebreakerScore *int               `bson:"tiebreaker_score,omitempty" json:"tiebreaker_score,omitempty"`
	CreatedAt       time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt       time.Time          `bson:"updated_at" json:"updated_at"`
}

// NewPick creates an empty pick sheet for a player and week
func NewPick(player string, season, week int) *Pick {
	now := time.Now()
	return &Pick{
		Player:     player,
		Season:     season,
		Week:       week,
		Selections: make(map[string]string),
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// SelectionKey converts a game ID to its selections map key
func SelectionKey(gameID int) string {
	return strconv.Itoa(gameID)
}

// Selection returns the team selected for a game, if any
func (p *Pick) Selection(gameID int) (string, bool) {
	if p == nil || p.Selections == nil {
		return "", false
	}
	team, ok := p.Selections[SelectionKey(gameID)]
	return team, ok
}

// SetSelection records the team selected for a game, overwriting any
// earlier selection for that game only
func (p *Pick) SetSelection(gameID int, team string) {
	if p.Selections == nil {
		p.Selections = make(map[string]string)
	}
	p.Selections[SelectionKey(gameID)] = team
	p.UpdatedAt = time.Now()
}

// HasTiebreakerScore returns true if the player submitted a tiebreaker guess
func (p *Pick) HasTiebreakerScore() bool {
	return p != nil && p.TiebreakerScore != nil
}

// SelectionCount returns the number of games the player has picked
func (p *Pick) SelectionCount() int {
	if p == nil {
		return 0
	}
	return len(p.Selections)
}
