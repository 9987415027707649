package models

// WeeklyScore is a player's graded result for one week, computed on
// demand from the game catalog and the player's pick sheet. Total
// counts completed games only; games still in progress or unplayed are
// tracked as Pending and score nothing yet.
type WeeklyScore struct {
	Player          string `json:"player" bson:"player"`
	Season          int    `json:"season" bson:"season"`
	Week            int    `json:"week" bson:"week"`
	Correct         int    `json:"correct" bson:"correct"`
	Total           int    `json:"total" bson:"total"`
	Pending         int    `json:"pending" bson:"pending"`
	TiebreakerScore *int   `json:"tiebreaker_score,omitempty" bson:"tiebreaker_score,omitempty"`
}

// Accuracy returns correct/total, or 0 when no games have been graded
func (ws *WeeklyScore) Accuracy() float64 {
	if ws.Total == 0 {
		return 0.0
	}
	return float64(ws.Correct) / float64(ws.Total)
}

// IsComplete returns true once every game of the week has been graded
func (ws *WeeklyScore) IsComplete() bool {
	return ws.Pending == 0
}

// WeekResult is the outcome of resolving a week across all players.
// Winners carries every player still tied after both tiebreak levels;
// a multi-way tie is reported as shared winners, never forced to one.
type WeekResult struct {
	Season           int      `json:"season"`
	Week             int      `json:"week"`
	Winners          []string `json:"winners"`
	UsedTiebreaker   bool     `json:"used_tiebreaker"`
	TiebreakerTarget *int     `json:"tiebreaker_target,omitempty"`
}
