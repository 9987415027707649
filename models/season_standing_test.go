package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApplyWeekScore(t *testing.T) {
	s := &SeasonStanding{Player: "alice", Season: 2025}

	s.ApplyWeekScore(&WeeklyScore{Player: "alice", Correct: 8, Total: 10}, true)

	assert.Equal(t, 8, s.Wins)
	assert.Equal(t, 10, s.TotalGames)
	assert.Equal(t, 1, s.WeeklyWins)
	assert.InDelta(t, 0.8, s.WinPercentage, 1e-9)

	s.ApplyWeekScore(&WeeklyScore{Player: "alice", Correct: 9, Total: 11}, false)

	assert.Equal(t, 17, s.Wins)
	assert.Equal(t, 21, s.TotalGames)
	assert.Equal(t, 1, s.WeeklyWins, "only the won week counts")
	assert.InDelta(t, 17.0/21.0, s.WinPercentage, 1e-9)
	assert.False(t, s.UpdatedAt.IsZero())
}

func TestApplyWeekScore_EmptyWeekKeepsZeroPercentage(t *testing.T) {
	s := &SeasonStanding{Player: "bob", Season: 2025}

	s.ApplyWeekScore(&WeeklyScore{Player: "bob"}, false)

	assert.Equal(t, 0, s.TotalGames)
	assert.Equal(t, 0.0, s.WinPercentage, "no graded games must not divide by zero")
}

func TestSortStandings(t *testing.T) {
	standings := []*SeasonStanding{
		{Player: "carol", WeeklyWins: 1, WinPercentage: 0.90},
		{Player: "bob", WeeklyWins: 2, WinPercentage: 0.60},
		{Player: "alice", WeeklyWins: 2, WinPercentage: 0.75},
		{Player: "dave", WeeklyWins: 1, WinPercentage: 0.90},
	}

	SortStandings(standings)

	got := make([]string, len(standings))
	for i, s := range standings {
		got[i] = s.Player
	}

	// Weekly wins first, win percentage second, then name for exact ties
	assert.Equal(t, []string{"alice", "bob", "carol", "dave"}, got)
}

func TestSortStandings_Stable(t *testing.T) {
	a := &SeasonStanding{Player: "same", WeeklyWins: 1, WinPercentage: 0.5, Wins: 5}
	b := &SeasonStanding{Player: "same", WeeklyWins: 1, WinPercentage: 0.5, Wins: 6}

	standings := []*SeasonStanding{a, b}
	SortStandings(standings)

	assert.Same(t, a, standings[0], "fully tied entries keep their input order")
	assert.Same(t, b, standings[1])
}
