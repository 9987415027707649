package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gameAt(id int, kickoff time.Time) *Game {
	return &Game{
		ID:     id,
		Season: 2025,
		Week:   1,
		Date:   kickoff,
		Away:   "DET",
		Home:   "KC",
	}
}

func finalGame(away, home int) *Game {
	g := gameAt(1, time.Date(2025, 9, 7, 17, 0, 0, 0, time.UTC))
	g.Completed = true
	g.AwayScore = &away
	g.HomeScore = &home
	return g
}

func TestGameWinner(t *testing.T) {
	tests := []struct {
		name string
		game *Game
		want string
	}{
		{"home win", finalGame(20, 21), "KC"},
		{"away win", finalGame(31, 10), "DET"},
		{"tie has no winner", finalGame(20, 20), ""},
		{"not completed", gameAt(1, time.Now()), ""},
		{
			"completed without scores",
			&Game{ID: 1, Away: "DET", Home: "KC", Completed: true},
			"",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.game.Winner())
		})
	}
}

func TestGameCombinedScore(t *testing.T) {
	total, ok := finalGame(24, 21).CombinedScore()
	require.True(t, ok)
	assert.Equal(t, 45, total)

	_, ok = gameAt(1, time.Now()).CombinedScore()
	assert.False(t, ok)
}

func TestGameHasStarted(t *testing.T) {
	kickoff := time.Date(2025, 9, 7, 17, 0, 0, 0, time.UTC)
	g := gameAt(1, kickoff)

	assert.False(t, g.HasStarted(kickoff.Add(-time.Minute)))
	assert.True(t, g.HasStarted(kickoff), "picks lock exactly at kickoff")
	assert.True(t, g.HasStarted(kickoff.Add(time.Minute)))
}

func TestGameHasTeam(t *testing.T) {
	g := gameAt(1, time.Now())

	assert.True(t, g.HasTeam("DET"))
	assert.True(t, g.HasTeam("KC"))
	assert.False(t, g.HasTeam("BUF"))
	assert.False(t, g.HasTeam(""))
}

func TestTiebreakerGame(t *testing.T) {
	sunday := time.Date(2025, 9, 7, 17, 0, 0, 0, time.UTC)
	monday := sunday.Add(26 * time.Hour)

	early := gameAt(1, sunday)
	late := gameAt(2, monday)
	plain := gameAt(3, sunday.Add(3*time.Hour))

	t.Run("none flagged", func(t *testing.T) {
		assert.Nil(t, TiebreakerGame([]*Game{early, plain}))
	})

	t.Run("single flagged", func(t *testing.T) {
		late.Tiebreaker = true
		defer func() { late.Tiebreaker = false }()

		got := TiebreakerGame([]*Game{early, late, plain})
		require.NotNil(t, got)
		assert.Equal(t, 2, got.ID)
	})

	t.Run("multiple flagged picks latest kickoff", func(t *testing.T) {
		early.Tiebreaker = true
		late.Tiebreaker = true
		defer func() {
			early.Tiebreaker = false
			late.Tiebreaker = false
		}()

		got := TiebreakerGame([]*Game{late, early})
		require.NotNil(t, got)
		assert.Equal(t, 2, got.ID, "latest kickoff wins regardless of slice order")
	})
}
