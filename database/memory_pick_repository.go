package database

import (
	"context"
	"sort"
	"sync"
	"time"

	"pickem-league-go/models"
)

// MemoryPickRepository is an in-memory PickRepository with the same
// per-game merge contract as the Mongo implementation.
type MemoryPickRepository struct {
	mu    sync.RWMutex
	picks map[pickKey]*models.Pick
}

type pickKey struct {
	player string
	season int
	week   int
}

// NewMemoryPickRepository creates an empty in-memory pick repository
func NewMemoryPickRepository() *MemoryPickRepository {
	return &MemoryPickRepository{
		picks: make(map[pickKey]*models.Pick),
	}
}

// FindByPlayerAndWeek returns one pick sheet, or nil when absent
func (r *MemoryPickRepository) FindByPlayerAndWeek(ctx context.Context, player string, season, week int) (*models.Pick, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	pick, ok := r.picks[pickKey{player: player, season: season, week: week}]
	if !ok {
		return nil, nil
	}
	return clonePick(pick), nil
}

// FindAllByWeek returns every player's pick sheet for a week, ordered
// by player name
func (r *MemoryPickRepository) FindAllByWeek(ctx context.Context, season, week int) ([]*models.Pick, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var picks []*models.Pick
	for key, pick := range r.picks {
		if key.season == season && key.week == week {
			picks = append(picks, clonePick(pick))
		}
	}

	sort.Slice(picks, func(i, j int) bool {
		return picks[i].Player < picks[j].Player
	})

	return picks, nil
}

// UpsertSelection merges one game selection into the player's sheet
func (r *MemoryPickRepository) UpsertSelection(ctx context.Context, player string, season, week, gameID int, team string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	pick := r.getOrCreate(player, season, week)
	pick.Selections[models.SelectionKey(gameID)] = team
	pick.UpdatedAt = time.Now()
	return nil
}

// UpsertTiebreakerScore merges a tiebreaker guess into the player's sheet
func (r *MemoryPickRepository) UpsertTiebreakerScore(ctx context.Context, player string, season, week, score int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	pick := r.getOrCreate(player, season, week)
	value := score
	pick.TiebreakerScore = &value
	pick.UpdatedAt = time.Now()
	return nil
}

// DeleteByPlayerAndWeek removes a player's entire week sheet
func (r *MemoryPickRepository) DeleteByPlayerAndWeek(ctx context.Context, player string, season, week int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.picks, pickKey{player: player, season: season, week: week})
	return nil
}

// getOrCreate must be called with the write lock held
func (r *MemoryPickRepository) getOrCreate(player string, season, week int) *models.Pick {
	key := pickKey{player: player, season: season, week: week}
	pick, ok := r.picks[key]
	if !ok {
		pick = models.NewPick(player, season, week)
		r.picks[key] = pick
	}
	return pick
}

func clonePick(pick *models.Pick) *models.Pick {
	clone := *pick
	clone.Selections = make(map[string]string, len(pick.Selections))
	for k, v := range pick.Selections {
		clone.Selections[k] = v
	}
	if pick.TiebreakerScore != nil {
		score := *pick.TiebreakerScore
		clone.TiebreakerScore = &score
	}
	return &clone
}
