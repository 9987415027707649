package database

import (
	"context"
	"sync"

	"pickem-league-go/models"
)

// MemoryStandingRepository is an in-memory StandingRepository.
type MemoryStandingRepository struct {
	mu        sync.RWMutex
	standings map[int][]*models.SeasonStanding
}

// NewMemoryStandingRepository creates an empty in-memory standing repository
func NewMemoryStandingRepository() *MemoryStandingRepository {
	return &MemoryStandingRepository{
		standings: make(map[int][]*models.SeasonStanding),
	}
}

// FindBySeason returns all cached standings for a season
func (r *MemoryStandingRepository) FindBySeason(ctx context.Context, season int) ([]*models.SeasonStanding, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	cached := r.standings[season]
	standings := make([]*models.SeasonStanding, len(cached))
	for i, standing := range cached {
		clone := *standing
		standings[i] = &clone
	}
	return standings, nil
}

// ReplaceSeason swaps the season's cached standings for a fresh set
func (r *MemoryStandingRepository) ReplaceSeason(ctx context.Context, season int, standings []*models.SeasonStanding) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	cached := make([]*models.SeasonStanding, len(standings))
	for i, standing := range standings {
		clone := *standing
		cached[i] = &clone
	}
	r.standings[season] = cached
	return nil
}
