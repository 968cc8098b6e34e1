package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/courtsight/courtsight/internal/domain/history"
)

type PlayerRepository struct {
	mu   sync.RWMutex
	byID map[string]history.RegistryPlayer
}

func NewPlayerRepository() *PlayerRepository {
	return &PlayerRepository{
		byID: make(map[string]history.RegistryPlayer),
	}
}

func (r *PlayerRepository) Upsert(_ context.Context, players []history.RegistryPlayer) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, p := range players {
		r.byID[p.ID] = p
	}
	return nil
}

func (r *PlayerRepository) GetByID(_ context.Context, id string) (history.RegistryPlayer, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.byID[id]
	return p, ok, nil
}

func (r *PlayerRepository) List(_ context.Context) ([]history.RegistryPlayer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]history.RegistryPlayer, 0, len(r.byID))
	for _, p := range r.byID {
		out = append(out, p)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}
