package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/courtsight/courtsight/internal/domain/match"
)

type MatchRepository struct {
	mu      sync.RWMutex
	byID    map[string]match.Match
	ordered []string
}

func NewMatchRepository() *MatchRepository {
	return &MatchRepository{
		byID: make(map[string]match.Match),
	}
}

func (r *MatchRepository) Upsert(_ context.Context, matches []match.Match) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, m := range matches {
		if _, exists := r.byID[m.ID]; !exists {
			r.ordered = append(r.ordered, m.ID)
		}
		r.byID[m.ID] = m
	}
	return nil
}

func (r *MatchRepository) GetByID(_ context.Context, id string) (match.Match, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	m, ok := r.byID[id]
	return m, ok, nil
}

func (r *MatchRepository) ListByPlayer(_ context.Context, playerID string) ([]match.Match, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []match.Match
	for _, id := range r.ordered {
		m := r.byID[id]
		if m.Players[0].ID == playerID || m.Players[1].ID == playerID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (r *MatchRepository) ListBySeason(_ context.Context, year int) ([]match.Match, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	prefix := seasonPrefix(year)
	var out []match.Match
	for _, id := range r.ordered {
		m := r.byID[id]
		if strings.HasPrefix(m.StartTime, prefix) {
			out = append(out, m)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].StartTime < out[j].StartTime })
	return out, nil
}

func seasonPrefix(year int) string {
	digits := []byte{'0', '0', '0', '0'}
	for i := 3; i >= 0 && year > 0; i-- {
		digits[i] = byte('0' + year%10)
		year /= 10
	}
	return string(digits)
}
