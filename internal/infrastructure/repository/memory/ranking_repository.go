package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/courtsight/courtsight/internal/domain/history"
)

type RankingRepository struct {
	mu     sync.RWMutex
	byDate map[string]map[string]history.RankingRow
}

func NewRankingRepository() *RankingRepository {
	return &RankingRepository{
		byDate: make(map[string]map[string]history.RankingRow),
	}
}

func (r *RankingRepository) Upsert(_ context.Context, rows []history.RankingRow) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, row := range rows {
		snapshot, ok := r.byDate[row.Date]
		if !ok {
			snapshot = make(map[string]history.RankingRow)
			r.byDate[row.Date] = snapshot
		}
		snapshot[row.PlayerID] = row
	}
	return nil
}

func (r *RankingRepository) ListByDate(_ context.Context, date string) ([]history.RankingRow, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	snapshot := r.byDate[date]
	out := make([]history.RankingRow, 0, len(snapshot))
	for _, row := range snapshot {
		out = append(out, row)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Rank < out[j].Rank })
	return out, nil
}

func (r *RankingRepository) LatestDate(_ context.Context) (string, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	latest := ""
	for date := range r.byDate {
		if date > latest {
			latest = date
		}
	}
	return latest, latest != "", nil
}

func (r *RankingRepository) GetPlayerRank(_ context.Context, playerID, date string) (history.RankingRow, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	row, ok := r.byDate[date][playerID]
	return row, ok, nil
}
