package analytics

import (
	"sort"
	"sync"

	crerr "github.com/cockroachdb/errors"
	"github.com/courtsight/courtsight/internal/domain/history"
	"github.com/panjf2000/ants/v2"
)

// ComputeBatch derives summaries for many players over one shared row set,
// fanning the per-player work across a bounded pool. Results come back
// sorted by player id so batch output is stable.
func ComputeBatch(playerIDs []string, rows []history.RawHistoricalRow, workerCount int) ([]PlayerSummary, error) {
	if len(playerIDs) == 0 {
		return nil, nil
	}
	workerCount = normalizeWorkerCount(workerCount, len(playerIDs))

	pool, err := ants.NewPool(workerCount)
	if err != nil {
		return nil, crerr.Wrap(err, "create analytics worker pool")
	}
	defer pool.Release()

	results := make(chan PlayerSummary, len(playerIDs))

	var workers sync.WaitGroup
	for _, playerID := range playerIDs {
		playerID := playerID
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()
			results <- Compute(playerID, rows)
		}); err != nil {
			workers.Done()
			return nil, crerr.Wrap(err, "submit analytics task")
		}
	}

	workers.Wait()
	close(results)

	out := make([]PlayerSummary, 0, len(playerIDs))
	for summary := range results {
		out = append(out, summary)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].PlayerID < out[j].PlayerID
	})
	return out, nil
}

func normalizeWorkerCount(value, taskCount int) int {
	if value <= 0 {
		value = 4
	}
	if value > taskCount {
		value = taskCount
	}
	return value
}
