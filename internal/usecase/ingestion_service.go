package usecase

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/courtsight/courtsight/internal/archive"
	"github.com/courtsight/courtsight/internal/cleaner"
	"github.com/courtsight/courtsight/internal/domain/history"
	"github.com/courtsight/courtsight/internal/domain/match"
	"github.com/courtsight/courtsight/internal/platform/logging"
	"github.com/sourcegraph/conc/pool"
)

// SyncResult reports one archive sync run.
type SyncResult struct {
	Seasons        []int `json:"seasons"`
	MatchCount     int   `json:"match_count"`
	PlayerCount    int   `json:"player_count"`
	RankingCount   int   `json:"ranking_count"`
	DurationMillis int64 `json:"duration_ms"`
}

// IngestionService pulls the historical archive through the cleaning
// pipeline and into the repositories.
type IngestionService struct {
	archive     ArchiveSource
	cleaner     *cleaner.Cleaner
	matchRepo   match.Repository
	playerRepo  history.PlayerRepository
	rankingRepo history.RankingRepository
	workers     int
	logger      *logging.Logger
}

func NewIngestionService(
	source ArchiveSource,
	cl *cleaner.Cleaner,
	matchRepo match.Repository,
	playerRepo history.PlayerRepository,
	rankingRepo history.RankingRepository,
	workers int,
	logger *logging.Logger,
) *IngestionService {
	if workers <= 0 {
		workers = 4
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &IngestionService{
		archive:     source,
		cleaner:     cl,
		matchRepo:   matchRepo,
		playerRepo:  playerRepo,
		rankingRepo: rankingRepo,
		workers:     workers,
		logger:      logger,
	}
}

// SyncArchive ingests the requested seasons plus the player registry and
// ranking snapshot. An empty season list means every season the archive
// has. Seasons are loaded and cleaned concurrently; each season is
// upserted as its own batch.
func (s *IngestionService) SyncArchive(ctx context.Context, seasons []int) (SyncResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.IngestionService.SyncArchive")
	defer span.End()

	start := time.Now()

	if len(seasons) == 0 {
		seasons = s.archive.AvailableSeasons()
	}
	for _, year := range seasons {
		if year < 1800 || year > 2200 {
			return SyncResult{}, fmt.Errorf("%w: season=%d is out of range", ErrInvalidInput, year)
		}
	}

	result := SyncResult{Seasons: append([]int(nil), seasons...)}
	sort.Ints(result.Seasons)

	var mu sync.Mutex
	workers := pool.New().WithMaxGoroutines(s.workers).WithErrors().WithContext(ctx)
	for _, year := range seasons {
		year := year
		workers.Go(func(ctx context.Context) error {
			count, err := s.syncSeason(ctx, year)
			if err != nil {
				return err
			}
			mu.Lock()
			result.MatchCount += count
			mu.Unlock()
			return nil
		})
	}
	if err := workers.Wait(); err != nil {
		return SyncResult{}, err
	}

	players, err := s.archive.Players(ctx)
	if err != nil {
		return SyncResult{}, fmt.Errorf("load player registry: %w", err)
	}
	if len(players) > 0 {
		if err := s.playerRepo.Upsert(ctx, players); err != nil {
			return SyncResult{}, fmt.Errorf("upsert players: %w", err)
		}
	}
	result.PlayerCount = len(players)

	// A missing ranking snapshot degrades the sync, not the whole run.
	rankings, err := s.archive.CurrentRankings(ctx)
	if err != nil {
		s.logger.WarnContext(ctx, "ranking snapshot unavailable, skipping", "error", err)
		rankings = nil
	}
	if len(rankings) > 0 {
		if err := s.rankingRepo.Upsert(ctx, rankings); err != nil {
			return SyncResult{}, fmt.Errorf("upsert rankings: %w", err)
		}
	}
	result.RankingCount = len(rankings)

	result.DurationMillis = time.Since(start).Milliseconds()
	s.logger.InfoContext(ctx, "archive sync finished",
		"seasons", len(result.Seasons),
		"matches", result.MatchCount,
		"players", result.PlayerCount,
		"rankings", result.RankingCount,
		"duration_ms", result.DurationMillis,
	)
	return result, nil
}

func (s *IngestionService) syncSeason(ctx context.Context, year int) (int, error) {
	rows, err := s.archive.SeasonMatches(ctx, year)
	if err != nil {
		return 0, fmt.Errorf("load season %d: %w", year, err)
	}
	if len(rows) == 0 {
		return 0, nil
	}

	raws := make([]match.RawMatch, 0, len(rows))
	for _, row := range rows {
		raws = append(raws, archive.RawMatchFromRow(row))
	}
	cleaned := s.cleaner.CleanAll(raws)

	if err := s.matchRepo.Upsert(ctx, cleaned); err != nil {
		return 0, fmt.Errorf("upsert season %d: %w", year, err)
	}
	return len(cleaned), nil
}
