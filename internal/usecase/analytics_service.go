package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/courtsight/courtsight/internal/analytics"
	"github.com/courtsight/courtsight/internal/domain/history"
	"github.com/courtsight/courtsight/internal/platform/cache"
	"github.com/courtsight/courtsight/internal/platform/logging"
)

// ArchiveSource is the historical archive the analytics and ingestion
// services read from.
type ArchiveSource interface {
	Players(ctx context.Context) ([]history.RegistryPlayer, error)
	SeasonMatches(ctx context.Context, year int) ([]history.RawHistoricalRow, error)
	AvailableSeasons() []int
	CurrentRankings(ctx context.Context) ([]history.RankingRow, error)
}

type AnalyticsService struct {
	archive     ArchiveSource
	playerRepo  history.PlayerRepository
	rankingRepo history.RankingRepository
	summaries   *cache.Store
	workers     int
	logger      *logging.Logger
}

func NewAnalyticsService(
	archive ArchiveSource,
	playerRepo history.PlayerRepository,
	rankingRepo history.RankingRepository,
	summaries *cache.Store,
	workers int,
	logger *logging.Logger,
) *AnalyticsService {
	if logger == nil {
		logger = logging.Default()
	}
	return &AnalyticsService{
		archive:     archive,
		playerRepo:  playerRepo,
		rankingRepo: rankingRepo,
		summaries:   summaries,
		workers:     workers,
		logger:      logger,
	}
}

// PlayerAnalytics computes a player's career summary over an inclusive
// season range. A zero bound defaults to the archive's edge on that side.
func (s *AnalyticsService) PlayerAnalytics(ctx context.Context, playerID string, fromYear, toYear int) (analytics.PlayerSummary, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AnalyticsService.PlayerAnalytics")
	defer span.End()

	playerID = strings.TrimSpace(playerID)
	if playerID == "" {
		return analytics.PlayerSummary{}, fmt.Errorf("%w: player id is required", ErrInvalidInput)
	}

	_, exists, err := s.playerRepo.GetByID(ctx, playerID)
	if err != nil {
		return analytics.PlayerSummary{}, fmt.Errorf("get player: %w", err)
	}
	if !exists {
		return analytics.PlayerSummary{}, fmt.Errorf("%w: player=%s", ErrNotFound, playerID)
	}

	seasons := s.archive.AvailableSeasons()
	if len(seasons) == 0 {
		return analytics.PlayerSummary{}, fmt.Errorf("%w: no archive seasons available", ErrDependencyUnavailable)
	}
	if fromYear == 0 {
		fromYear = seasons[0]
	}
	if toYear == 0 {
		toYear = seasons[len(seasons)-1]
	}
	if fromYear > toYear {
		return analytics.PlayerSummary{}, fmt.Errorf("%w: from=%d is after to=%d", ErrInvalidInput, fromYear, toYear)
	}

	key := fmt.Sprintf("analytics:%s:%d:%d", playerID, fromYear, toYear)
	value, err := s.summaries.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		rows, err := s.loadRange(ctx, seasons, fromYear, toYear)
		if err != nil {
			return nil, err
		}
		summary := analytics.Compute(playerID, rows)
		s.attachRank(ctx, &summary)
		return summary, nil
	})
	if err != nil {
		return analytics.PlayerSummary{}, err
	}

	summary, ok := value.(analytics.PlayerSummary)
	if !ok {
		return analytics.PlayerSummary{}, fmt.Errorf("unexpected cached summary type %T", value)
	}
	return summary, nil
}

// PrecomputeAll warms summaries for every registry player across the full
// archive, fanning per-player computation over the worker pool.
func (s *AnalyticsService) PrecomputeAll(ctx context.Context) (int, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AnalyticsService.PrecomputeAll")
	defer span.End()

	players, err := s.playerRepo.List(ctx)
	if err != nil {
		return 0, fmt.Errorf("list players: %w", err)
	}
	if len(players) == 0 {
		return 0, nil
	}

	seasons := s.archive.AvailableSeasons()
	if len(seasons) == 0 {
		return 0, fmt.Errorf("%w: no archive seasons available", ErrDependencyUnavailable)
	}
	fromYear := seasons[0]
	toYear := seasons[len(seasons)-1]

	rows, err := s.loadRange(ctx, seasons, fromYear, toYear)
	if err != nil {
		return 0, err
	}

	ids := make([]string, 0, len(players))
	for _, player := range players {
		ids = append(ids, player.ID)
	}

	summaries, err := analytics.ComputeBatch(ids, rows, s.workers)
	if err != nil {
		return 0, fmt.Errorf("precompute summaries: %w", err)
	}
	for _, summary := range summaries {
		s.attachRank(ctx, &summary)
		key := fmt.Sprintf("analytics:%s:%d:%d", summary.PlayerID, fromYear, toYear)
		s.summaries.Set(ctx, key, summary)
	}

	s.logger.InfoContext(ctx, "precomputed player analytics", "players", len(summaries), "seasons", len(seasons))
	return len(summaries), nil
}

func (s *AnalyticsService) loadRange(ctx context.Context, seasons []int, fromYear, toYear int) ([]history.RawHistoricalRow, error) {
	var rows []history.RawHistoricalRow
	for _, year := range seasons {
		if year < fromYear || year > toYear {
			continue
		}
		seasonRows, err := s.archive.SeasonMatches(ctx, year)
		if err != nil {
			return nil, fmt.Errorf("load season %d: %w", year, err)
		}
		rows = append(rows, seasonRows...)
	}
	return rows, nil
}

func (s *AnalyticsService) attachRank(ctx context.Context, summary *analytics.PlayerSummary) {
	latest, ok, err := s.rankingRepo.LatestDate(ctx)
	if err != nil || !ok {
		return
	}
	row, ok, err := s.rankingRepo.GetPlayerRank(ctx, summary.PlayerID, latest)
	if err != nil || !ok {
		return
	}
	rank := row.Rank
	points := row.Points
	summary.CurrentRank = &rank
	summary.RankPoints = &points
}
