package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/courtsight/courtsight/internal/archive"
	"github.com/courtsight/courtsight/internal/domain/history"
)

// PlayerProfile is a registry entry joined with the newest ranking snapshot.
type PlayerProfile struct {
	Player      history.RegistryPlayer `json:"player"`
	CurrentRank *int                   `json:"currentRank,omitempty"`
	RankPoints  *int                   `json:"rankPoints,omitempty"`
	RankingDate string                 `json:"rankingDate,omitempty"`
}

// RankingSource serves dated snapshots straight from the ranking archive.
// The repositories only hold what ingestion has written, so dates outside
// the ingested range are answered from the source.
type RankingSource interface {
	RankingsByDate(ctx context.Context, isoDate string) ([]history.RankingRow, error)
	LatestRankingDate(ctx context.Context) (string, bool, error)
}

type ProfileService struct {
	playerRepo  history.PlayerRepository
	rankingRepo history.RankingRepository
	rankings    RankingSource
}

func NewProfileService(playerRepo history.PlayerRepository, rankingRepo history.RankingRepository, rankings RankingSource) *ProfileService {
	return &ProfileService{
		playerRepo:  playerRepo,
		rankingRepo: rankingRepo,
		rankings:    rankings,
	}
}

func (s *ProfileService) GetProfile(ctx context.Context, playerID string) (PlayerProfile, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ProfileService.GetProfile")
	defer span.End()

	playerID = strings.TrimSpace(playerID)
	if playerID == "" {
		return PlayerProfile{}, fmt.Errorf("%w: player id is required", ErrInvalidInput)
	}

	player, exists, err := s.playerRepo.GetByID(ctx, playerID)
	if err != nil {
		return PlayerProfile{}, fmt.Errorf("get player: %w", err)
	}
	if !exists {
		return PlayerProfile{}, fmt.Errorf("%w: player=%s", ErrNotFound, playerID)
	}

	profile := PlayerProfile{Player: player}

	// A player without a current ranking is still a complete profile.
	latest, ok, err := s.rankingRepo.LatestDate(ctx)
	if err != nil {
		return PlayerProfile{}, fmt.Errorf("%w: load ranking snapshot: %v", ErrDependencyUnavailable, err)
	}
	if !ok {
		return profile, nil
	}

	row, ok, err := s.rankingRepo.GetPlayerRank(ctx, playerID, latest)
	if err != nil {
		return PlayerProfile{}, fmt.Errorf("%w: load player rank: %v", ErrDependencyUnavailable, err)
	}
	if ok {
		rank := row.Rank
		points := row.Points
		profile.CurrentRank = &rank
		profile.RankPoints = &points
		profile.RankingDate = isoRankingDate(row.Date)
	}

	return profile, nil
}

// Rankings returns one dated snapshot, defaulting to the newest. Dates cross
// the boundary in hyphenated form; storage keys stay compact.
func (s *ProfileService) Rankings(ctx context.Context, date string) ([]history.RankingRow, string, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ProfileService.Rankings")
	defer span.End()

	date = strings.TrimSpace(date)
	if date == "" {
		latest, ok, err := s.latestDate(ctx)
		if err != nil {
			return nil, "", err
		}
		if !ok {
			return nil, "", nil
		}
		date = latest
	}

	compact, err := archive.ISOToCompact(date)
	if err != nil {
		return nil, "", fmt.Errorf("%w: date must be YYYY-MM-DD: %v", ErrInvalidInput, err)
	}

	rows, err := s.rankingRepo.ListByDate(ctx, compact)
	if err != nil {
		return nil, "", fmt.Errorf("%w: list rankings: %v", ErrDependencyUnavailable, err)
	}
	if len(rows) == 0 && s.rankings != nil {
		// Best effort: a date the repositories never saw may still be in
		// the archive snapshot.
		if archived, err := s.rankings.RankingsByDate(ctx, date); err == nil {
			rows = archived
		}
	}

	out := make([]history.RankingRow, len(rows))
	copy(out, rows)
	for i := range out {
		out[i].Date = isoRankingDate(out[i].Date)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Rank < out[j].Rank })
	return out, date, nil
}

// latestDate resolves the newest known ranking date in hyphenated form,
// preferring the repositories over the archive.
func (s *ProfileService) latestDate(ctx context.Context) (string, bool, error) {
	compact, ok, err := s.rankingRepo.LatestDate(ctx)
	if err != nil {
		return "", false, fmt.Errorf("%w: load ranking snapshot: %v", ErrDependencyUnavailable, err)
	}
	if ok {
		return isoRankingDate(compact), true, nil
	}
	if s.rankings == nil {
		return "", false, nil
	}
	latest, ok, err := s.rankings.LatestRankingDate(ctx)
	if err != nil {
		return "", false, nil
	}
	return latest, ok, nil
}

// isoRankingDate converts a stored compact date for output, passing through
// anything that does not parse.
func isoRankingDate(date string) string {
	iso, err := archive.CompactToISO(date)
	if err != nil {
		return date
	}
	return iso
}
