package usecase

import (
	"context"
	"sync/atomic"

	"github.com/courtsight/courtsight/internal/domain/history"
	"github.com/courtsight/courtsight/internal/domain/match"
)

type stubFeed struct {
	raws  []match.RawMatch
	err   error
	calls atomic.Int32
}

func (s *stubFeed) Scoreboard(context.Context) ([]match.RawMatch, error) {
	s.calls.Add(1)
	if s.err != nil {
		return nil, s.err
	}
	return s.raws, nil
}

type stubArchive struct {
	players     []history.RegistryPlayer
	seasons     map[int][]history.RawHistoricalRow
	rankings    []history.RankingRow
	rankingsErr error
}

func (s *stubArchive) Players(context.Context) ([]history.RegistryPlayer, error) {
	return s.players, nil
}

func (s *stubArchive) SeasonMatches(_ context.Context, year int) ([]history.RawHistoricalRow, error) {
	return s.seasons[year], nil
}

func (s *stubArchive) AvailableSeasons() []int {
	var years []int
	for year := range s.seasons {
		years = append(years, year)
	}
	sortInts(years)
	return years
}

func (s *stubArchive) CurrentRankings(context.Context) ([]history.RankingRow, error) {
	if s.rankingsErr != nil {
		return nil, s.rankingsErr
	}
	return s.rankings, nil
}

func sortInts(values []int) {
	for i := 1; i < len(values); i++ {
		for j := i; j > 0 && values[j] < values[j-1]; j-- {
			values[j], values[j-1] = values[j-1], values[j]
		}
	}
}

type stubMatchRepo struct {
	upserted []match.Match
}

func (s *stubMatchRepo) Upsert(_ context.Context, matches []match.Match) error {
	s.upserted = append(s.upserted, matches...)
	return nil
}

func (s *stubMatchRepo) GetByID(_ context.Context, id string) (match.Match, bool, error) {
	for _, m := range s.upserted {
		if m.ID == id {
			return m, true, nil
		}
	}
	return match.Match{}, false, nil
}

func (s *stubMatchRepo) ListByPlayer(context.Context, string) ([]match.Match, error) {
	return nil, nil
}

func (s *stubMatchRepo) ListBySeason(context.Context, int) ([]match.Match, error) {
	return nil, nil
}

type stubPlayerRepo struct {
	players map[string]history.RegistryPlayer
}

func (s *stubPlayerRepo) Upsert(_ context.Context, players []history.RegistryPlayer) error {
	if s.players == nil {
		s.players = map[string]history.RegistryPlayer{}
	}
	for _, p := range players {
		s.players[p.ID] = p
	}
	return nil
}

func (s *stubPlayerRepo) GetByID(_ context.Context, id string) (history.RegistryPlayer, bool, error) {
	p, ok := s.players[id]
	return p, ok, nil
}

func (s *stubPlayerRepo) List(context.Context) ([]history.RegistryPlayer, error) {
	out := make([]history.RegistryPlayer, 0, len(s.players))
	for _, p := range s.players {
		out = append(out, p)
	}
	return out, nil
}

type stubRankingRepo struct {
	rows []history.RankingRow
}

func (s *stubRankingRepo) Upsert(_ context.Context, rows []history.RankingRow) error {
	s.rows = append(s.rows, rows...)
	return nil
}

func (s *stubRankingRepo) ListByDate(_ context.Context, date string) ([]history.RankingRow, error) {
	var out []history.RankingRow
	for _, row := range s.rows {
		if row.Date == date {
			out = append(out, row)
		}
	}
	return out, nil
}

func (s *stubRankingRepo) LatestDate(context.Context) (string, bool, error) {
	latest := ""
	for _, row := range s.rows {
		if row.Date > latest {
			latest = row.Date
		}
	}
	return latest, latest != "", nil
}

func (s *stubRankingRepo) GetPlayerRank(_ context.Context, playerID, date string) (history.RankingRow, bool, error) {
	for _, row := range s.rows {
		if row.PlayerID == playerID && row.Date == date {
			return row, true, nil
		}
	}
	return history.RankingRow{}, false, nil
}

type stubRankingSource struct {
	byDate map[string][]history.RankingRow
	latest string
	err    error
}

func (s *stubRankingSource) RankingsByDate(_ context.Context, isoDate string) ([]history.RankingRow, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.byDate[isoDate], nil
}

func (s *stubRankingSource) LatestRankingDate(context.Context) (string, bool, error) {
	if s.err != nil {
		return "", false, s.err
	}
	return s.latest, s.latest != "", nil
}
