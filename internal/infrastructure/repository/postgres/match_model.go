package postgres

import (
	"database/sql"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/courtsight/courtsight/internal/domain/match"
)

// Player lineups and scores are stored as jsonb columns; the canonical
// struct shapes are the storage contract.
type matchTableModel struct {
	ID             string         `db:"id"`
	TournamentID   string         `db:"tournament_id"`
	TournamentName string         `db:"tournament_name"`
	Category       string         `db:"category"`
	Surface        string         `db:"surface"`
	Location       string         `db:"location"`
	Tier           string         `db:"tier"`
	Round          string         `db:"round"`
	Status         string         `db:"status"`
	Players        []byte         `db:"players"`
	Score          []byte         `db:"score"`
	StartTime      sql.NullString `db:"start_time"`
	EndTime        sql.NullString `db:"end_time"`
	Court          sql.NullString `db:"court"`
}

func matchToModel(m match.Match) (matchTableModel, error) {
	players, err := sonic.Marshal(m.Players)
	if err != nil {
		return matchTableModel{}, crerr.Wrapf(err, "encode players match=%s", m.ID)
	}

	var score []byte
	if m.Score != nil {
		score, err = sonic.Marshal(m.Score)
		if err != nil {
			return matchTableModel{}, crerr.Wrapf(err, "encode score match=%s", m.ID)
		}
	}

	return matchTableModel{
		ID:             m.ID,
		TournamentID:   m.Tournament.ID,
		TournamentName: m.Tournament.Name,
		Category:       string(m.Tournament.Category),
		Surface:        string(m.Tournament.Surface),
		Location:       m.Tournament.Location,
		Tier:           m.Tournament.Tier,
		Round:          m.Round,
		Status:         string(m.Status),
		Players:        players,
		Score:          score,
		StartTime:      nullableString(m.StartTime),
		EndTime:        nullableString(m.EndTime),
		Court:          nullableString(m.Court),
	}, nil
}

func modelToMatch(row matchTableModel) (match.Match, error) {
	m := match.Match{
		ID: row.ID,
		Tournament: match.Tournament{
			ID:       row.TournamentID,
			Name:     row.TournamentName,
			Category: match.Category(row.Category),
			Surface:  match.Surface(row.Surface),
			Location: row.Location,
			Tier:     row.Tier,
		},
		Round:     row.Round,
		Status:    match.Status(row.Status),
		StartTime: nullStringValue(row.StartTime),
		EndTime:   nullStringValue(row.EndTime),
		Court:     nullStringValue(row.Court),
	}

	if len(row.Players) > 0 {
		if err := sonic.Unmarshal(row.Players, &m.Players); err != nil {
			return match.Match{}, crerr.Wrapf(err, "decode players match=%s", row.ID)
		}
	}
	if len(row.Score) > 0 {
		var score match.Score
		if err := sonic.Unmarshal(row.Score, &score); err != nil {
			return match.Match{}, crerr.Wrapf(err, "decode score match=%s", row.ID)
		}
		m.Score = &score
	}

	return m, nil
}
