package postgres

import (
	"context"
	"fmt"

	"github.com/courtsight/courtsight/internal/domain/match"
	"github.com/jmoiron/sqlx"
)

type MatchRepository struct {
	db *sqlx.DB
}

func NewMatchRepository(db *sqlx.DB) *MatchRepository {
	return &MatchRepository{db: db}
}

const matchSelectColumns = `id, tournament_id, tournament_name, category, surface, location, tier,
round, status, players, score, start_time, end_time, court`

const matchUpsertQuery = `INSERT INTO matches (
	id, tournament_id, tournament_name, category, surface, location, tier,
	round, status, players, score, start_time, end_time, court
) VALUES (
	:id, :tournament_id, :tournament_name, :category, :surface, :location, :tier,
	:round, :status, :players, :score, :start_time, :end_time, :court
)
ON CONFLICT (id) DO UPDATE SET
	tournament_id = EXCLUDED.tournament_id,
	tournament_name = EXCLUDED.tournament_name,
	category = EXCLUDED.category,
	surface = EXCLUDED.surface,
	location = EXCLUDED.location,
	tier = EXCLUDED.tier,
	round = EXCLUDED.round,
	status = EXCLUDED.status,
	players = EXCLUDED.players,
	score = EXCLUDED.score,
	start_time = EXCLUDED.start_time,
	end_time = EXCLUDED.end_time,
	court = EXCLUDED.court,
	updated_at = NOW()`

func (r *MatchRepository) Upsert(ctx context.Context, matches []match.Match) error {
	if len(matches) == 0 {
		return nil
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx upsert matches: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	for _, m := range matches {
		model, err := matchToModel(m)
		if err != nil {
			return err
		}
		if _, err := tx.NamedExecContext(ctx, matchUpsertQuery, model); err != nil {
			return fmt.Errorf("upsert match id=%s: %w", m.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit upsert matches tx: %w", err)
	}
	return nil
}

func (r *MatchRepository) GetByID(ctx context.Context, id string) (match.Match, bool, error) {
	query := `SELECT ` + matchSelectColumns + ` FROM matches WHERE id = $1`

	var row matchTableModel
	if err := r.db.GetContext(ctx, &row, query, id); err != nil {
		if isNotFound(err) {
			return match.Match{}, false, nil
		}
		return match.Match{}, false, fmt.Errorf("select match by id: %w", err)
	}

	m, err := modelToMatch(row)
	if err != nil {
		return match.Match{}, false, err
	}
	return m, true, nil
}

func (r *MatchRepository) ListByPlayer(ctx context.Context, playerID string) ([]match.Match, error) {
	// jsonb array containment matches the player on either side.
	query := `SELECT ` + matchSelectColumns + ` FROM matches
WHERE players @> $1::jsonb
ORDER BY start_time, id`

	var rows []matchTableModel
	if err := r.db.SelectContext(ctx, &rows, query, fmt.Sprintf(`[{"ID":%q}]`, playerID)); err != nil {
		return nil, fmt.Errorf("select matches by player: %w", err)
	}
	return rowsToMatches(rows)
}

func (r *MatchRepository) ListBySeason(ctx context.Context, year int) ([]match.Match, error) {
	query := `SELECT ` + matchSelectColumns + ` FROM matches
WHERE start_time LIKE $1
ORDER BY start_time, id`

	var rows []matchTableModel
	if err := r.db.SelectContext(ctx, &rows, query, fmt.Sprintf("%04d%%", year)); err != nil {
		return nil, fmt.Errorf("select matches by season: %w", err)
	}
	return rowsToMatches(rows)
}

func rowsToMatches(rows []matchTableModel) ([]match.Match, error) {
	out := make([]match.Match, 0, len(rows))
	for _, row := range rows {
		m, err := modelToMatch(row)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, nil
}
