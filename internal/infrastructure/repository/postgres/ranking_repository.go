package postgres

import (
	"context"
	"fmt"

	"github.com/courtsight/courtsight/internal/domain/history"
	"github.com/jmoiron/sqlx"
)

type rankingTableModel struct {
	Date     string `db:"ranking_date"`
	Rank     int    `db:"rank"`
	PlayerID string `db:"player_id"`
	Points   int    `db:"points"`
}

type RankingRepository struct {
	db *sqlx.DB
}

func NewRankingRepository(db *sqlx.DB) *RankingRepository {
	return &RankingRepository{db: db}
}

const rankingUpsertQuery = `INSERT INTO rankings (ranking_date, rank, player_id, points)
VALUES (:ranking_date, :rank, :player_id, :points)
ON CONFLICT (ranking_date, player_id) DO UPDATE SET
	rank = EXCLUDED.rank,
	points = EXCLUDED.points`

func (r *RankingRepository) Upsert(ctx context.Context, rows []history.RankingRow) error {
	if len(rows) == 0 {
		return nil
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx upsert rankings: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	for _, row := range rows {
		model := rankingTableModel{
			Date:     row.Date,
			Rank:     row.Rank,
			PlayerID: row.PlayerID,
			Points:   row.Points,
		}
		if _, err := tx.NamedExecContext(ctx, rankingUpsertQuery, model); err != nil {
			return fmt.Errorf("upsert ranking player=%s date=%s: %w", row.PlayerID, row.Date, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit upsert rankings tx: %w", err)
	}
	return nil
}

func (r *RankingRepository) ListByDate(ctx context.Context, date string) ([]history.RankingRow, error) {
	query := `SELECT ranking_date, rank, player_id, points FROM rankings
WHERE ranking_date = $1 ORDER BY rank`

	var rows []rankingTableModel
	if err := r.db.SelectContext(ctx, &rows, query, date); err != nil {
		return nil, fmt.Errorf("select rankings by date: %w", err)
	}

	out := make([]history.RankingRow, 0, len(rows))
	for _, row := range rows {
		out = append(out, history.RankingRow{
			Date:     row.Date,
			Rank:     row.Rank,
			PlayerID: row.PlayerID,
			Points:   row.Points,
		})
	}
	return out, nil
}

func (r *RankingRepository) LatestDate(ctx context.Context) (string, bool, error) {
	query := `SELECT ranking_date FROM rankings ORDER BY ranking_date DESC LIMIT 1`

	var date string
	if err := r.db.GetContext(ctx, &date, query); err != nil {
		if isNotFound(err) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("select latest ranking date: %w", err)
	}
	return date, true, nil
}

func (r *RankingRepository) GetPlayerRank(ctx context.Context, playerID, date string) (history.RankingRow, bool, error) {
	query := `SELECT ranking_date, rank, player_id, points FROM rankings
WHERE player_id = $1 AND ranking_date = $2`

	var row rankingTableModel
	if err := r.db.GetContext(ctx, &row, query, playerID, date); err != nil {
		if isNotFound(err) {
			return history.RankingRow{}, false, nil
		}
		return history.RankingRow{}, false, fmt.Errorf("select player rank: %w", err)
	}
	return history.RankingRow{
		Date:     row.Date,
		Rank:     row.Rank,
		PlayerID: row.PlayerID,
		Points:   row.Points,
	}, true, nil
}
