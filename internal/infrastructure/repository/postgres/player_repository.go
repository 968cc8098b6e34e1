package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/courtsight/courtsight/internal/domain/history"
	"github.com/jmoiron/sqlx"
)

type playerTableModel struct {
	ID        string         `db:"id"`
	FirstName string         `db:"first_name"`
	LastName  string         `db:"last_name"`
	Hand      sql.NullString `db:"hand"`
	BirthDate sql.NullString `db:"birth_date"`
	Country   sql.NullString `db:"country"`
}

type PlayerRepository struct {
	db *sqlx.DB
}

func NewPlayerRepository(db *sqlx.DB) *PlayerRepository {
	return &PlayerRepository{db: db}
}

const playerUpsertQuery = `INSERT INTO players (id, first_name, last_name, hand, birth_date, country)
VALUES (:id, :first_name, :last_name, :hand, :birth_date, :country)
ON CONFLICT (id) DO UPDATE SET
	first_name = EXCLUDED.first_name,
	last_name = EXCLUDED.last_name,
	hand = EXCLUDED.hand,
	birth_date = EXCLUDED.birth_date,
	country = EXCLUDED.country,
	updated_at = NOW()`

func (r *PlayerRepository) Upsert(ctx context.Context, players []history.RegistryPlayer) error {
	if len(players) == 0 {
		return nil
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx upsert players: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	for _, p := range players {
		model := playerTableModel{
			ID:        p.ID,
			FirstName: p.FirstName,
			LastName:  p.LastName,
			Hand:      nullableString(p.Hand),
			BirthDate: nullableString(p.BirthDate),
			Country:   nullableString(p.Country),
		}
		if _, err := tx.NamedExecContext(ctx, playerUpsertQuery, model); err != nil {
			return fmt.Errorf("upsert player id=%s: %w", p.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit upsert players tx: %w", err)
	}
	return nil
}

func (r *PlayerRepository) GetByID(ctx context.Context, id string) (history.RegistryPlayer, bool, error) {
	query := `SELECT id, first_name, last_name, hand, birth_date, country FROM players WHERE id = $1`

	var row playerTableModel
	if err := r.db.GetContext(ctx, &row, query, id); err != nil {
		if isNotFound(err) {
			return history.RegistryPlayer{}, false, nil
		}
		return history.RegistryPlayer{}, false, fmt.Errorf("select player by id: %w", err)
	}
	return modelToPlayer(row), true, nil
}

func (r *PlayerRepository) List(ctx context.Context) ([]history.RegistryPlayer, error) {
	query := `SELECT id, first_name, last_name, hand, birth_date, country FROM players ORDER BY id`

	var rows []playerTableModel
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("select players: %w", err)
	}

	out := make([]history.RegistryPlayer, 0, len(rows))
	for _, row := range rows {
		out = append(out, modelToPlayer(row))
	}
	return out, nil
}

func modelToPlayer(row playerTableModel) history.RegistryPlayer {
	return history.RegistryPlayer{
		ID:        row.ID,
		FirstName: row.FirstName,
		LastName:  row.LastName,
		Hand:      nullStringValue(row.Hand),
		BirthDate: nullStringValue(row.BirthDate),
		Country:   nullStringValue(row.Country),
	}
}
