package history

import "context"

// PlayerRepository stores the player registry.
type PlayerRepository interface {
	Upsert(ctx context.Context, players []RegistryPlayer) error
	GetByID(ctx context.Context, id string) (RegistryPlayer, bool, error)
	List(ctx context.Context) ([]RegistryPlayer, error)
}

// RankingRepository stores dated ranking snapshots.
type RankingRepository interface {
	Upsert(ctx context.Context, rows []RankingRow) error
	ListByDate(ctx context.Context, date string) ([]RankingRow, error)
	LatestDate(ctx context.Context) (string, bool, error)
	GetPlayerRank(ctx context.Context, playerID, date string) (RankingRow, bool, error)
}
