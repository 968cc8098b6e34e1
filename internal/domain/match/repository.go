package match

import "context"

// Repository stores canonical matches produced by archive ingestion.
type Repository interface {
	Upsert(ctx context.Context, matches []Match) error
	GetByID(ctx context.Context, id string) (Match, bool, error)
	ListByPlayer(ctx context.Context, playerID string) ([]Match, error)
	ListBySeason(ctx context.Context, year int) ([]Match, error)
}
