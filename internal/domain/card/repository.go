package card

import "context"

// Repository describes card catalog persistence needs from use cases.
type Repository interface {
	// UpsertMany overwrites existing cards by id and inserts the rest, atomically.
	UpsertMany(ctx context.Context, cards []Card) error
	// InsertMissing inserts only the cards whose id is not stored yet.
	InsertMissing(ctx context.Context, cards []Card) error
	List(ctx context.Context) ([]Card, error)
}
