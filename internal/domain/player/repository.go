package player

import "context"

// Repository describes player, deck and collection persistence needs from use cases.
type Repository interface {
	// Upsert writes the player by tag and returns its surrogate id, which is
	// unchanged when the tag already existed.
	Upsert(ctx context.Context, p Player) (int64, error)
	GetByTag(ctx context.Context, tag string) (Player, bool, error)
	List(ctx context.Context) ([]Player, error)

	// ReplaceDeck swaps the stored deck for the given one. An empty deck is a no-op.
	ReplaceDeck(ctx context.Context, playerID int64, cards []DeckCard) error
	// ReplaceCollection swaps the stored collection for the given one. An empty collection is a no-op.
	ReplaceCollection(ctx context.Context, playerID int64, cards []CollectionCard) error
	ListDeck(ctx context.Context, playerID int64) ([]DeckCard, error)
	ListCollection(ctx context.Context, playerID int64) ([]CollectionCard, error)
}
