package usecase

import "context"

// RoyaleAPI fetches raw JSON payloads from the game API. Tags are passed
// normalized, with their leading '#'.
type RoyaleAPI interface {
	FetchCards(ctx context.Context) ([]byte, error)
	FetchPlayer(ctx context.Context, tag string) ([]byte, error)
	FetchBattleLog(ctx context.Context, tag string) ([]byte, error)
	FetchClan(ctx context.Context, tag string) ([]byte, error)
}
