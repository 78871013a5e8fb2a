package battle

import "context"

// Repository describes battle log persistence needs from use cases.
type Repository interface {
	// InsertMany appends logs without deduplicating against stored rows.
	InsertMany(ctx context.Context, logs []Log) error
	// ListByPlayer returns the newest logs first.
	ListByPlayer(ctx context.Context, playerID int64, limit int) ([]Log, error)
}
