package clan

import "context"

// Repository describes clan persistence needs from use cases.
type Repository interface {
	Upsert(ctx context.Context, c Clan) error
	GetByTag(ctx context.Context, tag string) (Clan, bool, error)
	List(ctx context.Context) ([]Clan, error)
}
