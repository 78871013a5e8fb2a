// Package cache wraps read-heavy repositories with a process-local store.
// Writes go straight through and drop the keys they affect.
package cache

import (
	"context"

	"github.com/riskibarqy/royale-stats/internal/domain/card"
	"github.com/riskibarqy/royale-stats/internal/domain/clan"
	basecache "github.com/riskibarqy/royale-stats/internal/platform/cache"
)

const (
	cardListKey   = "card:list"
	clanListKey   = "clan:list"
	clanTagPrefix = "clan:tag:"
)

type CardRepository struct {
	next  card.Repository
	cache *basecache.Store
}

func NewCardRepository(next card.Repository, cache *basecache.Store) *CardRepository {
	return &CardRepository{next: next, cache: cache}
}

func (r *CardRepository) UpsertMany(ctx context.Context, cards []card.Card) error {
	if err := r.next.UpsertMany(ctx, cards); err != nil {
		return err
	}
	r.cache.Delete(ctx, cardListKey)
	return nil
}

func (r *CardRepository) InsertMissing(ctx context.Context, cards []card.Card) error {
	if err := r.next.InsertMissing(ctx, cards); err != nil {
		return err
	}
	r.cache.Delete(ctx, cardListKey)
	return nil
}

func (r *CardRepository) List(ctx context.Context) ([]card.Card, error) {
	v, err := r.cache.GetOrLoad(ctx, cardListKey, func(ctx context.Context) (any, error) {
		items, err := r.next.List(ctx)
		if err != nil {
			return nil, err
		}
		return append([]card.Card(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]card.Card)
	return append([]card.Card(nil), items...), nil
}

type ClanRepository struct {
	next  clan.Repository
	cache *basecache.Store
}

func NewClanRepository(next clan.Repository, cache *basecache.Store) *ClanRepository {
	return &ClanRepository{next: next, cache: cache}
}

func (r *ClanRepository) Upsert(ctx context.Context, c clan.Clan) error {
	if err := r.next.Upsert(ctx, c); err != nil {
		return err
	}
	r.cache.Delete(ctx, clanListKey)
	r.cache.Delete(ctx, clanTagPrefix+c.Tag)
	return nil
}

func (r *ClanRepository) GetByTag(ctx context.Context, tag string) (clan.Clan, bool, error) {
	v, err := r.cache.GetOrLoad(ctx, clanTagPrefix+tag, func(ctx context.Context) (any, error) {
		item, exists, err := r.next.GetByTag(ctx, tag)
		if err != nil {
			return nil, err
		}
		return cachedClan{value: item, exists: exists}, nil
	})
	if err != nil {
		return clan.Clan{}, false, err
	}

	cached, _ := v.(cachedClan)
	return cached.value, cached.exists, nil
}

func (r *ClanRepository) List(ctx context.Context) ([]clan.Clan, error) {
	v, err := r.cache.GetOrLoad(ctx, clanListKey, func(ctx context.Context) (any, error) {
		items, err := r.next.List(ctx)
		if err != nil {
			return nil, err
		}
		return append([]clan.Clan(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]clan.Clan)
	return append([]clan.Clan(nil), items...), nil
}

type cachedClan struct {
	value  clan.Clan
	exists bool
}
