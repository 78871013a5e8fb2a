package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/riskibarqy/royale-stats/internal/domain/clan"
)

type ClanRepository struct {
	mu    sync.RWMutex
	items map[string]clan.Clan
}

func NewClanRepository() *ClanRepository {
	return &ClanRepository{items: make(map[string]clan.Clan)}
}

func (r *ClanRepository) Upsert(_ context.Context, c clan.Clan) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items[c.Tag] = c
	return nil
}

func (r *ClanRepository) GetByTag(_ context.Context, tag string) (clan.Clan, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.items[tag]
	return c, ok, nil
}

func (r *ClanRepository) List(_ context.Context) ([]clan.Clan, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]clan.Clan, 0, len(r.items))
	for _, c := range r.items {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Tag < out[j].Tag })
	return out, nil
}
