package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/riskibarqy/royale-stats/internal/domain/card"
)

type CardRepository struct {
	mu    sync.RWMutex
	items map[int64]card.Card
}

func NewCardRepository() *CardRepository {
	return &CardRepository{items: make(map[int64]card.Card)}
}

func (r *CardRepository) UpsertMany(_ context.Context, cards []card.Card) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, c := range cards {
		r.items[c.ID] = c
	}
	return nil
}

func (r *CardRepository) InsertMissing(_ context.Context, cards []card.Card) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, c := range cards {
		if _, ok := r.items[c.ID]; !ok {
			r.items[c.ID] = c
		}
	}
	return nil
}

func (r *CardRepository) List(_ context.Context) ([]card.Card, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]card.Card, 0, len(r.items))
	for _, c := range r.items {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *CardRepository) exists(id int64) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.items[id]
	return ok
}
