package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/riskibarqy/royale-stats/internal/domain/player"
)

type PlayerRepository struct {
	mu          sync.RWMutex
	cards       *CardRepository
	nextID      int64
	items       map[string]player.Player
	decks       map[int64][]player.DeckCard
	collections map[int64][]player.CollectionCard
}

// NewPlayerRepository returns an empty store. When cards is set, deck and
// collection writes reject unknown card ids the way the SQL schema does.
func NewPlayerRepository(cards *CardRepository) *PlayerRepository {
	return &PlayerRepository{
		cards:       cards,
		items:       make(map[string]player.Player),
		decks:       make(map[int64][]player.DeckCard),
		collections: make(map[int64][]player.CollectionCard),
	}
}

func (r *PlayerRepository) Upsert(_ context.Context, p player.Player) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, ok := r.items[p.Tag]; ok {
		p.ID = existing.ID
	} else {
		r.nextID++
		p.ID = r.nextID
	}
	r.items[p.Tag] = clonePlayer(p)
	return p.ID, nil
}

func (r *PlayerRepository) GetByTag(_ context.Context, tag string) (player.Player, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.items[tag]
	if !ok {
		return player.Player{}, false, nil
	}
	return clonePlayer(p), true, nil
}

func (r *PlayerRepository) List(_ context.Context) ([]player.Player, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]player.Player, 0, len(r.items))
	for _, p := range r.items {
		out = append(out, clonePlayer(p))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Tag < out[j].Tag })
	return out, nil
}

func (r *PlayerRepository) ReplaceDeck(_ context.Context, playerID int64, cards []player.DeckCard) error {
	if len(cards) == 0 {
		return nil
	}
	if err := r.checkCards(len(cards), func(i int) int64 { return cards[i].CardID }); err != nil {
		return err
	}

	deck := make([]player.DeckCard, 0, len(cards))
	for _, c := range cards {
		c.PlayerID = playerID
		deck = append(deck, c)
	}
	sort.Slice(deck, func(i, j int) bool { return deck[i].Slot < deck[j].Slot })

	r.mu.Lock()
	r.decks[playerID] = deck
	r.mu.Unlock()
	return nil
}

func (r *PlayerRepository) ReplaceCollection(_ context.Context, playerID int64, cards []player.CollectionCard) error {
	if len(cards) == 0 {
		return nil
	}
	if err := r.checkCards(len(cards), func(i int) int64 { return cards[i].CardID }); err != nil {
		return err
	}

	collection := make([]player.CollectionCard, 0, len(cards))
	for _, c := range cards {
		c.PlayerID = playerID
		collection = append(collection, c)
	}
	sort.Slice(collection, func(i, j int) bool { return collection[i].CardID < collection[j].CardID })

	r.mu.Lock()
	r.collections[playerID] = collection
	r.mu.Unlock()
	return nil
}

func (r *PlayerRepository) ListDeck(_ context.Context, playerID int64) ([]player.DeckCard, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]player.DeckCard(nil), r.decks[playerID]...), nil
}

func (r *PlayerRepository) ListCollection(_ context.Context, playerID int64) ([]player.CollectionCard, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]player.CollectionCard(nil), r.collections[playerID]...), nil
}

func (r *PlayerRepository) checkCards(n int, cardID func(int) int64) error {
	if r.cards == nil {
		return nil
	}
	for i := 0; i < n; i++ {
		if id := cardID(i); !r.cards.exists(id) {
			return fmt.Errorf("card %d is not in the catalog", id)
		}
	}
	return nil
}

func clonePlayer(p player.Player) player.Player {
	if p.ClanTag != nil {
		tag := *p.ClanTag
		p.ClanTag = &tag
	}
	return p
}
