package memory

import (
	"context"
	"testing"
	"time"

	"github.com/riskibarqy/royale-stats/internal/domain/battle"
	"github.com/riskibarqy/royale-stats/internal/domain/card"
	"github.com/riskibarqy/royale-stats/internal/domain/player"
	"github.com/stretchr/testify/require"
)

func TestPlayerRepository_UpsertKeepsID(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewPlayerRepository(nil)

	first, err := repo.Upsert(ctx, player.Player{Tag: "#A", Name: "one"})
	require.NoError(t, err)
	second, err := repo.Upsert(ctx, player.Player{Tag: "#A", Name: "two"})
	require.NoError(t, err)
	other, err := repo.Upsert(ctx, player.Player{Tag: "#B"})
	require.NoError(t, err)

	require.Equal(t, first, second)
	require.NotEqual(t, first, other)

	got, found, err := repo.GetByTag(ctx, "#A")
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, "two", got.Name)
}

func TestPlayerRepository_ReplaceDeckChecksCatalog(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	cards := NewCardRepository()
	require.NoError(t, cards.InsertMissing(ctx, []card.Card{card.Stub(1, "Knight")}))
	repo := NewPlayerRepository(cards)

	require.NoError(t, repo.ReplaceDeck(ctx, 1, []player.DeckCard{{CardID: 1, Slot: 1}}))
	require.Error(t, repo.ReplaceDeck(ctx, 1, []player.DeckCard{{CardID: 2, Slot: 1}}))
	require.NoError(t, repo.ReplaceDeck(ctx, 1, nil))

	deck, err := repo.ListDeck(ctx, 1)
	require.NoError(t, err)
	require.Len(t, deck, 1)
	require.Equal(t, int64(1), deck[0].CardID)
	require.Equal(t, int64(1), deck[0].PlayerID)
}

func TestBattleRepository_ListByPlayerNewestFirst(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewBattleRepository()
	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	require.NoError(t, repo.InsertMany(ctx, []battle.Log{
		{PlayerID: 1, BattleTime: base},
		{PlayerID: 1, BattleTime: base.Add(time.Minute)},
		{PlayerID: 2, BattleTime: base},
	}))

	logs, err := repo.ListByPlayer(ctx, 1, 1)
	require.NoError(t, err)
	require.Len(t, logs, 1)
	require.True(t, logs[0].BattleTime.Equal(base.Add(time.Minute)))
}

func TestPlayerRepository_ReplaceSetsLeaveNoResidue(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	cards := NewCardRepository()
	require.NoError(t, cards.InsertMissing(ctx, []card.Card{card.Stub(1, "Knight"), card.Stub(2, "Archers"), card.Stub(3, "Giant")}))
	repo := NewPlayerRepository(cards)

	playerID, err := repo.Upsert(ctx, player.Player{Tag: "#A"})
	require.NoError(t, err)

	require.NoError(t, repo.ReplaceDeck(ctx, playerID, []player.DeckCard{{CardID: 1, Slot: 1}, {CardID: 2, Slot: 2}}))
	require.NoError(t, repo.ReplaceDeck(ctx, playerID, []player.DeckCard{{CardID: 3, Slot: 1}}))
	require.NoError(t, repo.ReplaceDeck(ctx, playerID, nil))

	deck, err := repo.ListDeck(ctx, playerID)
	require.NoError(t, err)
	require.Len(t, deck, 1)
	require.Equal(t, int64(3), deck[0].CardID)

	require.NoError(t, repo.ReplaceCollection(ctx, playerID, []player.CollectionCard{{CardID: 1, Count: 10}, {CardID: 2, Count: 20}}))
	require.NoError(t, repo.ReplaceCollection(ctx, playerID, []player.CollectionCard{{CardID: 3, Count: 5}}))
	require.NoError(t, repo.ReplaceCollection(ctx, playerID, nil))

	collection, err := repo.ListCollection(ctx, playerID)
	require.NoError(t, err)
	require.Len(t, collection, 1)
	require.Equal(t, int64(3), collection[0].CardID)
	require.Equal(t, 5, collection[0].Count)
}

func TestCardRepository_UpsertManyRepeatedIDKeepsLastValues(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewCardRepository()
	require.NoError(t, repo.UpsertMany(ctx, []card.Card{{ID: 7, Name: "first"}, {ID: 7, Name: "second"}}))

	cards, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, cards, 1)
	require.Equal(t, "second", cards[0].Name)
}
