package normalize

import (
	"testing"

	"github.com/riskibarqy/royale-stats/internal/domain/player"
	"github.com/stretchr/testify/require"
)

func samplePlayerPayload(t *testing.T) map[string]any {
	t.Helper()

	payload, err := Object([]byte(`{
		"tag": "#VC0PYJ9LJ",
		"name": "Ronin",
		"expLevel": 52,
		"trophies": 7420,
		"bestTrophies": 7611,
		"wins": 4120,
		"losses": 3980,
		"battleCount": 9021,
		"clan": {"tag": "#Q8RY9L", "name": "Night Owls"},
		"currentFavouriteCard": {"id": 26000000, "name": "Knight"},
		"currentDeck": [
			{"id": 26000000, "name": "Knight", "level": 14, "starLevel": 2, "maxLevel": 16},
			{"id": 28000000, "name": "Fireball", "level": 13, "maxLevel": 16},
			{"id": 26000001, "name": "Archers", "level": 14, "maxLevel": 16}
		],
		"cards": [
			{"id": 26000000, "name": "Knight", "level": 14, "starLevel": 2, "count": 120},
			{"id": 28000000, "name": "Fireball", "level": 13, "evolutionLevel": 1},
			{"id": 26000001, "name": "Archers", "level": 14, "count": 5},
			{"id": 26000002, "name": "Goblins", "level": 9}
		]
	}`))
	require.NoError(t, err)
	return payload
}

func TestPlayer_MapsProfile(t *testing.T) {
	t.Parallel()

	got, err := Player(samplePlayerPayload(t))
	require.NoError(t, err)
	require.Equal(t, "#VC0PYJ9LJ", got.Tag)
	require.NotNil(t, got.ClanTag)
	require.Equal(t, "#Q8RY9L", *got.ClanTag)
	require.Equal(t, "Ronin", got.Name)
	require.Equal(t, 52, got.ExpLevel)
	require.Equal(t, 7420, got.Trophies)
	require.Equal(t, 7611, got.BestTrophies)
	require.Equal(t, 4120, got.Wins)
	require.Equal(t, 3980, got.Losses)
	require.Equal(t, 9021, got.BattleCount)
	require.Equal(t, "Knight", got.FavoriteCard)
}

func TestPlayer_NoClanAndNoFavorite(t *testing.T) {
	t.Parallel()

	got, err := Player(map[string]any{"tag": "abc123", "name": "Solo"})
	require.NoError(t, err)
	require.Equal(t, "#ABC123", got.Tag)
	require.Nil(t, got.ClanTag)
	require.Equal(t, player.UnknownFavoriteCard, got.FavoriteCard)
}

func TestPlayer_MissingTagIsMalformed(t *testing.T) {
	t.Parallel()

	_, err := Player(map[string]any{"name": "Ghost"})
	require.ErrorIs(t, err, ErrMalformedData)
}

func TestDeckCards_SlotsFollowPosition(t *testing.T) {
	t.Parallel()

	got, err := DeckCards(samplePlayerPayload(t), 42)
	require.NoError(t, err)
	require.Len(t, got, 3)
	for i, c := range got {
		require.Equal(t, i+1, c.Slot)
		require.Equal(t, int64(42), c.PlayerID)
		require.Equal(t, "#VC0PYJ9LJ", c.PlayerTag)
	}
	require.Equal(t, 2, got[0].StarLevel)
	require.Equal(t, 0, got[1].StarLevel)
	require.Equal(t, int64(28000000), got[1].CardID)
}

func TestDeckCards_MissingDeckIsEmpty(t *testing.T) {
	t.Parallel()

	got, err := DeckCards(map[string]any{"tag": "#ABC"}, 1)
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestDeckCards_TooManyCards(t *testing.T) {
	t.Parallel()

	deck := make([]any, 0, 9)
	for i := 0; i < 9; i++ {
		deck = append(deck, map[string]any{"id": float64(26000000 + i), "name": "c"})
	}
	_, err := DeckCards(map[string]any{"tag": "#ABC", "currentDeck": deck}, 1)
	require.ErrorIs(t, err, ErrMalformedData)
}

func TestCollectionCards_ZeroDefaults(t *testing.T) {
	t.Parallel()

	got, err := CollectionCards(samplePlayerPayload(t), 7)
	require.NoError(t, err)
	require.Len(t, got, 4)

	goblins := got[3]
	require.Equal(t, int64(26000002), goblins.CardID)
	require.Equal(t, 0, goblins.StarLevel)
	require.Equal(t, 0, goblins.EvolutionLevel)
	require.Equal(t, 0, goblins.Count)
	require.Equal(t, 1, got[1].EvolutionLevel)
	require.Equal(t, 120, got[0].Count)
}

func TestReferencedCards_Deduplicates(t *testing.T) {
	t.Parallel()

	payload := samplePlayerPayload(t)
	deck, err := DeckCards(payload, 1)
	require.NoError(t, err)
	collection, err := CollectionCards(payload, 1)
	require.NoError(t, err)

	got := ReferencedCards(deck, collection)
	require.Len(t, got, 4)
	require.Equal(t, "Knight", got[0].Name)
	require.Nil(t, got[0].ElixirCost)
}
