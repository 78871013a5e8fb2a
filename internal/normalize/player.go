package normalize

import (
	"fmt"

	"github.com/riskibarqy/royale-stats/internal/domain/card"
	"github.com/riskibarqy/royale-stats/internal/domain/player"
)

// Player maps a profile payload. The favorite card is stored by display name.
func Player(data map[string]any) (player.Player, error) {
	tag := player.NormalizeTag(getString(data, "tag"))
	if tag == "" {
		return player.Player{}, fmt.Errorf("%w: player tag is required", ErrMalformedData)
	}

	out := player.Player{
		Tag:          tag,
		Name:         getString(data, "name"),
		ExpLevel:     getInt(data, "expLevel"),
		Trophies:     getInt(data, "trophies"),
		BestTrophies: getInt(data, "bestTrophies"),
		Wins:         getInt(data, "wins"),
		Losses:       getInt(data, "losses"),
		BattleCount:  getInt(data, "battleCount"),
		FavoriteCard: getString(getMap(data, "currentFavouriteCard"), "name"),
	}
	if clanTag := player.NormalizeTag(getString(getMap(data, "clan"), "tag")); clanTag != "" {
		out.ClanTag = &clanTag
	}
	if out.FavoriteCard == "" {
		out.FavoriteCard = player.UnknownFavoriteCard
	}

	if err := check("player", out.Tag, out); err != nil {
		return player.Player{}, err
	}
	return out, nil
}

// DeckCards maps the current deck. Slots follow array position, starting at 1.
func DeckCards(data map[string]any, playerID int64) ([]player.DeckCard, error) {
	entries, err := getObjects(data, "currentDeck")
	if err != nil {
		return nil, err
	}
	if len(entries) > player.DeckSize {
		return nil, fmt.Errorf("%w: deck has %d cards, max %d", ErrMalformedData, len(entries), player.DeckSize)
	}

	tag := player.NormalizeTag(getString(data, "tag"))
	out := make([]player.DeckCard, 0, len(entries))
	for i, entry := range entries {
		row := player.DeckCard{
			PlayerID:  playerID,
			PlayerTag: tag,
			CardID:    getInt64(entry, "id"),
			CardName:  getString(entry, "name"),
			Level:     getInt(entry, "level"),
			StarLevel: getInt(entry, "starLevel"),
			MaxLevel:  getInt(entry, "maxLevel"),
			Slot:      i + 1,
		}
		if err := check("deck slot", row.Slot, row); err != nil {
			return nil, err
		}
		out = append(out, row)
	}
	return out, nil
}

// CollectionCards maps every owned card of the profile.
func CollectionCards(data map[string]any, playerID int64) ([]player.CollectionCard, error) {
	entries, err := getObjects(data, "cards")
	if err != nil {
		return nil, err
	}

	out := make([]player.CollectionCard, 0, len(entries))
	for _, entry := range entries {
		row := player.CollectionCard{
			PlayerID:       playerID,
			CardID:         getInt64(entry, "id"),
			CardName:       getString(entry, "name"),
			Level:          getInt(entry, "level"),
			StarLevel:      getInt(entry, "starLevel"),
			EvolutionLevel: getInt(entry, "evolutionLevel"),
			Count:          getInt(entry, "count"),
		}
		if err := check("collection card", row.CardID, row); err != nil {
			return nil, err
		}
		out = append(out, row)
	}
	return out, nil
}

// ReferencedCards returns one stub per distinct card referenced by a deck or collection.
func ReferencedCards(deck []player.DeckCard, collection []player.CollectionCard) []card.Card {
	seen := make(map[int64]struct{}, len(deck)+len(collection))
	out := make([]card.Card, 0, len(deck)+len(collection))
	add := func(id int64, name string) {
		if _, ok := seen[id]; ok {
			return
		}
		seen[id] = struct{}{}
		if name == "" {
			name = fmt.Sprintf("card-%d", id)
		}
		out = append(out, card.Stub(id, name))
	}
	for _, c := range deck {
		add(c.CardID, c.CardName)
	}
	for _, c := range collection {
		add(c.CardID, c.CardName)
	}
	return out
}
