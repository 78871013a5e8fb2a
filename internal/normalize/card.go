package normalize

import (
	"fmt"

	"github.com/riskibarqy/royale-stats/internal/domain/card"
)

// Card maps one catalog item.
func Card(item map[string]any) (card.Card, error) {
	out := card.Card{
		ID:                getInt64(item, "id"),
		Name:              getString(item, "name"),
		MaxLevel:          optionalInt(item, "maxLevel"),
		MaxEvolutionLevel: optionalInt(item, "maxEvolutionLevel"),
		ElixirCost:        optionalFloat(item, "elixirCost"),
		Rarity:            getString(item, "rarity"),
	}
	if err := check("card", out.ID, out); err != nil {
		return card.Card{}, err
	}
	return out, nil
}

// Cards maps the catalog payload, an object holding the card list under "items".
func Cards(raw []byte) ([]card.Card, error) {
	payload, err := Object(raw)
	if err != nil {
		return nil, err
	}
	items, err := getObjects(payload, "items")
	if err != nil {
		return nil, err
	}

	out := make([]card.Card, 0, len(items))
	for i, item := range items {
		c, err := Card(item)
		if err != nil {
			return nil, fmt.Errorf("items[%d]: %w", i, err)
		}
		out = append(out, c)
	}
	return out, nil
}
