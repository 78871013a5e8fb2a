package card

// Card is a catalog entry keyed by the provider's stable card id.
type Card struct {
	ID                int64    `json:"id" validate:"required,gt=0"`
	Name              string   `json:"name" validate:"required"`
	MaxLevel          *int     `json:"max_level,omitempty" validate:"omitempty,gte=0"`
	MaxEvolutionLevel *int     `json:"max_evolution_level,omitempty" validate:"omitempty,gte=0"`
	ElixirCost        *float64 `json:"elixir_cost,omitempty" validate:"omitempty,gte=0"`
	Rarity            string   `json:"rarity"`
}

// Stub builds a placeholder catalog row for a card referenced before the catalog was synced.
func Stub(id int64, name string) Card {
	return Card{ID: id, Name: name}
}
