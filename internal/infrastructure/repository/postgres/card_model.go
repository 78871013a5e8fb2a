package postgres

import (
	"database/sql"

	"github.com/riskibarqy/royale-stats/internal/domain/card"
)

var cardColumns = []string{"id", "name", "max_level", "max_evolution_level", "elixir_cost", "rarity"}

type cardTableModel struct {
	ID                int64           `db:"id"`
	Name              string          `db:"name"`
	MaxLevel          sql.NullInt64   `db:"max_level"`
	MaxEvolutionLevel sql.NullInt64   `db:"max_evolution_level"`
	ElixirCost        sql.NullFloat64 `db:"elixir_cost"`
	Rarity            string          `db:"rarity"`
}

func cardToTableModel(c card.Card) cardTableModel {
	return cardTableModel{
		ID:                c.ID,
		Name:              c.Name,
		MaxLevel:          nullInt(c.MaxLevel),
		MaxEvolutionLevel: nullInt(c.MaxEvolutionLevel),
		ElixirCost:        nullFloat(c.ElixirCost),
		Rarity:            c.Rarity,
	}
}

func (m cardTableModel) toDomain() card.Card {
	return card.Card{
		ID:                m.ID,
		Name:              m.Name,
		MaxLevel:          intPtr(m.MaxLevel),
		MaxEvolutionLevel: intPtr(m.MaxEvolutionLevel),
		ElixirCost:        floatPtr(m.ElixirCost),
		Rarity:            m.Rarity,
	}
}
