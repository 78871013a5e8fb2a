package postgres

import (
	"database/sql"

	"github.com/riskibarqy/royale-stats/internal/domain/player"
)

var playerColumns = []string{
	"id", "tag", "clan_tag", "player_name", "exp_level", "trophies",
	"best_trophies", "wins", "losses", "battle_counts", "favorite_card",
}

var deckColumns = []string{
	"player_id", "player_tag", "card_id", "card_name", "level", "star_level", "max_level", "slot",
}

var collectionColumns = []string{
	"player_id", "card_id", "card_name", "level", "star_level", "evolution_level", "count",
}

type playerTableModel struct {
	ID           int64          `db:"id,readonly"`
	Tag          string         `db:"tag"`
	ClanTag      sql.NullString `db:"clan_tag"`
	Name         string         `db:"player_name"`
	ExpLevel     int            `db:"exp_level"`
	Trophies     int            `db:"trophies"`
	BestTrophies int            `db:"best_trophies"`
	Wins         int            `db:"wins"`
	Losses       int            `db:"losses"`
	BattleCount  int            `db:"battle_counts"`
	FavoriteCard string         `db:"favorite_card"`
}

type deckCardTableModel struct {
	PlayerID  int64  `db:"player_id"`
	PlayerTag string `db:"player_tag"`
	CardID    int64  `db:"card_id"`
	CardName  string `db:"card_name"`
	Level     int    `db:"level"`
	StarLevel int    `db:"star_level"`
	MaxLevel  int    `db:"max_level"`
	Slot      int    `db:"slot"`
}

type collectionCardTableModel struct {
	PlayerID       int64  `db:"player_id"`
	CardID         int64  `db:"card_id"`
	CardName       string `db:"card_name"`
	Level          int    `db:"level"`
	StarLevel      int    `db:"star_level"`
	EvolutionLevel int    `db:"evolution_level"`
	Count          int    `db:"count"`
}

func playerToTableModel(p player.Player) playerTableModel {
	return playerTableModel{
		ID:           p.ID,
		Tag:          p.Tag,
		ClanTag:      nullString(p.ClanTag),
		Name:         p.Name,
		ExpLevel:     p.ExpLevel,
		Trophies:     p.Trophies,
		BestTrophies: p.BestTrophies,
		Wins:         p.Wins,
		Losses:       p.Losses,
		BattleCount:  p.BattleCount,
		FavoriteCard: p.FavoriteCard,
	}
}

func (m playerTableModel) toDomain() player.Player {
	return player.Player{
		ID:           m.ID,
		Tag:          m.Tag,
		ClanTag:      stringPtr(m.ClanTag),
		Name:         m.Name,
		ExpLevel:     m.ExpLevel,
		Trophies:     m.Trophies,
		BestTrophies: m.BestTrophies,
		Wins:         m.Wins,
		Losses:       m.Losses,
		BattleCount:  m.BattleCount,
		FavoriteCard: m.FavoriteCard,
	}
}

func deckCardToTableModel(playerID int64, c player.DeckCard) deckCardTableModel {
	return deckCardTableModel{
		PlayerID:  playerID,
		PlayerTag: c.PlayerTag,
		CardID:    c.CardID,
		CardName:  c.CardName,
		Level:     c.Level,
		StarLevel: c.StarLevel,
		MaxLevel:  c.MaxLevel,
		Slot:      c.Slot,
	}
}

func (m deckCardTableModel) toDomain() player.DeckCard {
	return player.DeckCard{
		PlayerID:  m.PlayerID,
		PlayerTag: m.PlayerTag,
		CardID:    m.CardID,
		CardName:  m.CardName,
		Level:     m.Level,
		StarLevel: m.StarLevel,
		MaxLevel:  m.MaxLevel,
		Slot:      m.Slot,
	}
}

func collectionCardToTableModel(playerID int64, c player.CollectionCard) collectionCardTableModel {
	return collectionCardTableModel{
		PlayerID:       playerID,
		CardID:         c.CardID,
		CardName:       c.CardName,
		Level:          c.Level,
		StarLevel:      c.StarLevel,
		EvolutionLevel: c.EvolutionLevel,
		Count:          c.Count,
	}
}

func (m collectionCardTableModel) toDomain() player.CollectionCard {
	return player.CollectionCard{
		PlayerID:       m.PlayerID,
		CardID:         m.CardID,
		CardName:       m.CardName,
		Level:          m.Level,
		StarLevel:      m.StarLevel,
		EvolutionLevel: m.EvolutionLevel,
		Count:          m.Count,
	}
}
