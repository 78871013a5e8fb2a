package postgres

import (
	"time"

	"github.com/riskibarqy/royale-stats/internal/domain/battle"
)

var battleColumns = []string{
	"id", "player_id", "player_tag", "battle_time", "type", "arena_id", "game_mode_id",
	"game_mode_name", "starting_trophies", "trophy_change", "crowns", "result", "elixir_leaked",
}

type battleLogTableModel struct {
	ID               int64     `db:"id,readonly"`
	PlayerID         int64     `db:"player_id"`
	PlayerTag        string    `db:"player_tag"`
	BattleTime       time.Time `db:"battle_time"`
	Type             string    `db:"type"`
	ArenaID          int64     `db:"arena_id"`
	GameModeID       int64     `db:"game_mode_id"`
	GameModeName     string    `db:"game_mode_name"`
	StartingTrophies int       `db:"starting_trophies"`
	TrophyChange     int       `db:"trophy_change"`
	Crowns           int       `db:"crowns"`
	Result           string    `db:"result"`
	ElixirLeaked     float64   `db:"elixir_leaked"`
}

func battleLogToTableModel(l battle.Log) battleLogTableModel {
	return battleLogTableModel{
		PlayerID:         l.PlayerID,
		PlayerTag:        l.PlayerTag,
		BattleTime:       l.BattleTime.UTC(),
		Type:             l.Type,
		ArenaID:          l.ArenaID,
		GameModeID:       l.GameModeID,
		GameModeName:     l.GameModeName,
		StartingTrophies: l.StartingTrophies,
		TrophyChange:     l.TrophyChange,
		Crowns:           l.Crowns,
		Result:           string(l.Result),
		ElixirLeaked:     l.ElixirLeaked,
	}
}

func (m battleLogTableModel) toDomain() battle.Log {
	return battle.Log{
		ID:               m.ID,
		PlayerID:         m.PlayerID,
		PlayerTag:        m.PlayerTag,
		BattleTime:       m.BattleTime.UTC(),
		Type:             m.Type,
		ArenaID:          m.ArenaID,
		GameModeID:       m.GameModeID,
		GameModeName:     m.GameModeName,
		StartingTrophies: m.StartingTrophies,
		TrophyChange:     m.TrophyChange,
		Crowns:           m.Crowns,
		Result:           battle.Result(m.Result),
		ElixirLeaked:     m.ElixirLeaked,
	}
}
