package battle

import "time"

type Result string

const (
	ResultWin  Result = "win"
	ResultLoss Result = "loss"
	ResultDraw Result = "draw"
)

// Log is one battle seen from the perspective of the player it was synced for.
type Log struct {
	ID               int64     `json:"id"`
	PlayerID         int64     `json:"player_id"`
	PlayerTag        string    `json:"player_tag" validate:"required"`
	BattleTime       time.Time `json:"battle_time" validate:"required"`
	Type             string    `json:"type"`
	ArenaID          int64     `json:"arena_id"`
	GameModeID       int64     `json:"game_mode_id"`
	GameModeName     string    `json:"game_mode_name"`
	StartingTrophies int       `json:"starting_trophies"`
	TrophyChange     int       `json:"trophy_change"`
	Crowns           int       `json:"crowns" validate:"gte=0"`
	Result           Result    `json:"result" validate:"oneof=win loss draw"`
	ElixirLeaked     float64   `json:"elixir_leaked" validate:"gte=0"`
}

// ResultFromCrowns compares own crowns with the opponent's.
func ResultFromCrowns(own, opponent int) Result {
	switch {
	case own > opponent:
		return ResultWin
	case own < opponent:
		return ResultLoss
	default:
		return ResultDraw
	}
}
