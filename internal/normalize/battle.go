package normalize

import (
	"fmt"
	"time"

	"github.com/riskibarqy/royale-stats/internal/domain/battle"
	"github.com/riskibarqy/royale-stats/internal/domain/player"
)

// BattleTimeLayout is the provider's battle timestamp format, e.g. 20251130T131519.000Z.
const BattleTimeLayout = "20060102T150405.000Z"

// ParseBattleTime parses a provider battle timestamp as UTC.
func ParseBattleTime(value string) (time.Time, error) {
	parsed, err := time.Parse(BattleTimeLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: battle time %q: %v", ErrMalformedData, value, err)
	}
	return parsed.UTC(), nil
}

// BattleLogs maps a battle log payload for one player. Battles without a team
// entry for playerTag are skipped. The result compares that entry's crowns with
// the first opponent's.
func BattleLogs(battles []map[string]any, playerID int64, playerTag string) ([]battle.Log, error) {
	playerTag = player.NormalizeTag(playerTag)
	out := make([]battle.Log, 0, len(battles))

	for i, item := range battles {
		team, err := getObjects(item, "team")
		if err != nil {
			return nil, fmt.Errorf("battle %d: %w", i, err)
		}
		own := findMember(team, playerTag)
		if own == nil {
			continue
		}

		opponents, err := getObjects(item, "opponent")
		if err != nil {
			return nil, fmt.Errorf("battle %d: %w", i, err)
		}
		opponentCrowns := 0
		if len(opponents) > 0 {
			opponentCrowns = getInt(opponents[0], "crowns")
		}

		battleTime, err := ParseBattleTime(getString(item, "battleTime"))
		if err != nil {
			return nil, fmt.Errorf("battle %d: %w", i, err)
		}

		crowns := getInt(own, "crowns")
		arena := getMap(item, "arena")
		mode := getMap(item, "gameMode")
		row := battle.Log{
			PlayerID:         playerID,
			PlayerTag:        playerTag,
			BattleTime:       battleTime,
			Type:             getString(item, "type"),
			ArenaID:          getInt64(arena, "id"),
			GameModeID:       getInt64(mode, "id"),
			GameModeName:     getString(mode, "name"),
			StartingTrophies: getInt(own, "startingTrophies"),
			TrophyChange:     getInt(own, "trophyChange"),
			Crowns:           crowns,
			Result:           battle.ResultFromCrowns(crowns, opponentCrowns),
			ElixirLeaked:     getFloat(own, "elixirLeaked"),
		}
		if err := check("battle", i, row); err != nil {
			return nil, err
		}
		out = append(out, row)
	}

	return out, nil
}

func findMember(members []map[string]any, tag string) map[string]any {
	for _, member := range members {
		if player.NormalizeTag(getString(member, "tag")) == tag {
			return member
		}
	}
	return nil
}
