package player

import "strings"

const (
	DeckSize            = 8
	UnknownFavoriteCard = "Unknown"
	maxTagLength        = 16
)

// Player is a profile snapshot identified by its tag.
type Player struct {
	ID           int64   `json:"id"`
	Tag          string  `json:"tag" validate:"required,startswith=#"`
	ClanTag      *string `json:"clan_tag,omitempty" validate:"omitempty,startswith=#"`
	Name         string  `json:"name"`
	ExpLevel     int     `json:"exp_level" validate:"gte=0"`
	Trophies     int     `json:"trophies" validate:"gte=0"`
	BestTrophies int     `json:"best_trophies" validate:"gte=0"`
	Wins         int     `json:"wins" validate:"gte=0"`
	Losses       int     `json:"losses" validate:"gte=0"`
	BattleCount  int     `json:"battle_count" validate:"gte=0"`
	FavoriteCard string  `json:"favorite_card"`
}

// DeckCard is one slot of a player's current deck.
type DeckCard struct {
	PlayerID  int64  `json:"player_id"`
	PlayerTag string `json:"player_tag"`
	CardID    int64  `json:"card_id" validate:"required,gt=0"`
	CardName  string `json:"card_name"`
	Level     int    `json:"level" validate:"gte=0"`
	StarLevel int    `json:"star_level" validate:"gte=0"`
	MaxLevel  int    `json:"max_level" validate:"gte=0"`
	Slot      int    `json:"slot" validate:"min=1,max=8"`
}

// CollectionCard is one owned card in a player's collection.
type CollectionCard struct {
	PlayerID       int64  `json:"player_id"`
	CardID         int64  `json:"card_id" validate:"required,gt=0"`
	CardName       string `json:"card_name"`
	Level          int    `json:"level" validate:"gte=0"`
	StarLevel      int    `json:"star_level" validate:"gte=0"`
	EvolutionLevel int    `json:"evolution_level" validate:"gte=0"`
	Count          int    `json:"count" validate:"gte=0"`
}

// NormalizeTag trims, upper-cases and prefixes a tag with a single '#'.
func NormalizeTag(tag string) string {
	tag = strings.ToUpper(strings.TrimSpace(tag))
	tag = strings.TrimLeft(tag, "#")
	if tag == "" {
		return ""
	}
	return "#" + tag
}

// ValidTag reports whether tag is a normalized tag made of letters and digits.
func ValidTag(tag string) bool {
	if len(tag) < 2 || len(tag) > maxTagLength || tag[0] != '#' {
		return false
	}
	for _, r := range tag[1:] {
		if (r < 'A' || r > 'Z') && (r < '0' || r > '9') {
			return false
		}
	}
	return true
}
