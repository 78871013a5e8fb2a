package normalize

import (
	"fmt"

	"github.com/riskibarqy/royale-stats/internal/domain/clan"
	"github.com/riskibarqy/royale-stats/internal/domain/player"
)

func Clan(data map[string]any) (clan.Clan, error) {
	tag := player.NormalizeTag(getString(data, "tag"))
	if tag == "" {
		return clan.Clan{}, fmt.Errorf("%w: clan tag is required", ErrMalformedData)
	}

	out := clan.Clan{
		Tag:              tag,
		Name:             getString(data, "name"),
		Type:             getString(data, "type"),
		Description:      getString(data, "description"),
		BadgeID:          optionalInt64(data, "badgeId"),
		ClanScore:        optionalInt(data, "clanScore"),
		ClanWarTrophies:  optionalInt(data, "clanWarTrophies"),
		RequiredTrophies: optionalInt(data, "requiredTrophies"),
		DonationsPerWeek: optionalInt(data, "donationsPerWeek"),
		MemberCount:      optionalInt(data, "members"),
	}
	if err := check("clan", out.Tag, out); err != nil {
		return clan.Clan{}, err
	}
	return out, nil
}

// ClanMemberTags lists the distinct member tags of a clan payload in roster order.
func ClanMemberTags(data map[string]any) ([]string, error) {
	members, err := getObjects(data, "memberList")
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{}, len(members))
	out := make([]string, 0, len(members))
	for _, member := range members {
		tag := player.NormalizeTag(getString(member, "tag"))
		if tag == "" {
			continue
		}
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		out = append(out, tag)
	}
	return out, nil
}
