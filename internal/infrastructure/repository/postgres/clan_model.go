package postgres

import (
	"database/sql"

	"github.com/riskibarqy/royale-stats/internal/domain/clan"
)

var clanColumns = []string{
	"tag", "name", "type", "description", "badge_id", "clan_score",
	"clan_war_trophies", "required_trophies", "donations_per_week", "members",
}

type clanTableModel struct {
	Tag              string        `db:"tag"`
	Name             string        `db:"name"`
	Type             string        `db:"type"`
	Description      string        `db:"description"`
	BadgeID          sql.NullInt64 `db:"badge_id"`
	ClanScore        sql.NullInt64 `db:"clan_score"`
	ClanWarTrophies  sql.NullInt64 `db:"clan_war_trophies"`
	RequiredTrophies sql.NullInt64 `db:"required_trophies"`
	DonationsPerWeek sql.NullInt64 `db:"donations_per_week"`
	MemberCount      sql.NullInt64 `db:"members"`
}

func clanToTableModel(c clan.Clan) clanTableModel {
	return clanTableModel{
		Tag:              c.Tag,
		Name:             c.Name,
		Type:             c.Type,
		Description:      c.Description,
		BadgeID:          nullInt64(c.BadgeID),
		ClanScore:        nullInt(c.ClanScore),
		ClanWarTrophies:  nullInt(c.ClanWarTrophies),
		RequiredTrophies: nullInt(c.RequiredTrophies),
		DonationsPerWeek: nullInt(c.DonationsPerWeek),
		MemberCount:      nullInt(c.MemberCount),
	}
}

func (m clanTableModel) toDomain() clan.Clan {
	return clan.Clan{
		Tag:              m.Tag,
		Name:             m.Name,
		Type:             m.Type,
		Description:      m.Description,
		BadgeID:          int64Ptr(m.BadgeID),
		ClanScore:        intPtr(m.ClanScore),
		ClanWarTrophies:  intPtr(m.ClanWarTrophies),
		RequiredTrophies: intPtr(m.RequiredTrophies),
		DonationsPerWeek: intPtr(m.DonationsPerWeek),
		MemberCount:      intPtr(m.MemberCount),
	}
}
