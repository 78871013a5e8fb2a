package clan

// Clan is a clan profile identified by its tag.
type Clan struct {
	Tag              string `json:"tag" validate:"required,startswith=#"`
	Name             string `json:"name" validate:"required"`
	Type             string `json:"type"`
	Description      string `json:"description"`
	BadgeID          *int64 `json:"badge_id,omitempty"`
	ClanScore        *int   `json:"clan_score,omitempty"`
	ClanWarTrophies  *int   `json:"clan_war_trophies,omitempty"`
	RequiredTrophies *int   `json:"required_trophies,omitempty"`
	DonationsPerWeek *int   `json:"donations_per_week,omitempty"`
	MemberCount      *int   `json:"member_count,omitempty"`
}
