package normalize

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClan_MapsProfile(t *testing.T) {
	t.Parallel()

	payload, err := Object([]byte(`{
		"tag": "#Q8RY9L",
		"name": "Night Owls",
		"type": "inviteOnly",
		"badgeId": 16000108,
		"clanScore": 61234,
		"clanWarTrophies": 2100,
		"requiredTrophies": 5000,
		"donationsPerWeek": 1840,
		"members": 3,
		"memberList": [
			{"tag": "#VC0PYJ9LJ", "name": "Ronin"},
			{"tag": "#abc", "name": "Two"},
			{"tag": "#VC0PYJ9LJ", "name": "Dup"},
			{"name": "No tag"}
		]
	}`))
	require.NoError(t, err)

	got, err := Clan(payload)
	require.NoError(t, err)
	require.Equal(t, "#Q8RY9L", got.Tag)
	require.Equal(t, "Night Owls", got.Name)
	require.Equal(t, "", got.Description)
	require.NotNil(t, got.BadgeID)
	require.Equal(t, int64(16000108), *got.BadgeID)
	require.NotNil(t, got.MemberCount)
	require.Equal(t, 3, *got.MemberCount)

	tags, err := ClanMemberTags(payload)
	require.NoError(t, err)
	require.Equal(t, []string{"#VC0PYJ9LJ", "#ABC"}, tags)
}

func TestClan_MissingNumbersAreAbsent(t *testing.T) {
	t.Parallel()

	got, err := Clan(map[string]any{"tag": "#Q8RY9L", "name": "Night Owls", "description": "hi"})
	require.NoError(t, err)
	require.Equal(t, "hi", got.Description)
	require.Nil(t, got.ClanScore)
	require.Nil(t, got.ClanWarTrophies)
	require.Nil(t, got.RequiredTrophies)
	require.Nil(t, got.DonationsPerWeek)
	require.Nil(t, got.MemberCount)
}

func TestClan_MissingTagIsMalformed(t *testing.T) {
	t.Parallel()

	_, err := Clan(map[string]any{"name": "x"})
	require.ErrorIs(t, err, ErrMalformedData)
}
