package normalize

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCard_OptionalNumbers(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		value any
		set   bool
	}{
		{name: "missing", set: false},
		{name: "null", value: nil, set: true},
		{name: "string marker", value: "NaN", set: true},
		{name: "nan", value: math.NaN(), set: true},
		{name: "infinite", value: math.Inf(1), set: true},
		{name: "object", value: map[string]any{"v": 1}, set: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			item := map[string]any{"id": float64(26000000), "name": "Knight", "rarity": "Common"}
			if tc.set {
				item["elixirCost"] = tc.value
				item["maxEvolutionLevel"] = tc.value
			}

			got, err := Card(item)
			require.NoError(t, err)
			require.Nil(t, got.ElixirCost)
			require.Nil(t, got.MaxEvolutionLevel)
			require.Nil(t, got.MaxLevel)
		})
	}
}

func TestCard_NumericFieldsPassThrough(t *testing.T) {
	t.Parallel()

	got, err := Card(map[string]any{
		"id":                float64(26000000),
		"name":              "Knight",
		"maxLevel":          float64(16),
		"maxEvolutionLevel": float64(1),
		"elixirCost":        float64(3),
		"rarity":            "Common",
	})
	require.NoError(t, err)
	require.Equal(t, int64(26000000), got.ID)
	require.NotNil(t, got.MaxLevel)
	require.Equal(t, 16, *got.MaxLevel)
	require.NotNil(t, got.MaxEvolutionLevel)
	require.Equal(t, 1, *got.MaxEvolutionLevel)
	require.NotNil(t, got.ElixirCost)
	require.InDelta(t, 3.0, *got.ElixirCost, 0.0001)
	require.Equal(t, "Common", got.Rarity)
}

func TestCard_MissingIDIsMalformed(t *testing.T) {
	t.Parallel()

	_, err := Card(map[string]any{"name": "Knight"})
	if !errors.Is(err, ErrMalformedData) {
		t.Fatalf("expected ErrMalformedData, got %v", err)
	}
}

func TestCards_DecodesItems(t *testing.T) {
	t.Parallel()

	raw := []byte(`{"items":[
		{"id":26000000,"name":"Knight","maxLevel":16,"maxEvolutionLevel":1,"elixirCost":3,"rarity":"Common"},
		{"id":28000000,"name":"Fireball","maxLevel":16,"rarity":"Rare"}
	],"supportItems":[]}`)

	got, err := Cards(raw)
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.Equal(t, "Fireball", got[1].Name)
	require.Nil(t, got[1].ElixirCost)
}

func TestCards_RejectsNonObject(t *testing.T) {
	t.Parallel()

	_, err := Cards([]byte(`[1,2,3]`))
	require.ErrorIs(t, err, ErrMalformedData)
}
