package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTileForProgress(t *testing.T) {
	cases := []struct {
		name     string
		color    Color
		progress int
		want     string
	}{
		{"home", ColorRed, -1, PositionHome},
		{"red start", ColorRed, 0, "tile-0"},
		{"blue start offset", ColorBlue, 0, "tile-13"},
		{"yellow wraps the loop", ColorYellow, 20, "tile-7"},
		{"green last main tile", ColorGreen, MainPathLength - 1, "tile-25"},
		{"safe lane entry", ColorRed, MainPathLength, "red-safe-0"},
		{"safe lane end", ColorBlue, FinishProgress - 1, "blue-safe-5"},
		{"finished", ColorGreen, FinishProgress, PositionFinished},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, TileForProgress(tc.color, tc.progress))
		})
	}
}

func TestIsStartTile(t *testing.T) {
	for color, idx := range StartIndex {
		assert.True(t, IsStartTile(MainTileID(idx)), "color=%s", color)
	}
	assert.False(t, IsStartTile("tile-1"))
	assert.False(t, IsStartTile("red-safe-0"))
	assert.False(t, IsStartTile(PositionHome))
}

func TestSpecialTileLayout(t *testing.T) {
	// Start tiles must never carry effects, or entering on a six would
	// trigger a prompt before the token even travelled.
	for idx := range SpecialTiles {
		assert.False(t, IsStartTile(MainTileID(idx)), "tile-%d", idx)
		assert.GreaterOrEqual(t, idx, 0)
		assert.Less(t, idx, MainPathLength)
	}

	fx, ok := SpecialTileAt(MainTileID(10))
	require.True(t, ok)
	assert.Equal(t, EffectFreeze, fx)

	_, ok = SpecialTileAt("tile-1")
	assert.False(t, ok)
	_, ok = SpecialTileAt(SafeTileID(ColorRed, 2))
	assert.False(t, ok)
	_, ok = SpecialTileAt(PositionFinished)
	assert.False(t, ok)
}

func TestDiceRange(t *testing.T) {
	d := NewDice(42)
	for i := 0; i < 1000; i++ {
		v := d.Roll()
		require.GreaterOrEqual(t, v, DiceMin)
		require.LessOrEqual(t, v, DiceMax)
	}
}

func TestDiceDeterministicSeed(t *testing.T) {
	a, b := NewDice(7), NewDice(7)
	for i := 0; i < 50; i++ {
		assert.Equal(t, a.Roll(), b.Roll())
	}
}
