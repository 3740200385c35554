package game

import "fmt"

// StartIndex maps each color to its entry tile on the shared 52-tile loop.
var StartIndex = map[Color]int{
	ColorRed:    0,
	ColorBlue:   13,
	ColorGreen:  26,
	ColorYellow: 39,
}

// SpecialTiles maps main-path tile indexes to their effect. Start tiles are
// never special; the layout spreads each effect across all four quadrants.
var SpecialTiles = map[int]EffectType{
	4:  EffectBond,
	7:  EffectHeat,
	10: EffectFreeze,
	17: EffectBond,
	21: EffectHeat,
	24: EffectFreeze,
	30: EffectBond,
	34: EffectHeat,
	37: EffectFreeze,
	43: EffectBond,
	47: EffectHeat,
	50: EffectFreeze,
}

// MainTileID is the id of the shared loop tile at the given absolute index.
func MainTileID(index int) string {
	return fmt.Sprintf("tile-%d", index)
}

// SafeTileID is the id of a color-private safe lane tile.
func SafeTileID(color Color, offset int) string {
	return fmt.Sprintf("%s-safe-%d", color, offset)
}

// mainIndexFor converts a color-relative progress (0..MainPathLength-1) to
// the absolute index on the shared loop.
func mainIndexFor(color Color, progress int) int {
	return (StartIndex[color] + progress) % MainPathLength
}

// TileForProgress maps a pathProgress to the tile a token of the given color
// occupies: the wrapped main loop first, then the private safe lane, then
// "finished" at exactly FinishProgress.
func TileForProgress(color Color, progress int) string {
	switch {
	case progress < 0:
		return PositionHome
	case progress < MainPathLength:
		return MainTileID(mainIndexFor(color, progress))
	case progress < FinishProgress:
		return SafeTileID(color, progress-MainPathLength)
	default:
		return PositionFinished
	}
}

// IsStartTile reports whether the tile is one of the four fixed entry tiles.
// Start tiles are safe havens: tokens there can never be captured.
func IsStartTile(tileID string) bool {
	for _, idx := range StartIndex {
		if MainTileID(idx) == tileID {
			return true
		}
	}
	return false
}

// SpecialTileAt returns the effect configured for a main-path tile, if any.
// Safe lane tiles, "home" and "finished" carry no effects.
func SpecialTileAt(tileID string) (EffectType, bool) {
	for idx, fx := range SpecialTiles {
		if MainTileID(idx) == tileID {
			return fx, true
		}
	}
	return "", false
}
