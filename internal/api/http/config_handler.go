package http

import (
	"net/http"
	"sort"

	"github.com/gin-gonic/gin"

	"velvet-ludo/internal/game"
)

// @Summary Get board configuration
// @Description Returns path lengths, start tiles and the special-tile layout
// @Tags Config
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /config/tiles [get]
func TilesConfigHandler() gin.HandlerFunc {
	type specialTile struct {
		TileID string          `json:"tileId"`
		Index  int             `json:"index"`
		Effect game.EffectType `json:"effect"`
	}
	return func(c *gin.Context) {
		tiles := make([]specialTile, 0, len(game.SpecialTiles))
		for idx, fx := range game.SpecialTiles {
			tiles = append(tiles, specialTile{TileID: game.MainTileID(idx), Index: idx, Effect: fx})
		}
		sort.Slice(tiles, func(i, j int) bool { return tiles[i].Index < tiles[j].Index })

		starts := gin.H{}
		for color, idx := range game.StartIndex {
			starts[string(color)] = game.MainTileID(idx)
		}

		c.JSON(http.StatusOK, gin.H{
			"mainPathLength":  game.MainPathLength,
			"safePathLength":  game.SafePathLength,
			"tokensPerPlayer": game.TokensPerPlayer,
			"startTiles":      starts,
			"specialTiles":    tiles,
		})
	}
}
