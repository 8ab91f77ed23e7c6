package arena

import (
	"math"

	"github.com/vovakirdan/flytype/internal/core"
)

// Nearest returns the index of the tile whose current position is closest
// to p. Ties go to the earliest tile. Returns -1 when tiles is empty.
func Nearest(tiles []Tile, p core.Vec2) int {
	best := -1
	bestDist := math.Inf(1)
	for i := range tiles {
		if d := tiles[i].Pos.Dist(p); d < bestDist {
			best = i
			bestDist = d
		}
	}
	return best
}
