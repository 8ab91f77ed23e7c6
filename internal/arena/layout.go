package arena

import (
	"math"

	"github.com/vovakirdan/flytype/internal/config"
	"github.com/vovakirdan/flytype/internal/core"
)

// Slot is the deterministic base placement of one tile.
type Slot struct {
	Pos    core.Vec2 // Tile center
	Width  float64
	Height float64
}

// Layout arranges k tiles in a column-major grid that is right-aligned on
// the finish line. The result depends only on k and the configuration.
func Layout(k int, ac config.ArenaConfig, lc config.LayoutConfig) []Slot {
	if k <= 0 {
		return nil
	}

	rows := core.Min(k, lc.MaxRows)
	columns := (k + rows - 1) / rows
	finishX := ac.FinishX()

	var rowSpacing float64
	if rows > 1 {
		rowSpacing = (ac.Height - 2*lc.VerticalPadding) / float64(rows-1)
	}

	var columnSpacing float64
	if columns > 1 {
		columnSpacing = math.Min(lc.MaxColumnSpacing, (finishX-lc.GridLeft)/float64(columns-1))
	}
	startX := finishX - columnSpacing*float64(columns-1)

	width, height := lc.SingleTileWidth, lc.SingleTileHeight
	if columns > 1 {
		width = core.ClampF(columnSpacing*lc.TileWidthFactor, lc.MinTileWidth, lc.MaxTileWidth)
		height = lc.TileHeight
	}

	slots := make([]Slot, k)
	for i := range slots {
		column := i / rows
		row := i % rows

		y := ac.Height / 2 // A single row sits on the vertical center
		if rows > 1 {
			y = lc.VerticalPadding + float64(row)*rowSpacing
		}

		slots[i] = Slot{
			Pos:    core.V(startX+float64(column)*columnSpacing, y),
			Width:  width,
			Height: height,
		}
	}
	return slots
}
