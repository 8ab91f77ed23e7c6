package arena

import (
	"math"
	"unicode/utf8"

	"github.com/vovakirdan/flytype/internal/core"
)

const (
	finishChar = '┊'
	birdBody   = '●'
	birdBeak   = '▶'
	finishHint = "Align to choose"
)

// shortLabels are drawn when a tile label does not fit its cell width.
var shortLabels = map[string]string{
	"Space":     "␣",
	"Backspace": "⌫",
	"Exit":      "✕",
}

// Render draws the arena into view on dst. Arena units are scaled to the
// cell grid; nothing but the finish line is drawn while idle.
func (a *Arena) Render(dst *core.Screen, view core.Rect) {
	if view.W <= 0 || view.H <= 0 {
		return
	}
	p := projection{view: view, w: a.cfg.Arena.Width, h: a.cfg.Arena.Height}

	finishX, _ := p.cell(core.V(a.cfg.Arena.FinishX(), 0))
	dst.DrawVLine(finishX, view.Y, view.H, finishChar, core.ColorFinish, true)
	hintX := core.Clamp(finishX-utf8.RuneCountInString(finishHint)/2, view.X, view.Right()-1)
	dst.DrawTextColored(hintX, view.Bottom()-1, finishHint, core.ColorPending)

	if a.state != StateActive {
		return
	}

	if a.title != "" {
		titleX := view.X + (view.W-utf8.RuneCountInString(a.title))/2
		dst.DrawTextColored(titleX, view.Y, a.title, core.ColorCursor)
	}

	for _, t := range a.tiles {
		a.drawTile(dst, p, t)
	}

	bx, by := p.cell(a.bird.Pos)
	dst.SetColored(bx, by, birdBody, core.ColorBird)
	dst.SetColored(bx+1, by, birdBeak, core.ColorBird)
}

func (a *Arena) drawTile(dst *core.Screen, p projection, t Tile) {
	color := t.Accent
	if color == core.ColorDefault {
		color = core.ColorTile
	}

	cx, cy := p.cell(t.Pos)
	cellsW := p.width(t.Width)
	cellsH := p.height(t.Height)

	// Large tiles get a frame when there is room for one
	if cellsH >= 3 && cellsW >= 4 {
		label := fitLabel(t.Label, cellsW-2)
		box := core.NewRect(cx-cellsW/2, cy-cellsH/2, cellsW, cellsH)
		// The finish line must not show through the tile
		dst.DrawRect(core.NewRect(box.X+1, box.Y+1, box.W-2, box.H-2), ' ')
		dst.DrawBox(box, color)
		dst.DrawTextColored(cx-utf8.RuneCountInString(label)/2, cy, label, color)
		return
	}

	label := fitLabel(t.Label, core.Max(cellsW, 1))
	dst.DrawTextColored(cx-utf8.RuneCountInString(label)/2, cy, label, color)
}

// fitLabel returns label or a shorter stand-in that fits within n cells.
func fitLabel(label string, n int) string {
	if utf8.RuneCountInString(label) <= n {
		return label
	}
	if short, ok := shortLabels[label]; ok {
		return short
	}
	r := []rune(label)
	return string(r[:core.Max(n, 1)])
}

// projection maps arena units onto a cell rectangle.
type projection struct {
	view core.Rect
	w, h float64
}

func (p projection) cell(v core.Vec2) (int, int) {
	x := p.view.X + int(math.Floor(v.X/p.w*float64(p.view.W)))
	y := p.view.Y + int(math.Floor(v.Y/p.h*float64(p.view.H)))
	return core.Clamp(x, p.view.X, p.view.Right()-1), core.Clamp(y, p.view.Y, p.view.Bottom()-1)
}

func (p projection) width(units float64) int {
	return int(math.Round(units / p.w * float64(p.view.W)))
}

func (p projection) height(units float64) int {
	return int(math.Round(units / p.h * float64(p.view.H)))
}
