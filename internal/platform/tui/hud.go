package tui

import (
	"fmt"

	"github.com/vovakirdan/flytype/internal/core"
	"github.com/vovakirdan/flytype/internal/typing"
)

// hudHeight is the number of rows above the arena.
const hudHeight = 3

// drawStats writes the live readout on row y.
func drawStats(dst *core.Screen, y int, s typing.Stats, expected rune) {
	line := fmt.Sprintf(" %s   WPM %d   Accuracy %d%%   Typed %d", s.ElapsedDisplay, s.WPM, s.Accuracy, s.TypedCount)
	dst.DrawTextColored(0, y, line, core.ColorWhite)

	next := "Next: " + typing.DescribeChar(expected) + " "
	dst.DrawTextColored(dst.Width()-len([]rune(next)), y, next, core.ColorCursor)
}

// drawSnippet writes a window of the target around the cursor on row y,
// coloured by judgement.
func drawSnippet(dst *core.Screen, y int, target []rune, judgements []typing.Judgement, cursor int) {
	width := dst.Width() - 4
	if width <= 0 {
		return
	}

	start := core.Max(0, cursor-width/3)
	end := core.Min(len(target), start+width)
	x := 2
	for i := start; i < end; i++ {
		r := target[i]
		color := core.ColorPending
		switch judgements[i] {
		case typing.Correct:
			color = core.ColorCorrect
		case typing.Incorrect:
			color = core.ColorIncorrect
		}
		if i == cursor {
			color = core.ColorCursor
			if r == ' ' {
				r = '_'
			}
		}
		dst.SetColored(x, y, r, color)
		x++
	}
	if cursor >= len(target) {
		dst.SetColored(x, y, '_', core.ColorCursor)
	}
}

// drawRule draws a horizontal separator on row y.
func drawRule(dst *core.Screen, y int) {
	for x := 0; x < dst.Width(); x++ {
		dst.SetColored(x, y, '─', core.ColorPending)
	}
}
