package typing

import (
	"github.com/vovakirdan/flytype/internal/arena"
	"github.com/vovakirdan/flytype/internal/core"
)

// Reserved tile values. They cannot collide with a single typable rune.
const (
	ValueBackspace = "__backspace"
	ValueExit      = "__exit"
)

const (
	lowerLetters = "abcdefghijklmnopqrstuvwxyz"
	upperLetters = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	digits       = "0123456789"
	symbols      = "!@#$%^&*()-_=+[]{}|;:'\",.<>/?`~\\"
)

// Typable lists every character a round offers, in tile order before shuffling.
var Typable = []rune(" " + lowerLetters + upperLetters + digits + symbols)

// BackspaceCount is the number of Backspace tiles in every letter round.
var BackspaceCount = (len(Typable) + 1) / 2

// DescribeChar returns the display name of a target character.
func DescribeChar(r rune) string {
	switch r {
	case 0:
		return "-"
	case ' ':
		return "Space"
	case '\n':
		return "Enter"
	default:
		return string(r)
	}
}

// BuildLetterChoices returns the shuffled tile set for a round expecting
// expected. The expected tile is accented but otherwise ordinary.
func BuildLetterChoices(expected rune, rng core.Rand) []arena.Item {
	items := make([]arena.Item, 0, len(Typable)+BackspaceCount+1)
	for _, r := range Typable {
		item := arena.Item{Label: DescribeChar(r), Value: string(r)}
		if r == expected {
			item.Accent = core.ColorTileAccent
		}
		items = append(items, item)
	}
	for i := 0; i < BackspaceCount; i++ {
		items = append(items, arena.Item{Label: "Backspace", Value: ValueBackspace, Accent: core.ColorBackspace})
	}
	items = append(items, arena.Item{Label: "Exit", Value: ValueExit, Accent: core.ColorExit})

	core.Shuffle(rng, len(items), func(i, j int) {
		items[i], items[j] = items[j], items[i]
	})
	return items
}
