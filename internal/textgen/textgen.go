// Package textgen builds target texts from a fixed word corpus.
package textgen

import (
	"strings"

	"github.com/vovakirdan/flytype/internal/config"
	"github.com/vovakirdan/flytype/internal/core"
	"github.com/vovakirdan/flytype/internal/typing"
)

// Words is the base corpus.
var Words = []string{
	"galaxy", "python", "neptune", "krypton", "starlit", "future", "vector",
	"glimmer", "quantum", "nebula", "marble", "rocket", "bridge", "signal",
	"aurora", "horizon", "plasma", "binary", "asteroid", "circuit", "raindrop",
	"violet", "spectrum", "cipher", "lantern", "saffron", "pulse", "turbine",
	"composer", "resonant", "crystal", "swift", "magnet", "luminous", "cascade",
	"venture", "ember", "glyph", "meteor",
}

const (
	punctuationMarks = ".,!?;:"
	numberChars      = "0123456789"

	capitalizeChance  = 0.5
	numberChance      = 0.25
	punctuationChance = 0.3
)

// Generator produces target texts. It satisfies typing.Generator.
type Generator struct {
	rng core.Rand
	rc  config.RunConfig
}

// New creates a generator drawing from rng.
func New(rng core.Rand, rc config.RunConfig) *Generator {
	return &Generator{rng: rng, rc: rc}
}

// WordCount returns how many corpus words a run gets. Time runs get enough
// words that nobody reaches the end before the clock does.
func (g *Generator) WordCount(mode typing.LimitMode, value int) int {
	if mode == typing.LimitTime {
		return core.Max(g.rc.TimeModeMinWords, value*g.rc.TimeModeWordsPerSecond)
	}
	return core.Max(1, value)
}

// Generate returns words decorated per opts, with every non-space typable
// character inserted once as its own token, joined by single spaces.
func (g *Generator) Generate(opts typing.Options, mode typing.LimitMode, value int) string {
	count := g.WordCount(mode, value)
	tokens := make([]string, 0, count+len(typing.Typable))

	for i := 0; i < count; i++ {
		tokens = append(tokens, g.word(opts))
	}

	for _, r := range typing.Typable {
		if r == ' ' {
			continue
		}
		at := g.rng.Intn(len(tokens) + 1)
		tokens = append(tokens, "")
		copy(tokens[at+1:], tokens[at:])
		tokens[at] = string(r)
	}

	return strings.Join(tokens, " ")
}

func (g *Generator) word(opts typing.Options) string {
	w := Words[g.rng.Intn(len(Words))]

	if opts.Capitalization && g.rng.Float64() > capitalizeChance {
		w = strings.ToUpper(w[:1]) + w[1:]
	}
	if opts.Numbers && g.rng.Float64() < numberChance {
		n := string(numberChars[g.rng.Intn(len(numberChars))])
		if g.rng.Float64() > 0.5 {
			w += n
		} else {
			w = n + w
		}
	}
	if opts.Punctuation && g.rng.Float64() < punctuationChance {
		w += string(punctuationMarks[g.rng.Intn(len(punctuationMarks))])
	}
	return w
}
