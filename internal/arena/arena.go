// Package arena implements the flight selection arena: a bird steered through
// drifting labeled tiles, where a confirm picks the tile nearest the bird.
//
// The arena is driven explicitly. The platform calls Advance with the frame
// delta and forwards input through SetControls, Confirm and ReleaseConfirm.
// Nothing in here reads a clock or a global input state.
package arena

import (
	"time"

	"github.com/vovakirdan/flytype/internal/config"
	"github.com/vovakirdan/flytype/internal/core"
)

// Item is one selectable choice handed to Start.
type Item struct {
	Label  string
	Value  string
	Accent core.Color // Render hint only; ColorDefault draws a plain tile
}

// Tile is an Item placed in the arena for the current session.
type Tile struct {
	Item
	Base   core.Vec2 // Layout position; exchanged on reshuffle
	Pos    core.Vec2 // Base plus wobble, used for resolution
	Width  float64
	Height float64
	Wobble Wobble
}

// State is the session lifecycle state.
type State int

const (
	StateIdle State = iota
	StateActive
	StateResolved
	StateCancelled
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StateActive:
		return "Active"
	case StateResolved:
		return "Resolved"
	case StateCancelled:
		return "Cancelled"
	default:
		return "Unknown"
	}
}

// Arena owns the bird, the control state and at most one session.
// It is not safe for concurrent use; the platform drives it from one goroutine.
type Arena struct {
	cfg config.Config
	rng core.Rand

	bird        Bird
	controls    core.Controls
	confirmHeld bool

	state        State
	tiles        []Tile
	title        string
	onComplete   func(value string)
	clock        float64 // Session time in seconds
	lastSwap     float64
	swapInterval float64
	round        int
}

// New creates an idle arena.
func New(cfg config.Config, rng core.Rand) *Arena {
	a := &Arena{cfg: cfg, rng: rng}
	a.resetBird()
	return a
}

// Start opens a session over items. onComplete receives the chosen value
// exactly once, unless the session is cancelled first.
// Panics if items is empty or a session is already active.
func (a *Arena) Start(items []Item, title string, onComplete func(value string)) {
	if len(items) == 0 {
		panic("arena: Start called with no items")
	}
	if a.state == StateActive {
		panic("arena: Start called while a session is active")
	}

	slots := Layout(len(items), a.cfg.Arena, a.cfg.Layout)
	a.tiles = make([]Tile, len(items))
	for i, item := range items {
		a.tiles[i] = Tile{
			Item:   item,
			Base:   slots[i].Pos,
			Pos:    slots[i].Pos,
			Width:  slots[i].Width,
			Height: slots[i].Height,
			Wobble: NewWobble(a.rng, a.cfg.Wobble),
		}
	}

	a.title = title
	a.onComplete = onComplete
	a.resetBird()
	a.controls = core.Controls{}
	a.clock = 0
	a.lastSwap = 0
	a.swapInterval = randomInterval(a.rng, a.cfg.Swap.InitialMinMs, a.cfg.Swap.InitialRangeMs)
	a.state = StateActive
	a.round++
}

// Advance runs one simulation step covering d of elapsed time.
// It does nothing unless a session is active.
func (a *Arena) Advance(d time.Duration) {
	if a.state != StateActive || d <= 0 {
		return
	}

	a.clock += d.Seconds()
	StepBird(&a.bird, a.controls, Ticks(d), a.cfg.Arena, a.cfg.Physics)
	UpdateTiles(a.tiles, a.clock, a.cfg.Wobble)

	if a.clock-a.lastSwap > a.swapInterval {
		SwapBases(a.tiles, a.rng)
		a.swapInterval = randomInterval(a.rng, a.cfg.Swap.MinMs, a.cfg.Swap.RangeMs)
		a.lastSwap = a.clock
	}
}

// SetControls replaces the directional input read by the next Advance.
// Ignored while no session is active.
func (a *Arena) SetControls(c core.Controls) {
	if a.state != StateActive {
		return
	}
	a.controls = c
}

// Confirm resolves the session to the tile nearest the bird. It is edge
// triggered: after one confirm, further calls are ignored until
// ReleaseConfirm. Returns true if a selection was made.
func (a *Arena) Confirm() bool {
	if a.state != StateActive || a.confirmHeld {
		return false
	}
	a.confirmHeld = true

	chosen := a.tiles[Nearest(a.tiles, a.bird.Pos)].Value
	done := a.onComplete
	a.end(StateResolved)
	if done != nil {
		done(chosen)
	}
	// The callback may already have opened the next session
	if a.state == StateResolved {
		a.state = StateIdle
	}
	return true
}

// ReleaseConfirm re-arms Confirm. The latch outlives sessions, so a confirm
// still held when the next session opens does not select in it.
func (a *Arena) ReleaseConfirm() {
	a.confirmHeld = false
}

// Cancel ends the active session without calling onComplete.
func (a *Arena) Cancel() {
	if a.state != StateActive {
		return
	}
	a.end(StateCancelled)
	a.state = StateIdle
}

// end tears the session down and leaves the arena in state s.
func (a *Arena) end(s State) {
	a.state = s
	a.onComplete = nil
	a.tiles = nil
	a.controls = core.Controls{}
	a.resetBird()
}

func (a *Arena) resetBird() {
	a.bird = Bird{
		Pos: core.V(a.cfg.Arena.BirdStartX, a.cfg.Arena.Height/2),
	}
}

// State returns the lifecycle state.
func (a *Arena) State() State {
	return a.state
}

// Active reports whether a session is running.
func (a *Arena) Active() bool {
	return a.state == StateActive
}

// Bird returns the current bird pose.
func (a *Arena) Bird() Bird {
	return a.bird
}

// Tiles returns the tiles of the active session. Callers must not modify them.
func (a *Arena) Tiles() []Tile {
	return a.tiles
}

// Title returns the prompt of the current session.
func (a *Arena) Title() string {
	return a.title
}

// Round counts sessions started so far. The platform uses it to notice a
// new session and drop input state carried over from the previous one.
func (a *Arena) Round() int {
	return a.round
}

// Config returns the arena configuration.
func (a *Arena) Config() config.Config {
	return a.cfg
}
