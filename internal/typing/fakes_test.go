package typing

import (
	"time"

	"github.com/vovakirdan/flytype/internal/arena"
)

// fakeSelector records rounds and lets tests resolve them by hand.
type fakeSelector struct {
	active    bool
	starts    int
	cancels   int
	items     []arena.Item
	title     string
	callbacks []func(string)
}

func (s *fakeSelector) Start(items []arena.Item, title string, onComplete func(string)) {
	if s.active {
		panic("fakeSelector: Start while active")
	}
	s.active = true
	s.starts++
	s.items = items
	s.title = title
	s.callbacks = append(s.callbacks, onComplete)
}

func (s *fakeSelector) Cancel() {
	s.active = false
	s.cancels++
}

func (s *fakeSelector) Active() bool {
	return s.active
}

// resolve completes the latest round with value, as the arena would.
func (s *fakeSelector) resolve(value string) {
	s.resolveRound(len(s.callbacks)-1, value)
}

// resolveRound fires the callback of round i, even if it is stale.
func (s *fakeSelector) resolveRound(i int, value string) {
	s.active = false
	s.callbacks[i](value)
}

type fixedGenerator string

func (g fixedGenerator) Generate(Options, LimitMode, int) string {
	return string(g)
}

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	return c.now
}

func (c *fakeClock) advance(d time.Duration) {
	c.now = c.now.Add(d)
}

// zeroRand always returns zero.
type zeroRand struct{}

func (zeroRand) Float64() float64 { return 0 }
func (zeroRand) Intn(int) int     { return 0 }

func newTestOrchestrator(target string, hooks Hooks) (*Orchestrator, *fakeSelector, *fakeClock) {
	sel := &fakeSelector{}
	clock := &fakeClock{now: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)}
	o := New(sel, fixedGenerator(target), zeroRand{}, WithClock(clock), WithHooks(hooks))
	return o, sel, clock
}
