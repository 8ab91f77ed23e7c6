package tui

import (
	"time"

	"github.com/vovakirdan/flytype/internal/config"
	"github.com/vovakirdan/flytype/internal/core"
)

// HoldTracker turns key presses into held keys. Terminals send no key-up
// events, only the first press and then autorepeats, so a key counts as held
// until its hold window passes without another press.
//
// Confirm gets its own, usually shorter, first window so quick double taps
// still count as two presses.
type HoldTracker struct {
	initial time.Duration
	confirm time.Duration
	repeat  time.Duration
	until   map[core.Action]time.Time
}

// NewHoldTracker creates a tracker with the hold windows from ic.
func NewHoldTracker(ic config.InputConfig) *HoldTracker {
	return &HoldTracker{
		initial: ic.InitialHold(),
		confirm: ic.ConfirmHold(),
		repeat:  ic.RepeatHold(),
		until:   make(map[core.Action]time.Time),
	}
}

// Press records a press of a at now. It reports whether this is a fresh
// press rather than an autorepeat of a key already held.
func (h *HoldTracker) Press(a core.Action, now time.Time) bool {
	fresh := !h.Held(a, now)
	switch {
	case fresh && a == core.ActionConfirm:
		h.until[a] = now.Add(h.confirm)
	case fresh:
		h.until[a] = now.Add(h.initial)
	default:
		h.until[a] = now.Add(h.repeat)
	}
	return fresh
}

// Held reports whether a is still held at now.
func (h *HoldTracker) Held(a core.Action, now time.Time) bool {
	deadline, ok := h.until[a]
	return ok && now.Before(deadline)
}

// Controls returns the directional state at now.
func (h *HoldTracker) Controls(now time.Time) core.Controls {
	var c core.Controls
	for _, a := range []core.Action{core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight} {
		c.Set(a, h.Held(a, now))
	}
	return c
}

// ReleaseDirections forgets every held direction.
func (h *HoldTracker) ReleaseDirections() {
	delete(h.until, core.ActionUp)
	delete(h.until, core.ActionDown)
	delete(h.until, core.ActionLeft)
	delete(h.until, core.ActionRight)
}
