package tui

import (
	"testing"
	"time"

	"github.com/vovakirdan/flytype/internal/config"
	"github.com/vovakirdan/flytype/internal/core"
)

func newTestTracker() *HoldTracker {
	return NewHoldTracker(config.InputConfig{InitialHoldMs: 500, RepeatHoldMs: 90, ConfirmHoldMs: 250})
}

func TestHoldTrackerPress(t *testing.T) {
	t0 := time.Unix(1000, 0)

	tests := []struct {
		name      string
		presses   []time.Duration
		at        time.Duration
		wantFresh bool
		wantHeld  bool
	}{
		{"first press", nil, 0, true, true},
		{"autorepeat inside initial window", []time.Duration{0}, 400 * time.Millisecond, false, true},
		{"press after initial window", []time.Duration{0}, 600 * time.Millisecond, true, true},
		{"repeat extends by repeat window", []time.Duration{0, 400 * time.Millisecond}, 480 * time.Millisecond, false, true},
		{"gap after repeat releases", []time.Duration{0, 400 * time.Millisecond}, 500 * time.Millisecond, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestTracker()
			for _, p := range tt.presses {
				h.Press(core.ActionUp, t0.Add(p))
			}
			now := t0.Add(tt.at)
			if got := h.Press(core.ActionUp, now); got != tt.wantFresh {
				t.Errorf("Press() = %v, expected %v", got, tt.wantFresh)
			}
			if got := h.Held(core.ActionUp, now); got != tt.wantHeld {
				t.Errorf("Held() = %v, expected %v", got, tt.wantHeld)
			}
		})
	}
}

func TestHoldTrackerConfirmTaps(t *testing.T) {
	t0 := time.Unix(1000, 0)

	tests := []struct {
		name      string
		gap       time.Duration
		wantFresh bool
	}{
		{"autorepeat", 30 * time.Millisecond, false},
		{"quick second tap", 300 * time.Millisecond, true},
		{"slow second tap", 800 * time.Millisecond, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestTracker()
			if !h.Press(core.ActionConfirm, t0) {
				t.Fatalf("first confirm was not fresh")
			}
			if got := h.Press(core.ActionConfirm, t0.Add(tt.gap)); got != tt.wantFresh {
				t.Errorf("Press() after %v = %v, expected %v", tt.gap, got, tt.wantFresh)
			}
		})
	}
}

func TestHoldTrackerExpires(t *testing.T) {
	t0 := time.Unix(1000, 0)
	h := newTestTracker()

	h.Press(core.ActionUp, t0)
	if !h.Held(core.ActionUp, t0.Add(499*time.Millisecond)) {
		t.Errorf("Held() before initial window = false, expected true")
	}
	if h.Held(core.ActionUp, t0.Add(500*time.Millisecond)) {
		t.Errorf("Held() at end of initial window = true, expected false")
	}
	if h.Held(core.ActionDown, t0) {
		t.Errorf("Held() for unpressed key = true, expected false")
	}
}

func TestHoldTrackerControls(t *testing.T) {
	t0 := time.Unix(1000, 0)
	h := newTestTracker()

	h.Press(core.ActionUp, t0)
	h.Press(core.ActionRight, t0)
	h.Press(core.ActionConfirm, t0)

	c := h.Controls(t0)
	if !c.Up || !c.Right || c.Down || c.Left {
		t.Errorf("Controls() = %+v, expected up and right only", c)
	}

	h.ReleaseDirections()
	if c := h.Controls(t0); c != (core.Controls{}) {
		t.Errorf("Controls() after release = %+v, expected none", c)
	}
	if !h.Held(core.ActionConfirm, t0) {
		t.Errorf("ReleaseDirections() released confirm")
	}
}
