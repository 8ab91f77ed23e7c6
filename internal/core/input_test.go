package core

import "testing"

func TestControlsSet(t *testing.T) {
	var c Controls
	if c != (Controls{}) {
		t.Fatal("zero Controls should have nothing held")
	}

	c.Set(ActionUp, true)
	c.Set(ActionRight, true)
	if !c.Up || !c.Right || c.Down || c.Left {
		t.Errorf("Set() produced %+v, expected up and right", c)
	}

	c.Set(ActionConfirm, true)
	if c != (Controls{Up: true, Right: true}) {
		t.Errorf("non-directional action changed controls: %+v", c)
	}

	c.Set(ActionUp, false)
	c.Set(ActionRight, false)
	if c != (Controls{}) {
		t.Errorf("all directions released, got %+v", c)
	}
}

func TestActionString(t *testing.T) {
	tests := []struct {
		a        Action
		expected string
	}{
		{ActionUp, "Up"},
		{ActionConfirm, "Confirm"},
		{ActionQuit, "Quit"},
		{Action(99), "Unknown"},
	}
	for _, tc := range tests {
		if got := tc.a.String(); got != tc.expected {
			t.Errorf("Action(%d).String() = %q, expected %q", tc.a, got, tc.expected)
		}
	}
}

func TestShufflePermutes(t *testing.T) {
	items := []int{0, 1, 2, 3, 4, 5, 6, 7}
	Shuffle(NewRand(7), len(items), func(i, j int) {
		items[i], items[j] = items[j], items[i]
	})

	seen := make(map[int]bool)
	for _, v := range items {
		seen[v] = true
	}
	if len(seen) != 8 {
		t.Errorf("Shuffle lost elements: %v", items)
	}
}
