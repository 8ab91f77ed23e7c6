package arena

import (
	"testing"
	"time"

	"github.com/vovakirdan/flytype/internal/config"
	"github.com/vovakirdan/flytype/internal/core"
)

func TestTicks(t *testing.T) {
	tests := []struct {
		d        time.Duration
		expected float64
	}{
		{time.Second / 60, 1},
		{time.Second / 30, 2},
		{time.Second, 60},
		{0, 0},
	}

	for _, tc := range tests {
		if got := Ticks(tc.d); !near(got, tc.expected) {
			t.Errorf("Ticks(%v) = %v, expected %v", tc.d, got, tc.expected)
		}
	}
}

func TestHorizontalSpeed(t *testing.T) {
	p := config.Default().Physics

	tests := []struct {
		name     string
		in       core.Controls
		expected float64
	}{
		{"cruise", core.Controls{}, 3.6},
		{"forward", core.Controls{Right: true}, 16.2},
		{"reverse", core.Controls{Left: true}, -12.6},
		{"both cancel", core.Controls{Left: true, Right: true}, 3.6},
		{"vertical only", core.Controls{Up: true}, 3.6},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := HorizontalSpeed(tc.in, p); !near(got, tc.expected) {
				t.Errorf("HorizontalSpeed() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestStepBird(t *testing.T) {
	cfg := config.Default()

	tests := []struct {
		name   string
		start  Bird
		in     core.Controls
		expect Bird
	}{
		{
			name:   "gravity only",
			start:  Bird{Pos: core.V(80, 270)},
			expect: Bird{Pos: core.V(83.6, 270.18), VY: 0.18},
		},
		{
			name:   "climb",
			start:  Bird{Pos: core.V(80, 270)},
			in:     core.Controls{Up: true},
			expect: Bird{Pos: core.V(83.6, 269.352), VY: -0.648},
		},
		{
			name:   "dive",
			start:  Bird{Pos: core.V(80, 270)},
			in:     core.Controls{Down: true},
			expect: Bird{Pos: core.V(83.6, 271.008), VY: 1.008},
		},
		{
			name:   "velocity clamp",
			start:  Bird{Pos: core.V(80, 270), VY: 20},
			expect: Bird{Pos: core.V(83.6, 277.5), VY: 7.5},
		},
		{
			name:   "bottom clamp",
			start:  Bird{Pos: core.V(80, 514), VY: 7},
			expect: Bird{Pos: core.V(83.6, 516), VY: 6.62},
		},
		{
			name:   "wrap at finish",
			start:  Bird{Pos: core.V(830, 270), VY: 1},
			in:     core.Controls{Right: true},
			expect: Bird{Pos: core.V(61, 271.1), VY: 1.1 * 0.4},
		},
		{
			name:   "pinned at start",
			start:  Bird{Pos: core.V(65, 270), VY: 1},
			in:     core.Controls{Left: true},
			expect: Bird{Pos: core.V(60, 271.1), VY: 1.1 * 0.6},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := tc.start
			StepBird(&b, tc.in, 1, cfg.Arena, cfg.Physics)
			if !near(b.Pos.X, tc.expect.Pos.X) || !near(b.Pos.Y, tc.expect.Pos.Y) {
				t.Errorf("Pos = %v, expected %v", b.Pos, tc.expect.Pos)
			}
			if !near(b.VY, tc.expect.VY) {
				t.Errorf("VY = %v, expected %v", b.VY, tc.expect.VY)
			}
		})
	}
}

func TestStepBirdStaysInBounds(t *testing.T) {
	cfg := config.Default()
	b := Bird{Pos: core.V(80, 270)}

	inputs := []core.Controls{{Up: true}, {Down: true, Right: true}, {Left: true}, {}}
	for i := 0; i < 2000; i++ {
		StepBird(&b, inputs[(i/90)%len(inputs)], 1.3, cfg.Arena, cfg.Physics)

		if b.Pos.Y < 24 || b.Pos.Y > 516 {
			t.Fatalf("step %d: y = %v outside [24, 516]", i, b.Pos.Y)
		}
		if b.Pos.X < 60 || b.Pos.X >= 840 {
			t.Fatalf("step %d: x = %v outside [60, 840)", i, b.Pos.X)
		}
		if b.VY < -7.5 || b.VY > 7.5 {
			t.Fatalf("step %d: vy = %v outside [-7.5, 7.5]", i, b.VY)
		}
	}
}

func TestWobbleOffset(t *testing.T) {
	wc := config.Default().Wobble
	w := NewWobble(&scriptedRand{floats: []float64{0, 0.5, 1}}, wc)

	if w.Phase != 0 || !near(w.Speed, 0.85) || !near(w.Radius, 12) {
		t.Fatalf("NewWobble() = %+v, expected phase 0, speed 0.85, radius 12", w)
	}

	// At t=0 with zero phase: sin(0)=0, cos(0)=1
	if got := w.Offset(0, wc); !near(got.X, 0) || !near(got.Y, 12*0.6) {
		t.Errorf("Offset(0) = %v, expected (0, 7.2)", got)
	}

	// Stateless: the same time gives the same offset
	if a, b := w.Offset(3.7, wc), w.Offset(3.7, wc); a != b {
		t.Errorf("Offset not deterministic: %v vs %v", a, b)
	}
}

func TestWobbleBounded(t *testing.T) {
	wc := config.Default().Wobble
	w := Wobble{Phase: 1.3, Speed: 1.1, Radius: 9}

	for i := 0; i < 500; i++ {
		off := w.Offset(float64(i)*0.07, wc)
		if off.X < -9-1e-9 || off.X > 9+1e-9 {
			t.Fatalf("x offset %v exceeds radius", off.X)
		}
		if off.Y < -5.4-1e-9 || off.Y > 5.4+1e-9 {
			t.Fatalf("y offset %v exceeds radius*0.6", off.Y)
		}
	}
}

func TestSwapBasesPreservesPositions(t *testing.T) {
	tiles := []Tile{
		{Item: Item{Value: "a"}, Base: core.V(1, 1)},
		{Item: Item{Value: "b"}, Base: core.V(2, 2)},
		{Item: Item{Value: "c"}, Base: core.V(3, 3)},
		{Item: Item{Value: "d"}, Base: core.V(4, 4)},
	}
	before := map[core.Vec2]bool{}
	for _, tile := range tiles {
		before[tile.Base] = true
	}

	rng := &scriptedRand{ints: []int{2, 2, 0, 3}}
	a, b, ok := SwapBases(tiles, rng)
	if !ok || a != 2 || b != 3 {
		t.Fatalf("SwapBases() = %d, %d, %v, expected 2, 3, true", a, b, ok)
	}
	if tiles[2].Value != "c" || tiles[2].Base != core.V(4, 4) {
		t.Errorf("tile c = %+v, expected base (4, 4)", tiles[2])
	}
	if tiles[3].Value != "d" || tiles[3].Base != core.V(3, 3) {
		t.Errorf("tile d = %+v, expected base (3, 3)", tiles[3])
	}

	SwapBases(tiles, rng)
	after := map[core.Vec2]bool{}
	for _, tile := range tiles {
		after[tile.Base] = true
	}
	if len(after) != len(before) {
		t.Fatalf("base positions changed: %v vs %v", after, before)
	}
	for p := range before {
		if !after[p] {
			t.Errorf("base %v lost after swaps", p)
		}
	}
}

func TestSwapBasesSingleTile(t *testing.T) {
	tiles := []Tile{{Base: core.V(5, 5)}}
	if _, _, ok := SwapBases(tiles, &scriptedRand{}); ok {
		t.Error("SwapBases with one tile should report false")
	}
	if tiles[0].Base != core.V(5, 5) {
		t.Errorf("single tile moved to %v", tiles[0].Base)
	}
}
