package arena

import (
	"math"
	"time"

	"github.com/vovakirdan/flytype/internal/config"
	"github.com/vovakirdan/flytype/internal/core"
)

// tickRate is the frame rate physics constants are tuned for.
const tickRate = 60

// Bird is the player-controlled marker.
type Bird struct {
	Pos core.Vec2
	VY  float64 // Vertical velocity, positive is down
}

// Ticks converts elapsed time to nominal 60Hz ticks, so one frame at 60 FPS is 1.
func Ticks(d time.Duration) float64 {
	return d.Seconds() * tickRate
}

// StepBird advances bird physics by dt ticks under the given controls.
func StepBird(b *Bird, in core.Controls, dt float64, ac config.ArenaConfig, p config.PhysicsConfig) {
	if in.Up {
		b.VY -= p.ControlForce * dt
	}
	if in.Down {
		b.VY += p.ControlForce * dt
	}
	b.VY *= math.Pow(p.Drag, dt)
	b.VY += p.Gravity * dt
	b.VY = core.ClampF(b.VY, -p.MaxVelocity, p.MaxVelocity)

	b.Pos.Y += b.VY * dt
	b.Pos.Y = core.ClampF(b.Pos.Y, ac.VerticalMargin, ac.Height-ac.VerticalMargin)

	b.Pos.X += HorizontalSpeed(in, p) * dt

	// Flight is continuous: crossing the finish line re-enters at the start
	if b.Pos.X >= ac.FinishX() {
		b.Pos.X = ac.MinX + 1
		b.VY *= p.WrapDamping
	}
	if b.Pos.X <= ac.MinX {
		b.Pos.X = ac.MinX
		b.VY *= p.StartDamping
	}
}

// HorizontalSpeed returns the bird's x velocity per tick for the given controls.
func HorizontalSpeed(in core.Controls, p config.PhysicsConfig) float64 {
	switch {
	case in.Right && !in.Left:
		return p.BaseSpeed * p.ForwardMultiplier
	case in.Left && !in.Right:
		return -p.BaseSpeed * p.ReverseMultiplier
	default:
		return p.BaseSpeed
	}
}

// Wobble holds the per-tile oscillation parameters.
type Wobble struct {
	Phase  float64
	Speed  float64
	Radius float64
}

// NewWobble draws oscillation parameters from rng.
func NewWobble(rng core.Rand, wc config.WobbleConfig) Wobble {
	return Wobble{
		Phase:  rng.Float64() * 2 * math.Pi,
		Speed:  wc.MinSpeed + rng.Float64()*wc.SpeedRange,
		Radius: wc.MinRadius + rng.Float64()*wc.RadiusRange,
	}
}

// Offset returns the displacement from the base position at time t seconds.
// It is stateless: the same t always gives the same offset.
func (w Wobble) Offset(t float64, wc config.WobbleConfig) core.Vec2 {
	return core.V(
		math.Sin(t*w.Speed+w.Phase)*w.Radius,
		math.Cos(t*w.Speed*wc.YFrequency+w.Phase)*w.Radius*wc.YAmplitude,
	)
}

// UpdateTiles moves every tile to its base position plus wobble at time t.
func UpdateTiles(tiles []Tile, t float64, wc config.WobbleConfig) {
	for i := range tiles {
		tiles[i].Pos = tiles[i].Base.Add(tiles[i].Wobble.Offset(t, wc))
	}
}

// SwapBases exchanges the base positions of two distinct random tiles.
// Labels and values stay with their tiles. Returns false with fewer than two tiles.
func SwapBases(tiles []Tile, rng core.Rand) (a, b int, ok bool) {
	if len(tiles) < 2 {
		return 0, 0, false
	}
	a = rng.Intn(len(tiles))
	b = rng.Intn(len(tiles))
	if a == b {
		b = (b + 1) % len(tiles)
	}
	tiles[a].Base, tiles[b].Base = tiles[b].Base, tiles[a].Base
	return a, b, true
}

// randomInterval returns minMs plus a random share of rangeMs, in seconds.
func randomInterval(rng core.Rand, minMs, rangeMs int) float64 {
	return (float64(minMs) + rng.Float64()*float64(rangeMs)) / 1000
}
