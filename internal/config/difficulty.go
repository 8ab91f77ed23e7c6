package config

import "fmt"

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset converts a flag value into a preset. Empty means normal.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "", DifficultyNormal:
		return DifficultyNormal, nil
	case DifficultyEasy:
		return DifficultyEasy, nil
	case DifficultyHard:
		return DifficultyHard, nil
	}
	return DifficultyNormal, fmt.Errorf("unknown difficulty %q (want easy, normal or hard)", s)
}

// ApplyPreset scales cruise speed, tile wobble and reshuffle pace.
// Normal leaves the configuration untouched.
func ApplyPreset(cfg *Config, preset DifficultyPreset) {
	var speed, wobble, swap float64
	switch preset {
	case DifficultyEasy:
		speed, wobble, swap = 0.75, 0.5, 1.5
	case DifficultyHard:
		speed, wobble, swap = 1.25, 1.5, 0.6
	default:
		return
	}

	cfg.Physics.BaseSpeed *= speed
	cfg.Wobble.MinRadius *= wobble
	cfg.Wobble.RadiusRange *= wobble
	cfg.Swap.InitialMinMs = scaleMs(cfg.Swap.InitialMinMs, swap)
	cfg.Swap.InitialRangeMs = scaleMs(cfg.Swap.InitialRangeMs, swap)
	cfg.Swap.MinMs = scaleMs(cfg.Swap.MinMs, swap)
	cfg.Swap.RangeMs = scaleMs(cfg.Swap.RangeMs, swap)
}

func scaleMs(ms int, factor float64) int {
	return int(float64(ms) * factor)
}
