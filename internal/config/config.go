// Package config provides YAML/TOML configuration loading and difficulty
// presets for the flight arena and the typing run.
package config

import "time"

// Config contains every tunable of the arena and the typing run.
type Config struct {
	Arena   ArenaConfig   `yaml:"arena" toml:"arena"`
	Physics PhysicsConfig `yaml:"physics" toml:"physics"`
	Layout  LayoutConfig  `yaml:"layout" toml:"layout"`
	Wobble  WobbleConfig  `yaml:"wobble" toml:"wobble"`
	Swap    SwapConfig    `yaml:"swap" toml:"swap"`
	Run     RunConfig     `yaml:"run" toml:"run"`
	Input   InputConfig   `yaml:"input" toml:"input"`
	Audio   AudioConfig   `yaml:"audio" toml:"audio"`
}

// ArenaConfig defines the arena bounds in arena units.
type ArenaConfig struct {
	Width          float64 `yaml:"width" toml:"width"`
	Height         float64 `yaml:"height" toml:"height"`
	FinishMargin   float64 `yaml:"finish_margin" toml:"finish_margin"` // Distance of the finish line from the right edge
	MinX           float64 `yaml:"min_x" toml:"min_x"`                 // Start boundary
	BirdStartX     float64 `yaml:"bird_start_x" toml:"bird_start_x"`
	VerticalMargin float64 `yaml:"vertical_margin" toml:"vertical_margin"` // Bird y is kept this far from top and bottom
}

// FinishX returns the x coordinate of the finish boundary.
func (a ArenaConfig) FinishX() float64 {
	return a.Width - a.FinishMargin
}

// PhysicsConfig defines bird movement parameters, per nominal 60Hz tick.
type PhysicsConfig struct {
	BaseSpeed         float64 `yaml:"base_speed" toml:"base_speed"`
	Gravity           float64 `yaml:"gravity" toml:"gravity"`
	ControlForce      float64 `yaml:"control_force" toml:"control_force"`
	MaxVelocity       float64 `yaml:"max_velocity" toml:"max_velocity"`
	Drag              float64 `yaml:"drag" toml:"drag"`
	ForwardMultiplier float64 `yaml:"forward_multiplier" toml:"forward_multiplier"`
	ReverseMultiplier float64 `yaml:"reverse_multiplier" toml:"reverse_multiplier"`
	WrapDamping       float64 `yaml:"wrap_damping" toml:"wrap_damping"`   // vy factor when wrapping past the finish
	StartDamping      float64 `yaml:"start_damping" toml:"start_damping"` // vy factor when pinned at the start
}

// LayoutConfig defines the tile grid.
type LayoutConfig struct {
	MaxRows          int     `yaml:"max_rows" toml:"max_rows"`
	VerticalPadding  float64 `yaml:"vertical_padding" toml:"vertical_padding"`
	GridLeft         float64 `yaml:"grid_left" toml:"grid_left"`
	MaxColumnSpacing float64 `yaml:"max_column_spacing" toml:"max_column_spacing"`
	TileWidthFactor  float64 `yaml:"tile_width_factor" toml:"tile_width_factor"`
	MinTileWidth     float64 `yaml:"min_tile_width" toml:"min_tile_width"`
	MaxTileWidth     float64 `yaml:"max_tile_width" toml:"max_tile_width"`
	TileHeight       float64 `yaml:"tile_height" toml:"tile_height"`
	SingleTileWidth  float64 `yaml:"single_tile_width" toml:"single_tile_width"`
	SingleTileHeight float64 `yaml:"single_tile_height" toml:"single_tile_height"`
}

// WobbleConfig defines the ranges tile oscillation parameters are drawn from.
type WobbleConfig struct {
	MinSpeed    float64 `yaml:"min_speed" toml:"min_speed"`
	SpeedRange  float64 `yaml:"speed_range" toml:"speed_range"`
	MinRadius   float64 `yaml:"min_radius" toml:"min_radius"`
	RadiusRange float64 `yaml:"radius_range" toml:"radius_range"`
	YFrequency  float64 `yaml:"y_frequency" toml:"y_frequency"`
	YAmplitude  float64 `yaml:"y_amplitude" toml:"y_amplitude"`
}

// SwapConfig defines reshuffle timing in milliseconds.
type SwapConfig struct {
	InitialMinMs   int `yaml:"initial_min_ms" toml:"initial_min_ms"`
	InitialRangeMs int `yaml:"initial_range_ms" toml:"initial_range_ms"`
	MinMs          int `yaml:"min_ms" toml:"min_ms"`
	RangeMs        int `yaml:"range_ms" toml:"range_ms"`
}

// RunConfig defines the typing run.
type RunConfig struct {
	CheckIntervalMs        int    `yaml:"check_interval_ms" toml:"check_interval_ms"`
	WordChoices            []int  `yaml:"word_choices" toml:"word_choices"`
	TimeChoices            []int  `yaml:"time_choices" toml:"time_choices"` // Seconds
	DefaultLimitMode       string `yaml:"default_limit_mode" toml:"default_limit_mode"`
	DefaultLimitValue      int    `yaml:"default_limit_value" toml:"default_limit_value"`
	TimeModeMinWords       int    `yaml:"time_mode_min_words" toml:"time_mode_min_words"`
	TimeModeWordsPerSecond int    `yaml:"time_mode_words_per_second" toml:"time_mode_words_per_second"`
}

// CheckInterval returns the periodic limit/stats check interval.
func (r RunConfig) CheckInterval() time.Duration {
	return time.Duration(r.CheckIntervalMs) * time.Millisecond
}

// InputConfig defines how terminal key repeats are turned into held keys.
// Terminals report presses only, so a key counts as held until no repeat
// arrives within the hold window.
type InputConfig struct {
	InitialHoldMs int `yaml:"initial_hold_ms" toml:"initial_hold_ms"` // Covers the autorepeat delay after the first press
	RepeatHoldMs  int `yaml:"repeat_hold_ms" toml:"repeat_hold_ms"`
	ConfirmHoldMs int `yaml:"confirm_hold_ms" toml:"confirm_hold_ms"` // Initial window for confirm; taps closer than this merge
}

// InitialHold returns the hold window after the first press.
func (i InputConfig) InitialHold() time.Duration {
	return time.Duration(i.InitialHoldMs) * time.Millisecond
}

// ConfirmHold returns the hold window after the first confirm press.
func (i InputConfig) ConfirmHold() time.Duration {
	return time.Duration(i.ConfirmHoldMs) * time.Millisecond
}

// RepeatHold returns the hold window after an autorepeat.
func (i InputConfig) RepeatHold() time.Duration {
	return time.Duration(i.RepeatHoldMs) * time.Millisecond
}

// AudioConfig defines judgement sound cues.
type AudioConfig struct {
	Enabled    bool    `yaml:"enabled" toml:"enabled"`
	Volume     float64 `yaml:"volume" toml:"volume"` // 0.0 to 1.0
	SampleRate int     `yaml:"sample_rate" toml:"sample_rate"`
}
