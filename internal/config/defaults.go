package config

import (
	_ "embed"
)

//go:embed defaults/flytype.yaml
var defaultYAML []byte

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Arena: ArenaConfig{
			Width:          960,
			Height:         540,
			FinishMargin:   120,
			MinX:           60,
			BirdStartX:     80,
			VerticalMargin: 24,
		},
		Physics: PhysicsConfig{
			BaseSpeed:         3.6,
			Gravity:           0.18,
			ControlForce:      0.9,
			MaxVelocity:       7.5,
			Drag:              0.92,
			ForwardMultiplier: 4.5,
			ReverseMultiplier: 3.5,
			WrapDamping:       0.4,
			StartDamping:      0.6,
		},
		Layout: LayoutConfig{
			MaxRows:          12,
			VerticalPadding:  60,
			GridLeft:         80,
			MaxColumnSpacing: 72,
			TileWidthFactor:  0.8,
			MinTileWidth:     36,
			MaxTileWidth:     60,
			TileHeight:       34,
			SingleTileWidth:  150,
			SingleTileHeight: 48,
		},
		Wobble: WobbleConfig{
			MinSpeed:    0.4,
			SpeedRange:  0.9,
			MinRadius:   6,
			RadiusRange: 6,
			YFrequency:  1.1,
			YAmplitude:  0.6,
		},
		Swap: SwapConfig{
			InitialMinMs:   1400,
			InitialRangeMs: 1600,
			MinMs:          1200,
			RangeMs:        1800,
		},
		Run: RunConfig{
			CheckIntervalMs:        100,
			WordChoices:            []int{15, 25, 50, 100},
			TimeChoices:            []int{30, 60, 120, 180},
			DefaultLimitMode:       "words",
			DefaultLimitValue:      25,
			TimeModeMinWords:       120,
			TimeModeWordsPerSecond: 8,
		},
		Input: InputConfig{
			InitialHoldMs: 500,
			RepeatHoldMs:  90,
			ConfirmHoldMs: 350,
		},
		Audio: AudioConfig{
			Enabled:    false,
			Volume:     0.5,
			SampleRate: 44100,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
