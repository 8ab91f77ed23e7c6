package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Load loads the configuration.
// Search order: customPath -> ~/.flytype/config.{yaml,toml} -> ./configs/flytype.{yaml,toml} -> embedded default.
// Files only need to set the keys they change; everything else keeps its default.
func Load(customPath string) (Config, error) {
	if customPath != "" {
		cfg, err := decodeFile(customPath)
		if err != nil {
			return Default(), err
		}
		if err := cfg.Validate(); err != nil {
			return Default(), fmt.Errorf("config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Unreadable or broken files further down the search order are skipped
	for _, path := range searchPaths() {
		cfg, err := decodeFile(path)
		if err != nil {
			continue
		}
		if cfg.Validate() == nil {
			return cfg, nil
		}
	}

	cfg := Default()
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		return Default(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// decodeFile reads path on top of the defaults, choosing the format by extension.
func decodeFile(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	if strings.EqualFold(filepath.Ext(path), ".toml") {
		if _, err := toml.Decode(string(data), &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
		return cfg, nil
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

// searchPaths lists the implicit config locations in priority order.
func searchPaths() []string {
	var paths []string
	if home, err := os.UserHomeDir(); err == nil {
		dir := filepath.Join(home, ".flytype")
		paths = append(paths,
			filepath.Join(dir, "config.yaml"),
			filepath.Join(dir, "config.toml"),
		)
	}
	return append(paths,
		filepath.Join("configs", "flytype.yaml"),
		filepath.Join("configs", "flytype.toml"),
	)
}

// Validate checks that the configuration describes a playable arena.
func (c Config) Validate() error {
	a := c.Arena
	switch {
	case a.Width <= a.FinishMargin+a.MinX:
		return fmt.Errorf("%w: arena width %.0f leaves no room between min_x and the finish line", ErrInvalidConfig, a.Width)
	case a.Height <= 2*a.VerticalMargin:
		return fmt.Errorf("%w: arena height %.0f is smaller than twice the vertical margin", ErrInvalidConfig, a.Height)
	case a.BirdStartX < a.MinX || a.BirdStartX >= a.FinishX():
		return fmt.Errorf("%w: bird_start_x %.0f must lie between min_x and the finish line", ErrInvalidConfig, a.BirdStartX)
	}

	p := c.Physics
	if p.Drag <= 0 || p.Drag > 1 {
		return fmt.Errorf("%w: drag %.2f must be in (0, 1]", ErrInvalidConfig, p.Drag)
	}
	if p.MaxVelocity <= 0 || p.BaseSpeed <= 0 {
		return fmt.Errorf("%w: base_speed and max_velocity must be positive", ErrInvalidConfig)
	}

	if c.Layout.MaxRows < 1 {
		return fmt.Errorf("%w: max_rows must be at least 1", ErrInvalidConfig)
	}
	if c.Layout.MinTileWidth > c.Layout.MaxTileWidth {
		return fmt.Errorf("%w: min_tile_width exceeds max_tile_width", ErrInvalidConfig)
	}

	if c.Swap.MinMs <= 0 || c.Swap.InitialMinMs <= 0 {
		return fmt.Errorf("%w: swap intervals must be positive", ErrInvalidConfig)
	}

	r := c.Run
	if r.CheckIntervalMs <= 0 {
		return fmt.Errorf("%w: check_interval_ms must be positive", ErrInvalidConfig)
	}
	if err := validateChoices("word_choices", r.WordChoices); err != nil {
		return err
	}
	if err := validateChoices("time_choices", r.TimeChoices); err != nil {
		return err
	}
	if r.DefaultLimitMode != "words" && r.DefaultLimitMode != "time" {
		return fmt.Errorf("%w: default_limit_mode %q must be words or time", ErrInvalidConfig, r.DefaultLimitMode)
	}

	if c.Input.InitialHoldMs <= 0 || c.Input.RepeatHoldMs <= 0 || c.Input.ConfirmHoldMs <= 0 {
		return fmt.Errorf("%w: input hold windows must be positive", ErrInvalidConfig)
	}

	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		return fmt.Errorf("%w: audio volume %.2f must be in [0, 1]", ErrInvalidConfig, c.Audio.Volume)
	}
	if c.Audio.Enabled && c.Audio.SampleRate <= 0 {
		return fmt.Errorf("%w: audio sample_rate must be positive", ErrInvalidConfig)
	}
	return nil
}

func validateChoices(name string, choices []int) error {
	if len(choices) == 0 {
		return fmt.Errorf("%w: %s must not be empty", ErrInvalidConfig, name)
	}
	for _, v := range choices {
		if v <= 0 {
			return fmt.Errorf("%w: %s contains non-positive value %d", ErrInvalidConfig, name, v)
		}
	}
	return nil
}
