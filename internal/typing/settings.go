package typing

import (
	"fmt"

	"github.com/vovakirdan/flytype/internal/config"
)

// LimitMode decides how a run ends.
type LimitMode int

const (
	LimitWords LimitMode = iota // Ends when the cursor reaches the end of the target
	LimitTime                   // Ends once the time limit elapses
)

// String returns the config spelling of the mode.
func (m LimitMode) String() string {
	switch m {
	case LimitWords:
		return "words"
	case LimitTime:
		return "time"
	default:
		return "unknown"
	}
}

// ParseLimitMode converts "words" or "time" to a LimitMode.
func ParseLimitMode(s string) (LimitMode, error) {
	switch s {
	case "words", "":
		return LimitWords, nil
	case "time":
		return LimitTime, nil
	default:
		return LimitWords, fmt.Errorf("unknown limit mode %q", s)
	}
}

// Options are the text generation toggles.
type Options struct {
	Punctuation    bool
	Capitalization bool
	Numbers        bool
}

// Settings is everything chosen before a run starts.
type Settings struct {
	Options
	Mode  LimitMode
	Value int // Words, or seconds in time mode
}

// DefaultSettings returns the settings a fresh session opens with.
func DefaultSettings(rc config.RunConfig) Settings {
	mode, err := ParseLimitMode(rc.DefaultLimitMode)
	if err != nil {
		mode = LimitWords
	}
	return Settings{Mode: mode, Value: rc.DefaultLimitValue}
}

// LimitSummary describes the limit for the results line.
func (s Settings) LimitSummary() string {
	if s.Mode == LimitTime {
		return fmt.Sprintf("%ds time limit", s.Value)
	}
	return fmt.Sprintf("%d word limit", s.Value)
}

// Choices returns the supported limit values for the current mode.
func (s Settings) Choices(rc config.RunConfig) []int {
	if s.Mode == LimitTime {
		return rc.TimeChoices
	}
	return rc.WordChoices
}
