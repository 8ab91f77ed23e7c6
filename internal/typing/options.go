package typing

import (
	"strconv"

	"github.com/vovakirdan/flytype/internal/arena"
	"github.com/vovakirdan/flytype/internal/config"
	"github.com/vovakirdan/flytype/internal/core"
)

// OptionKey names a setting chosen by flying to it.
type OptionKey int

const (
	OptionLimitMode OptionKey = iota
	OptionLimitValue
	OptionPunctuation
	OptionCapitalization
	OptionNumbers
	OptionLaunch
)

// OptionKeys lists the options in menu order.
var OptionKeys = []OptionKey{
	OptionLimitMode,
	OptionLimitValue,
	OptionPunctuation,
	OptionCapitalization,
	OptionNumbers,
	OptionLaunch,
}

const (
	valueEnable  = "enable"
	valueDisable = "disable"
	valueLaunch  = "launch"
	valueWait    = "wait"
)

// Label returns the menu label of the option.
func (k OptionKey) Label() string {
	switch k {
	case OptionLimitMode:
		return "Limit type"
	case OptionLimitValue:
		return "Limit value"
	case OptionPunctuation:
		return "Include punctuation"
	case OptionCapitalization:
		return "Random capitalization"
	case OptionNumbers:
		return "Include numbers"
	case OptionLaunch:
		return "Start run"
	default:
		return "Unknown"
	}
}

// Describe returns the current value of the option for the menu.
func (k OptionKey) Describe(s Settings) string {
	switch k {
	case OptionLimitMode:
		if s.Mode == LimitTime {
			return "Time"
		}
		return "Words"
	case OptionLimitValue:
		return valueLabel(s.Mode, s.Value)
	case OptionPunctuation:
		return onOff(s.Punctuation)
	case OptionCapitalization:
		return onOff(s.Capitalization)
	case OptionNumbers:
		return onOff(s.Numbers)
	default:
		return ""
	}
}

// OptionRound returns the title and tiles for choosing option k.
func OptionRound(k OptionKey, s Settings, rc config.RunConfig) (string, []arena.Item) {
	switch k {
	case OptionLimitMode:
		return "Choose limit type", []arena.Item{
			{Label: "Words", Value: LimitWords.String(), Accent: core.ColorTile},
			{Label: "Time", Value: LimitTime.String(), Accent: core.ColorOrange},
		}

	case OptionLimitValue:
		choices := s.Choices(rc)
		items := make([]arena.Item, len(choices))
		for i, v := range choices {
			items[i] = arena.Item{Label: valueLabel(s.Mode, v), Value: strconv.Itoa(v), Accent: core.ColorTile}
			if v == s.Value {
				items[i].Accent = core.ColorTileAccent
			}
		}
		return "Choose limit value", items

	case OptionLaunch:
		return "Ready to fly?", []arena.Item{
			{Label: "Launch", Value: valueLaunch, Accent: core.ColorTileAccent},
			{Label: "Not yet", Value: valueWait, Accent: core.ColorExit},
		}

	default:
		return k.Label() + "?", []arena.Item{
			{Label: "Enable", Value: valueEnable, Accent: core.ColorTileAccent},
			{Label: "Disable", Value: valueDisable, Accent: core.ColorExit},
		}
	}
}

// ApplyOption stores the value chosen in an option round into s.
// It reports whether the player chose to launch a run.
func ApplyOption(k OptionKey, value string, s *Settings, rc config.RunConfig) bool {
	switch k {
	case OptionLimitMode:
		mode, err := ParseLimitMode(value)
		if err != nil {
			return false
		}
		s.Mode = mode
		if choices := s.Choices(rc); len(choices) > 0 {
			s.Value = choices[0]
		}
	case OptionLimitValue:
		if v, err := strconv.Atoi(value); err == nil {
			s.Value = v
		}
	case OptionPunctuation:
		s.Punctuation = value == valueEnable
	case OptionCapitalization:
		s.Capitalization = value == valueEnable
	case OptionNumbers:
		s.Numbers = value == valueEnable
	case OptionLaunch:
		return value == valueLaunch
	}
	return false
}

func valueLabel(mode LimitMode, v int) string {
	if mode == LimitTime {
		return strconv.Itoa(v) + " s"
	}
	return strconv.Itoa(v) + " words"
}

func onOff(b bool) string {
	if b {
		return "On"
	}
	return "Off"
}
