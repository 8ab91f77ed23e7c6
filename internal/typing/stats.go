package typing

import (
	"fmt"
	"math"
	"time"
)

// Stats is the live readout published on every check and at completion.
type Stats struct {
	Elapsed        time.Duration
	ElapsedDisplay string
	WPM            int
	Accuracy       int
	TypedCount     int
	ErrorCount     int
}

// Results is the final summary of a run.
type Results struct {
	RunID          string
	ElapsedSeconds float64
	WPM            int
	Accuracy       int
	TypedCount     int
	ErrorCount     int
	LimitSummary   string
}

// Summary renders the results as one sentence.
func (r Results) Summary() string {
	return fmt.Sprintf("You completed the run in %.1f seconds with a WPM of %d and accuracy of %d%% (%s).",
		r.ElapsedSeconds, r.WPM, r.Accuracy, r.LimitSummary)
}

// WPM returns gross words per minute, counting five characters as a word.
func WPM(typed int, elapsed time.Duration) int {
	minutes := elapsed.Minutes()
	if typed == 0 || minutes <= 0 {
		return 0
	}
	return int(math.Round(float64(typed) / 5 / minutes))
}

// Accuracy returns the share of correct selections as a percentage.
// A run with nothing typed is 100% accurate.
func Accuracy(typed, errors int) int {
	if typed == 0 {
		return 100
	}
	pct := math.Round(float64(typed-errors) / float64(typed) * 100)
	return int(math.Max(0, math.Min(100, pct)))
}

// ElapsedDisplay formats the timer: time remaining in time mode,
// time elapsed otherwise.
func ElapsedDisplay(s Settings, elapsed time.Duration) string {
	if s.Mode == LimitTime {
		remaining := time.Duration(s.Value)*time.Second - elapsed
		if remaining < 0 {
			remaining = 0
		}
		return fmt.Sprintf("%.1fs left", remaining.Seconds())
	}
	return fmt.Sprintf("%.1fs", elapsed.Seconds())
}
