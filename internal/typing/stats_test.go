package typing

import (
	"testing"
	"time"
)

func TestWPM(t *testing.T) {
	tests := []struct {
		typed    int
		elapsed  time.Duration
		expected int
	}{
		{0, time.Minute, 0},
		{50, 0, 0},
		{50, time.Minute, 10},
		{25, 30 * time.Second, 10},
		{7, time.Minute, 1},  // 1.4 rounds down
		{13, time.Minute, 3}, // 2.6 rounds up
	}

	for _, tc := range tests {
		if got := WPM(tc.typed, tc.elapsed); got != tc.expected {
			t.Errorf("WPM(%d, %v) = %d, expected %d", tc.typed, tc.elapsed, got, tc.expected)
		}
	}
}

func TestAccuracy(t *testing.T) {
	tests := []struct {
		typed, errors, expected int
	}{
		{0, 0, 100},
		{10, 0, 100},
		{10, 1, 90},
		{3, 1, 67},
		{4, 4, 0},
	}

	for _, tc := range tests {
		if got := Accuracy(tc.typed, tc.errors); got != tc.expected {
			t.Errorf("Accuracy(%d, %d) = %d, expected %d", tc.typed, tc.errors, got, tc.expected)
		}
	}
}

func TestAccuracyNonIncreasingInErrors(t *testing.T) {
	for typed := 1; typed <= 40; typed++ {
		prev := 101
		for errors := 0; errors <= typed; errors++ {
			got := Accuracy(typed, errors)
			if got > prev {
				t.Fatalf("Accuracy(%d, %d) = %d rose above %d", typed, errors, got, prev)
			}
			prev = got
		}
	}
}

func TestElapsedDisplay(t *testing.T) {
	tests := []struct {
		name     string
		s        Settings
		elapsed  time.Duration
		expected string
	}{
		{"words", Settings{Mode: LimitWords, Value: 25}, 12300 * time.Millisecond, "12.3s"},
		{"time", Settings{Mode: LimitTime, Value: 30}, 2300 * time.Millisecond, "27.7s left"},
		{"time over", Settings{Mode: LimitTime, Value: 30}, 31 * time.Second, "0.0s left"},
		{"start", Settings{Mode: LimitWords, Value: 25}, 0, "0.0s"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := ElapsedDisplay(tc.s, tc.elapsed); got != tc.expected {
				t.Errorf("ElapsedDisplay() = %q, expected %q", got, tc.expected)
			}
		})
	}
}

func TestLimitSummary(t *testing.T) {
	if got := (Settings{Mode: LimitTime, Value: 60}).LimitSummary(); got != "60s time limit" {
		t.Errorf("LimitSummary() = %q, expected %q", got, "60s time limit")
	}
	if got := (Settings{Mode: LimitWords, Value: 25}).LimitSummary(); got != "25 word limit" {
		t.Errorf("LimitSummary() = %q, expected %q", got, "25 word limit")
	}
}
