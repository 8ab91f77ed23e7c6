// Package tui provides the Bubble Tea front end: the option menu, the flight
// view with its HUD, the results screen, and remote play over SSH.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger an arena simulation frame.
type TickMsg time.Time

// CheckMsg is sent on the coarser timer that refreshes stats and enforces
// the time limit.
type CheckMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// checkCmd schedules the next CheckMsg.
func checkCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return CheckMsg(t)
	})
}
