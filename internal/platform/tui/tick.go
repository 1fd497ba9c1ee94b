// Package tui provides the Bubble Tea front end for the rocket arcade.
// It handles the terminal UI loop, input mapping and score keeping, both
// locally and for SSH sessions.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/rocket-arcade/internal/core"
)

// TickMsg asks the model to step the game once.
type TickMsg time.Time

// tickCmd schedules the next TickMsg one step from now.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = core.DefaultTickRate
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
