// Package tui runs the minesweeper in a terminal with Bubble Tea, locally or
// over SSH. It maps mouse and keys to game events and renders the canvas.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent once per frame.
type TickMsg time.Time

// maxFrame caps the time step after a stall so fades do not jump.
const maxFrame = 250 * time.Millisecond

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	return tea.Tick(frameInterval(tickRate), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func frameInterval(tickRate int) time.Duration {
	if tickRate <= 0 {
		tickRate = 60
	}
	return time.Second / time.Duration(tickRate)
}

// frameDelta returns the time since the previous tick, or one frame for the
// first tick.
func frameDelta(prev, now time.Time, tickRate int) time.Duration {
	if prev.IsZero() {
		return frameInterval(tickRate)
	}
	dt := now.Sub(prev)
	if dt < 0 {
		return 0
	}
	return min(dt, maxFrame)
}
