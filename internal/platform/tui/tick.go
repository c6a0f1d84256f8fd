// Package tui provides the Bubble Tea front-ends: the play loop, the map
// editor and the start menu. It maps terminal input to held actions and the
// core screen buffer to styled output.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// maxFrameDelta caps the measured delta so a stalled terminal does not make
// the simulation jump.
const maxFrameDelta = 100 * time.Millisecond

// TickMsg is sent to trigger a simulation tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	interval := time.Second / time.Duration(max(tickRate, 1))
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// frameDelta returns the time between two ticks, clamped to [0, maxFrameDelta].
// A zero last time yields the nominal interval.
func frameDelta(last, now time.Time, tickRate int) time.Duration {
	if last.IsZero() {
		return time.Second / time.Duration(max(tickRate, 1))
	}
	return min(max(now.Sub(last), 0), maxFrameDelta)
}
