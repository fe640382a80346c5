// Package tui runs the egg catcher in a terminal: the bubbletea tick loop,
// key mapping with hold tracking, the menu and leaderboard views and the
// wish SSH server.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// frameDelta returns the seconds between two ticks. The first tick, with no
// previous time, counts as one nominal interval.
func frameDelta(prev, now time.Time, tickRate int) float64 {
	if prev.IsZero() || !now.After(prev) {
		if tickRate <= 0 {
			tickRate = 60
		}
		return 1 / float64(tickRate)
	}
	return now.Sub(prev).Seconds()
}
