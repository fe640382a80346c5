package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/egg-catcher/internal/core"
	"github.com/vovakirdan/egg-catcher/internal/games/eggcatch"
)

// KeyMap defines the key bindings for every screen.
type KeyMap struct {
	Left      key.Binding
	Right     key.Binding
	Start     key.Binding
	Scores    key.Binding
	Back      key.Binding
	Restart   key.Binding
	Quit      key.Binding
	ForceQuit key.Binding
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "a", "h"),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d", "l"),
			key.WithHelp("→/d", "right"),
		),
		Start: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "play"),
		),
		Scores: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "leaderboard"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "menu"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		// The menu has a text field, so only ctrl+c quits there.
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}

// screenHelp adapts a KeyMap to help.KeyMap for one screen.
type screenHelp struct {
	keys   KeyMap
	screen eggcatch.Screen
}

// ShortHelp returns key bindings for the short help view.
func (h screenHelp) ShortHelp() []key.Binding {
	k := h.keys
	switch h.screen {
	case eggcatch.ScreenMenu:
		return []key.Binding{k.Start, k.Scores, k.ForceQuit}
	case eggcatch.ScreenPlaying:
		return []key.Binding{k.Left, k.Right, k.Quit}
	case eggcatch.ScreenGameOver:
		return []key.Binding{k.Restart, k.Back, k.Quit}
	case eggcatch.ScreenLeaderboard:
		return []key.Binding{k.Back, k.Quit}
	default:
		return []key.Binding{k.Quit}
	}
}

// FullHelp returns key bindings for the full help view.
func (h screenHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{h.ShortHelp()}
}

// MapKey translates a key press on the given screen to an action.
// Menu keys other than Start, Scores and ForceQuit belong to the name field.
func (k KeyMap) MapKey(msg tea.KeyMsg, screen eggcatch.Screen) core.Action {
	if screen == eggcatch.ScreenMenu {
		switch {
		case key.Matches(msg, k.ForceQuit):
			return core.ActionQuit
		case key.Matches(msg, k.Start):
			return core.ActionConfirm
		case key.Matches(msg, k.Scores):
			return core.ActionScoreboard
		}
		return core.ActionNone
	}

	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.Left):
		return core.ActionLeft
	case key.Matches(msg, k.Right):
		return core.ActionRight
	case key.Matches(msg, k.Back):
		return core.ActionBack
	case key.Matches(msg, k.Restart):
		return core.ActionRestart
	}
	return core.ActionNone
}

// Hold windows. Terminals report presses only, and auto-repeat usually starts
// after 250-500ms and then fires every 30-100ms.
const (
	initialHold = 500 * time.Millisecond
	repeatHold  = 150 * time.Millisecond
)

// HoldTracker turns discrete key presses into held directions.
// A first press holds for initialHold so the gap before auto-repeat does not
// release the key; each repeat extends the hold by repeatHold.
// Pressing the opposite direction releases the other one immediately.
type HoldTracker struct {
	leftUntil  time.Time
	rightUntil time.Time
}

// Press records a press of left or right at now. Other actions are ignored.
func (h *HoldTracker) Press(a core.Action, now time.Time) {
	switch a {
	case core.ActionLeft:
		h.leftUntil = extend(h.leftUntil, now)
		h.rightUntil = time.Time{}
	case core.ActionRight:
		h.rightUntil = extend(h.rightUntil, now)
		h.leftUntil = time.Time{}
	}
}

func extend(until, now time.Time) time.Time {
	if !now.Before(until) {
		return now.Add(initialHold)
	}
	if next := now.Add(repeatHold); next.After(until) {
		return next
	}
	return until
}

// Held reports the directions still held at now.
func (h *HoldTracker) Held(now time.Time) (left, right bool) {
	return now.Before(h.leftUntil), now.Before(h.rightUntil)
}

// Apply sets the held directions on frame.
func (h *HoldTracker) Apply(frame *core.InputFrame, now time.Time) {
	left, right := h.Held(now)
	if left {
		frame.Set(core.ActionLeft)
	}
	if right {
		frame.Set(core.ActionRight)
	}
}

// Release drops every hold.
func (h *HoldTracker) Release() {
	*h = HoldTracker{}
}
