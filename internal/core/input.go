package core

// Action represents a semantic game action, abstracted from physical key presses.
// The platform maps keys to actions; the game only ever sees actions.
type Action int

const (
	ActionNone       Action = iota
	ActionLeft              // A, Left arrow - move basket left (held)
	ActionRight             // D, Right arrow - move basket right (held)
	ActionConfirm           // Enter - start a game from the menu
	ActionScoreboard        // Tab - open the leaderboard from the menu
	ActionBack              // B, Escape - back to the menu
	ActionRestart           // R - restart after game over
	ActionQuit              // Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionConfirm:
		return "Confirm"
	case ActionScoreboard:
		return "Scoreboard"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame represents the input state for one tick.
// Held directions and one-shot intents share the same set.
type InputFrame struct {
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as active for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action is active this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}
