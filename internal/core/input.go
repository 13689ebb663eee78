package core

// Action represents a semantic driver action, abstracted from physical key
// presses. The simulation driver works with high-level intents rather than
// raw input.
type Action int

const (
	ActionNone      Action = iota
	ActionPause            // P, Space - pause/unpause stepping
	ActionStep             // N - advance one step while paused
	ActionRestart          // R - restart the current scenario
	ActionFaster           // +, = - more steps per tick
	ActionSlower           // - - fewer steps per tick
	ActionGridLines        // G - toggle the grid border
	ActionTrails           // T - toggle previous-position trails
	ActionBack             // B, Escape - leave the running view (SSH picker)
	ActionQuit             // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionPause:
		return "Pause"
	case ActionStep:
		return "Step"
	case ActionRestart:
		return "Restart"
	case ActionFaster:
		return "Faster"
	case ActionSlower:
		return "Slower"
	case ActionGridLines:
		return "GridLines"
	case ActionTrails:
		return "Trails"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame represents the input state for a single simulation tick.
// It contains all actions that were triggered during this frame.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
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
