package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone  Action = iota
	ActionPad1         // first pad (green by default)
	ActionPad2         // second pad (red)
	ActionPad3         // third pad (yellow)
	ActionPad4         // fourth pad (blue)
	ActionStart        // Enter, S - start a game
	ActionPause        // P - pause/unpause
	ActionBack         // Escape - back to menu
	ActionQuit         // Q, Ctrl+C - exit
)

// PadCount is the number of pad actions.
const PadCount = 4

// PadAction returns the pad action for a zero-based pad index.
// Returns ActionNone for out-of-range indices.
func PadAction(i int) Action {
	if i < 0 || i >= PadCount {
		return ActionNone
	}
	return ActionPad1 + Action(i)
}

// PadIndex returns the zero-based pad index of a pad action.
func (a Action) PadIndex() (int, bool) {
	if a < ActionPad1 || a > ActionPad4 {
		return 0, false
	}
	return int(a - ActionPad1), true
}

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionPad1:
		return "Pad1"
	case ActionPad2:
		return "Pad2"
	case ActionPad3:
		return "Pad3"
	case ActionPad4:
		return "Pad4"
	case ActionStart:
		return "Start"
	case ActionPause:
		return "Pause"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame represents the input collected during one simulation tick.
// Actions keep their arrival order: pressing two pads within one tick
// must reach the game in the order they were pressed.
type InputFrame struct {
	actions []Action
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

// Set appends an action to this frame.
func (f *InputFrame) Set(a Action) {
	if a == ActionNone {
		return
	}
	f.actions = append(f.actions, a)
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	for _, got := range f.actions {
		if got == a {
			return true
		}
	}
	return false
}

// Actions returns the actions of this frame in arrival order.
func (f InputFrame) Actions() []Action {
	return f.actions
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	f.actions = f.actions[:0]
}
