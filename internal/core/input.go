package core

// Action represents a semantic game action, abstracted from physical key presses.
// Games work with intents; the platform decides which keys produce them.
type Action int

const (
	ActionNone       Action = iota
	ActionLeft              // Left arrow, h - move hover cursor left
	ActionRight             // Right arrow, l - move hover cursor right
	ActionUp                // Up arrow, k - move hover cursor up a row
	ActionDown              // Down arrow, j - move hover cursor down a row
	ActionActivate          // Enter, Space, mouse click or tube shortcut
	ActionRestart           // F5 - rebuild the current level
	ActionSkip              // F6 - jump to the next level
	ActionNext              // N - continue after a solved level
	ActionFullscreen        // F11 - toggle fullscreen request
	ActionPause             // P - pause/unpause
	ActionBack              // Escape - go back to menu
	ActionQuit              // Ctrl+C - exit game/session
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
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionActivate:
		return "Activate"
	case ActionRestart:
		return "Restart"
	case ActionSkip:
		return "Skip"
	case ActionNext:
		return "Next"
	case ActionFullscreen:
		return "Fullscreen"
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

// NoTube marks an input frame that does not address a specific tube.
const NoTube = -1

// InputFrame is the input for a single event.
type InputFrame struct {
	// Actions maps action types to whether they were triggered.
	Actions map[Action]bool

	// Tube is the tube addressed by ActionActivate, or NoTube to activate
	// the hovered tube.
	Tube int
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
		Tube:    NoTube,
	}
}

// TubeFrame creates a frame that activates tube i directly.
func TubeFrame(i int) InputFrame {
	f := NewInputFrame()
	f.Set(ActionActivate)
	f.Tube = i
	return f
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

// Empty reports whether no action was triggered.
func (f InputFrame) Empty() bool {
	for _, v := range f.Actions {
		if v {
			return false
		}
	}
	return true
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Tube = NoTube
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	clone.Tube = f.Tube
	return clone
}
