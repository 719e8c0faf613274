package core

// Action represents a semantic keyboard action, abstracted from physical keys.
type Action int

const (
	ActionNone    Action = iota
	ActionConfirm        // Enter - confirm in overlays
	ActionBack           // B, Escape - leave the current overlay
	ActionRestart        // R - start a fresh board
	ActionQuit           // Q, Ctrl+C - exit the session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionConfirm:
		return "Confirm"
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

// PointerKind distinguishes pointer event types.
type PointerKind int

const (
	PointerDown PointerKind = iota
	PointerUp
	PointerMotion
)

// String returns a human-readable name for the pointer kind.
func (k PointerKind) String() string {
	switch k {
	case PointerDown:
		return "Down"
	case PointerUp:
		return "Up"
	case PointerMotion:
		return "Motion"
	default:
		return "Unknown"
	}
}

// PointerButton identifies which button a down/up event refers to.
type PointerButton int

const (
	ButtonNone PointerButton = iota
	ButtonLeft
	ButtonRight
	ButtonMiddle
)

// String returns a human-readable name for the button.
func (b PointerButton) String() string {
	switch b {
	case ButtonNone:
		return "None"
	case ButtonLeft:
		return "Left"
	case ButtonRight:
		return "Right"
	case ButtonMiddle:
		return "Middle"
	default:
		return "Unknown"
	}
}

// PointerEvent is a platform-neutral mouse event in canvas coordinates.
// Motion events carry the previous pointer position so receivers can detect
// enter/leave transitions without tracking it themselves.
type PointerEvent struct {
	Kind         PointerKind
	Button       PointerButton
	X, Y         int
	PrevX, PrevY int
}

// Event is anything delivered to a drawable's input handler.
// It is either a PointerEvent or an ActionEvent.
type Event interface {
	isEvent()
}

// ActionEvent wraps a keyboard action.
type ActionEvent struct {
	Action Action
}

func (PointerEvent) isEvent() {}
func (ActionEvent) isEvent()  {}
