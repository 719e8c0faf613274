package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-mines/internal/core"
)

// KeyMap holds the key bindings of the game screen.
type KeyMap struct {
	Restart    key.Binding
	Confirm    key.Binding
	Back       key.Binding
	Quit       key.Binding
	Screenshot key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Restart, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Restart, k.Confirm, k.Back},
		{k.Screenshot, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Restart: key.NewBinding(
			key.WithKeys("r", "f2"),
			key.WithHelp("r", "new board"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "play again"),
		),
		Back: key.NewBinding(
			key.WithKeys("b", "esc"),
			key.WithHelp("b/esc", "show board"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
	}
}

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct {
	keys KeyMap
}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{keys: DefaultKeyMap()}
}

// Keys returns the bindings in use.
func (km *KeyMapper) Keys() KeyMap { return km.keys }

// MapKey translates a key message to a game action.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, km.keys.Quit):
		return core.ActionQuit
	case key.Matches(msg, km.keys.Restart):
		return core.ActionRestart
	case key.Matches(msg, km.keys.Confirm):
		return core.ActionConfirm
	case key.Matches(msg, km.keys.Back):
		return core.ActionBack
	}
	return core.ActionNone
}

// IsScreenshot reports whether msg asks for a screenshot.
func (km *KeyMapper) IsScreenshot(msg tea.KeyMsg) bool {
	return key.Matches(msg, km.keys.Screenshot)
}

// MouseTracker turns Bubble Tea mouse messages into pointer events. It
// remembers the previous position for enter/leave detection and the pressed
// button, since terminals may report releases without one.
type MouseTracker struct {
	x, y    int
	pressed core.PointerButton
}

// NewMouseTracker starts with the pointer off screen.
func NewMouseTracker() MouseTracker {
	return MouseTracker{x: -1, y: -1}
}

// Translate maps msg to a pointer event. Wheel and unknown actions map to
// nothing.
func (t *MouseTracker) Translate(msg tea.MouseMsg) (core.PointerEvent, bool) {
	ev := core.PointerEvent{X: msg.X, Y: msg.Y, PrevX: t.x, PrevY: t.y}

	switch msg.Action {
	case tea.MouseActionPress:
		b := mapButton(msg.Button)
		if b == core.ButtonNone {
			return ev, false
		}
		ev.Kind = core.PointerDown
		ev.Button = b
		t.pressed = b
	case tea.MouseActionRelease:
		ev.Kind = core.PointerUp
		ev.Button = mapButton(msg.Button)
		if ev.Button == core.ButtonNone {
			ev.Button = t.pressed
		}
		t.pressed = core.ButtonNone
	case tea.MouseActionMotion:
		ev.Kind = core.PointerMotion
		ev.Button = t.pressed
	default:
		return ev, false
	}

	t.x, t.y = msg.X, msg.Y
	return ev, true
}

func mapButton(b tea.MouseButton) core.PointerButton {
	switch b {
	case tea.MouseButtonLeft:
		return core.ButtonLeft
	case tea.MouseButtonRight:
		return core.ButtonRight
	case tea.MouseButtonMiddle:
		return core.ButtonMiddle
	}
	return core.ButtonNone
}
