package types

import "chipselect/internal/domain"

// Key is a key the controller reacts to
type Key int

const (
	KeyNone Key = iota
	KeyBackspace
	KeyEscape
	KeyEnter
	KeyUp
	KeyDown
	KeyTab
	KeyShiftTab
)

func (k Key) String() string {
	switch k {
	case KeyBackspace:
		return "backspace"
	case KeyEscape:
		return "esc"
	case KeyEnter:
		return "enter"
	case KeyUp:
		return "up"
	case KeyDown:
		return "down"
	case KeyTab:
		return "tab"
	case KeyShiftTab:
		return "shift+tab"
	default:
		return "none"
	}
}

// Event is an inbound event for the interaction controller
type Event interface {
	Type() string
}

// Focus and blur of the text input
type FocusInput struct{}

func (e FocusInput) Type() string { return "focus_input" }

type BlurInput struct{}

func (e BlurInput) Type() string { return "blur_input" }

// TextChanged carries the full new value of the text field
type TextChanged struct {
	Text string
}

func (e TextChanged) Type() string { return "text_changed" }

type KeyPressed struct {
	Key Key
}

func (e KeyPressed) Type() string { return "key_pressed" }

// PointerSelect is a click on a suggestion
type PointerSelect struct {
	Item domain.Item
}

func (e PointerSelect) Type() string { return "pointer_select" }

// PointerRemove is a click on a chip's remove control
type PointerRemove struct {
	Item domain.Item
}

func (e PointerRemove) Type() string { return "pointer_remove" }

// FocusChip moves keyboard focus onto a chip
type FocusChip struct {
	Item domain.Item
}

func (e FocusChip) Type() string { return "focus_chip" }

// ClearSelection removes every chip
type ClearSelection struct{}

func (e ClearSelection) Type() string { return "clear_selection" }
