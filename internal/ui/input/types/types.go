package types

import (
	tea "github.com/charmbracelet/bubbletea"

	"chipselect/internal/ui/state"
)

// Mode represents an input mode. The mode follows whichever element of the
// widget owns keyboard focus.
type Mode int

const (
	ModeIdle Mode = iota
	ModeInput
	ModeChip
)

// ModeFor maps a focus owner to its input mode
func ModeFor(f state.Focus) Mode {
	switch f.Kind {
	case state.FocusInput:
		return ModeInput
	case state.FocusChip:
		return ModeChip
	default:
		return ModeIdle
	}
}

// Action represents a command the model should execute
type Action interface {
	Type() string
}

// Context provides read-only access to widget state needed for input handling
type Context interface {
	Focus() state.Focus
	PendingText() string
}

// ModeHandler handles input for a specific mode
type ModeHandler interface {
	// HandleKey processes a key message and returns actions and whether to consume the event
	HandleKey(msg tea.KeyMsg, ctx Context) ([]Action, bool)

	// Name returns the mode name for display
	Name() string
}
