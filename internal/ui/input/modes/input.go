package modes

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"chipselect/internal/ui/input/types"
)

// InputMode is active while the text field has focus
type InputMode struct {
	keys types.KeyMap
}

func NewInputMode(keys types.KeyMap) *InputMode {
	return &InputMode{keys: keys}
}

func (m *InputMode) Name() string {
	return "input"
}

func (m *InputMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	if actions, ok := globalKeys(msg, m.keys); ok {
		return actions, true
	}

	// Arrows left/right belong to the text cursor here, so only real tabs move focus
	switch msg.Type {
	case tea.KeyTab:
		return press(types.KeyTab), true
	case tea.KeyShiftTab:
		return press(types.KeyShiftTab), true
	}

	switch {
	case key.Matches(msg, m.keys.Remove):
		// The field deletes a character itself when the controller lets it
		return []types.Action{types.DispatchAction{
			Event:       types.KeyPressed{Key: types.KeyBackspace},
			Fallthrough: true,
		}}, true
	case key.Matches(msg, m.keys.Cancel):
		return press(types.KeyEscape), true
	case key.Matches(msg, m.keys.Pick):
		return press(types.KeyEnter), true
	case key.Matches(msg, m.keys.Up):
		return press(types.KeyUp), true
	case key.Matches(msg, m.keys.Down):
		return press(types.KeyDown), true
	}

	// Everything else is typing
	return nil, false
}
