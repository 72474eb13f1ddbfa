package modes

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"chipselect/internal/ui/input/types"
)

// IdleMode is active when nothing in the widget has focus
type IdleMode struct {
	keys types.KeyMap
}

func NewIdleMode(keys types.KeyMap) *IdleMode {
	return &IdleMode{keys: keys}
}

func (m *IdleMode) Name() string {
	return "idle"
}

func (m *IdleMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	if actions, ok := globalKeys(msg, m.keys); ok {
		return actions, true
	}

	switch msg.Type {
	case tea.KeyTab:
		return press(types.KeyTab), true
	case tea.KeyShiftTab:
		return press(types.KeyShiftTab), true
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return []types.Action{types.QuitAction{Force: false}}, true
	case key.Matches(msg, m.keys.Focus):
		return dispatch(types.FocusInput{}), true
	}

	return nil, true
}
