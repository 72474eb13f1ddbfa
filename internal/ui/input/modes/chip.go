package modes

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"chipselect/internal/ui/input/types"
)

// ChipMode is active while a chip has keyboard focus
type ChipMode struct {
	keys types.KeyMap
}

func NewChipMode(keys types.KeyMap) *ChipMode {
	return &ChipMode{keys: keys}
}

func (m *ChipMode) Name() string {
	return "chip"
}

func (m *ChipMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	if actions, ok := globalKeys(msg, m.keys); ok {
		return actions, true
	}

	switch {
	case key.Matches(msg, m.keys.Pick):
		return press(types.KeyEnter), true
	case key.Matches(msg, m.keys.Next):
		return press(types.KeyTab), true
	case key.Matches(msg, m.keys.Prev):
		return press(types.KeyShiftTab), true
	case key.Matches(msg, m.keys.Remove):
		// Text belongs to the blurred field; leave it alone
		if ctx.PendingText() != "" {
			return nil, true
		}
		return press(types.KeyBackspace), true
	case key.Matches(msg, m.keys.Cancel):
		return press(types.KeyEscape), true
	}

	// A chip is not editable; swallow anything else
	return nil, true
}
