package modes

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"chipselect/internal/ui/input/types"
)

// globalKeys handles the bindings that work regardless of focus
func globalKeys(msg tea.KeyMsg, keys types.KeyMap) ([]types.Action, bool) {
	switch {
	case key.Matches(msg, keys.Abort):
		return []types.Action{types.QuitAction{Force: true}}, true
	case key.Matches(msg, keys.Confirm):
		return []types.Action{types.ConfirmAction{}}, true
	case key.Matches(msg, keys.Copy):
		return []types.Action{types.CopyAction{}}, true
	case key.Matches(msg, keys.Help):
		return []types.Action{types.ShowHelpAction{}}, true
	case key.Matches(msg, keys.ClearAll):
		return dispatch(types.ClearSelection{}), true
	}
	return nil, false
}

func dispatch(ev types.Event) []types.Action {
	return []types.Action{types.DispatchAction{Event: ev}}
}

func press(k types.Key) []types.Action {
	return dispatch(types.KeyPressed{Key: k})
}
