package input

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"chipselect/internal/ui/input/modes"
	"chipselect/internal/ui/input/types"
	"chipselect/internal/ui/state"
)

// Handler turns terminal key messages into actions. It owns the text field
// so cursor movement and editing behave like a native input.
type Handler struct {
	keys      types.KeyMap
	modes     map[types.Mode]types.ModeHandler
	textInput *textinput.Model
}

func New(keys types.KeyMap, placeholder string) *Handler {
	ti := textinput.New()
	ti.Prompt = "" // Prompt is handled in the UI layer
	ti.Placeholder = placeholder
	ti.CharLimit = 64

	h := &Handler{
		keys:      keys,
		textInput: &ti,
		modes:     make(map[types.Mode]types.ModeHandler),
	}

	h.modes[types.ModeIdle] = modes.NewIdleMode(keys)
	h.modes[types.ModeInput] = modes.NewInputMode(keys)
	h.modes[types.ModeChip] = modes.NewChipMode(keys)

	return h
}

// HandleKey routes msg to the handler of the mode matching the current focus
func (h *Handler) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, tea.Cmd) {
	mode := types.ModeFor(ctx.Focus())
	handler := h.modes[mode]
	if handler == nil {
		return nil, nil
	}

	actions, consumed := handler.HandleKey(msg, ctx)
	if consumed {
		return actions, nil
	}
	if mode != types.ModeInput {
		return nil, nil
	}

	return h.EditText(msg)
}

// EditText lets the text field process msg and reports its new value
func (h *Handler) EditText(msg tea.Msg) ([]types.Action, tea.Cmd) {
	before := h.textInput.Value()
	var cmd tea.Cmd
	*h.textInput, cmd = h.textInput.Update(msg)
	if after := h.textInput.Value(); after != before {
		return []types.Action{types.UpdateTextAction{Text: after}}, cmd
	}
	return nil, cmd
}

// Sync mirrors controller state into the text field
func (h *Handler) Sync(s state.WidgetState) tea.Cmd {
	if h.textInput.Value() != s.PendingText {
		h.textInput.SetValue(s.PendingText)
		h.textInput.CursorEnd()
	}
	if s.Focus.Kind == state.FocusInput {
		if !h.textInput.Focused() {
			return h.textInput.Focus()
		}
		return nil
	}
	h.textInput.Blur()
	return nil
}

// Update handles non-keyboard messages for the text field (cursor blink)
func (h *Handler) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	*h.textInput, cmd = h.textInput.Update(msg)
	return cmd
}

// Keys returns the active key map
func (h *Handler) Keys() types.KeyMap {
	return h.keys
}

// ModeName returns the display name of the mode for focus f
func (h *Handler) ModeName(f state.Focus) string {
	if handler := h.modes[types.ModeFor(f)]; handler != nil {
		return handler.Name()
	}
	return ""
}

// TextInput returns the text input model
func (h *Handler) TextInput() *textinput.Model {
	return h.textInput
}
