package types

// DispatchAction forwards an event to the interaction controller.
// With Fallthrough set, a result the controller did not handle is passed
// on to the text field, the way a browser runs a key's default action.
type DispatchAction struct {
	Event       Event
	Fallthrough bool
}

func (a DispatchAction) Type() string { return "dispatch" }

// Text input actions
type UpdateTextAction struct {
	Text string
}

func (a UpdateTextAction) Type() string { return "update_text" }

// ConfirmAction ends the session and reports the selection
type ConfirmAction struct{}

func (a ConfirmAction) Type() string { return "confirm" }

// CopyAction copies the selected labels to the clipboard
type CopyAction struct{}

func (a CopyAction) Type() string { return "copy" }

type ShowHelpAction struct{}

func (a ShowHelpAction) Type() string { return "show_help" }

type QuitAction struct {
	Force bool // true for Ctrl+C, false for 'q'
}

func (a QuitAction) Type() string { return "quit" }
