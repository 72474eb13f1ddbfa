package state

import (
	"chipselect/internal/domain"
)

// FocusKind identifies which element owns keyboard focus
type FocusKind int

const (
	FocusNone FocusKind = iota
	FocusInput
	FocusChip
)

// Focus is the single keyboard focus token. Value is set for FocusChip.
type Focus struct {
	Kind  FocusKind
	Value string
}

// String renders the focus target for logs and events
func (f Focus) String() string {
	switch f.Kind {
	case FocusInput:
		return "input"
	case FocusChip:
		return "chip:" + f.Value
	default:
		return "none"
	}
}

// InputFocus and NoFocus are the two value-less focus targets
var (
	InputFocus = Focus{Kind: FocusInput}
	NoFocus    = Focus{Kind: FocusNone}
)

// ChipFocus focuses the chip showing value
func ChipFocus(value string) Focus {
	return Focus{Kind: FocusChip, Value: value}
}

// WidgetState is everything a view needs to draw the widget
type WidgetState struct {
	Selection  []domain.Item // chips, in insertion order
	Selectable []domain.Item // suggestions, in catalog order

	PendingText string

	// The armed chip is tracked by value; HighlightIndex is its current
	// position in Selection, or -1.
	HighlightValue string
	HighlightIndex int

	PanelOpen    bool
	Focus        Focus
	ActiveOption int // index into Selectable, -1 when empty
}

// HighlightedItem returns the chip armed for removal
func (s WidgetState) HighlightedItem() (domain.Item, bool) {
	if s.HighlightIndex < 0 || s.HighlightIndex >= len(s.Selection) {
		return domain.Item{}, false
	}
	return s.Selection[s.HighlightIndex], true
}

// ActiveItem returns the suggestion Enter would pick
func (s WidgetState) ActiveItem() (domain.Item, bool) {
	if s.ActiveOption < 0 || s.ActiveOption >= len(s.Selectable) {
		return domain.Item{}, false
	}
	return s.Selectable[s.ActiveOption], true
}

// PanelVisible reports whether the suggestion panel has anything to show
func (s WidgetState) PanelVisible() bool {
	return s.PanelOpen && len(s.Selectable) > 0
}

// Values returns the selected values in chip order
func (s WidgetState) Values() []string {
	values := make([]string, len(s.Selection))
	for i, item := range s.Selection {
		values[i] = item.Value
	}
	return values
}

// Labels returns the selected labels in chip order
func (s WidgetState) Labels() []string {
	labels := make([]string, len(s.Selection))
	for i, item := range s.Selection {
		labels[i] = item.DisplayLabel()
	}
	return labels
}
