package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventItemAdded        EventType = "ItemAdded"
	EventItemRemoved      EventType = "ItemRemoved"
	EventSelectionCleared EventType = "SelectionCleared"
	EventHighlightChanged EventType = "HighlightChanged"
	EventPanelToggled     EventType = "PanelToggled"
	EventFocusMoved       EventType = "FocusMoved"
	EventSelectionDone    EventType = "SelectionDone"
	EventConfigLoaded     EventType = "ConfigLoaded"
	EventConfigSaved      EventType = "ConfigSaved"
	EventError            EventType = "Error"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// ItemAddedEvent is emitted when an item becomes a chip
type ItemAddedEvent struct {
	WidgetID string
	Item     Item
	Total    int
}

func (e ItemAddedEvent) Type() EventType { return EventItemAdded }

// ItemRemovedEvent is emitted when a chip is removed
type ItemRemovedEvent struct {
	WidgetID string
	Item     Item
	Total    int
}

func (e ItemRemovedEvent) Type() EventType { return EventItemRemoved }

// SelectionClearedEvent is emitted on remove-all
type SelectionClearedEvent struct {
	WidgetID string
	Removed  []Item
}

func (e SelectionClearedEvent) Type() EventType { return EventSelectionCleared }

// HighlightChangedEvent is emitted when a chip is armed for removal or disarmed.
// Value is empty when no chip is highlighted.
type HighlightChangedEvent struct {
	WidgetID string
	Value    string
	Index    int
}

func (e HighlightChangedEvent) Type() EventType { return EventHighlightChanged }

// PanelToggledEvent is emitted when the suggestion panel opens or closes
type PanelToggledEvent struct {
	WidgetID string
	Open     bool
}

func (e PanelToggledEvent) Type() EventType { return EventPanelToggled }

// FocusMovedEvent is emitted when keyboard focus changes owner
type FocusMovedEvent struct {
	WidgetID string
	Target   string // "input", "chip:<value>" or "none"
}

func (e FocusMovedEvent) Type() EventType { return EventFocusMoved }

// SelectionDoneEvent is emitted when the user confirms the selection
type SelectionDoneEvent struct {
	WidgetID string
	Items    []Item
}

func (e SelectionDoneEvent) Type() EventType { return EventSelectionDone }

// ConfigLoadedEvent is emitted after configuration is loaded
type ConfigLoadedEvent struct {
	Path         string
	CatalogItems int
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted after configuration is written
type ConfigSavedEvent struct {
	Path string
}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }

// ErrorEvent is emitted when an error occurs
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }
