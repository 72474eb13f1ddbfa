package controller

import (
	"log"
	"unicode/utf8"

	"github.com/google/uuid"

	"chipselect/internal/domain"
	"chipselect/internal/eventbus"
	"chipselect/internal/ui/input/types"
	"chipselect/internal/ui/logic"
	"chipselect/internal/ui/services/selection"
	"chipselect/internal/ui/state"
)

// Result is the outcome of one event.
// Handled is false when the host should apply the text field's own
// behaviour for the key, e.g. Backspace while the field has text.
type Result struct {
	State   state.WidgetState
	Handled bool
}

// Controller is the interaction state machine of one multi-select widget.
// It is not safe for concurrent use; the host feeds it one event at a time.
type Controller struct {
	id        string
	catalog   *domain.Catalog
	selection *selection.Service
	bus       eventbus.EventBus // optional

	pendingText string
	highlight   string // value of the armed chip, "" when none
	panelOpen   bool
	focus       state.Focus
	active      int
}

// New creates a controller over catalog with preset values pre-selected.
// Unknown preset values are dropped. bus may be nil.
func New(catalog *domain.Catalog, preset []string, bus eventbus.EventBus) *Controller {
	items, unknown := catalog.Resolve(preset)
	for _, v := range unknown {
		log.Printf("Ignoring preset value %q: not in catalog", v)
	}

	c := &Controller{
		id:        uuid.NewString(),
		catalog:   catalog,
		selection: selection.NewService(catalog, items),
		bus:       bus,
		focus:     state.NoFocus,
	}
	c.active = logic.ClampIndex(0, len(c.selectable()))
	return c
}

// ID identifies this widget instance in published events
func (c *Controller) ID() string {
	return c.id
}

// State returns a snapshot of the render state
func (c *Controller) State() state.WidgetState {
	selectable := c.selectable()
	return state.WidgetState{
		Selection:      c.selection.Items(),
		Selectable:     selectable,
		PendingText:    c.pendingText,
		HighlightValue: c.highlight,
		HighlightIndex: c.highlightIndex(),
		PanelOpen:      c.panelOpen,
		Focus:          c.focus,
		ActiveOption:   logic.ClampIndex(c.active, len(selectable)),
	}
}

// Handle applies one inbound event and returns the resulting state
func (c *Controller) Handle(event types.Event) Result {
	handled := true

	switch ev := event.(type) {
	case types.FocusInput:
		c.setFocus(state.InputFocus)

	case types.BlurInput:
		c.setFocus(state.NoFocus)

	case types.TextChanged:
		c.pendingText = ev.Text

	case types.PointerSelect:
		c.add(ev.Item)

	case types.PointerRemove:
		c.remove(ev.Item)

	case types.FocusChip:
		if c.selection.Contains(ev.Item.Value) {
			c.setFocus(state.ChipFocus(ev.Item.Value))
		}

	case types.ClearSelection:
		c.clear()

	case types.KeyPressed:
		handled = c.handleKey(ev.Key)

	default:
		handled = false
	}

	c.active = logic.ClampIndex(c.active, len(c.selectable()))
	return Result{State: c.State(), Handled: handled}
}

// Confirm announces the final selection and returns it
func (c *Controller) Confirm() []domain.Item {
	items := c.selection.Items()
	c.publish(eventbus.SelectionDoneEvent{WidgetID: c.id, Items: items})
	return items
}

func (c *Controller) handleKey(key types.Key) bool {
	switch key {
	case types.KeyBackspace:
		return c.backspace()

	case types.KeyEscape:
		if c.highlight != "" {
			c.setHighlight("")
		} else {
			c.setFocus(state.NoFocus)
		}
		return true

	case types.KeyEnter:
		if c.focus.Kind == state.FocusChip {
			if item, ok := c.catalog.Lookup(c.focus.Value); ok {
				c.remove(item)
			}
			return true
		}
		if c.panelOpen {
			selectable := c.selectable()
			if i := logic.ClampIndex(c.active, len(selectable)); i >= 0 {
				c.add(selectable[i])
				return true
			}
		}
		return false

	case types.KeyUp, types.KeyDown:
		n := len(c.selectable())
		if c.focus.Kind != state.FocusInput || !c.panelOpen || n == 0 {
			return false
		}
		delta := 1
		if key == types.KeyUp {
			delta = -1
		}
		c.active = logic.WrapIndex(c.active, delta, n)
		return true

	case types.KeyTab:
		switch c.focus.Kind {
		case state.FocusChip:
			c.moveChipFocus(1)
			return true
		case state.FocusNone:
			c.setFocus(state.InputFocus)
			return true
		}
		return false

	case types.KeyShiftTab:
		if c.focus.Kind == state.FocusChip {
			c.moveChipFocus(-1)
			return true
		}
		if last, ok := c.selection.Last(); ok {
			c.setFocus(state.ChipFocus(last.Value))
			return true
		}
		return false
	}

	return false
}

// backspace implements arm/confirm removal on an empty field
func (c *Controller) backspace() bool {
	if c.pendingText != "" {
		// only a focused field edits its text
		if c.focus.Kind == state.FocusInput {
			_, size := utf8.DecodeLastRuneInString(c.pendingText)
			c.pendingText = c.pendingText[:len(c.pendingText)-size]
		}
		return false
	}

	if c.highlight == "" {
		if last, ok := c.selection.Last(); ok {
			c.setHighlight(last.Value)
		}
		return true
	}

	if item, ok := c.catalog.Lookup(c.highlight); ok && c.selection.Contains(item.Value) {
		c.remove(item)
	} else {
		c.setHighlight("")
	}
	return true
}

// moveChipFocus walks chip focus; stepping past either end lands on the input
func (c *Controller) moveChipFocus(delta int) {
	next := c.selection.IndexOf(c.focus.Value) + delta
	if item, ok := c.selection.At(next); ok {
		c.setFocus(state.ChipFocus(item.Value))
		return
	}
	c.setFocus(state.InputFocus)
}

func (c *Controller) add(item domain.Item) {
	change := c.selection.Add(item)
	if change.Empty() {
		return
	}
	c.pendingText = ""
	c.setHighlight("")
	c.publish(eventbus.ItemAddedEvent{WidgetID: c.id, Item: change.Added[0], Total: change.Total})
}

func (c *Controller) remove(item domain.Item) {
	change := c.selection.Remove(item)
	if change.Empty() {
		return
	}
	c.setHighlight("")
	c.publish(eventbus.ItemRemovedEvent{WidgetID: c.id, Item: change.Removed[0], Total: change.Total})
	c.setFocus(state.InputFocus)
}

func (c *Controller) clear() {
	change := c.selection.Clear()
	c.setHighlight("")
	if !change.Empty() {
		c.publish(eventbus.SelectionClearedEvent{WidgetID: c.id, Removed: change.Removed})
	}
	c.setFocus(state.InputFocus)
}

func (c *Controller) setHighlight(value string) {
	if c.highlight == value {
		return
	}
	c.highlight = value
	c.publish(eventbus.HighlightChangedEvent{WidgetID: c.id, Value: value, Index: c.highlightIndex()})
}

// setFocus moves the focus token; the panel is open exactly while the input has it
func (c *Controller) setFocus(f state.Focus) {
	if c.focus != f {
		c.focus = f
		c.publish(eventbus.FocusMovedEvent{WidgetID: c.id, Target: f.String()})
	}
	c.setPanel(f.Kind == state.FocusInput)
}

func (c *Controller) setPanel(open bool) {
	if c.panelOpen == open {
		return
	}
	c.panelOpen = open
	c.publish(eventbus.PanelToggledEvent{WidgetID: c.id, Open: open})
}

func (c *Controller) highlightIndex() int {
	if c.highlight == "" {
		return -1
	}
	return c.selection.IndexOf(c.highlight)
}

func (c *Controller) selectable() []domain.Item {
	return logic.Selectable(c.catalog, c.selection)
}

func (c *Controller) publish(event eventbus.DomainEvent) {
	if c.bus != nil {
		c.bus.Publish(event)
	}
}
