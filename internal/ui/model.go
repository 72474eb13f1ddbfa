package ui

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"chipselect/internal/config"
	"chipselect/internal/domain"
	"chipselect/internal/eventbus"
	"chipselect/internal/ui/controller"
	"chipselect/internal/ui/input"
	inputtypes "chipselect/internal/ui/input/types"
	"chipselect/internal/ui/logic"
	"chipselect/internal/ui/state"
	"chipselect/internal/ui/views"
)

const statusTimeout = 3 * time.Second

// Model hosts one chip select widget in the terminal
type Model struct {
	bus     eventbus.EventBus
	config  *config.Config
	catalog *domain.Catalog

	width       int
	height      int
	help        help.Model
	inPagerMode bool // tracks if we're currently in pager mode

	controller   *controller.Controller
	inputHandler *input.Handler
	renderer     *views.Renderer
	helpRenderer *HelpRenderer
	pager        *HelpPager
	panelView    *logic.Viewport
	frame        views.Frame // last rendered frame, used for mouse hit testing

	statusMessage string
	statusIsError bool

	confirmed bool
	result    []domain.Item

	copyToClipboard func(string) error
	program         *tea.Program
}

// NewModel creates a UI model over catalog using the preset and text from cfg
func NewModel(bus eventbus.EventBus, cfg *config.Config, catalog *domain.Catalog) *Model {
	keys := inputtypes.DefaultKeyMap()

	return &Model{
		bus:             bus,
		config:          cfg,
		catalog:         catalog,
		help:            help.New(),
		controller:      controller.New(catalog, cfg.Preset, bus),
		inputHandler:    input.New(keys, cfg.Placeholder),
		renderer:        views.NewRenderer(),
		panelView:       logic.NewViewport(cfg.UISettings.MaxPanelHeight),
		helpRenderer:    NewHelpRenderer(keys),
		pager:           NewHelpPager(),
		copyToClipboard: clipboard.WriteAll,
	}
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
	m.pager.SetProgram(p)
}

// Result returns the confirmed selection; ok is false when the user aborted
func (m *Model) Result() (items []domain.Item, ok bool) {
	return m.result, m.confirmed
}

// State returns the widget state currently displayed
func (m *Model) State() state.WidgetState {
	return m.controller.State()
}

// Init focuses the input so typing works right away
func (m *Model) Init() tea.Cmd {
	m.controller.Handle(inputtypes.FocusInput{})
	return tea.Batch(textinput.Blink, m.inputHandler.Sync(m.controller.State()))
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		if m.inPagerMode {
			return m, nil
		}
		return m, m.handleKey(msg)

	case tea.MouseMsg:
		if m.inPagerMode || !m.config.UISettings.Mouse {
			return m, nil
		}
		return m, m.handleMouse(msg)

	case copyMsg:
		if msg.err != nil {
			m.publishError("clipboard write failed", msg.err)
			return m, m.setStatus(fmt.Sprintf("Copy failed: %v", msg.err), true)
		}
		return m, m.setStatus(fmt.Sprintf("Copied %d item(s)", msg.count), false)

	case helpPagerMsg:
		if msg.err != nil {
			// Pager failed, fall back to the inline full help
			m.publishError("help pager failed", msg.err)
			m.help.ShowAll = true
		}
		return m, nil

	case pauseRenderingMsg:
		m.inPagerMode = true
		return m, nil

	case resumeRenderingMsg:
		m.inPagerMode = false
		return m, nil

	case clearStatusMsg:
		m.statusMessage = ""
		m.statusIsError = false
		return m, nil

	default:
		return m, m.inputHandler.Update(msg)
	}
}

// View renders the UI
func (m *Model) View() string {
	if m.inPagerMode {
		return ""
	}

	s := m.controller.State()
	ti := m.inputHandler.TextInput()
	vs := views.ViewState{
		Width:  m.width,
		Height: m.height,
		Title:  m.config.Title,
		Widget: s,
		RenderInput: func(width int) string {
			// one column is reserved for the cursor
			ti.Width = max(1, width-1)
			return ti.View()
		},
		MaxPanelHeight: m.panelView.Height(),
		PanelOffset:    m.panelView.Follow(s.ActiveOption, len(s.Selectable)),
		StatusMessage:  m.statusMessage,
		StatusIsError:  m.statusIsError,
		ModeName:       m.inputHandler.ModeName(s.Focus),
	}
	if m.config.UISettings.ShowHelp {
		vs.HelpView = m.help.View(m.inputHandler.Keys())
	}

	m.frame = m.renderer.Render(vs)
	return m.frame.Content
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	actions, cmd := m.inputHandler.HandleKey(msg, widgetContext{m.controller.State()})

	cmds := []tea.Cmd{cmd}
	for _, action := range actions {
		cmds = append(cmds, m.processAction(action, msg))
	}
	cmds = append(cmds, m.inputHandler.Sync(m.controller.State()))

	return tea.Batch(cmds...)
}

// processAction processes an action from the input handler
func (m *Model) processAction(action inputtypes.Action, msg tea.KeyMsg) tea.Cmd {
	switch a := action.(type) {
	case inputtypes.DispatchAction:
		res := m.controller.Handle(a.Event)
		if !res.Handled && a.Fallthrough {
			// the text field edits at its cursor, its value wins
			_, cmd := m.inputHandler.EditText(msg)
			m.controller.Handle(inputtypes.TextChanged{Text: m.inputHandler.TextInput().Value()})
			return cmd
		}

	case inputtypes.UpdateTextAction:
		m.controller.Handle(inputtypes.TextChanged{Text: a.Text})

	case inputtypes.ConfirmAction:
		m.result = m.controller.Confirm()
		m.confirmed = true
		return tea.Quit

	case inputtypes.CopyAction:
		return m.copySelection()

	case inputtypes.ShowHelpAction:
		return m.showHelp()

	case inputtypes.QuitAction:
		return tea.Quit
	}

	return nil
}

func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return nil
	}

	hit, ok := m.frame.HitAt(msg.X, msg.Y)
	if !ok {
		m.controller.Handle(inputtypes.BlurInput{})
		return m.inputHandler.Sync(m.controller.State())
	}

	item, known := m.catalog.Lookup(hit.Value)
	switch hit.Kind {
	case views.HitInput:
		m.controller.Handle(inputtypes.FocusInput{})
	case views.HitChip:
		if known {
			m.controller.Handle(inputtypes.FocusChip{Item: item})
		}
	case views.HitChipRemove:
		if known {
			m.controller.Handle(inputtypes.PointerRemove{Item: item})
		}
	case views.HitOption:
		if known {
			m.controller.Handle(inputtypes.PointerSelect{Item: item})
		}
	}

	return m.inputHandler.Sync(m.controller.State())
}

func (m *Model) copySelection() tea.Cmd {
	labels := m.controller.State().Labels()
	if len(labels) == 0 {
		return m.setStatus("Nothing selected", true)
	}

	write := m.copyToClipboard
	return func() tea.Msg {
		err := write(strings.Join(labels, "\n"))
		return copyMsg{count: len(labels), err: err}
	}
}

// showHelp opens the full help in the ov pager, or inline without a program
func (m *Model) showHelp() tea.Cmd {
	if m.program == nil {
		m.help.ShowAll = !m.help.ShowAll
		return nil
	}

	content := m.helpRenderer.RenderHelpContent()
	return func() tea.Msg {
		m.program.Send(pauseRenderingMsg{})
		err := m.pager.Show(content)
		m.program.Send(resumeRenderingMsg{})
		return helpPagerMsg{err: err}
	}
}

func (m *Model) publishError(message string, err error) {
	log.Printf("%s: %v", message, err)
	if m.bus != nil {
		m.bus.Publish(eventbus.ErrorEvent{Message: message, Err: err})
	}
}

func (m *Model) setStatus(message string, isError bool) tea.Cmd {
	m.statusMessage = message
	m.statusIsError = isError
	return tea.Tick(statusTimeout, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}

// widgetContext exposes controller state to the input modes
type widgetContext struct {
	s state.WidgetState
}

func (c widgetContext) Focus() state.Focus  { return c.s.Focus }
func (c widgetContext) PendingText() string { return c.s.PendingText }
