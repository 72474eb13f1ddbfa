package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/noborus/ov/oviewer"

	inputtypes "chipselect/internal/ui/input/types"
)

// HelpRenderer handles help content rendering
type HelpRenderer struct {
	keys inputtypes.KeyMap
}

// NewHelpRenderer creates a new help renderer
func NewHelpRenderer(keys inputtypes.KeyMap) *HelpRenderer {
	return &HelpRenderer{keys: keys}
}

type helpSection struct {
	title    string
	bindings []key.Binding
}

// RenderHelpContent generates help content with colors for the pager
func (r *HelpRenderer) RenderHelpContent() string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("99")).
		MarginBottom(1)

	sectionStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("39")).
		MarginTop(1)

	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("220")).
		Width(12)

	descStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252"))

	k := r.keys
	sections := []helpSection{
		{"Typing", []key.Binding{k.Pick, k.Up, k.Down, k.Remove, k.Cancel}},
		{"Chips", []key.Binding{k.Next, k.Prev, k.ClearAll}},
		{"Idle", []key.Binding{k.Focus, k.Quit}},
		{"Anywhere", []key.Binding{k.Confirm, k.Copy, k.Help, k.Abort}},
	}

	var help strings.Builder
	help.WriteString(titleStyle.Render("Chipselect Help"))
	help.WriteString("\n")

	for _, s := range sections {
		help.WriteString(sectionStyle.Render(s.title))
		help.WriteString("\n")
		for _, b := range s.bindings {
			h := b.Help()
			help.WriteString(fmt.Sprintf("  %s %s\n", keyStyle.Render(strings.Join(b.Keys(), ", ")), descStyle.Render(h.Desc)))
		}
	}

	notes := lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("241"))
	help.WriteString("\n")
	help.WriteString(notes.Render("  Backspace on an empty field arms the last chip; press it again to remove it."))
	help.WriteString("\n")
	help.WriteString(notes.Render("  Click a suggestion to add it, a chip to focus it, or × to remove it."))

	return help.String()
}

// HelpPager shows help outside the Bubble Tea screen
type HelpPager struct {
	program *tea.Program // reference to Bubble Tea program for terminal management
}

// NewHelpPager creates a new help pager
func NewHelpPager() *HelpPager {
	return &HelpPager{}
}

// SetProgram sets the program whose terminal is released while paging
func (h *HelpPager) SetProgram(p *tea.Program) {
	h.program = p
}

// Show shows help content using the ov pager
func (h *HelpPager) Show(helpContent string) error {
	if h.program == nil {
		return fmt.Errorf("program not set")
	}

	if err := h.program.ReleaseTerminal(); err != nil {
		return err
	}

	defer func() {
		// give ov time to leave the alternate screen
		time.Sleep(100 * time.Millisecond)
		_ = h.program.RestoreTerminal()
	}()

	root, err := oviewer.NewRoot(strings.NewReader(helpContent))
	if err != nil {
		return err
	}

	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false
	root.SetConfig(config)

	return root.Run()
}
