package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"chipselect/internal/domain"
	"chipselect/internal/ui/state"
)

const (
	minFieldWidth = 24
	maxFieldWidth = 72
	minInputWidth = 12 // below this the input wraps onto its own row
)

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width          int
	Height         int
	Title          string
	Widget         state.WidgetState
	RenderInput    func(width int) string // draws the text field at the given width
	MaxPanelHeight int
	PanelOffset    int // first visible suggestion when the panel scrolls
	StatusMessage  string
	StatusIsError  bool
	ModeName       string
	HelpView       string
}

// Renderer handles all view rendering
type Renderer struct {
	styles *Styles
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	return &Renderer{styles: NewStyles()}
}

// Render produces the complete view and the clickable regions in it
func (r *Renderer) Render(vs ViewState) Frame {
	var b strings.Builder
	var hits []Hit
	y := 0

	b.WriteString(r.styles.Title.Render(vs.Title))
	b.WriteString("\n\n")
	y += 2

	boxWidth := fieldWidth(vs.Width)
	lines, fieldHits := r.layoutField(vs, boxWidth-4)

	fieldStyle := r.styles.Field
	if vs.Widget.Focus.Kind != state.FocusNone {
		fieldStyle = r.styles.FieldFocused
	}
	field := fieldStyle.Width(boxWidth - 2).Render(strings.Join(lines, "\n"))
	fieldHeight := lipgloss.Height(field)

	// Anywhere on the box focuses the input; chips and the text area sit on top.
	// Content starts one row and two columns in (border, padding).
	hits = append(hits, Hit{Kind: HitInput, X0: 0, X1: boxWidth, Y: y, Rows: fieldHeight})
	hits = append(hits, offset(fieldHits, 2, y+1)...)
	b.WriteString(field)
	b.WriteString("\n")
	y += fieldHeight

	if vs.Widget.PanelVisible() {
		panel, optionHits := r.renderPanel(vs, boxWidth)
		hits = append(hits, offset(optionHits, 1, y+1)...)
		b.WriteString(panel)
		b.WriteString("\n")
	}

	b.WriteString(r.renderStatus(vs))
	if vs.HelpView != "" {
		b.WriteString("\n")
		b.WriteString(r.styles.Help.Render(vs.HelpView))
	}

	return Frame{Content: b.String(), Hits: hits}
}

// layoutField flows chips left to right, wrapping at width, and puts the
// text input after the last chip. Hits are relative to the field content.
func (r *Renderer) layoutField(vs ViewState, width int) ([]string, []Hit) {
	var lines []string
	var hits []Hit
	var line strings.Builder
	x, row := 0, 0

	newLine := func() {
		lines = append(lines, line.String())
		line.Reset()
		x = 0
		row++
	}

	for i, item := range vs.Widget.Selection {
		body, remove := r.renderChip(vs.Widget, i, item, width)
		bodyWidth := lipgloss.Width(body)
		chipWidth := bodyWidth + lipgloss.Width(remove)

		if x > 0 && x+1+chipWidth > width {
			newLine()
		}
		if x > 0 {
			line.WriteString(" ")
			x++
		}
		hits = append(hits,
			Hit{Kind: HitChip, Value: item.Value, X0: x, X1: x + bodyWidth, Y: row},
			Hit{Kind: HitChipRemove, Value: item.Value, X0: x + bodyWidth, X1: x + chipWidth, Y: row},
		)
		line.WriteString(body)
		line.WriteString(remove)
		x += chipWidth
	}

	if x > 0 {
		if width-x-1 < minInputWidth {
			newLine()
		} else {
			line.WriteString(" ")
			x++
		}
	}
	inputWidth := width - x
	hits = append(hits, Hit{Kind: HitInput, X0: x, X1: x + inputWidth, Y: row})
	line.WriteString(r.renderInput(vs, inputWidth))
	lines = append(lines, line.String())

	return lines, hits
}

func (r *Renderer) renderChip(w state.WidgetState, index int, item domain.Item, width int) (body, remove string) {
	style, removeStyle := r.styles.Chip, r.styles.ChipRemove
	switch {
	case index == w.HighlightIndex:
		style, removeStyle = r.styles.ChipArmed, r.styles.ChipArmed
	case w.Focus.Kind == state.FocusChip && w.Focus.Value == item.Value:
		style, removeStyle = r.styles.ChipFocused, r.styles.ChipFocused
	}

	label := ansi.Truncate(item.DisplayLabel(), width-4, "…")
	return style.Render(" " + label + " "), removeStyle.Render("× ")
}

func (r *Renderer) renderInput(vs ViewState, width int) string {
	if vs.RenderInput != nil {
		return vs.RenderInput(width)
	}
	return ansi.Truncate(vs.Widget.PendingText, width, "")
}

// renderPanel draws the suggestion list from PanelOffset.
// Hits are relative to the panel content.
func (r *Renderer) renderPanel(vs ViewState, boxWidth int) (string, []Hit) {
	items := vs.Widget.Selectable
	active := vs.Widget.ActiveOption
	start, end := visibleRange(vs.PanelOffset, len(items), vs.MaxPanelHeight)
	rowWidth := boxWidth - 2

	var rows []string
	var hits []Hit
	for i := start; i < end; i++ {
		style := r.styles.Option
		if i == active {
			style = r.styles.OptionActive
		}
		label := ansi.Truncate(items[i].DisplayLabel(), rowWidth-2, "…")
		rows = append(rows, style.Width(rowWidth).Render(" "+label))
		hits = append(hits, Hit{Kind: HitOption, Value: items[i].Value, X0: 0, X1: rowWidth, Y: i - start})
	}
	if start > 0 || end < len(items) {
		rows = append(rows, r.styles.Dim.Width(rowWidth).Render(fmt.Sprintf(" %d-%d of %d", start+1, end, len(items))))
	}

	return r.styles.Panel.Render(strings.Join(rows, "\n")), hits
}

func (r *Renderer) renderStatus(vs ViewState) string {
	parts := []string{fmt.Sprintf("%d selected", len(vs.Widget.Selection))}
	if item, ok := vs.Widget.HighlightedItem(); ok {
		parts = append(parts, fmt.Sprintf("⌫ again removes %s, esc keeps it", item.DisplayLabel()))
	}
	if vs.ModeName != "" {
		parts = append(parts, vs.ModeName)
	}
	status := r.styles.Status.Render(strings.Join(parts, " · "))

	if vs.StatusMessage != "" {
		msgStyle := r.styles.StatusSuccess
		if vs.StatusIsError {
			msgStyle = r.styles.StatusError
		}
		status += "  " + msgStyle.Render(vs.StatusMessage)
	}
	return status
}

// visibleRange returns the [start, end) rows of n that fit in height rows from offset
func visibleRange(offset, n, height int) (int, int) {
	if height <= 0 || n <= height {
		return 0, n
	}
	start := max(0, min(offset, n-height))
	return start, start + height
}

func fieldWidth(termWidth int) int {
	if termWidth <= 0 {
		termWidth = 80
	}
	return max(minFieldWidth, min(termWidth, maxFieldWidth))
}
