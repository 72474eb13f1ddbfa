package views

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chipselect/internal/domain"
	"chipselect/internal/ui/state"
)

func widget(focus state.Focus) state.WidgetState {
	return state.WidgetState{
		Selection: []domain.Item{
			{Value: "astro", Label: "Astro"},
			{Value: "remix", Label: "Remix"},
		},
		Selectable: []domain.Item{
			{Value: "next", Label: "Next.js"},
			{Value: "svelte", Label: "SvelteKit"},
		},
		HighlightIndex: -1,
		PanelOpen:      focus.Kind == state.FocusInput,
		Focus:          focus,
	}
}

func findHit(t *testing.T, f Frame, kind HitKind, value string) Hit {
	t.Helper()
	for _, h := range f.Hits {
		if h.Kind == kind && h.Value == value {
			return h
		}
	}
	require.Failf(t, "hit not found", "kind %d value %q", kind, value)
	return Hit{}
}

func TestRenderShowsChipsAndStatus(t *testing.T) {
	r := NewRenderer()
	f := r.Render(ViewState{Width: 80, Title: "Select frameworks", Widget: widget(state.NoFocus)})
	plain := ansi.Strip(f.Content)

	assert.Contains(t, plain, "Select frameworks")
	assert.Contains(t, plain, " Astro × ")
	assert.Contains(t, plain, " Remix × ")
	assert.Contains(t, plain, "2 selected")
	assert.NotContains(t, plain, "SvelteKit", "panel is closed without focus")
}

func TestRenderPanelWhenFocused(t *testing.T) {
	r := NewRenderer()
	w := widget(state.InputFocus)
	w.ActiveOption = 1
	f := r.Render(ViewState{Width: 80, Widget: w})
	plain := ansi.Strip(f.Content)

	assert.Contains(t, plain, "Next.js")
	assert.Contains(t, plain, "SvelteKit")

	next := findHit(t, f, HitOption, "next")
	svelte := findHit(t, f, HitOption, "svelte")
	assert.Equal(t, next.Y+1, svelte.Y)

	hit, ok := f.HitAt(svelte.X0, svelte.Y)
	require.True(t, ok)
	assert.Equal(t, HitOption, hit.Kind)
	assert.Equal(t, "svelte", hit.Value)
}

func TestChipHitsSitOnTopOfField(t *testing.T) {
	r := NewRenderer()
	f := r.Render(ViewState{Width: 80, Widget: widget(state.InputFocus)})

	astro := findHit(t, f, HitChip, "astro")
	assert.Equal(t, 3, astro.Y, "first content row is below the title and top border")
	assert.Equal(t, 2, astro.X0)

	hit, ok := f.HitAt(astro.X0, astro.Y)
	require.True(t, ok)
	assert.Equal(t, HitChip, hit.Kind)

	remove := findHit(t, f, HitChipRemove, "astro")
	assert.Equal(t, astro.X1, remove.X0)
	hit, ok = f.HitAt(remove.X0, remove.Y)
	require.True(t, ok)
	assert.Equal(t, HitChipRemove, hit.Kind)
	assert.Equal(t, "astro", hit.Value)

	// the border belongs to the field as a whole
	hit, ok = f.HitAt(0, 2)
	require.True(t, ok)
	assert.Equal(t, HitInput, hit.Kind)

	_, ok = f.HitAt(0, 0)
	assert.False(t, ok, "title is not clickable")
}

func TestChipsWrapOnNarrowField(t *testing.T) {
	items := make([]domain.Item, 0, 6)
	for _, v := range []string{"alpha", "bravo", "charlie", "delta", "echo", "foxtrot"} {
		items = append(items, domain.Item{Value: v, Label: strings.ToUpper(v)})
	}
	w := state.WidgetState{Selection: items, HighlightIndex: -1}

	f := NewRenderer().Render(ViewState{Width: 30, Widget: w})

	first := findHit(t, f, HitChip, "alpha")
	last := findHit(t, f, HitChip, "foxtrot")
	assert.Greater(t, last.Y, first.Y)
	for _, h := range f.Hits {
		if h.Kind == HitChipRemove {
			assert.LessOrEqual(t, h.X1, 30-2, "chip %s overflows the field", h.Value)
		}
	}
}

func TestRenderArmedChipHint(t *testing.T) {
	w := widget(state.InputFocus)
	w.HighlightIndex = 1
	w.HighlightValue = "remix"

	plain := ansi.Strip(NewRenderer().Render(ViewState{Width: 80, Widget: w}).Content)
	assert.Contains(t, plain, "⌫ again removes Remix")
}

func TestRenderStatusMessage(t *testing.T) {
	plain := ansi.Strip(NewRenderer().Render(ViewState{
		Width:         80,
		Widget:        widget(state.NoFocus),
		StatusMessage: "Copied 2 items",
		ModeName:      "idle",
		HelpView:      "q quit",
	}).Content)

	assert.Contains(t, plain, "Copied 2 items")
	assert.Contains(t, plain, "idle")
	assert.True(t, strings.HasSuffix(plain, "q quit"))
}

func TestVisibleRange(t *testing.T) {
	cases := []struct {
		offset, n, height int
		start, end        int
	}{
		{0, 3, 8, 0, 3},
		{0, 10, 4, 0, 4},
		{3, 10, 4, 3, 7},
		{9, 10, 4, 6, 10},
		{-1, 10, 4, 0, 4},
		{3, 10, 0, 0, 10},
	}
	for _, tc := range cases {
		start, end := visibleRange(tc.offset, tc.n, tc.height)
		assert.Equal(t, tc.start, start, "%+v", tc)
		assert.Equal(t, tc.end, end, "%+v", tc)
	}
}

func TestRenderScrolledPanel(t *testing.T) {
	w := widget(state.InputFocus)
	w.Selectable = append(w.Selectable,
		domain.Item{Value: "nuxt", Label: "Nuxt.js"},
		domain.Item{Value: "express", Label: "Express.js"},
	)
	w.ActiveOption = 3

	f := NewRenderer().Render(ViewState{Width: 80, Widget: w, MaxPanelHeight: 2, PanelOffset: 2})
	plain := ansi.Strip(f.Content)

	assert.NotContains(t, plain, "SvelteKit")
	assert.Contains(t, plain, "Nuxt.js")
	assert.Contains(t, plain, "Express.js")
	assert.Contains(t, plain, "3-4 of 4")

	nuxt := findHit(t, f, HitOption, "nuxt")
	express := findHit(t, f, HitOption, "express")
	assert.Equal(t, nuxt.Y+1, express.Y)
}

func TestFieldWidthClamps(t *testing.T) {
	assert.Equal(t, minFieldWidth, fieldWidth(10))
	assert.Equal(t, maxFieldWidth, fieldWidth(200))
	assert.Equal(t, 50, fieldWidth(50))
	assert.Equal(t, maxFieldWidth, fieldWidth(0))
}
