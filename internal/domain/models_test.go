package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCatalogValidates(t *testing.T) {
	_, err := NewCatalog([]Item{{Value: "a"}, {Value: ""}})
	assert.ErrorIs(t, err, ErrEmptyValue)

	_, err = NewCatalog([]Item{{Value: "a"}, {Value: "b"}, {Value: "a"}})
	assert.ErrorIs(t, err, ErrDuplicateValue)

	c, err := NewCatalog(nil)
	require.NoError(t, err)
	assert.Zero(t, c.Len())
}

func TestCatalogItemsIsACopy(t *testing.T) {
	c := DefaultCatalog()
	items := c.Items()
	items[0].Label = "mutated"

	first, ok := c.Lookup("next.js")
	require.True(t, ok)
	assert.Equal(t, "Next.js", first.Label)
}

func TestCatalogResolve(t *testing.T) {
	c := DefaultCatalog()

	items, unknown := c.Resolve([]string{"remix", "gatsby", "astro", "remix"})
	assert.Equal(t, []Item{{Value: "remix", Label: "Remix"}, {Value: "astro", Label: "Astro"}}, items)
	assert.Equal(t, []string{"gatsby"}, unknown)
}

func TestMustCatalogPanicsOnInvalidTable(t *testing.T) {
	assert.Panics(t, func() {
		MustCatalog([]Item{{Value: "x"}, {Value: "x"}})
	})
}

func TestDisplayLabelFallsBackToValue(t *testing.T) {
	assert.Equal(t, "Remix", Item{Value: "remix", Label: "Remix"}.DisplayLabel())
	assert.Equal(t, "remix", Item{Value: "remix"}.DisplayLabel())
}
