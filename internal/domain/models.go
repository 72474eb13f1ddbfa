package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyValue is returned when a catalog entry has no value
	ErrEmptyValue = errors.New("item value is empty")
	// ErrDuplicateValue is returned when two catalog entries share a value
	ErrDuplicateValue = errors.New("duplicate item value")
)

// Item represents one selectable option
type Item struct {
	Value string `toml:"value" yaml:"value" json:"value"` // unique identifier
	Label string `toml:"label" yaml:"label" json:"label"` // display text
}

// DisplayLabel returns the label, falling back to the value
func (i Item) DisplayLabel() string {
	if i.Label == "" {
		return i.Value
	}
	return i.Label
}

// Catalog is the fixed, ordered universe of selectable items.
// It is immutable once built; accessors hand out copies.
type Catalog struct {
	items []Item
	index map[string]int // value -> position
}

// NewCatalog validates items and builds a catalog
func NewCatalog(items []Item) (*Catalog, error) {
	c := &Catalog{
		items: make([]Item, 0, len(items)),
		index: make(map[string]int, len(items)),
	}
	for i, item := range items {
		if item.Value == "" {
			return nil, fmt.Errorf("catalog entry %d: %w", i, ErrEmptyValue)
		}
		if _, exists := c.index[item.Value]; exists {
			return nil, fmt.Errorf("catalog entry %d (%q): %w", i, item.Value, ErrDuplicateValue)
		}
		c.index[item.Value] = len(c.items)
		c.items = append(c.items, item)
	}
	return c, nil
}

// MustCatalog is NewCatalog for static tables known to be valid
func MustCatalog(items []Item) *Catalog {
	c, err := NewCatalog(items)
	if err != nil {
		panic(err)
	}
	return c
}

// Items returns a copy of the catalog entries in order
func (c *Catalog) Items() []Item {
	out := make([]Item, len(c.items))
	copy(out, c.items)
	return out
}

// Len returns the number of entries
func (c *Catalog) Len() int {
	return len(c.items)
}

// Lookup finds an item by value
func (c *Catalog) Lookup(value string) (Item, bool) {
	i, ok := c.index[value]
	if !ok {
		return Item{}, false
	}
	return c.items[i], true
}

// Contains reports whether value belongs to the catalog
func (c *Catalog) Contains(value string) bool {
	_, ok := c.index[value]
	return ok
}

// Resolve maps values to catalog items, preserving order and skipping
// unknown or repeated values. The skipped values are returned separately.
func (c *Catalog) Resolve(values []string) (items []Item, unknown []string) {
	seen := make(map[string]bool, len(values))
	for _, v := range values {
		if seen[v] {
			continue
		}
		seen[v] = true
		item, ok := c.Lookup(v)
		if !ok {
			unknown = append(unknown, v)
			continue
		}
		items = append(items, item)
	}
	return items, unknown
}

// Frameworks is the built-in demo catalog
var Frameworks = []Item{
	{Value: "next.js", Label: "Next.js"},
	{Value: "sveltekit", Label: "SvelteKit"},
	{Value: "nuxt.js", Label: "Nuxt.js"},
	{Value: "remix", Label: "Remix"},
	{Value: "astro", Label: "Astro"},
	{Value: "wordpress", Label: "WordPress"},
	{Value: "express.js", Label: "Express.js"},
	{Value: "nest.js", Label: "Nest.js"},
}

// DefaultPreset is selected when nothing else is configured
var DefaultPreset = []string{"astro"}

// DefaultCatalog returns a fresh catalog built from Frameworks
func DefaultCatalog() *Catalog {
	return MustCatalog(Frameworks)
}
