package logic

import (
	"chipselect/internal/domain"
)

// Membership answers whether a value is currently selected
type Membership interface {
	Contains(value string) bool
}

// Selectable returns the catalog items that are not selected, in catalog order.
//
// The pending query text is intentionally not an input: the suggestion panel
// always lists every remaining item while the user types.
func Selectable(catalog *domain.Catalog, selected Membership) []domain.Item {
	if catalog == nil {
		return nil
	}
	items := catalog.Items()
	out := items[:0]
	for _, item := range items {
		if !selected.Contains(item.Value) {
			out = append(out, item)
		}
	}
	return out
}

// Complementary reports whether selected and selectable partition the
// catalog by value: disjoint, and together covering every entry.
func Complementary(catalog *domain.Catalog, selected, selectable []domain.Item) bool {
	seen := make(map[string]bool, catalog.Len())
	for _, group := range [][]domain.Item{selected, selectable} {
		for _, item := range group {
			if seen[item.Value] || !catalog.Contains(item.Value) {
				return false
			}
			seen[item.Value] = true
		}
	}
	return len(seen) == catalog.Len()
}

// ClampIndex keeps index within [0, n-1], or -1 when n is zero
func ClampIndex(index, n int) int {
	if n <= 0 {
		return -1
	}
	if index < 0 {
		return 0
	}
	if index >= n {
		return n - 1
	}
	return index
}

// WrapIndex moves index by delta, wrapping around the ends of a list of n
func WrapIndex(index, delta, n int) int {
	if n <= 0 {
		return -1
	}
	return ((index+delta)%n + n) % n
}
