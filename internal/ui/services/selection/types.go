package selection

import "chipselect/internal/domain"

// State holds selection state
type State struct {
	Items     []domain.Item  // chip order
	Positions map[string]int // value -> index into Items
}

// Change describes what a mutation did to the selection
type Change struct {
	Added   []domain.Item
	Removed []domain.Item
	Total   int
}

// Empty reports whether the mutation was absorbed as a no-op
func (c Change) Empty() bool {
	return len(c.Added) == 0 && len(c.Removed) == 0
}
