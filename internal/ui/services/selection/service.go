package selection

import (
	"chipselect/internal/domain"
)

// Service is the ordered, duplicate-free set of chosen items.
// Add and Remove never fail: ineligible calls return an empty Change.
type Service struct {
	state   *State
	catalog *domain.Catalog
}

// NewService creates a selection bounded by catalog and seeded with preset.
// Preset entries outside the catalog or repeated are skipped.
func NewService(catalog *domain.Catalog, preset []domain.Item) *Service {
	s := &Service{
		state: &State{
			Positions: make(map[string]int),
		},
		catalog: catalog,
	}
	for _, item := range preset {
		s.Add(item)
	}
	return s
}

// Add appends item if it belongs to the catalog and is not selected yet
func (s *Service) Add(item domain.Item) Change {
	if s.catalog != nil && !s.catalog.Contains(item.Value) {
		return Change{Total: s.Len()}
	}
	if _, exists := s.state.Positions[item.Value]; exists {
		return Change{Total: s.Len()}
	}

	// Store the catalog's copy so labels stay consistent with the catalog
	if s.catalog != nil {
		item, _ = s.catalog.Lookup(item.Value)
	}
	s.state.Positions[item.Value] = len(s.state.Items)
	s.state.Items = append(s.state.Items, item)

	return Change{Added: []domain.Item{item}, Total: s.Len()}
}

// Remove deletes the entry with item's value, keeping the order of the rest
func (s *Service) Remove(item domain.Item) Change {
	pos, exists := s.state.Positions[item.Value]
	if !exists {
		return Change{Total: s.Len()}
	}

	removed := s.state.Items[pos]
	s.state.Items = append(s.state.Items[:pos:pos], s.state.Items[pos+1:]...)
	s.reindex()

	return Change{Removed: []domain.Item{removed}, Total: s.Len()}
}

// Clear removes every entry
func (s *Service) Clear() Change {
	removed := s.state.Items
	s.state.Items = nil
	s.state.Positions = make(map[string]int)
	return Change{Removed: removed, Total: 0}
}

// Items returns a copy of the selection in chip order
func (s *Service) Items() []domain.Item {
	out := make([]domain.Item, len(s.state.Items))
	copy(out, s.state.Items)
	return out
}

// At returns the item at position i
func (s *Service) At(i int) (domain.Item, bool) {
	if i < 0 || i >= len(s.state.Items) {
		return domain.Item{}, false
	}
	return s.state.Items[i], true
}

// Last returns the most recently added item
func (s *Service) Last() (domain.Item, bool) {
	return s.At(len(s.state.Items) - 1)
}

// IndexOf returns the chip position of value, or -1
func (s *Service) IndexOf(value string) int {
	if pos, ok := s.state.Positions[value]; ok {
		return pos
	}
	return -1
}

// Contains checks if value is selected
func (s *Service) Contains(value string) bool {
	_, ok := s.state.Positions[value]
	return ok
}

// Len returns the number of selected items
func (s *Service) Len() int {
	return len(s.state.Items)
}

func (s *Service) reindex() {
	s.state.Positions = make(map[string]int, len(s.state.Items))
	for i, item := range s.state.Items {
		s.state.Positions[item.Value] = i
	}
}
