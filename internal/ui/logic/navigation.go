package logic

// Viewport keeps the active row of a scrolling list on screen.
// It only scrolls when the active row would leave the visible window,
// so moving inside the window does not shift the list.
type Viewport struct {
	offset int
	height int
}

// NewViewport creates a viewport showing height rows; height <= 0 shows everything
func NewViewport(height int) *Viewport {
	return &Viewport{height: height}
}

// Offset returns the index of the first visible row
func (v *Viewport) Offset() int {
	return v.offset
}

// Height returns the number of visible rows
func (v *Viewport) Height() int {
	return v.height
}

// Follow scrolls so that active stays visible in a list of total rows and
// returns the new offset. active < 0 leaves the offset alone, within bounds.
func (v *Viewport) Follow(active, total int) int {
	if v.height <= 0 || total <= v.height {
		v.offset = 0
		return 0
	}

	if active >= 0 {
		// If active row is above viewport, scroll up
		if active < v.offset {
			v.offset = active
		}
		// If active row is below viewport, scroll down
		if active >= v.offset+v.height {
			v.offset = active - v.height + 1
		}
	}

	// Ensure viewport doesn't exceed bounds
	maxOffset := total - v.height
	if v.offset > maxOffset {
		v.offset = maxOffset
	}
	if v.offset < 0 {
		v.offset = 0
	}
	return v.offset
}
