package views

// HitKind says what a screen region does when clicked
type HitKind int

const (
	HitNone HitKind = iota
	HitInput
	HitChip
	HitChipRemove
	HitOption
)

// Hit is a clickable region on one screen row, covering columns [X0, X1)
type Hit struct {
	Kind  HitKind
	Value string // item value for chip and option hits
	X0    int
	X1    int
	Y     int
	// Rows lets a region cover Y..Y+Rows-1; zero means one row
	Rows int
}

func (h Hit) contains(x, y int) bool {
	rows := h.Rows
	if rows <= 0 {
		rows = 1
	}
	return y >= h.Y && y < h.Y+rows && x >= h.X0 && x < h.X1
}

// Frame is a rendered screen plus the map of its clickable regions
type Frame struct {
	Content string
	Hits    []Hit
}

// HitAt returns the most specific region under (x, y).
// Regions added later are drawn on top and win.
func (f Frame) HitAt(x, y int) (Hit, bool) {
	for i := len(f.Hits) - 1; i >= 0; i-- {
		if f.Hits[i].contains(x, y) {
			return f.Hits[i], true
		}
	}
	return Hit{}, false
}

// offset shifts hits recorded relative to a block to screen coordinates
func offset(hits []Hit, dx, dy int) []Hit {
	out := make([]Hit, len(hits))
	for i, h := range hits {
		h.X0 += dx
		h.X1 += dx
		h.Y += dy
		out[i] = h
	}
	return out
}
