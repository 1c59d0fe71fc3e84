package terminal

// Region is a clipped sub-rectangle of a Screen
// All coordinates passed to its methods are relative to the region origin
type Region struct {
	Scr  Screen
	Row  int // Absolute row of the region's top edge
	Col  int // Absolute column of the region's left edge
	H, W int
}

// NewRegion creates a region at an absolute position on the screen
func NewRegion(scr Screen, row, col, h, w int) Region {
	return Region{Scr: scr, Row: row, Col: col, H: h, W: w}
}

// WriteAt draws text at a region-relative position, clipped to the
// region bounds
func (r Region) WriteAt(row, col int, text string, style Style) {
	if row < 0 || row >= r.H || col >= r.W {
		return
	}
	runes := []rune(text)
	if col < 0 {
		if -col >= len(runes) {
			return
		}
		runes = runes[-col:]
		col = 0
	}
	if col+len(runes) > r.W {
		runes = runes[:r.W-col]
	}
	r.Scr.WriteAt(r.Row+row, r.Col+col, string(runes), style)
}

// Clear blanks every cell in the region
func (r Region) Clear() {
	blank := make([]rune, r.W)
	for i := range blank {
		blank[i] = ' '
	}
	for row := 0; row < r.H; row++ {
		r.Scr.WriteAt(r.Row+row, r.Col, string(blank), Style{})
	}
}

// MoveCursor places the hardware cursor at a region-relative position
func (r Region) MoveCursor(row, col int) {
	r.Scr.MoveCursor(r.Row+row, r.Col+col)
}
