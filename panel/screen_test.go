package panel

import (
	"strings"

	"github.com/lixenwraith/duopane/terminal"
)

// gridScreen is a scripted in-memory Screen: it records drawn cells
// and serves a queue of key presses to the input loop
type gridScreen struct {
	h, w  int
	cells map[[2]int]cellWrite
	keys  []terminal.Key

	cursorVisible        bool
	cursorRow, cursorCol int
	flushes              int
}

type cellWrite struct {
	r     rune
	style terminal.Style
}

func newGridScreen(h, w int) *gridScreen {
	return &gridScreen{h: h, w: w, cells: make(map[[2]int]cellWrite)}
}

func (g *gridScreen) WriteAt(row, col int, text string, style terminal.Style) {
	for _, r := range text {
		g.cells[[2]int{row, col}] = cellWrite{r: r, style: style}
		col++
	}
}

func (g *gridScreen) ReadKey() (terminal.Key, error) {
	if len(g.keys) == 0 {
		return terminal.KeyNone, terminal.ErrClosed
	}
	k := g.keys[0]
	g.keys = g.keys[1:]
	return k, nil
}

func (g *gridScreen) Dimensions() (height, width int) { return g.h, g.w }
func (g *gridScreen) Flush()                          { g.flushes++ }
func (g *gridScreen) SetCursorVisible(visible bool)   { g.cursorVisible = visible }
func (g *gridScreen) MoveCursor(row, col int)         { g.cursorRow, g.cursorCol = row, col }

// press queues key codes for the read loop
func (g *gridScreen) press(keys ...terminal.Key) {
	g.keys = append(g.keys, keys...)
}

// pressString queues each character of s as a printable key
func (g *gridScreen) pressString(s string) {
	for _, r := range s {
		g.keys = append(g.keys, terminal.Key(r))
	}
}

// rowText assembles a row's runes, with trailing whitespace trimmed
func (g *gridScreen) rowText(row int) string {
	var sb strings.Builder
	for col := 0; col < g.w; col++ {
		if c, ok := g.cells[[2]int{row, col}]; ok {
			sb.WriteRune(c.r)
		} else {
			sb.WriteRune(' ')
		}
	}
	return strings.TrimRight(sb.String(), " ")
}

// styleAt returns the style last written at a cell
func (g *gridScreen) styleAt(row, col int) terminal.Style {
	return g.cells[[2]int{row, col}].style
}
