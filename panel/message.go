package panel

import (
	"strings"

	"github.com/lixenwraith/duopane/terminal"
)

// Message is the scrollable output panel
type Message struct {
	reg terminal.Region
	sb  *Scrollback
}

// NewMessage creates a message panel drawing into the given region
func NewMessage(reg terminal.Region) *Message {
	return &Message{
		reg: reg,
		sb:  NewScrollback(reg.H),
	}
}

// Scrollback exposes the panel's history ring
func (m *Message) Scrollback() *Scrollback {
	return m.sb
}

// Append wraps a logical message into the scrollback without redrawing
// Arguments are strings or Chunks (see From). The call is atomic: on a
// bad chunk or an unusable width nothing is added.
func (m *Message) Append(sigil Sigil, args ...any) error {
	chunks, err := From(args...)
	if err != nil {
		return err
	}
	lines, err := Wrap(chunks, m.reg.W, sigil)
	if err != nil {
		return err
	}
	m.sb.Append(lines)
	return nil
}

// Draw renders the visible window of scrollback and flushes
//
// When paged away from the live tail, the bottom row is given over to a
// centered paging indicator. While on the live tail, every line older
// than the most recent command echo is dimmed; the echo itself and
// everything newer render at full intensity. While paging, nothing is
// dimmed.
func (m *Message) Draw() {
	// The cursor belongs to the input loop; some of its paths redraw
	// this panel, so force it off here
	m.reg.Scr.SetCursorVisible(false)
	m.reg.Clear()

	compensate := 0
	if m.sb.Offset() != 0 {
		m.reg.WriteAt(m.reg.H-1, m.reg.W/2, "…", terminal.Style{})
		compensate = 1
	}

	linesToShow := min(m.reg.H-compensate, m.sb.Len()-m.sb.Offset())

	stale := false
	for i := 0; i < linesToShow; i++ {
		var lineAttr terminal.Attr
		if stale {
			lineAttr = terminal.AttrDim
		}
		row := m.reg.H - 1 - compensate - i
		col := 0
		for _, c := range m.sb.At(m.sb.Offset() + i) {
			// The first command sigil marks the most recent input;
			// every older line drawn after it is stale
			if m.sb.Offset() == 0 && strings.HasPrefix(c.Text, string(SigilCommand)) {
				stale = true
			}
			style := c.Style
			style.Attr |= lineAttr
			m.reg.WriteAt(row, col, c.Text, style)
			col += len([]rune(c.Text))
		}
	}

	m.reg.Scr.Flush()
}

// PageUp scrolls a page into history and redraws if anything moved
func (m *Message) PageUp() {
	if m.sb.PageUp() {
		m.Draw()
	}
}

// PageDown scrolls a page toward the live tail and redraws if anything
// moved
func (m *Message) PageDown() {
	if m.sb.PageDown() {
		m.Draw()
	}
}
