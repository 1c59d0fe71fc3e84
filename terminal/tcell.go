package terminal

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// TcellScreen adapts a tcell screen to the Screen contract
type TcellScreen struct {
	s tcell.Screen

	cursorRow     int
	cursorCol     int
	cursorVisible bool
	closed        bool
}

// Open acquires the process terminal and returns it as a Screen
// The caller owns the handle and must call Close to restore the
// terminal, including on error and panic paths
func Open() (*TcellScreen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("terminal open: %w", err)
	}
	if err := s.Init(); err != nil {
		return nil, fmt.Errorf("terminal init: %w", err)
	}
	s.HideCursor()
	return NewTcellScreen(s), nil
}

// NewTcellScreen wraps an already-initialized tcell screen
// Used directly by tests running on tcell's simulation screen
func NewTcellScreen(s tcell.Screen) *TcellScreen {
	return &TcellScreen{s: s}
}

// Close releases the terminal, restoring its modes
// Safe to call more than once
func (t *TcellScreen) Close() {
	if t.closed {
		return
	}
	t.closed = true
	t.s.Fini()
}

// WriteAt implements Screen
func (t *TcellScreen) WriteAt(row, col int, text string, style Style) {
	st := styleToTcell(style)
	for _, r := range text {
		t.s.SetContent(col, row, r, nil, st)
		col++
	}
}

// ReadKey implements Screen
//
// Resize events are absorbed here with a full repaint sync; only
// recognized key codes surface to the caller
func (t *TcellScreen) ReadKey() (Key, error) {
	for {
		switch ev := t.s.PollEvent().(type) {
		case *tcell.EventKey:
			if k := keyFromEvent(ev); k != KeyNone {
				return k, nil
			}
		case *tcell.EventResize:
			t.s.Sync()
		case *tcell.EventError:
			return KeyNone, fmt.Errorf("terminal read: %w", ev)
		case nil:
			return KeyNone, ErrClosed
		}
	}
}

// Dimensions implements Screen
func (t *TcellScreen) Dimensions() (height, width int) {
	w, h := t.s.Size()
	return h, w
}

// Flush implements Screen
func (t *TcellScreen) Flush() {
	t.s.Show()
}

// SetCursorVisible implements Screen
func (t *TcellScreen) SetCursorVisible(visible bool) {
	t.cursorVisible = visible
	if visible {
		t.s.ShowCursor(t.cursorCol, t.cursorRow)
	} else {
		t.s.HideCursor()
	}
}

// MoveCursor implements Screen
func (t *TcellScreen) MoveCursor(row, col int) {
	t.cursorRow = row
	t.cursorCol = col
	if t.cursorVisible {
		t.s.ShowCursor(col, row)
	}
}

// keyFromEvent maps a tcell key event to a Key code
// Returns KeyNone for events outside the toolkit's key space
func keyFromEvent(ev *tcell.EventKey) Key {
	switch ev.Key() {
	case tcell.KeyRune:
		r := ev.Rune()
		if r >= 32 && r <= 126 {
			return Key(r)
		}
		return KeyNone
	case tcell.KeyEnter:
		return KeyEnter
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return KeyBackspace
	case tcell.KeyTab:
		return KeyTab
	case tcell.KeyEsc:
		return KeyEscape
	case tcell.KeyUp:
		return KeyUp
	case tcell.KeyDown:
		return KeyDown
	case tcell.KeyLeft:
		return KeyLeft
	case tcell.KeyRight:
		return KeyRight
	case tcell.KeyHome:
		return KeyHome
	case tcell.KeyEnd:
		return KeyEnd
	case tcell.KeyPgUp:
		return KeyPageUp
	case tcell.KeyPgDn:
		return KeyPageDown
	case tcell.KeyInsert:
		return KeyInsert
	case tcell.KeyDelete:
		return KeyDelete
	}

	k := ev.Key()
	if k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ {
		return Key(k)
	}
	if k >= tcell.KeyF1 && k <= tcell.KeyF12 {
		return KeyF1 + Key(k-tcell.KeyF1)
	}
	return KeyNone
}

func styleToTcell(s Style) tcell.Style {
	st := tcell.StyleDefault
	// Full-intensity palette, not the muted ANSI defaults
	switch s.Color {
	case ColorRed:
		st = st.Foreground(tcell.ColorRed)
	case ColorGreen:
		st = st.Foreground(tcell.ColorLime)
	case ColorBlue:
		st = st.Foreground(tcell.ColorBlue)
	case ColorCyan:
		st = st.Foreground(tcell.ColorAqua)
	case ColorMagenta:
		st = st.Foreground(tcell.ColorFuchsia)
	case ColorYellow:
		st = st.Foreground(tcell.ColorYellow)
	case ColorWhite:
		st = st.Foreground(tcell.ColorWhite)
	}
	if s.Attr&AttrBold != 0 {
		st = st.Bold(true)
	}
	if s.Attr&AttrDim != 0 {
		st = st.Dim(true)
	}
	return st
}
