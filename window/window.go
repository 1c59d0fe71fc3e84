// Package window owns the two-panel console session: it acquires the
// terminal, draws the border chrome, wires the message and input panels
// into their screen regions, and guarantees terminal restoration when
// the session ends.
package window

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/lixenwraith/duopane/panel"
	"github.com/lixenwraith/duopane/terminal"
)

// Minimum usable window: one message row plus four chrome rows, and
// enough width for the sigil column and one text column
const (
	minHeight = 5
	minWidth  = 5
)

// ErrTooSmall is returned when the window, after clamping to the
// terminal, is too small to hold both panels
var ErrTooSmall = errors.New("window too small")

// Config holds window construction options
//
// Zero Height/Width mean "fill the terminal"; requested dimensions are
// clamped to the terminal's. Diagnostic enables unhandled-key notices
// in the message panel. Log receives session lifecycle records and must
// never write to the terminal the window owns; nil discards.
type Config struct {
	Height     int
	Width      int
	Title      string
	Diagnostic bool
	Log        *slog.Logger
}

// Window is the session object owning both panels and the screen
type Window struct {
	scr   terminal.Screen
	close func()
	log   *slog.Logger

	h, w  int
	title string

	msg *panel.Message
	in  *panel.Input
}

// Open acquires the process terminal and builds a window on it
// The caller must Close the window, including on error and panic
// paths, or the terminal is left in raw mode.
func Open(cfg Config) (*Window, error) {
	scr, err := terminal.Open()
	if err != nil {
		return nil, err
	}
	win, err := New(scr, cfg)
	if err != nil {
		scr.Close()
		return nil, err
	}
	win.close = scr.Close
	return win, nil
}

// New builds a window on an already-acquired screen, whose lifecycle
// stays with the caller
func New(scr terminal.Screen, cfg Config) (*Window, error) {
	termH, termW := scr.Dimensions()
	h, w := termH, termW
	if cfg.Height > 0 && cfg.Height < h {
		h = cfg.Height
	}
	if cfg.Width > 0 && cfg.Width < w {
		w = cfg.Width
	}
	if h < minHeight || w < minWidth {
		return nil, fmt.Errorf("%dx%d: %w", h, w, ErrTooSmall)
	}

	// Geometry: top border, message rows, separator, command row with
	// its prompt glyph, bottom border
	msg := panel.NewMessage(terminal.NewRegion(scr, 1, 0, h-4, w-2))
	in := panel.NewInput(terminal.NewRegion(scr, h-2, 2, 1, w-4), msg, cfg.Diagnostic)

	log := cfg.Log
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	win := &Window{
		scr:   scr,
		log:   log,
		h:     h,
		w:     w,
		title: cfg.Title,
		msg:   msg,
		in:    in,
	}
	win.drawBorder()
	log.Info("window opened", "height", h, "width", w, "diagnostic", cfg.Diagnostic)
	return win, nil
}

// Close releases the terminal if this window acquired it
// Safe to call more than once.
func (w *Window) Close() {
	if w.close != nil {
		w.log.Info("window closed")
		w.close()
		w.close = nil
	}
}

// drawBorder paints the chrome: heavy-line top and bottom borders, the
// separator between panels, the prompt glyph, and the centered title
func (w *Window) drawBorder() {
	bar := strings.Repeat("━", w.w-2)
	w.scr.WriteAt(0, 0, "┏"+bar+"┓", terminal.Style{})
	w.scr.WriteAt(w.h-3, 0, "┣"+bar+"┫", terminal.Style{})
	w.scr.WriteAt(w.h-2, 0, string(panel.SigilCommand), terminal.Style{})
	w.scr.WriteAt(w.h-1, 0, "┗"+bar+"┛", terminal.Style{})

	if w.title != "" {
		n := len([]rune(w.title))
		col := w.w/2 - n/2 - 2
		w.scr.WriteAt(0, col, "┫ ", terminal.Style{})
		w.scr.WriteAt(0, col+2, w.title, terminal.Style{}.Bold())
		w.scr.WriteAt(0, col+2+n, " ┣", terminal.Style{})
	}
	w.scr.Flush()
}

// SetTitle changes the window title and repaints the chrome
func (w *Window) SetTitle(title string) {
	w.title = title
	w.drawBorder()
}

// Say appends one plain message and redraws the message panel
// For multi-message bursts, Append then Draw once to avoid flicker.
func (w *Window) Say(args ...any) error {
	if err := w.msg.Append(panel.SigilPlain, args...); err != nil {
		return err
	}
	w.msg.Draw()
	return nil
}

// Append feeds a logical message into scrollback without redrawing
func (w *Window) Append(sigil panel.Sigil, args ...any) error {
	return w.msg.Append(sigil, args...)
}

// Draw forces a message panel redraw from current scrollback state
func (w *Window) Draw() {
	w.msg.Draw()
}

// Prompt runs one full input session and returns the submitted command
func (w *Window) Prompt(text string) (string, error) {
	cmd, err := w.in.ReadCommand(text)
	if err != nil {
		w.log.Error("input session failed", "error", err)
		return "", err
	}
	return cmd, nil
}

// Register binds a key to fn for the lifetime of the window; a later
// registration for the same key replaces the earlier one
// The callback runs inline in the input loop with this window as its
// argument and must not block indefinitely.
func (w *Window) Register(key terminal.Key, fn func(*Window)) {
	w.in.Register(key, func() { fn(w) })
}

// PageUp scrolls the message panel one page into history
func (w *Window) PageUp() {
	w.msg.PageUp()
}

// PageDown scrolls the message panel one page toward the live tail
func (w *Window) PageDown() {
	w.msg.PageDown()
}

// Message exposes the message panel for direct appends
func (w *Window) Message() *panel.Message {
	return w.msg
}

// Input exposes the input panel for direct key registration
func (w *Window) Input() *panel.Input {
	return w.in
}

// Dimensions returns the window size after clamping
func (w *Window) Dimensions() (height, width int) {
	return w.h, w.w
}
