package panel

import (
	"fmt"
	"slices"
	"strings"
	"unicode"

	"github.com/lixenwraith/duopane/terminal"
)

// historyCapacity bounds the command history ring
const historyCapacity = 10

// Input is the command panel: a blocking key-by-key edit loop with
// command history, paging delegation, and registered key bindings
type Input struct {
	reg        terminal.Region
	msg        *Message
	diagnostic bool

	buf      []rune
	history  historyRing
	bindings map[terminal.Key]func()
}

// NewInput creates an input panel drawing into reg and delegating
// prompt/echo/paging to msg. When diagnostic is set, unhandled keys
// are reported as error-sigil notices instead of being ignored.
func NewInput(reg terminal.Region, msg *Message, diagnostic bool) *Input {
	return &Input{
		reg:        reg,
		msg:        msg,
		diagnostic: diagnostic,
		bindings:   make(map[terminal.Key]func()),
	}
}

// Register installs fn as the handler for key, replacing any earlier
// registration for the same code. Handlers run inline in the read loop
// and must not block indefinitely.
func (in *Input) Register(key terminal.Key, fn func()) {
	in.bindings[key] = fn
}

// ReadCommand appends the prompt to the message panel, then reads keys
// until the command is submitted with enter
//
// The returned error is non-nil only when the terminal fails mid-read,
// in which case the partial edit buffer is abandoned.
func (in *Input) ReadCommand(prompt string) (string, error) {
	if prompt != "" {
		if err := in.msg.Append(SigilPrompt, prompt); err != nil {
			return "", err
		}
		in.msg.Draw()
	}

	in.buf = in.buf[:0]
	cursor := -1 // -1 means not browsing history

	for {
		in.placeCursor()
		in.reg.Scr.SetCursorVisible(true)
		// Visible state must match internal state before control
		// yields to the user
		in.reg.Scr.Flush()

		key, err := in.reg.Scr.ReadKey()
		if err != nil {
			in.reg.Scr.SetCursorVisible(false)
			return "", err
		}

		switch {
		case key.Printable():
			in.buf = append(in.buf, key.Rune())
			in.Draw()
		case key == terminal.KeyBackspace:
			if len(in.buf) > 0 {
				in.buf = in.buf[:len(in.buf)-1]
				in.Draw()
			}
		case key == terminal.KeyUp:
			if cursor+1 < in.history.len() {
				cursor++
				in.recall(cursor)
			}
		case key == terminal.KeyDown:
			if cursor > 0 {
				cursor--
				in.recall(cursor)
			}
		case key == terminal.KeyPageUp:
			in.msg.PageUp()
		case key == terminal.KeyPageDown:
			in.msg.PageDown()
		case key == terminal.KeyEnter:
			return in.submit()
		default:
			if fn, ok := in.bindings[key]; ok {
				fn()
			} else if in.diagnostic {
				in.reportUnhandled(key)
			}
		}
	}
}

// submit finishes an input session: echoes the command into scrollback,
// records history, and clears the edit line
func (in *Input) submit() (string, error) {
	in.reg.Scr.SetCursorVisible(false)

	command := strings.TrimLeftFunc(string(in.buf), unicode.IsSpace)
	if command != "" {
		in.reg.Clear()
		if err := in.msg.Append(SigilCommand, Styled(command, terminal.Style{}.Bold())); err != nil {
			return "", err
		}
		// History keeps the raw buffer, not the trimmed command, and
		// skips consecutive duplicates
		if !in.history.matchesFront(in.buf) {
			in.history.pushFront(slices.Clone(in.buf))
		}
	}

	in.buf = in.buf[:0]
	in.Draw()
	in.reg.Scr.Flush()
	return command, nil
}

// recall replaces the edit buffer with a copy of a history entry
func (in *Input) recall(cursor int) {
	in.buf = append(in.buf[:0], in.history.at(cursor)...)
	in.Draw()
}

// Draw renders the edit line; a buffer at or past the panel width shows
// an ellipsis and its trailing characters, without touching the buffer
func (in *Input) Draw() {
	in.reg.Clear()
	if len(in.buf) < in.reg.W {
		in.reg.WriteAt(0, 0, string(in.buf), terminal.Style{})
	} else {
		in.reg.WriteAt(0, 0, "…"+string(in.buf[len(in.buf)-(in.reg.W-2):]), terminal.Style{})
	}
}

func (in *Input) placeCursor() {
	col := len(in.buf)
	if col >= in.reg.W {
		col = in.reg.W - 1
	}
	in.reg.MoveCursor(0, col)
}

func (in *Input) reportUnhandled(key terminal.Key) {
	notice := fmt.Sprintf("unhandled key: %d", key)
	if name := terminal.KeyName(key); name != "" {
		notice = fmt.Sprintf("unhandled key: %d (%s)", key, name)
	}
	if in.msg.Append(SigilError, notice) == nil {
		in.msg.Draw()
	}
}

// historyRing is a fixed-capacity most-recent-first ring of submitted
// edit buffers
type historyRing struct {
	entries [historyCapacity][]rune
	head    int
	count   int
}

func (h *historyRing) pushFront(entry []rune) {
	h.head = (h.head - 1 + historyCapacity) % historyCapacity
	h.entries[h.head] = entry
	if h.count < historyCapacity {
		h.count++
	}
}

func (h *historyRing) at(i int) []rune {
	return h.entries[(h.head+i)%historyCapacity]
}

func (h *historyRing) len() int {
	return h.count
}

// matchesFront reports whether entry is character-for-character equal
// to the most recent history entry
func (h *historyRing) matchesFront(entry []rune) bool {
	return h.count > 0 && slices.Equal(h.entries[h.head], entry)
}
