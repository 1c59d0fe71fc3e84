package terminal

// Key is a single decoded key code from the terminal
//
// Printable ASCII keys carry their character value (32-126). Control
// combinations occupy the C0 range (Ctrl+A = 1 through Ctrl+Z = 26), so
// KeyEnter and KeyTab alias their control equivalents exactly as a raw
// terminal reports them. Named special keys sit above the byte range.
type Key int

// Control and single-byte keys
const (
	KeyCtrlA Key = iota + 1
	KeyCtrlB
	KeyCtrlC
	KeyCtrlD
	KeyCtrlE
	KeyCtrlF
	KeyCtrlG
	KeyCtrlH
	KeyCtrlI
	KeyCtrlJ
	KeyCtrlK
	KeyCtrlL
	KeyCtrlM
	KeyCtrlN
	KeyCtrlO
	KeyCtrlP
	KeyCtrlQ
	KeyCtrlR
	KeyCtrlS
	KeyCtrlT
	KeyCtrlU
	KeyCtrlV
	KeyCtrlW
	KeyCtrlX
	KeyCtrlY
	KeyCtrlZ
)

const (
	KeyNone      Key = 0
	KeyTab       Key = 9  // Same byte as Ctrl+I
	KeyEnter     Key = 13 // Same byte as Ctrl+M
	KeyEscape    Key = 27
	KeyBackspace Key = 127
)

// Special keys, above the byte range
const (
	KeyUp Key = 0x100 + iota
	KeyDown
	KeyLeft
	KeyRight
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyInsert
	KeyDelete
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
)

// Printable reports whether the key is a printable ASCII character
func (k Key) Printable() bool {
	return k >= 32 && k <= 126
}

// Rune returns the character for a printable key, 0 otherwise
func (k Key) Rune() rune {
	if !k.Printable() {
		return 0
	}
	return rune(k)
}
