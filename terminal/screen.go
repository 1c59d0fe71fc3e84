package terminal

import "errors"

// ErrClosed is returned by ReadKey once the underlying terminal has been
// finalized or its input stream has failed
var ErrClosed = errors.New("terminal closed")

// Screen is the drawing and input surface the panel toolkit runs on
//
// Implementations must clip out-of-bounds writes rather than fail. Drawn
// content becomes visible only after Flush; callers are expected to flush
// before every blocking ReadKey so the visible state matches internal
// state while control rests with the user.
type Screen interface {
	// WriteAt draws text at an absolute (row, col) position
	WriteAt(row, col int, text string, style Style)

	// ReadKey blocks until one key event arrives and returns its code
	// Returns ErrClosed (possibly wrapped) when no more keys can arrive
	ReadKey() (Key, error)

	// Dimensions returns the current surface size
	Dimensions() (height, width int)

	// Flush commits pending writes to the visible surface
	Flush()

	// SetCursorVisible toggles the hardware cursor
	SetCursorVisible(visible bool)

	// MoveCursor places the hardware cursor at (row, col)
	MoveCursor(row, col int)
}
