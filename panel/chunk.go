package panel

import (
	"errors"
	"fmt"

	"github.com/lixenwraith/duopane/terminal"
)

// ErrInvalidChunk is returned when a message argument is neither a
// string nor a Chunk
var ErrInvalidChunk = errors.New("invalid chunk")

// Sigil is the one-glyph category tag prepended to the first line of
// each logical message
type Sigil rune

const (
	SigilPlain   Sigil = '·'
	SigilPrompt  Sigil = '❰'
	SigilCommand Sigil = '❱'
	SigilError   Sigil = '✖'
)

// Chunk is an atomic run of message text with one style
// Chunks carry no layout information; wrapping happens later
type Chunk struct {
	Text  string
	Style terminal.Style
}

// Plain builds an unstyled chunk
func Plain(text string) Chunk {
	return Chunk{Text: text}
}

// Styled builds a chunk with an explicit style
func Styled(text string, style terminal.Style) Chunk {
	return Chunk{Text: text, Style: style}
}

// Line is one display row's worth of chunks, post-wrapping
// Invariant: the summed rune count of its chunks never exceeds the
// panel width it was wrapped for
type Line []Chunk

// From converts a mixed argument list into chunks: strings become
// unstyled chunks, Chunks pass through unchanged. Any other type fails
// the whole conversion with ErrInvalidChunk.
func From(args ...any) ([]Chunk, error) {
	chunks := make([]Chunk, 0, len(args))
	for _, arg := range args {
		switch v := arg.(type) {
		case string:
			chunks = append(chunks, Plain(v))
		case Chunk:
			chunks = append(chunks, v)
		default:
			return nil, fmt.Errorf("argument %T: %w", arg, ErrInvalidChunk)
		}
	}
	return chunks, nil
}
