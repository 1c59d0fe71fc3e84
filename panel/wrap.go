package panel

import (
	"errors"
	"fmt"
	"slices"
	"unicode"
)

// ErrInvalidWidth is returned when a layout width leaves no room for
// text beyond the sigil column
var ErrInvalidWidth = errors.New("invalid width")

// indentWidth is the sigil/continuation prefix width in columns
const indentWidth = 2

// Wrap breaks styled chunks into display lines no wider than width
//
// The first line opens with the sigil glyph and a space, continuation
// lines with a two-space indent. Wrapping is greedy: each line takes as
// much of the pending phrase as fits, splitting at the rightmost space
// in range. A single word longer than a whole line is hard-split. The
// result is ordered most-recent-first: the sigil line is last, ready
// for front insertion into a scrollback ring.
func Wrap(chunks []Chunk, width int, sigil Sigil) ([]Line, error) {
	if width <= indentWidth {
		return nil, fmt.Errorf("wrap width %d: %w", width, ErrInvalidWidth)
	}

	lines := []Line{{Plain(string(sigil) + " ")}}
	cur := 0
	pos := indentWidth

	for _, c := range chunks {
		phrase := []rune(c.Text)
		for {
			if pos == indentWidth {
				phrase = trimLeadingSpace(phrase)
			}
			remaining := width - pos
			if len(phrase) <= remaining {
				if len(phrase) > 0 {
					lines[cur] = append(lines[cur], Chunk{Text: string(phrase), Style: c.Style})
					pos += len(phrase)
				}
				break
			}

			if split := lastSpace(phrase[:remaining]); split > 0 {
				lines[cur] = append(lines[cur], Chunk{Text: string(phrase[:split]), Style: c.Style})
				phrase = phrase[split:]
			} else if pos == indentWidth {
				// Single word longer than a whole line: hard split
				lines[cur] = append(lines[cur], Chunk{Text: string(phrase[:remaining]), Style: c.Style})
				phrase = phrase[remaining:]
			}
			// Otherwise no safe split point on this line; the whole
			// phrase carries over

			lines = append(lines, Line{Plain("  ")})
			cur++
			pos = indentWidth
		}
	}

	// A remainder of pure whitespace leaves a continuation line holding
	// only its indent; drop it
	if cur > 0 && len(lines[cur]) == 1 {
		lines = lines[:cur]
	}

	slices.Reverse(lines)
	return lines, nil
}

func trimLeadingSpace(phrase []rune) []rune {
	for len(phrase) > 0 && unicode.IsSpace(phrase[0]) {
		phrase = phrase[1:]
	}
	return phrase
}

// lastSpace returns the index of the rightmost space, -1 if none
func lastSpace(phrase []rune) int {
	for i := len(phrase) - 1; i >= 0; i-- {
		if phrase[i] == ' ' {
			return i
		}
	}
	return -1
}
