package terminal

// Color identifies one of the toolkit's named foreground colors
// The zero value is the terminal's default foreground
type Color uint8

const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorBlue
	ColorCyan
	ColorMagenta
	ColorYellow
	ColorWhite
)

// Attr is a bitmask of text attributes
type Attr uint8

const (
	AttrNone Attr = 0
	AttrBold Attr = 1 << iota
	AttrDim
)

// Style bundles a named color and attribute mask for one text run
// Styles combine by ORing attributes; color is never overridden
type Style struct {
	Color Color
	Attr  Attr
}

// Fg returns a style with the given foreground color and no attributes
func Fg(c Color) Style {
	return Style{Color: c}
}

// Bold returns the style with the bold attribute added
func (s Style) Bold() Style {
	s.Attr |= AttrBold
	return s
}

// Dim returns the style with the dim attribute added
func (s Style) Dim() Style {
	s.Attr |= AttrDim
	return s
}
