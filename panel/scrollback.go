package panel

// scrollbackFactor sizes the ring at this many screens of history
const scrollbackFactor = 10

// Scrollback is a bounded most-recent-first ring of display lines with
// a paging cursor
//
// Implemented as a fixed circular array with a head index and count, so
// eviction is an overwrite rather than a shift. Offset 0 means the live
// tail is in view; paging moves the offset in pageSize steps and clamps
// silently at both ends.
type Scrollback struct {
	lines    []Line
	head     int // Index of the most recent line
	count    int
	offset   int
	pageSize int
}

// NewScrollback sizes a ring for a panel of the given height
func NewScrollback(height int) *Scrollback {
	return &Scrollback{
		lines:    make([]Line, height*scrollbackFactor),
		pageSize: height / 3,
	}
}

// Append pushes wrapped lines, given most-recent-first, onto the front
// of the ring; the oldest entries are evicted once the ring is full
func (s *Scrollback) Append(lines []Line) {
	for i := len(lines) - 1; i >= 0; i-- {
		s.pushFront(lines[i])
	}
}

func (s *Scrollback) pushFront(l Line) {
	s.head = (s.head - 1 + len(s.lines)) % len(s.lines)
	s.lines[s.head] = l
	if s.count < len(s.lines) {
		s.count++
	}
}

// At returns the i-th most recent line; i must be < Len()
func (s *Scrollback) At(i int) Line {
	return s.lines[(s.head+i)%len(s.lines)]
}

// Len returns the number of lines held
func (s *Scrollback) Len() int {
	return s.count
}

// Offset returns the paging offset, 0 meaning the live tail
func (s *Scrollback) Offset() int {
	return s.offset
}

// PageUp scrolls one page deeper into history, reporting whether the
// offset moved; scrolling past the oldest line is a no-op
func (s *Scrollback) PageUp() bool {
	if s.pageSize < 1 {
		return false
	}
	if s.count-s.offset > s.pageSize {
		s.offset += s.pageSize
		return true
	}
	return false
}

// PageDown scrolls one page back toward the live tail, reporting
// whether the offset moved; it clamps at 0
func (s *Scrollback) PageDown() bool {
	if s.pageSize >= 1 && s.offset >= s.pageSize {
		s.offset -= s.pageSize
		return true
	}
	return false
}
