// Package cursor tracks the selection and scroll window of a scrollable
// list. List length and window height are method parameters because both
// change as entries come and go and the popup resizes.
package cursor

// Cursor is a selection index plus the scroll offset that keeps it on
// screen. margin is how many rows stay visible above and below the
// selection while scrolling.
type Cursor struct {
	pos    int
	offset int
	margin int
}

// New creates a cursor with the given scroll margin.
func New(margin int) Cursor {
	return Cursor{margin: margin}
}

// Pos returns the selected index.
func (c Cursor) Pos() int {
	return c.pos
}

// HandleKey applies vi-style list navigation and reports whether the key
// was one: j/k and the arrows move by one, g/G jump to the ends, ctrl+d
// and ctrl+u move by half a window.
func (c *Cursor) HandleKey(key string, listLen, height int) bool {
	switch key {
	case "j", "down":
		c.move(1, listLen, height)
	case "k", "up":
		c.move(-1, listLen, height)
	case "g", "home":
		c.pos = 0
		c.offset = 0
	case "G", "end":
		c.move(listLen, listLen, height) // clamps to the last entry
	case "ctrl+d":
		c.move(height/2, listLen, height)
	case "ctrl+u":
		c.move(-height/2, listLen, height)
	default:
		return false
	}
	return true
}

// move shifts the selection by delta and scrolls to keep it visible.
func (c *Cursor) move(delta, listLen, height int) {
	if listLen == 0 {
		return
	}
	c.pos = clamp(c.pos+delta, listLen-1)
	c.scrollIntoView(listLen, height)
}

// ClampToBounds pulls the selection back into range after the list shrank.
// It reports whether the selection moved.
func (c *Cursor) ClampToBounds(listLen int) bool {
	if listLen == 0 {
		changed := c.pos != 0 || c.offset != 0
		c.pos = 0
		c.offset = 0
		return changed
	}
	old := c.pos
	c.pos = clamp(c.pos, listLen-1)
	return c.pos != old
}

// VisibleRange returns the half-open index range [start, end) the window
// currently shows.
func (c Cursor) VisibleRange(listLen, height int) (start, end int) {
	if listLen == 0 || height <= 0 {
		return 0, 0
	}
	return c.offset, min(c.offset+height, listLen)
}

func (c *Cursor) scrollIntoView(listLen, height int) {
	if height <= 0 || listLen == 0 {
		return
	}
	if c.pos < c.offset+c.margin {
		c.offset = max(c.pos-c.margin, 0)
	}
	if c.pos >= c.offset+height-c.margin {
		c.offset = c.pos - height + c.margin + 1
	}
	c.offset = clamp(c.offset, max(listLen-height, 0))
}

func clamp(v, maxVal int) int {
	if v < 0 {
		return 0
	}
	return min(v, maxVal)
}
