package ui

// Base carries the size and focus state every visual component needs.
// Embed it to pick up the standard accessors:
//
//	type Model struct {
//	    ui.Base
//	    item    notification.Item
//	    visible bool
//	}
type Base struct {
	width, height int
	focused       bool
}

// SetFocused sets whether the component receives navigation keys.
func (b *Base) SetFocused(focused bool) {
	b.focused = focused
}

// IsFocused reports whether the component receives navigation keys.
func (b Base) IsFocused() bool {
	return b.focused
}

// SetSize records the room the component has to render into.
func (b *Base) SetSize(width, height int) {
	b.width = width
	b.height = height
}

// Width and Height report the room recorded by SetSize.

func (b Base) Width() int { return b.width }

func (b Base) Height() int { return b.height }

// ListHeight returns the rows left for list content after overhead lines
// (titles, footers, padding) are taken out.
func (b Base) ListHeight(overhead int) int {
	return b.height - overhead
}
