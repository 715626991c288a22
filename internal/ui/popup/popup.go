// Package popup draws modal overlay boxes: a bordered frame centered on the
// host screen, sized either to its content or to a share of the screen.
package popup

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/snackbar/internal/ui/styles"
)

// Popup is a modal component driven by the popup manager. Implementations
// render bare content; the manager draws the frame and picks the placement.
type Popup interface {
	// Init returns the command to run when the popup opens.
	Init() tea.Cmd

	// Update consumes a message and returns the replacement popup state.
	Update(msg tea.Msg) (Popup, tea.Cmd)

	// View renders the inner content, without frame or centering.
	View() string

	// SetSize tells the popup how much room its content has.
	SetSize(width, height int)
}

// SizeConfig describes how much of the screen a popup frame takes. The zero
// value sizes the frame to its content.
type SizeConfig struct {
	WidthPct  int // share of the screen width, 0 sizes to content
	HeightPct int // share of the screen height, 0 sizes to content
	MaxWidth  int // column cap for content-sized frames, 0 means uncapped
}

// Frame chrome: rounded border plus 1x2 padding on each side.
const (
	frameCols = 6
	frameRows = 4
)

// RenderBordered draws content inside a rounded border and centers the box
// on a screenW x screenH host.
func RenderBordered(content string, screenW, screenH int, size SizeConfig) string {
	width, height := frameSize(content, screenW, screenH, size)

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styles.T().Border).
		Width(width - 2).
		Height(height - 2).
		Padding(1, 2).
		Render(content)

	return center(box, screenW, screenH)
}

// frameSize resolves the outer box dimensions. Percent sizing wins over
// content sizing; both are clamped so the frame never touches the screen
// edge.
func frameSize(content string, screenW, screenH int, size SizeConfig) (width, height int) {
	if size.WidthPct > 0 {
		return screenW * size.WidthPct / 100, screenH * size.HeightPct / 100
	}

	width = widestLine(content) + frameCols
	if size.MaxWidth > 0 && width > size.MaxWidth {
		width = size.MaxWidth
	}
	if limit := screenW - 4; width > limit {
		width = limit
	}

	height = strings.Count(content, "\n") + 1 + frameRows
	if limit := screenH - 4; height > limit {
		height = limit
	}
	return width, height
}

func widestLine(s string) int {
	widest := 0
	for line := range strings.SplitSeq(s, "\n") {
		if w := lipgloss.Width(line); w > widest {
			widest = w
		}
	}
	return widest
}

// center pads the box into the middle of the screen. Rows above the box
// span the full width so the overlay compositor replaces them cleanly.
func center(box string, screenW, screenH int) string {
	lines := strings.Split(box, "\n")
	boxWidth := widestLine(box)

	padTop := max((screenH-len(lines))/2, 0)
	indent := strings.Repeat(" ", max((screenW-boxWidth)/2, 0))

	var b strings.Builder
	for range padTop {
		b.WriteString(strings.Repeat(" ", screenW) + "\n")
	}
	for _, line := range lines {
		b.WriteString(indent)
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}
