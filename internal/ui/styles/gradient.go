package styles

import (
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/rivo/uniseg"
)

// GradientTitle renders text in bold with its foreground fading from one
// theme color to another. The header uses it for the program name.
func GradientTitle(text string, from, to lipgloss.Color) string {
	// Grapheme clusters, not runes: a combining sequence keeps one color.
	var cells []string
	for gr := uniseg.NewGraphemes(text); gr.Next(); {
		cells = append(cells, gr.Str())
	}

	switch len(cells) {
	case 0:
		return ""
	case 1:
		return lipgloss.NewStyle().Foreground(from).Bold(true).Render(text)
	}

	start, _ := colorful.MakeColor(hexColor(from))
	end, _ := colorful.MakeColor(hexColor(to))

	var b strings.Builder
	for i, cell := range cells {
		// Blend in HCL space so the ramp stays perceptually even.
		step := start.BlendHcl(end, float64(i)/float64(len(cells)-1))
		b.WriteString(lipgloss.NewStyle().
			Foreground(lipgloss.Color(step.Hex())).
			Bold(true).
			Render(cell))
	}
	return b.String()
}

// hexColor parses a lipgloss hex color, falling back to a neutral gray for
// ANSI palette values the blender cannot interpolate.
func hexColor(c lipgloss.Color) color.Color {
	if hex := string(c); len(hex) == 7 && hex[0] == '#' {
		if col, err := colorful.Hex(hex); err == nil {
			return col
		}
	}
	return color.RGBA{R: 128, G: 128, B: 128, A: 255}
}
