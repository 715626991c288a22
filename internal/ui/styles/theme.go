// Package styles holds the color palette and the prebuilt lipgloss styles
// the bars and popups share.
package styles

import "github.com/charmbracelet/lipgloss"

// Theme is the color palette. Components take colors from here or from the
// prebuilt styles in S, never from literals, so the palette stays the single
// place where the look is decided.
type Theme struct {
	Primary   lipgloss.Color // accent: action labels, focused borders
	Secondary lipgloss.Color // header gradient endpoint

	// Text hierarchy, brightest to dimmest.
	FgBase   lipgloss.Color
	FgMuted  lipgloss.Color
	FgSubtle lipgloss.Color

	BgCursor lipgloss.Color // selection highlight in lists

	Border      lipgloss.Color
	BorderFocus lipgloss.Color

	// Notification status colors.
	Success lipgloss.Color
	Error   lipgloss.Color
	Warning lipgloss.Color

	styles *Styles
}

// Styles are the prebuilt lipgloss styles for the theme's palette.
type Styles struct {
	Base    lipgloss.Style // notification text, list rows
	Muted   lipgloss.Style // close glyph, secondary detail
	Subtle  lipgloss.Style // footers, hints, brackets
	Title   lipgloss.Style
	Accent  lipgloss.Style // action labels, layer names
	Cursor  lipgloss.Style // selected list row
	Success lipgloss.Style // check glyph
	Error   lipgloss.Style // error glyph
	Warning lipgloss.Style // "closed" history reason
}

// defaultTheme is a Tokyo Night variant. The header gradient runs from
// Primary to Secondary, so those two should sit close on the color wheel.
var defaultTheme = Theme{
	Primary:   lipgloss.Color("#7aa2f7"),
	Secondary: lipgloss.Color("#2ac3de"),

	FgBase:   lipgloss.Color("#c0caf5"),
	FgMuted:  lipgloss.Color("#737aa2"),
	FgSubtle: lipgloss.Color("#565f89"),

	BgCursor: lipgloss.Color("#283457"),

	Border:      lipgloss.Color("#3b4261"),
	BorderFocus: lipgloss.Color("#7aa2f7"),

	Success: lipgloss.Color("#9ece6a"),
	Error:   lipgloss.Color("#f7768e"),
	Warning: lipgloss.Color("#e0af68"),
}

// T returns the active theme.
func T() *Theme {
	return &defaultTheme
}

// S returns the prebuilt styles, building them on first use.
func (t *Theme) S() *Styles {
	if t.styles == nil {
		t.styles = t.buildStyles()
	}
	return t.styles
}

func (t *Theme) buildStyles() *Styles {
	base := lipgloss.NewStyle().Foreground(t.FgBase)

	return &Styles{
		Base:   base,
		Muted:  lipgloss.NewStyle().Foreground(t.FgMuted),
		Subtle: lipgloss.NewStyle().Foreground(t.FgSubtle),
		Title:  base.Bold(true),
		Accent: lipgloss.NewStyle().
			Foreground(t.Primary).
			Bold(true),
		Cursor: lipgloss.NewStyle().
			Background(t.BgCursor).
			Foreground(t.FgBase),
		Success: lipgloss.NewStyle().Foreground(t.Success),
		Error:   lipgloss.NewStyle().Foreground(t.Error),
		Warning: lipgloss.NewStyle().Foreground(t.Warning),
	}
}
