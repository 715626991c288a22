// Package icons selects the glyph set used by the notification surfaces.
// Terminals without a patched font can fall back to plain ASCII through the
// "none" style.
package icons

// Style represents the icon style to use.
type Style string

const (
	StyleNerd    Style = "nerd"
	StyleUnicode Style = "unicode"
	StyleNone    Style = "none"
)

// Icons holds the glyph characters for the current style.
type Icons struct {
	Check string
	Cross string
	Close string
}

var (
	nerdIcons = Icons{
		Check: "", // nf-fa-check
		Cross: "", // nf-fa-circle_exclamation
		Close: "", // nf-fa-xmark
	}

	unicodeIcons = Icons{
		Check: "✓",
		Cross: "✗",
		Close: "✕",
	}

	noneIcons = Icons{
		Check: "*",
		Cross: "!",
		Close: "x",
	}

	// current holds the active icon set
	current = unicodeIcons
)

// Init selects the icon set for the given style. Call once at startup and
// again after a configuration reload. Unknown styles keep the unicode set.
func Init(style string) {
	switch Style(style) {
	case StyleNerd:
		current = nerdIcons
	case StyleUnicode:
		current = unicodeIcons
	case StyleNone:
		current = noneIcons
	default:
		current = unicodeIcons
	}
}

// Check returns the status glyph rendered before the notification text.
func Check() string {
	return current.Check
}

// Cross returns the glyph shown in place of Check for error notifications.
func Cross() string {
	return current.Cross
}

// Close returns the close affordance glyph.
func Close() string {
	return current.Close
}
