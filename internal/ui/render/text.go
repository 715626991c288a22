// Package render has the text shaping helpers the bars and popups share:
// width-aware truncation and padding, and sanitizing of text the program
// did not author itself.
package render

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// Sanitize strips control characters (tab excepted) and drops invalid
// UTF-8 bytes. Notification text can come from captured stderr lines or
// typed input, and a stray escape sequence would corrupt the whole screen.
func Sanitize(s string) string {
	if !needsSanitize(s) {
		return s
	}
	return strings.Map(func(r rune) rune {
		switch {
		case r == utf8.RuneError:
			return -1
		case r == '\u00a0': // non-breaking space renders inconsistently
			return ' '
		case r != '\t' && unicode.IsControl(r):
			return -1
		}
		return r
	}, s)
}

// needsSanitize is a cheap scan so clean strings skip the rebuild.
func needsSanitize(s string) bool {
	for i := range len(s) {
		switch b := s[i]; {
		case b < 0x20 && b != '\t': // ASCII controls except tab
			return true
		case b >= 0x80 && b <= 0x9f: // C1 range, also invalid as lead bytes
			return true
		case b == 0xc2 && i+1 < len(s) && s[i+1] == 0xa0: // NBSP
			return true
		}
	}
	return false
}

// Truncate sanitizes s and shortens it to maxWidth columns, appending an
// ellipsis when something was cut. Wide runes (CJK, emoji) count by their
// display width.
func Truncate(s string, maxWidth int) string {
	return runewidth.Truncate(Sanitize(s), maxWidth, "...")
}

// Pad extends s with spaces to exactly width columns.
func Pad(s string, width int) string {
	return runewidth.FillRight(s, width)
}

// TruncateAndPad makes s exactly width columns, cutting or padding as
// needed. Fixed-width columns keep list rows aligned.
func TruncateAndPad(s string, width int) string {
	return Pad(Truncate(s, width), width)
}

// EmptyLine returns a blank line of the given width.
func EmptyLine(width int) string {
	if width <= 0 {
		return ""
	}
	return strings.Repeat(" ", width)
}

// Row joins left- and right-aligned content into one line of exactly width
// columns, with at least one space between them.
func Row(left, right string, width int) string {
	gap := max(width-lipgloss.Width(left)-lipgloss.Width(right), 1)
	return left + strings.Repeat(" ", gap) + right
}
