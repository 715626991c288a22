// Package overlay composites one rendered view on top of another so a
// bar or popup can float over the host without a real z-axis.
package overlay

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Compose paints overlay onto base one line at a time. Only the visibly
// occupied span of an overlay line replaces the base; the space margins
// around it let the base show through. Cuts go through ansi.Cut so the
// styling on either side survives.
func Compose(base, overlay string, width, _ int) string {
	baseLines := strings.Split(base, "\n")

	for i, line := range strings.Split(overlay, "\n") {
		if i >= len(baseLines) {
			break
		}
		start, end, ok := occupiedSpan(line)
		if !ok {
			continue
		}

		baseLine := baseLines[i]
		if w := ansi.StringWidth(ansi.Strip(baseLine)); w < width {
			baseLine += strings.Repeat(" ", width-w)
		}

		// A wide rune straddling a cut point shifts the cut result by a
		// column. Square the prefix edge up with spaces here; suffixFrom
		// does the same for the right edge.
		prefix := ansi.Cut(baseLine, 0, start)
		if w := ansi.StringWidth(ansi.Strip(prefix)); w < start {
			prefix += strings.Repeat(" ", start-w)
		}

		merged := prefix + ansi.Cut(line, start, end)
		if end < width {
			merged += suffixFrom(baseLine, end, width)
		}
		baseLines[i] = merged
	}

	return strings.Join(baseLines, "\n")
}

// occupiedSpan reports the display columns line visibly covers, leading
// and trailing spaces excluded. ok is false when the line is blank.
func occupiedSpan(line string) (start, end int, ok bool) {
	plain := ansi.Strip(line)
	if strings.TrimSpace(plain) == "" {
		return 0, 0, false
	}
	for _, r := range plain {
		if r != ' ' {
			break
		}
		start++
	}
	end = ansi.StringWidth(strings.TrimRight(plain, " "))
	return start, end, true
}

// suffixFrom cuts baseLine from col to width and squares the left edge
// up when the cut landed inside a wide rune.
func suffixFrom(baseLine string, col, width int) string {
	suffix := ansi.Cut(baseLine, col, width)
	got := ansi.StringWidth(ansi.Strip(suffix))
	want := width - col
	switch {
	case got > want:
		// The straddling rune came along whole; blank it out.
		return " " + ansi.Cut(suffix, got-want+1, got)
	case got < want:
		return strings.Repeat(" ", want-got) + suffix
	}
	return suffix
}

// ComposeBottom overlays content horizontally centered on the bottom
// rows of base, keeping margin empty rows beneath it. Content taller
// than the base is anchored to the top instead of being clipped.
func ComposeBottom(base, content string, width, height, margin int) string {
	if strings.TrimSpace(ansi.Strip(content)) == "" {
		return base
	}

	contentLines := strings.Split(content, "\n")
	top := height - len(contentLines) - margin
	if top < 0 {
		top = 0
	}

	var b strings.Builder
	b.WriteString(strings.Repeat("\n", top))
	for i, line := range contentLines {
		if i > 0 {
			b.WriteString("\n")
		}
		lineWidth := ansi.StringWidth(ansi.Strip(line))
		if pad := (width - lineWidth) / 2; pad > 0 {
			b.WriteString(strings.Repeat(" ", pad))
		}
		b.WriteString(line)
	}

	return Compose(base, b.String(), width, height)
}
