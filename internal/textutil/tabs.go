package textutil

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// RuneDisplayWidth reports the terminal column width of a single rune,
// flooring zero-width and combining runes to 1 so the draw cursor always
// advances (a genuinely zero-width glyph would let two runes collide in the
// same cell).
func RuneDisplayWidth(r rune) int {
	w := runewidth.RuneWidth(r)
	if w <= 0 {
		return 1
	}
	return w
}

// DisplayWidth reports the printable width of text accounting for wide runes.
func DisplayWidth(text string) int {
	width := 0
	for _, ru := range text {
		width += RuneDisplayWidth(ru)
	}
	return width
}

// Truncate shortens text to fit within maxWidth display columns, appending
// an ellipsis when it had to cut, so a status line never wraps onto a
// second row on a narrow terminal.
func Truncate(text string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if DisplayWidth(text) <= maxWidth {
		return text
	}
	var b strings.Builder
	width := 0
	for _, ru := range text {
		w := RuneDisplayWidth(ru)
		if width+w > maxWidth-1 {
			break
		}
		b.WriteRune(ru)
		width += w
	}
	b.WriteRune('…')
	return b.String()
}
