package textutil

import "strings"

var formattingRuneLabels = map[rune]string{
	0x061C: "⟪ALM⟫",
	0x200B: "⟪ZWSP⟫",
	0x200C: "⟪ZWNJ⟫",
	0x200D: "⟪ZWJ⟫",
	0x200E: "⟪LRM⟫",
	0x200F: "⟪RLM⟫",
	0x202A: "⟪LRE⟫",
	0x202B: "⟪RLE⟫",
	0x202C: "⟪PDF⟫",
	0x202D: "⟪LRO⟫",
	0x202E: "⟪RLO⟫",
	0x2028: "⟪LSEP⟫",
	0x2029: "⟪PSEP⟫",
	0x00AD: "⟪SHY⟫",
	0x180E: "⟪MVS⟫",
	0x2060: "⟪WJ⟫",
	0x2066: "⟪LRI⟫",
	0x2067: "⟪RLI⟫",
	0x2068: "⟪FSI⟫",
	0x2069: "⟪PDI⟫",
	0x206A: "⟪ISS⟫",
	0x206B: "⟪ASS⟫",
	0x206C: "⟪IAFS⟫",
	0x206D: "⟪AAFS⟫",
	0x206E: "⟪NADS⟫",
	0x206F: "⟪NODS⟫",
	0xFEFF: "⟪BOM⟫",
}

// SanitizeTerminalText replaces control characters so user-controlled text cannot
// inject terminal escape sequences when rendered.
func SanitizeTerminalText(text string) string {
	for _, r := range text {
		if requiresSanitization(r) {
			return sanitize(text)
		}
	}
	return text
}

func requiresSanitization(r rune) bool {
	if r == '\t' {
		return false
	}
	if r == '\n' || r == '\r' {
		return true
	}
	if isFormattingRune(r) {
		return true
	}
	return (r >= 0 && r < 0x20) || r == 0x7f
}

func sanitize(text string) string {
	var b strings.Builder
	for _, r := range text {
		switch {
		case isFormattingRune(r):
			b.WriteString(formattingRuneLabels[r])
		case r == '\t', r == '\n', r == '\r':
			b.WriteByte(' ')
		case r < 0x20 || r == 0x7f:
			b.WriteByte('?')
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// DisplayRune maps a single rune to what should be drawn on screen in its
// place: a literal tab becomes one column-wide space (full tab-stop
// expansion would change the rune's position, desynchronizing it from any
// byte- or rune-indexed span computed against the original text), other
// control characters become '?', and everything else passes through
// unchanged. Bidi/zero-width formatting runes are not handled here — they
// don't collapse to a single replacement rune, see DisplayGlyph.
func DisplayRune(r rune) rune {
	switch {
	case r == '\t':
		return ' '
	case r == '\n', r == '\r':
		return ' '
	case r < 0x20 || r == 0x7f:
		return '?'
	default:
		return r
	}
}

// DisplayGlyph returns the one-or-more runes to draw in place of a single
// source rune. Ordinary text and control characters collapse to exactly one
// rune via DisplayRune, so callers walking a line rune-by-rune for span
// alignment can keep indexing spans by source position; a bidi or
// zero-width formatting rune instead expands to a bracketed label so it
// can't silently reorder or hide surrounding text or masquerade as part of
// an escape sequence when rendered raw.
func DisplayGlyph(r rune) string {
	if label, ok := formattingRuneLabels[r]; ok {
		return label
	}
	return string(DisplayRune(r))
}

func isFormattingRune(r rune) bool {
	_, ok := formattingRuneLabels[r]
	return ok
}
