package search

import (
	"strings"
	"unicode"
)

// literalMatcher matches ctx.Pattern as an exact substring, optionally
// case-folded and optionally constrained to word boundaries.
type literalMatcher struct {
	pattern       string
	caseSensitive bool
	wholeWord     bool
}

func newLiteralMatcher(ctx Context) *literalMatcher {
	return &literalMatcher{
		pattern:       ctx.Pattern,
		caseSensitive: ctx.EffectiveCaseSensitive(),
		wholeWord:     ctx.Options.WholeWord,
	}
}

func (m *literalMatcher) findAll(line string) []Span {
	if m.pattern == "" {
		return nil
	}

	haystack := line
	needle := m.pattern
	if !m.caseSensitive {
		haystack = strings.ToLower(haystack)
		needle = strings.ToLower(needle)
	}

	runes := []rune(line)
	haystackRunes := []rune(haystack)
	needleRunes := []rune(needle)
	needleLen := len(needleRunes)
	if needleLen == 0 {
		return nil
	}

	var spans []Span
	for start := 0; start+needleLen <= len(haystackRunes); start++ {
		if !runesEqual(haystackRunes[start:start+needleLen], needleRunes) {
			continue
		}
		end := start + needleLen
		if m.wholeWord && !isWordBoundaryMatch(runes, start, end) {
			continue
		}
		spans = append(spans, Span{Start: start, End: end})
	}
	return spans
}

func runesEqual(a, b []rune) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// isWordBoundaryMatch reports whether [start,end) in runes is flanked by
// non-word characters (or string edges) on both sides.
func isWordBoundaryMatch(runes []rune, start, end int) bool {
	if start > 0 && isWordRune(runes[start-1]) {
		return false
	}
	if end < len(runes) && isWordRune(runes[end]) {
		return false
	}
	return true
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}
