package tcellrenderer

import (
	"github.com/kk-code-lab/hugeless/internal/search"
)

// spanLookup returns a predicate testing whether a rune index falls inside
// one of spans, which are already sorted and disjoint (search.mergeSpans
// guarantees this) so a single advancing cursor suffices instead of a
// binary search per rune.
func spanLookup(spans []search.Span) func(runeIdx int) bool {
	if len(spans) == 0 {
		return func(int) bool { return false }
	}
	cursor := 0
	return func(runeIdx int) bool {
		for cursor < len(spans) && runeIdx >= spans[cursor].End {
			cursor++
		}
		if cursor >= len(spans) {
			return false
		}
		return runeIdx >= spans[cursor].Start && runeIdx < spans[cursor].End
	}
}
