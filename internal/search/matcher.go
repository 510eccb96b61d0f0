package search

import (
	"regexp"
	"strings"
	"sync"
)

// matcher finds all match spans, in rune units, within a single line.
type matcher interface {
	findAll(line string) []Span
}

// compile builds (or reuses) a matcher for ctx. Regex compilation is scoped
// to the call and cached while the pattern and options are unchanged, per
// spec §4.2.
func compile(ctx Context) (matcher, error) {
	if ctx.Options.Regex {
		return compileRegex(ctx)
	}
	return newLiteralMatcher(ctx), nil
}

var (
	regexCacheMu sync.Mutex
	regexCache   = map[string]*regexp.Regexp{}
)

func regexCacheKey(ctx Context) string {
	var b strings.Builder
	b.WriteString(ctx.Pattern)
	b.WriteByte('\x00')
	if ctx.Options.WholeWord {
		b.WriteByte('w')
	}
	if ctx.EffectiveCaseSensitive() {
		b.WriteByte('c')
	}
	return b.String()
}

func compileRegex(ctx Context) (matcher, error) {
	key := regexCacheKey(ctx)

	regexCacheMu.Lock()
	if re, ok := regexCache[key]; ok {
		regexCacheMu.Unlock()
		return &regexMatcher{re: re}, nil
	}
	regexCacheMu.Unlock()

	pattern := ctx.Pattern
	if ctx.Options.WholeWord {
		pattern = `\b(?:` + pattern + `)\b`
	}
	if !ctx.EffectiveCaseSensitive() {
		pattern = `(?i)` + pattern
	}

	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, &CompileError{Pattern: ctx.Pattern, Err: err}
	}

	regexCacheMu.Lock()
	regexCache[key] = re
	regexCacheMu.Unlock()

	return &regexMatcher{re: re}, nil
}

type regexMatcher struct {
	re *regexp.Regexp
}

func (m *regexMatcher) findAll(line string) []Span {
	idxs := m.re.FindAllStringIndex(line, -1)
	if len(idxs) == 0 {
		return nil
	}
	spans := make([]Span, 0, len(idxs))
	for _, pair := range idxs {
		start := runeIndex(line, pair[0])
		end := runeIndex(line, pair[1])
		if end <= start {
			continue
		}
		spans = append(spans, Span{Start: start, End: end})
	}
	return spans
}

// runeIndex converts a byte offset into a line into the corresponding rune
// index, so highlight spans are reported in character units per spec §4.2's
// Open Question (a): this engine scans byte-wise for speed and converts
// results to rune units at the boundary, rather than decoding the whole
// line up front.
func runeIndex(s string, byteOffset int) int {
	count := 0
	for i := range s {
		if i >= byteOffset {
			return count
		}
		count++
	}
	return count
}
