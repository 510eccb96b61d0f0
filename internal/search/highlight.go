package search

// LineMatches returns all disjoint match spans inside a single decoded
// line, in character units, ordered left to right. It never returns a mid
// character boundary — every Span sits within [0, rune length of line).
func LineMatches(line string, ctx Context) ([]Span, error) {
	if ctx.Pattern == "" {
		return nil, nil
	}
	m, err := compile(ctx)
	if err != nil {
		return nil, err
	}
	spans := m.findAll(line)
	return mergeSpans(spans), nil
}

// mergeSpans collapses overlapping or adjacent spans into disjoint ranges.
func mergeSpans(spans []Span) []Span {
	if len(spans) == 0 {
		return nil
	}
	merged := make([]Span, 0, len(spans))
	current := spans[0]
	for i := 1; i < len(spans); i++ {
		next := spans[i]
		if next.Start <= current.End {
			if next.End > current.End {
				current.End = next.End
			}
			continue
		}
		merged = append(merged, current)
		current = next
	}
	merged = append(merged, current)
	return merged
}
