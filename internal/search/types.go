// Package search implements pattern matching over a byte-addressed file
// accessor: literal, regex, case-sensitive/insensitive and whole-word
// matching in either direction from a byte position, plus line-local
// highlight spans for the renderer.
package search

// Direction is the search direction relative to an origin byte.
type Direction int

const (
	Forward Direction = iota
	Backward
)

// Options describes the matching semantics for a search. Regex and a plain
// literal search are mutually exclusive (Regex selects one or the other);
// WholeWord and Invert are orthogonal to both. CaseSensitive is meaningful
// only when SmartCase is false — in smart-case mode the engine derives
// sensitivity from the pattern itself (see Context.EffectiveCaseSensitive).
// Invert flips which lines count as a match, grep -v style: a line matches
// the search iff it does NOT contain the pattern.
type Options struct {
	Regex         bool
	WholeWord     bool
	CaseSensitive bool
	SmartCase     bool
	Invert        bool
}

// Span is a half-open character range [Start, End) inside a single decoded
// line, in rune (character) units, not bytes.
type Span struct {
	Start int
	End   int
}

// Match is the result of a successful find: the byte offset of the start of
// the matching line, never a mid-line offset — multiple matches on one line
// collapse to that single line start for navigation purposes.
type Match struct {
	LineStart int64
}
