package search

import (
	"github.com/kk-code-lab/hugeless/internal/accessor"
	"github.com/kk-code-lab/hugeless/internal/cancel"
)

// batchLines is how many lines the engine reads per accessor round trip
// while scanning for a match. It doubles as the cancellation-check
// granularity: the token is polled between every batch and between every
// line within it.
const batchLines = 128

// Engine matches a Context's pattern against lines produced by an Accessor.
// It holds no accessor-specific state of its own (the regex cache is
// process-wide and keyed by pattern+options), so a single Engine can be
// reused across accessors.
type Engine struct{}

// NewEngine returns a ready Engine.
func NewEngine() *Engine {
	return &Engine{}
}

// FindMatch returns the byte offset of the start of the next line matching
// ctx.Pattern in ctx.Direction from origin, or nil if none exists. It
// returns ErrCancelled if token is cancelled before a result is reached,
// and a *CompileError if ctx.Options.Regex is set and the pattern is
// invalid.
func (e *Engine) FindMatch(acc *accessor.Accessor, origin int64, ctx Context, token *cancel.Token) (*Match, error) {
	if ctx.Pattern == "" {
		return nil, nil
	}
	// Compile once up front so an invalid regex fails fast rather than
	// after having already walked part of the file.
	if _, err := compile(ctx); err != nil {
		return nil, err
	}

	if ctx.Direction == Forward {
		return e.findForward(acc, origin, ctx, token)
	}
	return e.findBackward(acc, origin, ctx, token)
}

func (e *Engine) findForward(acc *accessor.Accessor, origin int64, ctx Context, token *cancel.Token) (*Match, error) {
	// Skip the line at (or containing) origin itself: a forward match must
	// have match_byte strictly greater than origin. ReadFromByte snaps
	// origin+1 forward to the first line start after origin.
	pos := origin + 1

	for {
		if token != nil && token.Cancelled() {
			return nil, ErrCancelled
		}
		if pos >= acc.Size() {
			return nil, nil
		}

		result, err := acc.ReadFromByte(pos, batchLines, token)
		if err != nil {
			return nil, err
		}
		for _, line := range result.Lines {
			if token != nil && token.Cancelled() {
				return nil, ErrCancelled
			}
			spans, err := LineMatches(line.Text, ctx)
			if err != nil {
				return nil, err
			}
			if matchSucceeded(spans, ctx) {
				return &Match{LineStart: line.Start}, nil
			}
		}
		if result.AtEOF || len(result.Lines) == 0 {
			return nil, nil
		}
		pos = result.NextByte
	}
}

func (e *Engine) findBackward(acc *accessor.Accessor, origin int64, ctx Context, token *cancel.Token) (*Match, error) {
	pos := origin
	for pos > 0 {
		if token != nil && token.Cancelled() {
			return nil, ErrCancelled
		}
		prevStart, err := acc.PrevPageStart(pos, 1, 0)
		if err != nil {
			return nil, err
		}
		if prevStart >= pos {
			return nil, nil
		}

		result, err := acc.ReadFromByte(prevStart, 1, token)
		if err != nil {
			return nil, err
		}
		if len(result.Lines) > 0 {
			spans, err := LineMatches(result.Lines[0].Text, ctx)
			if err != nil {
				return nil, err
			}
			if matchSucceeded(spans, ctx) {
				return &Match{LineStart: prevStart}, nil
			}
		}
		pos = prevStart
	}
	return nil, nil
}

// matchSucceeded reports whether a line with the given spans counts as a
// match under ctx: normally that means at least one span, but Invert flips
// the sense so a search for absent lines works the same way through both
// scan directions.
func matchSucceeded(spans []Span, ctx Context) bool {
	return (len(spans) > 0) != ctx.Options.Invert
}
