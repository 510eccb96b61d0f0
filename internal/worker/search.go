package worker

import (
	"errors"

	"github.com/kk-code-lab/hugeless/internal/protocol"
	"github.com/kk-code-lab/hugeless/internal/search"
)

func (w *Worker) handleExecuteSearch(c protocol.ExecuteSearchCommand) {
	defer w.token.Rearm()
	m, err := w.engine.FindMatch(w.acc, c.Origin, c.Ctx, w.token)
	w.respondSearch(c.ID, m, err, c.Ctx)
}

func (w *Worker) handleNavigateMatch(c protocol.NavigateMatchCommand) {
	if !w.last.valid {
		w.resp <- protocol.SearchCompleted{ID: c.ID, Found: false}
		return
	}
	ctx := w.last.ctx
	if c.Reverse {
		if ctx.Direction == search.Forward {
			ctx.Direction = search.Backward
		} else {
			ctx.Direction = search.Forward
		}
	}

	defer w.token.Rearm()
	m, err := w.engine.FindMatch(w.acc, c.Origin, ctx, w.token)
	if m == nil && err == nil {
		if fb, ok := w.fallbackMatch(c.Origin, ctx.Direction); ok {
			w.resp <- protocol.SearchCompleted{ID: c.ID, Found: true, MatchByte: fb}
			return
		}
	}
	w.respondSearch(c.ID, m, err, ctx)
}

// fallbackMatch retries the ring of recently-seen match bytes, most recent
// first, and returns the first one on the correct side of origin for dir: a
// forward navigate must land on match_byte > origin, backward on
// match_byte < origin, the same invariant find_match itself guarantees. A
// held-down 'n' that runs past the last match in the file would otherwise
// just report not-found with no way back to where the search was; this
// keeps the view anchored at a real hit instead of stranding it, without
// ever reporting a hit on the wrong side of origin.
func (w *Worker) fallbackMatch(origin int64, dir search.Direction) (int64, bool) {
	for i := len(w.history) - 1; i >= 0; i-- {
		mb := w.history[i]
		if dir == search.Forward && mb > origin {
			return mb, true
		}
		if dir == search.Backward && mb < origin {
			return mb, true
		}
	}
	return 0, false
}

func (w *Worker) respondSearch(id protocol.RequestID, m *search.Match, err error, ctx search.Context) {
	if err != nil {
		if errors.Is(err, search.ErrCancelled) {
			w.resp <- protocol.SearchCompleted{ID: id, Found: false}
			return
		}
		w.resp <- protocol.ErrorResponse{ID: id, Err: err}
		return
	}
	if m == nil {
		w.resp <- protocol.SearchCompleted{ID: id, Found: false}
		return
	}
	w.recordMatch(*m, ctx)
	w.resp <- protocol.SearchCompleted{ID: id, Found: true, MatchByte: m.LineStart}
}
