// Package worker implements the search worker: a single goroutine that owns
// the file accessor and search engine exclusively, running one command from
// the coordinator at a time so neither type needs its own locking.
package worker

import (
	"github.com/kk-code-lab/hugeless/internal/accessor"
	"github.com/kk-code-lab/hugeless/internal/cancel"
	"github.com/kk-code-lab/hugeless/internal/protocol"
	"github.com/kk-code-lab/hugeless/internal/search"
)

// lastMatch remembers the most recent successful search so NavigateMatch can
// repeat or reverse it without the coordinator resending the pattern.
type lastMatch struct {
	ctx       search.Context
	matchByte int64
	valid     bool
}

// Worker runs the serial command loop described above. It is constructed
// with an already-open accessor (ownership transfers to the worker: nothing
// else may touch it once Run starts) and communicates exclusively over the
// two channels it is given.
type Worker struct {
	acc     *accessor.Accessor
	engine  *search.Engine
	cmds    <-chan protocol.Command
	resp    chan<- protocol.Response
	token   *cancel.Token
	ctx     search.Context
	last    lastMatch
	history []int64 // small ring of recent match bytes, most recent last
}

const historyCap = 8

// New constructs a Worker over acc, reading commands from cmds and writing
// responses to resp. token is shared with the render coordinator so that a
// Ctrl+C during an active search can interrupt this worker's in-flight scan
// from outside the command loop, without waiting for the scan to finish and
// drain the next queued command. The caller retains no reference to acc
// after this call.
func New(acc *accessor.Accessor, cmds <-chan protocol.Command, resp chan<- protocol.Response, token *cancel.Token) *Worker {
	return &Worker{
		acc:    acc,
		engine: search.NewEngine(),
		cmds:   cmds,
		resp:   resp,
		token:  token,
	}
}

// Run drains cmds until it is closed or a ShutdownCommand arrives, then
// closes resp and returns. It must be run on its own goroutine.
func (w *Worker) Run() {
	defer close(w.resp)
	defer w.acc.Close()

	for cmd := range w.cmds {
		if w.handle(cmd) {
			return
		}
	}
}

// handle dispatches a single command and reports whether the worker should
// stop after it.
func (w *Worker) handle(cmd protocol.Command) (stop bool) {
	switch c := cmd.(type) {
	case protocol.LoadViewportCommand:
		w.handleLoadViewport(c)
	case protocol.ExecuteSearchCommand:
		w.handleExecuteSearch(c)
	case protocol.NavigateMatchCommand:
		w.handleNavigateMatch(c)
	case protocol.UpdateSearchContextCommand:
		w.ctx = c.Ctx
		// NavigateMatch repeats last.ctx, so carry the fresh options into it.
		w.last.ctx.Options = c.Ctx.Options
	case protocol.ShutdownCommand:
		return true
	}
	return false
}

func (w *Worker) recordMatch(m search.Match, ctx search.Context) {
	w.last = lastMatch{ctx: ctx, matchByte: m.LineStart, valid: true}
	w.history = append(w.history, m.LineStart)
	if len(w.history) > historyCap {
		w.history = w.history[len(w.history)-historyCap:]
	}
}
