// Package render implements the render coordinator: the sole owner of view
// state, the sole caller of the renderer, and the sole sender of commands to
// the search worker. Nothing outside this package ever mutates a ViewState.
package render

import (
	"github.com/kk-code-lab/hugeless/internal/protocol"
	"github.com/kk-code-lab/hugeless/internal/search"
)

// promptMode names what, if anything, is currently being typed on the
// bottom line.
type promptMode int

const (
	promptNone promptMode = iota
	promptSearch
	promptPercentJump
	promptCommand
)

const searchHistoryCap = 32

// ViewState is the coordinator's private mutable model of what is on
// screen. Nothing outside internal/render ever reads or writes it directly;
// the renderer receives a read-only snapshot each tick.
type ViewState struct {
	width, height int

	topByte  int64
	fileSize int64
	viewport protocol.Viewport
	haveData bool

	options   search.Options
	direction search.Direction
	pattern   string

	prompt    promptMode
	promptDir search.Direction
	promptBuf []rune

	history    []string
	historyIdx int // index into history while recalling with arrows; -1 when not recalling

	statusText string
	errorText  string

	pendingViewport protocol.RequestID
	pendingSearch   protocol.RequestID

	shuttingDown bool
}

// NewViewState returns a ViewState sized for an initial width/height and
// file size, positioned at the start of the file.
func NewViewState(width, height int, fileSize int64) ViewState {
	return ViewState{
		width:      width,
		height:     height,
		fileSize:   fileSize,
		options:    search.Options{SmartCase: true},
		direction:  search.Forward,
		historyIdx: -1,
	}
}

// PageLines returns how many content lines fit on screen, reserving the
// bottom row for the status/prompt line.
func (vs *ViewState) PageLines() int {
	if vs.height <= 1 {
		return 1
	}
	return vs.height - 1
}

// pushHistory records a submitted pattern, deduplicating consecutive
// repeats and capping the ring at searchHistoryCap entries so a long
// session doesn't grow this unboundedly.
func (vs *ViewState) pushHistory(pattern string) {
	if pattern == "" {
		return
	}
	if len(vs.history) > 0 && vs.history[len(vs.history)-1] == pattern {
		return
	}
	vs.history = append(vs.history, pattern)
	if len(vs.history) > searchHistoryCap {
		vs.history = vs.history[len(vs.history)-searchHistoryCap:]
	}
}

func (vs *ViewState) searchContext() search.Context {
	return search.Context{Pattern: vs.pattern, Direction: vs.direction, Options: vs.options}
}
