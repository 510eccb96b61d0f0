package render

import (
	"time"

	"github.com/kk-code-lab/hugeless/internal/cancel"
	"github.com/kk-code-lab/hugeless/internal/inputproducer"
	"github.com/kk-code-lab/hugeless/internal/protocol"
	"github.com/kk-code-lab/hugeless/internal/search"
)

// tickInterval targets roughly 60Hz screen redraws.
const tickInterval = 16 * time.Millisecond

// Coordinator owns view state exclusively, drains the input producer and
// the search worker's responses once per tick, and is the sole caller of
// its Renderer. Nothing else in the process ever touches its ViewState.
type Coordinator struct {
	vs       ViewState
	actions  <-chan inputproducer.Action
	cmds     chan protocol.Command
	resp     <-chan protocol.Response
	renderer Renderer
	theme    Theme
	ids      protocol.IDAllocator
	token    *cancel.Token
}

// New constructs a Coordinator. fileSize is read once at startup from the
// accessor via the worker's first ViewportLoaded response, but the initial
// ViewState needs a starting value before that arrives. token is the same
// cancellation token given to the worker, so Ctrl+C during an active search
// (and Shutdown) can flip it directly instead of going through the command
// channel, which the worker may not be reading from while a scan is busy.
func New(actions <-chan inputproducer.Action, cmds chan protocol.Command, resp <-chan protocol.Response, renderer Renderer, fileSize int64, token *cancel.Token) *Coordinator {
	w, h := renderer.Size()
	return &Coordinator{
		vs:       NewViewState(w, h, fileSize),
		actions:  actions,
		cmds:     cmds,
		resp:     resp,
		renderer: renderer,
		theme:    DefaultTheme(),
		token:    token,
	}
}

// Run drains input and worker responses on a fixed tick until the user
// quits, then sends Shutdown to the worker, closes cmds, and returns once
// the worker has acknowledged by closing resp.
func (c *Coordinator) Run() {
	c.requestViewport(protocol.AbsoluteByte(0))
	c.render()

	ticker := time.NewTicker(tickInterval)
	defer ticker.Stop()

	for !c.vs.shuttingDown {
		<-ticker.C
		changed := c.drainActions()
		changed = c.drainResponses() || changed
		if changed {
			c.render()
		}
	}

	c.token.Cancel()
	c.sendCommand(protocol.ShutdownCommand{})
	close(c.cmds)
	for range c.resp {
		// drain until the worker closes the channel, per its Run contract.
	}
}

// sendCommand enqueues cmd, avoiding a blocking send on a full cmds
// channel where it can. If cmds is full it first tries to evict the single oldest
// still-queued LoadViewportCommand to make room — a later tick will issue a
// fresher viewport request anyway, so losing that one is harmless. Every
// other command kind (search, navigate, context update, shutdown) must
// still reach the worker: if eviction didn't free a slot for one of those,
// this falls back to a blocking send rather than lose it, since cmds has
// exactly one sender and nothing else can be competing for that slot.
func (c *Coordinator) sendCommand(cmd protocol.Command) {
	select {
	case c.cmds <- cmd:
		return
	default:
	}

	freed := c.evictOldestViewport()
	if freed {
		select {
		case c.cmds <- cmd:
			return
		default:
		}
	}

	if _, ok := cmd.(protocol.LoadViewportCommand); ok {
		return
	}
	c.cmds <- cmd
}

// evictOldestViewport drains cmds looking for the oldest queued
// LoadViewportCommand, drops it, and reinserts every other command it had
// to pass over in the same order. It reports whether it freed a slot.
func (c *Coordinator) evictOldestViewport() bool {
	var passed []protocol.Command
	evicted := false
	for {
		select {
		case cmd := <-c.cmds:
			if !evicted {
				if _, ok := cmd.(protocol.LoadViewportCommand); ok {
					evicted = true
					continue
				}
			}
			passed = append(passed, cmd)
		default:
			for _, p := range passed {
				c.cmds <- p
			}
			return evicted
		}
	}
}

func (c *Coordinator) drainActions() bool {
	changed := false
	for {
		select {
		case a := <-c.actions:
			c.handleAction(a)
			changed = true
		default:
			return changed
		}
	}
}

func (c *Coordinator) drainResponses() bool {
	changed := false
	for {
		select {
		case r := <-c.resp:
			c.handleResponse(r)
			changed = true
		default:
			return changed
		}
	}
}

func (c *Coordinator) render() {
	frame := Frame{
		Width:      c.vs.width,
		Height:     c.vs.height,
		Lines:      c.vs.viewport.Lines,
		AtEOF:      c.vs.viewport.AtEOF,
		TopByte:    c.vs.topByte,
		FileSize:   c.vs.fileSize,
		StatusLine: formatStatusLine(&c.vs, c.vs.width),
	}
	if c.vs.prompt != promptNone {
		frame.PromptActive = true
		frame.PromptText = string(c.vs.promptBuf)
		switch c.vs.prompt {
		case promptSearch:
			if c.vs.promptDir == search.Forward {
				frame.PromptGlyph = '/'
			} else {
				frame.PromptGlyph = '?'
			}
		case promptPercentJump:
			frame.PromptGlyph = '%'
		case promptCommand:
			frame.PromptGlyph = '-'
		}
	}
	c.renderer.Render(frame, c.theme)
}

func (c *Coordinator) requestViewport(anchor protocol.Anchor) {
	id := c.ids.Next()
	c.vs.pendingViewport = id
	var hl *search.Context
	if c.vs.pattern != "" {
		ctx := c.vs.searchContext()
		hl = &ctx
	}
	c.sendCommand(protocol.LoadViewportCommand{
		ID:        id,
		Anchor:    anchor,
		PageLines: c.vs.PageLines(),
		Width:     c.vs.width,
		Highlight: hl,
	})
}

func (c *Coordinator) requestSearch(origin int64) {
	id := c.ids.Next()
	c.vs.pendingSearch = id
	c.sendCommand(protocol.ExecuteSearchCommand{ID: id, Ctx: c.vs.searchContext(), Origin: origin})
}

func (c *Coordinator) requestNavigate(origin int64, reverse bool) {
	id := c.ids.Next()
	c.vs.pendingSearch = id
	c.sendCommand(protocol.NavigateMatchCommand{ID: id, Origin: origin, Reverse: reverse})
}
