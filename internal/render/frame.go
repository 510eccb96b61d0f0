package render

import "github.com/kk-code-lab/hugeless/internal/protocol"

// Frame is a read-only snapshot of what should be on screen for one tick.
// It is the only thing a Renderer ever sees of the coordinator's state,
// keeping the renderer itself free of any pager semantics.
type Frame struct {
	Width, Height int
	Lines         []protocol.DisplayLine
	AtEOF         bool
	TopByte       int64
	FileSize      int64
	StatusLine    string
	PromptActive  bool
	PromptGlyph   rune // '/', '?', '%', or '-' identifying which prompt is open
	PromptText    string
	ErrorText     string
}

// Renderer draws a Frame to the screen. It is stateless: every field it
// needs to draw with is passed in the Frame or the Theme, so the same
// Renderer value can be reused across an arbitrary number of frames and
// swapped out (for testing, or a future non-terminal backend) without the
// coordinator changing at all.
type Renderer interface {
	Render(frame Frame, theme Theme)
	Size() (width, height int)
}
