package protocol

import "github.com/kk-code-lab/hugeless/internal/search"

// DisplayLine is a single decoded line plus the highlight spans found within
// it, ready for the renderer to draw without touching the file or the
// search engine again.
type DisplayLine struct {
	Start     int64
	Text      string
	Truncated bool
	Spans     []search.Span
}

// Viewport is the worker's answer to a LoadViewport command: everything the
// coordinator needs to update its view state and hand to the renderer.
type Viewport struct {
	TopByte  int64
	Lines    []DisplayLine
	AtEOF    bool
	FileSize int64
}
