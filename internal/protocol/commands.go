package protocol

import "github.com/kk-code-lab/hugeless/internal/search"

// Command is sent from the render coordinator to the search worker over the
// command channel. Concrete types are the typed structs below, dispatched by
// the worker's command loop via a type switch.
type Command interface{}

// LoadViewport asks the worker to resolve Anchor against the file and
// accessor state and read PageLines lines from there. If Highlight is
// non-nil the worker computes per-line match spans against it for every
// line it reads.
type LoadViewportCommand struct {
	ID        RequestID
	Anchor    Anchor
	PageLines int
	Width     int
	Highlight *search.Context
}

// ExecuteSearch asks the worker to find the next match of Ctx starting from
// Origin and, on success, remember it as the worker's last match.
type ExecuteSearchCommand struct {
	ID     RequestID
	Ctx    search.Context
	Origin int64
}

// NavigateMatch repeats the worker's last remembered search, optionally
// reversing its direction (the 'N' key relative to 'n').
type NavigateMatchCommand struct {
	ID      RequestID
	Origin  int64
	Reverse bool
}

// UpdateSearchContext mirrors the coordinator's current search options (case
// sensitivity, whole-word, regex) into the worker without triggering a
// search, so a later NavigateMatch or highlight pass uses fresh options. It
// carries no RequestID and expects no response.
type UpdateSearchContextCommand struct {
	Ctx search.Context
}

// Shutdown asks the worker to finish any in-flight command and exit its
// loop. The coordinator closes the command channel after sending this, so
// the worker never needs to distinguish "shutdown requested" from "channel
// closed".
type ShutdownCommand struct{}
