package protocol

// Response is sent from the search worker to the render coordinator over
// the response channel. Every response that answers a specific command
// carries that command's RequestID so the coordinator can discard a stale
// answer superseded by a newer request in the same slot (viewport or
// search).
type Response interface{}

// ViewportLoaded answers a LoadViewportCommand.
type ViewportLoaded struct {
	ID       RequestID
	Viewport Viewport
}

// SearchCompleted answers an ExecuteSearchCommand or NavigateMatchCommand.
// Found is false when the pattern has no further match in the requested
// direction; MatchByte is meaningless in that case.
type SearchCompleted struct {
	ID        RequestID
	Found     bool
	MatchByte int64
}

// ErrorResponse answers any command that failed, most commonly an invalid
// regex pattern surfaced by ExecuteSearch. It still carries the originating
// RequestID so the coordinator can route the message to the right status
// slot instead of guessing.
type ErrorResponse struct {
	ID  RequestID
	Err error
}
