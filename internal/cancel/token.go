// Package cancel provides a small cooperative cancellation primitive shared
// between the file accessor and the search engine. Canceling in-flight I/O
// mid-read is unnecessary complexity here (stale responses are cheap to
// discard by request ID); this token exists for long CPU-bound scans that
// genuinely need to bail out early.
package cancel

import "sync"

// Token is a re-armable cooperative cancellation flag. A single Token is
// shared by a worker across the lifetime of a session; Cancel marks the
// current generation cancelled, and Rearm starts a fresh generation so that
// commands issued after a completed cancellation are not cancelled
// prematurely.
type Token struct {
	mu        sync.Mutex
	cancelled bool
}

// NewToken returns a Token in the not-cancelled state.
func NewToken() *Token {
	return &Token{}
}

// Cancel marks the current generation as cancelled.
func (t *Token) Cancel() {
	t.mu.Lock()
	t.cancelled = true
	t.mu.Unlock()
}

// Cancelled reports whether the current generation has been cancelled. Call
// sites check this at cooperative boundaries (between lines during a scan,
// between read batches during a viewport load).
func (t *Token) Cancelled() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.cancelled
}

// Rearm resets the token to the not-cancelled state, starting a new
// generation. The worker calls this after finishing a search command so the
// next command isn't cancelled by a stale signal.
func (t *Token) Rearm() {
	t.mu.Lock()
	t.cancelled = false
	t.mu.Unlock()
}
