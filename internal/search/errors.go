package search

import (
	"errors"
	"fmt"
)

// ErrCancelled is returned by FindMatch when the search was aborted via its
// cancellation token before completing, distinct from "not found".
var ErrCancelled = errors.New("search: cancelled")

// CompileError wraps a regex compilation failure with the original pattern,
// distinct from a "not found" result, so the coordinator can surface the
// compiler's message on the status line while leaving prior search state
// intact.
type CompileError struct {
	Pattern string
	Err     error
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("invalid pattern %q: %v", e.Pattern, e.Err)
}

func (e *CompileError) Unwrap() error {
	return e.Err
}
