// Package inputproducer reads terminal events on a dedicated OS thread and
// turns them into typed actions for the render coordinator, coalescing
// rapid scroll input so a held-down key doesn't flood the coordinator with
// one action per keystroke.
package inputproducer

import "github.com/kk-code-lab/hugeless/internal/search"

// Action is delivered to the render coordinator over its input channel.
// Concrete types are the typed structs below, dispatched the same way
// protocol.Command is on the worker side.
type Action interface{}

// ScrollAction moves the viewport by Lines (positive forward, negative
// backward), already coalesced across a short window of repeated key
// presses in the same direction.
type ScrollAction struct {
	Lines int
}

// PageAction pages forward or backward by a full screen.
type PageAction struct {
	Forward bool
}

// HalfPageAction pages forward or backward by half a screen ('d'/'u').
type HalfPageAction struct {
	Forward bool
}

// JumpTopAction moves to the start of the file ('g').
type JumpTopAction struct{}

// JumpBottomAction moves to the end of the file ('G').
type JumpBottomAction struct{}

// PercentJumpAction moves to the given percentage of the file (0-100),
// produced once the user types '%', the digits, and Enter ("%NN<Enter>").
type PercentJumpAction struct {
	Percent int
}

// SearchStartAction opens the prompt for a new search in Direction ('/' or
// '?').
type SearchStartAction struct {
	Direction search.Direction
}

// PromptCharAction appends a rune to whichever prompt buffer is currently
// open: search pattern, percent-jump digits, or nothing (Command mode
// toggles apply immediately and don't go through this action).
type PromptCharAction struct {
	Char rune
}

// PromptBackspaceAction removes the last rune from the open prompt buffer.
type PromptBackspaceAction struct{}

// PromptSubmitAction executes the search prompt buffer as a pattern.
type PromptSubmitAction struct{}

// PromptCancelAction discards the in-progress prompt and returns to Normal
// mode.
type PromptCancelAction struct{}

// SearchHistoryAction recalls an entry from the search history ring into the
// open search prompt buffer without reordering the ring: Older moves toward
// earlier entries (Arrow-Up), and its opposite (Arrow-Down) moves back
// toward the most recent one and then to an empty buffer.
type SearchHistoryAction struct {
	Older bool
}

// PercentJumpStartAction opens the percent-jump prompt ('%').
type PercentJumpStartAction struct{}

// CommandStartAction opens the option-toggle prompt ('-').
type CommandStartAction struct{}

// CommandExitAction closes the option-toggle prompt, whether via Enter, Esc,
// or any key that isn't a recognized option letter.
type CommandExitAction struct{}

// CancelSearchAction requests that an in-flight search be aborted, without
// leaving Normal mode: Ctrl+C in Normal signals this, distinct from the same
// key in a prompt mode, which is a PromptCancelAction that also closes the
// prompt.
type CancelSearchAction struct{}

// NavigateMatchAction repeats the last search ('n'), optionally reversed
// ('N').
type NavigateMatchAction struct {
	Reverse bool
}

// OptionToggleAction flips one interactive search option, identified by its
// less(1)-style letter: 'i' case-sensitivity, 'r' regex, 'n' invert match,
// 'w' whole-word. Emitted from Command mode, one per typed letter.
type OptionToggleAction struct {
	Option rune
}

// ResizeAction reports a new terminal size.
type ResizeAction struct {
	Width  int
	Height int
}

// QuitAction requests the application exit.
type QuitAction struct{}
