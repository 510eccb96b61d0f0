package render

import (
	"github.com/kk-code-lab/hugeless/internal/inputproducer"
	"github.com/kk-code-lab/hugeless/internal/protocol"
	"github.com/kk-code-lab/hugeless/internal/search"
)

func (c *Coordinator) handleAction(a inputproducer.Action) {
	if c.vs.prompt != promptNone {
		c.handlePromptAction(a)
		return
	}

	switch act := a.(type) {
	case inputproducer.ScrollAction:
		c.scrollBy(act.Lines)
	case inputproducer.PageAction:
		c.page(act.Forward, c.vs.PageLines())
	case inputproducer.HalfPageAction:
		c.page(act.Forward, c.vs.PageLines()/2)
	case inputproducer.JumpTopAction:
		c.requestViewport(protocol.AbsoluteByte(0))
	case inputproducer.JumpBottomAction:
		c.requestViewport(protocol.EndOfFile())
	case inputproducer.SearchStartAction:
		c.vs.prompt = promptSearch
		c.vs.promptDir = act.Direction
		c.vs.promptBuf = nil
		c.vs.historyIdx = -1
	case inputproducer.PercentJumpStartAction:
		c.vs.prompt = promptPercentJump
		c.vs.promptBuf = nil
	case inputproducer.CommandStartAction:
		c.vs.prompt = promptCommand
		c.vs.promptBuf = nil
	case inputproducer.CancelSearchAction:
		c.token.Cancel()
	case inputproducer.NavigateMatchAction:
		c.requestNavigate(c.vs.topByte, act.Reverse)
	case inputproducer.ResizeAction:
		c.vs.width, c.vs.height = act.Width, act.Height
	case inputproducer.QuitAction:
		c.vs.shuttingDown = true
	}
}

// handlePromptAction handles every action that can arrive while a bottom-
// line prompt (Search, PercentJump, or Command) is open. Buffer editing is
// shared across all three; only how a prompt is submitted differs.
func (c *Coordinator) handlePromptAction(a inputproducer.Action) {
	switch act := a.(type) {
	case inputproducer.PromptCharAction:
		c.vs.promptBuf = append(c.vs.promptBuf, act.Char)
	case inputproducer.PromptBackspaceAction:
		if len(c.vs.promptBuf) > 0 {
			c.vs.promptBuf = c.vs.promptBuf[:len(c.vs.promptBuf)-1]
		}
	case inputproducer.PromptCancelAction:
		c.vs.prompt = promptNone
		c.vs.promptBuf = nil
		c.vs.historyIdx = -1
	case inputproducer.SearchHistoryAction:
		c.recallSearchHistory(act.Older)
	case inputproducer.PromptSubmitAction:
		c.submitSearch()
	case inputproducer.PercentJumpAction:
		c.vs.prompt = promptNone
		c.vs.promptBuf = nil
		c.jumpToPercent(act.Percent)
	case inputproducer.OptionToggleAction:
		c.toggleOption(act.Option)
		c.vs.promptBuf = append(c.vs.promptBuf, act.Option)
	case inputproducer.CommandExitAction:
		c.vs.prompt = promptNone
		c.vs.promptBuf = nil
	case inputproducer.QuitAction:
		c.vs.shuttingDown = true
	}
}

func (c *Coordinator) submitSearch() {
	pattern := string(c.vs.promptBuf)
	c.vs.prompt = promptNone
	c.vs.promptBuf = nil
	c.vs.historyIdx = -1
	if pattern == "" {
		return
	}
	// Reject an invalid regex before pattern and direction are replaced, so
	// the prior search state stays intact.
	candidate := search.Context{Pattern: pattern, Direction: c.vs.promptDir, Options: c.vs.options}
	if _, err := search.LineMatches("", candidate); err != nil {
		c.vs.errorText = err.Error()
		return
	}
	c.vs.pattern = pattern
	c.vs.direction = c.vs.promptDir
	c.vs.pushHistory(pattern)
	c.requestSearch(c.vs.topByte)
}

// recallSearchHistory moves the search prompt buffer through the history
// ring without reordering it: Older (Arrow-Up) steps toward earlier
// entries starting from the most recent, and its opposite (Arrow-Down)
// steps back and finally clears the buffer once the walk runs past the
// most recent entry.
func (c *Coordinator) recallSearchHistory(older bool) {
	if len(c.vs.history) == 0 {
		return
	}
	if older {
		if c.vs.historyIdx == -1 {
			c.vs.historyIdx = len(c.vs.history) - 1
		} else if c.vs.historyIdx > 0 {
			c.vs.historyIdx--
		}
	} else {
		if c.vs.historyIdx == -1 {
			return
		}
		if c.vs.historyIdx < len(c.vs.history)-1 {
			c.vs.historyIdx++
		} else {
			c.vs.historyIdx = -1
			c.vs.promptBuf = nil
			return
		}
	}
	c.vs.promptBuf = []rune(c.vs.history[c.vs.historyIdx])
}

func (c *Coordinator) scrollBy(lines int) {
	c.requestViewport(protocol.RelativeLines(c.vs.topByte, int64(lines)))
}

func (c *Coordinator) page(forward bool, lines int) {
	if lines <= 0 {
		lines = 1
	}
	delta := int64(lines)
	if !forward {
		delta = -delta
	}
	c.requestViewport(protocol.RelativeLines(c.vs.topByte, delta))
}

func (c *Coordinator) jumpToPercent(pct int) {
	if pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}
	target := c.vs.fileSize * int64(pct) / 100
	c.requestViewport(protocol.AbsoluteByte(target))
}

// toggleOption flips one less(1)-style interactive option, entered via
// Command mode ('-' followed by the letter). Toggling case sensitivity
// explicitly (-i) disables smart-case so the user's choice sticks, rather
// than being silently overridden by the pattern's own casing on the very
// next search.
func (c *Coordinator) toggleOption(opt rune) {
	switch opt {
	case 'i':
		c.vs.options.SmartCase = false
		c.vs.options.CaseSensitive = !c.vs.options.CaseSensitive
	case 'r':
		c.vs.options.Regex = !c.vs.options.Regex
	case 'n':
		c.vs.options.Invert = !c.vs.options.Invert
	case 'w':
		c.vs.options.WholeWord = !c.vs.options.WholeWord
	}
	if c.vs.pattern != "" {
		c.sendCommand(protocol.UpdateSearchContextCommand{Ctx: c.vs.searchContext()})
		c.requestViewport(protocol.AbsoluteByte(c.vs.topByte))
	}
}

func (c *Coordinator) handleResponse(r protocol.Response) {
	switch res := r.(type) {
	case protocol.ViewportLoaded:
		if res.ID != c.vs.pendingViewport {
			return // stale: a newer LoadViewport has since been issued
		}
		c.vs.viewport = res.Viewport
		c.vs.topByte = res.Viewport.TopByte
		c.vs.fileSize = res.Viewport.FileSize
		c.vs.haveData = true
		c.vs.errorText = ""
	case protocol.SearchCompleted:
		if res.ID != c.vs.pendingSearch {
			return // stale: a newer search or navigate has since been issued
		}
		if !res.Found {
			c.vs.statusText = "pattern not found"
			return
		}
		c.vs.statusText = ""
		c.requestViewport(protocol.AbsoluteByte(res.MatchByte))
	case protocol.ErrorResponse:
		if res.ID != c.vs.pendingViewport && res.ID != c.vs.pendingSearch {
			return
		}
		c.vs.errorText = res.Err.Error()
	}
}
