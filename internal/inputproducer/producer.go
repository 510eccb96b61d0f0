package inputproducer

import (
	"runtime"
	"strconv"

	"github.com/gdamore/tcell/v2"
	"github.com/kk-code-lab/hugeless/internal/search"
)

// Producer polls terminal events on a dedicated OS thread and emits typed
// Actions to the render coordinator. Nothing about it is safe for
// concurrent use from more than the one goroutine that calls Run.
type Producer struct {
	screen tcell.Screen
	out    chan<- Action
	st     state
	scroll *scrollCoalescer
}

// New constructs a Producer reading events from screen and writing Actions
// to out.
func New(screen tcell.Screen, out chan<- Action) *Producer {
	return &Producer{
		screen: screen,
		out:    out,
		scroll: newScrollCoalescer(),
	}
}

// Run blocks polling terminal events until the screen is finalized or a
// quit action is emitted. It locks the calling goroutine to its OS thread
// for the duration, since tcell's PollEvent makes a blocking native read
// that should not migrate between Go's scheduler threads.
func (p *Producer) Run() {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	events := make(chan tcell.Event)
	done := make(chan struct{})
	go func() {
		defer close(events)
		for {
			select {
			case <-done:
				return
			default:
			}
			ev := p.screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()
	defer close(done)

	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return
			}
			if p.handleEvent(ev) {
				return
			}
		case <-p.scroll.channel():
			p.scroll.flushIfPending(p.emitScroll)
		}
	}
}

func (p *Producer) emit(a Action) {
	p.scroll.flushIfPending(p.emitScroll)
	p.out <- a
}

func (p *Producer) emitScroll(lines int) {
	p.out <- ScrollAction{Lines: lines}
}

// handleEvent processes one terminal event and reports whether the
// producer should stop.
func (p *Producer) handleEvent(ev tcell.Event) bool {
	switch e := ev.(type) {
	case *tcell.EventResize:
		w, h := e.Size()
		p.emit(ResizeAction{Width: w, Height: h})
		return false
	case *tcell.EventKey:
		return p.handleKey(e)
	default:
		return false
	}
}

func (p *Producer) handleKey(ev *tcell.EventKey) bool {
	switch p.st.mode {
	case modeSearch:
		return p.handleSearchKey(ev)
	case modePercentJump:
		return p.handlePercentJumpKey(ev)
	case modeCommand:
		return p.handleCommandKey(ev)
	default:
		return p.handleNormalKey(ev)
	}
}

func (p *Producer) handleNormalKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyUp:
		p.scroll.add(-1, p.emitScroll)
		return false
	case tcell.KeyDown:
		p.scroll.add(1, p.emitScroll)
		return false
	case tcell.KeyPgUp:
		p.emit(PageAction{Forward: false})
		return false
	case tcell.KeyPgDn:
		p.emit(PageAction{Forward: true})
		return false
	case tcell.KeyCtrlC:
		p.emit(CancelSearchAction{})
		return false
	case tcell.KeyEscape:
		return false
	case tcell.KeyRune:
		return p.handleNormalRune(ev.Rune())
	default:
		return false
	}
}

func (p *Producer) handleNormalRune(r rune) bool {
	switch r {
	case 'k':
		p.scroll.add(-1, p.emitScroll)
	case 'j':
		p.scroll.add(1, p.emitScroll)
	case ' ', 'f':
		p.emit(PageAction{Forward: true})
	case 'b':
		p.emit(PageAction{Forward: false})
	case 'd':
		p.emit(HalfPageAction{Forward: true})
	case 'u':
		p.emit(HalfPageAction{Forward: false})
	case 'g':
		p.emit(JumpTopAction{})
	case 'G':
		p.emit(JumpBottomAction{})
	case '/':
		p.st.enterSearch(search.Forward)
		p.emit(SearchStartAction{Direction: search.Forward})
	case '?':
		p.st.enterSearch(search.Backward)
		p.emit(SearchStartAction{Direction: search.Backward})
	case 'n':
		p.emit(NavigateMatchAction{Reverse: false})
	case 'N':
		p.emit(NavigateMatchAction{Reverse: true})
	case '%':
		p.st.enterPercentJump()
		p.emit(PercentJumpStartAction{})
	case '-':
		p.st.enterCommand()
		p.emit(CommandStartAction{})
	case 'q':
		p.emit(QuitAction{})
		return true
	}
	return false
}

func (p *Producer) handleSearchKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEnter:
		p.st.reset()
		p.emit(PromptSubmitAction{})
	case tcell.KeyEscape, tcell.KeyCtrlC:
		p.st.reset()
		p.emit(PromptCancelAction{})
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if len(p.st.buf) == 0 {
			p.st.reset()
			p.emit(PromptCancelAction{})
		} else {
			p.st.buf = p.st.buf[:len(p.st.buf)-1]
			p.emit(PromptBackspaceAction{})
		}
	case tcell.KeyUp:
		p.emit(SearchHistoryAction{Older: true})
	case tcell.KeyDown:
		p.emit(SearchHistoryAction{Older: false})
	case tcell.KeyRune:
		p.st.buf = append(p.st.buf, ev.Rune())
		p.emit(PromptCharAction{Char: ev.Rune()})
	}
	return false
}

// handlePercentJumpKey accumulates digits typed after '%' and commits the
// jump on Enter (spec: "%50<Enter>"), rather than on a second '%'.
func (p *Producer) handlePercentJumpKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEnter:
		pct, err := strconv.Atoi(string(p.st.buf))
		p.st.reset()
		if err != nil {
			p.emit(PromptCancelAction{})
			return false
		}
		if pct > 100 {
			pct = 100
		}
		p.emit(PercentJumpAction{Percent: pct})
	case tcell.KeyEscape, tcell.KeyCtrlC:
		p.st.reset()
		p.emit(PromptCancelAction{})
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if len(p.st.buf) == 0 {
			p.st.reset()
			p.emit(PromptCancelAction{})
		} else {
			p.st.buf = p.st.buf[:len(p.st.buf)-1]
			p.emit(PromptBackspaceAction{})
		}
	case tcell.KeyRune:
		if r := ev.Rune(); r >= '0' && r <= '9' {
			p.st.buf = append(p.st.buf, r)
			p.emit(PromptCharAction{Char: r})
		}
	}
	return false
}

// handleCommandKey toggles interactive search options while '-' is held
// open: each recognized letter fires immediately and stays in the mode, any
// other key (including Enter/Esc) closes it.
func (p *Producer) handleCommandKey(ev *tcell.EventKey) bool {
	if ev.Key() == tcell.KeyRune {
		switch r := ev.Rune(); r {
		case 'i', 'r', 'n', 'w':
			p.st.buf = append(p.st.buf, r)
			p.emit(OptionToggleAction{Option: r})
			return false
		}
	}
	p.st.reset()
	p.emit(CommandExitAction{})
	return false
}
