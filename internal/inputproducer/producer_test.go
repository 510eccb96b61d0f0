package inputproducer

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
)

func newTestProducer(t *testing.T) (*Producer, chan Action) {
	t.Helper()
	out := make(chan Action, 16)
	p := New(nil, out)
	return p, out
}

func keyEvent(key tcell.Key, r rune) *tcell.EventKey {
	return tcell.NewEventKey(key, r, tcell.ModNone)
}

func TestNormalMode_ScrollCoalesces(t *testing.T) {
	p, out := newTestProducer(t)
	p.handleKey(keyEvent(tcell.KeyRune, 'j'))
	p.handleKey(keyEvent(tcell.KeyRune, 'j'))
	p.handleKey(keyEvent(tcell.KeyRune, 'j'))

	select {
	case <-out:
		t.Fatalf("scroll should not emit immediately, expected coalescing")
	default:
	}

	p.scroll.flushIfPending(p.emitScroll)

	select {
	case a := <-out:
		sc, ok := a.(ScrollAction)
		if !ok || sc.Lines != 3 {
			t.Fatalf("expected ScrollAction{Lines:3}, got %#v", a)
		}
	default:
		t.Fatalf("expected a coalesced ScrollAction")
	}
}

func TestNormalMode_DirectionReversalFlushesFirst(t *testing.T) {
	p, out := newTestProducer(t)
	p.handleKey(keyEvent(tcell.KeyRune, 'j'))
	p.handleKey(keyEvent(tcell.KeyRune, 'j'))
	p.handleKey(keyEvent(tcell.KeyRune, 'k'))

	a := <-out
	sc, ok := a.(ScrollAction)
	if !ok || sc.Lines != 2 {
		t.Fatalf("expected flushed ScrollAction{Lines:2} on reversal, got %#v", a)
	}
}

func TestNormalMode_PageAndHalfPage(t *testing.T) {
	p, out := newTestProducer(t)
	p.handleKey(keyEvent(tcell.KeyRune, 'f'))
	a := <-out
	if pa, ok := a.(PageAction); !ok || !pa.Forward {
		t.Fatalf("expected PageAction{Forward:true}, got %#v", a)
	}

	p.handleKey(keyEvent(tcell.KeyRune, 'd'))
	a = <-out
	if hp, ok := a.(HalfPageAction); !ok || !hp.Forward {
		t.Fatalf("expected HalfPageAction{Forward:true}, got %#v", a)
	}
}

func TestSearchMode_TypeAndSubmit(t *testing.T) {
	p, out := newTestProducer(t)
	p.handleKey(keyEvent(tcell.KeyRune, '/'))
	<-out // SearchStartAction

	p.handleKey(keyEvent(tcell.KeyRune, 'e'))
	<-out
	p.handleKey(keyEvent(tcell.KeyRune, 'r'))
	<-out
	p.handleKey(keyEvent(tcell.KeyRune, 'r'))
	<-out

	p.handleKey(keyEvent(tcell.KeyEnter, 0))
	a := <-out
	if _, ok := a.(PromptSubmitAction); !ok {
		t.Fatalf("expected PromptSubmitAction, got %#v", a)
	}
	if p.st.mode != modeNormal {
		t.Fatalf("expected mode reset to Normal after submit")
	}
}

func TestNormalMode_CtrlCSignalsSearchCancel(t *testing.T) {
	p, out := newTestProducer(t)
	stop := p.handleKey(keyEvent(tcell.KeyCtrlC, 0))
	if stop {
		t.Fatalf("Ctrl+C in Normal mode should not stop the producer")
	}
	a := <-out
	if _, ok := a.(CancelSearchAction); !ok {
		t.Fatalf("expected CancelSearchAction, got %#v", a)
	}
	if p.st.mode != modeNormal {
		t.Fatalf("Ctrl+C in Normal mode should not change mode")
	}
}

func TestSearchMode_CtrlCCancels(t *testing.T) {
	p, out := newTestProducer(t)
	p.handleKey(keyEvent(tcell.KeyRune, '/'))
	<-out
	p.handleKey(keyEvent(tcell.KeyRune, 'x'))
	<-out
	p.handleKey(keyEvent(tcell.KeyCtrlC, 0))
	a := <-out
	if _, ok := a.(PromptCancelAction); !ok {
		t.Fatalf("expected PromptCancelAction, got %#v", a)
	}
	if p.st.mode != modeNormal {
		t.Fatalf("expected mode reset to Normal after Ctrl+C cancel")
	}
}

func TestSearchMode_EscapeCancels(t *testing.T) {
	p, out := newTestProducer(t)
	p.handleKey(keyEvent(tcell.KeyRune, '?'))
	<-out
	p.handleKey(keyEvent(tcell.KeyRune, 'x'))
	<-out
	p.handleKey(keyEvent(tcell.KeyEscape, 0))
	a := <-out
	if _, ok := a.(PromptCancelAction); !ok {
		t.Fatalf("expected PromptCancelAction, got %#v", a)
	}
	if p.st.mode != modeNormal {
		t.Fatalf("expected mode reset to Normal after cancel")
	}
}

func TestSearchMode_ArrowsRecallHistory(t *testing.T) {
	p, out := newTestProducer(t)
	p.handleKey(keyEvent(tcell.KeyRune, '/'))
	<-out // SearchStartAction

	p.handleKey(keyEvent(tcell.KeyUp, 0))
	a := <-out
	if sh, ok := a.(SearchHistoryAction); !ok || !sh.Older {
		t.Fatalf("expected SearchHistoryAction{Older:true}, got %#v", a)
	}

	p.handleKey(keyEvent(tcell.KeyDown, 0))
	a = <-out
	if sh, ok := a.(SearchHistoryAction); !ok || sh.Older {
		t.Fatalf("expected SearchHistoryAction{Older:false}, got %#v", a)
	}
}

func TestPercentJump_EntersOnPercentSign(t *testing.T) {
	p, out := newTestProducer(t)
	p.handleKey(keyEvent(tcell.KeyRune, '%'))
	a := <-out
	if _, ok := a.(PercentJumpStartAction); !ok {
		t.Fatalf("expected PercentJumpStartAction, got %#v", a)
	}
	if p.st.mode != modePercentJump {
		t.Fatalf("expected mode to switch to PercentJump")
	}
}

func TestPercentJump_DigitsAccumulateAndEnterCommits(t *testing.T) {
	p, out := newTestProducer(t)
	p.handleKey(keyEvent(tcell.KeyRune, '%'))
	<-out // PercentJumpStartAction

	p.handleKey(keyEvent(tcell.KeyRune, '5'))
	<-out
	p.handleKey(keyEvent(tcell.KeyRune, '0'))
	<-out

	select {
	case a := <-out:
		t.Fatalf("digits should not commit the jump by themselves, got %#v", a)
	default:
	}

	p.handleKey(keyEvent(tcell.KeyEnter, 0))
	a := <-out
	pj, ok := a.(PercentJumpAction)
	if !ok || pj.Percent != 50 {
		t.Fatalf("expected PercentJumpAction{Percent:50} on Enter, got %#v", a)
	}
	if p.st.mode != modeNormal {
		t.Fatalf("expected mode reset to Normal after percent jump")
	}
}

func TestPercentJump_ClampsAbove100(t *testing.T) {
	p, out := newTestProducer(t)
	p.handleKey(keyEvent(tcell.KeyRune, '%'))
	<-out
	p.handleKey(keyEvent(tcell.KeyRune, '9'))
	<-out
	p.handleKey(keyEvent(tcell.KeyRune, '9'))
	<-out
	p.handleKey(keyEvent(tcell.KeyRune, '9'))
	<-out
	p.handleKey(keyEvent(tcell.KeyEnter, 0))
	a := <-out
	pj, ok := a.(PercentJumpAction)
	if !ok || pj.Percent != 100 {
		t.Fatalf("expected clamped PercentJumpAction{Percent:100}, got %#v", a)
	}
}

func TestPercentJump_CtrlCCancels(t *testing.T) {
	p, out := newTestProducer(t)
	p.handleKey(keyEvent(tcell.KeyRune, '%'))
	<-out
	p.handleKey(keyEvent(tcell.KeyRune, '5'))
	<-out
	p.handleKey(keyEvent(tcell.KeyCtrlC, 0))
	a := <-out
	if _, ok := a.(PromptCancelAction); !ok {
		t.Fatalf("expected PromptCancelAction, got %#v", a)
	}
	if p.st.mode != modeNormal {
		t.Fatalf("expected mode reset to Normal after Ctrl+C cancel")
	}
}

func TestCommandMode_TogglesOptionsAndExitsOnEnter(t *testing.T) {
	p, out := newTestProducer(t)
	p.handleKey(keyEvent(tcell.KeyRune, '-'))
	a := <-out
	if _, ok := a.(CommandStartAction); !ok {
		t.Fatalf("expected CommandStartAction, got %#v", a)
	}
	if p.st.mode != modeCommand {
		t.Fatalf("expected mode to switch to Command")
	}

	p.handleKey(keyEvent(tcell.KeyRune, 'i'))
	a = <-out
	if ot, ok := a.(OptionToggleAction); !ok || ot.Option != 'i' {
		t.Fatalf("expected OptionToggleAction{Option:'i'}, got %#v", a)
	}
	if p.st.mode != modeCommand {
		t.Fatalf("expected Command mode to stay open after a toggle")
	}

	p.handleKey(keyEvent(tcell.KeyRune, 'w'))
	a = <-out
	if ot, ok := a.(OptionToggleAction); !ok || ot.Option != 'w' {
		t.Fatalf("expected OptionToggleAction{Option:'w'}, got %#v", a)
	}

	p.handleKey(keyEvent(tcell.KeyEnter, 0))
	a = <-out
	if _, ok := a.(CommandExitAction); !ok {
		t.Fatalf("expected CommandExitAction, got %#v", a)
	}
	if p.st.mode != modeNormal {
		t.Fatalf("expected mode reset to Normal after Command exit")
	}
}

func TestCommandMode_UnrecognizedKeyExits(t *testing.T) {
	p, out := newTestProducer(t)
	p.handleKey(keyEvent(tcell.KeyRune, '-'))
	<-out
	p.handleKey(keyEvent(tcell.KeyRune, 'z'))
	a := <-out
	if _, ok := a.(CommandExitAction); !ok {
		t.Fatalf("expected CommandExitAction for an unrecognized letter, got %#v", a)
	}
}

func TestQuit(t *testing.T) {
	p, out := newTestProducer(t)
	stop := p.handleKey(keyEvent(tcell.KeyRune, 'q'))
	if !stop {
		t.Fatalf("expected handleKey to report stop on quit")
	}
	a := <-out
	if _, ok := a.(QuitAction); !ok {
		t.Fatalf("expected QuitAction, got %#v", a)
	}
}

func TestScrollCoalescer_TimerFlush(t *testing.T) {
	c := newScrollCoalescer()
	var flushed int
	flushCalled := false
	c.add(1, func(n int) { flushed = n; flushCalled = true })

	select {
	case <-c.channel():
		c.flushIfPending(func(n int) { flushed = n; flushCalled = true })
	case <-time.After(50 * time.Millisecond):
		t.Fatalf("timer did not fire within window")
	}
	if !flushCalled || flushed != 1 {
		t.Fatalf("expected flush(1), flushed=%d called=%v", flushed, flushCalled)
	}
}
