package inputproducer

import "github.com/kk-code-lab/hugeless/internal/search"

type mode int

const (
	modeNormal mode = iota
	modeSearch
	modePercentJump
	modeCommand
)

// state is the producer's private state machine, mutated only from the
// dedicated input goroutine.
type state struct {
	mode      mode
	searchDir search.Direction
	buf       []rune
}

func (s *state) reset() {
	s.mode = modeNormal
	s.buf = s.buf[:0]
}

func (s *state) enterSearch(dir search.Direction) {
	s.mode = modeSearch
	s.searchDir = dir
	s.buf = s.buf[:0]
}

func (s *state) enterPercentJump() {
	s.mode = modePercentJump
	s.buf = s.buf[:0]
}

func (s *state) enterCommand() {
	s.mode = modeCommand
	s.buf = s.buf[:0]
}
