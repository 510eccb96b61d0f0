// Package hugeapp wires the file accessor, search worker, input producer,
// and render coordinator together and owns the terminal lifecycle.
package hugeapp

import (
	"github.com/gdamore/tcell/v2"

	"github.com/kk-code-lab/hugeless/internal/accessor"
	"github.com/kk-code-lab/hugeless/internal/cancel"
	"github.com/kk-code-lab/hugeless/internal/inputproducer"
	"github.com/kk-code-lab/hugeless/internal/protocol"
	"github.com/kk-code-lab/hugeless/internal/render"
	"github.com/kk-code-lab/hugeless/internal/render/tcellrenderer"
	"github.com/kk-code-lab/hugeless/internal/worker"
)

// channelCapacity bounds the command/response/action channels so a stalled
// consumer applies backpressure instead of letting memory grow without
// limit.
const channelCapacity = 64

// Application owns every long-lived goroutine and the terminal screen for
// one pager session.
type Application struct {
	screen tcell.Screen
	cmds   chan protocol.Command
	resp   chan protocol.Response
	acts   chan inputproducer.Action

	worker      *worker.Worker
	producer    *inputproducer.Producer
	coordinator *render.Coordinator
}

// Open validates and opens path, initializes the terminal, and wires the
// three concurrent components together. The caller must call Close exactly
// once, on every exit path, to guarantee the terminal is restored.
func Open(path string) (*Application, error) {
	acc, err := accessor.Open(path)
	if err != nil {
		return nil, err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		acc.Close()
		return nil, err
	}
	if err := screen.Init(); err != nil {
		acc.Close()
		return nil, err
	}

	cmds := make(chan protocol.Command, channelCapacity)
	resp := make(chan protocol.Response, channelCapacity)
	acts := make(chan inputproducer.Action, channelCapacity)

	token := cancel.NewToken()
	w := worker.New(acc, cmds, resp, token)
	renderer := tcellrenderer.New(screen)
	coord := render.New(acts, cmds, resp, renderer, acc.Size(), token)
	producer := inputproducer.New(screen, acts)

	return &Application{
		screen:      screen,
		cmds:        cmds,
		resp:        resp,
		acts:        acts,
		worker:      w,
		producer:    producer,
		coordinator: coord,
	}, nil
}

// Run starts the worker and input producer on their own goroutines and
// blocks running the render coordinator on the calling goroutine until the
// user quits, then waits for the worker to finish shutting down.
func (a *Application) Run() {
	go a.worker.Run()
	go a.producer.Run()

	a.coordinator.Run()
}

// Close restores the terminal. It is safe to call after Run returns or on
// any early-exit path before Run was ever called.
func (a *Application) Close() {
	a.screen.Fini()
}
