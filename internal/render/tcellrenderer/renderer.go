// Package tcellrenderer is the concrete, terminal-backed implementation of
// render.Renderer: owns the tcell.Screen, drives its SetContent/Show draw
// cycle, and accounts for column width via internal/textutil.
package tcellrenderer

import (
	"github.com/gdamore/tcell/v2"

	"github.com/kk-code-lab/hugeless/internal/protocol"
	"github.com/kk-code-lab/hugeless/internal/render"
	"github.com/kk-code-lab/hugeless/internal/textutil"
)

// Renderer draws a render.Frame to a tcell screen. It holds no pager state
// of its own beyond the screen handle, per render.Renderer's statelessness
// contract.
type Renderer struct {
	screen tcell.Screen
}

// New wraps an already-initialized tcell screen.
func New(screen tcell.Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Size reports the current terminal dimensions.
func (r *Renderer) Size() (int, int) {
	return r.screen.Size()
}

// Render implements render.Renderer.
func (r *Renderer) Render(frame render.Frame, theme render.Theme) {
	r.screen.Clear()

	contentHeight := frame.Height - 1
	if contentHeight < 0 {
		contentHeight = 0
	}

	for row := 0; row < contentHeight; row++ {
		if row >= len(frame.Lines) {
			break
		}
		r.drawLine(row, frame.Lines[row], frame.Width, theme)
	}

	r.drawBottomLine(frame, theme)

	r.screen.Show()
}

// drawLine walks one line's runes at their original rune indices, which is
// exactly what line.Spans is indexed by (search.LineMatches runs against
// the accessor's decoded text before any display transform): span lookup
// stays keyed to the source rune position i even though a single source
// rune can expand to several drawn cells below. Tabs collapse to a single
// column rather than a full tab stop, and control runes are shown as '?':
// either transform would desynchronize spans from the text they highlight
// if it changed the source rune count. Bidi/zero-width formatting runes are
// expanded into a bracketed label instead, so log content carrying them
// can't reorder or hide surrounding text, or smuggle part of an escape
// sequence, when drawn to the terminal.
func (r *Renderer) drawLine(row int, line protocol.DisplayLine, width int, theme render.Theme) {
	inSpan := spanLookup(line.Spans)

	runes := []rune(line.Text)
	col := 0
	for i, ru := range runes {
		if col >= width {
			break
		}
		style := tcell.StyleDefault.Foreground(theme.Foreground).Background(theme.Background)
		if inSpan(i) {
			style = style.Foreground(theme.MatchFg).Background(theme.MatchBg)
		}
		for _, gr := range textutil.DisplayGlyph(ru) {
			if col >= width {
				break
			}
			r.screen.SetContent(col, row, gr, nil, style)
			col += textutil.RuneDisplayWidth(gr)
		}
	}
}

func (r *Renderer) drawBottomLine(frame render.Frame, theme render.Theme) {
	y := frame.Height - 1
	if y < 0 {
		return
	}
	style := tcell.StyleDefault.Foreground(theme.StatusFg).Background(theme.StatusBg)
	if frame.ErrorText != "" {
		style = style.Foreground(theme.ErrorFg)
	}

	text := frame.StatusLine
	if frame.PromptActive {
		text = string(frame.PromptGlyph) + frame.PromptText
	}

	col := 0
	for _, ru := range text {
		if col >= frame.Width {
			break
		}
		r.screen.SetContent(col, y, ru, nil, style)
		col += textutil.RuneDisplayWidth(ru)
	}
}
