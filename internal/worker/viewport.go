package worker

import (
	"github.com/kk-code-lab/hugeless/internal/protocol"
	"github.com/kk-code-lab/hugeless/internal/search"
)

func (w *Worker) handleLoadViewport(c protocol.LoadViewportCommand) {
	top, err := w.resolveAnchor(c.Anchor, c.PageLines, c.Width)
	if err != nil {
		w.resp <- protocol.ErrorResponse{ID: c.ID, Err: err}
		return
	}

	result, err := w.acc.ReadFromByte(top, c.PageLines, w.token)
	if err != nil {
		w.resp <- protocol.ErrorResponse{ID: c.ID, Err: err}
		return
	}
	// ReadFromByte snaps top forward to a line boundary internally (e.g. a
	// mid-line %-jump anchor); report that snapped boundary, not the raw
	// anchor, so TopByte always agrees with the first visible line's Start.
	if len(result.Lines) > 0 {
		top = result.Lines[0].Start
	}

	lines := make([]protocol.DisplayLine, 0, len(result.Lines))
	for _, line := range result.Lines {
		var spans []search.Span
		if c.Highlight != nil {
			spans, err = search.LineMatches(line.Text, *c.Highlight)
			if err != nil {
				spans = nil
			}
		}
		lines = append(lines, protocol.DisplayLine{
			Start:     line.Start,
			Text:      line.Text,
			Truncated: line.Truncated,
			Spans:     spans,
		})
	}

	w.resp <- protocol.ViewportLoaded{
		ID: c.ID,
		Viewport: protocol.Viewport{
			TopByte:  top,
			Lines:    lines,
			AtEOF:    result.AtEOF,
			FileSize: w.acc.Size(),
		},
	}
}

// resolveAnchor turns a protocol.Anchor into a concrete byte offset. Only
// the worker's accessor knows line boundaries, so this resolution cannot
// happen in the coordinator.
func (w *Worker) resolveAnchor(a protocol.Anchor, pageLines, width int) (int64, error) {
	switch a.Kind() {
	case "absolute":
		off := a.Absolute()
		size := w.acc.Size()
		if off < 0 {
			off = 0
		}
		if size > 0 && off >= size {
			off = size - 1
		}
		return off, nil
	case "relative":
		base := a.Absolute()
		delta := a.RelativeDelta()
		if delta >= 0 {
			next, err := w.acc.NextPageStart(base, int(delta))
			if err != nil {
				return 0, err
			}
			// Never scroll the file's final line off the top: once base is on
			// (or past) the last line, forward requests must not advance any
			// further so the view keeps showing (END) with content on screen.
			last, err := w.acc.LastPageStart(1)
			if err != nil {
				return 0, err
			}
			if next > last {
				return last, nil
			}
			return next, nil
		}
		return w.acc.PrevPageStart(base, int(-delta), width)
	default: // end_of_file
		return w.acc.LastPageStart(pageLines)
	}
}
