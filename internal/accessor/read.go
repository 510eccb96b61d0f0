package accessor

import (
	"bytes"
	"io"

	"github.com/kk-code-lab/hugeless/internal/cancel"
)

const readChunkSize = 64 * 1024

// ReadResult is the outcome of a forward read.
type ReadResult struct {
	Lines    []Line
	NextByte int64
	AtEOF    bool
}

// ReadFromByte reads forward from start, returning up to maxLines lines.
// start need not be a line boundary: the accessor snaps forward to the
// first newline boundary >= start, except when start == 0 or start is
// already a known boundary (spec §4.1). The optional token is checked
// between read batches so a huge maxLines request can be aborted.
func (a *Accessor) ReadFromByte(start int64, maxLines int, token *cancel.Token) (ReadResult, error) {
	if a.closed {
		return ReadResult{}, ErrClosed
	}
	size := a.Size()
	if size == 0 {
		return ReadResult{AtEOF: true}, nil
	}
	if start >= size {
		return ReadResult{NextByte: size, AtEOF: true}, nil
	}
	if start < 0 {
		start = 0
	}

	pos, err := a.snapForward(start)
	if err != nil {
		return ReadResult{}, err
	}

	lines := make([]Line, 0, maxLines)
	atEOF := false
	for len(lines) < maxLines {
		if token != nil && token.Cancelled() {
			break
		}
		lineEnd, newlineEnd, err := a.findLineEnd(pos)
		if err != nil {
			return ReadResult{}, err
		}
		raw, err := a.readRange(pos, lineEnd)
		if err != nil {
			return ReadResult{}, err
		}
		lines = append(lines, decodeLine(raw, pos, lineEnd))
		a.index.record(newlineEnd)

		if newlineEnd >= size {
			atEOF = true
			pos = size
			break
		}
		pos = newlineEnd
	}

	if pos >= size {
		atEOF = true
	}

	return ReadResult{Lines: lines, NextByte: pos, AtEOF: atEOF}, nil
}

// snapForward adjusts start to the beginning of its containing or next line,
// unless it is 0 or already a known line boundary.
func (a *Accessor) snapForward(start int64) (int64, error) {
	if start == 0 {
		return 0, nil
	}
	if _, exact := a.index.nearest(start); exact {
		return start, nil
	}
	// scan forward from the nearest known boundary below start to find the
	// newline at or after start.
	known, _ := a.index.nearest(start)
	pos := known
	for pos < start {
		lineEnd, newlineEnd, err := a.findLineEnd(pos)
		if err != nil {
			return 0, err
		}
		a.index.record(newlineEnd)
		if newlineEnd > start || newlineEnd >= a.Size() {
			return newlineEnd, nil
		}
		if lineEnd >= start {
			return newlineEnd, nil
		}
		pos = newlineEnd
	}
	return pos, nil
}

// findLineEnd returns (lineEnd, newlineEnd) for the line starting at pos:
// lineEnd is the offset of the terminating '\n' (or file end if none),
// newlineEnd is the offset just after that newline (or file end).
func (a *Accessor) findLineEnd(pos int64) (lineEnd int64, newlineEnd int64, err error) {
	size := a.Size()
	if pos >= size {
		return size, size, nil
	}

	buf := make([]byte, readChunkSize)
	cursor := pos
	for cursor < size {
		n, rerr := a.store.ReadAt(buf, cursor)
		if rerr != nil && rerr != io.EOF {
			return 0, 0, rerr
		}
		if idx := bytes.IndexByte(buf[:n], '\n'); idx >= 0 {
			nl := cursor + int64(idx)
			return nl, nl + 1, nil
		}
		cursor += int64(n)
		if n == 0 {
			break
		}
	}
	return size, size, nil
}

func (a *Accessor) readRange(start, end int64) ([]byte, error) {
	if end <= start {
		return nil, nil
	}
	buf := make([]byte, end-start)
	n, err := a.store.ReadAt(buf, start)
	if err != nil && err != io.EOF {
		return nil, err
	}
	return buf[:n], nil
}

// lastNewlineBefore reverse-scans the file for the last '\n' at an index
// strictly less than limit, without consulting or growing the forward line
// index. It returns (index, true) on success, or (0, false) if no newline
// exists before limit.
func (a *Accessor) lastNewlineBefore(limit int64) (int64, bool, error) {
	if limit <= 0 {
		return 0, false, nil
	}
	cursor := limit
	for cursor > 0 {
		readStart := cursor - readChunkSize
		if readStart < 0 {
			readStart = 0
		}
		buf := make([]byte, cursor-readStart)
		n, err := a.store.ReadAt(buf, readStart)
		if err != nil && err != io.EOF {
			return 0, false, err
		}
		buf = buf[:n]
		searchLimit := len(buf)
		if readStart+int64(len(buf)) > limit {
			searchLimit = int(limit - readStart)
		}
		if idx := bytes.LastIndexByte(buf[:searchLimit], '\n'); idx >= 0 {
			return readStart + int64(idx), true, nil
		}
		cursor = readStart
	}
	return 0, false, nil
}

// previousLineStart returns the start of the line immediately preceding the
// line that starts at currentLineStart. currentLineStart must itself be a
// known line boundary (0 or the byte right after some '\n'); this holds for
// every top_byte the coordinator ever holds.
func (a *Accessor) previousLineStart(currentLineStart int64) (int64, error) {
	if currentLineStart <= 0 {
		return 0, nil
	}
	idx, ok, err := a.lastNewlineBefore(currentLineStart - 1)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, nil
	}
	return idx + 1, nil
}

// lastLineStart returns the start of the final line in the file: the line
// after the second-to-last newline if the file ends with one, otherwise the
// line after the last newline (the unterminated trailing line).
func (a *Accessor) lastLineStart() (int64, error) {
	size := a.Size()
	if size == 0 {
		return 0, nil
	}
	last, err := a.readRange(size-1, size)
	if err != nil {
		return 0, err
	}
	if len(last) == 1 && last[0] == '\n' {
		return a.previousLineStart(size)
	}
	idx, ok, err := a.lastNewlineBefore(size)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, nil
	}
	return idx + 1, nil
}
