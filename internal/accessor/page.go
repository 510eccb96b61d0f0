package accessor

// NextPageStart returns the byte offset after advancing pageLines lines
// forward from current.
func (a *Accessor) NextPageStart(current int64, pageLines int) (int64, error) {
	result, err := a.ReadFromByte(current, pageLines, nil)
	if err != nil {
		return 0, err
	}
	return result.NextByte, nil
}

// PrevPageStart computes the byte offset whose forward read of pageLines
// lines ends at current. width is accepted for interface symmetry with the
// renderer's page-size calculation but does not affect the byte-space
// result: this accessor works in raw lines, not wrapped display rows.
func (a *Accessor) PrevPageStart(current int64, pageLines int, width int) (int64, error) {
	if pageLines <= 0 || current <= 0 {
		return 0, nil
	}
	pos := current
	for i := 0; i < pageLines; i++ {
		if pos <= 0 {
			return 0, nil
		}
		prev, err := a.previousLineStart(pos)
		if err != nil {
			return 0, err
		}
		pos = prev
	}
	return pos, nil
}

// LastPageStart returns the byte offset from which a forward read yields the
// final pageLines lines of the file.
func (a *Accessor) LastPageStart(pageLines int) (int64, error) {
	size := a.Size()
	if size == 0 {
		return 0, nil
	}
	if pageLines <= 0 {
		return size, nil
	}
	pos, err := a.lastLineStart()
	if err != nil {
		return 0, err
	}
	for i := 1; i < pageLines; i++ {
		if pos <= 0 {
			return 0, nil
		}
		prev, err := a.previousLineStart(pos)
		if err != nil {
			return 0, err
		}
		pos = prev
	}
	return pos, nil
}
