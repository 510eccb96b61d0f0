package accessor

import "sort"

// lineIndex is a lazily-grown, sorted list of known line-start byte offsets.
// It only ever grows forward, as far as a caller has asked the accessor to
// read; it never materializes an index for the whole file. Backward
// navigation does not consult it at all — the accessor scans backward from
// the current position instead (see lastNewlineBefore and previousLineStart
// in read.go).
type lineIndex struct {
	starts []int64 // always sorted ascending, starts[0] == 0
}

func newLineIndex() *lineIndex {
	return &lineIndex{starts: []int64{0}}
}

// record appends a newly-discovered line start. Callers must only pass
// offsets greater than the last recorded one; out-of-order or duplicate
// offsets are ignored so the index stays sorted without a search on every
// insert.
func (idx *lineIndex) record(offset int64) {
	if len(idx.starts) == 0 {
		idx.starts = append(idx.starts, offset)
		return
	}
	last := idx.starts[len(idx.starts)-1]
	if offset > last {
		idx.starts = append(idx.starts, offset)
	}
}

// nearest returns the largest known line-start offset that is <= target, and
// whether the index actually extends far enough to cover target exactly
// (i.e. target itself is a known boundary).
func (idx *lineIndex) nearest(target int64) (offset int64, exact bool) {
	i := sort.Search(len(idx.starts), func(i int) bool {
		return idx.starts[i] > target
	})
	if i == 0 {
		return 0, target == 0
	}
	offset = idx.starts[i-1]
	return offset, offset == target
}
