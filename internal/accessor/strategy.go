package accessor

import "runtime"

// backingStore is the byte-level storage a strategy exposes. Every strategy
// (in-memory, memory-mapped, decompressed-to-temp) ends up implementing this
// once the bytes are in a form that supports random-access ReadAt.
type backingStore interface {
	// ReadAt reads len(p) bytes starting at off, same contract as io.ReaderAt.
	ReadAt(p []byte, off int64) (int, error)
	// Size returns the total number of bytes.
	Size() int64
	// Close releases any resources (mapped memory, temp files).
	Close() error
}

// strategyThreshold returns the file-size cutoff, in bytes, below which the
// whole file is slurped into memory instead of memory-mapped. Memory-mapping
// carries fixed setup cost that only pays off past a certain size, and that
// break-even point shifts with the platform's mmap implementation.
func strategyThreshold() int64 {
	switch runtime.GOOS {
	case "windows":
		// Windows' CreateFileMapping path is comparatively slow to set up;
		// small files are cheaper to just read.
		return 50 * 1024 * 1024
	default:
		return 10 * 1024 * 1024
	}
}
