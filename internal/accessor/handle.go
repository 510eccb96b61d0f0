package accessor

import (
	"os"
)

// Accessor is a byte-addressed view over a possibly-huge file. It is owned
// exclusively by one goroutine (the search worker in the wired application);
// nothing about its internal state is safe for concurrent use.
type Accessor struct {
	path     string
	store    backingStore
	index    *lineIndex
	tempPath string // non-empty when store wraps a decompressed temp file
	closed   bool
}

// Open validates path, picks a backing strategy, and returns a ready
// Accessor. Compressed files are streamed to a temporary file first; the
// temp file is removed when the accessor is closed.
func Open(path string) (*Accessor, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if !info.Mode().IsRegular() {
		return nil, ErrNotARegularFile
	}

	c, err := detectCodec(path)
	if err != nil {
		return nil, err
	}

	realPath := path
	tempPath := ""
	if c != codecNone {
		tmp, err := decompressToTemp(path, c)
		if err != nil {
			return nil, err
		}
		realPath = tmp
		tempPath = tmp
		info, err = os.Stat(realPath)
		if err != nil {
			os.Remove(tempPath)
			return nil, err
		}
	}

	enc, err := detectTextEncoding(realPath)
	if err != nil {
		if tempPath != "" {
			os.Remove(tempPath)
		}
		return nil, err
	}
	if enc != encodingUTF8 {
		utf8Path, err := transcodeToUTF8Temp(realPath, enc)
		if err != nil {
			if tempPath != "" {
				os.Remove(tempPath)
			}
			return nil, err
		}
		if tempPath != "" {
			os.Remove(tempPath)
		}
		realPath = utf8Path
		tempPath = utf8Path
		info, err = os.Stat(realPath)
		if err != nil {
			os.Remove(tempPath)
			return nil, err
		}
	}

	store, err := openStrategy(realPath, info.Size())
	if err != nil {
		if tempPath != "" {
			os.Remove(tempPath)
		}
		return nil, err
	}

	return &Accessor{
		path:     path,
		store:    store,
		index:    newLineIndex(),
		tempPath: tempPath,
	}, nil
}

func openStrategy(path string, size int64) (backingStore, error) {
	if size < strategyThreshold() {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		return newMemoryStore(data), nil
	}
	return newMmapStore(path)
}

// Size returns the total byte size of the (possibly decompressed) file.
func (a *Accessor) Size() int64 {
	if a.closed {
		return 0
	}
	return a.store.Size()
}

// Path returns the originally-opened path (before decompression).
func (a *Accessor) Path() string {
	return a.path
}

// Close releases the backing storage and any temporary decompressed file.
func (a *Accessor) Close() error {
	if a.closed {
		return nil
	}
	a.closed = true
	err := a.store.Close()
	if a.tempPath != "" {
		if rmErr := os.Remove(a.tempPath); rmErr != nil && err == nil {
			err = rmErr
		}
	}
	return err
}
