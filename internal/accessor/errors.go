package accessor

import "errors"

// Error kinds the accessor distinguishes from a generic I/O failure.
var (
	ErrNotARegularFile  = errors.New("accessor: not a regular file")
	ErrOutOfRange       = errors.New("accessor: offset out of range")
	ErrUnsupportedCodec = errors.New("accessor: unsupported compression format")
	ErrClosed           = errors.New("accessor: accessor is closed")
)
