package accessor

import (
	"golang.org/x/exp/mmap"
)

// mmapStore memory-maps a file with a sequential-access advisory left to the
// OS page cache; golang.org/x/exp/mmap keeps the mapping read-only, which is
// exactly the access pattern a pager needs.
type mmapStore struct {
	reader *mmap.ReaderAt
}

func newMmapStore(path string) (*mmapStore, error) {
	r, err := mmap.Open(path)
	if err != nil {
		return nil, err
	}
	return &mmapStore{reader: r}, nil
}

func (m *mmapStore) ReadAt(p []byte, off int64) (int, error) {
	return m.reader.ReadAt(p, off)
}

func (m *mmapStore) Size() int64 {
	return int64(m.reader.Len())
}

func (m *mmapStore) Close() error {
	return m.reader.Close()
}
