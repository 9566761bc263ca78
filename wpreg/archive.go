package wpreg

import (
	"github.com/abertholt/wpregkit/internal/mmfile"
)

// Archive is an opened wpreg container, backed by a read-only mapping
// (unix) or an in-memory copy (other platforms). The core never writes into
// the buffer; it stays valid until Close.
type Archive struct {
	data    []byte
	size    int64
	cleanup func() error
}

// Open maps the container at path read-only. An empty file is a valid
// container with zero parts.
func Open(path string) (*Archive, error) {
	data, cleanup, err := mmfile.Map(path)
	if err != nil {
		return nil, err
	}
	return &Archive{
		data:    data,
		size:    int64(len(data)),
		cleanup: cleanup,
	}, nil
}

// Parse wraps an in-memory buffer as an Archive. The caller keeps ownership
// of data and must not mutate it while the archive is in use.
func Parse(data []byte) *Archive {
	return &Archive{data: data, size: int64(len(data))}
}

// Close releases the underlying mapping. Safe to call twice.
func (a *Archive) Close() error {
	var err error
	if a.cleanup != nil {
		err = a.cleanup()
		a.cleanup = nil
	}
	a.data = nil
	return err
}

// Bytes returns the raw container contents.
func (a *Archive) Bytes() []byte { return a.data }

// Size returns the container length in bytes.
func (a *Archive) Size() int64 { return a.size }

// Parts returns an iterator positioned at the first part.
func (a *Archive) Parts() PartIterator {
	return PartIterator{data: a.data}
}
