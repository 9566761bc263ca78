package wpreg

import (
	"fmt"
	"io"

	"github.com/abertholt/wpregkit/internal/format"
)

// PartIterator walks a container buffer one part at a time. It is single-pass
// and lazy: each Next decodes one header, bounds-checks its payload, and
// advances by the consumed length.
type PartIterator struct {
	data []byte
	next int // absolute offset of the next header to try
	done bool
}

// Next returns the next part or io.EOF once the buffer is exhausted exactly.
// The parts of a well-formed container tile the buffer with zero remainder;
// any shortfall surfaces as a truncation error wrapping the format sentinels.
func (it *PartIterator) Next() (Part, error) {
	if it.done {
		return Part{}, io.EOF
	}

	rem := len(it.data) - it.next
	if rem == 0 {
		it.done = true
		return Part{}, io.EOF
	}
	if rem < format.HeaderSize {
		it.done = true
		return Part{}, fmt.Errorf("wpreg: %d stray bytes at offset %#x: %w", rem, it.next, format.ErrHeaderTruncated)
	}

	hdr := it.data[it.next:]
	size := format.ParseUint(format.CString(hdr, format.SizeOffset, format.SizeSize))
	if size > uint64(rem-format.HeaderSize) {
		it.done = true
		return Part{}, fmt.Errorf("wpreg: part at offset %#x declares %d payload bytes, %d remain: %w",
			it.next, size, rem-format.HeaderSize, format.ErrPayloadTruncated)
	}

	length := format.HeaderSize + int(size)
	p := Part{raw: it.data[it.next : it.next+length]}
	it.next += length
	return p, nil
}

// Offset returns the absolute byte offset of the next undecoded header.
func (it *PartIterator) Offset() int { return it.next }
