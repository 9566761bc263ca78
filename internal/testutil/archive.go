// Package testutil synthesizes wpreg containers for tests.
package testutil

import (
	"strconv"

	"github.com/abertholt/wpregkit/internal/format"
)

// PartSpec describes one record of a synthesized container. Numeric fields
// are raw header text so tests can exercise the base-0 notation ("0x10",
// "020", "16") and garbage values directly.
type PartSpec struct {
	Name    string
	Path    string
	Vers    string
	Hash    []byte // at most 16 bytes, zero-padded
	Mode    string // e.g. "0644"
	Time    string // epoch seconds
	Rsvd    string
	Size    string // overrides len(Payload) when set
	Payload []byte
}

// Append serializes one part onto buf and returns the extended slice.
func Append(buf []byte, s PartSpec) []byte {
	hdr := make([]byte, format.HeaderSize)
	putText(hdr, format.NameOffset, format.NameSize, s.Name)
	putText(hdr, format.PathOffset, format.PathSize, s.Path)
	putText(hdr, format.VersOffset, format.VersSize, s.Vers)
	copy(hdr[format.HashOffset:format.HashOffset+format.HashSize], s.Hash)

	size := s.Size
	if size == "" {
		size = strconv.Itoa(len(s.Payload))
	}
	putText(hdr, format.SizeOffset, format.SizeSize, size)
	putText(hdr, format.ModeOffset, format.ModeSize, s.Mode)
	putText(hdr, format.TimeOffset, format.TimeSize, s.Time)
	putText(hdr, format.RsvdOffset, format.RsvdSize, s.Rsvd)

	buf = append(buf, hdr...)
	return append(buf, s.Payload...)
}

// Build serializes the given parts into one container buffer.
func Build(specs ...PartSpec) []byte {
	var buf []byte
	for _, s := range specs {
		buf = Append(buf, s)
	}
	return buf
}

func putText(hdr []byte, off, n int, s string) {
	if len(s) >= n {
		s = s[:n-1] // keep the terminating NUL
	}
	copy(hdr[off:off+n], s)
}
