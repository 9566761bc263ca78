package wpreg

import (
	"os"
	"time"

	"github.com/abertholt/wpregkit/internal/format"
)

// Part is a decoded view over one header+payload record.
// Zero-copy: all accessors read directly from p.raw, which spans exactly
// the 256-byte header plus the declared payload.
type Part struct {
	raw []byte
}

// ---- Text fields (fixed width, trimmed at first NUL) ----

// Name returns the human-readable display name. It is not used for the
// destination path.
func (p Part) Name() string { return format.CString(p.raw, format.NameOffset, format.NameSize) }

// Path returns the destination path as stored in the header. It may carry a
// leading '/', which extraction strips.
func (p Part) Path() string { return format.CString(p.raw, format.PathOffset, format.PathSize) }

// Version returns the part's version string (display only).
func (p Part) Version() string { return format.CString(p.raw, format.VersOffset, format.VersSize) }

// ---- Numeric fields (strtoul base-0 text) ----

// Size returns the declared payload length in bytes.
func (p Part) Size() uint64 {
	return format.ParseUint(format.CString(p.raw, format.SizeOffset, format.SizeSize))
}

// Mode returns the permission bits to apply to the extracted file.
func (p Part) Mode() os.FileMode {
	v := format.ParseUint(format.CString(p.raw, format.ModeOffset, format.ModeSize))
	return os.FileMode(v) & os.ModePerm
}

// ModTime returns the header timestamp, applied as both atime and mtime on
// the extracted file.
func (p Part) ModTime() time.Time {
	v := format.ParseUint(format.CString(p.raw, format.TimeOffset, format.TimeSize))
	return time.Unix(int64(v), 0)
}

// Rsvd returns the reserved field. Its semantics are unknown; it is decoded
// for diagnostics only.
func (p Part) Rsvd() uint64 {
	return format.ParseUint(format.CString(p.raw, format.RsvdOffset, format.RsvdSize))
}

// ---- Raw fields ----

// Hash returns the 16-byte digest field (zero-copy slice). The container
// format does not document the algorithm; the bytes are passed through
// unvalidated.
func (p Part) Hash() []byte {
	return p.raw[format.HashOffset : format.HashOffset+format.HashSize]
}

// Payload returns the part's file contents (zero-copy slice).
func (p Part) Payload() []byte { return p.raw[format.HeaderSize:] }

// Len returns the consumed byte length of the record: header plus payload.
func (p Part) Len() int { return len(p.raw) }
