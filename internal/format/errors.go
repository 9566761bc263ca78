package format

import "errors"

var (
	// ErrHeaderTruncated indicates the buffer ended inside a part header.
	// This also covers trailing garbage: any nonzero remainder smaller than
	// HeaderSize cannot start another record.
	ErrHeaderTruncated = errors.New("format: truncated part header")
	// ErrPayloadTruncated indicates a header declared more payload bytes than
	// the buffer holds.
	ErrPayloadTruncated = errors.New("format: truncated part payload")
)
