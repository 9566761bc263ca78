// Package format houses the low-level layout of the wpreg firmware container
// used by LUXTRONIC 2.0 compatible heat pump controllers. The goal is to keep
// the field decoding focused and bounds-checked, independent from the public
// API so higher-level packages can orchestrate the data in a more ergonomic
// form.
package format

const (
	// HeaderSize is the size of one part header in bytes. The container is a
	// flat concatenation of header+payload records with no archive-level
	// magic, index, or trailer.
	HeaderSize = 0x100

	// Part header field offsets and widths. Text fields are NUL-terminated
	// (or NUL-padded) ASCII within their fixed width; numeric fields hold
	// ASCII integers in strtoul base-0 notation.
	NameOffset = 0x00
	NameSize   = 0x74
	SizeOffset = 0x74
	SizeSize   = 0x0C
	HashOffset = 0x80
	HashSize   = 0x10
	ModeOffset = 0x90
	ModeSize   = 0x0C
	TimeOffset = 0x9C
	TimeSize   = 0x0C
	RsvdOffset = 0xA8
	RsvdSize   = 0x0C
	PathOffset = 0xB4
	PathSize   = 0x3C
	VersOffset = 0xF0
	VersSize   = 0x10
)
