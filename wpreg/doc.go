// Package wpreg provides read-only access to wpreg firmware containers as
// shipped for LUXTRONIC 2.0 compatible heat pump controllers (firmware 1.XX).
//
// # File Structure
//
// A container is a flat concatenation of parts with no magic number, index,
// or trailer:
//
//	[Header 0 - 256B] [Payload 0] [Header 1 - 256B] [Payload 1] ...
//
// Each fixed-size header carries NUL-padded ASCII text fields (display name,
// destination path, version), an opaque 16-byte digest, and four numeric text
// fields (payload size, permission mode, epoch timestamp, reserved) encoded
// in C strtoul base-0 notation. The sequence of parts exactly tiles the file;
// any remainder marks the container as malformed.
//
// # Key Types
//
//   - Archive: an opened container, backed by a read-only mapping
//   - Part: a zero-copy view over one header+payload record
//   - PartIterator: a single-pass walker over the parts of a container
//
// Extraction materializes each part's payload under a chosen root directory,
// recreating intermediate directories and applying the header's permission
// bits and timestamp. Processing is fail-fast: the first malformed record or
// filesystem error aborts the walk, leaving already written files in place.
package wpreg
