package wpreg

import (
	"errors"
	"io"
)

// ExtractOptions configures a full extraction pass.
type ExtractOptions struct {
	// Root is the directory all destination paths resolve under.
	// Empty means the current working directory.
	Root string

	// OnPart, when set, is called with each decoded part before its payload
	// is written. Diagnostic hook; extraction does not depend on it.
	OnPart func(Part)
}

// Extract walks every part of the archive in order and materializes each
// payload. The first malformed record or filesystem failure aborts the run;
// files written before the failure are left in place.
func (a *Archive) Extract(opts ExtractOptions) error {
	it := a.Parts()
	for {
		p, err := it.Next()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		if opts.OnPart != nil {
			opts.OnPart(p)
		}
		if err := Materialize(opts.Root, p.Path(), p.Payload(), p.Mode(), p.ModTime()); err != nil {
			return err
		}
	}
}
