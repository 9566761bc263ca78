package wpreg

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Materialize writes payload to dest under root, creating missing parent
// directories level by level. dest uses '/' separators; leading slashes are
// stripped, so the result is always relative to root. The file is created or
// truncated, then mode is applied exactly (chmod, past the umask) and mtime
// is set as both access and modification time.
//
// Directory creation walks the segments explicitly instead of descending via
// chdir, so no process-global state is touched. A path component that exists
// as a non-directory is a fatal collision.
func Materialize(root, dest string, payload []byte, mode os.FileMode, mtime time.Time) error {
	dest = strings.TrimLeft(dest, "/")
	if dest == "" {
		return errors.New("wpreg: part has empty destination path")
	}
	if root == "" {
		root = "."
	}

	segs := strings.Split(dest, "/")
	name := segs[len(segs)-1]
	if name == "" {
		return fmt.Errorf("wpreg: destination %q names a directory, not a file", dest)
	}

	cur := root
	for _, seg := range segs[:len(segs)-1] {
		if seg == "" {
			continue // collapse consecutive slashes
		}
		if seg == "." || seg == ".." {
			return fmt.Errorf("wpreg: refusing path component %q in %q", seg, dest)
		}
		cur = filepath.Join(cur, seg)
		st, err := os.Stat(cur)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			if mkErr := os.Mkdir(cur, 0o777); mkErr != nil {
				return fmt.Errorf("wpreg: create directory: %w", mkErr)
			}
		case err != nil:
			return fmt.Errorf("wpreg: stat %s: %w", cur, err)
		case !st.IsDir():
			return fmt.Errorf("wpreg: %s exists and is not a directory", cur)
		}
	}

	out := filepath.Join(cur, name)
	if err := os.WriteFile(out, payload, 0o666); err != nil {
		return fmt.Errorf("wpreg: write file: %w", err)
	}
	if err := os.Chmod(out, mode); err != nil {
		return fmt.Errorf("wpreg: chmod %s: %w", out, err)
	}
	if err := os.Chtimes(out, mtime, mtime); err != nil {
		return fmt.Errorf("wpreg: set times on %s: %w", out, err)
	}
	return nil
}
