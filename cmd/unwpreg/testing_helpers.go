package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/abertholt/wpregkit/internal/testutil"
)

// writeTestArchive synthesizes a container on disk and returns its path
func writeTestArchive(t *testing.T, specs ...testutil.PartSpec) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "wpreg.test")
	if err := os.WriteFile(path, testutil.Build(specs...), 0o644); err != nil {
		t.Fatalf("write archive: %v", err)
	}
	return path
}

// truncateFile chops n bytes off the end of the file and returns its path
func truncateFile(t *testing.T, path string, n int64) string {
	t.Helper()
	st, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat archive: %v", err)
	}
	if err := os.Truncate(path, st.Size()-n); err != nil {
		t.Fatalf("truncate archive: %v", err)
	}
	return path
}

// captureOutput captures stdout while running a function
func captureOutput(t *testing.T, fn func() error) (string, error) {
	t.Helper()

	origStdout := os.Stdout

	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("failed to create pipe: %v", err)
	}
	os.Stdout = w

	runErr := fn()

	_ = w.Close()
	os.Stdout = origStdout

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, r); err != nil {
		t.Fatalf("failed to read captured output: %v", err)
	}
	return buf.String(), runErr
}
