package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/abertholt/wpregkit/internal/testutil"
)

func TestExtractCommand(t *testing.T) {
	archive := writeTestArchive(t,
		testutil.PartSpec{Name: "config", Path: "etc/wpreg.conf", Mode: "0644", Time: "1462924800", Payload: []byte("k=v\n")},
		testutil.PartSpec{Name: "page", Path: "/home/httpd/index.html", Mode: "0644", Time: "1462924800", Payload: []byte("<html>")},
	)

	root := t.TempDir()
	extractDir = root
	defer func() { extractDir = "" }()

	out, err := captureOutput(t, func() error {
		return runExtract([]string{archive})
	})
	if err != nil {
		t.Fatalf("runExtract: %v", err)
	}

	for _, want := range []string{"Name: config", "Path: etc/wpreg.conf", "Mode: 0644", "Time: 1462924800"} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}

	body, err := os.ReadFile(filepath.Join(root, "etc", "wpreg.conf"))
	if err != nil {
		t.Fatalf("extracted file: %v", err)
	}
	if string(body) != "k=v\n" {
		t.Fatalf("extracted content mismatch: %q", body)
	}
	// Leading slash stripped, path resolved under the extraction root.
	if _, err := os.Stat(filepath.Join(root, "home", "httpd", "index.html")); err != nil {
		t.Fatalf("leading-slash path: %v", err)
	}
}

func TestExtractCommandMalformedArchive(t *testing.T) {
	archive := writeTestArchive(t,
		testutil.PartSpec{Path: "cut.bin", Size: "4096", Payload: []byte("short")},
	)

	extractDir = t.TempDir()
	defer func() { extractDir = "" }()

	quiet = true
	defer func() { quiet = false }()

	if _, err := captureOutput(t, func() error {
		return runExtract([]string{archive})
	}); err == nil {
		t.Fatal("expected error for truncated payload")
	}
}

func TestExtractCommandMissingArchive(t *testing.T) {
	quiet = true
	defer func() { quiet = false }()

	if _, err := captureOutput(t, func() error {
		return runExtract([]string{filepath.Join(t.TempDir(), "absent")})
	}); err == nil {
		t.Fatal("expected error for missing archive")
	}
}
