package wpreg

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/abertholt/wpregkit/internal/format"
	"github.com/abertholt/wpregkit/internal/testutil"
)

func TestExtractRoundTrip(t *testing.T) {
	root := t.TempDir()
	mtime := time.Unix(1462924800, 0)

	buf := testutil.Build(
		testutil.PartSpec{
			Name: "init script", Path: "etc/init.d/rc", Mode: "0755", Time: "1462924800",
			Payload: []byte("#!/bin/sh\n"),
		},
		testutil.PartSpec{
			Name: "webserver page", Path: "home/httpd/index.html", Mode: "0644", Time: "1462924800",
			Payload: []byte("<html></html>"),
		},
		testutil.PartSpec{
			Name: "marker", Path: "var/.keep", Mode: "0600", Time: "1462924800",
		},
	)

	var seen int
	err := Parse(buf).Extract(ExtractOptions{
		Root:   root,
		OnPart: func(Part) { seen++ },
	})
	require.NoError(t, err)
	require.Equal(t, 3, seen)

	checks := []struct {
		path string
		body string
		mode os.FileMode
	}{
		{"etc/init.d/rc", "#!/bin/sh\n", 0o755},
		{"home/httpd/index.html", "<html></html>", 0o644},
		{"var/.keep", "", 0o600},
	}
	for _, c := range checks {
		full := filepath.Join(root, c.path)
		body, err := os.ReadFile(full)
		require.NoError(t, err)
		require.Equal(t, c.body, string(body))

		st, err := os.Stat(full)
		require.NoError(t, err)
		require.Equal(t, c.mode, st.Mode().Perm())
		require.True(t, st.ModTime().Equal(mtime), "mtime of %s: got %v", c.path, st.ModTime())
	}
}

func TestExtractStripsLeadingSlash(t *testing.T) {
	root := t.TempDir()
	buf := testutil.Build(testutil.PartSpec{
		Path:    "/a/b/c.txt",
		Payload: []byte("x"),
	})

	require.NoError(t, Parse(buf).Extract(ExtractOptions{Root: root}))

	body, err := os.ReadFile(filepath.Join(root, "a", "b", "c.txt"))
	require.NoError(t, err)
	require.Equal(t, "x", string(body))
}

func TestExtractReusesDirectories(t *testing.T) {
	root := t.TempDir()
	buf := testutil.Build(
		testutil.PartSpec{Path: "a/b/one.txt", Payload: []byte("1")},
		testutil.PartSpec{Path: "a/b/two.txt", Payload: []byte("2")},
	)

	require.NoError(t, Parse(buf).Extract(ExtractOptions{Root: root}))

	for name, want := range map[string]string{"one.txt": "1", "two.txt": "2"} {
		body, err := os.ReadFile(filepath.Join(root, "a", "b", name))
		require.NoError(t, err)
		require.Equal(t, want, string(body))
	}
}

func TestExtractRejectsFileDirectoryCollision(t *testing.T) {
	root := t.TempDir()
	buf := testutil.Build(
		testutil.PartSpec{Path: "a/b.txt", Payload: []byte("file")},
		testutil.PartSpec{Path: "a/b.txt/c.txt", Payload: []byte("nested")},
	)

	err := Parse(buf).Extract(ExtractOptions{Root: root})
	require.Error(t, err)
	require.Contains(t, err.Error(), "not a directory")

	// The colliding record wrote nothing; the first record survives.
	body, err := os.ReadFile(filepath.Join(root, "a", "b.txt"))
	require.NoError(t, err)
	require.Equal(t, "file", string(body))
}

func TestExtractOverwritesExistingFile(t *testing.T) {
	root := t.TempDir()
	buf := testutil.Build(
		testutil.PartSpec{Path: "f.txt", Payload: []byte("first version, longer")},
		testutil.PartSpec{Path: "f.txt", Payload: []byte("second")},
	)

	require.NoError(t, Parse(buf).Extract(ExtractOptions{Root: root}))

	body, err := os.ReadFile(filepath.Join(root, "f.txt"))
	require.NoError(t, err)
	require.Equal(t, "second", string(body))
}

func TestExtractTruncatedPayloadWritesNoPartialFile(t *testing.T) {
	root := t.TempDir()
	buf := testutil.Build(
		testutil.PartSpec{Path: "ok.txt", Payload: []byte("fine")},
		testutil.PartSpec{Path: "cut.bin", Size: "1000", Payload: make([]byte, 10)},
	)

	err := Parse(buf).Extract(ExtractOptions{Root: root})
	require.ErrorIs(t, err, format.ErrPayloadTruncated)

	// Fail-fast, no cleanup: the record before the failure stays on disk,
	// the failing record never reaches the filesystem.
	_, statErr := os.Stat(filepath.Join(root, "ok.txt"))
	require.NoError(t, statErr)
	_, statErr = os.Stat(filepath.Join(root, "cut.bin"))
	require.ErrorIs(t, statErr, os.ErrNotExist)
}

func TestExtractEmptyArchive(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, Parse(nil).Extract(ExtractOptions{Root: root}))

	entries, err := os.ReadDir(root)
	require.NoError(t, err)
	require.Empty(t, entries)
}

func TestMaterializeRejectsBadPaths(t *testing.T) {
	root := t.TempDir()
	mtime := time.Unix(0, 0)

	for _, dest := range []string{"", "/", "dir/", "../escape.txt", "a/./b.txt"} {
		err := Materialize(root, dest, nil, 0o644, mtime)
		require.Error(t, err, "dest=%q", dest)
	}

	// Consecutive slashes collapse instead of failing.
	require.NoError(t, Materialize(root, "a//b//c.txt", []byte("x"), 0o644, mtime))
	_, err := os.Stat(filepath.Join(root, "a", "b", "c.txt"))
	require.NoError(t, err)
}
