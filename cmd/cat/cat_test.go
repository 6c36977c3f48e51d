package main

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/puellanivis/coreutils/internal/cat"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	filename := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(filename, []byte(content), 0o644))

	return filename
}

func TestSplitFileList(t *testing.T) {
	t.Parallel()

	list := splitFileList([]byte("a.txt\n\n  b.txt \n\t\nc.txt"))
	assert.Equal(t, []string{"a.txt", "b.txt", "c.txt"}, list)
}

func TestCatFileNumbersAcrossFiles(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	dir := t.TempDir()

	first := writeFile(t, dir, "first", "one\n\n\n")
	second := writeFile(t, dir, "second", "\ntwo\n")

	var buf bytes.Buffer
	w := cat.NewWriter(&buf, cat.Options{NumberNonblank: true, SqueezeBlank: true}.Config(), cat.NewPosition())

	require.NoError(t, CatFile(ctx, w, first, nil))
	require.NoError(t, CatFile(ctx, w, second, nil))

	assert.Equal(t, "     1  one\n\n     2  two\n", buf.String())
}

func TestCatFileMissingSource(t *testing.T) {
	t.Parallel()

	missing := filepath.Join(t.TempDir(), "does-not-exist")

	var buf bytes.Buffer
	err := CatFile(context.Background(), &buf, missing, nil)

	var srcErr *cat.SourceError
	require.ErrorAs(t, err, &srcErr)
	assert.Equal(t, missing, srcErr.Name)
	assert.Empty(t, buf.String())
}

type brokenPipe struct{}

func (brokenPipe) Write([]byte) (int, error) {
	return 0, errors.New("broken pipe")
}

func TestCatFileSinkFailure(t *testing.T) {
	t.Parallel()

	filename := writeFile(t, t.TempDir(), "data", "some data\n")

	err := CatFile(context.Background(), cat.NewWriter(brokenPipe{}, cat.Config{}, nil), filename, nil)

	var sinkErr *cat.SinkError
	assert.ErrorAs(t, err, &sinkErr)
}

func TestFileCeption(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	list := writeFile(t, dir, "list", "/tmp/a\n\n/tmp/b\n")

	names, err := FileCeption(context.Background(), list)
	require.NoError(t, err)
	assert.Equal(t, []string{"/tmp/a", "/tmp/b"}, names)

	_, err = FileCeption(context.Background(), filepath.Join(dir, "nope"))
	assert.Error(t, err)
}

func TestOptionsFromFlags(t *testing.T) {
	Flags.ShowAllButEnds = true
	Flags.Number = true
	defer func() {
		Flags.ShowAllButEnds = false
		Flags.Number = false
	}()

	assert.Equal(t, cat.Config{
		ShowTabs:        true,
		ShowNonprinting: true,
		NumberAll:       true,
	}, options().Config())
}

func TestListFileSorted(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, dir, "charlie", "c")
	writeFile(t, dir, "alpha", "a")
	writeFile(t, dir, "bravo", "b")

	var buf bytes.Buffer
	require.NoError(t, ListFile(context.Background(), &buf, dir))

	out := buf.String()
	a := strings.Index(out, "alpha")
	b := strings.Index(out, "bravo")
	c := strings.Index(out, "charlie")

	require.True(t, a >= 0 && b >= 0 && c >= 0, "listing: %q", out)
	assert.Less(t, a, b)
	assert.Less(t, b, c)
}

func TestListFileSinkFailure(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, dir, "entry", "x")

	err := ListFile(context.Background(), brokenPipe{}, dir)

	var sinkErr *cat.SinkError
	assert.ErrorAs(t, err, &sinkErr)
}

func TestCatFilesContinuesPastMissingSource(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	missing := filepath.Join(dir, "does-not-exist")
	present := writeFile(t, dir, "present", "still here\n")

	var buf bytes.Buffer
	status := catFiles(context.Background(), &buf, []string{missing, present}, nil)

	assert.Equal(t, 1, status)
	assert.Equal(t, "still here\n", buf.String())
}

// failAfter accepts its first write, then fails every later one.
type failAfter struct {
	buf    bytes.Buffer
	writes int
}

func (w *failAfter) Write(p []byte) (int, error) {
	w.writes++
	if w.writes > 1 {
		return 0, errors.New("broken pipe")
	}

	return w.buf.Write(p)
}

func TestCatFilesStopsOnSinkFailure(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	first := writeFile(t, dir, "first", "one\n")
	second := writeFile(t, dir, "second", "two\n")
	third := writeFile(t, dir, "third", "three\n")

	sink := &failAfter{}
	w := cat.NewWriter(sink, cat.Config{ShowEnds: true}, nil)

	status := catFiles(context.Background(), w, []string{first, second, third}, nil)

	assert.Equal(t, 1, status)
	assert.Equal(t, "one$\n", sink.buf.String())
	assert.Equal(t, 2, sink.writes, "no write attempted after the sink failed")
}

type failingCloser struct{}

func (failingCloser) Close() error {
	return errors.New("close failed")
}

func TestCloseSource(t *testing.T) {
	t.Parallel()

	assert.EqualError(t, closeSource(failingCloser{}), "close failed")
	assert.NoError(t, closeSource(io.NopCloser(nil)))
}
