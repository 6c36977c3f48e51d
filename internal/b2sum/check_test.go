package b2sum_test

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/puellanivis/coreutils/internal/b2sum"
)

type memFS map[string]string

func (fs memFS) open(_ context.Context, name string) (io.ReadCloser, error) {
	content, ok := fs[name]
	if !ok {
		return nil, fmt.Errorf("open %s: %w", name, os.ErrNotExist)
	}

	return io.NopCloser(strings.NewReader(content)), nil
}

var testFS = memFS{
	"hello":       "hello",
	"hello-world": "hello, world",
}

func newChecker(out io.Writer) *b2sum.Checker {
	return &b2sum.Checker{
		Out:  out,
		Open: testFS.open,
	}
}

func TestCheck(t *testing.T) {
	t.Parallel()

	list := helloSum + "  hello\n" +
		"BLAKE2b (hello-world) = " + helloWorldSum + "\n"

	var buf bytes.Buffer
	res, err := newChecker(&buf).Check(context.Background(), "list", strings.NewReader(list))
	require.NoError(t, err)

	assert.Equal(t, b2sum.Result{Checked: 2}, res)
	assert.True(t, res.OK(true))
	assert.Equal(t, "hello: OK\nhello-world: OK\n", buf.String())
}

func TestCheckFailures(t *testing.T) {
	t.Parallel()

	list := helloWorldSum + "  hello\n" +
		"not a checksum line\n" +
		helloSum + "  missing\n"

	var buf bytes.Buffer
	res, err := newChecker(&buf).Check(context.Background(), "list", strings.NewReader(list))
	require.NoError(t, err)

	assert.Equal(t, b2sum.Result{Checked: 2, Failed: 1, Unreadable: 1, Malformed: 1}, res)
	assert.False(t, res.OK(false))
	assert.Equal(t, "hello: FAILED\nmissing: FAILED open or read\n", buf.String())
}

func TestCheckQuietStatus(t *testing.T) {
	t.Parallel()

	list := helloSum + "  hello\n" + helloSum + "  hello-world\n"

	var buf bytes.Buffer
	c := newChecker(&buf)
	c.Quiet = true

	res, err := c.Check(context.Background(), "list", strings.NewReader(list))
	require.NoError(t, err)
	assert.Equal(t, 1, res.Failed)
	assert.Equal(t, "hello-world: FAILED\n", buf.String())

	buf.Reset()
	c.Status = true

	_, err = c.Check(context.Background(), "list", strings.NewReader(list))
	require.NoError(t, err)
	assert.Empty(t, buf.String())
}

func TestCheckIgnoreMissing(t *testing.T) {
	t.Parallel()

	list := helloSum + "  missing\n" + helloSum + "  hello\n"

	var buf bytes.Buffer
	c := newChecker(&buf)
	c.IgnoreMissing = true

	res, err := c.Check(context.Background(), "list", strings.NewReader(list))
	require.NoError(t, err)
	assert.Equal(t, b2sum.Result{Checked: 1, Missing: 1}, res)
	assert.Equal(t, "hello: OK\n", buf.String())

	_, err = c.Check(context.Background(), "list", strings.NewReader(helloSum+"  missing\n"))
	assert.Error(t, err)
}

func TestCheckLongLine(t *testing.T) {
	t.Parallel()

	long := strings.Repeat("x", 256<<10)
	list := helloSum + "  " + long + "\n" + helloSum + "  hello\n"

	var buf bytes.Buffer
	res, err := newChecker(&buf).Check(context.Background(), "list", strings.NewReader(list))
	require.NoError(t, err)

	assert.Equal(t, b2sum.Result{Checked: 2, Unreadable: 1}, res)
	assert.True(t, strings.HasSuffix(buf.String(), "hello: OK\n"))
}

func TestCheckStrict(t *testing.T) {
	t.Parallel()

	res := b2sum.Result{Checked: 1, Malformed: 1}
	assert.True(t, res.OK(false))
	assert.False(t, res.OK(true))
}

func TestCheckNoChecksums(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	_, err := newChecker(&buf).Check(context.Background(), "list", strings.NewReader("# comment\ngarbage\n"))
	assert.ErrorIs(t, err, b2sum.ErrNoChecksums)
}

func TestCheckZeroTerminated(t *testing.T) {
	t.Parallel()

	var list []byte
	f := b2sum.Format{Zero: true}

	digest, err := b2sum.Sum(context.Background(), strings.NewReader("hello"), 0)
	require.NoError(t, err)
	list = f.AppendLine(list, digest, "hello")

	var buf bytes.Buffer
	c := newChecker(&buf)
	c.Zero = true

	res, err := c.Check(context.Background(), "list", bytes.NewReader(list))
	require.NoError(t, err)
	assert.Equal(t, b2sum.Result{Checked: 1}, res)
}
