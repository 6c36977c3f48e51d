package baseenc_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/puellanivis/coreutils/internal/baseenc"
)

func transcode(t *testing.T, c *baseenc.Codec, in string, opts baseenc.Options) (string, error) {
	t.Helper()

	var buf bytes.Buffer
	err := c.Transcode(context.Background(), &buf, strings.NewReader(in), opts)

	return buf.String(), err
}

func TestBase64Encode(t *testing.T) {
	t.Parallel()

	out, err := transcode(t, baseenc.Base64, "hello, world", baseenc.Options{Wrap: baseenc.DefaultWrap})
	require.NoError(t, err)
	assert.Equal(t, "aGVsbG8sIHdvcmxk\n", out)
}

func TestBase32Encode(t *testing.T) {
	t.Parallel()

	out, err := transcode(t, baseenc.Base32, "hello, world", baseenc.Options{Wrap: baseenc.DefaultWrap})
	require.NoError(t, err)
	assert.Equal(t, "NBSWY3DPFQQHO33SNRSA====\n", out)
}

func TestEncodeWrap(t *testing.T) {
	t.Parallel()

	out, err := transcode(t, baseenc.Base64, "hello, world", baseenc.Options{Wrap: 5})
	require.NoError(t, err)
	assert.Equal(t, "aGVsb\nG8sIH\ndvcmx\nk\n", out)

	out, err = transcode(t, baseenc.Base64, "hello, world", baseenc.Options{Wrap: 4})
	require.NoError(t, err)
	assert.Equal(t, "aGVs\nbG8s\nIHdv\ncmxk\n", out)

	out, err = transcode(t, baseenc.Base64, "hello, world", baseenc.Options{})
	require.NoError(t, err)
	assert.Equal(t, "aGVsbG8sIHdvcmxk", out)
}

func TestEncodeEmpty(t *testing.T) {
	t.Parallel()

	out, err := transcode(t, baseenc.Base64, "", baseenc.Options{Wrap: baseenc.DefaultWrap})
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestEncodeBinary(t *testing.T) {
	t.Parallel()

	data := string([]byte{0, 1, 2, 0xfe, 0xff})
	enc, err := transcode(t, baseenc.Base64, data, baseenc.Options{Wrap: baseenc.DefaultWrap})
	require.NoError(t, err)

	dec, err := transcode(t, baseenc.Base64, enc, baseenc.Options{Decode: true})
	require.NoError(t, err)
	assert.Equal(t, data, dec)
}

func TestDecodeWrapped(t *testing.T) {
	t.Parallel()

	out, err := transcode(t, baseenc.Base64, "aGVs\nbG8s\nIHdv\ncmxk\n", baseenc.Options{Decode: true})
	require.NoError(t, err)
	assert.Equal(t, "hello, world", out)
}

func TestDecodeIgnoreGarbage(t *testing.T) {
	t.Parallel()

	out, err := transcode(t, baseenc.Base64, "aGVsbG8s\n        IHdvcmxk\n        ", baseenc.Options{Decode: true, IgnoreGarbage: true})
	require.NoError(t, err)
	assert.Equal(t, "hello, world", out)

	out, err = transcode(t, baseenc.Base32, "NBSWY3DPFQQH\n        O33SNRSA====", baseenc.Options{Decode: true, IgnoreGarbage: true})
	require.NoError(t, err)
	assert.Equal(t, "hello, world", out)
}

func TestDecodeGarbage(t *testing.T) {
	t.Parallel()

	_, err := transcode(t, baseenc.Base64, "aGVs*bG8s", baseenc.Options{Decode: true})
	assert.ErrorIs(t, err, baseenc.ErrInvalidInput)

	_, err = transcode(t, baseenc.Base32, "NBSW!Y3DP", baseenc.Options{Decode: true})
	assert.ErrorIs(t, err, baseenc.ErrInvalidInput)
}

func TestProcess(t *testing.T) {
	t.Parallel()

	filename := filepath.Join(t.TempDir(), "data")
	require.NoError(t, os.WriteFile(filename, []byte("hello, world"), 0o644))

	var buf bytes.Buffer
	require.NoError(t, baseenc.Base64.Process(context.Background(), &buf, filename, baseenc.Options{Wrap: baseenc.DefaultWrap}))
	assert.Equal(t, "aGVsbG8sIHdvcmxk\n", buf.String())

	err := baseenc.Base64.Process(context.Background(), &buf, filepath.Join(t.TempDir(), "missing"), baseenc.Options{})
	assert.Error(t, err)
}

func TestWrapper(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	w := baseenc.NewWrapper(&buf, 3)

	for _, chunk := range []string{"ab", "cdefg", "h", "i"} {
		n, err := w.Write([]byte(chunk))
		require.NoError(t, err)
		assert.Equal(t, len(chunk), n)
	}
	require.NoError(t, w.Close())

	assert.Equal(t, "abc\ndef\nghi\n", buf.String())
}
