package cat

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppendNotationClasses(t *testing.T) {
	t.Parallel()

	for c := 0; c < 256; c++ {
		if c == '\t' || c == '\n' {
			continue
		}

		b := byte(c)
		got := string(appendNotation(nil, b))

		switch {
		case b < 32:
			assert.Equal(t, string([]byte{'^', b + 64}), got, "byte %#02x", b)
		case b < 127:
			assert.Equal(t, string([]byte{b}), got, "byte %#02x", b)
		case b == 127:
			assert.Equal(t, "^?", got)
		case b < 0xa0:
			assert.Equal(t, string([]byte{'M', '-', '^', b - 64}), got, "byte %#02x", b)
		case b == 0xff:
			assert.Equal(t, "M-\x7f", got)
		default:
			assert.Equal(t, string([]byte{'M', '-', b - 128}), got, "byte %#02x", b)
		}
	}
}

func TestAppendLineNumber(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "     1  ", string(appendLineNumber(nil, 1)))
	assert.Equal(t, "123456  ", string(appendLineNumber(nil, 123456)))
	assert.Equal(t, "1234567  ", string(appendLineNumber(nil, 1234567)))
}
