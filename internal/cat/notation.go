package cat

import (
	"fmt"
)

// appendNotation appends c to dst in ^ and M- notation.
// Tab and newline are never passed in here.
//
// Bytes from 0xA0 up are written as M- followed by the low seven bits
// verbatim, so 0xFF becomes M- and a raw DEL.
func appendNotation(dst []byte, c byte) []byte {
	switch {
	case c >= 0xa0:
		return append(dst, 'M', '-', c-128)
	case c >= 128:
		return append(dst, 'M', '-', '^', c-64)
	case c < 32:
		return append(dst, '^', c+'@')
	case c == 127:
		return append(dst, '^', '?')
	}

	return append(dst, c)
}

func appendLineNumber(dst []byte, lineno int) []byte {
	return fmt.Appendf(dst, "%6d  ", lineno)
}
