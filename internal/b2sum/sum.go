// Package b2sum computes, formats and verifies BLAKE2b checksums.
package b2sum

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"hash"
	"io"
	"strings"

	"github.com/puellanivis/breton/lib/files"
	"golang.org/x/crypto/blake2b"
)

// MaxBits is the longest, and default, digest length in bits.
const MaxBits = blake2b.Size * 8

// ErrInvalidLength is returned for a digest length that is not a multiple
// of 8 between 8 and MaxBits.
var ErrInvalidLength = errors.New("invalid digest length")

func checkBits(bits int) (int, error) {
	if bits == 0 {
		return MaxBits, nil
	}

	if bits < 8 || bits > MaxBits || bits%8 != 0 {
		return 0, fmt.Errorf("%w: %d", ErrInvalidLength, bits)
	}

	return bits, nil
}

// New returns an unkeyed BLAKE2b hash of the given length in bits.
// A zero length selects MaxBits.
func New(bits int) (hash.Hash, error) {
	bits, err := checkBits(bits)
	if err != nil {
		return nil, err
	}

	return blake2b.New(bits/8, nil)
}

// Sum returns the digest of everything read from r.
func Sum(ctx context.Context, r io.Reader, bits int) ([]byte, error) {
	h, err := New(bits)
	if err != nil {
		return nil, err
	}

	if _, err := files.Copy(ctx, h, r); err != nil && err != io.EOF {
		return nil, err
	}

	return h.Sum(nil), nil
}

// Algorithm returns the tag name of a digest of the given length.
func Algorithm(bits int) string {
	if bits == 0 || bits == MaxBits {
		return "BLAKE2b"
	}

	return fmt.Sprintf("BLAKE2b-%d", bits)
}

var (
	nameEscaper   = strings.NewReplacer(`\`, `\\`, "\n", `\n`, "\r", `\r`)
	nameUnescaper = strings.NewReplacer(`\\`, `\`, `\n`, "\n", `\r`, "\r")
)

// Format describes how a checksum line is written.
type Format struct {
	Tag    bool // BSD style
	Binary bool // mark the name with '*'
	Zero   bool // NUL terminated, names not escaped
}

// AppendLine appends the checksum line for name to dst.
func (f Format) AppendLine(dst []byte, digest []byte, name string) []byte {
	eol := byte('\n')

	if f.Zero {
		eol = 0
	} else if escaped := nameEscaper.Replace(name); escaped != name {
		dst = append(dst, '\\')
		name = escaped
	}

	sum := hex.EncodeToString(digest)

	if f.Tag {
		dst = append(dst, Algorithm(len(digest)*8)...)
		dst = append(dst, " ("...)
		dst = append(dst, name...)
		dst = append(dst, ") = "...)
		dst = append(dst, sum...)
		return append(dst, eol)
	}

	marker := byte(' ')
	if f.Binary {
		marker = '*'
	}

	dst = append(dst, sum...)
	dst = append(dst, ' ', marker)
	dst = append(dst, name...)
	return append(dst, eol)
}
