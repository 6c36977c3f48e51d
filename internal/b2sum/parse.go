package b2sum

import (
	"encoding/hex"
	"errors"
	"strconv"
	"strings"
)

// ErrMalformed is returned for a line that is not a BLAKE2b checksum line.
var ErrMalformed = errors.New("improperly formatted BLAKE2b checksum line")

// Entry is one parsed checksum line.
type Entry struct {
	Name   string
	Digest []byte
	Bits   int
}

func decodeDigest(s string) ([]byte, error) {
	if s == "" || len(s)%2 != 0 || len(s)*4 > MaxBits {
		return nil, ErrMalformed
	}

	digest, err := hex.DecodeString(s)
	if err != nil {
		return nil, ErrMalformed
	}

	return digest, nil
}

// ParseLine parses a checksum line in either the default or the BSD tagged
// format, without its line terminator.
func ParseLine(line string) (*Entry, error) {
	escaped := strings.HasPrefix(line, `\`)
	if escaped {
		line = line[1:]
	}

	var e *Entry
	var err error

	if strings.HasPrefix(line, "BLAKE2b") {
		e, err = parseTagged(line)
	} else {
		e, err = parseUntagged(line)
	}

	if err != nil {
		return nil, err
	}

	if escaped {
		e.Name = nameUnescaper.Replace(e.Name)
	}

	return e, nil
}

func parseUntagged(line string) (*Entry, error) {
	i := strings.IndexByte(line, ' ')
	if i < 0 || i+2 > len(line) {
		return nil, ErrMalformed
	}

	switch line[i+1] {
	case ' ', '*':
	default:
		return nil, ErrMalformed
	}

	name := line[i+2:]
	if name == "" {
		return nil, ErrMalformed
	}

	digest, err := decodeDigest(line[:i])
	if err != nil {
		return nil, err
	}

	return &Entry{
		Name:   name,
		Digest: digest,
		Bits:   len(digest) * 8,
	}, nil
}

func parseTagged(line string) (*Entry, error) {
	rest := strings.TrimPrefix(line, "BLAKE2b")

	bits := MaxBits
	if strings.HasPrefix(rest, "-") {
		i := strings.IndexByte(rest, ' ')
		if i < 0 {
			return nil, ErrMalformed
		}

		n, err := strconv.Atoi(rest[1:i])
		if err != nil {
			return nil, ErrMalformed
		}

		if bits, err = checkBits(n); err != nil {
			return nil, ErrMalformed
		}

		rest = rest[i:]
	}

	if !strings.HasPrefix(rest, " (") {
		return nil, ErrMalformed
	}
	rest = rest[2:]

	i := strings.LastIndex(rest, ") = ")
	if i < 1 {
		return nil, ErrMalformed
	}

	digest, err := decodeDigest(rest[i+4:])
	if err != nil {
		return nil, err
	}

	if len(digest)*8 != bits {
		return nil, ErrMalformed
	}

	return &Entry{
		Name:   rest[:i],
		Digest: digest,
		Bits:   bits,
	}, nil
}
