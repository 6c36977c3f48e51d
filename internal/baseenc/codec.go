// Package baseenc encodes and decodes the RFC 4648 base32 and base64 formats,
// with the line wrapping and garbage handling of the base32 and base64 tools.
package baseenc

import (
	"encoding/base32"
	"encoding/base64"
	"io"
)

// Codec is one of the supported encodings.
type Codec struct {
	Name     string
	alphabet string

	newEncoder func(io.Writer) io.WriteCloser
	newDecoder func(io.Reader) io.Reader
}

// Base32 is the standard padded base32 encoding.
var Base32 = &Codec{
	Name:     "base32",
	alphabet: "ABCDEFGHIJKLMNOPQRSTUVWXYZ234567",

	newEncoder: func(w io.Writer) io.WriteCloser {
		return base32.NewEncoder(base32.StdEncoding, w)
	},
	newDecoder: func(r io.Reader) io.Reader {
		return base32.NewDecoder(base32.StdEncoding, r)
	},
}

// Base64 is the standard padded base64 encoding.
var Base64 = &Codec{
	Name:     "base64",
	alphabet: "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/",

	newEncoder: func(w io.Writer) io.WriteCloser {
		return base64.NewEncoder(base64.StdEncoding, w)
	},
	newDecoder: func(r io.Reader) io.Reader {
		return base64.NewDecoder(base64.StdEncoding, r)
	},
}

// DefaultWrap is the default line length of encoded output.
const DefaultWrap = 76

type encoder struct {
	enc  io.WriteCloser
	wrap *Wrapper
}

func (e *encoder) Write(data []byte) (int, error) {
	return e.enc.Write(data)
}

func (e *encoder) Close() error {
	if err := e.enc.Close(); err != nil {
		return err
	}

	return e.wrap.Close()
}

// NewEncoder returns a writer that encodes into w, breaking lines
// after cols characters. If cols is zero, lines are not broken and
// no final newline is written.
//
// Close must be called to flush the final partial block.
// It does not close w.
func (c *Codec) NewEncoder(w io.Writer, cols int) io.WriteCloser {
	wrap := NewWrapper(w, cols)

	return &encoder{
		enc:  c.newEncoder(wrap),
		wrap: wrap,
	}
}

// NewDecoder returns a reader that decodes r. Newlines are skipped.
// If ignoreGarbage is set, every byte outside of the alphabet is skipped.
func (c *Codec) NewDecoder(r io.Reader, ignoreGarbage bool) io.Reader {
	keep := func(b byte) bool {
		return b != '\n'
	}

	if ignoreGarbage {
		var inAlphabet [256]bool
		for i := 0; i < len(c.alphabet); i++ {
			inAlphabet[c.alphabet[i]] = true
		}
		inAlphabet['='] = true

		keep = func(b byte) bool {
			return inAlphabet[b]
		}
	}

	return c.newDecoder(&filterReader{
		r:    r,
		keep: keep,
	})
}

type filterReader struct {
	r    io.Reader
	keep func(byte) bool
}

func (f *filterReader) Read(p []byte) (int, error) {
	for {
		n, err := f.r.Read(p)

		out := p[:0]
		for _, b := range p[:n] {
			if f.keep(b) {
				out = append(out, b)
			}
		}

		// Never report (0, nil) for a read that only held skipped bytes.
		if len(out) > 0 || err != nil {
			return len(out), err
		}
	}
}
