// Package wc counts lines, words, characters and bytes in a stream.
package wc

import (
	"bytes"
	"unicode"
	"unicode/utf8"
)

// Counts is the tally of one stream, or the sum of several.
type Counts struct {
	Lines int64
	Words int64
	Chars int64
	Bytes int64
}

// Add adds o into c.
func (c *Counts) Add(o Counts) {
	c.Lines += o.Lines
	c.Words += o.Words
	c.Chars += o.Chars
	c.Bytes += o.Bytes
}

// Counter is an io.Writer that tallies everything written to it.
//
// Characters are UTF-8 encoded runes, and a rune may be split across
// writes. Each byte of an invalid encoding counts as one character.
// A word is a maximal run of characters that are not white space.
type Counter struct {
	counts Counts
	inWord bool

	pending [utf8.UTFMax]byte
	npend   int
}

// Write never fails.
func (c *Counter) Write(p []byte) (n int, err error) {
	c.counts.Bytes += int64(len(p))
	c.counts.Lines += int64(bytes.Count(p, []byte{'\n'}))

	data := p
	if c.npend > 0 {
		data = append(c.pending[:c.npend:c.npend], p...)
		c.npend = 0
	}

	for len(data) > 0 {
		if !utf8.FullRune(data) {
			c.npend = copy(c.pending[:], data)
			break
		}

		r, size := utf8.DecodeRune(data)
		data = data[size:]

		c.count(r)
	}

	return len(p), nil
}

func (c *Counter) count(r rune) {
	c.counts.Chars++

	if unicode.IsSpace(r) {
		c.inWord = false
		return
	}

	if !c.inWord {
		c.inWord = true
		c.counts.Words++
	}
}

// Counts returns the tally so far.
// An incomplete rune at the end of the stream counts as invalid bytes.
func (c *Counter) Counts() Counts {
	counts := c.counts

	if c.npend > 0 {
		counts.Chars += int64(c.npend)

		if !c.inWord {
			counts.Words++
		}
	}

	return counts
}
