package b2sum

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/puellanivis/breton/lib/files"
	"github.com/puellanivis/breton/lib/glog"
)

// ErrNoChecksums is returned when a checksum list holds no usable lines.
var ErrNoChecksums = errors.New("no properly formatted BLAKE2b checksum lines found")

// Result tallies the outcome of checking one checksum list.
type Result struct {
	Checked    int
	Failed     int
	Unreadable int
	Malformed  int
	Missing    int
}

// OK reports whether every listed file matched.
func (r Result) OK(strict bool) bool {
	if r.Failed > 0 || r.Unreadable > 0 {
		return false
	}

	return !strict || r.Malformed == 0
}

// maxLineSize bounds a single checksum line, well past any file name.
const maxLineSize = 16 << 20

// Checker verifies files against checksum lists.
type Checker struct {
	Out io.Writer

	// Open opens a listed file. If nil, files.Open is used.
	Open func(ctx context.Context, name string) (io.ReadCloser, error)

	Quiet         bool // do not print OK lines
	Status        bool // print nothing
	IgnoreMissing bool // skip listed files that do not exist
	Warn          bool // warn about malformed lines
	Zero          bool // lines are NUL terminated
}

func (c *Checker) open(ctx context.Context, name string) (io.ReadCloser, error) {
	if c.Open != nil {
		return c.Open(ctx, name)
	}

	return files.Open(ctx, name)
}

func (c *Checker) report(name, status string) {
	if c.Status {
		return
	}

	if _, err := fmt.Fprintf(c.Out, "%s: %s\n", name, status); err != nil {
		glog.Error(err)
	}
}

func splitNul(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if i := bytes.IndexByte(data, 0); i >= 0 {
		return i + 1, data[:i], nil
	}

	if atEOF && len(data) > 0 {
		return len(data), data, nil
	}

	return 0, nil, nil
}

func (c *Checker) verify(ctx context.Context, e *Entry) (matched bool, err error) {
	f, err := c.open(ctx, e.Name)
	if err != nil {
		return false, err
	}
	defer f.Close()

	digest, err := Sum(ctx, f, e.Bits)
	if err != nil {
		return false, err
	}

	return bytes.Equal(digest, e.Digest), nil
}

// Check verifies every line of the checksum list read from list.
// The listName is used in diagnostics.
func (c *Checker) Check(ctx context.Context, listName string, list io.Reader) (Result, error) {
	var res Result

	scanner := bufio.NewScanner(list)
	scanner.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), maxLineSize)
	if c.Zero {
		scanner.Split(splitNul)
	}

	lineno := 0
	for scanner.Scan() {
		lineno++

		line := scanner.Text()
		if !c.Zero {
			line = strings.TrimSuffix(line, "\r")
		}

		if line == "" || line[0] == '#' {
			continue
		}

		e, err := ParseLine(line)
		if err != nil {
			res.Malformed++

			if c.Warn {
				glog.Warningf("%s: %d: %v", listName, lineno, err)
			}
			continue
		}

		matched, err := c.verify(ctx, e)
		switch {
		case err != nil && c.IgnoreMissing && errors.Is(err, os.ErrNotExist):
			res.Missing++
			continue

		case err != nil:
			res.Unreadable++
			glog.Errorf("%s: %v", e.Name, err)
			c.report(e.Name, "FAILED open or read")

		case !matched:
			res.Failed++
			c.report(e.Name, "FAILED")

		case !c.Quiet:
			c.report(e.Name, "OK")
		}

		res.Checked++
	}

	if err := scanner.Err(); err != nil {
		return res, err
	}

	if res.Checked == 0 && res.Missing == 0 {
		return res, fmt.Errorf("%s: %w", listName, ErrNoChecksums)
	}

	if !c.Status {
		warnCount(res.Malformed, "line is improperly formatted", "lines are improperly formatted")
		warnCount(res.Unreadable, "listed file could not be read", "listed files could not be read")
		warnCount(res.Failed, "computed checksum did NOT match", "computed checksums did NOT match")
	}

	if res.Checked == 0 && c.IgnoreMissing {
		return res, fmt.Errorf("%s: no file was verified", listName)
	}

	return res, nil
}

func warnCount(n int, one, many string) {
	switch {
	case n == 1:
		glog.Warningf("WARNING: 1 %s", one)
	case n > 1:
		glog.Warningf("WARNING: %d %s", n, many)
	}
}
