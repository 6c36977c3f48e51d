package cat

import (
	"io"
)

// Writer formats everything written to it, and passes the result on
// to an underlying io.Writer.
//
// Each call to Write results in at most one Write to the underlying writer.
// The Writer never closes the underlying writer.
type Writer struct {
	w   io.Writer
	cfg Config
	pos *Position

	buf []byte
}

// NewWriter returns a Writer that formats into w with cfg.
// If pos is nil, a fresh Position is used.
func NewWriter(w io.Writer, cfg Config, pos *Position) *Writer {
	if pos == nil {
		pos = NewPosition()
	}

	return &Writer{
		w:   w,
		cfg: cfg,
		pos: pos,
	}
}

// Position returns the Position being advanced by w.
func (w *Writer) Position() *Position {
	return w.pos
}

// Write formats data and writes it out. It reports len(data) on success.
// A failure of the underlying writer is returned as a *SinkError.
//
// With a zero Config, data is passed through untouched and the Position
// is not advanced.
func (w *Writer) Write(data []byte) (n int, err error) {
	if w.cfg.IsZero() {
		if _, err := w.w.Write(data); err != nil {
			return 0, &SinkError{Err: err}
		}
		return len(data), nil
	}

	w.buf = Format(w.buf[:0], data, w.cfg, w.pos)

	if len(w.buf) > 0 {
		if _, err := w.w.Write(w.buf); err != nil {
			return 0, &SinkError{Err: err}
		}
	}

	return len(data), nil
}
