package baseenc

import (
	"io"
)

// Wrapper is an io.Writer that breaks its output into lines.
type Wrapper struct {
	io.Writer
	cols int
	col  int

	buf []byte
}

// NewWrapper returns a Wrapper writing lines of cols bytes to w.
// A cols of zero or less disables wrapping.
func NewWrapper(w io.Writer, cols int) *Wrapper {
	return &Wrapper{
		Writer: w,
		cols:   cols,
	}
}

func (w *Wrapper) Write(data []byte) (n int, err error) {
	if w.cols <= 0 {
		return w.Writer.Write(data)
	}

	w.buf = w.buf[:0]

	for len(data) > 0 {
		if w.col == w.cols {
			w.buf = append(w.buf, '\n')
			w.col = 0
		}

		chunk := data
		if room := w.cols - w.col; len(chunk) > room {
			chunk = chunk[:room]
		}

		w.buf = append(w.buf, chunk...)
		w.col += len(chunk)
		data = data[len(chunk):]
		n += len(chunk)
	}

	if _, err := w.Writer.Write(w.buf); err != nil {
		return 0, err
	}

	return n, nil
}

// Close terminates a partial line. It does not close the underlying writer.
func (w *Wrapper) Close() error {
	if w.cols <= 0 || w.col == 0 {
		return nil
	}

	w.col = 0
	_, err := w.Writer.Write([]byte{'\n'})
	return err
}
