package wc

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Columns selects which counts are reported, in the fixed order
// lines, words, chars, bytes.
type Columns struct {
	Lines bool
	Words bool
	Chars bool
	Bytes bool
}

// DefaultColumns are reported when no column is selected.
var DefaultColumns = Columns{
	Lines: true,
	Words: true,
	Bytes: true,
}

// OrDefault returns DefaultColumns if cols selects nothing.
func (cols Columns) OrDefault() Columns {
	if cols == (Columns{}) {
		return DefaultColumns
	}

	return cols
}

func (cols Columns) values(c Counts) []int64 {
	var v []int64

	if cols.Lines {
		v = append(v, c.Lines)
	}
	if cols.Words {
		v = append(v, c.Words)
	}
	if cols.Chars {
		v = append(v, c.Chars)
	}
	if cols.Bytes {
		v = append(v, c.Bytes)
	}

	return v
}

// Row is one line of a report. An empty Name is not printed.
type Row struct {
	Name   string
	Counts Counts
}

// WriteReport writes one line per row, right aligning the selected counts
// to a common width. A lone count for a lone row is not padded.
func WriteReport(w io.Writer, cols Columns, rows []Row) error {
	width := 1

	for _, row := range rows {
		for _, v := range cols.values(row.Counts) {
			if n := len(strconv.FormatInt(v, 10)); n > width {
				width = n
			}
		}
	}

	var b strings.Builder

	for _, row := range rows {
		values := cols.values(row.Counts)

		if len(rows) == 1 && len(values) == 1 {
			width = 0
		}

		for i, v := range values {
			if i > 0 {
				b.WriteByte(' ')
			}
			fmt.Fprintf(&b, "%*d", width, v)
		}

		if row.Name != "" {
			b.WriteByte(' ')
			b.WriteString(row.Name)
		}

		b.WriteByte('\n')
	}

	_, err := io.WriteString(w, b.String())
	return err
}
