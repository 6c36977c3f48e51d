package cat

// Position is the state of a formatting pass through a stream.
//
// A Position may be carried from one stream to the next to number lines
// cumulatively. A partial last line of one stream is then continued,
// not renumbered, by the next.
type Position struct {
	// Line is the number the next numbered line will receive.
	// A zero value is treated as 1.
	Line int

	// Column counts the input bytes seen since the last newline.
	Column int

	// PrevBlank is set when the last completed line was empty.
	PrevBlank bool
}

// NewPosition returns a Position at the start of a stream.
func NewPosition() *Position {
	return &Position{
		Line: 1,
	}
}

// Format appends the display form of src to dst according to cfg,
// and advances pos past src.
//
// Every byte value has a defined display form, so Format cannot fail.
func Format(dst, src []byte, cfg Config, pos *Position) []byte {
	if pos.Line < 1 && len(src) > 0 {
		pos.Line = 1
	}

	for _, c := range src {
		if pos.Column == 0 {
			blank := c == '\n'

			if blank && cfg.SqueezeBlank && pos.PrevBlank {
				continue
			}

			if cfg.NumberAll || (cfg.NumberNonblank && !blank) {
				dst = appendLineNumber(dst, pos.Line)
			}
		}

		switch {
		case c == '\n':
			if cfg.ShowEnds {
				dst = append(dst, '$')
			}
			dst = append(dst, c)

			blank := pos.Column == 0
			if !blank || !cfg.NumberNonblank {
				pos.Line++
			}

			pos.PrevBlank = blank
			pos.Column = 0
			continue

		case c == '\t':
			if cfg.ShowTabs {
				dst = append(dst, '^', 'I')
			} else {
				dst = append(dst, c)
			}

		case cfg.ShowNonprinting && (c < 32 || c >= 127):
			dst = appendNotation(dst, c)

		default:
			dst = append(dst, c)
		}

		pos.Column++
	}

	return dst
}
