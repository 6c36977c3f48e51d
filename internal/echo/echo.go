// Package echo implements the argument handling and backslash escapes of echo.
package echo

import (
	"io"
)

// Options controls how arguments are echoed.
type Options struct {
	NoNewline bool // -n
	Escapes   bool // -e, reset by -E
}

func isOption(arg string) bool {
	if len(arg) < 2 || arg[0] != '-' {
		return false
	}

	for _, c := range arg[1:] {
		switch c {
		case 'n', 'e', 'E':
		default:
			return false
		}
	}

	return true
}

// ParseArgs splits the leading options off of args.
// Any argument that is not made up solely of known option letters
// ends option scanning, and is echoed as is.
func ParseArgs(args []string) (Options, []string) {
	var opts Options

	for len(args) > 0 && isOption(args[0]) {
		for _, c := range args[0][1:] {
			switch c {
			case 'n':
				opts.NoNewline = true
			case 'e':
				opts.Escapes = true
			case 'E':
				opts.Escapes = false
			}
		}

		args = args[1:]
	}

	return opts, args
}

// Append appends args separated by spaces to dst, according to opts.
func Append(dst []byte, opts Options, args []string) []byte {
	for i, arg := range args {
		if i > 0 {
			dst = append(dst, ' ')
		}

		if !opts.Escapes {
			dst = append(dst, arg...)
			continue
		}

		var stop bool
		dst, stop = Unescape(dst, arg)
		if stop {
			return dst
		}
	}

	if !opts.NoNewline {
		dst = append(dst, '\n')
	}

	return dst
}

// Write echoes args to w in a single write.
func Write(w io.Writer, opts Options, args []string) error {
	_, err := w.Write(Append(nil, opts, args))
	return err
}
