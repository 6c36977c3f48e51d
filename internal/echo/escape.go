package echo

var simpleEscapes = map[byte]byte{
	'\\': '\\',
	'a':  '\a',
	'b':  '\b',
	'e':  0x1b,
	'f':  '\f',
	'n':  '\n',
	'r':  '\r',
	't':  '\t',
	'v':  '\v',
}

func octal(c byte) (byte, bool) {
	if '0' <= c && c <= '7' {
		return c - '0', true
	}
	return 0, false
}

func hex(c byte) (byte, bool) {
	switch {
	case '0' <= c && c <= '9':
		return c - '0', true
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10, true
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}

// Unescape appends s to dst with backslash escapes interpreted.
// It reports stop when s contains \c, after which nothing more
// should be output.
func Unescape(dst []byte, s string) (out []byte, stop bool) {
	for i := 0; i < len(s); i++ {
		c := s[i]

		if c != '\\' || i+1 >= len(s) {
			dst = append(dst, c)
			continue
		}

		i++
		c = s[i]

		if b, ok := simpleEscapes[c]; ok {
			dst = append(dst, b)
			continue
		}

		switch c {
		case 'c':
			return dst, true

		case '0':
			var v byte
			for n := 0; n < 3 && i+1 < len(s); n++ {
				d, ok := octal(s[i+1])
				if !ok {
					break
				}
				v = v<<3 | d
				i++
			}
			dst = append(dst, v)

		case 'x':
			var v byte
			n := 0
			for ; n < 2 && i+1 < len(s); n++ {
				d, ok := hex(s[i+1])
				if !ok {
					break
				}
				v = v<<4 | d
				i++
			}
			if n == 0 {
				dst = append(dst, '\\', 'x')
				continue
			}
			dst = append(dst, v)

		default:
			dst = append(dst, '\\', c)
		}
	}

	return dst, false
}
