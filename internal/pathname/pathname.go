// Package pathname strips directory and suffix parts from path names,
// textually, the way basename and dirname do.
//
// Unlike package path, nothing is cleaned: "a/../b" has the directory "a/..".
package pathname

import (
	"strings"
)

func trimTrailingSlashes(name string) string {
	return strings.TrimRight(name, "/")
}

// Base returns the last component of name, with suffix removed
// if it is a proper suffix of that component.
func Base(name, suffix string) string {
	if name == "" {
		return ""
	}

	base := trimTrailingSlashes(name)
	if base == "" {
		return "/"
	}

	if i := strings.LastIndexByte(base, '/'); i >= 0 {
		base = base[i+1:]
	}

	if suffix != "" && base != suffix {
		base = strings.TrimSuffix(base, suffix)
	}

	return base
}

// Dir returns name with its last component and trailing slashes removed.
// A name without a slash yields ".", and the root yields "/".
func Dir(name string) string {
	dir := trimTrailingSlashes(name)
	if dir == "" {
		if name == "" {
			return "."
		}
		return "/"
	}

	i := strings.LastIndexByte(dir, '/')
	if i < 0 {
		return "."
	}

	dir = trimTrailingSlashes(dir[:i])
	if dir == "" {
		return "/"
	}

	return dir
}
