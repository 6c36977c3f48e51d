package main

import (
	"errors"
	"os"
	"strings"

	"github.com/puellanivis/breton/lib/glog"
	flag "github.com/puellanivis/breton/lib/gnuflag"
	"github.com/puellanivis/breton/lib/os/process"

	"github.com/puellanivis/coreutils/internal/pathname"
)

// Version information ready for build-time injection.
var (
	Version    = "v0.0.0"
	Buildstamp = "dev"
)

// Flags contains all of the flags defined for the application.
var Flags struct {
	Zero bool `flag:",short=z" desc:"end each output line with NUL, not newline"`
}

func init() {
	flag.Struct("", &Flags)
}

var errMissingOperand = errors.New("missing operand")

func dirnames(args []string, eol string) (string, error) {
	if len(args) < 1 {
		return "", errMissingOperand
	}

	var b strings.Builder
	for _, arg := range args {
		b.WriteString(pathname.Dir(arg))
		b.WriteString(eol)
	}

	return b.String(), nil
}

func run() int {
	eol := "\n"
	if Flags.Zero {
		eol = "\x00"
	}

	out, err := dirnames(flag.Args(), eol)
	if err != nil {
		glog.Error(err)
		return 1
	}

	if _, err := os.Stdout.WriteString(out); err != nil {
		glog.Error(err)
		return 1
	}

	return 0
}

func main() {
	flag.Set("logtostderr", "true")

	_, finish := process.Init("dirname", Version, Buildstamp)

	status := run()

	finish()

	if status != 0 {
		os.Exit(status)
	}
}
