package main

import (
	"errors"
	"fmt"
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
	Multiple bool   `flag:",short=a" desc:"support multiple arguments and treat each as a NAME"`
	Suffix   string `flag:",short=s" desc:"remove a trailing SUFFIX; implies -a"`
	Zero     bool   `flag:",short=z" desc:"end each output line with NUL, not newline"`
}

func init() {
	flag.Struct("", &Flags)
}

var errMissingOperand = errors.New("missing operand")

// basenames applies the two calling conventions:
// "NAME [SUFFIX]", or "-a [-s SUFFIX] NAME...".
func basenames(args []string, multiple bool, suffix string) ([]string, error) {
	if len(args) < 1 {
		return nil, errMissingOperand
	}

	if suffix != "" {
		multiple = true
	}

	if !multiple {
		switch len(args) {
		case 1:
		case 2:
			suffix = args[1]
		default:
			return nil, fmt.Errorf("extra operand %q", args[2])
		}

		return []string{pathname.Base(args[0], suffix)}, nil
	}

	var names []string
	for _, arg := range args {
		names = append(names, pathname.Base(arg, suffix))
	}

	return names, nil
}

func run() int {
	names, err := basenames(flag.Args(), Flags.Multiple, Flags.Suffix)
	if err != nil {
		glog.Error(err)
		return 1
	}

	eol := "\n"
	if Flags.Zero {
		eol = "\x00"
	}

	var b strings.Builder
	for _, name := range names {
		b.WriteString(name)
		b.WriteString(eol)
	}

	if _, err := os.Stdout.WriteString(b.String()); err != nil {
		glog.Error(err)
		return 1
	}

	return 0
}

func main() {
	flag.Set("logtostderr", "true")

	_, finish := process.Init("basename", Version, Buildstamp)

	status := run()

	finish()

	if status != 0 {
		os.Exit(status)
	}
}
