//go:build unix

package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/puellanivis/breton/lib/glog"
	flag "github.com/puellanivis/breton/lib/gnuflag"
	"github.com/puellanivis/breton/lib/os/process"

	"github.com/puellanivis/coreutils/internal/owner"
)

// Version information ready for build-time injection.
var (
	Version    = "v0.0.0"
	Buildstamp = "dev"
)

// Flags contains all of the flags defined for the application.
var Flags struct {
	Changes bool `flag:",short=c" desc:"like verbose but report only when a change is made"`
	Silent  bool `flag:",short=f" desc:"suppress most error messages"`
	Verbose bool `flag:",short=v" desc:"output a diagnostic for every file processed"`

	NoDereference bool `flag:",short=h" desc:"affect symbolic links instead of any referenced file"`

	From      string `desc:"change the owner and/or group of each file only if its current owner and/or group match those specified here (CURRENT_OWNER:CURRENT_GROUP)"`
	Reference string `desc:"use RFILE's owner and group rather than specifying OWNER:GROUP values"`

	PreserveRoot bool `desc:"fail to operate recursively on '/'"`
	Recursive    bool `flag:",short=R" desc:"operate on files and directories recursively"`
}

func init() {
	flag.Struct("", &Flags)
}

var errMissingOperand = errors.New("missing operand")

func verbosity() owner.Verbosity {
	switch {
	case Flags.Verbose:
		return owner.Verbose
	case Flags.Changes:
		return owner.Changes
	case Flags.Silent:
		return owner.Silent
	}

	return owner.Normal
}

// target resolves the ownership to apply, and the files to apply it to.
func target(args []string) (owner.Spec, []string, error) {
	if Flags.Reference != "" {
		if len(args) < 1 {
			return owner.Spec{}, nil, errMissingOperand
		}

		spec, err := owner.Reference(Flags.Reference)
		return spec, args, err
	}

	if len(args) < 2 {
		return owner.Spec{}, nil, errMissingOperand
	}

	spec, err := owner.ParseSpec(args[0])
	return spec, args[1:], err
}

func run() int {
	spec, filenames, err := target(flag.Args())
	if err != nil {
		glog.Error(err)
		return 1
	}

	c := &owner.Changer{
		Out:          os.Stdout,
		Dereference:  !Flags.NoDereference,
		Recursive:    Flags.Recursive,
		PreserveRoot: Flags.PreserveRoot,
		Verbosity:    verbosity(),
	}

	if Flags.From != "" {
		from, err := owner.ParseSpec(Flags.From)
		if err != nil {
			glog.Error(fmt.Errorf("--from: %w", err))
			return 1
		}
		c.From = &from
	}

	if glog.V(2) {
		glog.Infof("chown %+v: %d files", spec, len(filenames))
	}

	status := 0

	for _, filename := range filenames {
		if err := c.Chown(filename, spec); err != nil {
			if c.Verbosity != owner.Silent {
				glog.Error(err)
			}
			status = 1
		}
	}

	return status
}

func main() {
	flag.Set("logtostderr", "true")

	_, finish := process.Init("chown", Version, Buildstamp)

	status := run()

	finish()

	if status != 0 {
		os.Exit(status)
	}
}
