package main

import (
	"context"
	"fmt"
	"os"

	_ "github.com/puellanivis/breton/lib/files/plugins"
	"github.com/puellanivis/breton/lib/glog"
	flag "github.com/puellanivis/breton/lib/gnuflag"
	"github.com/puellanivis/breton/lib/os/process"

	"github.com/puellanivis/coreutils/internal/baseenc"
)

// Version information ready for build-time injection.
var (
	Version    = "v0.0.0"
	Buildstamp = "dev"
)

// Flags contains all of the flags defined for the application.
var Flags struct {
	Decode        bool `flag:",short=d"            desc:"decode data"`
	IgnoreGarbage bool `flag:",short=i"            desc:"when decoding, ignore non-alphabet characters"`
	Wrap          int  `flag:",short=w,default=76" desc:"wrap encoded lines after COLS character (default 76). Use 0 to disable line wrapping"`
}

func init() {
	flag.Struct("", &Flags)
}

func run(ctx context.Context) error {
	filename := "-"

	switch args := flag.Args(); len(args) {
	case 0:
	case 1:
		filename = args[0]
	default:
		return fmt.Errorf("extra operand %q", args[1])
	}

	if Flags.Wrap < 0 {
		return fmt.Errorf("invalid wrap size: %d", Flags.Wrap)
	}

	opts := baseenc.Options{
		Decode:        Flags.Decode,
		IgnoreGarbage: Flags.IgnoreGarbage,
		Wrap:          Flags.Wrap,
	}

	return baseenc.Base32.Process(ctx, os.Stdout, filename, opts)
}

func main() {
	flag.Set("logtostderr", "true")

	ctx, finish := process.Init("base32", Version, Buildstamp)

	err := run(ctx)
	if err != nil {
		glog.Error(err)
	}

	finish()

	if err != nil {
		os.Exit(1)
	}
}
