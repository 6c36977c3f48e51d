package main

import (
	"context"
	"io"
	"os"

	"github.com/puellanivis/breton/lib/files"
	_ "github.com/puellanivis/breton/lib/files/plugins"
	"github.com/puellanivis/breton/lib/glog"
	flag "github.com/puellanivis/breton/lib/gnuflag"
	"github.com/puellanivis/breton/lib/os/process"

	"github.com/puellanivis/coreutils/internal/b2sum"
)

// Version information ready for build-time injection.
var (
	Version    = "v0.0.0"
	Buildstamp = "dev"
)

// Flags contains all of the flags defined for the application.
var Flags struct {
	Binary bool `flag:",short=b" desc:"read in binary mode"`
	Check  bool `flag:",short=c" desc:"read BLAKE2 sums from the FILEs and check them"`
	Length int  `flag:",short=l" desc:"digest length in bits; must not exceed the maximum for the blake2 algorithm and must be a multiple of 8"`
	Tag    bool `desc:"create a BSD-style checksum"`
	Text   bool `flag:",short=t" desc:"read in text mode (default)"`
	Zero   bool `flag:",short=z" desc:"end each output line with NUL, not newline, and disable file name escaping"`

	IgnoreMissing bool `desc:"don't fail or report status for missing files"`
	Quiet         bool `desc:"don't print OK for each successfully verified file"`
	Status        bool `desc:"don't output anything, status code shows success"`
	Strict        bool `desc:"exit non-zero for improperly formatted checksum lines"`
	Warn          bool `flag:",short=w" desc:"warn about improperly formatted checksum lines"`
}

func init() {
	flag.Struct("", &Flags)
}

// sumFile writes the checksum line of filename to out.
func sumFile(ctx context.Context, out io.Writer, filename string, f b2sum.Format) error {
	in, err := files.Open(ctx, filename)
	if err != nil {
		return err
	}
	defer in.Close()

	digest, err := b2sum.Sum(ctx, in, Flags.Length)
	if err != nil {
		return err
	}

	_, err = out.Write(f.AppendLine(nil, digest, filename))
	return err
}

// checkFile verifies the files listed in the checksum list filename.
func checkFile(ctx context.Context, c *b2sum.Checker, filename string) bool {
	in, err := files.Open(ctx, filename)
	if err != nil {
		glog.Errorf("%s: %v", filename, err)
		return false
	}
	defer in.Close()

	res, err := c.Check(ctx, filename, in)
	if err != nil {
		glog.Error(err)
		return false
	}

	if glog.V(2) {
		glog.Infof("%s: %+v", filename, res)
	}

	return res.OK(Flags.Strict)
}

func run(ctx context.Context) int {
	if _, err := b2sum.New(Flags.Length); err != nil {
		glog.Error(err)
		return 1
	}

	filenames := flag.Args()
	if len(filenames) < 1 {
		filenames = append(filenames, "-")
	}

	status := 0

	if Flags.Check {
		c := &b2sum.Checker{
			Out:           os.Stdout,
			Quiet:         Flags.Quiet,
			Status:        Flags.Status,
			IgnoreMissing: Flags.IgnoreMissing,
			Warn:          Flags.Warn,
			Zero:          Flags.Zero,
		}

		for _, filename := range filenames {
			if !checkFile(ctx, c, filename) {
				status = 1
			}
		}

		return status
	}

	f := b2sum.Format{
		Tag:    Flags.Tag,
		Binary: Flags.Binary && !Flags.Text,
		Zero:   Flags.Zero,
	}

	for _, filename := range filenames {
		if err := sumFile(ctx, os.Stdout, filename, f); err != nil {
			glog.Errorf("%s: %v", filename, err)
			status = 1
		}
	}

	return status
}

func main() {
	flag.Set("logtostderr", "true")

	ctx, finish := process.Init("b2sum", Version, Buildstamp)

	status := run(ctx)

	finish()

	if status != 0 {
		os.Exit(status)
	}
}
