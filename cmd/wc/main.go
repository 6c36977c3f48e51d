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

	"github.com/puellanivis/coreutils/internal/wc"
)

// Version information ready for build-time injection.
var (
	Version    = "v0.0.0"
	Buildstamp = "dev"
)

// Flags contains all of the flags defined for the application.
var Flags struct {
	Bytes bool `flag:",short=c" desc:"print the byte counts"`
	Chars bool `flag:",short=m" desc:"print the character counts"`
	Lines bool `flag:",short=l" desc:"print the newline counts"`
	Words bool `flag:",short=w" desc:"print the word counts"`
}

func init() {
	flag.Struct("", &Flags)
}

// Count tallies the contents of filename.
func Count(ctx context.Context, filename string) (wc.Counts, error) {
	in, err := files.Open(ctx, filename)
	if err != nil {
		return wc.Counts{}, err
	}
	defer in.Close()

	var c wc.Counter
	if _, err := files.Copy(ctx, &c, in); err != nil && err != io.EOF {
		return c.Counts(), err
	}

	if glog.V(2) {
		glog.Infof("%s: %+v", filename, c.Counts())
	}

	return c.Counts(), nil
}

func run(ctx context.Context) int {
	cols := wc.Columns{
		Lines: Flags.Lines,
		Words: Flags.Words,
		Chars: Flags.Chars,
		Bytes: Flags.Bytes,
	}.OrDefault()

	filenames := flag.Args()

	if len(filenames) < 1 {
		counts, err := Count(ctx, "-")
		if err != nil {
			glog.Error(err)
			return 1
		}

		if err := wc.WriteReport(os.Stdout, cols, []wc.Row{{Counts: counts}}); err != nil {
			glog.Error(err)
			return 1
		}
		return 0
	}

	status := 0

	var rows []wc.Row
	var total wc.Counts

	for _, filename := range filenames {
		counts, err := Count(ctx, filename)
		if err != nil {
			glog.Errorf("%s: %v", filename, err)
			status = 1
			continue
		}

		total.Add(counts)
		rows = append(rows, wc.Row{
			Name:   filename,
			Counts: counts,
		})
	}

	if len(filenames) > 1 {
		rows = append(rows, wc.Row{
			Name:   "total",
			Counts: total,
		})
	}

	if err := wc.WriteReport(os.Stdout, cols, rows); err != nil {
		glog.Error(err)
		return 1
	}

	return status
}

func main() {
	flag.Set("logtostderr", "true")

	ctx, finish := process.Init("wc", Version, Buildstamp)

	status := run(ctx)

	finish()

	if status != 0 {
		os.Exit(status)
	}
}
