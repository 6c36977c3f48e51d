package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/puellanivis/breton/lib/files"
	"github.com/puellanivis/breton/lib/files/httpfiles"
	_ "github.com/puellanivis/breton/lib/files/plugins"
	_ "github.com/puellanivis/breton/lib/files/s3files"
	_ "github.com/puellanivis/breton/lib/files/sftpfiles"
	"github.com/puellanivis/breton/lib/glog"
	flag "github.com/puellanivis/breton/lib/gnuflag"
	"github.com/puellanivis/breton/lib/metrics"
	"github.com/puellanivis/breton/lib/os/process"

	"github.com/puellanivis/coreutils/internal/cat"
)

// Version information ready for build-time injection.
var (
	Version    = "v0.0.0"
	Buildstamp = "dev"
)

// Flags contains all of the flags defined for the application.
var Flags struct {
	Output string `flag:",short=o"            desc:"Specifies which file to write the output to"`
	Quiet  bool   `flag:",short=q"            desc:"If set, suppresses informational messages on stderr."`
	List   bool   `flag:"list"                desc:"If set, list files instead of catting them."`

	ShowAll         bool `flag:",short=A"  desc:"equivalent to -vET"`
	NumberNonblank  bool `flag:",short=b"  desc:"number nonempty output lines, overrides -n"`
	ShowEnds        bool `flag:",short=E"  desc:"display $ at end of each line"`
	Number          bool `flag:",short=n"  desc:"number all output lines"`
	SqueezeBlank    bool `flag:",short=s"  desc:"suppress repeated empty output lines"`
	ShowTabs        bool `flag:",short=T"  desc:"display TAB characters as ^I"`
	ShowNonprinting bool `flag:",short=v"  desc:"use ^ and M- notation, except for LFD and TAB"`

	ShowAllButTabs bool `flag:"e" desc:"equivalent to -vE"`
	ShowAllButEnds bool `flag:"t" desc:"equivalent to -vT"`
	Ignored        bool `flag:"u" desc:"(ignored)"`

	UserAgent string `flag:",default=coreutils-cat/1.0" desc:"Which User-Agent string to use"`

	Metrics        bool   `desc:"If set, publish metrics to the given metrics-port or metrics-address."`
	MetricsPort    int    `desc:"Which port to publish metrics with. (default auto-assign)"`
	MetricsAddress string `desc:"Which local address to listen on; overrides metrics-port flag."`

	Files []string `flag:",short=f" desc:"Read list of files to output from given file(s)."`
}

func init() {
	flag.Struct("", &Flags)
}

var (
	bwLifetime = metrics.Gauge("bandwidth_lifetime_bps", "bandwidth of the copy to output process (bytes/second)")
	bwRunning  = metrics.Gauge("bandwidth_running_bps", "bandwidth of the copy to output process (bytes/second)")
)

// options collects the display flags into a cat.Options.
func options() cat.Options {
	return cat.Options{
		ShowAll:             Flags.ShowAll,
		ShowNonprintingEnds: Flags.ShowAllButTabs,
		ShowNonprintingTabs: Flags.ShowAllButEnds,

		ShowEnds:        Flags.ShowEnds,
		ShowTabs:        Flags.ShowTabs,
		ShowNonprinting: Flags.ShowNonprinting,

		Number:         Flags.Number,
		NumberNonblank: Flags.NumberNonblank,
		SqueezeBlank:   Flags.SqueezeBlank,
	}
}

func run(ctx context.Context) int {
	ctx = httpfiles.WithUserAgent(ctx, Flags.UserAgent)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var stderr io.Writer = os.Stderr
	if Flags.Quiet {
		stderr = nil
	}

	if glog.V(2) {
		if err := flag.Set("stderrthreshold", "INFO"); err != nil {
			glog.Error(err)
		}
	}

	if Flags.MetricsPort != 0 || Flags.MetricsAddress != "" {
		Flags.Metrics = true
	}

	out, err := getOutput(ctx, Flags.Output)
	if err != nil {
		glog.Fatal("could not open output: ", err)
	}
	defer func() {
		if err := out.Close(); err != nil {
			glog.Error(err)
		}
	}()

	var opts []files.CopyOption

	if Flags.Metrics {
		opts = append(opts,
			files.WithBandwidthMetrics(bwLifetime),
			files.WithIntervalBandwidthMetrics(bwRunning, 10, 1*time.Second),
		)

		addr := Flags.MetricsAddress
		if addr == "" {
			addr = fmt.Sprintf(":%d", Flags.MetricsPort)
		}

		go serveMetrics(ctx, addr, stderr)
	}

	filenames := flag.Args()

	for _, file := range Flags.Files {
		list, err := FileCeption(ctx, file)
		if err != nil {
			glog.Error(err)
			continue
		}

		filenames = append(filenames, list...)
	}

	if len(filenames) < 1 {
		filenames = append(filenames, "-")
	}

	if Flags.List {
		return listFiles(ctx, out, filenames)
	}

	// One Position across all files, so numbering is cumulative.
	fmtr := cat.NewWriter(out, options().Config(), cat.NewPosition())

	status := catFiles(ctx, fmtr, filenames, opts)

	if glog.V(5) {
		glog.Infof("next line number: %d", fmtr.Position().Line)
	}

	return status
}

func main() {
	flag.Set("logtostderr", "true")

	ctx, finish := process.Init("cat", Version, Buildstamp)

	status := run(ctx)

	finish()

	if status != 0 {
		os.Exit(status)
	}
}
