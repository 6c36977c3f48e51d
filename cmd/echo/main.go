package main

import (
	"errors"
	"os"
	"syscall"

	"github.com/puellanivis/breton/lib/glog"
	flag "github.com/puellanivis/breton/lib/gnuflag"

	"github.com/puellanivis/coreutils/internal/echo"
)

// Options are scanned by hand, without process.Init,
// since unrecognized options must be echoed verbatim.
func main() {
	flag.Set("logtostderr", "true")

	opts, args := echo.ParseArgs(os.Args[1:])

	if err := echo.Write(os.Stdout, opts, args); err != nil {
		if errors.Is(err, syscall.EPIPE) {
			os.Exit(1)
		}

		glog.Error(err)
		os.Exit(1)
	}
}
