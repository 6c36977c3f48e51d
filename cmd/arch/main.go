//go:build unix

package main

import (
	"fmt"
	"os"

	"github.com/puellanivis/breton/lib/glog"
	flag "github.com/puellanivis/breton/lib/gnuflag"
	"github.com/puellanivis/breton/lib/os/process"
	"golang.org/x/sys/unix"
)

// Version information ready for build-time injection.
var (
	Version    = "v0.0.0"
	Buildstamp = "dev"
)

// machine returns the hardware name reported by uname(2).
func machine() (string, error) {
	var uts unix.Utsname
	if err := unix.Uname(&uts); err != nil {
		return "", err
	}

	return unix.ByteSliceToString(uts.Machine[:]), nil
}

func main() {
	flag.Set("logtostderr", "true")

	_, finish := process.Init("arch", Version, Buildstamp)

	m, err := machine()
	if err == nil {
		_, err = fmt.Println(m)
	}

	if err != nil {
		glog.Error(err)
	}

	finish()

	if err != nil {
		os.Exit(1)
	}
}
