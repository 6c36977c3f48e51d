package main

import (
	"fmt"
	"os"
	"os/user"
	"strconv"

	"github.com/puellanivis/breton/lib/glog"
	flag "github.com/puellanivis/breton/lib/gnuflag"
	"github.com/puellanivis/breton/lib/os/process"
)

// Version information ready for build-time injection.
var (
	Version    = "v0.0.0"
	Buildstamp = "dev"
)

// username returns the name of the user with the effective user id.
func username() (string, error) {
	uid := strconv.Itoa(os.Geteuid())

	u, err := user.LookupId(uid)
	if err != nil {
		return "", fmt.Errorf("cannot find name for user ID %s: %w", uid, err)
	}

	return u.Username, nil
}

func main() {
	flag.Set("logtostderr", "true")

	_, finish := process.Init("whoami", Version, Buildstamp)

	name, err := username()
	if err == nil {
		_, err = fmt.Println(name)
	}

	if err != nil {
		glog.Error(err)
	}

	finish()

	if err != nil {
		os.Exit(1)
	}
}
