package main

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/puellanivis/breton/lib/glog"
	_ "github.com/puellanivis/breton/lib/metrics/http"
)

// serveMetrics publishes metrics over HTTP on addr until ctx is done.
func serveMetrics(ctx context.Context, addr string, stderr io.Writer) {
	l, err := net.Listen("tcp4", addr)
	if err != nil {
		glog.Fatal("net.Listen: ", err)
	}

	msg := fmt.Sprintf("metrics available at: http://%s/metrics", l.Addr())
	if stderr != nil {
		fmt.Fprintln(stderr, msg)
	}
	glog.Info(msg)

	http.HandleFunc("/", func(w http.ResponseWriter, req *http.Request) {
		http.Redirect(w, req, "/metrics", http.StatusMovedPermanently)
	})

	srv := &http.Server{}

	go func() {
		select {
		case <-ctx.Done():
			// the whole copy may already have completed.
			return
		default:
		}

		if err := srv.Serve(l); err != nil {
			if err != http.ErrServerClosed {
				glog.Fatal("http.Serve: ", err)
			}
		}
	}()

	<-ctx.Done()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		glog.Error(err)
	}

	l.Close()
}
