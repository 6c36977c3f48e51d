package main

import (
	"bytes"
	"context"
	"errors"
	"io"
	"sort"
	"time"

	"github.com/puellanivis/breton/lib/display/tables"
	"github.com/puellanivis/breton/lib/files"
	"github.com/puellanivis/breton/lib/glog"

	"github.com/puellanivis/coreutils/internal/cat"
)

func shortName(filename string, in interface{ Name() string }) string {
	printName := filename
	if filename != "" && filename != "-" {
		if name := in.Name(); filename != name {
			glog.Infof("redirected: %s", name)
		}
	}

	if len(printName) > 40 {
		printName = printName[:40] + "…"
	}

	return printName
}

// closeSource closes in, logging any failure, and returns the error.
func closeSource(in io.Closer) error {
	err := in.Close()
	if err != nil {
		glog.Error(err)
	}

	return err
}

// ListFile lists the given dirname to out as a table.
//
// A failure to list dirname is returned as a *cat.SourceError,
// a failure to write the table is returned as a *cat.SinkError.
func ListFile(ctx context.Context, out io.Writer, dirname string) error {
	fi, err := files.List(ctx, dirname)
	if err != nil {
		return &cat.SourceError{Name: dirname, Err: err}
	}

	sort.Slice(fi, func(i, j int) bool {
		return fi[i].Name() < fi[j].Name()
	})

	var t tables.Table
	for _, info := range fi {
		lm := info.ModTime().Format(time.RFC3339)

		t = tables.Append(t, info.Mode(), info.Size(), lm, info.Name())
	}

	if err := tables.Empty.WriteSimple(out, t); err != nil {
		return &cat.SinkError{Err: err}
	}

	return nil
}

// CatFile copies the given filename to out.
//
// A failure to open or read the file is returned as a *cat.SourceError,
// a failure to write to out is returned as a *cat.SinkError.
func CatFile(ctx context.Context, out io.Writer, filename string, opts []files.CopyOption) error {
	if glog.V(10) {
		glog.Infof("enter CatFile")
	}

	in, err := files.Open(ctx, filename)
	if err != nil {
		return &cat.SourceError{Name: filename, Err: err}
	}

	printName := shortName(filename, in)

	if glog.V(5) {
		glog.Infof("CatFile: %s", printName)
	}

	defer closeSource(in)

	start := time.Now()

	n, err := files.Copy(ctx, out, in, opts...)

	if err != nil && err != io.EOF {
		if n > 0 {
			glog.Errorf("%s: %d bytes copied in %v", printName, n, time.Since(start))
		}

		var sinkErr *cat.SinkError
		if errors.As(err, &sinkErr) {
			return err
		}

		return &cat.SourceError{Name: filename, Err: err}
	}

	if glog.V(2) {
		glog.Infof("%s: %d bytes copied in %v", printName, n, time.Since(start))
	}

	return nil
}

// each calls fn for every filename, in order.
// A *cat.SinkError stops the run at once; any other error is logged and
// the remaining filenames are still processed. The exit status is returned.
func each(filenames []string, fn func(filename string) error) int {
	status := 0

	for _, filename := range filenames {
		err := fn(filename)
		if err == nil {
			continue
		}

		glog.Error(err)
		status = 1

		var sinkErr *cat.SinkError
		if errors.As(err, &sinkErr) {
			break
		}
	}

	return status
}

// listFiles lists every filename to out.
func listFiles(ctx context.Context, out io.Writer, filenames []string) int {
	return each(filenames, func(filename string) error {
		return ListFile(ctx, out, filename)
	})
}

// catFiles copies every filename to out.
func catFiles(ctx context.Context, out io.Writer, filenames []string, opts []files.CopyOption) int {
	return each(filenames, func(filename string) error {
		return CatFile(ctx, out, filename, opts)
	})
}

// splitFileList returns the non-blank, trimmed lines of data.
func splitFileList(data []byte) []string {
	var list []string

	for _, line := range bytes.Split(data, []byte("\n")) {
		line = bytes.TrimSpace(line)

		if len(line) < 1 {
			continue
		}

		list = append(list, string(line))
	}

	return list
}

// FileCeption reads a list of files to cat from a file.
func FileCeption(ctx context.Context, filename string) ([]string, error) {
	if glog.V(10) {
		glog.Infof("enter FileCeption")
	}

	in, err := files.Open(ctx, filename)
	if err != nil {
		return nil, &cat.SourceError{Name: filename, Err: err}
	}

	defer closeSource(in)

	printName := shortName(filename, in)

	if glog.V(5) {
		glog.Infof("FileCeption: %s", printName)
	}

	data, err := files.ReadFrom(in)
	if err != nil {
		return nil, &cat.SourceError{Name: filename, Err: err}
	}

	list := splitFileList(data)

	if glog.V(2) {
		glog.Infof("%s: %d files listed", printName, len(list))
	}

	return list, nil
}

func getOutput(ctx context.Context, filename string) (io.WriteCloser, error) {
	out, err := files.Create(ctx, filename)
	if err != nil {
		return nil, err
	}

	switch filename {
	case "", "-", "/dev/stdout":
	default:
		if printName := out.Name(); printName != filename {
			glog.Info("output redirected: ", printName)
		}
	}

	return out, nil
}
