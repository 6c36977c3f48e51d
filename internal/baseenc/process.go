package baseenc

import (
	"context"
	"encoding/base32"
	"encoding/base64"
	"errors"
	"fmt"
	"io"

	"github.com/puellanivis/breton/lib/files"
	"github.com/puellanivis/breton/lib/glog"
)

// ErrInvalidInput is returned when decoding input that is not validly encoded.
var ErrInvalidInput = errors.New("invalid input")

// Options selects what Process does.
type Options struct {
	Decode        bool
	IgnoreGarbage bool
	Wrap          int
}

func classify(err error) error {
	var err32 base32.CorruptInputError
	var err64 base64.CorruptInputError

	if errors.As(err, &err32) || errors.As(err, &err64) {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	return err
}

// Transcode encodes or decodes all of src into dst.
func (c *Codec) Transcode(ctx context.Context, dst io.Writer, src io.Reader, opts Options) error {
	if opts.Decode {
		_, err := files.Copy(ctx, dst, c.NewDecoder(src, opts.IgnoreGarbage))
		if err != nil && err != io.EOF {
			return classify(err)
		}
		return nil
	}

	enc := c.NewEncoder(dst, opts.Wrap)

	if _, err := files.Copy(ctx, enc, src); err != nil && err != io.EOF {
		return err
	}

	return enc.Close()
}

// Process transcodes the contents of filename into out.
func (c *Codec) Process(ctx context.Context, out io.Writer, filename string, opts Options) error {
	in, err := files.Open(ctx, filename)
	if err != nil {
		return err
	}
	defer in.Close()

	if glog.V(2) {
		glog.Infof("%s: %s %+v", c.Name, filename, opts)
	}

	return c.Transcode(ctx, out, in, opts)
}
