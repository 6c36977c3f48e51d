//go:build unix

package owner

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path/filepath"

	"github.com/puellanivis/breton/lib/glog"
	"golang.org/x/sys/unix"
)

// ErrRoot is returned when asked to operate recursively on "/"
// while the root is preserved.
var ErrRoot = errors.New("it is dangerous to operate recursively on '/'")

// Verbosity selects which diagnostics are written.
type Verbosity int

// Verbosity levels.
const (
	Normal  Verbosity = iota
	Changes           // -c: report only changes
	Verbose           // -v: report every file
	Silent            // -f: suppress most error messages
)

// Changer changes the ownership of files.
type Changer struct {
	Out io.Writer

	Dereference  bool  // follow a symbolic link given as an operand, unless Recursive
	Recursive    bool  // descend into directories, never following links
	PreserveRoot bool  // refuse to recurse into "/"
	From         *Spec // only change files currently owned as such

	Verbosity Verbosity
}

func (c *Changer) describe(target Spec, uid, gid int) string {
	if target.UID == Unchanged {
		return groupName(gid)
	}

	if target.GID == Unchanged {
		return userName(uid)
	}

	return userName(uid) + ":" + groupName(gid)
}

func (c *Changer) report(path string, target Spec, st *unix.Stat_t, uid, gid int, changed bool) {
	if c.Out == nil {
		return
	}

	what := "ownership"
	if target.UID == Unchanged {
		what = "group"
	}

	var err error

	switch {
	case changed && (c.Verbosity == Changes || c.Verbosity == Verbose):
		_, err = fmt.Fprintf(c.Out, "changed %s of '%s' from %s to %s\n", what, path,
			c.describe(target, int(st.Uid), int(st.Gid)), c.describe(target, uid, gid))

	case !changed && c.Verbosity == Verbose:
		_, err = fmt.Fprintf(c.Out, "%s of '%s' retained as %s\n", what, path, c.describe(target, uid, gid))
	}

	if err != nil {
		glog.Error(err)
	}
}

// change applies target to a single path.
func (c *Changer) change(path string, target Spec, follow bool) error {
	stat, chown := unix.Lstat, unix.Lchown
	if follow {
		stat, chown = unix.Stat, unix.Chown
	}

	var st unix.Stat_t
	if err := stat(path, &st); err != nil {
		return &fs.PathError{Op: "stat", Path: path, Err: err}
	}

	uid, gid := int(st.Uid), int(st.Gid)

	if c.From != nil && !c.From.Matches(uid, gid) {
		c.report(path, target, &st, uid, gid, false)
		return nil
	}

	if target.UID != Unchanged {
		uid = target.UID
	}
	if target.GID != Unchanged {
		gid = target.GID
	}

	if err := chown(path, target.UID, target.GID); err != nil {
		return &fs.PathError{Op: "chown", Path: path, Err: err}
	}

	c.report(path, target, &st, uid, gid, uid != int(st.Uid) || gid != int(st.Gid))
	return nil
}

func isRoot(path string) bool {
	resolved, err := filepath.EvalSymlinks(path)
	if err != nil {
		return false
	}

	abs, err := filepath.Abs(resolved)
	if err != nil {
		return false
	}

	return abs == "/"
}

// Chown changes the ownership of path to target, and with Recursive,
// of everything below it. Every failure is collected into the returned error.
//
// Recursive walks physically, as chown -R -P does: no symbolic link is
// followed, not even one given as path, so Dereference is ignored.
func (c *Changer) Chown(path string, target Spec) error {
	if !c.Recursive {
		return c.change(path, target, c.Dereference)
	}

	if c.PreserveRoot && isRoot(path) {
		return ErrRoot
	}

	var errs []error

	walkErr := filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			errs = append(errs, err)
			return nil
		}

		if err := c.change(p, target, false); err != nil {
			errs = append(errs, err)
		}

		return nil
	})
	if walkErr != nil {
		errs = append(errs, walkErr)
	}

	return errors.Join(errs...)
}

// Reference returns the ownership of the file at path.
func Reference(path string) (Spec, error) {
	var st unix.Stat_t
	if err := unix.Stat(path, &st); err != nil {
		return Spec{}, &fs.PathError{Op: "stat", Path: path, Err: err}
	}

	return Spec{
		UID: int(st.Uid),
		GID: int(st.Gid),
	}, nil
}
