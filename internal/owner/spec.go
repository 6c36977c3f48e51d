//go:build unix

// Package owner parses ownership specifications and changes file ownership.
package owner

import (
	"errors"
	"fmt"
	"os/user"
	"strconv"
	"strings"
)

// Unchanged is the id that leaves an owner or group as it is.
const Unchanged = -1

// Spec is a resolved OWNER[:GROUP] specification.
type Spec struct {
	UID int
	GID int
}

// IsZero reports whether s changes nothing.
func (s Spec) IsZero() bool {
	return s.UID == Unchanged && s.GID == Unchanged
}

// Matches reports whether a file owned by uid and gid satisfies s,
// where an Unchanged field matches anything.
func (s Spec) Matches(uid, gid int) bool {
	return (s.UID == Unchanged || s.UID == uid) && (s.GID == Unchanged || s.GID == gid)
}

// ErrInvalidSpec is returned for an owner or group that cannot be resolved.
var ErrInvalidSpec = errors.New("invalid spec")

func lookupUser(name string) (*user.User, error) {
	u, err := user.Lookup(name)
	if err == nil {
		return u, nil
	}

	if _, numErr := strconv.Atoi(name); numErr != nil {
		return nil, fmt.Errorf("%w: invalid user: %q", ErrInvalidSpec, name)
	}

	if u, err := user.LookupId(name); err == nil {
		return u, nil
	}

	// A numeric id with no passwd entry.
	return &user.User{Uid: name}, nil
}

func lookupGroup(name string) (int, error) {
	if g, err := user.LookupGroup(name); err == nil {
		return strconv.Atoi(g.Gid)
	}

	gid, err := strconv.Atoi(name)
	if err != nil || gid < 0 {
		return 0, fmt.Errorf("%w: invalid group: %q", ErrInvalidSpec, name)
	}

	return gid, nil
}

// ParseSpec resolves OWNER, OWNER:GROUP, OWNER: (the owner's login group)
// or :GROUP. Names are looked up first, then taken as numeric ids.
func ParseSpec(s string) (Spec, error) {
	spec := Spec{
		UID: Unchanged,
		GID: Unchanged,
	}

	owner, group, hasColon := strings.Cut(s, ":")

	if owner != "" {
		u, err := lookupUser(owner)
		if err != nil {
			return spec, err
		}

		uid, err := strconv.Atoi(u.Uid)
		if err != nil || uid < 0 {
			return spec, fmt.Errorf("%w: invalid user: %q", ErrInvalidSpec, owner)
		}
		spec.UID = uid

		if hasColon && group == "" {
			if u.Gid == "" {
				return spec, fmt.Errorf("%w: no login group for %q", ErrInvalidSpec, owner)
			}

			if spec.GID, err = strconv.Atoi(u.Gid); err != nil {
				return spec, fmt.Errorf("%w: %v", ErrInvalidSpec, err)
			}
		}
	}

	if group != "" {
		gid, err := lookupGroup(group)
		if err != nil {
			return spec, err
		}
		spec.GID = gid
	}

	return spec, nil
}

func userName(uid int) string {
	id := strconv.Itoa(uid)

	if u, err := user.LookupId(id); err == nil {
		return u.Username
	}

	return id
}

func groupName(gid int) string {
	id := strconv.Itoa(gid)

	if g, err := user.LookupGroupId(id); err == nil {
		return g.Name
	}

	return id
}
