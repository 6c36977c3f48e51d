//go:build unix

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/puellanivis/coreutils/internal/owner"
)

func TestTarget(t *testing.T) {
	spec, files, err := target([]string{"54321:54322", "a", "b"})
	require.NoError(t, err)
	assert.Equal(t, owner.Spec{UID: 54321, GID: 54322}, spec)
	assert.Equal(t, []string{"a", "b"}, files)

	_, _, err = target([]string{"54321"})
	assert.ErrorIs(t, err, errMissingOperand)
}

func TestTargetReference(t *testing.T) {
	ref := filepath.Join(t.TempDir(), "ref")
	require.NoError(t, os.WriteFile(ref, nil, 0o644))

	Flags.Reference = ref
	defer func() { Flags.Reference = "" }()

	spec, files, err := target([]string{"a"})
	require.NoError(t, err)
	assert.Equal(t, os.Getuid(), spec.UID)
	assert.Equal(t, []string{"a"}, files)

	_, _, err = target(nil)
	assert.ErrorIs(t, err, errMissingOperand)
}

func TestVerbosity(t *testing.T) {
	Flags.Changes = true
	defer func() { Flags.Changes = false }()

	assert.Equal(t, owner.Changes, verbosity())
}
