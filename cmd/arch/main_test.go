//go:build unix

package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMachine(t *testing.T) {
	t.Parallel()

	m, err := machine()
	require.NoError(t, err)
	assert.NotEmpty(t, m)
	assert.NotContains(t, m, "\x00")
}
