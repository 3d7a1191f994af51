package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_Singly(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, run(&buf, "singly", 1, 0))

	out := buf.String()
	assert.Contains(t, out, "The list data is: [0, 1, 2, 3, 4, 5, 6, 7, 8, 9]")
	assert.Contains(t, out, "The list data is: [99, 0, 1, 2, 3, 4, 5, 6, 7, 8, 9]")
	assert.Contains(t, out, "The list data is: [99, 0, 1, 2, 3, 55, 4, 5, 6, 7, 8, 9]")
	assert.Contains(t, out, "Rejected: list: remove at index 11 out of range (size 11)")
}

func TestRun_SortIsDeterministic(t *testing.T) {
	var a, b bytes.Buffer
	require.NoError(t, run(&a, "sort", 42, 10))
	require.NoError(t, run(&b, "sort", 42, 10))

	assert.Equal(t, a.String(), b.String(), "same seed must give the same output")
	assert.Contains(t, a.String(), "The list size is now: 11")
}

func TestRun_Circular(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, run(&buf, "circular", 0, 0))

	out := buf.String()
	assert.Contains(t, out, "The ring data is: [0, 1, 2, 3, 4]")
	assert.Contains(t, out, "First: 0  middle: 2  index 5 wraps to: 0")
	assert.Contains(t, out, "The head value is: 0 and the last node points to: 0")
	assert.True(t, strings.HasSuffix(out, "[4]\n[]\n"))
}

func TestRun_All(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, run(&buf, "all", 7, 3))
	assert.Contains(t, buf.String(), "Draining nodes ...")
}

func TestRun_Errors(t *testing.T) {
	var buf bytes.Buffer
	assert.ErrorContains(t, run(&buf, "bogus", 0, 0), `unknown mode "bogus"`)
	assert.ErrorContains(t, run(&buf, "sort", 0, -1), "non-negative")
}
