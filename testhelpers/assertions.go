package testhelpers

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// Must is a generic helper function that panics if err is not nil,
// otherwise returns the value. Useful in test setup where errors are not expected.
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// Lines splits output into trimmed, non-empty lines
func Lines(output string) []string {
	var lines []string
	for _, line := range strings.Split(output, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// ExpectLines asserts that output starts with the expected lines, ignoring blank lines
func ExpectLines(t *testing.T, output string, expected ...string) {
	t.Helper()

	actual := Lines(output)
	if len(actual) < len(expected) {
		require.Fail(t, "Not enough output lines", "Expected %d lines, got %d:\n%s", len(expected), len(actual), output)
		return
	}
	require.Equal(t, expected, actual[:len(expected)], "Output does not match")
}

// ExpectSuccess asserts that the binary exited cleanly
func ExpectSuccess(t *testing.T, res Result) {
	t.Helper()
	require.Equal(t, 0, res.ExitCode, "stdout:\n%s\nstderr:\n%s", res.Stdout, res.Stderr)
}

// ExpectFailure asserts that the binary exited with status 1
func ExpectFailure(t *testing.T, res Result) {
	t.Helper()
	require.Equal(t, 1, res.ExitCode, "stdout:\n%s\nstderr:\n%s", res.Stdout, res.Stderr)
}
