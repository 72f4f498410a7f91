package harness

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Exit codes of the deskfolio binary
const (
	// ExitError is returned when a command's Run fails
	ExitError = 1
	// ExitUsage is kong's code for command lines it cannot parse or validate
	ExitUsage = 80
)

// errorLinePrefix marks error lines in the scrollback printed by exec
const errorLinePrefix = "! "

// AssertSuccess verifies the command exited with 0
func AssertSuccess(tb testing.TB, result CommandResult) {
	tb.Helper()
	assert.Equal(tb, 0, result.ExitCode,
		"expected exit 0, got %d\nstdout: %s\nstderr: %s",
		result.ExitCode, result.Stdout, result.Stderr)
}

// AssertFailure verifies the command exited with any non-zero code
func AssertFailure(tb testing.TB, result CommandResult) {
	tb.Helper()
	assert.NotEqual(tb, 0, result.ExitCode,
		"expected a failure, got exit 0\nstdout: %s", result.Stdout)
}

// AssertExitCode verifies the exact exit code
func AssertExitCode(tb testing.TB, result CommandResult, expected int) {
	tb.Helper()
	assert.Equal(tb, expected, result.ExitCode,
		"expected exit %d, got %d\nstdout: %s\nstderr: %s",
		expected, result.ExitCode, result.Stdout, result.Stderr)
}

func AssertStdoutContains(tb testing.TB, result CommandResult, expected string) {
	tb.Helper()
	assert.Contains(tb, result.Stdout, expected)
}

func AssertStderrContains(tb testing.TB, result CommandResult, expected string) {
	tb.Helper()
	assert.Contains(tb, result.Stderr, expected)
}

// AssertStderrEmpty verifies nothing was written to stderr
func AssertStderrEmpty(tb testing.TB, result CommandResult) {
	tb.Helper()
	assert.Empty(tb, strings.TrimSpace(result.Stderr))
}

// AssertValidJSON unmarshals stdout into target
func AssertValidJSON(tb testing.TB, result CommandResult, target any) {
	tb.Helper()
	err := json.Unmarshal([]byte(result.Stdout), target)
	require.NoError(tb, err, "expected JSON on stdout: %s", result.Stdout)
}

// AssertScrollback verifies the lines appear consecutively in the printed scrollback
func AssertScrollback(tb testing.TB, result CommandResult, lines ...string) {
	tb.Helper()
	assert.Contains(tb, result.Stdout, strings.Join(lines, "\n")+"\n")
}

// AssertErrorLine verifies some error line in the scrollback starts with text
func AssertErrorLine(tb testing.TB, result CommandResult, text string) {
	tb.Helper()
	for _, line := range scrollbackLines(result) {
		if strings.HasPrefix(line, errorLinePrefix+text) {
			return
		}
	}
	assert.Fail(tb, "error line not found", "want %q in:\n%s", errorLinePrefix+text, result.Stdout)
}

// AssertNoErrorLines verifies no scrollback line is an error line
func AssertNoErrorLines(tb testing.TB, result CommandResult) {
	tb.Helper()
	for _, line := range scrollbackLines(result) {
		assert.False(tb, strings.HasPrefix(line, errorLinePrefix), "unexpected error line %q", line)
	}
}

func scrollbackLines(result CommandResult) []string {
	return strings.Split(strings.TrimRight(result.Stdout, "\n"), "\n")
}
