package e2e

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestVersionFlag verifies that --version prints the injected build
// information and exits successfully.
func TestVersionFlag(t *testing.T) {
	stdout, stderr, exitCode := runNanoID(t, "--version")
	t.Logf("Stdout: %s", stdout)

	assert.Equal(t, 0, exitCode, "nanoid should exit with code 0")
	assert.Empty(t, stderr, "Version output should not log to stderr")

	assert.Contains(t, stdout, "NanoID", "Output should name the tool")
	assert.Contains(t, stdout, "e2e-test", "Output should contain the injected version")
	assert.Contains(t, stdout, "commit", "Output should contain the commit")
}
