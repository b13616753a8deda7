package e2e

import (
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMultipleIdentifiers verifies that --count prints one identifier per
// line, all distinct.
func TestMultipleIdentifiers(t *testing.T) {
	stdout, stderr, exitCode := runNanoID(t, "--count", "50")
	t.Logf("Stderr: %s", stderr)

	assert.Equal(t, 0, exitCode, "nanoid should exit with code 0")

	lines := outputLines(stdout)
	require.Len(t, lines, 50, "Should print exactly fifty identifiers")

	seen := make(map[string]bool)
	for _, id := range lines {
		assert.Equal(t, defaultSize, utf8.RuneCountInString(id))
		assertFromAlphabet(t, id, defaultAlphabet)
		seen[id] = true
	}

	assert.Len(t, seen, 50, "All identifiers should be distinct")
}

// TestZeroCount verifies that --count 0 is rejected.
func TestZeroCount(t *testing.T) {
	stdout, stderr, exitCode := runNanoID(t, "--count", "0")
	t.Logf("Stderr: %s", stderr)

	assert.Equal(t, 1, exitCode, "nanoid should exit with code 1")
	assert.Empty(t, stdout, "No identifiers should be printed")
	assert.Contains(t, stderr, "count must be at least 1")
}
