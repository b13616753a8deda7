package e2e

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// runNanoID executes the nanoid binary with the given arguments
// Returns stdout, stderr, and the exit code
func runNanoID(t *testing.T, args ...string) (stdout string, stderr string, exitCode int) {
	t.Helper()

	cmd := exec.Command(env.binaryPath, args...)

	var outBuf, errBuf bytes.Buffer
	cmd.Stdout = &outBuf
	cmd.Stderr = &errBuf

	err := cmd.Run()
	stdout = outBuf.String()
	stderr = errBuf.String()

	if err != nil {
		if exitError, ok := err.(*exec.ExitError); ok {
			return stdout, stderr, exitError.ExitCode()
		}
		t.Fatalf("Failed to run nanoid: %v\nStderr: %s", err, stderr)
	}

	return stdout, stderr, 0
}

// createConfig creates a temporary config file with the given content
func createConfig(t *testing.T, name string, content string) string {
	t.Helper()

	configPath := filepath.Join(configTempDir, fmt.Sprintf("nanoid_test_%s.yaml", name))

	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to create config file: %v", err)
	}

	t.Cleanup(func() {
		os.Remove(configPath)
	})

	return configPath
}

// outputLines splits stdout into the lines the binary printed,
// dropping the final line terminator
func outputLines(stdout string) []string {
	if stdout == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(stdout, "\n"), "\n")
}

// assertFromAlphabet asserts that every symbol of id belongs to alphabet
func assertFromAlphabet(t *testing.T, id string, alphabet string, msgAndArgs ...interface{}) {
	t.Helper()

	allowed := make(map[rune]bool)
	for _, symbol := range alphabet {
		allowed[symbol] = true
	}

	for _, symbol := range id {
		if !allowed[symbol] {
			assert.Fail(t, fmt.Sprintf("symbol %q is not in alphabet %q", symbol, alphabet), msgAndArgs...)
			return
		}
	}
}
