// Package version holds build metadata injected at compile time via ldflags.
package version

import "fmt"

var (
	// Version is the semantic version of the binary
	Version = "dev"

	// Commit is the git commit the binary was built from
	Commit = "unknown"

	// Date is the build timestamp
	Date = "unknown"
)

// String returns a single-line description of the build
func String() string {
	return fmt.Sprintf("NanoID %s (commit: %s, built: %s)", Version, Commit, Date)
}
