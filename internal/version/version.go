package version

import "fmt"

// These variables are set at build time using -ldflags
// Example: go build -ldflags "-X github.com/alexiusacademia/gobbs/internal/version.Version=1.0.0"
var (
	// Version is the semantic version of the application
	Version = "0.4.0"

	// BuildTime is the time the binary was built (set via ldflags)
	BuildTime = "unknown"

	// GitCommit is the git commit hash (set via ldflags)
	GitCommit = "unknown"

	// Author of the application
	Author = "Alexius Academia"

	// Year of release
	Year = "2026"
)

// Info returns the version line printed by the CLI
func Info() string {
	return fmt.Sprintf("gobbs v%s (commit %s, built %s)", Version, GitCommit, BuildTime)
}
