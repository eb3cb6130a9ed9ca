// Package version carries build metadata injected with -ldflags -X.
package version

import (
	"fmt"
	"runtime/debug"
)

// Build metadata. Release builds override these with
// -ldflags "-X github.com/Sumatoshi-tech/astbridge/pkg/version.Version=...".
var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

// String renders the metadata in the form printed by the version command.
func String() string {
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, resolvedCommit(), Date)
}

// resolvedCommit falls back to the VCS revision embedded by the Go toolchain
// when no commit was injected.
func resolvedCommit() string {
	if Commit != "unknown" {
		return Commit
	}

	info, ok := debug.ReadBuildInfo()
	if !ok {
		return Commit
	}

	for _, setting := range info.Settings {
		if setting.Key == "vcs.revision" && setting.Value != "" {
			return setting.Value
		}
	}

	return Commit
}
