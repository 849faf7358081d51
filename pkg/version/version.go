// Package version provides build information for the codebundler CLI.
//
// The values are injected by the linker at release time and surface through
// the "codebundler version" command.
package version

import (
	"fmt"
	"runtime"
)

// These variables are populated at build time using -ldflags.
// Example:
// go build -ldflags "-X 'codebundler/pkg/version.Version=1.2.3' -X 'codebundler/pkg/version.Commit=abcdefg' -X 'codebundler/pkg/version.BuildTime=2026-01-02T15:04:05Z'"
var (
	Version   = "dev"     // Semantic version of the release.
	Commit    = "none"    // Git commit the binary was built from.
	BuildTime = "unknown" // RFC 3339 build timestamp.
)

// Info describes the running binary.
type Info struct {
	Version   string // Semantic version.
	GitCommit string // Git commit hash.
	BuildTime string // Build timestamp.
	GoVersion string // Go toolchain that compiled the binary.
	Platform  string // GOOS/GOARCH.
}

// Get returns the build information of the running binary.
func Get() Info {
	return Info{
		Version:   Version,
		GitCommit: Commit,
		BuildTime: BuildTime,
		GoVersion: runtime.Version(),
		Platform:  fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
	}
}

// String renders Info on a single line, for example:
//
//	codebundler version 1.2.3 (commit: abcdefg) built at 2026-01-02T15:04:05Z with go1.23.1 on linux/amd64
func (i Info) String() string {
	return fmt.Sprintf("codebundler version %s (commit: %s) built at %s with %s on %s",
		i.Version, i.GitCommit, i.BuildTime, i.GoVersion, i.Platform)
}
