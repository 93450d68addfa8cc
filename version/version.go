// Package version holds build metadata injected at link time:
//
//	go build -ldflags "-X github.com/archibald-tools/archex/version.GitRelease=..."
package version

import "runtime"

var (
	// GitRelease is the release tag or branch the binary was built from.
	GitRelease = "dev"
	// GitCommit is the commit hash.
	GitCommit = "unknown"
	// GitCommitDate is the commit date.
	GitCommitDate = "unknown"
	// GoInfo is the Go toolchain version used for the build.
	GoInfo = runtime.Version()
)
