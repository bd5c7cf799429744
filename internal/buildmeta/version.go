// Package buildmeta holds build information injected with ldflags:
//
//	go build -ldflags="-X github.com/devantler-tech/jobplan/internal/buildmeta.Version=v1.0.0"
//
//nolint:gochecknoglobals
package buildmeta

var (
	// Version is the release the binary was built from.
	Version = "dev"
	// Commit is the Git SHA of the build.
	Commit = "none"
	// Date is the build timestamp.
	Date = "unknown"
)
