// Package version exposes build metadata, set at link time through -ldflags.
package version

//nolint:gochecknoglobals // overridden by -ldflags -X
var (
	name    = "baseline-report"
	version = "dev"
	commit  = "unknown"
)

// Name returns the binary name.
func Name() string {
	return name
}

// Version returns the release version, or "dev" for local builds.
func Version() string {
	return version
}

// Commit returns the git commit the binary was built from.
func Commit() string {
	return commit
}
