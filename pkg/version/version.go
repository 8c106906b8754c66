// Package version exposes the build version of the carbontrack binary.
package version

// version is set at build time via
// -ldflags "-X github.com/ecotrace/carbontrack/pkg/version.version=v1.2.3".
//
//nolint:gochecknoglobals // Build-time injected value.
var version = "dev"

// GetVersion returns the binary's version string.
func GetVersion() string {
	return version
}
