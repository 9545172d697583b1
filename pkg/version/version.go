// Package version holds the CLI version, set at build time via ldflags.
package version

// Version is the stonkie CLI version. Overridden by the release pipeline with
// -ldflags "-X github.com/stonkie/stonkie/pkg/version.Version=vX.Y.Z".
var Version = "dev"
