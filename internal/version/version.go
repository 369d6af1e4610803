// Package version carries the build version, set via
// -ldflags "-X nucleo/internal/version.Version=v1.2.3".
package version

import "runtime/debug"

// Version is overwritten at link time; "dev" otherwise.
var Version = "dev"

// String prefers the link-time version and falls back to module build info.
func String() string {
	if Version != "dev" {
		return Version
	}
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}
	return Version
}
