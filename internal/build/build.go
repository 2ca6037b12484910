// Package build holds build-time information.
package build

// Version, Commit and Date describe the binary.
// They default to development values and are overwritten by linker flags:
//
//	-ldflags "-X go.trai.ch/devrun/internal/build.Version=v1.2.0"
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)
