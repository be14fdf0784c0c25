// Package version reports the version of the program. The version number is
// set at link time by the makefile and the revision is taken from the VCS
// information embedded by the Go toolchain.
package version

import (
	"fmt"
	"runtime/debug"
)

// ApplicationName is the name to use when referring to the application
const ApplicationName = "Up/Down Trainer"

// set with -ldflags "-X github.com/jetsetilly/updown/version.number=v0.1.0"
var number string

var (
	version  string
	revision string
)

// Version returns the version string, the revision string and whether this
// is a numbered release.
//
// The version string is "unreleased" if the program was built without a
// version number but with VCS information, and "local" if there is neither.
// This can happen when running with "go run ."
func Version() (string, string, bool) {
	return version, revision, number != "" && version == number
}

// Title returns a string suitable for a window title
func Title() string {
	ver, rev, rel := Version()
	if rel {
		return fmt.Sprintf("%s (%s)", ApplicationName, ver)
	}
	return fmt.Sprintf("%s (%s)", ApplicationName, rev)
}

func readRevision(settings []debug.BuildSetting) (rev string, vcs bool) {
	var modified bool
	for _, v := range settings {
		switch v.Key {
		case "vcs":
			vcs = true
		case "vcs.revision":
			rev = v.Value
		case "vcs.modified":
			modified = v.Value == "true"
		}
	}

	if rev == "" {
		return "no revision information", vcs
	}
	if modified {
		rev = fmt.Sprintf("%s+dirty", rev)
	}
	return rev, vcs
}

func init() {
	var vcs bool

	if info, ok := debug.ReadBuildInfo(); ok {
		revision, vcs = readRevision(info.Settings)
	} else {
		revision, _ = readRevision(nil)
	}

	switch {
	case number != "":
		version = number
	case vcs:
		version = "unreleased"
	default:
		version = "local"
	}
}
