package vcs

import (
	"fmt"
	"runtime/debug"
)

// Version reports the VCS revision the binary was built from, with a -dirty
// suffix for modified trees. It falls back to the module version.
func Version() string {
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return ""
	}

	var (
		revision string
		modified bool
	)

	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			revision = s.Value
		case "vcs.modified":
			modified = s.Value == "true"
		}
	}

	if revision == "" {
		return bi.Main.Version
	}

	if modified {
		return fmt.Sprintf("%s-dirty", revision)
	}

	return revision
}
