package version

import (
	"runtime/debug"
)

var (
	Version  = "0.0.0-dev"
	Revision = ""
)

func init() {
	if Revision != "" {
		return
	}

	Revision = "unknown"

	info, ok := debug.ReadBuildInfo()
	if !ok {
		return
	}

	for _, s := range info.Settings {
		if s.Key == "vcs.revision" && s.Value != "" {
			Revision = s.Value
		}
	}
}

// String returns the version and revision as "version+revision".
func String() string {
	return Version + "+" + Revision
}
