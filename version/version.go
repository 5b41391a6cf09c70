// Package version exposes build version information for userd.
package version

import (
	"fmt"
	"runtime/debug"
	"time"
)

// Version is set at build time via -ldflags. When left at "dev", VCS
// metadata embedded by the Go toolchain fills in the gaps.
var Version = "dev"

// Info is the resolved build identity.
type Info struct {
	Version   string    `json:"version"`
	GitCommit string    `json:"git_commit,omitempty"`
	GoVersion string    `json:"go_version,omitempty"`
	BuildDate time.Time `json:"build_date,omitempty"`
	Dirty     bool      `json:"dirty,omitempty"`
}

// Get resolves build identity from the ldflags value and the embedded
// build info.
func Get() Info {
	info := Info{Version: Version}

	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return info
	}
	info.GoVersion = bi.GoVersion
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			info.GitCommit = s.Value
			if len(info.GitCommit) > 7 {
				info.GitCommit = info.GitCommit[:7]
			}
		case "vcs.modified":
			info.Dirty = s.Value == "true"
		case "vcs.time":
			if t, err := time.Parse(time.RFC3339, s.Value); err == nil {
				info.BuildDate = t
			}
		}
	}
	return info
}

// Short returns a compact version string such as "dev-abc1234" or
// "1.2.0-abc1234-dirty".
func Short() string {
	info := Get()
	s := info.Version
	if info.GitCommit != "" {
		s = fmt.Sprintf("%s-%s", s, info.GitCommit)
	}
	if info.Dirty {
		s += "-dirty"
	}
	return s
}
