package app

import (
	"fmt"
	"runtime/debug"
)

// Build metadata, set through ldflags:
//
//	go build -ldflags "-X github.com/sectorflow/demand-service/internal/app.Version=1.0.0"
var (
	Version   = "dev"
	Commit    = ""
	BuildTime = ""
)

// BuildVersion formats the build metadata for startup logs, /health and the
// migrate CLI. Commit and build time fall back to the VCS stamp embedded by
// the go tool when ldflags did not set them.
func BuildVersion() string {
	commit, built := Commit, BuildTime
	if commit == "" || built == "" {
		if info, ok := debug.ReadBuildInfo(); ok {
			c, b := vcsStamp(info.Settings)
			if commit == "" {
				commit = c
			}
			if built == "" {
				built = b
			}
		}
	}
	return formatVersion(Version, commit, built)
}

func vcsStamp(settings []debug.BuildSetting) (revision, at string) {
	for _, s := range settings {
		switch s.Key {
		case "vcs.revision":
			revision = s.Value
			if len(revision) > 12 {
				revision = revision[:12]
			}
		case "vcs.time":
			at = s.Value
		}
	}
	return revision, at
}

func formatVersion(version, commit, built string) string {
	if commit == "" {
		commit = "unknown"
	}
	if built == "" {
		built = "unknown"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, built)
}
