package version

import (
	"runtime"
	"runtime/debug"
)

// Set at link time:
//
//	go build -ldflags "-X golang-devtools/internal/pkg/version.tag=$(git describe --tags --abbrev=0) \
//	  -X golang-devtools/internal/pkg/version.branch=$(git rev-parse --abbrev-ref HEAD)"
var (
	commit string
	branch string
	tag    string
	dirty  string
)

type gitInfo struct {
	Commit    string `json:"commit" yaml:"commit"`
	Branch    string `json:"branch" yaml:"branch"`
	Tag       string `json:"tag" yaml:"tag"`
	Dirty     bool   `json:"dirty" yaml:"dirty"`
	GoVersion string `json:"go_version" yaml:"go_version"`
}

// GetGitInfo returns the git metadata of the binary. Values not injected by
// the linker fall back to the VCS stamp recorded by the Go toolchain.
func GetGitInfo() gitInfo {
	info := gitInfo{
		Commit:    commit,
		Branch:    branch,
		Tag:       tag,
		Dirty:     dirty == "dirty" || dirty == "true",
		GoVersion: runtime.Version(),
	}

	if bi, ok := debug.ReadBuildInfo(); ok {
		fillFromBuildInfo(&info, bi)
	}

	if info.Tag == "" {
		info.Tag = "none"
	}
	if info.Commit == "" {
		info.Commit = "unknown"
	}
	if info.Branch == "" {
		info.Branch = "unknown"
	}
	return info
}

func fillFromBuildInfo(info *gitInfo, bi *debug.BuildInfo) {
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			if info.Commit == "" {
				info.Commit = s.Value
			}
		case "vcs.modified":
			if dirty == "" {
				info.Dirty = s.Value == "true"
			}
		}
	}
	if info.Tag == "" && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
		info.Tag = bi.Main.Version
	}
}
