//go:build unit

package version

import (
	"runtime"
	"runtime/debug"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetGitInfo(t *testing.T) {
	info := GetGitInfo()
	assert.Equal(t, runtime.Version(), info.GoVersion)
	assert.NotEmpty(t, info.Commit)
	assert.NotEmpty(t, info.Branch)
	assert.NotEmpty(t, info.Tag)
}

func TestFillFromBuildInfo(t *testing.T) {
	bi := &debug.BuildInfo{
		Main: debug.Module{Version: "v1.2.3"},
		Settings: []debug.BuildSetting{
			{Key: "vcs.revision", Value: "abc123"},
			{Key: "vcs.modified", Value: "true"},
		},
	}

	t.Run("EmptyInfo", func(t *testing.T) {
		info := gitInfo{}
		fillFromBuildInfo(&info, bi)
		assert.Equal(t, "abc123", info.Commit)
		assert.Equal(t, "v1.2.3", info.Tag)
		assert.True(t, info.Dirty)
	})

	t.Run("LinkerValuesWin", func(t *testing.T) {
		info := gitInfo{Commit: "fromldflags", Tag: "v9"}
		fillFromBuildInfo(&info, bi)
		assert.Equal(t, "fromldflags", info.Commit)
		assert.Equal(t, "v9", info.Tag)
	})

	t.Run("DevelVersionIgnored", func(t *testing.T) {
		info := gitInfo{}
		fillFromBuildInfo(&info, &debug.BuildInfo{Main: debug.Module{Version: "(devel)"}})
		assert.Empty(t, info.Tag)
	})
}
