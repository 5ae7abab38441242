package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInfoShort(t *testing.T) {
	info := Info{Version: "0.1.0"}
	assert.Equal(t, "0.1.0", info.Short())

	info.GitCommit = "0123456789abcdef"
	assert.Equal(t, "0.1.0+0123456", info.Short())

	info.GitTreeDirty = true
	assert.Equal(t, "0.1.0+0123456-dirty", info.Short())
}

func TestInfoString(t *testing.T) {
	info := Info{
		Version:       "0.1.0",
		GitCommit:     "0123456789abcdef",
		GitCommitTime: "2026-01-02T03:04:05Z",
		GoVersion:     "go1.23.3",
	}
	s := info.String()
	assert.Contains(t, s, "abibin version 0.1.0\n")
	assert.Contains(t, s, "Commit:     0123456\n")
	assert.Contains(t, s, "Built:      2026-01-02 03:04:05 UTC\n")
	assert.Contains(t, s, "Go version: go1.23.3\n")
	assert.NotContains(t, s, "Module:")
}
