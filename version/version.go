// Package version provides build and version information for abibin. Values may be set with -ldflags at build time,
// otherwise they are read from the build information embedded by the Go toolchain.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"strings"
	"time"
)

var (
	// Version is the semantic version of the build.
	Version = "0.1.0"
	// GitCommit is the git commit hash.
	GitCommit = ""
	// GitCommitTime is the timestamp of the git commit, in RFC3339 format.
	GitCommitTime = ""
	// GitTreeDirty indicates if the git tree was dirty at build time.
	GitTreeDirty = ""
)

// Info contains the full version information for the build.
type Info struct {
	Version       string
	ModuleVersion string
	GitCommit     string
	GitCommitTime string
	GitTreeDirty  bool
	GoVersion     string
}

// buildSettings holds the VCS settings and module version read from the embedded build information.
var buildSettings = readBuildSettings()

// readBuildSettings reads the VCS settings and main module version from the embedded build information.
func readBuildSettings() map[string]string {
	settings := make(map[string]string)
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return settings
	}
	for _, kv := range info.Settings {
		settings[kv.Key] = kv.Value
	}

	// Binaries built by `go install module@version` carry the module version instead of VCS information
	if info.Main.Version != "" && info.Main.Version != "(devel)" {
		settings["module.version"] = info.Main.Version
	}
	return settings
}

// valueOr returns value if it is set, otherwise the named build setting.
func valueOr(value string, setting string) string {
	if value != "" {
		return value
	}
	return buildSettings[setting]
}

// GetInfo returns the complete version information.
func GetInfo() Info {
	return Info{
		Version:       Version,
		ModuleVersion: buildSettings["module.version"],
		GitCommit:     valueOr(GitCommit, "vcs.revision"),
		GitCommitTime: valueOr(GitCommitTime, "vcs.time"),
		GitTreeDirty:  valueOr(GitTreeDirty, "vcs.modified") == "true",
		GoVersion:     runtime.Version(),
	}
}

// commit returns the abbreviated commit hash, marked if the tree was dirty.
func (i Info) commit() string {
	commit := i.GitCommit
	if len(commit) > 7 {
		commit = commit[:7]
	}
	if commit != "" && i.GitTreeDirty {
		commit += "-dirty"
	}
	return commit
}

// String returns a formatted multi-line version string.
func (i Info) String() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("abibin version %s\n", i.Version))
	if i.ModuleVersion != "" {
		sb.WriteString(fmt.Sprintf("  Module:     %s\n", i.ModuleVersion))
	}
	if commit := i.commit(); commit != "" {
		sb.WriteString(fmt.Sprintf("  Commit:     %s\n", commit))
	}
	if i.GitCommitTime != "" {
		built := i.GitCommitTime
		if t, err := time.Parse(time.RFC3339, i.GitCommitTime); err == nil {
			built = t.Format("2006-01-02 15:04:05 MST")
		}
		sb.WriteString(fmt.Sprintf("  Built:      %s\n", built))
	}
	sb.WriteString(fmt.Sprintf("  Go version: %s\n", i.GoVersion))
	return sb.String()
}

// Short returns a single-line version string suitable for --version output.
func (i Info) Short() string {
	if commit := i.commit(); commit != "" {
		return i.Version + "+" + commit
	}
	return i.Version
}
