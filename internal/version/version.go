// Package version reports how a coolnes binary was built
package version

import (
	"fmt"
	"io"
	"runtime"
	"runtime/debug"
	"strings"
)

// Set at build time with -ldflags "-X coolnes/internal/version.Version=..."
var (
	Version   = "dev"
	GitCommit = ""
	BuildTime = ""
)

// Dependency is one module compiled into the binary
type Dependency struct {
	Path    string
	Version string
}

// BuildInfo describes the running binary
type BuildInfo struct {
	Version   string
	Commit    string
	Time      string
	Modified  bool
	GoVersion string
	Platform  string
	Deps      []Dependency
}

// Read collects build information. Values from -ldflags win over the VCS
// stamps the go command records.
func Read() BuildInfo {
	info := BuildInfo{
		Version:   Version,
		Commit:    GitCommit,
		Time:      BuildTime,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}

	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return info
	}
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			if info.Commit == "" {
				info.Commit = s.Value
			}
		case "vcs.time":
			if info.Time == "" {
				info.Time = s.Value
			}
		case "vcs.modified":
			info.Modified = s.Value == "true"
		}
	}
	for _, d := range bi.Deps {
		if d.Replace != nil {
			d = d.Replace
		}
		info.Deps = append(info.Deps, Dependency{Path: d.Path, Version: d.Version})
	}
	return info
}

// String gives a one-line summary, e.g. "coolnes 1.2.0 (3f2a9c1) go1.23.4 linux/amd64"
func (b BuildInfo) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "coolnes %s", b.Version)
	if b.Commit != "" {
		commit := b.Commit
		if len(commit) > 7 {
			commit = commit[:7]
		}
		if b.Modified {
			commit += ", modified"
		}
		fmt.Fprintf(&sb, " (%s)", commit)
	}
	fmt.Fprintf(&sb, " %s %s", b.GoVersion, b.Platform)
	return sb.String()
}

// PrintBuildInfo writes the summary line, the build time and the modules
// compiled in to w
func PrintBuildInfo(w io.Writer) {
	info := Read()

	fmt.Fprintln(w, info)
	if info.Time != "" {
		fmt.Fprintf(w, "built %s\n", info.Time)
	}
	for _, d := range info.Deps {
		fmt.Fprintf(w, "  %s %s\n", d.Path, d.Version)
	}
}
