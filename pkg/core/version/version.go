// File: version.go
// Title: Build Version Information
// Description: Version constant plus commit and build date injected at link
//              time, with a fallback to the VCS stamp of the Go toolchain.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-15
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-15 v0.1.0: Initial implementation

package version

import (
	"runtime"
	"runtime/debug"
)

// Version is the stringops release
const Version = "0.1.0"

// Set with -ldflags "-X github.com/msto63/stringops/pkg/core/version.Commit=..."
var (
	Commit = ""
	Date   = ""
)

// Info describes the running binary
type Info struct {
	Version   string `json:"version"`
	Commit    string `json:"commit,omitempty"`
	Date      string `json:"date,omitempty"`
	GoVersion string `json:"go_version"`
	Platform  string `json:"platform"`
}

var readBuildInfo = debug.ReadBuildInfo

// Get collects the version information
func Get() Info {
	info := Info{
		Version:   Version,
		Commit:    Commit,
		Date:      Date,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}

	if info.Commit != "" && info.Date != "" {
		return info
	}
	bi, ok := readBuildInfo()
	if !ok {
		return info
	}
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			if info.Commit == "" {
				info.Commit = shortCommit(s.Value)
			}
		case "vcs.time":
			if info.Date == "" {
				info.Date = s.Value
			}
		}
	}
	return info
}

// String renders "stringops 0.1.0 (abc1234, 2026-10-15) go1.24 linux/amd64"
func (i Info) String() string {
	s := "stringops " + i.Version
	switch {
	case i.Commit != "" && i.Date != "":
		s += " (" + i.Commit + ", " + i.Date + ")"
	case i.Commit != "":
		s += " (" + i.Commit + ")"
	}
	return s + " " + i.GoVersion + " " + i.Platform
}

func shortCommit(rev string) string {
	if len(rev) > 7 {
		return rev[:7]
	}
	return rev
}
