// Package version exposes build information for the skillreg binary.
package version

import (
	"encoding/json"
	"fmt"
	"runtime"

	"github.com/pkg/errors"

	"github.com/skillreg/skillreg/pkg/skills"
)

var (
	// Version is set at build time with -ldflags
	Version = "dev"
	// GitCommit is the git commit SHA that was built
	GitCommit = "unknown"
	// BuildTime is the time the binary was built
	BuildTime = "unknown"
)

// Info represents version information
type Info struct {
	Version       string   `json:"version"`
	GitCommit     string   `json:"gitCommit"`
	BuildTime     string   `json:"buildTime"`
	GoVersion     string   `json:"goVersion"`
	BundledSkills []string `json:"bundledSkills"`
}

// Get returns the version information
func Get() Info {
	return Info{
		Version:       Version,
		GitCommit:     GitCommit,
		BuildTime:     BuildTime,
		GoVersion:     runtime.Version(),
		BundledSkills: skills.BundledNames(),
	}
}

func (i Info) String() string {
	return fmt.Sprintf("Version: %s, GitCommit: %s, BuildTime: %s, GoVersion: %s, BundledSkills: %d",
		i.Version, i.GitCommit, i.BuildTime, i.GoVersion, len(i.BundledSkills))
}

// JSON returns the indented JSON representation of the version info
func (i Info) JSON() (string, error) {
	bytes, err := json.MarshalIndent(i, "", "  ")
	if err != nil {
		return "", errors.Wrap(err, "failed to marshal version info")
	}
	return string(bytes), nil
}
