// Package buildinfo provides build metadata for the crcutil binary.
package buildinfo

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

var (
	// Version is the crcutil version and is intended to be injected at build time.
	Version string
	// Commit is the source control revision and is intended to be injected at build time.
	Commit string
	// Date is the build timestamp and is intended to be injected at build time.
	Date string
)

// Info contains normalized build metadata.
type Info struct {
	Version string
	Commit  string
	Date    string
	Go      string
	OS      string
	Arch    string
}

// Get returns build metadata. Values injected through ldflags win; module
// and VCS data embedded by the toolchain fill any gaps, then fixed defaults.
func Get() Info {
	info := Info{
		Version: Version,
		Commit:  Commit,
		Date:    Date,
		Go:      runtime.Version(),
		OS:      runtime.GOOS,
		Arch:    runtime.GOARCH,
	}

	if embedded, ok := debug.ReadBuildInfo(); ok {
		info.fillFromBuild(embedded)
	}
	info.fillDefaults()

	return info
}

// fillFromBuild copies toolchain-embedded metadata into unset fields.
func (i *Info) fillFromBuild(embedded *debug.BuildInfo) {
	if i.Version == "" && embedded.Main.Version != "" && embedded.Main.Version != "(devel)" {
		i.Version = embedded.Main.Version
	}

	for _, setting := range embedded.Settings {
		switch setting.Key {
		case "vcs.revision":
			if i.Commit == "" {
				i.Commit = setting.Value
			}
		case "vcs.time":
			if i.Date == "" {
				i.Date = setting.Value
			}
		}
	}
}

func (i *Info) fillDefaults() {
	if i.Version == "" {
		i.Version = "dev"
	}
	if i.Commit == "" {
		i.Commit = "unknown"
	}
	if i.Date == "" {
		i.Date = "unknown"
	}
}

// String formats build metadata for CLI output.
func (i Info) String() string {
	return fmt.Sprintf("CrcUtil %s\ncommit: %s\nbuilt:  %s\ngo:     %s\nos/arch:%s/%s", i.Version, i.Commit, i.Date, i.Go, i.OS, i.Arch)
}
