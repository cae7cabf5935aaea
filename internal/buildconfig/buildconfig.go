package buildconfig

import (
	"fmt"
	"runtime"
)

// Set at link time:
//
//	-ldflags "-X github.com/Harshitk-cp/cuibono/internal/buildconfig.version=v1.2.0"
var (
	version = "dev"
	commit  = "unknown"
)

type Info struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	GoVersion string `json:"go_version"`
}

func Get() Info {
	return Info{Version: version, Commit: commit, GoVersion: runtime.Version()}
}

func (i Info) String() string {
	return fmt.Sprintf("cuibono %s (commit %s, %s)", i.Version, i.Commit, i.GoVersion)
}
