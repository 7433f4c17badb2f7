package version

import "fmt"

// set via ldflags on release builds
var (
	Version   = "dev"
	GitCommit = "none"
	BuildDate = "unknown"
)

var FullVersion = fmt.Sprintf("%s (%s built %s)", Version, GitCommit, BuildDate)
