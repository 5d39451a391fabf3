package version

import "os"

// Version is set at build time with -ldflags.
var Version = ""

func init() {
	if Version != "" {
		return
	}

	if v, ok := os.LookupEnv("HARNESS_VERSION"); ok && v != "" {
		Version = v
		return
	}
	Version = "latest"
}
