package version

import "runtime/debug"

var (
	// Build-time parameters set via -ldflags
	Version = "unknown"
)

// Without -ldflags, as is the case with `go install
// github.com/leg100/tabbed@latest`, fall back to the module version embedded
// in the binary. It is only set by `go install`; `go build` leaves it as
// "(devel)".
func init() {
	if v := buildVersion(); v != "" {
		Version = v
	}
}

func buildVersion() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return ""
	}
	if v := info.Main.Version; v != "(devel)" {
		return v
	}
	return ""
}
