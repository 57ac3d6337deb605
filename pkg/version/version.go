// Package version holds build metadata, set with -ldflags at release time.
package version

var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// String formats the build metadata for `splitdiff version`.
func String() string {
	return "splitdiff " + Version + " (" + Commit + ") built " + Date
}
