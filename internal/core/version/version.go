// Package version reports the build stamp of a pillbox binary
package version

// BuildInfo holds version information about the service build
type BuildInfo struct {
	Service string `json:"service" example:"pillbox-api"`
	Version string `json:"version" example:"v0.1.0"`
	Commit  string `json:"commit"  example:"abcd123"`
	Date    string `json:"date"    example:"2026-10-01"`
}

// Set via -ldflags
//
//	-X 'pillbox/internal/core/version.version=v0.1.0'
//	-X 'pillbox/internal/core/version.commit=abcd123'
//	-X 'pillbox/internal/core/version.date=2026-10-01'
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// Info returns the build stamp for service; an empty service reports as pillbox
func Info(service string) BuildInfo {
	if service == "" {
		service = "pillbox"
	}
	return BuildInfo{
		Service: service,
		Version: version,
		Commit:  commit,
		Date:    date,
	}
}
