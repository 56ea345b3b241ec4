// Package constant defines immutable application-level identifiers and configuration defaults.
package constant

const (
	// App is the canonical application identifier used for filesystem paths and CLI branding.
	App = "bilidl"

	// Version is the current application semantic version string.
	Version = "1.0.4"

	// Repository is the GitHub slug used for release lookups.
	Repository = "bilidl/bilidl"
)

// Build metadata, injected with -ldflags at release time.
var (
	BuiltAt  = "unknown"
	BuiltBy  = "unknown"
	Revision = "unknown"
)
