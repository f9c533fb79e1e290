// Package gntaxa holds build metadata for the gntaxa application.
package gntaxa

var (
	// Version is the application version, set by build flags.
	Version = "dev"

	// Build is the build timestamp, set by build flags.
	Build = "n/a"
)
