package version

import "fmt"

// Application version information
var (
	Version = "dev"
	Commit  = ""
)

// Package version constants written into generated projects
const (
	// Theming library referenced by generated stylesheets
	ThemePackage = "nativescript-theme-core"

	// Build-time SCSS support added to devDependencies
	DevSassPackage = "nativescript-dev-sass"
	DevSassVersion = "^1.6.0"
)

// String returns the version with the commit appended when known.
func String() string {
	if Commit == "" {
		return Version
	}
	return fmt.Sprintf("%s (%s)", Version, Commit)
}
