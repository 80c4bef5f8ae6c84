package styling

import (
	"path/filepath"
	"strings"

	schematicerrors "github.com/kdeps/schematics/pkg/errors"
	"github.com/kdeps/schematics/pkg/manifest"
)

// Extension selects the stylesheet language.
type Extension string

const (
	CSS  Extension = "css"
	SCSS Extension = "scss"
)

// Extensions lists the supported values in prompt order.
var Extensions = []Extension{CSS, SCSS}

// ParseExtension accepts "css" or "scss" in any case.
func ParseExtension(s string) (Extension, error) {
	ext := Extension(strings.ToLower(strings.TrimSpace(s)))
	if !ext.Valid() {
		return "", schematicerrors.NewInvalidOptionsError("unsupported extension %q, expected css or scss", s)
	}
	return ext, nil
}

// Valid reports whether e is a supported extension.
func (e Extension) Valid() bool {
	return e == CSS || e == SCSS
}

func (e Extension) String() string { return string(e) }

// Options configures one styling generation.
type Options struct {
	AppPath   string
	SourceDir string
	Extension Extension
	Theme     bool
	// Force overwrites stylesheets that already exist.
	Force bool
}

// Validate checks the options without touching any filesystem.
func (o Options) Validate() error {
	if !o.Extension.Valid() {
		return schematicerrors.NewInvalidOptionsError("unsupported extension %q, expected css or scss", string(o.Extension))
	}
	if strings.TrimSpace(o.AppPath) == "" {
		return schematicerrors.NewInvalidOptionsError("app path cannot be empty")
	}
	if filepath.IsAbs(o.SourceDir) {
		return schematicerrors.NewInvalidOptionsError("source directory %q must be relative to the app path", o.SourceDir)
	}
	if clean := filepath.Clean(o.SourceDir); clean == ".." || strings.HasPrefix(clean, ".."+string(filepath.Separator)) {
		return schematicerrors.NewInvalidOptionsError("source directory %q escapes the app path", o.SourceDir)
	}
	return nil
}

// StylesDir is where stylesheets are written.
func (o Options) StylesDir() string {
	return filepath.Join(o.AppPath, o.SourceDir)
}

// ManifestPath is the project's package.json.
func (o Options) ManifestPath() string {
	return filepath.Join(o.AppPath, manifest.FileName)
}
