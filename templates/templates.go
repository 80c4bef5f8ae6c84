package templates

import (
	"embed"
)

// Embed the templates directory.
//
//go:embed styling/*.tmpl
var TemplatesFS embed.FS
