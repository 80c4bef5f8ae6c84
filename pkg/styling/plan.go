package styling

import (
	"path/filepath"

	"github.com/kdeps/schematics/pkg/template"
	"github.com/kdeps/schematics/pkg/version"
)

// File is one generated stylesheet.
type File struct {
	Path    string
	Content string
}

type fileSpec struct {
	name         string
	template     string
	platform     string
	platformName string
}

var (
	cssFiles = []fileSpec{
		{name: "app.css", template: "styling/app.css.tmpl"},
	}
	scssFiles = []fileSpec{
		{name: "app.android.scss", template: "styling/app.platform.scss.tmpl", platform: "android", platformName: "Android"},
		{name: "app.ios.scss", template: "styling/app.platform.scss.tmpl", platform: "ios", platformName: "iOS"},
		{name: "_app-common.scss", template: "styling/_app-common.scss.tmpl"},
		{name: "_app-variables.scss", template: "styling/_app-variables.scss.tmpl"},
	}
)

type templateData struct {
	Theme        bool
	ThemePackage string
	Platform     string
	PlatformName string
}

// Plan renders the stylesheets for opts in write order. It has no side
// effects.
func Plan(opts Options) ([]File, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	specs := cssFiles
	if opts.Extension == SCSS {
		specs = scssFiles
	}

	files := make([]File, 0, len(specs))
	for _, spec := range specs {
		content, err := template.Render(spec.template, templateData{
			Theme:        opts.Theme,
			ThemePackage: version.ThemePackage,
			Platform:     spec.platform,
			PlatformName: spec.platformName,
		})
		if err != nil {
			return nil, err
		}
		files = append(files, File{
			Path:    filepath.Join(opts.StylesDir(), spec.name),
			Content: content,
		})
	}
	return files, nil
}
