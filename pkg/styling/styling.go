// Package styling generates the application stylesheets of a NativeScript
// project and registers the SCSS build dependency in its manifest.
package styling

import (
	"github.com/kdeps/schematics/pkg/logging"
	"github.com/kdeps/schematics/pkg/manifest"
	"github.com/kdeps/schematics/pkg/template"
	"github.com/kdeps/schematics/pkg/version"

	schematicerrors "github.com/kdeps/schematics/pkg/errors"
	"github.com/spf13/afero"
)

// Generate writes the stylesheets described by opts into fs and, for SCSS,
// adds the sass build dependency to the manifest.
//
// Option validation, the manifest check and rendering all happen before the
// first write, so a precondition failure leaves fs unchanged.
func Generate(fs afero.Fs, logger *logging.Logger, opts Options) error {
	if logger == nil {
		logger = logging.GetLogger()
	}
	logger = logger.With("extension", opts.Extension, "theme", opts.Theme)

	if err := opts.Validate(); err != nil {
		return err
	}

	pkg, err := manifest.Load(fs, opts.ManifestPath())
	if err != nil {
		return err
	}

	files, err := Plan(opts)
	if err != nil {
		return err
	}

	if !opts.Force {
		for _, f := range files {
			exists, err := afero.Exists(fs, f.Path)
			if err != nil {
				return schematicerrors.WrapError(err, schematicerrors.ErrCodeFileOperations, "failed to stat file").WithPath(f.Path)
			}
			if exists {
				return schematicerrors.NewFileExistsError(f.Path)
			}
		}
	}

	manifestChanged := false
	if opts.Extension == SCSS {
		manifestChanged, err = pkg.EnsureDependency(manifest.DevDependencies, version.DevSassPackage, version.DevSassVersion)
		if err != nil {
			return err
		}
	}

	for _, f := range files {
		if err := template.CreateFile(fs, logger, f.Path, f.Content); err != nil {
			return err
		}
	}

	if manifestChanged {
		template.PrintProgress("Updating file", pkg.Path)
		if err := pkg.Save(fs); err != nil {
			logger.Error("failed to update manifest", "path", pkg.Path, "error", err)
			return err
		}
		logger.Debug("manifest updated", "path", pkg.Path, "package", version.DevSassPackage)
	} else if opts.Extension == SCSS {
		logger.Debug("dependency already present", "package", version.DevSassPackage)
	}

	logger.Info("styling generated", "project", pkg.Name(), "dir", opts.StylesDir(), "files", len(files))
	return nil
}
