package template

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"text/template"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	schematicerrors "github.com/kdeps/schematics/pkg/errors"
	"github.com/kdeps/schematics/pkg/logging"
	"github.com/kdeps/schematics/templates"
	"github.com/spf13/afero"
)

var (
	lightBlue  = lipgloss.NewStyle().Foreground(lipgloss.Color("#6495ED")).Bold(true)
	lightGreen = lipgloss.NewStyle().Foreground(lipgloss.Color("#90EE90")).Bold(true)

	// Output receives progress lines. Set to io.Discard to silence them.
	Output io.Writer = os.Stdout

	// Dir names a directory whose templates replace the embedded ones.
	Dir string
)

func printWithDots(message string) {
	fmt.Fprint(Output, lightBlue.Render(message))
	fmt.Fprintln(Output, "...")
}

// PrintProgress writes a progress line such as "Creating file: app.css...".
func PrintProgress(action, path string) {
	printWithDots(action + ": " + lightGreen.Render(path))
}

func readTemplate(name string) ([]byte, error) {
	if dir := Dir; dir != "" {
		content, err := os.ReadFile(filepath.Join(dir, filepath.FromSlash(name)))
		if err == nil {
			return content, nil
		}
		if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("failed to read template from disk: %w", err)
		}
	}

	content, err := templates.TemplatesFS.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded template: %w", err)
	}
	return content, nil
}

// Render executes the named template with data. Templates are looked up in
// Dir first, falling back to the embedded set.
func Render(name string, data any) (string, error) {
	content, err := readTemplate(name)
	if err != nil {
		return "", schematicerrors.WrapError(err, schematicerrors.ErrCodeTemplate, "failed to load template").WithPath(name)
	}

	tmpl, err := template.New(path.Base(name)).Option("missingkey=error").Parse(string(content))
	if err != nil {
		return "", schematicerrors.WrapError(err, schematicerrors.ErrCodeTemplate, "failed to parse template file").WithPath(name)
	}

	var output bytes.Buffer
	if err := tmpl.Execute(&output, data); err != nil {
		return "", schematicerrors.WrapError(err, schematicerrors.ErrCodeTemplate, "failed to execute template").WithPath(name)
	}
	return output.String(), nil
}

// CreateDirectory creates path and any missing parents.
func CreateDirectory(fs afero.Fs, logger *logging.Logger, path string) error {
	if path == "" {
		err := errors.New("directory path cannot be empty")
		logger.Error(err)
		return err
	}
	if err := fs.MkdirAll(path, 0o755); err != nil {
		logger.Error("failed to create directory", "path", path, "error", err)
		return schematicerrors.WrapError(err, schematicerrors.ErrCodeFileOperations, "failed to create directory").WithPath(path)
	}
	return nil
}

// CreateFile writes content to path, creating parent directories.
func CreateFile(fs afero.Fs, logger *logging.Logger, path string, content string) error {
	if path == "" {
		return errors.New("file path cannot be empty")
	}
	if err := CreateDirectory(fs, logger, filepath.Dir(path)); err != nil {
		return err
	}
	PrintProgress("Creating file", path)
	if err := afero.WriteFile(fs, path, []byte(content), 0o644); err != nil {
		logger.Error("failed to write file", "path", path, "error", err)
		return schematicerrors.WrapError(err, schematicerrors.ErrCodeFileOperations, "failed to write file").WithPath(path)
	}
	logger.Debug("file created", "path", path, "size", humanize.Bytes(uint64(len(content))))
	return nil
}
