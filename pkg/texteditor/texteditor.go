package texteditor

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/charmbracelet/x/editor"
	"github.com/kdeps/schematics/pkg/logging"
	"github.com/spf13/afero"
)

// ErrNoEditor is returned when no editor command can be built.
var ErrNoEditor = errors.New("no editor available")

// EditorCmd abstracts the editor command for testability
type EditorCmd interface {
	Run() error
	SetIO(stdin, stdout, stderr *os.File)
}

type EditorCmdFunc func(editorName, filePath string) (EditorCmd, error)

// realEditorCmd wraps the real editor.Cmd
type realEditorCmd struct {
	cmd *exec.Cmd
}

func (r *realEditorCmd) Run() error {
	return r.cmd.Run()
}

func (r *realEditorCmd) SetIO(stdin, stdout, stderr *os.File) {
	r.cmd.Stdin = stdin
	r.cmd.Stdout = stdout
	r.cmd.Stderr = stderr
}

var editorCmd = editor.Cmd

func realEditorCmdFactory(editorName, filePath string) (EditorCmd, error) {
	cmd, err := editorCmd(editorName, filePath)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNoEditor, err)
	}
	return &realEditorCmd{cmd: cmd}, nil
}

// EditYAMLWithFactory opens the YAML file at filePath in $EDITOR using the
// provided factory. A nil factory uses the real editor.
func EditYAMLWithFactory(fs afero.Fs, filePath string, nonInteractive bool, logger *logging.Logger, factory EditorCmdFunc) error {
	if nonInteractive {
		logger.Info("NON_INTERACTIVE=1, skipping editor")
		return nil
	}

	if ext := filepath.Ext(filePath); ext != ".yaml" && ext != ".yml" {
		err := fmt.Errorf("file '%s' does not have a .yaml extension", filePath)
		logger.Error(err)
		return err
	}

	if _, err := fs.Stat(filePath); err != nil {
		if os.IsNotExist(err) {
			err = fmt.Errorf("file '%s' does not exist", filePath)
			logger.Error(err)
			return err
		}
		err = fmt.Errorf("failed to stat file '%s': %w", filePath, err)
		logger.Error(err)
		return err
	}

	if factory == nil {
		factory = realEditorCmdFactory
	}

	edCmd, err := factory("schematics", filePath)
	if err != nil {
		err = fmt.Errorf("failed to create editor command: %w", err)
		logger.Error(err)
		return err
	}

	edCmd.SetIO(os.Stdin, os.Stdout, os.Stderr)

	if err := edCmd.Run(); err != nil {
		err = fmt.Errorf("editor command failed: %w", err)
		logger.Error(err)
		return err
	}

	return nil
}

// EditYAML opens filePath in the user's editor.
var EditYAML = func(fs afero.Fs, filePath string, nonInteractive bool, logger *logging.Logger) error {
	return EditYAMLWithFactory(fs, filePath, nonInteractive, logger, nil)
}
