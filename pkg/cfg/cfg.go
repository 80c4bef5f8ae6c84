package cfg

import (
	"bytes"
	"errors"
	"io"
	"path/filepath"

	"github.com/kdeps/schematics/pkg/environment"
	schematicerrors "github.com/kdeps/schematics/pkg/errors"
	"github.com/kdeps/schematics/pkg/logging"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// Config holds user defaults for generator options. Flags override it.
type Config struct {
	SourceDir string `yaml:"sourceDir,omitempty"`
	Extension string `yaml:"extension,omitempty"`
	Theme     *bool  `yaml:"theme,omitempty"`
}

// Default returns the built-in defaults.
func Default() *Config {
	theme := true
	return &Config{
		SourceDir: "app",
		Theme:     &theme,
	}
}

// ThemeEnabled returns the configured theme flag, true when unset.
func (c *Config) ThemeEnabled() bool {
	return c.Theme == nil || *c.Theme
}

// LoadConfiguration reads the defaults file named by the environment. A
// missing file yields the built-in defaults.
func LoadConfiguration(fs afero.Fs, env *environment.Environment, logger *logging.Logger) (*Config, error) {
	config := Default()
	if env == nil || env.Config == "" {
		logger.Debug("no configuration file found, using defaults")
		return config, nil
	}

	data, err := afero.ReadFile(fs, env.Config)
	if err != nil {
		return nil, schematicerrors.WrapError(err, schematicerrors.ErrCodeConfigOperation, "failed to read configuration").WithPath(env.Config)
	}

	var loaded Config
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&loaded); err != nil && !errors.Is(err, io.EOF) {
		return nil, schematicerrors.WrapError(err, schematicerrors.ErrCodeConfigOperation, "failed to parse configuration").WithPath(env.Config)
	}

	if loaded.SourceDir != "" {
		config.SourceDir = loaded.SourceDir
	}
	if loaded.Extension != "" {
		config.Extension = loaded.Extension
	}
	if loaded.Theme != nil {
		config.Theme = loaded.Theme
	}

	logger.Debug("configuration loaded", "config-file", env.Config)
	return config, nil
}

// GenerateConfiguration writes the built-in defaults to path unless a file
// already exists there.
func GenerateConfiguration(fs afero.Fs, path string, logger *logging.Logger) (bool, error) {
	exists, err := afero.Exists(fs, path)
	if err != nil {
		return false, schematicerrors.WrapError(err, schematicerrors.ErrCodeConfigOperation, "failed to stat configuration").WithPath(path)
	}
	if exists {
		logger.Info("configuration file already exists", "config-file", path)
		return false, nil
	}

	data, err := yaml.Marshal(Default())
	if err != nil {
		return false, schematicerrors.WrapError(err, schematicerrors.ErrCodeConfigOperation, "failed to encode configuration")
	}
	if err := fs.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return false, schematicerrors.WrapError(err, schematicerrors.ErrCodeConfigOperation, "failed to create configuration directory").WithPath(path)
	}
	if err := afero.WriteFile(fs, path, data, 0o644); err != nil {
		return false, schematicerrors.WrapError(err, schematicerrors.ErrCodeConfigOperation, "failed to write configuration").WithPath(path)
	}

	logger.Info("configuration file generated", "config-file", path)
	return true, nil
}
