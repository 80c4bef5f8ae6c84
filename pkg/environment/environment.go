package environment

import (
	"path/filepath"

	"github.com/adrg/xdg"
	env "github.com/Netflix/go-env"
	"github.com/spf13/afero"
)

// ConfigFileName is the project or home level defaults file.
const ConfigFileName = ".schematics.yaml"

// XDGConfigFile is the defaults file relative to the XDG config home.
var XDGConfigFile = filepath.Join("schematics", "config.yaml")

// Environment holds environment configurations loaded from the OS or defaults.
type Environment struct {
	Home           string `env:"HOME"`
	Pwd            string `env:"PWD"`
	Config         string `env:"SCHEMATICS_CONFIG"`
	NonInteractive string `env:"NON_INTERACTIVE,default=0"`
	Debug          string `env:"DEBUG,default=0"`
	TemplateDir    string `env:"TEMPLATE_DIR"`
}

// IsInteractive reports whether prompts may be shown.
func (e *Environment) IsInteractive() bool {
	return e.NonInteractive != "1"
}

// checkConfig checks if the defaults file exists in the given directory.
func checkConfig(fs afero.Fs, baseDir string) (string, error) {
	if baseDir == "" {
		return "", nil
	}
	configFile := filepath.Join(baseDir, ConfigFileName)
	exists, err := afero.Exists(fs, configFile)
	if err == nil && exists {
		return configFile, nil
	}
	return "", err
}

// findConfig searches the Pwd, Home and XDG config directories in that order.
func findConfig(fs afero.Fs, pwd, home string) string {
	if configFile, _ := checkConfig(fs, pwd); configFile != "" {
		return configFile
	}
	if configFile, _ := checkConfig(fs, home); configFile != "" {
		return configFile
	}
	xdgFile := filepath.Join(xdg.ConfigHome, XDGConfigFile)
	if exists, _ := afero.Exists(fs, xdgFile); exists {
		return xdgFile
	}
	return ""
}

// NewEnvironment initializes and returns a new Environment based on provided or default settings.
func NewEnvironment(fs afero.Fs, environ *Environment) (*Environment, error) {
	if environ != nil {
		configFile := environ.Config
		if configFile == "" {
			configFile = findConfig(fs, environ.Pwd, environ.Home)
		}

		return &Environment{
			Home:           environ.Home,
			Pwd:            environ.Pwd,
			Config:         configFile,
			NonInteractive: "1", // Prioritize non-interactive mode for overridden environments
			Debug:          environ.Debug,
			TemplateDir:    environ.TemplateDir,
		}, nil
	}

	environment := &Environment{}
	if _, err := env.UnmarshalFromEnviron(environment); err != nil {
		return nil, err
	}

	if environment.Config == "" {
		environment.Config = findConfig(fs, environment.Pwd, environment.Home)
	}
	return environment, nil
}
