package cmd

import (
	"github.com/charmbracelet/huh"
	"github.com/kdeps/schematics/pkg/cfg"
	"github.com/kdeps/schematics/pkg/styling"
	"github.com/kdeps/schematics/pkg/texteditor"
)

// Injectable functions for testability (shared across cmd package)
var (
	// Configuration functions
	LoadConfigurationFn     = cfg.LoadConfiguration
	GenerateConfigurationFn = cfg.GenerateConfiguration
	EditConfigurationFn     = texteditor.EditYAML

	// Generator functions
	GenerateStylingFn = styling.Generate

	// Prompts
	PromptExtensionFn = promptForExtension
)

func promptForExtension() (string, error) {
	var ext string
	options := make([]huh.Option[string], 0, len(styling.Extensions))
	for _, e := range styling.Extensions {
		options = append(options, huh.NewOption(e.String(), e.String()))
	}

	form := huh.NewSelect[string]().
		Title("Choose a stylesheet language").
		Options(options...).
		Value(&ext)

	if err := form.Run(); err != nil {
		return "", err
	}
	return ext, nil
}
