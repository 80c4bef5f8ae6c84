package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/kdeps/schematics/pkg/environment"
	"github.com/kdeps/schematics/pkg/logging"
	"github.com/kdeps/schematics/pkg/styling"
	"github.com/kdeps/schematics/pkg/template"
	"github.com/kdeps/schematics/pkg/tree"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#90EE90")).Bold(true)
	dryRunStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFD700")).Bold(true)
)

// NewStylingCommand creates the 'styling' command which writes the app
// stylesheets and, for scss, the sass build dependency.
func NewStylingCommand(fs afero.Fs, ctx context.Context, env *environment.Environment, logger *logging.Logger) *cobra.Command {
	var (
		appPath   string
		sourceDir string
		extension string
		theme     bool
		force     bool
		dryRun    bool
	)

	cmd := &cobra.Command{
		Use:     "styling",
		Aliases: []string{"s"},
		Short:   "Generate the app stylesheets (css or scss)",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := LoadConfigurationFn(fs, env, logger)
			if err != nil {
				return err
			}

			if !cmd.Flags().Changed("source-dir") && config.SourceDir != "" {
				sourceDir = config.SourceDir
			}
			if !cmd.Flags().Changed("theme") {
				theme = config.ThemeEnabled()
			}
			if extension == "" {
				extension = config.Extension
			}
			if extension == "" {
				extension = string(styling.CSS)
				if env != nil && env.IsInteractive() {
					if extension, err = PromptExtensionFn(); err != nil {
						return fmt.Errorf("could not read the stylesheet language: %w", err)
					}
				}
			}

			ext, err := styling.ParseExtension(extension)
			if err != nil {
				return err
			}

			opts := styling.Options{
				AppPath:   appPath,
				SourceDir: sourceDir,
				Extension: ext,
				Theme:     theme,
				Force:     force,
			}

			if dryRun {
				previous := template.Output
				template.Output = io.Discard
				defer func() { template.Output = previous }()
			}

			staging := tree.NewStaging(fs)
			if err := GenerateStylingFn(staging, logger, opts); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if dryRun {
				fmt.Fprintln(out, dryRunStyle.Render("Dry run, no files were written:"))
				for _, p := range staging.Changes() {
					fmt.Fprintln(out, "  "+p)
				}
				return nil
			}

			if err := staging.Commit(); err != nil {
				return err
			}
			fmt.Fprintln(out, successStyle.Render(fmt.Sprintf("Successfully generated %s styling in %s", ext, opts.StylesDir())))
			return nil
		},
	}

	cmd.Flags().StringVarP(&appPath, "app-path", "a", ".", "Root directory of the project")
	cmd.Flags().StringVarP(&sourceDir, "source-dir", "s", "app", "Directory holding the application source")
	cmd.Flags().StringVarP(&extension, "extension", "e", "", "Stylesheet language: css or scss")
	cmd.Flags().BoolVar(&theme, "theme", true, "Import the nativescript-theme-core theme")
	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite existing stylesheets")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Print the files that would change without writing them")

	return cmd
}
