package cmd

import (
	"context"
	"io"

	"github.com/kdeps/schematics/pkg/environment"
	"github.com/kdeps/schematics/pkg/logging"
	"github.com/kdeps/schematics/pkg/template"
	"github.com/kdeps/schematics/pkg/version"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// NewRootCommand returns the root command with all subcommands attached
func NewRootCommand(fs afero.Fs, ctx context.Context, env *environment.Environment, logger *logging.Logger) *cobra.Command {
	var quiet bool

	cobra.EnableCommandSorting = false
	rootCmd := &cobra.Command{
		Use:   "schematics",
		Short: "Project scaffolding for NativeScript applications.",
		Long: `Schematics generates and edits the files of a NativeScript application project.
Each schematic reads a small set of options and applies a deterministic set of
changes to the project tree.`,
		Version:       version.String(),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if env != nil {
				template.Dir = env.TemplateDir
			}
			if quiet {
				template.Output = io.Discard
			} else {
				template.Output = cmd.OutOrStdout()
			}
		},
	}
	rootCmd.SetContext(ctx)
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress progress output.")
	rootCmd.AddCommand(NewStylingCommand(fs, ctx, env, logger))
	rootCmd.AddCommand(NewConfigCommand(fs, env, logger))

	return rootCmd
}
