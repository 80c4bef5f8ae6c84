package cmd

import (
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/kdeps/schematics/pkg/environment"
	"github.com/kdeps/schematics/pkg/logging"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// NewConfigCommand creates the 'config' command for managing option defaults.
func NewConfigCommand(fs afero.Fs, env *environment.Environment, logger *logging.Logger) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage schematic defaults",
	}

	var path string
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write a defaults file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			target := path
			if target == "" {
				target = filepath.Join(xdg.ConfigHome, environment.XDGConfigFile)
			}
			created, err := GenerateConfigurationFn(fs, target, logger)
			if err != nil {
				return err
			}
			if created {
				cmd.Println("Configuration written to", target)
			} else {
				cmd.Println("Configuration already exists at", target)
			}
			return nil
		},
	}
	initCmd.Flags().StringVarP(&path, "path", "p", "", "Where to write the defaults file")

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Print the effective defaults",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := LoadConfigurationFn(fs, env, logger)
			if err != nil {
				return err
			}
			source := "built-in defaults"
			if env != nil && env.Config != "" {
				source = env.Config
			}
			cmd.Println("source:", source)
			cmd.Println("sourceDir:", config.SourceDir)
			cmd.Println("extension:", config.Extension)
			cmd.Println("theme:", config.ThemeEnabled())
			return nil
		},
	}

	editCmd := &cobra.Command{
		Use:   "edit",
		Short: "Open the defaults file in $EDITOR",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			target := filepath.Join(xdg.ConfigHome, environment.XDGConfigFile)
			if env != nil && env.Config != "" {
				target = env.Config
			}
			if _, err := GenerateConfigurationFn(fs, target, logger); err != nil {
				return err
			}
			return EditConfigurationFn(fs, target, env == nil || !env.IsInteractive(), logger)
		},
	}

	configCmd.AddCommand(initCmd, showCmd, editCmd)
	return configCmd
}
