/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ssargent/chasave/pkg/config"
)

func newConfigCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the chasave configuration file",
		// the file may not exist yet
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(false)
		},
	}
	cmd.AddCommand(newConfigInitCmd(a))
	return cmd
}

func newConfigInitCmd(a *app) *cobra.Command {
	var (
		backupDir string
		force     bool
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a default configuration file",
		Long: `Write a configuration file with default settings.

The file is written to --config, or to the default location. A path ending
in .toml produces a TOML file; anything else is YAML.

Examples:
  chasave config init
  chasave config init --config ./chasave.toml --backup-dir ./backups`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := a.opts.ConfigPath
			if path == "" {
				path = config.GetDefaultConfigPath()
			}
			if config.ConfigExists(path) && !force {
				return fmt.Errorf("config file already exists: %s (use --force to overwrite)", path)
			}

			cfg, err := config.BootstrapConfig(path, backupDir)
			if err != nil {
				return err
			}

			if !a.opts.Quiet {
				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "Config written to %s\n", path)
				fmt.Fprintf(out, "Backups: %s (keep %d)\n", cfg.Backup.Dir, cfg.Backup.Keep)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&backupDir, "backup-dir", "", "directory for backup snapshots")
	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing config file")
	return cmd
}
