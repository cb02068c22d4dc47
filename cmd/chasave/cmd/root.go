/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ssargent/chasave/pkg/codec"
	"github.com/ssargent/chasave/pkg/config"
	"github.com/ssargent/chasave/pkg/di"
)

var container *di.Container

// SetContainer injects the dependency container used by every command
func SetContainer(c *di.Container) {
	container = c
}

// Options holds the global flags
type Options struct {
	ConfigPath string
	Format     string
	Quiet      bool
}

// app is the state shared by a single command invocation
type app struct {
	opts Options
	cfg  *config.Config
	log  *zap.Logger
}

// newRootCmd builds the command tree. Each call returns fresh flag state.
func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "chasave",
		Short: "chasave - character save editor",
		Long: `chasave reads and edits character save files (.cha).

Only the nickname, sex and outfit colors are edited. Every other byte of the
save, including the parts whose layout is unknown, is written back unchanged.

Examples:
  chasave show 0.cha
  chasave set 0.cha --nickname Wanderer --sex female
  chasave verify 0.cha`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(true)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.log != nil {
				_ = a.log.Sync()
			}
		},
	}

	rootCmd.PersistentFlags().StringVarP(&a.opts.ConfigPath, "config", "c", "", "config file (default "+config.GetDefaultConfigPath()+")")
	rootCmd.PersistentFlags().StringVarP(&a.opts.Format, "format", "o", "table", "output format (table, json or yaml)")
	rootCmd.PersistentFlags().BoolVarP(&a.opts.Quiet, "quiet", "q", false, "suppress non-essential messages")

	rootCmd.AddCommand(newShowCmd(a))
	rootCmd.AddCommand(newSetCmd(a))
	rootCmd.AddCommand(newVerifyCmd(a))
	rootCmd.AddCommand(newBackupCmd(a))
	rootCmd.AddCommand(newConfigCmd(a))

	return rootCmd
}

// setup validates global flags, loads the config and builds the logger.
// With loadFile false the built-in defaults are used.
func (a *app) setup(loadFile bool) error {
	switch a.opts.Format {
	case "table", "json", "yaml":
	default:
		return fmt.Errorf("unknown output format %q (table, json or yaml)", a.opts.Format)
	}

	cfg := config.DefaultConfig()
	if loadFile {
		var err error
		if cfg, err = loadConfig(a.opts.ConfigPath); err != nil {
			return err
		}
	}
	a.cfg = cfg

	if container == nil {
		container = di.NewContainer()
	}
	log, err := container.GetLoggerFactory()(cfg.Logging)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	a.log = log
	return nil
}

// loadConfig reads the config at path. Without an explicit path the default
// location is used if it exists, otherwise built-in defaults apply.
func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		path = config.GetDefaultConfigPath()
		if !config.ConfigExists(path) {
			return config.DefaultConfig(), nil
		}
	}
	cfg, err := config.LoadConfig(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}

// describeError adds a hint telling a damaged input file apart from a rejected edit.
func describeError(err error) error {
	switch {
	case err == nil:
		return nil
	case codec.IsEditError(err):
		return fmt.Errorf("edit rejected: %w", err)
	case codec.IsInputError(err):
		return fmt.Errorf("not a readable character save: %w", err)
	case errors.Is(err, os.ErrNotExist):
		return fmt.Errorf("file not found: %w", err)
	default:
		return err
	}
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
