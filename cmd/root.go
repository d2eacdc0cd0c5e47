// Package cmd implements the CLI commands for cookpipe using Cobra.
package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/gaurav-prasanna/cookpipe/config"
)

// app carries what PersistentPreRunE resolves for subcommands.
type app struct {
	viper    *viper.Viper
	settings *config.Settings
	log      *slog.Logger
}

// NewRootCmd constructs the root command with its subcommands.
func NewRootCmd() *cobra.Command {
	var cfgPath string
	a := &app{}

	cmd := &cobra.Command{
		Use:   "cookpipe",
		Short: "cookpipe — render Cooklang recipes into display-ready markup",
		Long: `cookpipe renders structured recipes into Ingredients, Cookware, Steps and
Image sections, then writes them as HTML, Markdown, JSON, PDF or styled
terminal text.

Sources may be Cooklang files (.cook), recipe models (.yaml, .yml, .json)
or markdown notes containing ` + "```cooklang" + ` fenced blocks.

Usage:
  cookpipe render <source> [flags]`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			v := viper.New()
			if cfgPath != "" {
				v.SetConfigFile(cfgPath)
			}
			if err := config.BindFlags(v, cmd.Flags()); err != nil {
				return err
			}
			settings, err := config.Load(v)
			if err != nil {
				return err
			}
			a.viper = v
			a.settings = settings
			a.log = settings.NewLogger(cmd.ErrOrStderr())
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&cfgPath, "config", "", "path to config file (yaml|toml|json)")
	cmd.PersistentFlags().String("log-level", "info", "log level: debug, info, warn or error")
	cmd.PersistentFlags().String("log-format", "text", "log format: text or json")

	cmd.AddCommand(newRenderCmd(a))
	cmd.AddCommand(newConfigCmd(a))

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
