// Package cmd implements the CLI commands for docsummary using Cobra.
package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/gaurav-prasanna/docsummary/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// app is the state shared by the commands of one invocation.
type app struct {
	v          *viper.Viper
	configFile string
	cfg        config.Config
	logger     *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New()}

	rootCmd := &cobra.Command{
		Use:   "docsummary",
		Short: "docsummary — render documentation-comment summaries",
		Long: `docsummary renders the summaries found in documentation JSON
(paragraphs, code, links, lists, headings, emphasis, rules) into HTML,
Markdown, terminal text, structured JSON or PDF.

Usage:
  docsummary render <file|url|-> [flags]`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.load(cmd.ErrOrStderr())
		},
	}

	rootCmd.PersistentFlags().StringVar(&a.configFile, "config", "", "Config file (default: docsummary.{yaml,toml,json} in the config search path)")
	rootCmd.PersistentFlags().String("log_level", "", "Log level: debug, info, warn or error")
	_ = a.v.BindPFlag("log_level", rootCmd.PersistentFlags().Lookup("log_level"))

	rootCmd.AddCommand(newRenderCmd(a), newKindsCmd())
	return rootCmd
}

// load resolves configuration and builds the logger.
func (a *app) load(stderr io.Writer) error {
	if a.configFile != "" {
		a.v.SetConfigFile(a.configFile)
	}
	if err := config.Load(a.v); err != nil {
		return err
	}
	cfg, err := config.FromViper(a.v)
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	a.cfg = cfg
	a.logger = newLogger(stderr, cfg.LogLevel)
	return nil
}

// newLogger returns a text logger without timestamps.
func newLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				return slog.Attr{}
			}
			return a
		},
	}))
}

// Execute runs the root command.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
