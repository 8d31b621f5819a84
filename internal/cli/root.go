/*
 * root.go, part of gtno.
 *
 * Copyright 2026 The gtno authors
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

// Package cli implements the command-line interface of gtno.
package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/luke-a-thompson/gtno/data"
	"github.com/luke-a-thompson/gtno/internal/config"
	"github.com/spf13/cobra"
)

// cmdContext holds common resources for CLI commands
type cmdContext struct {
	Config *config.Config
	Logger *slog.Logger
}

// globalFlags are the persistent flags shared by every command
type globalFlags struct {
	configPath string
	quiet      bool
}

// initContext loads the configuration and sets up the logger
func (g *globalFlags) initContext(cmd *cobra.Command) (*cmdContext, error) {
	cfg, err := config.LoadFile(g.configPath)
	if err != nil {
		return nil, err
	}
	var w io.Writer = cmd.ErrOrStderr()
	if g.quiet {
		w = io.Discard
	}
	logger := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelWarn}))
	return &cmdContext{Config: cfg, Logger: logger}, nil
}

// load reads the table at path with the options of the configuration
func (c *cmdContext) load(path string) (*data.Dataset, error) {
	D, err := data.Load(path, c.Config.Options(c.Logger))
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", path, err)
	}
	return D, nil
}

func newRootCmd() *cobra.Command {
	g := &globalFlags{}
	rootCmd := &cobra.Command{
		Use:   "gtno",
		Short: "Inspect and convert molecular dynamics trajectory tables",
		Long: `gtno reads the MD17-style trajectory tables produced by the cleaning
script (one row per timestep, with per-atom charge, coordinate and force
columns), and prints, summarizes, plots or exports them.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVar(&g.configPath, "config", config.DefaultFile, "Configuration file")
	rootCmd.PersistentFlags().BoolVarP(&g.quiet, "quiet", "q", false, "Do not report skipped cells")

	rootCmd.AddCommand(newShowCmd(g))
	rootCmd.AddCommand(newInfoCmd(g))
	rootCmd.AddCommand(newExportCmd(g))
	rootCmd.AddCommand(newPlotCmd(g))
	rootCmd.AddCommand(newHistoCmd(g))
	rootCmd.AddCommand(newConfigCmd(g))
	return rootCmd
}

// Execute runs the root command
func Execute() error {
	return newRootCmd().Execute()
}

// exitError prints an error and exits
func exitError(format string, args ...interface{}) {
	color.New(color.FgRed).Fprint(os.Stderr, "error: ")
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}

// Main runs the root command and exits with a non-zero status on failure
func Main() {
	if err := Execute(); err != nil {
		exitError("%v", err)
	}
}
