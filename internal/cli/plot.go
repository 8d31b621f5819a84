/*
 * plot.go, part of gtno.
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

package cli

import (
	"fmt"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/luke-a-thompson/gtno/chemplot"
	"github.com/luke-a-thompson/gtno/histo"
	"github.com/spf13/cobra"
)

func newPlotCmd(g *globalFlags) *cobra.Command {
	var out, histoOut string
	var bins int
	cmd := &cobra.Command{
		Use:   "plot FILE",
		Short: "Plot the energy profile of a trajectory table",
		Long:  `Plot the energy of each record against its timestep, and optionally the energy histogram. The image format is taken from the file extension.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := g.initContext(cmd)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("bins") {
				bins = c.Config.Output.Bins
			}
			D, err := c.load(args[0])
			if err != nil {
				return err
			}
			green := color.New(color.FgGreen)
			title := filepath.Base(args[0])
			if err := chemplot.EnergyPlot(D, title, out); err != nil {
				return fmt.Errorf("failed to plot %s: %w", out, err)
			}
			green.Fprintf(cmd.OutOrStdout(), "wrote %s\n", out)
			if histoOut != "" {
				if err := chemplot.HistoPlot(histo.Energies(D, bins), title, histoOut); err != nil {
					return fmt.Errorf("failed to plot %s: %w", histoOut, err)
				}
				green.Fprintf(cmd.OutOrStdout(), "wrote %s\n", histoOut)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "energy.png", "Energy profile image")
	cmd.Flags().StringVar(&histoOut, "histo", "", "Energy histogram image")
	cmd.Flags().IntVarP(&bins, "bins", "b", 20, "Histogram bins")
	return cmd
}
