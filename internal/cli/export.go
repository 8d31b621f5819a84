/*
 * export.go, part of gtno.
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

	"github.com/fatih/color"
	"github.com/luke-a-thompson/gtno/internal/config"
	"github.com/luke-a-thompson/gtno/traj/stf"
	"github.com/luke-a-thompson/gtno/xyz"
	"github.com/spf13/cobra"
)

func newExportCmd(g *globalFlags) *cobra.Command {
	var stfOut, xyzOut string
	var precision int
	cmd := &cobra.Command{
		Use:   "export FILE",
		Short: "Convert a trajectory table to STF or extended XYZ",
		Long: `Write the coordinates of a trajectory table to an STF trajectory, and/or
the species, coordinates, forces and energies to an extended XYZ file.
The compression of the STF file is chosen from its extension (.stf zstd,
.stz gzip, .str deflate, .stl lzw). Records with missing cells are skipped.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if stfOut == "" && xyzOut == "" {
				return fmt.Errorf("nothing to do: give --stf and/or --xyz")
			}
			c, err := g.initContext(cmd)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("precision") {
				precision = c.Config.Output.Precision
			}
			if err := config.CheckPrecision(precision); err != nil {
				return err
			}
			D, err := c.load(args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			green := color.New(color.FgGreen)
			yellow := color.New(color.FgYellow)
			report := func(name string, written, skipped int) {
				green.Fprintf(out, "wrote %d frames to %s\n", written, name)
				if skipped > 0 {
					yellow.Fprintf(out, "skipped %d frames\n", skipped)
				}
			}
			if stfOut != "" {
				written, skipped, err := stf.WriteDataset(stfOut, D, precision)
				if err != nil {
					return fmt.Errorf("failed to write %s: %w", stfOut, err)
				}
				report(stfOut, written, skipped)
			}
			if xyzOut != "" {
				written, skipped, err := xyz.WriteDataset(xyzOut, D)
				if err != nil {
					return fmt.Errorf("failed to write %s: %w", xyzOut, err)
				}
				report(xyzOut, written, skipped)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&stfOut, "stf", "", "STF trajectory to write")
	cmd.Flags().StringVar(&xyzOut, "xyz", "", "Extended XYZ file to write")
	cmd.Flags().IntVarP(&precision, "precision", "p", 3, "Decimals kept in the STF trajectory")
	return cmd
}
